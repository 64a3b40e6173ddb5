package store

import (
	"strconv"

	bolt "go.etcd.io/bbolt"
)

const schemaVersion = 1

var keyVersion = []byte("version")

// migrate brings the database up to the current schema version.
func migrate(tx *bolt.Tx) error {
	meta, err := tx.CreateBucketIfNotExists([]byte(metaBucket))
	if err != nil {
		return err
	}

	version := 0

	if v := meta.Get(keyVersion); v != nil {
		version, err = strconv.Atoi(string(v))
		if err != nil {
			return err
		}
	}

	if version > schemaVersion {
		return errNewerSchema.Fmt(version, schemaVersion)
	}

	for _, name := range []string{bookingBucket, peopleBucket} {
		_, err = tx.CreateBucketIfNotExists([]byte(name))
		if err != nil {
			return err
		}
	}

	return meta.Put(keyVersion, []byte(strconv.Itoa(schemaVersion)))
}
