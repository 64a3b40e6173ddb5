// Package osutil holds operating system specific constants
package osutil

const Windows = "windows"

const FilePermission = 0o600
