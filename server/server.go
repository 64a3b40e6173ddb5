// Package server exposes saved bookings, the CRUD list and the flight
// validity rules over a small read-only JSON API.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/pterm/pterm"

	"github.com/ayoisaiah/sevenguis/internal/booking"
	"github.com/ayoisaiah/sevenguis/internal/models"
	"github.com/ayoisaiah/sevenguis/internal/timeutil"
	"github.com/ayoisaiah/sevenguis/store"
)

const (
	readTimeout     = 5 * time.Second
	writeTimeout    = 10 * time.Second
	shutdownTimeout = 5 * time.Second
)

type handlers struct {
	open store.Opener
	now  func() time.Time
}

// withDB runs fn with a freshly opened connection.
func (h *handlers) withDB(fn func(db store.DB) error) error {
	db, err := h.open()
	if err != nil {
		return unavailable(err)
	}

	defer db.Close()

	return fn(db)
}

func (h *handlers) bookings(w http.ResponseWriter, r *http.Request) error {
	var since time.Time

	if s := r.URL.Query().Get("since"); s != "" {
		t, err := timeutil.FromStr(s, h.now())
		if err != nil {
			return badRequest("invalid_since", err)
		}

		since = t
	}

	return h.withDB(func(db store.DB) error {
		list, err := db.GetBookings(since, time.Time{})
		if err != nil {
			return err
		}

		if list == nil {
			list = []*models.Booking{}
		}

		return writeJSON(w, list)
	})
}

func (h *handlers) people(w http.ResponseWriter, _ *http.Request) error {
	return h.withDB(func(db store.DB) error {
		list, _, err := db.GetPeople()
		if err != nil {
			return err
		}

		if list == nil {
			list = []*models.Person{}
		}

		return writeJSON(w, list)
	})
}

func validate(w http.ResponseWriter, r *http.Request) error {
	query := r.URL.Query()

	ft := booking.OneWay

	if s := query.Get("type"); s != "" {
		var err error

		ft, err = booking.ParseFlightType(s)
		if err != nil {
			return badRequest("invalid_type", err)
		}
	}

	return writeJSON(
		w,
		booking.Evaluate(ft, query.Get("outbound"), query.Get("inbound")),
	)
}

// NewRouter builds the API routes. A connection is opened through open for
// each request and closed once it has been served.
func NewRouter(open store.Opener) http.Handler {
	h := &handlers{
		open: open,
		now:  time.Now,
	}

	r := chi.NewRouter()

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Method(http.MethodGet, "/bookings", errorHandler(h.bookings))
		r.Method(http.MethodGet, "/people", errorHandler(h.people))
		r.Method(http.MethodGet, "/validate", errorHandler(validate))
	})

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "not_found", "no such route")
	})

	return r
}

// Serve listens on port until ctx is cancelled.
func Serve(ctx context.Context, port uint, handler http.Handler) error {
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      handler,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	}

	errCh := make(chan error, 1)

	go func() {
		errCh <- srv.ListenAndServe()
	}()

	pterm.Info.Printfln("starting server on port: %d", port)
	slog.Info("server started", slog.Uint64("port", uint64(port)))

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		shutdownTimeout,
	)
	defer cancel()

	err := srv.Shutdown(shutdownCtx)
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
