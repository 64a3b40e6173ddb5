package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
)

// ErrorEnvelope is the body of every failed request.
type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// requestError is an error that maps to a specific status code.
type requestError struct {
	err    error
	code   string
	status int
}

func (e *requestError) Error() string {
	return e.err.Error()
}

func (e *requestError) Unwrap() error {
	return e.err
}

func badRequest(code string, err error) error {
	return &requestError{status: http.StatusBadRequest, code: code, err: err}
}

func unavailable(err error) error {
	return &requestError{
		status: http.StatusServiceUnavailable,
		code:   "store_unavailable",
		err:    err,
	}
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	_ = json.NewEncoder(w).Encode(ErrorEnvelope{
		Error: APIError{Code: code, Message: message},
	})
}

func writeJSON(w http.ResponseWriter, v any) error {
	w.Header().Set("Content-Type", "application/json")
	return json.NewEncoder(w).Encode(v)
}

type errorHandler func(w http.ResponseWriter, r *http.Request) error

func (h errorHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	err := h(w, r)
	if err == nil {
		return
	}

	var reqErr *requestError
	if errors.As(err, &reqErr) {
		writeError(w, reqErr.status, reqErr.code, reqErr.Error())
		return
	}

	slog.ErrorContext(
		r.Context(),
		"request failed",
		slog.String("path", r.URL.Path),
		slog.Any("error", err),
	)

	writeError(
		w,
		http.StatusInternalServerError,
		"internal",
		http.StatusText(http.StatusInternalServerError),
	)
}
