package controller

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"directorybolt/pkg/logger"
	"directorybolt/pkg/serrors"

	"go.uber.org/zap"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// WriteJSON writes v as the JSON body of a response with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if v == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError maps err to its HTTP status and writes the public error body.
// Errors without a semantic kind are logged and reported as a generic
// internal error.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	status := serrors.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		logger.Error(r.Context(), "request failed", zap.Error(err))
	} else {
		logger.Debug(r.Context(), "request rejected", zap.Error(err))
	}

	WriteJSON(w, status, errorResponse(err, status))
}

func errorResponse(err error, status int) ErrorResponse {
	kind := serrors.KindOf(err)
	if kind == nil || status == http.StatusInternalServerError {
		return ErrorResponse{Code: serrors.ErrInternal.Error(), Message: "internal error"}
	}

	msg := serrors.PublicMessage(err)
	if msg == "internal error" {
		msg = kind.Error()
	}

	return ErrorResponse{Code: kind.Error(), Message: msg}
}

// DecodeJSON reads at most maxBytes of the request body into v. Malformed,
// oversized and trailing input is a BAD_REQUEST.
func DecodeJSON(w http.ResponseWriter, r *http.Request, maxBytes int64, v any) error {
	if maxBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
	}

	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case errors.As(err, &tooLarge):
			return serrors.Wrap(serrors.ErrBadRequest, err, "request body too large")
		case errors.Is(err, io.EOF):
			return serrors.With(serrors.ErrBadRequest, "request body is empty")
		default:
			return serrors.Wrap(serrors.ErrBadRequest, err, "invalid request body")
		}
	}
	if dec.More() {
		return serrors.With(serrors.ErrBadRequest, "request body must hold a single JSON value")
	}

	return nil
}
