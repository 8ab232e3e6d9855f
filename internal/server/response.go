package server

import (
	"errors"
	"net/http"
	"strconv"
	"riftlens/internal/api"
	"riftlens/internal/service"

	"github.com/bytedance/sonic"
	"github.com/rs/zerolog"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	body, err := sonic.Marshal(v)
	if err != nil {
		http.Error(w, `{"error":"failed to encode response"}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

// statusFor maps an error to its HTTP status and the message shown to the client.
func statusFor(err error) (int, string) {
	var verr *ValidationError
	switch {
	case errors.As(err, &verr):
		return http.StatusBadRequest, verr.Error()
	case errors.Is(err, service.ErrInvalidRegion):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, service.ErrPlayerNotFound):
		return http.StatusNotFound, "player not found"
	case errors.Is(err, service.ErrMatchNotFound):
		return http.StatusNotFound, "match not found"
	case errors.Is(err, service.ErrChampionNotFound):
		return http.StatusNotFound, "champion not found"
	case errors.Is(err, api.ErrNotFound):
		return http.StatusNotFound, "not found"
	case errors.Is(err, api.ErrRateLimited):
		return http.StatusServiceUnavailable, err.Error()
	case errors.Is(err, api.ErrUpstream), errors.Is(err, api.ErrTransport):
		return http.StatusBadGateway, err.Error()
	default:
		return http.StatusInternalServerError, "internal error"
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, msg := statusFor(err)

	if status == http.StatusServiceUnavailable {
		if apiErr, ok := api.AsError(err); ok && apiErr.RetryAfter > 0 {
			w.Header().Set("Retry-After", strconv.Itoa(int(apiErr.RetryAfter.Seconds())))
		}
	}

	event := s.log(r).Warn()
	if status >= http.StatusInternalServerError {
		event = s.log(r).Error()
	}
	event.Err(err).Int("status", status).Str("path", r.URL.Path).Msg("request failed")

	writeJSON(w, status, errorResponse{Error: msg})
}

// log prefers the request-scoped logger carrying the request id.
func (s *Server) log(r *http.Request) *zerolog.Logger {
	if l := zerolog.Ctx(r.Context()); l.GetLevel() != zerolog.Disabled {
		return l
	}
	return &s.logger
}
