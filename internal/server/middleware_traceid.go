package server

import (
	"net/http"

	"github.com/google/uuid"
)

// traceIDHeader carries the request trace ID back to the caller.
const traceIDHeader = "X-Trace-Id"

// withTraceID assigns each request a trace ID, attaches a request-scoped
// logger carrying it to the context, and echoes it in the response.
func (s *Server) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(traceIDHeader)
		if traceID == "" {
			traceID = uuid.NewString()
		}

		log := s.log.With().Str("trace_id", traceID).Logger()
		ctx := log.WithContext(r.Context())

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
