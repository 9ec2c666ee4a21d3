package handle

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"kanji-feedback/api/internal/logging"
	"kanji-feedback/api/internal/relay"
)

type errorResponse struct {
	Error string `json:"error"`
}

// Feedback answers a CORS preflight or relays one batch of test results to
// the model. Every failure becomes a 400 with {"error": message}.
func (h *Handle) Feedback(w http.ResponseWriter, r *http.Request) {
	h.setCORS(w, r)
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}

	log := logging.FromContext(r.Context(), h.log)

	results, err := relay.DecodeRequest(r.Body, h.opts.MaxBodyBytes)
	if err != nil {
		h.fail(w, log, err)
		return
	}

	out, err := h.svc.Analyze(r.Context(), results)
	if err != nil {
		h.fail(w, log, err)
		return
	}

	log.Info("feedback relayed",
		zap.Int("results", len(results)),
		zap.Int("feedback_len", len(out.Feedback)),
	)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(out.Raw)
}

func (h *Handle) fail(w http.ResponseWriter, log *zap.Logger, err error) {
	fields := []zap.Field{zap.Stringer("kind", relay.KindOf(err)), zap.Error(err)}
	var re *relay.Error
	if errors.As(err, &re) && re.Err != nil {
		fields = append(fields, zap.NamedError("cause", re.Err))
	}
	log.Warn("feedback failed", fields...)
	writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
}
