package handle

import (
	"encoding/json"
	"net/http"
	"slices"
	"strings"

	"go.uber.org/zap"

	"kanji-feedback/api/internal/relay"
)

type Options struct {
	AllowedOrigins []string
	AllowedHeaders []string
	MaxBodyBytes   int64
}

type Handle struct {
	svc  *relay.Service
	opts Options
	log  *zap.Logger
}

func New(svc *relay.Service, opts Options, log *zap.Logger) *Handle {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handle{
		svc:  svc,
		opts: opts,
		log:  log,
	}
}

// Options returns the settings the handler was built with. The router
// reads its preflight policy from here.
func (h *Handle) Options() Options { return h.opts }

// setCORS writes the headers every response carries, preflight or not.
func (h *Handle) setCORS(w http.ResponseWriter, r *http.Request) {
	hdr := w.Header()
	hdr.Set("Access-Control-Allow-Origin", h.allowOrigin(r.Header.Get("Origin")))
	if len(h.opts.AllowedHeaders) > 0 {
		hdr.Set("Access-Control-Allow-Headers", strings.Join(h.opts.AllowedHeaders, ", "))
	}
}

func (h *Handle) allowOrigin(origin string) string {
	origins := h.opts.AllowedOrigins
	if len(origins) == 0 || slices.Contains(origins, "*") {
		return "*"
	}
	if origin != "" && slices.Contains(origins, origin) {
		return origin
	}
	return origins[0]
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (h *Handle) Healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
