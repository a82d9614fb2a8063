package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/heartmarshall/threadline-backend/internal/config"
)

// Origins is a parsed allow-list of browser origins. "*" matches any origin.
type Origins struct {
	any bool
	set map[string]struct{}
}

// ParseOrigins parses a comma-separated origin list.
func ParseOrigins(csv string) Origins {
	o := Origins{set: make(map[string]struct{})}
	for _, item := range strings.Split(csv, ",") {
		item = strings.TrimSpace(item)
		switch item {
		case "":
		case "*":
			o.any = true
		default:
			o.set[item] = struct{}{}
		}
	}
	return o
}

// Allows reports whether origin is on the list.
func (o Origins) Allows(origin string) bool {
	if o.any {
		return true
	}
	_, ok := o.set[origin]
	return ok
}

// CORS answers preflight requests and echoes allowed origins on every response.
// The websocket endpoint performs its own origin check during the upgrade.
func CORS(cfg config.CORSConfig) Middleware {
	origins := ParseOrigins(cfg.AllowedOrigins)
	maxAge := strconv.Itoa(cfg.MaxAge)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Add("Vary", "Origin")
			h.Set("Access-Control-Expose-Headers", "X-Request-Id, Retry-After")

			if origin := r.Header.Get("Origin"); origin != "" && origins.Allows(origin) {
				h.Set("Access-Control-Allow-Origin", origin)
				if cfg.AllowCredentials {
					h.Set("Access-Control-Allow-Credentials", "true")
				}
			}

			// Preflight only; a bare OPTIONS falls through to the mux.
			if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
				h.Set("Access-Control-Allow-Methods", cfg.AllowedMethods)
				h.Set("Access-Control-Allow-Headers", cfg.AllowedHeaders)
				h.Set("Access-Control-Max-Age", maxAge)
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
