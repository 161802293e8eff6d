// internal/middleware/audit.go
//
// Request audit middleware.
//
// Context
//   The capture form is an internal tool, but operations still wants to
//   know which client submitted what.  Each request gets one structured
//   log line carrying the method, path, remote address, and a user-agent
//   fingerprint parsed with uasurfer.  The fingerprint is inert data; it
//   is never used for routing decisions.

package middleware

import (
	"net/http"
	"strings"

	"github.com/avct/uasurfer"
	"go.uber.org/zap"
)

// Audit logs one line per request with a parsed user-agent fingerprint.
func Audit(log *zap.SugaredLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			u := uasurfer.Parse(r.UserAgent())
			log.Infow("request",
				"method", r.Method,
				"path", r.URL.Path,
				"remote", r.RemoteAddr,
				"browser", strings.TrimPrefix(u.Browser.Name.String(), "Browser"),
				"os", strings.TrimPrefix(u.OS.Name.String(), "OS"),
				"device", deviceString(u.DeviceType),
				"bot", u.IsBot(),
			)
			next.ServeHTTP(w, r)
		})
	}
}

// deviceString maps uasurfer.DeviceType to a friendly label.
func deviceString(dt uasurfer.DeviceType) string {
	switch dt {
	case uasurfer.DeviceComputer:
		return "Desktop"
	case uasurfer.DevicePhone:
		return "Phone"
	case uasurfer.DeviceTablet:
		return "Tablet"
	default:
		return "Unknown"
	}
}
