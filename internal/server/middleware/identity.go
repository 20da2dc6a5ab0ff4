package middleware

import (
	"log/slog"
	"net"
	"net/http"
	"strings"

	"github.com/iudanet/stockle/internal/server/handlers"
	"github.com/iudanet/stockle/internal/validation"
	"github.com/iudanet/stockle/pkg/api"
)

// ClientIdentityMiddleware определяет, к какому клиенту относится ключ сессии.
// Берется заголовок X-Client-ID; без него (или с невалидным значением) используется IP клиента.
func ClientIdentityMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			clientID := strings.TrimSpace(r.Header.Get(api.ClientIDHeader))
			if clientID != "" {
				if err := validation.ValidateClientID(clientID); err != nil {
					logger.DebugContext(r.Context(), "ignoring invalid client id header", slog.Any("error", err))
					clientID = ""
				}
			}
			if clientID == "" {
				clientID = remoteHost(r)
			}

			next.ServeHTTP(w, r.WithContext(handlers.WithClientID(r.Context(), clientID)))
		})
	}
}

// remoteHost возвращает IP из RemoteAddr без порта
func remoteHost(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
