package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/iudanet/stockle/internal/envelope"
	"github.com/iudanet/stockle/internal/server/handlers"
	"github.com/iudanet/stockle/internal/server/metrics"
	"github.com/iudanet/stockle/internal/server/session"
	"github.com/iudanet/stockle/pkg/api"
)

// maxEnvelopeBody ограничивает размер зашифрованного тела запроса
const maxEnvelopeBody = 8 << 20

// OpenRoute описывает эндпоинт, доступный без ключа сессии
type OpenRoute struct {
	Path   string
	Method string // пустой метод - любой
}

// DefaultOpenRoutes - эндпоинты, работающие открытым текстом
var DefaultOpenRoutes = []OpenRoute{
	{Path: "/status"},
	{Path: "/connect"},
	{Path: "/metrics"},
	{Path: "/sync_now", Method: http.MethodGet},
}

// SecureMiddleware заворачивает обмен в зашифрованный конверт {"Data": base64(IV||AES(payload))}.
// Тело запроса расшифровывается ключом сессии клиента и передается обработчику открытым текстом;
// ответ обработчика шифруется тем же ключом с сохранением кода статуса.
func SecureMiddleware(logger *slog.Logger, sessions session.Store, m *metrics.Metrics, open []OpenRoute) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isOpenRoute(open, r) {
				next.ServeHTTP(w, r)
				return
			}

			ctx := r.Context()
			clientID, _ := handlers.GetClientID(ctx)

			key, err := sessions.Get(ctx, clientID)
			if err != nil {
				if errors.Is(err, session.ErrNoSession) {
					logger.WarnContext(ctx, "request without session key",
						slog.String("client_id", clientID),
						slog.String("path", r.URL.Path))
					m.EnvelopeRejected("no_session")
					writePlainJSON(w, api.ErrorResponse{Error: api.ErrNoSessionMessage}, http.StatusNotFound)
					return
				}
				logger.ErrorContext(ctx, "failed to load session key", slog.Any("error", err))
				writePlainJSON(w, api.ErrorResponse{Error: "internal server error"}, http.StatusInternalServerError)
				return
			}

			out := newSealingWriter()

			body, err := io.ReadAll(io.LimitReader(r.Body, maxEnvelopeBody))
			if err != nil {
				writePlainJSON(out, api.ErrorResponse{Error: api.ErrBadEnvelopeMessage}, http.StatusBadRequest)
				out.flush(w, key, logger)
				return
			}

			var plaintext []byte
			if len(bytes.TrimSpace(body)) > 0 {
				plaintext, err = envelope.OpenBytes(body, key)
				if err != nil {
					logger.WarnContext(ctx, "failed to open envelope",
						slog.String("client_id", clientID),
						slog.Any("error", err))
					m.EnvelopeRejected("malformed")
					writePlainJSON(out, api.ErrorResponse{Error: api.ErrBadEnvelopeMessage}, http.StatusBadRequest)
					out.flush(w, key, logger)
					return
				}
			}

			r.Body = io.NopCloser(bytes.NewReader(plaintext))
			r.ContentLength = int64(len(plaintext))
			r.Header.Del("Content-Length")

			next.ServeHTTP(out, r)
			out.flush(w, key, logger)
		})
	}
}

func isOpenRoute(open []OpenRoute, r *http.Request) bool {
	for _, route := range open {
		if route.Path == r.URL.Path && (route.Method == "" || route.Method == r.Method) {
			return true
		}
	}
	return false
}

func writePlainJSON(w http.ResponseWriter, data any, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

// sealingWriter буферизует ответ обработчика, чтобы зашифровать его целиком
type sealingWriter struct {
	header     http.Header
	body       bytes.Buffer
	statusCode int
}

func newSealingWriter() *sealingWriter {
	return &sealingWriter{
		header:     make(http.Header),
		statusCode: http.StatusOK,
	}
}

func (sw *sealingWriter) Header() http.Header {
	return sw.header
}

func (sw *sealingWriter) WriteHeader(code int) {
	sw.statusCode = code
}

func (sw *sealingWriter) Write(b []byte) (int, error) {
	return sw.body.Write(b)
}

// flush шифрует накопленное тело и отправляет его клиенту.
// Пустой ответ уходит как есть.
func (sw *sealingWriter) flush(w http.ResponseWriter, key []byte, logger *slog.Logger) {
	for k, v := range sw.header {
		if k == "Content-Type" || k == "Content-Length" {
			continue
		}
		w.Header()[k] = v
	}

	if sw.body.Len() == 0 {
		w.WriteHeader(sw.statusCode)
		return
	}

	env, err := envelope.Seal(sw.body.Bytes(), key)
	if err != nil {
		logger.Error("failed to seal response", slog.Any("error", err))
		http.Error(w, "Error encrypting response data", http.StatusInternalServerError)
		return
	}

	data, err := json.Marshal(env)
	if err != nil {
		logger.Error("failed to encode envelope", slog.Any("error", err))
		http.Error(w, "Error encrypting response data", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(sw.statusCode)
	_, _ = w.Write(data)
}
