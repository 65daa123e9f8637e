package middlewares

import (
	"context"
	"net/http"

	"swasthya-service/internal/pkg/constvars"
	"swasthya-service/internal/pkg/exceptions"
	"swasthya-service/internal/pkg/utils"

	"go.uber.org/zap"
)

const ContextAPIKeyAuth constvars.ContextKey = "api_key_auth"

// APIKeyAuth grants superadmin access when a valid X-API-Key header is
// present. Requests without the header pass through untouched so session
// auth can take over.
func (m *Middlewares) APIKeyAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiKey := r.Header.Get(constvars.HeaderXAPIKey)

		if apiKey == "" {
			next.ServeHTTP(w, r)
			return
		}

		if apiKey != m.InternalConfig.App.SuperadminAPIKey {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrInvalidAPIKey(nil))
			return
		}

		ctx := context.WithValue(r.Context(), ContextAPIKeyAuth, true)

		m.Log.Info("API Key authentication successful",
			zap.String("ip", r.RemoteAddr),
			zap.String("endpoint", r.URL.Path),
			zap.String("method", r.Method),
			zap.String("user_agent", r.UserAgent()))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireSuperadmin gates an endpoint on API key auth having succeeded.
func (m *Middlewares) RequireSuperadmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if apiKeyAuth, ok := r.Context().Value(ContextAPIKeyAuth).(bool); ok && apiKeyAuth {
			next.ServeHTTP(w, r)
			return
		}
		utils.BuildErrorResponse(m.Log, w, exceptions.ErrInvalidAPIKey(nil))
	})
}
