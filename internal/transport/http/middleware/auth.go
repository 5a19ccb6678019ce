package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/pribylovaa/newsroom-service/internal/models"
	"github.com/pribylovaa/newsroom-service/internal/service"
	apierrors "github.com/pribylovaa/newsroom-service/internal/transport/http/errors"
)

type ctxKey int

const ctxPrincipal ctxKey = iota

// TokenValidator проверяет access-токен и возвращает принципала.
// Реализуется сервисным слоем (service.ValidateToken).
type TokenValidator interface {
	ValidateToken(accessToken string) (models.Principal, error)
}

// Auth извлекает Bearer-токен из Authorization, валидирует его и кладёт
// принципала в контекст запроса. Отсутствующий или некорректный токен — 401.
func Auth(v TokenValidator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				apierrors.WriteError(w, r, service.ErrInvalidToken)
				return
			}

			principal, err := v.ValidateToken(token)
			if err != nil {
				apierrors.WriteError(w, r, err)
				return
			}

			ctx := context.WithValue(r.Context(), ctxPrincipal, principal)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// PrincipalFrom возвращает принципала запроса, положенного Auth-мидлваром.
func PrincipalFrom(ctx context.Context) (models.Principal, bool) {
	p, ok := ctx.Value(ctxPrincipal).(models.Principal)
	return p, ok
}

func bearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if !strings.HasPrefix(auth, prefix) || len(auth) <= len(prefix) {
		return ""
	}

	return strings.TrimSpace(auth[len(prefix):])
}
