package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/fieldbook/FieldBooking-Service/internal/api/handlers"
	"github.com/fieldbook/FieldBooking-Service/internal/service/auth"
	"github.com/fieldbook/FieldBooking-Service/internal/service/bookings/models"
)

type actorCtxKey struct{}

// TokenParser интерфейс проверки токена доступа
type TokenParser interface {
	ParseToken(tokenString string) (*auth.Claims, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// ActorFromContext извлекает аутентифицированного инициатора из контекста
func ActorFromContext(ctx context.Context) (models.Actor, bool) {
	actor, ok := ctx.Value(actorCtxKey{}).(models.Actor)
	return actor, ok
}

// Auth проверяет Bearer токен и кладет Actor в контекст запроса.
// Запросы без валидного токена до обработчиков не доходят.
func Auth(parser TokenParser, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				handlers.RespondUnauthorized(w, "authorization header is required")
				return
			}

			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok {
				handlers.RespondUnauthorized(w, "authorization header must use Bearer scheme")
				return
			}

			claims, err := parser.ParseToken(token)
			if err != nil {
				logger.Warn("auth middleware: invalid token for %s %s: %v", r.Method, r.URL.Path, err)
				handlers.RespondUnauthorized(w, "invalid or expired token")
				return
			}

			actor := models.Actor{UserID: claims.UserID, IsAdmin: claims.IsAdmin}
			ctx := context.WithValue(r.Context(), actorCtxKey{}, actor)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin пропускает только администраторов.
// Вешается после Auth; сервисный слой дублирует проверку на своих операциях.
func RequireAdmin(logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			actor, ok := ActorFromContext(r.Context())
			if !ok {
				handlers.RespondUnauthorized(w, "authorization is required")
				return
			}
			if !actor.IsAdmin {
				logger.Warn("admin middleware: user=%d denied for %s %s", actor.UserID, r.Method, r.URL.Path)
				handlers.RespondForbidden(w, "admin access required")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
