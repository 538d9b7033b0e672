package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/eklokale/RoomBookingService/internal/api/handlers"
)

type contextKey string

const userIDKey contextKey = "user_id"

const (
	headerUserID    = "X-User-ID"
	msgLoginRequired = "Du skal være logget ind for at booke et lokale."
)

// Auth извлекает ID пользователя из заголовка X-User-ID.
// Аутентификацию выполняет API-шлюз, сюда приходит уже проверенный ID.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get(headerUserID)
		if raw == "" {
			handlers.RespondUnauthorized(w, "LOGIN_REQUIRED", msgLoginRequired)
			return
		}

		userID, err := uuid.Parse(raw)
		if err != nil {
			handlers.RespondUnauthorized(w, "LOGIN_REQUIRED", msgLoginRequired)
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserID достаёт ID пользователя из контекста запроса
func UserID(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(userIDKey).(uuid.UUID)
	return id, ok
}
