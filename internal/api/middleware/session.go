package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
)

type guestKey struct{}

// SessionHeaders имена заголовков, в которых сервис сессий передает гостя
type SessionHeaders struct {
	Email     string
	FirstName string
	LastName  string
}

// DefaultSessionHeaders заголовки по умолчанию
var DefaultSessionHeaders = SessionHeaders{
	Email:     "X-Guest-Email",
	FirstName: "X-Guest-First-Name",
	LastName:  "X-Guest-Last-Name",
}

// Session кладет гостя из заголовков в контекст запроса.
// Гость авторизован, если передан email. Запрос не отклоняется.
func Session(headers SessionHeaders) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			guest := domain.Guest{
				Email:     strings.TrimSpace(r.Header.Get(headers.Email)),
				FirstName: strings.TrimSpace(r.Header.Get(headers.FirstName)),
				LastName:  strings.TrimSpace(r.Header.Get(headers.LastName)),
			}
			guest.Authenticated = guest.Email != ""

			next.ServeHTTP(w, r.WithContext(WithGuest(r.Context(), guest)))
		})
	}
}

// WithGuest кладет гостя в контекст
func WithGuest(ctx context.Context, guest domain.Guest) context.Context {
	return context.WithValue(ctx, guestKey{}, guest)
}

// GetGuest извлекает гостя из контекста. Без middleware гость не авторизован.
func GetGuest(ctx context.Context) domain.Guest {
	guest, _ := ctx.Value(guestKey{}).(domain.Guest)
	return guest
}
