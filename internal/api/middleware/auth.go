package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/reservly/booking-engine/internal/api/handlers"
	"github.com/reservly/booking-engine/internal/domain"
)

type contextKey string

const (
	tenantIDKey  contextKey = "tenantID"
	actorRoleKey contextKey = "actorRole"
)

// Auth проверяет заголовки тенанта и роли. Сервис живет за API-шлюзом,
// который уже аутентифицировал вызов и проставил заголовки; здесь только
// их разбор
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rawTenant := r.Header.Get("X-Tenant-ID")
		if rawTenant == "" {
			handlers.RespondError(w, http.StatusUnauthorized, "отсутствует заголовок X-Tenant-ID")
			return
		}
		tenantID, err := strconv.ParseInt(rawTenant, 10, 64)
		if err != nil || tenantID <= 0 {
			handlers.RespondError(w, http.StatusUnauthorized, "некорректный заголовок X-Tenant-ID")
			return
		}

		role := domain.ActorRole(r.Header.Get("X-Actor-Role"))
		switch role {
		case domain.ActorCustomer, domain.ActorStaff, domain.ActorSystem:
		case "":
			role = domain.ActorCustomer
		default:
			handlers.RespondError(w, http.StatusUnauthorized, "некорректный заголовок X-Actor-Role")
			return
		}

		ctx := context.WithValue(r.Context(), tenantIDKey, tenantID)
		ctx = context.WithValue(ctx, actorRoleKey, role)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// StaffOnly пропускает только персонал и системные вызовы
func StaffOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role := ActorRole(r.Context())
		if role != domain.ActorStaff && role != domain.ActorSystem {
			handlers.RespondForbidden(w, "операция доступна только персоналу")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// TenantID возвращает ID тенанта из контекста запроса; 0, если
// middleware Auth не отработал
func TenantID(ctx context.Context) int64 {
	id, _ := ctx.Value(tenantIDKey).(int64)
	return id
}

// ActorRole возвращает роль вызывающего из контекста запроса
func ActorRole(ctx context.Context) domain.ActorRole {
	role, ok := ctx.Value(actorRoleKey).(domain.ActorRole)
	if !ok {
		return domain.ActorCustomer
	}
	return role
}
