package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/reservly/booking-engine/internal/domain"
)

func authProbe(t *testing.T) (http.Handler, *int64, *domain.ActorRole) {
	t.Helper()
	var gotTenant int64
	var gotRole domain.ActorRole
	h := Auth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotTenant = TenantID(r.Context())
		gotRole = ActorRole(r.Context())
		w.WriteHeader(http.StatusOK)
	}))
	return h, &gotTenant, &gotRole
}

func TestAuth(t *testing.T) {
	testCases := []struct {
		name           string
		tenantHeader   string
		roleHeader     string
		expectedStatus int
		expectedTenant int64
		expectedRole   domain.ActorRole
	}{
		{
			name:           "valid customer",
			tenantHeader:   "1",
			roleHeader:     "customer",
			expectedStatus: http.StatusOK,
			expectedTenant: 1,
			expectedRole:   domain.ActorCustomer,
		},
		{
			name:           "role defaults to customer",
			tenantHeader:   "42",
			expectedStatus: http.StatusOK,
			expectedTenant: 42,
			expectedRole:   domain.ActorCustomer,
		},
		{
			name:           "staff role",
			tenantHeader:   "1",
			roleHeader:     "staff",
			expectedStatus: http.StatusOK,
			expectedTenant: 1,
			expectedRole:   domain.ActorStaff,
		},
		{
			name:           "missing tenant",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "non-numeric tenant",
			tenantHeader:   "acme",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "non-positive tenant",
			tenantHeader:   "0",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "unknown role",
			tenantHeader:   "1",
			roleHeader:     "superadmin",
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			handler, gotTenant, gotRole := authProbe(t)

			req := httptest.NewRequest(http.MethodGet, "/bookings/1", nil)
			if tc.tenantHeader != "" {
				req.Header.Set("X-Tenant-ID", tc.tenantHeader)
			}
			if tc.roleHeader != "" {
				req.Header.Set("X-Actor-Role", tc.roleHeader)
			}

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tc.expectedStatus, rec.Code)
			if tc.expectedStatus == http.StatusOK {
				assert.Equal(t, tc.expectedTenant, *gotTenant)
				assert.Equal(t, tc.expectedRole, *gotRole)
			}
		})
	}
}

func TestStaffOnly(t *testing.T) {
	handler := Auth(StaffOnly(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})))

	testCases := []struct {
		name           string
		role           string
		expectedStatus int
	}{
		{name: "staff allowed", role: "staff", expectedStatus: http.StatusOK},
		{name: "system allowed", role: "system", expectedStatus: http.StatusOK},
		{name: "customer rejected", role: "customer", expectedStatus: http.StatusForbidden},
		{name: "default role rejected", expectedStatus: http.StatusForbidden},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPatch, "/bookings/1/no-show", nil)
			req.Header.Set("X-Tenant-ID", "1")
			if tc.role != "" {
				req.Header.Set("X-Actor-Role", tc.role)
			}

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)
			assert.Equal(t, tc.expectedStatus, rec.Code)
		})
	}
}
