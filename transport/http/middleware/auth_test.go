package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"hms/infras/jwt"
	jwtMocks "hms/infras/jwt/mocks"
	otelMocks "hms/infras/otel/mocks"
	"hms/shared/constant"
	"hms/transport/http/middleware"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAuth(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		setup     func(m *jwtMocks.MockJWT)
		wantCode  int
		wantError string
	}{
		{
			name:      "missing header",
			wantCode:  http.StatusUnauthorized,
			wantError: "Missing authorization header",
		},
		{
			name:      "not a bearer token",
			header:    "Basic abc",
			wantCode:  http.StatusUnauthorized,
			wantError: "Invalid authorization header format",
		},
		{
			name:   "expired token",
			header: "Bearer old",
			setup: func(m *jwtMocks.MockJWT) {
				m.EXPECT().ValidateToken("old").Return(nil, jwt.ErrExpiredToken)
			},
			wantCode:  http.StatusUnauthorized,
			wantError: "Token has expired",
		},
		{
			name:   "tampered token",
			header: "Bearer bad",
			setup: func(m *jwtMocks.MockJWT) {
				m.EXPECT().ValidateToken("bad").Return(nil, jwt.ErrInvalidToken)
			},
			wantCode:  http.StatusUnauthorized,
			wantError: "Invalid token",
		},
		{
			name:   "valid token",
			header: "Bearer good",
			setup: func(m *jwtMocks.MockJWT) {
				m.EXPECT().ValidateToken("good").Return(&jwt.Claims{
					UserID:  "admin",
					Role:    constant.RoleAdmin,
					TokenID: "token-1",
					Type:    jwt.AccessToken,
				}, nil)
			},
			wantCode: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			jwtService := jwtMocks.NewMockJWT(ctrl)

			if tt.setup != nil {
				tt.setup(jwtService)
			}

			var user, role string

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				user, _ = r.Context().Value(constant.ContextKeyUserID).(string)
				role, _ = r.Context().Value(constant.ContextKeyUserRole).(string)

				w.WriteHeader(http.StatusOK)
			})

			request := httptest.NewRequest(http.MethodGet, "/v1/bookings", nil)
			if tt.header != "" {
				request.Header.Set(constant.RequestHeaderAuthorization, tt.header)
			}

			recorder := httptest.NewRecorder()
			middleware.NewAuthMiddleware(jwtService, otelMocks.NewOtel()).Auth(next).ServeHTTP(recorder, request)

			require.Equal(t, tt.wantCode, recorder.Code)

			if tt.wantError != "" {
				var body map[string]string
				require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
				assert.Equal(t, tt.wantError, body["error"])
				assert.Empty(t, user)

				return
			}

			assert.Equal(t, "admin", user)
			assert.Equal(t, constant.RoleAdmin, role)
		})
	}
}
