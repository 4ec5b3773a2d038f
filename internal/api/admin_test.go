package api

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleAdminLogin(t *testing.T) {
	tests := []struct {
		name       string
		password   string
		wantStatus int
	}{
		{name: "valid password", password: "test-password", wantStatus: fiber.StatusOK},
		{name: "wrong password", password: "nope", wantStatus: fiber.StatusUnauthorized},
		{name: "empty password", password: "", wantStatus: fiber.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server, _, _ := setupTestServer(t)

			body, _ := json.Marshal(LoginRequest{Password: tt.password})
			req := httptest.NewRequest("POST", "/api/admin/login", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")

			resp, err := server.app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)

			if tt.wantStatus != fiber.StatusOK {
				return
			}

			var login LoginResponse
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&login))
			assert.Equal(t, "Bearer", login.TokenType)

			token, err := jwt.Parse(login.Token, func(token *jwt.Token) (interface{}, error) {
				return []byte("test-secret"), nil
			})
			require.NoError(t, err)
			require.True(t, token.Valid)

			claims := token.Claims.(jwt.MapClaims)
			assert.Equal(t, "admin", claims["role"])

			exp := time.Unix(int64(claims["exp"].(float64)), 0)
			assert.WithinDuration(t, time.Now().Add(2*time.Hour), exp, time.Minute)
		})
	}
}

func TestHandleApproveProfile(t *testing.T) {
	server, mock, _ := setupTestServer(t)

	mock.ExpectExec(`UPDATE profiles SET approved = TRUE WHERE id = \$1`).
		WithArgs("bob").
		WillReturnResult(sqlmock.NewResult(0, 1))

	req := httptest.NewRequest("POST", "/api/admin/profiles/bob/approve", nil)
	resp, err := server.app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHandleApproveProfileNotFound(t *testing.T) {
	server, mock, _ := setupTestServer(t)

	mock.ExpectExec(`UPDATE profiles SET approved = TRUE WHERE id = \$1`).
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	req := httptest.NewRequest("POST", "/api/admin/profiles/missing/approve", nil)
	resp, err := server.app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestHandleRejectProfile(t *testing.T) {
	server, mock, _ := setupTestServer(t)

	mock.ExpectExec(`DELETE FROM profiles WHERE id = \$1`).
		WithArgs("bob").
		WillReturnResult(sqlmock.NewResult(0, 1))

	req := httptest.NewRequest("DELETE", "/api/admin/profiles/bob", nil)
	resp, err := server.app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHandleSetAutoApprove(t *testing.T) {
	server, mock, _ := setupTestServer(t)

	mock.ExpectExec(`INSERT INTO admin_settings`).
		WithArgs("auto_approve_profiles", false, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	body, _ := json.Marshal(map[string]bool{"enabled": false})
	req := httptest.NewRequest("PUT", "/api/admin/settings/auto-approve", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := server.app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var result map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.Equal(t, false, result["auto_approve_profiles"])
}
