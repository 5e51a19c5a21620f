package v1

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contestcorner/contest-corner-api/internal/api/handler/v1/response"
	"github.com/contestcorner/contest-corner-api/internal/api/middleware"
	"github.com/contestcorner/contest-corner-api/internal/config"
	"github.com/contestcorner/contest-corner-api/internal/pkg/jwthelper"
)

func setupAuthRouter(conf *config.APIConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	handler := NewAuthHandler(conf)
	router.POST("/jwt", handler.HandleIssueToken)
	router.GET("/logout", handler.HandleLogout)
	router.GET("/", HandleHealthcheck)

	return router
}

func testAPIConfig(transport string) *config.APIConfig {
	return &config.APIConfig{
		Environment:   "development",
		JWTSigningKey: "test-signing-key",
		JWTTransport:  transport,
	}
}

func tokenCookie(resp *httptest.ResponseRecorder) *http.Cookie {
	for _, cookie := range resp.Result().Cookies() {
		if cookie.Name == middleware.TokenCookieName {
			return cookie
		}
	}

	return nil
}

func TestHandleIssueToken(t *testing.T) {
	tests := []struct {
		name       string
		transport  string
		wantCookie bool
		wantToken  bool
	}{
		{"cookie transport", middleware.TransportCookie, true, false},
		{"header transport", middleware.TransportHeader, false, true},
		{"auto transport sets both", middleware.TransportAuto, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := setupAuthRouter(testAPIConfig(tt.transport))

			body := `{"email":"alice@example.com","name":"Alice","role":"participant"}`
			req := httptest.NewRequest(http.MethodPost, "/jwt", strings.NewReader(body))
			req.Header.Set("Content-Type", "application/json")

			resp := httptest.NewRecorder()
			router.ServeHTTP(resp, req)

			require.Equal(t, http.StatusOK, resp.Code)

			tokenResp := response.TokenResponse{}
			require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &tokenResp))
			assert.True(t, tokenResp.Success)

			cookie := tokenCookie(resp)
			if tt.wantCookie {
				require.NotNil(t, cookie)
				assert.NotEmpty(t, cookie.Value)
				assert.True(t, cookie.HttpOnly)

				claims, err := jwthelper.ParseToken([]byte("test-signing-key"), cookie.Value)
				require.NoError(t, err)
				assert.Equal(t, "alice@example.com", claims.Email)
			} else {
				assert.Nil(t, cookie)
			}

			if tt.wantToken {
				require.NotEmpty(t, tokenResp.Token)

				claims, err := jwthelper.ParseToken([]byte("test-signing-key"), tokenResp.Token)
				require.NoError(t, err)
				assert.Equal(t, "Alice", claims.Name)
				assert.Equal(t, "participant", claims.Role)
			} else {
				assert.Empty(t, tokenResp.Token)
			}
		})
	}
}

func TestHandleIssueTokenRejectsBadPayload(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"invalid email", `{"email":"not-an-email"}`},
		{"missing email", `{"name":"Alice"}`},
		{"unknown role", `{"email":"alice@example.com","role":"superuser"}`},
		{"malformed json", `{`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := setupAuthRouter(testAPIConfig(middleware.TransportAuto))

			req := httptest.NewRequest(http.MethodPost, "/jwt", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")

			resp := httptest.NewRecorder()
			router.ServeHTTP(resp, req)

			assert.Equal(t, http.StatusBadRequest, resp.Code)
		})
	}
}

func TestHandleLogoutClearsCookie(t *testing.T) {
	router := setupAuthRouter(testAPIConfig(middleware.TransportCookie))

	req := httptest.NewRequest(http.MethodGet, "/logout", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	require.Equal(t, http.StatusOK, resp.Code)

	cookie := tokenCookie(resp)
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.Negative(t, cookie.MaxAge)
}

func TestHandleHealthcheck(t *testing.T) {
	router := setupAuthRouter(testAPIConfig(middleware.TransportAuto))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "Hello from Contest Corner server", resp.Body.String())
}
