package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *Config {
	return &Config{
		JWTSecret:                "test-secret",
		MasterPassword:           "master-pass",
		PasswordHasherSaltSize:   16,
		PasswordHasherIterations: 1000,
		JWTTTL:                   "1h",
	}
}

func TestLogin(t *testing.T) {
	s, err := New(testConfig())
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"username":"admin","password":"master-pass"}`))
	w := httptest.NewRecorder()
	s.Login(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "authToken")
}

func TestLoginWrongPassword(t *testing.T) {
	s, err := New(testConfig())
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"username":"admin","password":"nope"}`))
	w := httptest.NewRecorder()
	s.Login(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginBadBody(t *testing.T) {
	s, err := New(testConfig())
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader("{"))
	w := httptest.NewRecorder()
	s.Login(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestWithAuth(t *testing.T) {
	s, err := New(testConfig())
	require.NoError(t, err)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	guarded := s.WithAuth(next)

	// no token
	w := httptest.NewRecorder()
	guarded.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/admin/report", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// garbage token
	req := httptest.NewRequest(http.MethodGet, "/api/admin/report", nil)
	req.Header.Set(AuthHeaderKey, "Bearer not-a-jwt")
	w = httptest.NewRecorder()
	guarded.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// token issued by Login passes
	loginReq := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"username":"admin","password":"master-pass"}`))
	loginW := httptest.NewRecorder()
	s.Login(loginW, loginReq)
	require.Equal(t, http.StatusOK, loginW.Code)

	var resp struct {
		AuthToken string `json:"authToken"`
	}
	require.NoError(t, jsonDecode(loginW.Body.String(), &resp))

	req = httptest.NewRequest(http.MethodGet, "/api/admin/report", nil)
	req.Header.Set(AuthHeaderKey, "Bearer "+resp.AuthToken)
	w = httptest.NewRecorder()
	guarded.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func jsonDecode(s string, v any) error {
	return json.NewDecoder(strings.NewReader(s)).Decode(v)
}
