package auth

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"log/slog"

	"github.com/aurelia-jewels/reports-manager/internal/auth/jwt"
	"github.com/aurelia-jewels/reports-manager/internal/auth/pwhash"
	"github.com/go-chi/jwtauth/v5"
)

const (
	// AuthHeaderKey is the header carrying the bearer token.
	AuthHeaderKey = "Authorization"
)

// Server implements dashboard authentication: it validates the master
// password and issues the JWTs that guard the admin routes.
type Server struct {
	pwhash     *pwhash.PasswordHasher
	JwtAuth    *jwtauth.JWTAuth
	jwtTTL     time.Duration
	masterHash string
}

// Config contains the configuration for the auth server.
type Config struct {
	JWTSecret                string `mapstructure:"jwt_secret"`
	MasterPassword           string `mapstructure:"master_password"`
	PasswordHasherSaltSize   int    `mapstructure:"password_hasher_salt_size"`
	PasswordHasherIterations int    `mapstructure:"password_hasher_iterations"`
	JWTTTL                   string `mapstructure:"jwt_ttl"`
}

// New creates a new auth server.
func New(c *Config) (*Server, error) {
	ph, err := pwhash.New(c.PasswordHasherSaltSize, c.PasswordHasherIterations)
	if err != nil {
		return nil, err
	}
	hash, err := ph.HashPassword(c.MasterPassword)
	if err != nil {
		return nil, err
	}
	if err := ph.Validate(c.MasterPassword, hash); err != nil {
		return nil, err
	}

	ttl, err := time.ParseDuration(c.JWTTTL)
	if err != nil {
		return nil, err
	}

	return &Server{
		pwhash:     ph,
		JwtAuth:    jwtauth.New("HS256", []byte(c.JWTSecret), nil),
		jwtTTL:     ttl,
		masterHash: hash,
	}, nil
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	AuthToken string `json:"authToken"`
}

// Login issues an auth token for the provided credentials.
func (s *Server) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	if err := s.pwhash.Validate(req.Password, s.masterHash); err != nil {
		slog.Default().InfoContext(r.Context(), "failed login attempt",
			slog.String("username", req.Username),
		)
		http.Error(w, "not authenticated", http.StatusUnauthorized)
		return
	}

	token, err := jwt.NewTokenWithSubject(s.JwtAuth, s.jwtTTL, strings.ToLower(req.Username))
	if err != nil {
		http.Error(w, "can't issue token", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(loginResponse{AuthToken: token})
}

// WithAuth middleware checks if the caller is authenticated.
func (s *Server) WithAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := strings.TrimPrefix(r.Header.Get(AuthHeaderKey), "Bearer ")
		_, err := jwt.VerifyToken(s.JwtAuth, token)
		if err != nil {
			http.Error(w, fmt.Sprintf("invalid token %v", err.Error()), http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}
