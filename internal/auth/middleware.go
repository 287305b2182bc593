package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/IreshEranga/Finance-Tracker/internal/user"
)

// ContextUserKey is the request-context key under which the middleware stores
// the authenticated *user.User.
const ContextUserKey = "user"

type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func writeJSONError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(ErrorResponse{Status: "error", Message: message})
}

type Service interface {
	JWTAccessTokenMiddleware() func(http.Handler) http.Handler
}

type service struct {
	jwtManager  *JWTManager
	userService user.Service
}

func NewAuthService(jwtManager *JWTManager, userService user.Service) Service {
	return &service{jwtManager: jwtManager, userService: userService}
}

// JWTAccessTokenMiddleware validates the bearer token, resolves the verified
// identity (id, name, email, role) and injects it into the request context.
func (s *service) JWTAccessTokenMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				writeJSONError(w, http.StatusUnauthorized, "Authorization header is required")
				return
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == authHeader {
				writeJSONError(w, http.StatusUnauthorized, "Invalid token format")
				return
			}

			userID, err := s.jwtManager.ValidateAccessToken(tokenString)
			if err != nil {
				writeJSONError(w, http.StatusUnauthorized, "Invalid or expired token")
				return
			}

			requester, err := s.userService.GetUserByID(userID)
			if err != nil {
				if errors.Is(err, user.ErrUserNotFound) {
					writeJSONError(w, http.StatusUnauthorized, user.ErrUserNotFound.Error())
					return
				}
				writeJSONError(w, http.StatusInternalServerError, "Internal server error")
				return
			}

			ctx := context.WithValue(r.Context(), ContextUserKey, requester)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
