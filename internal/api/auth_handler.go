package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/abdelmajidelayachi/task-manager/internal/api/shared"
	"github.com/abdelmajidelayachi/task-manager/internal/platform/logger"
	"github.com/abdelmajidelayachi/task-manager/internal/service"
	"github.com/abdelmajidelayachi/task-manager/internal/service/auth"
	"github.com/abdelmajidelayachi/task-manager/internal/store"
)

// AuthHandler handles the public authentication endpoints.
type AuthHandler struct {
	userService *service.UserService
	jwtService  auth.JWTService
	hasher      auth.PasswordHasher
	validator   *validator.Validate
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(
	userService *service.UserService,
	jwtService auth.JWTService,
	hasher auth.PasswordHasher,
) *AuthHandler {
	return &AuthHandler{
		userService: userService,
		jwtService:  jwtService,
		hasher:      hasher,
		validator:   newValidator(),
	}
}

// Register handles POST /auth/register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, errTitleBadRequest,
			"Invalid JSON format or invalid field values")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		respondValidationError(w, r, err)
		return
	}

	if err := h.userService.Register(r.Context(), req.Name, req.Username, req.Password); err != nil {
		if errors.Is(err, store.ErrUsernameExists) {
			shared.RespondWithError(w, r, http.StatusConflict, errTitleConflict,
				fmt.Sprintf("Username '%s' is already taken", req.Username))
			return
		}
		logger.FromContext(r.Context()).Error("failed to register user",
			"error", err, "username", req.Username)
		shared.RespondWithError(w, r, http.StatusInternalServerError, errTitleInternal,
			"An unexpected error occurred. Please try again later.")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, shared.SuccessResponse{
		Message:   "User registered successfully!",
		Timestamp: shared.Timestamp(time.Now()),
		Status:    true,
	})
}

// Login handles POST /auth/login. On success it returns a fresh access
// token; on failure the body never reveals whether the password or the
// username was wrong.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, errTitleBadRequest,
			"Invalid JSON format or invalid field values")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		respondValidationError(w, r, err)
		return
	}

	user, err := h.userService.GetByUsername(r.Context(), req.Username)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			shared.RespondWithError(w, r, http.StatusUnauthorized, errTitleAuthentication,
				fmt.Sprintf("User not found with username: %s", req.Username))
			return
		}
		logger.FromContext(r.Context()).Error("failed to load user during login",
			"error", err, "username", req.Username)
		shared.RespondWithError(w, r, http.StatusInternalServerError, errTitleInternal,
			"An unexpected error occurred. Please try again later.")
		return
	}

	if err := h.hasher.Compare(user.HashedPassword, req.Password); err != nil {
		shared.RespondWithError(w, r, http.StatusUnauthorized, errTitleAuthentication,
			"Invalid username or password.")
		return
	}

	token, err := h.jwtService.GenerateToken(r.Context(), user.Username)
	if err != nil {
		logger.FromContext(r.Context()).Error("failed to generate token",
			"error", err, "username", user.Username)
		shared.RespondWithError(w, r, http.StatusInternalServerError, errTitleInternal,
			"An unexpected error occurred. Please try again later.")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, AuthResponse{AccessToken: token})
}
