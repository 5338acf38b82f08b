package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"resumewise-backend/internal/config"
	"resumewise-backend/internal/dto"
	"resumewise-backend/internal/middleware"
	"resumewise-backend/internal/models"
	"resumewise-backend/internal/repository"
	"resumewise-backend/internal/utils"
)

// AuthHandler handles authentication-related HTTP requests
type AuthHandler struct {
	users      repository.UserRepository
	jwtCfg     *config.JWTConfig
	production bool
	logger     *zap.Logger
}

// NewAuthHandler creates a new AuthHandler instance
func NewAuthHandler(users repository.UserRepository, jwtCfg *config.JWTConfig, production bool, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{users: users, jwtCfg: jwtCfg, production: production, logger: logger}
}

// Signup handles user registration
// @Summary Register a new user
// @Description Create a new user account with email and password
// @Tags authentication
// @Accept json
// @Produce json
// @Param request body dto.SignupRequest true "User registration data"
// @Success 201 {object} dto.MessageResponse "User created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 409 {object} dto.ErrorResponse "Email already registered"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/auth/signup [post]
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req dto.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	// Validate required fields
	if req.Email == "" || req.Password == "" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Missing required fields", "Email and password are required")
		return
	}
	if !validEmail(req.Email) {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid email", "Email address format is invalid")
		return
	}
	if len(req.Password) < 6 {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid password", "Password must be at least 6 characters")
		return
	}

	// Hash password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		h.logger.Error("failed to hash password", zap.Error(err))
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to hash password", err.Error())
		return
	}

	user := &models.User{
		ID:           uuid.New(),
		Email:        req.Email,
		PasswordHash: string(hashedPassword),
		Name:         req.Name,
		CreatedAt:    time.Now(),
	}

	if err := h.users.Create(r.Context(), user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			utils.WriteErrorResponse(w, http.StatusConflict, "Email already registered",
				"This email is already registered. Please use a different email or log in.")
			return
		}
		h.logger.Error("failed to create user", zap.Error(err))
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to create user", "Database error")
		return
	}

	utils.WriteJSONResponse(w, http.StatusCreated, dto.MessageResponse{Message: "Registration successful"})
}

// validEmail accepts only a bare address with a dotted domain;
// display-name forms and dotless domains like "a@b" are rejected.
func validEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return false
	}
	domain := email[strings.LastIndex(email, "@")+1:]
	return strings.Contains(domain, ".")
}

// Login handles user login
// @Summary Login user
// @Description Authenticate user with email and password, set JWT session cookie
// @Tags authentication
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.AuthResponse "Login successful"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	if req.Email == "" || req.Password == "" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Missing required fields", "Email and password are required")
		return
	}

	// A still-valid session short-circuits the login
	if cookie, err := r.Cookie(middleware.CookieName); err == nil && cookie.Value != "" {
		if claims, err := middleware.ValidateToken(cookie.Value, h.jwtCfg); err == nil {
			if user, err := h.users.GetByEmail(r.Context(), claims.Email); err == nil {
				utils.WriteJSONResponse(w, http.StatusOK, dto.AuthResponse{
					User:    dto.UserPayload{Email: user.Email, Name: user.Name},
					Message: "Already logged in.",
				})
				return
			}
		}
	}

	user, err := h.users.GetByEmail(r.Context(), req.Email)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			h.logger.Error("failed to look up user", zap.Error(err))
		}
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Invalid credentials", "Email or password is incorrect")
		return
	}

	// Verify password
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Invalid credentials", "Email or password is incorrect")
		return
	}

	// Generate JWT token and set session cookie
	token, err := middleware.GenerateToken(user.ID, user.Email, h.jwtCfg)
	if err != nil {
		h.logger.Error("failed to generate token", zap.Error(err))
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to generate token", err.Error())
		return
	}

	http.SetCookie(w, middleware.SessionCookie(token, h.jwtCfg, h.production))

	utils.WriteJSONResponse(w, http.StatusOK, dto.AuthResponse{
		User:    dto.UserPayload{Email: user.Email},
		Message: "Login successful",
	})
}

// Logout handles user logout
// @Summary Logout user
// @Description Clear the JWT session cookie
// @Tags authentication
// @Produce json
// @Success 200 {object} dto.MessageResponse "Logout successful"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /api/auth/logout [post]
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	http.SetCookie(w, middleware.ExpiredSessionCookie(h.production))
	utils.WriteJSONResponse(w, http.StatusOK, dto.MessageResponse{Message: "Logout successful"})
}

// GetUser returns the current user's profile
// @Summary Get current user
// @Description Get the authenticated user's profile information
// @Tags authentication
// @Produce json
// @Success 200 {object} dto.AuthResponse "User profile"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Router /api/auth/user [get]
func (h *AuthHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	// Set by AuthMiddleware
	userID, ok := r.Context().Value(middleware.UserIDKey).(uuid.UUID)
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "User not authenticated")
		return
	}

	user, err := h.users.GetByID(r.Context(), userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.WriteErrorResponse(w, http.StatusNotFound, "User not found", "No user matches the session")
			return
		}
		h.logger.Error("failed to load user", zap.Error(err))
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to load user", "Database error")
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.AuthResponse{
		User: dto.UserPayload{Email: user.Email, Name: user.Name},
	})
}
