package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/currex/currex_backend/internal/apperrors"
	portssvc "github.com/currex/currex_backend/internal/core/ports/services"
	"github.com/currex/currex_backend/internal/dto"
	"github.com/currex/currex_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// authHandler handles HTTP requests for the account lifecycle: registration,
// login, the email-based session restore, profile access and logout.
type authHandler struct {
	userService portssvc.UserSvcFacade
}

// newAuthHandler creates a new authHandler.
func newAuthHandler(us portssvc.UserSvcFacade) *authHandler {
	return &authHandler{userService: us}
}

// registerAuthRoutes registers routes related to authentication.
func registerAuthRoutes(rg *gin.RouterGroup, userService portssvc.UserSvcFacade) {
	h := newAuthHandler(userService)

	auth := rg.Group("/auth")
	{
		auth.POST("/register", h.register)
		auth.POST("/login", h.login)
		auth.GET("/me", h.me)
		auth.GET("/profile/:userId", h.getProfile)
		auth.PUT("/profile/:userId", h.updateProfile)
		auth.POST("/logout/:userId", h.logout)
		auth.GET("/logout", h.logoutAnonymous)
	}
}

// register godoc
// @Summary Register a new user
// @Description Creates a user account with a seeded starting wallet
// @Tags auth
// @Accept json
// @Produce json
// @Param user body dto.RegisterRequest true "Registration details"
// @Success 201 {object} dto.Response{data=dto.UserResponse}
// @Failure 400 {object} dto.Response "Invalid input"
// @Failure 409 {object} dto.Response "Email already registered"
// @Failure 500 {object} dto.Response
// @Router /auth/register [post]
func (h *authHandler) register(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for register", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.Fail("Invalid request", "Name, email, and password are required"))
		return
	}

	user, err := h.userService.Register(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			logger.Warn("Attempted to register duplicate email", slog.String("email", req.Email))
			c.JSON(http.StatusConflict, dto.Fail("Duplicate email", "User with this email already exists"))
		} else {
			logger.Error("Failed to register user", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, dto.Fail("Internal error", "Internal server error during registration"))
		}
		return
	}

	logger.Info("User registered successfully", slog.String("user_id", user.UserID))
	c.JSON(http.StatusCreated, dto.OK(dto.ToUserResponse(user), "User registered successfully"))
}

// login godoc
// @Summary Log a user in
// @Description Verifies the email/password pair and returns the user
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.Response{data=dto.UserResponse}
// @Failure 400 {object} dto.Response "Invalid input"
// @Failure 401 {object} dto.Response "Invalid email or password"
// @Failure 500 {object} dto.Response
// @Router /auth/login [post]
func (h *authHandler) login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for login", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.Fail("Invalid request", "Email and password are required"))
		return
	}

	user, err := h.userService.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnauthorized) {
			logger.Warn("Login failed", slog.String("email", req.Email))
			c.JSON(http.StatusUnauthorized, dto.Fail("Unauthorized", "Invalid email or password"))
		} else {
			logger.Error("Failed to log user in", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, dto.Fail("Internal error", "Internal server error during login"))
		}
		return
	}

	logger.Info("User logged in", slog.String("user_id", user.UserID))
	c.JSON(http.StatusOK, dto.OK(dto.ToUserResponse(user), "Login successful"))
}

// me godoc
// @Summary Restore a session
// @Description Looks the user up by the client-stored email; no token scheme exists
// @Tags auth
// @Produce json
// @Param email query string true "User email"
// @Success 200 {object} dto.Response{data=dto.UserResponse}
// @Failure 401 {object} dto.Response "Unknown email or none provided"
// @Failure 500 {object} dto.Response
// @Router /auth/me [get]
func (h *authHandler) me(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	email := c.Query("email")

	user, err := h.userService.AuthenticateByEmail(c.Request.Context(), email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnauthorized) {
			logger.Warn("Session restore failed", slog.String("email", email))
			c.JSON(http.StatusUnauthorized, dto.Fail("Unauthorized", "No authentication information provided"))
		} else {
			logger.Error("Failed to restore session", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, dto.Fail("Internal error", "Internal server error during auth check"))
		}
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.ToUserResponse(user), "User authenticated"))
}

// getProfile godoc
// @Summary Get a user's profile
// @Tags auth
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {object} dto.Response{data=dto.UserResponse}
// @Failure 404 {object} dto.Response "User not found"
// @Failure 500 {object} dto.Response
// @Router /auth/profile/{userId} [get]
func (h *authHandler) getProfile(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID := c.Param("userId")

	user, err := h.userService.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Profile not found", slog.String("user_id", userID))
			c.JSON(http.StatusNotFound, dto.Fail("Not found", "User not found"))
		} else {
			logger.Error("Failed to get profile", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, dto.Fail("Internal error", "Internal server error"))
		}
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.ToUserResponse(user), "Profile retrieved successfully"))
}

// updateProfile godoc
// @Summary Update a user's profile
// @Description Changes name and email; the email must stay unique
// @Tags auth
// @Accept json
// @Produce json
// @Param userId path string true "User ID"
// @Param profile body dto.UpdateUserRequest true "New profile fields"
// @Success 200 {object} dto.Response{data=dto.UserResponse}
// @Failure 400 {object} dto.Response "Invalid input"
// @Failure 404 {object} dto.Response "User not found"
// @Failure 409 {object} dto.Response "Email already taken"
// @Failure 500 {object} dto.Response
// @Router /auth/profile/{userId} [put]
func (h *authHandler) updateProfile(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID := c.Param("userId")

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for profile update", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.Fail("Invalid request", "Name and email are required"))
		return
	}

	user, err := h.userService.UpdateUserProfile(c.Request.Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			logger.Warn("Profile to update not found", slog.String("user_id", userID))
			c.JSON(http.StatusNotFound, dto.Fail("Not found", "User not found"))
		case errors.Is(err, apperrors.ErrDuplicate):
			logger.Warn("Profile update email taken", slog.String("user_id", userID))
			c.JSON(http.StatusConflict, dto.Fail("Duplicate email", "Email is already taken by another user"))
		default:
			logger.Error("Failed to update profile", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, dto.Fail("Internal error", "Internal server error during profile update"))
		}
		return
	}

	logger.Info("Profile updated", slog.String("user_id", userID))
	c.JSON(http.StatusOK, dto.OK(dto.ToUserResponse(user), "Profile updated successfully"))
}

// logout godoc
// @Summary Log a user out
// @Description Records activity for the user; no server-side session exists to destroy
// @Tags auth
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {object} dto.Response
// @Router /auth/logout/{userId} [post]
func (h *authHandler) logout(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID := c.Param("userId")

	// A missing user is not an error the client can act on at logout time.
	if err := h.userService.TouchLastActive(c.Request.Context(), userID); err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		logger.Error("Failed to record logout activity", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.Fail("Internal error", "Internal server error during logout"))
		return
	}

	c.JSON(http.StatusOK, dto.OK(nil, "Logout successful"))
}

// logoutAnonymous godoc
// @Summary Log out without a user ID
// @Tags auth
// @Produce json
// @Success 200 {object} dto.Response
// @Router /auth/logout [get]
func (h *authHandler) logoutAnonymous(c *gin.Context) {
	c.JSON(http.StatusOK, dto.OK(nil, "Logout successful"))
}
