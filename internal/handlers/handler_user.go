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

// userHandler handles the administrative user endpoints.
type userHandler struct {
	userService portssvc.UserSvcFacade
}

// newUserHandler creates a new userHandler.
func newUserHandler(us portssvc.UserSvcFacade) *userHandler {
	return &userHandler{userService: us}
}

// registerUserRoutes registers routes related to users.
func registerUserRoutes(rg *gin.RouterGroup, userService portssvc.UserSvcFacade) {
	h := newUserHandler(userService)

	users := rg.Group("/users")
	{
		users.GET("", h.listUsers)
		users.GET("/:id", h.getUserByID)
		users.PUT("/:id", h.updateUser)
	}
}

// listUsers godoc
// @Summary List all users
// @Description Retrieves every user, sorted by name (admin view)
// @Tags users
// @Produce json
// @Success 200 {object} dto.Response{data=[]dto.UserResponse}
// @Failure 500 {object} dto.Response
// @Router /users [get]
func (h *userHandler) listUsers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	users, err := h.userService.ListUsers(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list users", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.Fail("Database error", "Failed to retrieve users"))
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.ToListUserResponse(users), "Users retrieved successfully"))
}

// getUserByID godoc
// @Summary Get a user by ID
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} dto.Response{data=dto.UserResponse}
// @Failure 404 {object} dto.Response "User not found"
// @Failure 500 {object} dto.Response
// @Router /users/{id} [get]
func (h *userHandler) getUserByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID := c.Param("id")

	user, err := h.userService.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("User not found", slog.String("user_id", userID))
			c.JSON(http.StatusNotFound, dto.Fail("Not found", "User not found"))
		} else {
			logger.Error("Failed to get user", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, dto.Fail("Database error", "Failed to retrieve user"))
		}
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.ToUserResponse(user), "User retrieved successfully"))
}

// updateUser godoc
// @Summary Update a user
// @Description Changes name and email; same semantics as the profile update
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param user body dto.UpdateUserRequest true "New user fields"
// @Success 200 {object} dto.Response{data=dto.UserResponse}
// @Failure 400 {object} dto.Response "Invalid input"
// @Failure 404 {object} dto.Response "User not found"
// @Failure 409 {object} dto.Response "Email already taken"
// @Failure 500 {object} dto.Response
// @Router /users/{id} [put]
func (h *userHandler) updateUser(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID := c.Param("id")

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for user update", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.Fail("Invalid request", "Name and email are required"))
		return
	}

	user, err := h.userService.UpdateUserProfile(c.Request.Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			logger.Warn("User to update not found", slog.String("user_id", userID))
			c.JSON(http.StatusNotFound, dto.Fail("Not found", "User not found"))
		case errors.Is(err, apperrors.ErrDuplicate):
			logger.Warn("User update email taken", slog.String("user_id", userID))
			c.JSON(http.StatusConflict, dto.Fail("Duplicate email", "Email is already taken by another user"))
		default:
			logger.Error("Failed to update user", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, dto.Fail("Database error", "Failed to update user"))
		}
		return
	}

	logger.Info("User updated", slog.String("user_id", userID))
	c.JSON(http.StatusOK, dto.OK(dto.ToUserResponse(user), "User updated successfully"))
}
