package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/currex/currex_backend/internal/apperrors"
	portssvc "github.com/currex/currex_backend/internal/core/ports/services"
	"github.com/currex/currex_backend/internal/dto"
	"github.com/currex/currex_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// walletHandler handles HTTP requests related to wallets.
type walletHandler struct {
	walletService portssvc.WalletSvcFacade
}

// newWalletHandler creates a new walletHandler.
func newWalletHandler(ws portssvc.WalletSvcFacade) *walletHandler {
	return &walletHandler{walletService: ws}
}

// registerWalletRoutes registers routes related to wallets.
func registerWalletRoutes(rg *gin.RouterGroup, walletService portssvc.WalletSvcFacade) {
	h := newWalletHandler(walletService)

	wallets := rg.Group("/wallets")
	{
		wallets.GET("", h.listWallets)
		wallets.POST("", h.createWallet)
		wallets.GET("/user/:userId", h.getUserWallets)
		wallets.PUT("/user/:userId/currency/:currencyCode", h.creditWallet)
	}
}

// listWallets godoc
// @Summary List all wallets
// @Description Retrieves every wallet, sorted by currency code (admin view)
// @Tags wallets
// @Produce json
// @Success 200 {object} dto.Response{data=[]dto.WalletResponse}
// @Failure 500 {object} dto.Response
// @Router /wallets [get]
func (h *walletHandler) listWallets(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	wallets, err := h.walletService.ListWallets(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list wallets", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.Fail("Database error", "Failed to retrieve wallets"))
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.ToListWalletResponse(wallets), "Wallets retrieved successfully"))
}

// getUserWallets godoc
// @Summary List one user's wallets
// @Tags wallets
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {object} dto.Response{data=[]dto.WalletResponse}
// @Failure 500 {object} dto.Response
// @Router /wallets/user/{userId} [get]
func (h *walletHandler) getUserWallets(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID := c.Param("userId")

	wallets, err := h.walletService.GetUserWallets(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to list user wallets", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.Fail("Database error", "Failed to retrieve user wallets"))
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.ToListWalletResponse(wallets), "User wallets retrieved successfully"))
}

// creditWallet godoc
// @Summary Apply a balance change to a wallet
// @Description Adds amount (possibly negative) to the wallet; a missing wallet is created when amount >= 0
// @Tags wallets
// @Accept json
// @Produce json
// @Param userId path string true "User ID"
// @Param currencyCode path string true "Currency code"
// @Param change body dto.CreditWalletRequest true "Balance change"
// @Success 200 {object} dto.Response{data=dto.WalletResponse}
// @Failure 400 {object} dto.Response "Invalid input or insufficient funds"
// @Failure 500 {object} dto.Response
// @Router /wallets/user/{userId}/currency/{currencyCode} [put]
func (h *walletHandler) creditWallet(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID := c.Param("userId")
	currencyCode := c.Param("currencyCode")

	var req dto.CreditWalletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for wallet credit", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.Fail("Invalid amount", "Amount must be a number"))
		return
	}

	wallet, err := h.walletService.CreditWallet(c.Request.Context(), userID, currencyCode, req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrInsufficientFunds):
			logger.Warn("Rejected negative wallet creation",
				slog.String("user_id", userID), slog.String("currency_code", currencyCode))
			c.JSON(http.StatusBadRequest, dto.Fail("Insufficient funds", "Cannot create wallet with negative balance"))
		case errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Invalid wallet credit", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, dto.Fail("Invalid parameters", "User ID and currency code are required"))
		default:
			logger.Error("Failed to credit wallet", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, dto.Fail("Database error", "Failed to update wallet"))
		}
		return
	}

	logger.Info("Wallet updated",
		slog.String("user_id", userID),
		slog.String("currency_code", wallet.CurrencyCode),
		slog.String("balance", wallet.Balance.String()))
	c.JSON(http.StatusOK, dto.OK(dto.ToWalletResponse(wallet), "Wallet updated successfully"))
}

// createWallet godoc
// @Summary Create a wallet
// @Description Explicitly creates a wallet for a (user, currency) pair
// @Tags wallets
// @Accept json
// @Produce json
// @Param wallet body dto.CreateWalletRequest true "Wallet details"
// @Success 201 {object} dto.Response{data=dto.WalletResponse}
// @Failure 400 {object} dto.Response "Invalid input"
// @Failure 409 {object} dto.Response "Wallet already exists"
// @Failure 500 {object} dto.Response
// @Router /wallets [post]
func (h *walletHandler) createWallet(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateWalletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for wallet creation", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.Fail("Missing required fields", "User ID and currency code are required"))
		return
	}

	wallet, err := h.walletService.CreateWallet(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			code := strings.ToUpper(req.CurrencyCode)
			logger.Warn("Attempted to create duplicate wallet",
				slog.String("user_id", req.UserID), slog.String("currency_code", code))
			c.JSON(http.StatusConflict, dto.Fail("Wallet already exists",
				fmt.Sprintf("Wallet for %s already exists for this user", code)))
		} else {
			logger.Error("Failed to create wallet", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, dto.Fail("Database error", "Failed to create wallet"))
		}
		return
	}

	logger.Info("Wallet created",
		slog.String("user_id", wallet.UserID), slog.String("currency_code", wallet.CurrencyCode))
	c.JSON(http.StatusCreated, dto.OK(dto.ToWalletResponse(wallet), "Wallet created successfully"))
}
