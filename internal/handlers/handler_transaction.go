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

// transactionHandler handles HTTP requests for the conversion ledger.
type transactionHandler struct {
	txnService portssvc.TransactionSvcFacade
}

// newTransactionHandler creates a new transactionHandler.
func newTransactionHandler(ts portssvc.TransactionSvcFacade) *transactionHandler {
	return &transactionHandler{txnService: ts}
}

// RegisterTransactionRoutes registers routes related to transactions.
func RegisterTransactionRoutes(rg *gin.RouterGroup, txnService portssvc.TransactionSvcFacade) {
	h := newTransactionHandler(txnService)

	txns := rg.Group("/transactions")
	{
		txns.GET("", h.listTransactions)
		txns.POST("", h.createConversion)
		txns.GET("/:id", h.getTransactionByID)
		txns.GET("/user/:userId", h.listUserTransactions)
		txns.PUT("/:id", h.updateTransactionStatus)
	}
}

// listTransactions godoc
// @Summary List transactions
// @Description Retrieves the ledger newest first; ?userId= filters to one user
// @Tags transactions
// @Produce json
// @Param userId query string false "Filter by user ID"
// @Success 200 {object} dto.Response{data=[]dto.TransactionResponse}
// @Failure 500 {object} dto.Response
// @Router /transactions [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var query dto.TransactionListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("Invalid parameters", "Invalid query parameters"))
		return
	}

	txns, err := h.txnService.ListTransactions(c.Request.Context(), query.UserID)
	if err != nil {
		logger.Error("Failed to list transactions", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.Fail("Database error", "Failed to retrieve transactions"))
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.ToListTransactionResponse(txns), "Transactions retrieved successfully"))
}

// getTransactionByID godoc
// @Summary Get a transaction by ID
// @Tags transactions
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 200 {object} dto.Response{data=dto.TransactionResponse}
// @Failure 404 {object} dto.Response "Transaction not found"
// @Failure 500 {object} dto.Response
// @Router /transactions/{id} [get]
func (h *transactionHandler) getTransactionByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	transactionID := c.Param("id")

	txn, err := h.txnService.GetTransactionByID(c.Request.Context(), transactionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Transaction not found", slog.String("transaction_id", transactionID))
			c.JSON(http.StatusNotFound, dto.Fail("Transaction not found", "Transaction with this ID does not exist"))
		} else {
			logger.Error("Failed to get transaction", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, dto.Fail("Database error", "Failed to retrieve transaction"))
		}
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.ToTransactionResponse(txn), "Transaction retrieved successfully"))
}

// listUserTransactions godoc
// @Summary List one user's transactions
// @Description Retrieves one user's transactions newest first
// @Tags transactions
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {object} dto.Response{data=[]dto.TransactionResponse}
// @Failure 500 {object} dto.Response
// @Router /transactions/user/{userId} [get]
func (h *transactionHandler) listUserTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID := c.Param("userId")

	txns, err := h.txnService.ListTransactions(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to list user transactions", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.Fail("Database error", "Failed to retrieve transactions"))
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.ToListTransactionResponse(txns), "Transactions retrieved successfully"))
}

// createConversion godoc
// @Summary Execute a currency conversion
// @Description Resolves the rate, computes the destination amount, records the transaction and credits the destination wallet
// @Tags transactions
// @Accept json
// @Produce json
// @Param conversion body dto.CreateConversionRequest true "Conversion details"
// @Success 201 {object} dto.Response{data=dto.TransactionResponse}
// @Failure 400 {object} dto.Response "Invalid input"
// @Failure 404 {object} dto.Response "No rate stored for the pair"
// @Failure 500 {object} dto.Response
// @Router /transactions [post]
func (h *transactionHandler) createConversion(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateConversionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for conversion", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.Fail("Missing required fields", "All transaction fields are required"))
		return
	}

	txn, err := h.txnService.Convert(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Invalid conversion request", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, dto.Fail("Invalid amount", "Amount must be a number greater than zero"))
		case errors.Is(err, apperrors.ErrNotFound):
			logger.Warn("No rate for conversion",
				slog.String("from", req.FromCurrency), slog.String("to", req.ToCurrency))
			c.JSON(http.StatusNotFound, dto.Fail("Rate not found", "Exchange rate not found for this pair"))
		case errors.Is(err, apperrors.ErrInsufficientFunds):
			logger.Warn("Conversion rejected", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, dto.Fail("Insufficient funds", "Cannot create wallet with negative balance"))
		default:
			logger.Error("Failed to execute conversion", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, dto.Fail("Database error", "Failed to create transaction"))
		}
		return
	}

	logger.Info("Conversion executed",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("user_id", txn.UserID))
	c.JSON(http.StatusCreated, dto.OK(dto.ToTransactionResponse(txn), "Transaction created successfully"))
}

// updateTransactionStatus godoc
// @Summary Update a transaction's status
// @Description Administrative status change; status must be pending, completed or failed
// @Tags transactions
// @Accept json
// @Produce json
// @Param id path string true "Transaction ID"
// @Param status body dto.UpdateTransactionStatusRequest true "New status"
// @Success 200 {object} dto.Response{data=dto.TransactionResponse}
// @Failure 400 {object} dto.Response "Invalid status"
// @Failure 404 {object} dto.Response "Transaction not found"
// @Failure 500 {object} dto.Response
// @Router /transactions/{id} [put]
func (h *transactionHandler) updateTransactionStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	transactionID := c.Param("id")

	var req dto.UpdateTransactionStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for status update", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.Fail("Invalid status", "Status must be pending, completed, or failed"))
		return
	}

	txn, err := h.txnService.UpdateTransactionStatus(c.Request.Context(), transactionID, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, dto.Fail("Invalid status", "Status must be pending, completed, or failed"))
		case errors.Is(err, apperrors.ErrNotFound):
			logger.Warn("Transaction to update not found", slog.String("transaction_id", transactionID))
			c.JSON(http.StatusNotFound, dto.Fail("Transaction not found", "Transaction with this ID does not exist"))
		default:
			logger.Error("Failed to update transaction status", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, dto.Fail("Database error", "Failed to update transaction"))
		}
		return
	}

	logger.Info("Transaction status updated",
		slog.String("transaction_id", transactionID), slog.String("status", string(txn.Status)))
	c.JSON(http.StatusOK, dto.OK(dto.ToTransactionResponse(txn), "Transaction updated successfully"))
}
