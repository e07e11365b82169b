package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/pocket_money_app/internal/apperrors"
	"github.com/SscSPs/pocket_money_app/internal/core/domain"
	portssvc "github.com/SscSPs/pocket_money_app/internal/core/ports/services"
	"github.com/SscSPs/pocket_money_app/internal/dto"
	"github.com/SscSPs/pocket_money_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// childHandler handles HTTP requests for a child's account.
type childHandler struct {
	coordinator    portssvc.CoordinatorSvc
	wsWriteTimeout time.Duration
}

// newChildHandler creates a new childHandler.
func newChildHandler(coordinator portssvc.CoordinatorSvc, wsWriteTimeout time.Duration) *childHandler {
	return &childHandler{
		coordinator:    coordinator,
		wsWriteTimeout: wsWriteTimeout,
	}
}

// registerChildRoutes registers routes related to child accounts. writeGuard runs
// in front of the endpoints that record transactions.
func registerChildRoutes(r *gin.Engine, coordinator portssvc.CoordinatorSvc, writeGuard gin.HandlerFunc, wsWriteTimeout time.Duration) {
	h := newChildHandler(coordinator, wsWriteTimeout)

	child := r.Group("/child/:name")
	{
		child.GET("", h.getChildAccount)
		child.POST("/give", writeGuard, h.give)
		child.POST("/spend", writeGuard, h.spend)
		child.GET("/notifications", h.streamNotifications)
	}
}

// getChildAccount godoc
// @Summary Get a child's account
// @Description Returns the balance and full transaction history. Unknown children have a zero balance.
// @Tags child
// @Produce  json
// @Param   name path string true "Child name"
// @Success 200 {object} dto.ChildAccountResponse
// @Failure 500 {object} dto.ErrorResponse "Internal Error"
// @Router /child/{name} [get]
func (h *childHandler) getChildAccount(c *gin.Context) {
	childName := c.Param("name")
	logger := middleware.GetLoggerFromContext(c).With(slog.String("child_name", childName))

	snapshot, err := h.coordinator.ChildAccount(c.Request.Context(), childName)
	if err != nil {
		respondError(c, logger, err)
		return
	}

	logger.Info("Account retrieved successfully", slog.Int("transactions", len(snapshot.Transactions)))
	c.JSON(http.StatusOK, dto.ToChildAccountResponse(snapshot))
}

// give godoc
// @Summary Give money to a child
// @Description Credits the account with a positive amount
// @Tags child
// @Accept  json
// @Produce  json
// @Param   name path string true "Child name"
// @Param   transaction body dto.RecordTransactionRequest true "Amount and purpose"
// @Success 200 {object} dto.TransactionResponse
// @Failure 400 {object} dto.ErrorResponse "Validation failure"
// @Failure 429 {object} dto.ErrorResponse "Too many requests"
// @Failure 500 {object} dto.ErrorResponse "Internal Error"
// @Router /child/{name}/give [post]
func (h *childHandler) give(c *gin.Context) {
	h.record(c, "give", h.coordinator.Give)
}

// spend godoc
// @Summary Record money spent by a child
// @Description Debits the account. Rejected when the balance would go negative.
// @Tags child
// @Accept  json
// @Produce  json
// @Param   name path string true "Child name"
// @Param   transaction body dto.RecordTransactionRequest true "Amount and purpose"
// @Success 200 {object} dto.TransactionResponse
// @Failure 400 {object} dto.ErrorResponse "Validation failure"
// @Failure 429 {object} dto.ErrorResponse "Too many requests"
// @Failure 500 {object} dto.ErrorResponse "Internal Error"
// @Router /child/{name}/spend [post]
func (h *childHandler) spend(c *gin.Context) {
	h.record(c, "spend", h.coordinator.Spend)
}

type recordFunc func(ctx context.Context, childName string, amount domain.MoneyAmount, purpose string) (*domain.Transaction, error)

func (h *childHandler) record(c *gin.Context, kind string, fn recordFunc) {
	childName := c.Param("name")
	logger := middleware.GetLoggerFromContext(c).With(
		slog.String("child_name", childName),
		slog.String("kind", kind),
	)

	var req dto.RecordTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind transaction request", slog.String("error", err.Error()))
		reason := "Invalid request body"
		if errors.Is(err, domain.ErrInvalidAmount) {
			reason = "Invalid amount"
		}
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Reason: reason})
		return
	}

	tx, err := fn(c.Request.Context(), childName, req.Amount, req.Purpose)
	if err != nil {
		respondError(c, logger, err)
		return
	}

	logger.Info("Transaction recorded successfully",
		slog.Uint64("transaction_id", tx.ID),
		slog.String("amount", tx.Amount.String()))
	c.JSON(http.StatusOK, tx)
}

// respondError maps service errors to a status code and a {reason} body.
// Validation failures are reported as-is; anything else is opaque.
func respondError(c *gin.Context, logger *slog.Logger, err error) {
	if errors.Is(err, apperrors.ErrValidation) {
		logger.Info("Request rejected", slog.String("reason", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Reason: apperrors.PublicReason(err)})
		return
	}
	logger.Error("Request failed", slog.String("error", err.Error()))
	c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Reason: "Internal Error"})
}
