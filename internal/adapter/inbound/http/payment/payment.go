package payment

import (
	"net/http"

	"github.com/gin-gonic/gin"

	command "github.com/gamehub/payments/internal/app/command/payment"
	query "github.com/gamehub/payments/internal/app/query/payment"
	"github.com/gamehub/payments/internal/domain/payment"
	"github.com/gamehub/payments/internal/model"
	apperrors "github.com/gamehub/payments/internal/shared/errors"
)

// Handler exposes the payment operations over HTTP.
type Handler struct {
	create  *command.CreatePaymentHandler
	process *command.ProcessPaymentHandler
	refund  *command.RefundPaymentHandler
	cancel  *command.CancelPaymentHandler
	get     *query.GetPaymentHandler
	status  *query.GetStatusHandler
	list    *query.ListPaymentsHandler
}

// NewHandler wires the HTTP handler over the application layer.
func NewHandler(
	create *command.CreatePaymentHandler,
	process *command.ProcessPaymentHandler,
	refund *command.RefundPaymentHandler,
	cancel *command.CancelPaymentHandler,
	get *query.GetPaymentHandler,
	status *query.GetStatusHandler,
	list *query.ListPaymentsHandler,
) *Handler {
	return &Handler{
		create:  create,
		process: process,
		refund:  refund,
		cancel:  cancel,
		get:     get,
		status:  status,
		list:    list,
	}
}

// RegisterRoutes mounts the payment routes on the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	payments := rg.Group("/payments")
	{
		payments.POST("", h.Create)
		payments.GET("", h.ListByStatus)
		payments.GET("/:id", h.Get)
		payments.GET("/:id/status", h.GetStatus)
		payments.POST("/:id/process", h.Process)
		payments.POST("/:id/refund", h.Refund)
		payments.POST("/:id/cancel", h.Cancel)
		payments.GET("/transaction/:transactionId", h.GetByTransaction)
	}
	rg.GET("/users/:userId/payments", h.ListByUser)
	rg.GET("/games/:gameId/payments", h.ListByGame)
}

// Create handles POST /payments.
func (h *Handler) Create(c *gin.Context) {
	var req model.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.InvalidArgument("invalid request body: "+err.Error()))
		return
	}

	userID, err := uuidFromString(req.UserID, "user_id")
	if err != nil {
		respondError(c, err)
		return
	}
	gameID, err := uuidFromString(req.GameID, "game_id")
	if err != nil {
		respondError(c, err)
		return
	}

	p, err := h.create.Handle(c.Request.Context(), command.CreatePaymentCommand{
		UserID: userID,
		GameID: gameID,
		Amount: req.Amount,
		Method: payment.Method(req.Method),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, model.FromDomain(p))
}

// Get handles GET /payments/:id.
func (h *Handler) Get(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	p, err := h.get.ByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.FromDomain(p))
}

// GetByTransaction handles GET /payments/transaction/:transactionId.
func (h *Handler) GetByTransaction(c *gin.Context) {
	transactionID := c.Param("transactionId")
	if transactionID == "" {
		respondError(c, apperrors.InvalidArgument("transaction id is required"))
		return
	}
	p, err := h.get.ByTransactionID(c.Request.Context(), transactionID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.FromDomain(p))
}

// GetStatus handles GET /payments/:id/status.
func (h *Handler) GetStatus(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	status, err := h.status.Handle(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.PaymentStatusResponse{
		ID:     id.String(),
		Status: string(status),
	})
}

// Process handles POST /payments/:id/process.
func (h *Handler) Process(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	p, err := h.process.Handle(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.FromDomain(p))
}

// Refund handles POST /payments/:id/refund.
func (h *Handler) Refund(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	p, err := h.refund.Handle(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.FromDomain(p))
}

// Cancel handles POST /payments/:id/cancel.
func (h *Handler) Cancel(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	p, err := h.cancel.Handle(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.FromDomain(p))
}

// ListByUser handles GET /users/:userId/payments. An optional status query
// parameter narrows the result.
func (h *Handler) ListByUser(c *gin.Context) {
	userID, ok := pathUUID(c, "userId")
	if !ok {
		return
	}
	payments, err := h.list.ByUser(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	if status := c.Query("status"); status != "" {
		payments = filterByStatus(payments, payment.Status(status))
	}
	c.JSON(http.StatusOK, model.ListFromDomain(payments))
}

// ListByStatus handles GET /payments?status=... for operational queries.
func (h *Handler) ListByStatus(c *gin.Context) {
	status := c.Query("status")
	if status == "" {
		respondError(c, apperrors.InvalidArgument("status query parameter is required"))
		return
	}
	payments, err := h.list.ByStatus(c.Request.Context(), payment.Status(status))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.ListFromDomain(payments))
}

// ListByGame handles GET /games/:gameId/payments.
func (h *Handler) ListByGame(c *gin.Context) {
	gameID, ok := pathUUID(c, "gameId")
	if !ok {
		return
	}
	payments, err := h.list.ByGame(c.Request.Context(), gameID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.ListFromDomain(payments))
}

func filterByStatus(payments []*payment.Payment, status payment.Status) []*payment.Payment {
	out := make([]*payment.Payment, 0, len(payments))
	for _, p := range payments {
		if p.Status() == status {
			out = append(out, p)
		}
	}
	return out
}
