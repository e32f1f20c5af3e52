package handler

import (
	"exchange-ledger/internal/adapter/http/dto"
	"exchange-ledger/internal/core/domain"
	"exchange-ledger/internal/core/ports"
	"exchange-ledger/pkg/apperror"
	"exchange-ledger/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// P2PHandler handles P2P order endpoints.
type P2PHandler struct {
	p2pSvc ports.P2PService
}

// NewP2PHandler creates a new P2PHandler.
func NewP2PHandler(p2pSvc ports.P2PService) *P2PHandler {
	return &P2PHandler{p2pSvc: p2pSvc}
}

// CreateOrder handles POST /api/v1/p2p/orders.
func (h *P2PHandler) CreateOrder(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	var req dto.P2PCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	merchantID, err := uuid.Parse(req.MerchantID)
	if err != nil {
		response.Error(c, apperror.ErrInvalidArgument("merchant_id must be a valid UUID"))
		return
	}

	order, err := h.p2pSvc.CreateOrder(c.Request.Context(), ports.P2PCreateRequest{
		UserID:      userID,
		MerchantID:  merchantID,
		Type:        domain.P2POrderType(req.Type),
		UnitNumbers: req.UnitNumbers,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, order)
}

// CancelOrder handles POST /api/v1/p2p/orders/:id/cancel.
func (h *P2PHandler) CancelOrder(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	orderID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	if err := h.p2pSvc.CancelOrder(c.Request.Context(), orderID, userID); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"order_id": orderID, "state": domain.P2PStateCancelled})
}

// TransferPayment handles POST /api/v1/p2p/orders/:id/pay.
func (h *P2PHandler) TransferPayment(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	orderID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req dto.P2PTransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	result, err := h.p2pSvc.TransferPayment(c.Request.Context(), ports.P2PTransferRequest{
		OrderID:       orderID,
		UserID:        userID,
		SourceAccount: req.SourceAccount,
		Amount:        req.Amount,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, result)
}

// ConfirmAndRelease handles POST /api/v1/p2p/orders/:id/release.
// Merchant-only: confirms receipt of payment and releases escrowed units.
func (h *P2PHandler) ConfirmAndRelease(c *gin.Context) {
	merchantID, ok := callerID(c)
	if !ok {
		return
	}
	orderID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	result, err := h.p2pSvc.ConfirmAndRelease(c.Request.Context(), orderID, merchantID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, result)
}

// ListOpen handles GET /api/v1/p2p/orders.
func (h *P2PHandler) ListOpen(c *gin.Context) {
	orders, err := h.p2pSvc.ListOpen(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, orders)
}

// MyOrders handles GET /api/v1/p2p/orders/mine.
func (h *P2PHandler) MyOrders(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	orders, err := h.p2pSvc.MyOrders(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, orders)
}

// Merchants handles GET /api/v1/p2p/merchants.
func (h *P2PHandler) Merchants(c *gin.Context) {
	merchants, err := h.p2pSvc.Merchants(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, merchants)
}
