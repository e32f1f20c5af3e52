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

// FuturesHandler handles margin trading endpoints.
type FuturesHandler struct {
	futuresSvc ports.FuturesService
}

// NewFuturesHandler creates a new FuturesHandler.
func NewFuturesHandler(futuresSvc ports.FuturesService) *FuturesHandler {
	return &FuturesHandler{futuresSvc: futuresSvc}
}

// Open handles POST /api/v1/futures/open.
func (h *FuturesHandler) Open(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	var req dto.FuturesOpenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	walletID, err := uuid.Parse(req.WalletID)
	if err != nil {
		response.Error(c, apperror.ErrInvalidArgument("wallet_id must be a valid UUID"))
		return
	}

	result, err := h.futuresSvc.Open(c.Request.Context(), ports.FuturesOpenRequest{
		UserID:     userID,
		WalletID:   walletID,
		Symbol:     req.Symbol,
		Side:       domain.FutureSide(req.Side),
		Margin:     req.Margin,
		EntryPrice: req.EntryPrice,
		Leverage:   req.Leverage,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, result)
}

// Close handles POST /api/v1/futures/:id/close.
func (h *FuturesHandler) Close(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	orderID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req dto.FuturesCloseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	result, err := h.futuresSvc.Close(c.Request.Context(), ports.FuturesCloseRequest{
		OrderID:   orderID,
		UserID:    userID,
		ExitPrice: req.ExitPrice,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, result)
}

// Positions handles GET /api/v1/futures/positions — all open positions.
func (h *FuturesHandler) Positions(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	positions, err := h.futuresSvc.OpenPositions(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, positions)
}

// History handles GET /api/v1/futures/history/:wallet_id.
func (h *FuturesHandler) History(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	walletID, ok := pathUUID(c, "wallet_id")
	if !ok {
		return
	}

	orders, err := h.futuresSvc.History(c.Request.Context(), userID, walletID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, orders)
}
