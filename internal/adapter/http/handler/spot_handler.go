package handler

import (
	"context"

	"exchange-ledger/internal/adapter/http/dto"
	"exchange-ledger/internal/core/ports"
	"exchange-ledger/pkg/apperror"
	"exchange-ledger/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SpotHandler handles spot trading endpoints.
type SpotHandler struct {
	spotSvc ports.SpotService
}

// NewSpotHandler creates a new SpotHandler.
func NewSpotHandler(spotSvc ports.SpotService) *SpotHandler {
	return &SpotHandler{spotSvc: spotSvc}
}

// Buy handles POST /api/v1/spot/buy.
func (h *SpotHandler) Buy(c *gin.Context) {
	h.settle(c, h.spotSvc.Buy)
}

// Sell handles POST /api/v1/spot/sell.
func (h *SpotHandler) Sell(c *gin.Context) {
	h.settle(c, h.spotSvc.Sell)
}

func (h *SpotHandler) settle(c *gin.Context, op func(ctx context.Context, req ports.SpotOrderRequest) (*ports.SpotSettlement, error)) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	var req dto.SpotOrderRequest
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

	result, err := op(c.Request.Context(), ports.SpotOrderRequest{
		UserID:     userID,
		WalletID:   walletID,
		Symbol:     req.Symbol,
		UnitNumber: req.UnitNumber,
		IndexPrice: req.IndexPrice,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, result)
}

// History handles GET /api/v1/spot/history/:wallet_id.
func (h *SpotHandler) History(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	walletID, ok := pathUUID(c, "wallet_id")
	if !ok {
		return
	}

	txns, err := h.spotSvc.History(c.Request.Context(), userID, walletID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, txns)
}
