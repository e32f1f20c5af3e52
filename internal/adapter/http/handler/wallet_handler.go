package handler

import (
	"exchange-ledger/internal/adapter/http/dto"
	"exchange-ledger/internal/adapter/http/middleware"
	"exchange-ledger/internal/core/domain"
	"exchange-ledger/internal/core/ports"
	"exchange-ledger/pkg/apperror"
	"exchange-ledger/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// WalletHandler handles wallet endpoints.
type WalletHandler struct {
	walletSvc ports.WalletService
}

// NewWalletHandler creates a new WalletHandler.
func NewWalletHandler(walletSvc ports.WalletService) *WalletHandler {
	return &WalletHandler{walletSvc: walletSvc}
}

// callerID extracts the authenticated user ID set by the JWT middleware.
func callerID(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get(middleware.CtxUserID)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return uuid.Nil, false
	}
	return id, true
}

// pathUUID parses a UUID path parameter, rejecting malformed values.
func pathUUID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		response.Error(c, apperror.ErrInvalidArgument(name+" must be a valid UUID"))
		return uuid.Nil, false
	}
	return id, true
}

// Create handles POST /api/v1/wallets.
func (h *WalletHandler) Create(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	var req dto.CreateWalletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	wallet, err := h.walletSvc.Create(c.Request.Context(), userID, domain.WalletType(req.Type))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, wallet)
}

// List handles GET /api/v1/wallets.
func (h *WalletHandler) List(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	wallets, err := h.walletSvc.List(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, wallets)
}

// GetByType handles GET /api/v1/wallets/type/:type.
func (h *WalletHandler) GetByType(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	walletType := domain.WalletType(c.Param("type"))
	if !domain.ValidWalletType(walletType) {
		response.Error(c, apperror.ErrInvalidArgument("type must be fund, spot or future"))
		return
	}

	wallet, err := h.walletSvc.GetByType(c.Request.Context(), userID, walletType)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, wallet)
}

// Get handles GET /api/v1/wallets/:id — a wallet with its holdings.
func (h *WalletHandler) Get(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	walletID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	result, err := h.walletSvc.GetWithHoldings(c.Request.Context(), userID, walletID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, result)
}
