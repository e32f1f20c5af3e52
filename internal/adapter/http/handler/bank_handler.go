package handler

import (
	"exchange-ledger/internal/adapter/http/dto"
	"exchange-ledger/internal/core/ports"
	"exchange-ledger/pkg/apperror"
	"exchange-ledger/pkg/response"

	"github.com/gin-gonic/gin"
)

// BankHandler handles bank account endpoints.
type BankHandler struct {
	bankSvc ports.BankService
}

// NewBankHandler creates a new BankHandler.
func NewBankHandler(bankSvc ports.BankService) *BankHandler {
	return &BankHandler{bankSvc: bankSvc}
}

// List handles GET /api/v1/bank-accounts.
func (h *BankHandler) List(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	accounts, err := h.bankSvc.List(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, accounts)
}

// Create handles POST /api/v1/bank-accounts.
func (h *BankHandler) Create(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	var req dto.BankAccountCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	account, err := h.bankSvc.Create(c.Request.Context(), ports.BankAccountCreateRequest{
		UserID:         userID,
		AccountNumber:  req.AccountNumber,
		BankName:       req.BankName,
		AccountBalance: req.AccountBalance,
		IsDefault:      req.IsDefault,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, account)
}

// Delete handles DELETE /api/v1/bank-accounts/:account_number.
func (h *BankHandler) Delete(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	accountNumber := c.Param("account_number")
	if accountNumber == "" {
		response.Error(c, apperror.ErrInvalidArgument("account_number is required"))
		return
	}

	if err := h.bankSvc.Delete(c.Request.Context(), userID, accountNumber); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"account_number": accountNumber, "deleted": true})
}
