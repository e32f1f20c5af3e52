package service

import (
	"context"
	"fmt"
	"time"

	"exchange-ledger/internal/core/domain"
	"exchange-ledger/internal/core/ports"
	"exchange-ledger/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// BankServiceImpl implements ports.BankService.
type BankServiceImpl struct {
	bankRepo ports.BankAccountRepository
	log      zerolog.Logger
}

// NewBankService creates a new BankServiceImpl.
func NewBankService(bankRepo ports.BankAccountRepository, log zerolog.Logger) *BankServiceImpl {
	return &BankServiceImpl{bankRepo: bankRepo, log: log}
}

// List returns the user's bank accounts.
func (s *BankServiceImpl) List(ctx context.Context, userID uuid.UUID) ([]domain.BankAccount, error) {
	accounts, err := s.bankRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list accounts: %w", err))
	}
	return accounts, nil
}

// Create registers a bank account. Account numbers are unique across all
// users. A user's first account becomes the default; marking a later one
// as default clears the previous flag.
func (s *BankServiceImpl) Create(ctx context.Context, req ports.BankAccountCreateRequest) (*domain.BankAccount, error) {
	if req.AccountNumber == "" {
		return nil, apperror.ErrInvalidArgument("account_number is required")
	}
	if req.BankName == "" {
		return nil, apperror.ErrInvalidArgument("bank_name is required")
	}
	if req.AccountBalance.IsNegative() {
		return nil, apperror.ErrInvalidArgument("account_balance cannot be negative")
	}

	existing, err := s.bankRepo.GetByAccountNumber(ctx, req.AccountNumber)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("check account number: %w", err))
	}
	if existing != nil {
		return nil, apperror.ErrConflict("account number already registered")
	}

	owned, err := s.bankRepo.ListByUser(ctx, req.UserID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list accounts: %w", err))
	}

	isDefault := req.IsDefault || len(owned) == 0
	if isDefault && len(owned) > 0 {
		if err := s.bankRepo.ClearDefault(ctx, req.UserID); err != nil {
			return nil, apperror.InternalError(fmt.Errorf("clear default: %w", err))
		}
	}

	account := &domain.BankAccount{
		ID:             uuid.New(),
		AccountNumber:  req.AccountNumber,
		BankName:       req.BankName,
		UserID:         req.UserID,
		AccountBalance: req.AccountBalance,
		IsDefault:      isDefault,
		CreatedAt:      time.Now().UTC(),
	}
	if err := s.bankRepo.Create(ctx, account); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create account: %w", err))
	}

	s.log.Info().
		Str("account_id", account.ID.String()).
		Str("user_id", req.UserID.String()).
		Bool("default", isDefault).
		Msg("bank account created")

	return account, nil
}

// Delete removes a user's bank account by number.
func (s *BankServiceImpl) Delete(ctx context.Context, userID uuid.UUID, accountNumber string) error {
	account, err := s.bankRepo.GetByAccountNumber(ctx, accountNumber)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("get account: %w", err))
	}
	if account == nil || !account.OwnedBy(userID) {
		return apperror.ErrNotFound("bank account")
	}

	if err := s.bankRepo.Delete(ctx, accountNumber); err != nil {
		return apperror.InternalError(fmt.Errorf("delete account: %w", err))
	}

	s.log.Info().Str("account_id", account.ID.String()).Msg("bank account deleted")
	return nil
}
