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

// WalletServiceImpl implements ports.WalletService.
type WalletServiceImpl struct {
	walletRepo  ports.WalletRepository
	holdingRepo ports.HoldingRepository
	log         zerolog.Logger
}

// NewWalletService creates a new WalletServiceImpl.
func NewWalletService(walletRepo ports.WalletRepository, holdingRepo ports.HoldingRepository, log zerolog.Logger) *WalletServiceImpl {
	return &WalletServiceImpl{
		walletRepo:  walletRepo,
		holdingRepo: holdingRepo,
		log:         log,
	}
}

// Create makes a new wallet of the given type for the user. A user holds
// at most one wallet per type.
func (s *WalletServiceImpl) Create(ctx context.Context, userID uuid.UUID, walletType domain.WalletType) (*domain.Wallet, error) {
	if !domain.ValidWalletType(walletType) {
		return nil, apperror.ErrInvalidArgument("type must be fund, spot or future")
	}

	existing, err := s.walletRepo.GetByUserAndType(ctx, userID, walletType)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("check existing wallet: %w", err))
	}
	if existing != nil {
		return nil, apperror.ErrConflict(fmt.Sprintf("%s wallet already exists", walletType))
	}

	now := time.Now().UTC()
	wallet := &domain.Wallet{
		ID:        uuid.New(),
		UserID:    userID,
		Type:      walletType,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.walletRepo.Create(ctx, wallet); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create wallet: %w", err))
	}

	s.log.Info().
		Str("wallet_id", wallet.ID.String()).
		Str("user_id", userID.String()).
		Str("type", string(walletType)).
		Msg("wallet created")

	return wallet, nil
}

// List returns all wallets of the user.
func (s *WalletServiceImpl) List(ctx context.Context, userID uuid.UUID) ([]domain.Wallet, error) {
	wallets, err := s.walletRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list wallets: %w", err))
	}
	return wallets, nil
}

// GetByType returns the user's wallet of the given type.
func (s *WalletServiceImpl) GetByType(ctx context.Context, userID uuid.UUID, walletType domain.WalletType) (*domain.Wallet, error) {
	if !domain.ValidWalletType(walletType) {
		return nil, apperror.ErrInvalidArgument("type must be fund, spot or future")
	}

	wallet, err := s.walletRepo.GetByUserAndType(ctx, userID, walletType)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get wallet: %w", err))
	}
	if wallet == nil {
		return nil, apperror.ErrNotFound("wallet")
	}
	return wallet, nil
}

// GetWithHoldings returns a wallet together with its holdings.
func (s *WalletServiceImpl) GetWithHoldings(ctx context.Context, userID, walletID uuid.UUID) (*ports.WalletWithHoldings, error) {
	wallet, err := s.walletRepo.GetByID(ctx, walletID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get wallet: %w", err))
	}
	if wallet == nil || !wallet.OwnedBy(userID) {
		return nil, apperror.ErrNotFound("wallet")
	}

	holdings, err := s.holdingRepo.ListByWallet(ctx, walletID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list holdings: %w", err))
	}

	return &ports.WalletWithHoldings{Wallet: *wallet, Holdings: holdings}, nil
}
