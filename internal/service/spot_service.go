package service

import (
	"context"
	"fmt"
	"time"

	"exchange-ledger/internal/core/domain"
	"exchange-ledger/internal/core/ports"
	"exchange-ledger/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

const historyLimit = 100

// SpotServiceImpl implements ports.SpotService.
type SpotServiceImpl struct {
	walletRepo  ports.WalletRepository
	holdingRepo ports.HoldingRepository
	spotTxRepo  ports.SpotTransactionRepository
	transactor  ports.DBTransactor
	log         zerolog.Logger
}

// NewSpotService creates a new SpotServiceImpl.
func NewSpotService(
	walletRepo ports.WalletRepository,
	holdingRepo ports.HoldingRepository,
	spotTxRepo ports.SpotTransactionRepository,
	transactor ports.DBTransactor,
	log zerolog.Logger,
) *SpotServiceImpl {
	return &SpotServiceImpl{
		walletRepo:  walletRepo,
		holdingRepo: holdingRepo,
		spotTxRepo:  spotTxRepo,
		transactor:  transactor,
		log:         log,
	}
}

// Buy settles a spot buy: debit the wallet by unit_number * index_price,
// fold the units into the holding at a recomputed volume-weighted average,
// and append the transaction record. All inside one database transaction
// with the wallet and holding rows locked.
func (s *SpotServiceImpl) Buy(ctx context.Context, req ports.SpotOrderRequest) (*ports.SpotSettlement, error) {
	if err := validateSpotRequest(req); err != nil {
		return nil, err
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	wallet, err := s.lockSpotWallet(ctx, dbTx, req)
	if err != nil {
		return nil, err
	}

	amount := req.UnitNumber.Mul(req.IndexPrice)
	if !wallet.CanAfford(amount) {
		return nil, apperror.ErrInsufficientBalance()
	}

	holding, err := s.holdingRepo.GetForUpdate(ctx, dbTx, wallet.ID, req.Symbol)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock holding: %w", err))
	}

	now := time.Now().UTC()
	created := false
	if holding == nil {
		created = true
		holding = &domain.Holding{
			WalletID:  wallet.ID,
			Symbol:    req.Symbol,
			CreatedAt: now,
		}
	}
	holding.ApplyBuy(req.UnitNumber, req.IndexPrice)
	holding.UpdatedAt = now

	wallet.Balance = wallet.Balance.Sub(amount)
	if err := s.walletRepo.SetBalance(ctx, dbTx, wallet.ID, wallet.Balance); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update balance: %w", err))
	}

	if created {
		err = s.holdingRepo.Create(ctx, dbTx, holding)
	} else {
		err = s.holdingRepo.Update(ctx, dbTx, holding)
	}
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("save holding: %w", err))
	}

	txn := &domain.SpotTransaction{
		ID:          uuid.New(),
		WalletID:    wallet.ID,
		Symbol:      req.Symbol,
		Type:        domain.SpotBuy,
		IndexPrice:  req.IndexPrice,
		UnitNumbers: req.UnitNumber,
		Amount:      amount,
		CreatedAt:   now,
	}
	if err := s.spotTxRepo.Create(ctx, dbTx, txn); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create transaction: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().
		Str("tx_id", txn.ID.String()).
		Str("wallet_id", wallet.ID.String()).
		Str("symbol", req.Symbol).
		Str("amount", amount.String()).
		Msg("spot buy settled")

	return &ports.SpotSettlement{Wallet: *wallet, Holding: holding, Transaction: *txn}, nil
}

// Sell settles a spot sell: decrement the holding, credit the wallet with
// the proceeds, record the realized profit against the average cost basis,
// and delete the holding row when it is fully liquidated.
func (s *SpotServiceImpl) Sell(ctx context.Context, req ports.SpotOrderRequest) (*ports.SpotSettlement, error) {
	if err := validateSpotRequest(req); err != nil {
		return nil, err
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	wallet, err := s.lockSpotWallet(ctx, dbTx, req)
	if err != nil {
		return nil, err
	}

	holding, err := s.holdingRepo.GetForUpdate(ctx, dbTx, wallet.ID, req.Symbol)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock holding: %w", err))
	}
	if holding == nil {
		return nil, apperror.ErrHoldingNotFound()
	}
	if holding.UnitNumber.LessThan(req.UnitNumber) {
		return nil, apperror.ErrInsufficientHolding()
	}

	now := time.Now().UTC()
	amount := req.UnitNumber.Mul(req.IndexPrice)
	profit := holding.SellProfit(req.UnitNumber, req.IndexPrice)

	holding.ApplySell(req.UnitNumber)
	holding.UpdatedAt = now

	wallet.Balance = wallet.Balance.Add(amount)
	if err := s.walletRepo.SetBalance(ctx, dbTx, wallet.ID, wallet.Balance); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update balance: %w", err))
	}

	depleted := holding.Depleted()
	if depleted {
		err = s.holdingRepo.Delete(ctx, dbTx, wallet.ID, req.Symbol)
	} else {
		err = s.holdingRepo.Update(ctx, dbTx, holding)
	}
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("save holding: %w", err))
	}

	txn := &domain.SpotTransaction{
		ID:          uuid.New(),
		WalletID:    wallet.ID,
		Symbol:      req.Symbol,
		Type:        domain.SpotSell,
		IndexPrice:  req.IndexPrice,
		UnitNumbers: req.UnitNumber,
		Amount:      amount,
		Profit:      &profit,
		CreatedAt:   now,
	}
	if err := s.spotTxRepo.Create(ctx, dbTx, txn); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create transaction: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().
		Str("tx_id", txn.ID.String()).
		Str("wallet_id", wallet.ID.String()).
		Str("symbol", req.Symbol).
		Str("profit", profit.String()).
		Msg("spot sell settled")

	result := &ports.SpotSettlement{Wallet: *wallet, Transaction: *txn}
	if !depleted {
		result.Holding = holding
	}
	return result, nil
}

// History returns the most recent spot transactions of the user's wallet.
func (s *SpotServiceImpl) History(ctx context.Context, userID, walletID uuid.UUID) ([]domain.SpotTransaction, error) {
	wallet, err := s.walletRepo.GetByID(ctx, walletID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get wallet: %w", err))
	}
	if wallet == nil || !wallet.OwnedBy(userID) {
		return nil, apperror.ErrNotFound("wallet")
	}

	txns, err := s.spotTxRepo.ListByWallet(ctx, walletID, historyLimit)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list transactions: %w", err))
	}
	return txns, nil
}

// lockSpotWallet locks the wallet row and checks ownership and type.
func (s *SpotServiceImpl) lockSpotWallet(ctx context.Context, dbTx pgx.Tx, req ports.SpotOrderRequest) (*domain.Wallet, error) {
	wallet, err := s.walletRepo.GetByIDForUpdate(ctx, dbTx, req.WalletID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock wallet: %w", err))
	}
	if wallet == nil || !wallet.OwnedBy(req.UserID) {
		return nil, apperror.ErrNotFound("wallet")
	}
	if wallet.Type != domain.WalletTypeSpot {
		return nil, apperror.ErrWrongWalletType(string(domain.WalletTypeSpot))
	}
	return wallet, nil
}

func validateSpotRequest(req ports.SpotOrderRequest) error {
	if req.Symbol == "" {
		return apperror.ErrInvalidArgument("symbol is required")
	}
	if !req.UnitNumber.IsPositive() {
		return apperror.ErrInvalidArgument("unit_number must be positive")
	}
	if !req.IndexPrice.IsPositive() {
		return apperror.ErrInvalidArgument("index_price must be positive")
	}
	return nil
}
