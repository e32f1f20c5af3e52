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
	"github.com/shopspring/decimal"
)

// FuturesServiceImpl implements ports.FuturesService.
type FuturesServiceImpl struct {
	walletRepo  ports.WalletRepository
	holdingRepo ports.HoldingRepository
	orderRepo   ports.FutureOrderRepository
	transactor  ports.DBTransactor
	maxLeverage int
	log         zerolog.Logger
}

// NewFuturesService creates a new FuturesServiceImpl. maxLeverage caps
// the leverage accepted by Open; values below the domain minimum fall
// back to domain.MaxLeverage.
func NewFuturesService(
	walletRepo ports.WalletRepository,
	holdingRepo ports.HoldingRepository,
	orderRepo ports.FutureOrderRepository,
	transactor ports.DBTransactor,
	maxLeverage int,
	log zerolog.Logger,
) *FuturesServiceImpl {
	if maxLeverage < domain.MinLeverage {
		maxLeverage = domain.MaxLeverage
	}
	return &FuturesServiceImpl{
		walletRepo:  walletRepo,
		holdingRepo: holdingRepo,
		orderRepo:   orderRepo,
		transactor:  transactor,
		maxLeverage: maxLeverage,
		log:         log,
	}
}

// Open opens a margin position: debit the margin from the future wallet
// and create the order with position_size = margin * leverage / entry_price.
func (s *FuturesServiceImpl) Open(ctx context.Context, req ports.FuturesOpenRequest) (*ports.FuturesOpenResult, error) {
	if !domain.ValidFutureSide(req.Side) {
		return nil, apperror.ErrInvalidArgument("side must be long or short")
	}
	if req.Symbol == "" {
		return nil, apperror.ErrInvalidArgument("symbol is required")
	}
	if !req.Margin.IsPositive() {
		return nil, apperror.ErrInvalidArgument("margin must be positive")
	}
	if !req.EntryPrice.IsPositive() {
		return nil, apperror.ErrInvalidArgument("entry_price must be positive")
	}
	if req.Leverage < domain.MinLeverage || req.Leverage > s.maxLeverage {
		return nil, apperror.ErrInvalidArgument(fmt.Sprintf("leverage must be between %d and %d", domain.MinLeverage, s.maxLeverage))
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	wallet, err := s.walletRepo.GetByIDForUpdate(ctx, dbTx, req.WalletID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock wallet: %w", err))
	}
	if wallet == nil || !wallet.OwnedBy(req.UserID) {
		return nil, apperror.ErrNotFound("wallet")
	}
	if wallet.Type != domain.WalletTypeFuture {
		return nil, apperror.ErrWrongWalletType(string(domain.WalletTypeFuture))
	}
	if !wallet.CanAfford(req.Margin) {
		return nil, apperror.ErrInsufficientBalance()
	}

	wallet.Balance = wallet.Balance.Sub(req.Margin)
	if err := s.walletRepo.SetBalance(ctx, dbTx, wallet.ID, wallet.Balance); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update balance: %w", err))
	}

	now := time.Now().UTC()

	// Wallets reference positions through a per-symbol holding row; futures
	// keep a zero-unit row so the symbol shows up in wallet snapshots.
	holding, err := s.holdingRepo.GetForUpdate(ctx, dbTx, wallet.ID, req.Symbol)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock holding: %w", err))
	}
	if holding == nil {
		placeholder := &domain.Holding{
			WalletID:        wallet.ID,
			Symbol:          req.Symbol,
			UnitNumber:      decimal.Zero,
			AverageBuyPrice: decimal.Zero,
			CreatedAt:       now,
			UpdatedAt:       now,
		}
		if err := s.holdingRepo.Create(ctx, dbTx, placeholder); err != nil {
			return nil, apperror.InternalError(fmt.Errorf("create holding: %w", err))
		}
	}

	leverage := decimal.NewFromInt(int64(req.Leverage))
	order := &domain.FutureOrder{
		ID:           uuid.New(),
		WalletID:     wallet.ID,
		Symbol:       req.Symbol,
		Side:         req.Side,
		EntryPrice:   req.EntryPrice,
		PositionSize: req.Margin.Mul(leverage).Div(req.EntryPrice),
		Margin:       req.Margin,
		Leverage:     req.Leverage,
		OpenTS:       now,
	}
	if err := s.orderRepo.Create(ctx, dbTx, order); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create order: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().
		Str("order_id", order.ID.String()).
		Str("wallet_id", wallet.ID.String()).
		Str("symbol", req.Symbol).
		Str("side", string(req.Side)).
		Str("margin", req.Margin.String()).
		Int("leverage", req.Leverage).
		Msg("future position opened")

	return &ports.FuturesOpenResult{OrderID: order.ID, Wallet: *wallet}, nil
}

// Close closes an open position at the given exit price and credits the
// wallet with margin + realized PnL. An order can be closed exactly once;
// the row lock on the order makes concurrent closes serialize, and the
// second one fails the open check.
func (s *FuturesServiceImpl) Close(ctx context.Context, req ports.FuturesCloseRequest) (*ports.FuturesCloseResult, error) {
	if !req.ExitPrice.IsPositive() {
		return nil, apperror.ErrInvalidArgument("exit_price must be positive")
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	order, err := s.orderRepo.GetByIDForUpdate(ctx, dbTx, req.OrderID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock order: %w", err))
	}
	if order == nil {
		return nil, apperror.ErrNotFound("future order")
	}
	if !order.IsOpen() {
		return nil, apperror.ErrAlreadyClosed()
	}

	wallet, err := s.walletRepo.GetByIDForUpdate(ctx, dbTx, order.WalletID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock wallet: %w", err))
	}
	if wallet == nil {
		return nil, apperror.ErrNotFound("wallet")
	}
	if !wallet.OwnedBy(req.UserID) {
		return nil, apperror.ErrUnauthorized("order does not belong to user")
	}

	now := time.Now().UTC()
	profit := order.PnL(req.ExitPrice)

	if err := s.orderRepo.Close(ctx, dbTx, order.ID, now, req.ExitPrice, profit); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("close order: %w", err))
	}

	wallet.Balance = wallet.Balance.Add(order.Margin).Add(profit)
	if err := s.walletRepo.SetBalance(ctx, dbTx, wallet.ID, wallet.Balance); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update balance: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().
		Str("order_id", order.ID.String()).
		Str("wallet_id", wallet.ID.String()).
		Str("exit_price", req.ExitPrice.String()).
		Str("profit", profit.String()).
		Msg("future position closed")

	return &ports.FuturesCloseResult{OrderID: order.ID, Wallet: *wallet, Profit: profit}, nil
}

// OpenPositions returns the user's open futures across their future wallet.
// A user without a future wallet simply has no positions.
func (s *FuturesServiceImpl) OpenPositions(ctx context.Context, userID uuid.UUID) ([]domain.FutureOrder, error) {
	wallet, err := s.walletRepo.GetByUserAndType(ctx, userID, domain.WalletTypeFuture)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get wallet: %w", err))
	}
	if wallet == nil {
		return []domain.FutureOrder{}, nil
	}

	orders, err := s.orderRepo.ListOpenByWallet(ctx, wallet.ID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list open orders: %w", err))
	}
	return orders, nil
}

// History returns the most recent futures orders of the user's wallet,
// open and closed, newest first.
func (s *FuturesServiceImpl) History(ctx context.Context, userID, walletID uuid.UUID) ([]domain.FutureOrder, error) {
	wallet, err := s.walletRepo.GetByID(ctx, walletID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get wallet: %w", err))
	}
	if wallet == nil || !wallet.OwnedBy(userID) {
		return nil, apperror.ErrNotFound("wallet")
	}

	orders, err := s.orderRepo.ListByWallet(ctx, walletID, historyLimit)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list orders: %w", err))
	}
	return orders, nil
}
