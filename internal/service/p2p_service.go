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

const p2pListLimit = 100

// P2PServiceImpl implements ports.P2PService.
//
// Lifecycle: a user opens an order against a merchant (open), pays the
// merchant's bank account off-chain (open -> matched, payment leg recorded),
// and the merchant confirms receipt which releases the quote currency from
// the merchant's fund wallet into the user's (matched -> filled). An open
// order may be cancelled by its owner instead.
type P2PServiceImpl struct {
	orderRepo     ports.P2POrderRepository
	userRepo      ports.UserRepository
	walletRepo    ports.WalletRepository
	bankRepo      ports.BankAccountRepository
	accountTxRepo ports.AccountTransactionRepository
	transactor    ports.DBTransactor
	quoteCurrency string
	log           zerolog.Logger
}

// NewP2PService creates a new P2PServiceImpl. quoteCurrency names the
// asset being escrowed and shows up in payment records.
func NewP2PService(
	orderRepo ports.P2POrderRepository,
	userRepo ports.UserRepository,
	walletRepo ports.WalletRepository,
	bankRepo ports.BankAccountRepository,
	accountTxRepo ports.AccountTransactionRepository,
	transactor ports.DBTransactor,
	quoteCurrency string,
	log zerolog.Logger,
) *P2PServiceImpl {
	return &P2PServiceImpl{
		orderRepo:     orderRepo,
		userRepo:      userRepo,
		walletRepo:    walletRepo,
		bankRepo:      bankRepo,
		accountTxRepo: accountTxRepo,
		transactor:    transactor,
		quoteCurrency: quoteCurrency,
		log:           log,
	}
}

// CreateOrder opens a new P2P order in the open state.
func (s *P2PServiceImpl) CreateOrder(ctx context.Context, req ports.P2PCreateRequest) (*domain.P2POrder, error) {
	if !domain.ValidP2POrderType(req.Type) {
		return nil, apperror.ErrInvalidArgument("type must be buy or sell")
	}
	if !req.UnitNumbers.IsPositive() {
		return nil, apperror.ErrInvalidArgument("unit_numbers must be positive")
	}
	if req.UserID == req.MerchantID {
		return nil, apperror.ErrInvalidArgument("cannot trade with yourself")
	}

	merchant, err := s.userRepo.GetByID(ctx, req.MerchantID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get merchant: %w", err))
	}
	if merchant == nil {
		return nil, apperror.ErrNotFound("merchant")
	}
	if !merchant.IsMerchant() {
		return nil, apperror.ErrUnauthorized("counterparty is not a merchant")
	}

	order := &domain.P2POrder{
		ID:          uuid.New(),
		UserID:      req.UserID,
		MerchantID:  req.MerchantID,
		Type:        req.Type,
		UnitNumbers: req.UnitNumbers,
		State:       domain.P2PStateOpen,
		TS:          time.Now().UTC(),
	}
	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create order: %w", err))
	}

	s.log.Info().
		Str("order_id", order.ID.String()).
		Str("user_id", req.UserID.String()).
		Str("merchant_id", req.MerchantID.String()).
		Str("type", string(req.Type)).
		Msg("p2p order created")

	return order, nil
}

// CancelOrder moves an open order to cancelled. Only the order's owner can
// cancel, and only before the payment leg has been made.
func (s *P2PServiceImpl) CancelOrder(ctx context.Context, orderID, userID uuid.UUID) error {
	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	order, err := s.orderRepo.GetByIDForUpdate(ctx, dbTx, orderID)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("lock order: %w", err))
	}
	if order == nil {
		return apperror.ErrNotFound("p2p order")
	}
	if order.UserID != userID {
		return apperror.ErrUnauthorized("only the order's owner can cancel")
	}
	if !order.CanTransition(domain.P2PStateCancelled) {
		return apperror.ErrInvalidState(fmt.Sprintf("cannot cancel order in state %s", order.State))
	}

	if err := s.orderRepo.UpdateState(ctx, dbTx, order.ID, domain.P2PStateCancelled); err != nil {
		return apperror.InternalError(fmt.Errorf("update state: %w", err))
	}
	if err := dbTx.Commit(ctx); err != nil {
		return apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().Str("order_id", order.ID.String()).Msg("p2p order cancelled")
	return nil
}

// TransferPayment records the off-chain payment leg: move the amount from
// the user's bank account to the merchant's default account, link the
// resulting transaction to the order, and advance it to matched.
func (s *P2PServiceImpl) TransferPayment(ctx context.Context, req ports.P2PTransferRequest) (*ports.P2PTransferResult, error) {
	if req.SourceAccount == "" {
		return nil, apperror.ErrInvalidArgument("source_account is required")
	}
	if !req.Amount.IsPositive() {
		return nil, apperror.ErrInvalidArgument("amount must be positive")
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
		return nil, apperror.ErrNotFound("p2p order")
	}
	if order.UserID != req.UserID {
		return nil, apperror.ErrUnauthorized("only the order's owner can pay")
	}
	if !order.CanTransition(domain.P2PStateMatched) {
		return nil, apperror.ErrInvalidState(fmt.Sprintf("cannot pay order in state %s", order.State))
	}

	source, err := s.bankRepo.GetByAccountNumberForUpdate(ctx, dbTx, req.SourceAccount)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock source account: %w", err))
	}
	if source == nil || !source.OwnedBy(req.UserID) {
		return nil, apperror.ErrNotFound("bank account")
	}
	if source.AccountBalance.LessThan(req.Amount) {
		return nil, apperror.ErrInsufficientBalance()
	}

	target, err := s.bankRepo.GetDefaultByUser(ctx, order.MerchantID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get merchant account: %w", err))
	}
	if target == nil {
		return nil, apperror.ErrNotFound("merchant bank account")
	}
	target, err = s.bankRepo.GetByAccountNumberForUpdate(ctx, dbTx, target.AccountNumber)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock merchant account: %w", err))
	}
	if target == nil {
		return nil, apperror.ErrNotFound("merchant bank account")
	}

	if err := s.bankRepo.SetBalance(ctx, dbTx, source.AccountNumber, source.AccountBalance.Sub(req.Amount)); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("debit source: %w", err))
	}
	if err := s.bankRepo.SetBalance(ctx, dbTx, target.AccountNumber, target.AccountBalance.Add(req.Amount)); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("credit target: %w", err))
	}

	txn := &domain.AccountTransaction{
		ID:                  uuid.New(),
		SourceAccountNumber: source.AccountNumber,
		TargetAccountNumber: target.AccountNumber,
		Amount:              req.Amount,
		TransactionType:     "p2p_payment",
		Description:         fmt.Sprintf("payment for %s p2p order %s", s.quoteCurrency, order.ID),
		TS:                  time.Now().UTC(),
	}
	if err := s.accountTxRepo.Create(ctx, dbTx, txn); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create account transaction: %w", err))
	}

	if err := s.orderRepo.SetTransactionID(ctx, dbTx, order.ID, txn.ID); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("link transaction: %w", err))
	}
	if err := s.orderRepo.UpdateState(ctx, dbTx, order.ID, domain.P2PStateMatched); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update state: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().
		Str("order_id", order.ID.String()).
		Str("tx_id", txn.ID.String()).
		Str("amount", req.Amount.String()).
		Msg("p2p payment transferred")

	return &ports.P2PTransferResult{
		OrderID:         order.ID,
		TransactionID:   txn.ID,
		MerchantAccount: target.AccountNumber,
	}, nil
}

// ConfirmAndRelease is the merchant's confirmation of the off-chain payment.
// It releases the escrowed units from the merchant's fund wallet into the
// user's fund wallet and moves the order to filled. The user's fund wallet
// is created on the fly when missing.
func (s *P2PServiceImpl) ConfirmAndRelease(ctx context.Context, orderID, merchantID uuid.UUID) (*ports.P2PReleaseResult, error) {
	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	order, err := s.orderRepo.GetByIDForUpdate(ctx, dbTx, orderID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock order: %w", err))
	}
	if order == nil {
		return nil, apperror.ErrNotFound("p2p order")
	}
	if order.MerchantID != merchantID {
		return nil, apperror.ErrUnauthorized("only the order's merchant can release")
	}
	if !order.CanTransition(domain.P2PStateFilled) {
		return nil, apperror.ErrInvalidState(fmt.Sprintf("cannot release order in state %s", order.State))
	}

	merchantWallet, err := s.walletRepo.GetByUserAndTypeForUpdate(ctx, dbTx, merchantID, domain.WalletTypeFund)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock merchant wallet: %w", err))
	}
	if merchantWallet == nil {
		return nil, apperror.ErrNotFound("merchant wallet")
	}
	if !merchantWallet.CanAfford(order.UnitNumbers) {
		return nil, apperror.ErrInsufficientBalance()
	}

	userWallet, err := s.walletRepo.GetByUserAndTypeForUpdate(ctx, dbTx, order.UserID, domain.WalletTypeFund)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock user wallet: %w", err))
	}
	now := time.Now().UTC()
	if userWallet == nil {
		userWallet = &domain.Wallet{
			ID:        uuid.New(),
			UserID:    order.UserID,
			Type:      domain.WalletTypeFund,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := s.walletRepo.CreateTx(ctx, dbTx, userWallet); err != nil {
			return nil, apperror.InternalError(fmt.Errorf("create user wallet: %w", err))
		}
	}

	merchantWallet.Balance = merchantWallet.Balance.Sub(order.UnitNumbers)
	if err := s.walletRepo.SetBalance(ctx, dbTx, merchantWallet.ID, merchantWallet.Balance); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("debit merchant wallet: %w", err))
	}

	userWallet.Balance = userWallet.Balance.Add(order.UnitNumbers)
	if err := s.walletRepo.SetBalance(ctx, dbTx, userWallet.ID, userWallet.Balance); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("credit user wallet: %w", err))
	}

	if err := s.orderRepo.UpdateState(ctx, dbTx, order.ID, domain.P2PStateFilled); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update state: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().
		Str("order_id", order.ID.String()).
		Str("merchant_id", merchantID.String()).
		Str("units", order.UnitNumbers.String()).
		Msg("p2p order released")

	return &ports.P2PReleaseResult{
		OrderID:         order.ID,
		UserBalance:     userWallet.Balance,
		MerchantBalance: merchantWallet.Balance,
	}, nil
}

// ListOpen returns open orders, newest first.
func (s *P2PServiceImpl) ListOpen(ctx context.Context) ([]domain.P2POrder, error) {
	orders, err := s.orderRepo.ListOpen(ctx, p2pListLimit)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list open orders: %w", err))
	}
	return orders, nil
}

// MyOrders returns the user's orders in any state, newest first.
func (s *P2PServiceImpl) MyOrders(ctx context.Context, userID uuid.UUID) ([]domain.P2POrder, error) {
	orders, err := s.orderRepo.ListByUser(ctx, userID, p2pListLimit)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list orders: %w", err))
	}
	return orders, nil
}

// Merchants returns the users that can take the merchant side of an order.
func (s *P2PServiceImpl) Merchants(ctx context.Context) ([]domain.User, error) {
	merchants, err := s.userRepo.ListMerchants(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list merchants: %w", err))
	}
	return merchants, nil
}
