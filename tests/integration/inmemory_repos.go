package integration

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"exchange-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
)

// --- In-Memory User Repo ---

type inMemoryUserRepo struct {
	mu    sync.RWMutex
	users map[uuid.UUID]*domain.User
}

func newInMemoryUserRepo() *inMemoryUserRepo {
	return &inMemoryUserRepo{users: make(map[uuid.UUID]*domain.User)}
}

func (r *inMemoryUserRepo) Create(ctx context.Context, u *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.Username == u.Username {
			return fmt.Errorf("username already exists")
		}
	}
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *inMemoryUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *inMemoryUserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *inMemoryUserRepo) ListMerchants(ctx context.Context) ([]domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.User
	for _, u := range r.users {
		if u.Role == domain.UserRoleMerchant {
			out = append(out, *u)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Username < out[j].Username })
	return out, nil
}

// --- In-Memory Wallet Repo ---

type inMemoryWalletRepo struct {
	mu      sync.RWMutex
	wallets map[uuid.UUID]*domain.Wallet
}

func newInMemoryWalletRepo() *inMemoryWalletRepo {
	return &inMemoryWalletRepo{wallets: make(map[uuid.UUID]*domain.Wallet)}
}

func (r *inMemoryWalletRepo) Create(ctx context.Context, w *domain.Wallet) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.wallets {
		if existing.UserID == w.UserID && existing.Type == w.Type {
			return fmt.Errorf("wallet already exists")
		}
	}
	cp := *w
	r.wallets[w.ID] = &cp
	return nil
}

func (r *inMemoryWalletRepo) CreateTx(ctx context.Context, tx pgx.Tx, w *domain.Wallet) error {
	return r.Create(ctx, w)
}

func (r *inMemoryWalletRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Wallet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	w, ok := r.wallets[id]
	if !ok {
		return nil, nil
	}
	cp := *w
	return &cp, nil
}

func (r *inMemoryWalletRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Wallet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.Wallet
	for _, w := range r.wallets {
		if w.UserID == userID {
			out = append(out, *w)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Type < out[j].Type })
	return out, nil
}

func (r *inMemoryWalletRepo) GetByUserAndType(ctx context.Context, userID uuid.UUID, walletType domain.WalletType) (*domain.Wallet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, w := range r.wallets {
		if w.UserID == userID && w.Type == walletType {
			cp := *w
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *inMemoryWalletRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Wallet, error) {
	return r.GetByID(ctx, id)
}

func (r *inMemoryWalletRepo) GetByUserAndTypeForUpdate(ctx context.Context, tx pgx.Tx, userID uuid.UUID, walletType domain.WalletType) (*domain.Wallet, error) {
	return r.GetByUserAndType(ctx, userID, walletType)
}

func (r *inMemoryWalletRepo) SetBalance(ctx context.Context, tx pgx.Tx, walletID uuid.UUID, balance decimal.Decimal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	w, ok := r.wallets[walletID]
	if !ok {
		return fmt.Errorf("wallet not found")
	}
	w.Balance = balance
	w.UpdatedAt = time.Now()
	return nil
}

// --- In-Memory Holding Repo ---

type holdingKey struct {
	walletID uuid.UUID
	symbol   string
}

type inMemoryHoldingRepo struct {
	mu       sync.RWMutex
	holdings map[holdingKey]*domain.Holding
}

func newInMemoryHoldingRepo() *inMemoryHoldingRepo {
	return &inMemoryHoldingRepo{holdings: make(map[holdingKey]*domain.Holding)}
}

func (r *inMemoryHoldingRepo) Get(ctx context.Context, walletID uuid.UUID, symbol string) (*domain.Holding, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	h, ok := r.holdings[holdingKey{walletID, symbol}]
	if !ok {
		return nil, nil
	}
	cp := *h
	return &cp, nil
}

func (r *inMemoryHoldingRepo) GetForUpdate(ctx context.Context, tx pgx.Tx, walletID uuid.UUID, symbol string) (*domain.Holding, error) {
	return r.Get(ctx, walletID, symbol)
}

func (r *inMemoryHoldingRepo) ListByWallet(ctx context.Context, walletID uuid.UUID) ([]domain.Holding, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.Holding
	for k, h := range r.holdings {
		if k.walletID == walletID {
			out = append(out, *h)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Symbol < out[j].Symbol })
	return out, nil
}

func (r *inMemoryHoldingRepo) Create(ctx context.Context, tx pgx.Tx, h *domain.Holding) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *h
	r.holdings[holdingKey{h.WalletID, h.Symbol}] = &cp
	return nil
}

func (r *inMemoryHoldingRepo) Update(ctx context.Context, tx pgx.Tx, h *domain.Holding) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := holdingKey{h.WalletID, h.Symbol}
	if _, ok := r.holdings[key]; !ok {
		return fmt.Errorf("holding not found")
	}
	cp := *h
	r.holdings[key] = &cp
	return nil
}

func (r *inMemoryHoldingRepo) Delete(ctx context.Context, tx pgx.Tx, walletID uuid.UUID, symbol string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.holdings, holdingKey{walletID, symbol})
	return nil
}

// --- In-Memory Spot Transaction Repo ---

type inMemorySpotTxRepo struct {
	mu   sync.RWMutex
	txns []domain.SpotTransaction
}

func newInMemorySpotTxRepo() *inMemorySpotTxRepo {
	return &inMemorySpotTxRepo{}
}

func (r *inMemorySpotTxRepo) Create(ctx context.Context, tx pgx.Tx, txn *domain.SpotTransaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.txns = append(r.txns, *txn)
	return nil
}

func (r *inMemorySpotTxRepo) ListByWallet(ctx context.Context, walletID uuid.UUID, limit int) ([]domain.SpotTransaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.SpotTransaction
	for i := len(r.txns) - 1; i >= 0 && len(out) < limit; i-- {
		if r.txns[i].WalletID == walletID {
			out = append(out, r.txns[i])
		}
	}
	return out, nil
}

// --- In-Memory Future Order Repo ---

type inMemoryFutureOrderRepo struct {
	mu     sync.RWMutex
	orders map[uuid.UUID]*domain.FutureOrder
}

func newInMemoryFutureOrderRepo() *inMemoryFutureOrderRepo {
	return &inMemoryFutureOrderRepo{orders: make(map[uuid.UUID]*domain.FutureOrder)}
}

func (r *inMemoryFutureOrderRepo) Create(ctx context.Context, tx pgx.Tx, o *domain.FutureOrder) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *o
	r.orders[o.ID] = &cp
	return nil
}

func (r *inMemoryFutureOrderRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.FutureOrder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	o, ok := r.orders[id]
	if !ok {
		return nil, nil
	}
	cp := *o
	return &cp, nil
}

func (r *inMemoryFutureOrderRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.FutureOrder, error) {
	return r.GetByID(ctx, id)
}

func (r *inMemoryFutureOrderRepo) Close(ctx context.Context, tx pgx.Tx, id uuid.UUID, closeTS time.Time, exitPrice, profit decimal.Decimal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orders[id]
	if !ok || o.CloseTS != nil {
		return fmt.Errorf("future order %s not open", id)
	}
	o.CloseTS = &closeTS
	o.ExitPrice = &exitPrice
	o.Profit = &profit
	return nil
}

func (r *inMemoryFutureOrderRepo) ListOpenByWallet(ctx context.Context, walletID uuid.UUID) ([]domain.FutureOrder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.FutureOrder
	for _, o := range r.orders {
		if o.WalletID == walletID && o.CloseTS == nil {
			out = append(out, *o)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].OpenTS.After(out[j].OpenTS) })
	return out, nil
}

func (r *inMemoryFutureOrderRepo) ListByWallet(ctx context.Context, walletID uuid.UUID, limit int) ([]domain.FutureOrder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.FutureOrder
	for _, o := range r.orders {
		if o.WalletID == walletID {
			out = append(out, *o)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].OpenTS.After(out[j].OpenTS) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// --- In-Memory Bank Account Repo ---

type inMemoryBankAccountRepo struct {
	mu       sync.RWMutex
	accounts map[string]*domain.BankAccount
}

func newInMemoryBankAccountRepo() *inMemoryBankAccountRepo {
	return &inMemoryBankAccountRepo{accounts: make(map[string]*domain.BankAccount)}
}

func (r *inMemoryBankAccountRepo) Create(ctx context.Context, a *domain.BankAccount) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.accounts[a.AccountNumber]; ok {
		return fmt.Errorf("account number already exists")
	}
	cp := *a
	r.accounts[a.AccountNumber] = &cp
	return nil
}

func (r *inMemoryBankAccountRepo) GetByAccountNumber(ctx context.Context, accountNumber string) (*domain.BankAccount, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.accounts[accountNumber]
	if !ok {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

func (r *inMemoryBankAccountRepo) GetByAccountNumberForUpdate(ctx context.Context, tx pgx.Tx, accountNumber string) (*domain.BankAccount, error) {
	return r.GetByAccountNumber(ctx, accountNumber)
}

func (r *inMemoryBankAccountRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.BankAccount, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.BankAccount
	for _, a := range r.accounts {
		if a.UserID == userID {
			out = append(out, *a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *inMemoryBankAccountRepo) GetDefaultByUser(ctx context.Context, userID uuid.UUID) (*domain.BankAccount, error) {
	accounts, err := r.ListByUser(ctx, userID)
	if err != nil || len(accounts) == 0 {
		return nil, err
	}
	for _, a := range accounts {
		if a.IsDefault {
			cp := a
			return &cp, nil
		}
	}
	cp := accounts[0]
	return &cp, nil
}

func (r *inMemoryBankAccountRepo) ClearDefault(ctx context.Context, userID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.accounts {
		if a.UserID == userID {
			a.IsDefault = false
		}
	}
	return nil
}

func (r *inMemoryBankAccountRepo) SetBalance(ctx context.Context, tx pgx.Tx, accountNumber string, balance decimal.Decimal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.accounts[accountNumber]
	if !ok {
		return fmt.Errorf("bank account not found")
	}
	a.AccountBalance = balance
	return nil
}

func (r *inMemoryBankAccountRepo) Delete(ctx context.Context, accountNumber string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.accounts, accountNumber)
	return nil
}

// --- In-Memory Account Transaction Repo ---

type inMemoryAccountTxRepo struct {
	mu   sync.RWMutex
	txns []domain.AccountTransaction
}

func newInMemoryAccountTxRepo() *inMemoryAccountTxRepo {
	return &inMemoryAccountTxRepo{}
}

func (r *inMemoryAccountTxRepo) Create(ctx context.Context, tx pgx.Tx, txn *domain.AccountTransaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.txns = append(r.txns, *txn)
	return nil
}

func (r *inMemoryAccountTxRepo) ListByAccountNumber(ctx context.Context, accountNumber string, limit int) ([]domain.AccountTransaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.AccountTransaction
	for i := len(r.txns) - 1; i >= 0 && len(out) < limit; i-- {
		t := r.txns[i]
		if t.SourceAccountNumber == accountNumber || t.TargetAccountNumber == accountNumber {
			out = append(out, t)
		}
	}
	return out, nil
}

// --- In-Memory P2P Order Repo ---

type inMemoryP2POrderRepo struct {
	mu     sync.RWMutex
	orders map[uuid.UUID]*domain.P2POrder
}

func newInMemoryP2POrderRepo() *inMemoryP2POrderRepo {
	return &inMemoryP2POrderRepo{orders: make(map[uuid.UUID]*domain.P2POrder)}
}

func (r *inMemoryP2POrderRepo) Create(ctx context.Context, o *domain.P2POrder) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *o
	r.orders[o.ID] = &cp
	return nil
}

func (r *inMemoryP2POrderRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.P2POrder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	o, ok := r.orders[id]
	if !ok {
		return nil, nil
	}
	cp := *o
	return &cp, nil
}

func (r *inMemoryP2POrderRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.P2POrder, error) {
	return r.GetByID(ctx, id)
}

func (r *inMemoryP2POrderRepo) UpdateState(ctx context.Context, tx pgx.Tx, id uuid.UUID, state domain.P2PState) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orders[id]
	if !ok {
		return fmt.Errorf("p2p order not found")
	}
	o.State = state
	return nil
}

func (r *inMemoryP2POrderRepo) SetTransactionID(ctx context.Context, tx pgx.Tx, id, transactionID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orders[id]
	if !ok {
		return fmt.Errorf("p2p order not found")
	}
	o.TransactionID = &transactionID
	return nil
}

func (r *inMemoryP2POrderRepo) ListOpen(ctx context.Context, limit int) ([]domain.P2POrder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.P2POrder
	for _, o := range r.orders {
		if o.State == domain.P2PStateOpen {
			out = append(out, *o)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].TS.After(out[j].TS) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *inMemoryP2POrderRepo) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.P2POrder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.P2POrder
	for _, o := range r.orders {
		if o.UserID == userID || o.MerchantID == userID {
			out = append(out, *o)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].TS.After(out[j].TS) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// --- In-Memory Transactor (no-op tx) ---

type inMemoryTransactor struct{}

func newInMemoryTransactor() *inMemoryTransactor {
	return &inMemoryTransactor{}
}

func (t *inMemoryTransactor) Begin(ctx context.Context) (pgx.Tx, error) {
	return &noopTx{}, nil
}

// noopTx is a no-op pgx.Tx implementation for in-memory testing.
type noopTx struct{}

func (t *noopTx) Begin(ctx context.Context) (pgx.Tx, error) { return t, nil }
func (t *noopTx) Commit(ctx context.Context) error          { return nil }
func (t *noopTx) Rollback(ctx context.Context) error        { return nil }
func (t *noopTx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return 0, nil
}
func (t *noopTx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults { return nil }
func (t *noopTx) LargeObjects() pgx.LargeObjects                               { return pgx.LargeObjects{} }
func (t *noopTx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	return nil, nil
}
func (t *noopTx) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.NewCommandTag(""), nil
}
func (t *noopTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}
func (t *noopTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}
func (t *noopTx) Conn() *pgx.Conn { return nil }
