package postgres

import (
	"context"
	"errors"
	"fmt"

	"exchange-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// P2POrderRepo implements ports.P2POrderRepository.
type P2POrderRepo struct {
	pool Pool
}

// NewP2POrderRepo creates a new P2POrderRepo.
func NewP2POrderRepo(pool Pool) *P2POrderRepo {
	return &P2POrderRepo{pool: pool}
}

const p2pOrderColumns = `id, user_id, merchant_id, type, unit_numbers, state, transaction_id, ts`

func scanP2POrder(row pgx.Row) (*domain.P2POrder, error) {
	o := &domain.P2POrder{}
	err := row.Scan(&o.ID, &o.UserID, &o.MerchantID, &o.Type, &o.UnitNumbers, &o.State, &o.TransactionID, &o.TS)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return o, nil
}

// Create inserts a new order.
func (r *P2POrderRepo) Create(ctx context.Context, o *domain.P2POrder) error {
	query := `INSERT INTO p2p_orders (id, user_id, merchant_id, type, unit_numbers, state, ts)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.pool.Exec(ctx, query, o.ID, o.UserID, o.MerchantID, o.Type, o.UnitNumbers, o.State, o.TS)
	if err != nil {
		return fmt.Errorf("insert p2p order: %w", err)
	}
	return nil
}

// GetByID fetches an order (non-locking).
func (r *P2POrderRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.P2POrder, error) {
	query := `SELECT ` + p2pOrderColumns + ` FROM p2p_orders WHERE id = $1`

	o, err := scanP2POrder(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("get p2p order: %w", err)
	}
	return o, nil
}

// GetByIDForUpdate fetches an order with pessimistic locking.
// This MUST be called within a transaction.
func (r *P2POrderRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.P2POrder, error) {
	query := `SELECT ` + p2pOrderColumns + ` FROM p2p_orders WHERE id = $1 FOR UPDATE`

	o, err := scanP2POrder(tx.QueryRow(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("get p2p order for update: %w", err)
	}
	return o, nil
}

// UpdateState moves an order to the given state within a transaction.
func (r *P2POrderRepo) UpdateState(ctx context.Context, tx pgx.Tx, id uuid.UUID, state domain.P2PState) error {
	query := `UPDATE p2p_orders SET state = $1 WHERE id = $2`

	tag, err := tx.Exec(ctx, query, state, id)
	if err != nil {
		return fmt.Errorf("update p2p order state: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update p2p order state: %s not found", id)
	}
	return nil
}

// SetTransactionID links the payment leg to an order within a transaction.
func (r *P2POrderRepo) SetTransactionID(ctx context.Context, tx pgx.Tx, id uuid.UUID, transactionID uuid.UUID) error {
	query := `UPDATE p2p_orders SET transaction_id = $1 WHERE id = $2`

	tag, err := tx.Exec(ctx, query, transactionID, id)
	if err != nil {
		return fmt.Errorf("set p2p order transaction: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("set p2p order transaction: %s not found", id)
	}
	return nil
}

// ListOpen fetches open orders across all users, newest first.
func (r *P2POrderRepo) ListOpen(ctx context.Context, limit int) ([]domain.P2POrder, error) {
	query := `SELECT ` + p2pOrderColumns + ` FROM p2p_orders
		WHERE state = $1 ORDER BY ts DESC LIMIT $2`

	rows, err := r.pool.Query(ctx, query, domain.P2PStateOpen, limit)
	if err != nil {
		return nil, fmt.Errorf("list open p2p orders: %w", err)
	}
	defer rows.Close()
	return collectP2POrders(rows)
}

// ListByUser fetches the user's orders on either side, newest first.
func (r *P2POrderRepo) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.P2POrder, error) {
	query := `SELECT ` + p2pOrderColumns + ` FROM p2p_orders
		WHERE user_id = $1 OR merchant_id = $1 ORDER BY ts DESC LIMIT $2`

	rows, err := r.pool.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list p2p orders: %w", err)
	}
	defer rows.Close()
	return collectP2POrders(rows)
}

func collectP2POrders(rows pgx.Rows) ([]domain.P2POrder, error) {
	var orders []domain.P2POrder
	for rows.Next() {
		var o domain.P2POrder
		if err := rows.Scan(&o.ID, &o.UserID, &o.MerchantID, &o.Type, &o.UnitNumbers, &o.State, &o.TransactionID, &o.TS); err != nil {
			return nil, fmt.Errorf("scan p2p order: %w", err)
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}
