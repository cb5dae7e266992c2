package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/erp-pro/erp-pro-api/internal/domain"
	"github.com/erp-pro/erp-pro-api/internal/domain/entity"
	"github.com/erp-pro/erp-pro-api/internal/domain/repository"
)

var _ repository.BatchRepository = (*BatchRepo)(nil)

// BatchRepo implementación del puerto BatchRepository sobre PostgreSQL (usable con pool o tx).
type BatchRepo struct {
	q Querier
}

// NewBatchRepository construye el adaptador. Pasar pool o tx (Querier).
func NewBatchRepository(q Querier) *BatchRepo {
	return &BatchRepo{q: q}
}

// Create persiste un lote de recepción.
func (r *BatchRepo) Create(ctx context.Context, batch *entity.Batch) error {
	query := `
		INSERT INTO batches (id, product_id, quantity, cost, received_date)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(ctx, query,
		batch.ID, batch.ProductID, batch.Quantity, batch.Cost, batch.ReceivedDate,
	)
	if err != nil {
		return fmt.Errorf("insert batch: %w", err)
	}
	return nil
}

// GetByID obtiene un lote por ID.
func (r *BatchRepo) GetByID(ctx context.Context, id string) (*entity.Batch, error) {
	query := `SELECT id, product_id, quantity, cost, received_date FROM batches WHERE id = $1`
	var b entity.Batch
	err := r.q.QueryRow(ctx, query, id).Scan(&b.ID, &b.ProductID, &b.Quantity, &b.Cost, &b.ReceivedDate)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get batch: %w", err)
	}
	return &b, nil
}

// Delete elimina un lote.
func (r *BatchRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM batches WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete batch: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List devuelve los lotes con los datos del producto unidos, más recientes primero.
func (r *BatchRepo) List(ctx context.Context) ([]*entity.BatchWithProduct, error) {
	query := `
		SELECT b.id, b.product_id, b.quantity, b.cost, b.received_date,
		       p.name, p.category
		FROM batches b
		JOIN products p ON p.id = b.product_id
		ORDER BY b.received_date DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list batches: %w", err)
	}
	defer rows.Close()

	var batches []*entity.BatchWithProduct
	for rows.Next() {
		var b entity.BatchWithProduct
		if err := rows.Scan(&b.ID, &b.ProductID, &b.Quantity, &b.Cost, &b.ReceivedDate, &b.ProductName, &b.ProductCategory); err != nil {
			return nil, fmt.Errorf("scan batch: %w", err)
		}
		batches = append(batches, &b)
	}
	return batches, rows.Err()
}
