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

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación del puerto SaleRepository sobre PostgreSQL (usable con pool o tx).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create persiste la cabecera de la venta.
func (r *SaleRepo) Create(ctx context.Context, sale *entity.Sale) error {
	query := `
		INSERT INTO sales (id, client_id, seller_id, total_amount, discount, payment_type, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		sale.ID, sale.ClientID, sale.SellerID, sale.TotalAmount, sale.Discount,
		sale.PaymentType, sale.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// CreateItems persiste las líneas de la venta.
func (r *SaleRepo) CreateItems(ctx context.Context, items []*entity.SaleItem) error {
	query := `
		INSERT INTO sale_items (id, sale_id, product_id, quantity, price)
		VALUES ($1, $2, $3, $4, $5)`
	for _, it := range items {
		if _, err := r.q.Exec(ctx, query, it.ID, it.SaleID, it.ProductID, it.Quantity, it.Price); err != nil {
			return fmt.Errorf("insert sale item: %w", err)
		}
	}
	return nil
}

// GetByID obtiene una venta por ID.
func (r *SaleRepo) GetByID(ctx context.Context, id string) (*entity.Sale, error) {
	query := `
		SELECT id, client_id, seller_id, total_amount, discount, payment_type, created_at
		FROM sales WHERE id = $1`
	var s entity.Sale
	err := r.q.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.ClientID, &s.SellerID, &s.TotalAmount, &s.Discount, &s.PaymentType, &s.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	return &s, nil
}

// GetItems devuelve las líneas de una venta.
func (r *SaleRepo) GetItems(ctx context.Context, saleID string) ([]*entity.SaleItem, error) {
	query := `SELECT id, sale_id, product_id, quantity, price FROM sale_items WHERE sale_id = $1`
	rows, err := r.q.Query(ctx, query, saleID)
	if err != nil {
		return nil, fmt.Errorf("list sale items: %w", err)
	}
	defer rows.Close()

	var items []*entity.SaleItem
	for rows.Next() {
		var it entity.SaleItem
		if err := rows.Scan(&it.ID, &it.SaleID, &it.ProductID, &it.Quantity, &it.Price); err != nil {
			return nil, fmt.Errorf("scan sale item: %w", err)
		}
		items = append(items, &it)
	}
	return items, rows.Err()
}

// List devuelve las ventas con el nombre del cliente unido, más recientes primero.
// Las ventas sin cliente (mostrador) salen como "Umumiy xaridor".
func (r *SaleRepo) List(ctx context.Context) ([]*entity.SaleWithClient, error) {
	query := `
		SELECT s.id, s.client_id, s.seller_id, s.total_amount, s.discount, s.payment_type, s.created_at,
		       COALESCE(c.name, 'Umumiy xaridor')
		FROM sales s
		LEFT JOIN clients c ON c.id = s.client_id
		ORDER BY s.created_at DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()

	var sales []*entity.SaleWithClient
	for rows.Next() {
		var s entity.SaleWithClient
		if err := rows.Scan(&s.ID, &s.ClientID, &s.SellerID, &s.TotalAmount, &s.Discount, &s.PaymentType, &s.CreatedAt, &s.ClientName); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		sales = append(sales, &s)
	}
	return sales, rows.Err()
}

// Delete elimina solo la cabecera de la venta. Las líneas se conservan como
// historial de lo vendido (la FK sale_items.sale_id es ON DELETE SET NULL) y
// el stock no se toca.
func (r *SaleRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM sales WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete sale: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
