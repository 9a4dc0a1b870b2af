package cartstore

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/RaikyD/storefront-checkout/internal/domain"
	"github.com/RaikyD/storefront-checkout/internal/logger"
)

// PostgresStore keeps carts in the store.cart_items table, one row per
// (user_id, product_id).
type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

func (s *PostgresStore) AddItem(ctx context.Context, userID string, item domain.CartItem) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO store.cart_items (user_id, product_id, quantity)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (user_id, product_id)
		 DO UPDATE SET quantity = store.cart_items.quantity + EXCLUDED.quantity`,
		userID, item.ProductID, item.Quantity,
	)
	if err != nil {
		logger.Warn("cart add item failed", "user_id", userID, "err", err)
		return err
	}
	return nil
}

func (s *PostgresStore) GetCart(ctx context.Context, userID string) (domain.Cart, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT product_id, quantity FROM store.cart_items WHERE user_id = $1`,
		userID,
	)
	if err != nil {
		logger.Warn("cart fetch failed", "user_id", userID, "err", err)
		return domain.Cart{}, err
	}
	defer rows.Close()

	cart := domain.Cart{UserID: userID}
	for rows.Next() {
		var item domain.CartItem
		if err := rows.Scan(&item.ProductID, &item.Quantity); err != nil {
			return domain.Cart{}, err
		}
		cart.Items = append(cart.Items, item)
	}
	return cart, rows.Err()
}

func (s *PostgresStore) EmptyCart(ctx context.Context, userID string) error {
	_, err := s.pool.Exec(ctx,
		`DELETE FROM store.cart_items WHERE user_id = $1`,
		userID,
	)
	if err != nil {
		logger.Warn("cart empty failed", "user_id", userID, "err", err)
	}
	return err
}
