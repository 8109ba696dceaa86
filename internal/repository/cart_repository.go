package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/easyshop/storefront/internal/domain"
)

// CartRepository defines the per-user shopping cart store.
type CartRepository interface {
	GetByUser(ctx context.Context, userID int) (*domain.ShoppingCart, error)
	AddItem(ctx context.Context, userID, productID int) error
	UpdateItem(ctx context.Context, userID, productID, quantity int) error
	ClearCart(ctx context.Context, userID int) error
}

type PostgresCartRepository struct {
	db *sql.DB
}

func NewCartRepository(db *sql.DB) *PostgresCartRepository {
	return &PostgresCartRepository{db: db}
}

// GetByUser materializes the full cart, one line per cart row with a product
// snapshot from the join. A user with no rows gets an empty cart.
func (r *PostgresCartRepository) GetByUser(ctx context.Context, userID int) (*domain.ShoppingCart, error) {
	query := `
		SELECT p.product_id, p.name, p.price, p.category_id, p.description, p.subcategory, p.stock, p.featured, p.image_url, sc.quantity
		FROM shopping_cart sc
		JOIN products p ON sc.product_id = p.product_id
		WHERE sc.user_id = $1
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query cart for user %d: %w", userID, err)
	}
	defer rows.Close()

	cart := domain.NewShoppingCart()
	for rows.Next() {
		var p domain.Product
		var quantity int
		err := rows.Scan(
			&p.ProductID,
			&p.Name,
			&p.Price,
			&p.CategoryID,
			&p.Description,
			&p.Subcategory,
			&p.Stock,
			&p.Featured,
			&p.ImageURL,
			&quantity,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan cart row: %w", err)
		}

		cart.Add(domain.ShoppingCartItem{Product: p, Quantity: quantity})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return cart, nil
}

// AddItem inserts a line with quantity 1 or increments the existing one. The
// increment happens inside the database so concurrent adds for the same
// (user, product) pair all take effect.
func (r *PostgresCartRepository) AddItem(ctx context.Context, userID, productID int) error {
	query := `
		INSERT INTO shopping_cart (user_id, product_id, quantity)
		VALUES ($1, $2, 1)
		ON CONFLICT (user_id, product_id)
		DO UPDATE SET quantity = shopping_cart.quantity + 1
	`

	if _, err := r.db.ExecContext(ctx, query, userID, productID); err != nil {
		return fmt.Errorf("failed to add product %d to cart of user %d: %w", productID, userID, err)
	}

	return nil
}

// UpdateItem sets the quantity of an existing line. A missing line is a
// no-op: the call never inserts. Quantity <= 0 removes the line, keeping
// "quantity zero is absence" true on write.
func (r *PostgresCartRepository) UpdateItem(ctx context.Context, userID, productID, quantity int) error {
	if quantity <= 0 {
		query := `DELETE FROM shopping_cart WHERE user_id = $1 AND product_id = $2`
		if _, err := r.db.ExecContext(ctx, query, userID, productID); err != nil {
			return fmt.Errorf("failed to remove product %d from cart of user %d: %w", productID, userID, err)
		}
		return nil
	}

	query := `
		UPDATE shopping_cart
		SET quantity = $1
		WHERE user_id = $2 AND product_id = $3
	`

	if _, err := r.db.ExecContext(ctx, query, quantity, userID, productID); err != nil {
		return fmt.Errorf("failed to update product %d in cart of user %d: %w", productID, userID, err)
	}

	return nil
}

// ClearCart removes every line for the user. Clearing an empty cart succeeds.
func (r *PostgresCartRepository) ClearCart(ctx context.Context, userID int) error {
	query := `DELETE FROM shopping_cart WHERE user_id = $1`

	if _, err := r.db.ExecContext(ctx, query, userID); err != nil {
		return fmt.Errorf("failed to clear cart of user %d: %w", userID, err)
	}

	return nil
}
