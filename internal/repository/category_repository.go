package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/easyshop/storefront/internal/domain"
)

// CategoryRepository defines the category store. Consumers depend on this
// interface, not on the Postgres implementation.
type CategoryRepository interface {
	ListAll(ctx context.Context) ([]domain.Category, error)
	GetByID(ctx context.Context, id int) (*domain.Category, error)
	Create(ctx context.Context, category domain.Category) (*domain.Category, error)
	Update(ctx context.Context, id int, category domain.Category) error
	Delete(ctx context.Context, id int) error
	ListProducts(ctx context.Context, categoryID int) ([]domain.Product, error)
}

type PostgresCategoryRepository struct {
	db *sql.DB
}

func NewCategoryRepository(db *sql.DB) *PostgresCategoryRepository {
	return &PostgresCategoryRepository{db: db}
}

func (r *PostgresCategoryRepository) ListAll(ctx context.Context) ([]domain.Category, error) {
	query := `
		SELECT category_id, name, description
		FROM categories
		ORDER BY category_id
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	categories := []domain.Category{}
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Description); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return categories, nil
}

func (r *PostgresCategoryRepository) GetByID(ctx context.Context, id int) (*domain.Category, error) {
	query := `
		SELECT category_id, name, description
		FROM categories
		WHERE category_id = $1
	`

	var c domain.Category
	err := r.db.QueryRowContext(ctx, query, id).Scan(&c.ID, &c.Name, &c.Description)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query category %d: %w", id, err)
	}

	return &c, nil
}

// Create inserts the category and returns it with the server-assigned id.
func (r *PostgresCategoryRepository) Create(ctx context.Context, category domain.Category) (*domain.Category, error) {
	query := `
		INSERT INTO categories (name, description)
		VALUES ($1, $2)
		RETURNING category_id
	`

	err := r.db.QueryRowContext(ctx, query, category.Name, category.Description).Scan(&category.ID)
	if isUniqueViolation(err) {
		return nil, ErrConflict
	}
	if err != nil {
		return nil, fmt.Errorf("failed to insert category: %w", err)
	}

	return &category, nil
}

// Update replaces the mutable fields of an existing category. The id
// parameter is authoritative; any id inside the category value is ignored.
func (r *PostgresCategoryRepository) Update(ctx context.Context, id int, category domain.Category) error {
	query := `
		UPDATE categories
		SET name = $1, description = $2
		WHERE category_id = $3
	`

	result, err := r.db.ExecContext(ctx, query, category.Name, category.Description, id)
	if err != nil {
		return fmt.Errorf("failed to update category %d: %w", id, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *PostgresCategoryRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM categories WHERE category_id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete category %d: %w", id, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

// ListProducts returns every product in the category. An unknown category is
// ErrNotFound; a known category with no products is an empty slice.
func (r *PostgresCategoryRepository) ListProducts(ctx context.Context, categoryID int) ([]domain.Product, error) {
	if _, err := r.GetByID(ctx, categoryID); err != nil {
		return nil, err
	}

	query := `
		SELECT product_id, name, price, category_id, description, subcategory, stock, featured, image_url
		FROM products
		WHERE category_id = $1
		ORDER BY product_id
	`

	rows, err := r.db.QueryContext(ctx, query, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to query products of category %d: %w", categoryID, err)
	}
	defer rows.Close()

	products := []domain.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return products, nil
}

func scanProduct(rows *sql.Rows) (domain.Product, error) {
	var p domain.Product
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
	)
	if err != nil {
		return domain.Product{}, fmt.Errorf("failed to scan product: %w", err)
	}
	return p, nil
}
