package repositories

import (
	"coffee-shop/models"
	"coffee-shop/utils"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
)

type ProductRepository struct {
	db DBTX
}

func NewProductRepository(db DBTX) *ProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) GetAllCategories(ctx context.Context) ([]models.Category, error) {
	query := `SELECT id, name, is_active, created_at FROM categories WHERE is_active = true ORDER BY name`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := []models.Category{}
	for rows.Next() {
		var cat models.Category
		if err := rows.Scan(&cat.ID, &cat.Name, &cat.IsActive, &cat.CreatedAt); err != nil {
			return nil, err
		}
		categories = append(categories, cat)
	}
	return categories, rows.Err()
}

const productColumns = `id, name, description, category_id, image_url, price, original_price,
	stock, is_flash_sale, is_favorite, is_buy1get1, is_active, created_at, updated_at`

func (r *ProductRepository) GetAllProducts(ctx context.Context, page, limit int) ([]models.Product, int, error) {
	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM products WHERE is_active = true`).Scan(&total); err != nil {
		return nil, 0, err
	}
	offset := utils.PageOffset(page, limit, total)

	query := `SELECT ` + productColumns + `
	          FROM products WHERE is_active = true ORDER BY created_at DESC LIMIT $1 OFFSET $2`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	products, err := collectProducts(rows)
	if err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

func (r *ProductRepository) FilterProducts(ctx context.Context, filter models.ProductFilter) ([]models.Product, error) {
	query, args := buildProductFilterQuery(filter)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return collectProducts(rows)
}

func (r *ProductRepository) GetFavoriteProducts(ctx context.Context, limit int) ([]models.Product, error) {
	query := `SELECT ` + productColumns + `
	          FROM products WHERE is_active = true AND is_favorite = true
	          ORDER BY created_at DESC LIMIT $1`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	return collectProducts(rows)
}

// buildProductFilterQuery only ever interpolates placeholders and fixed
// ORDER BY clauses; every user value travels as an argument.
func buildProductFilterQuery(f models.ProductFilter) (string, []any) {
	var sb strings.Builder
	sb.WriteString(`SELECT ` + productColumns + ` FROM products WHERE is_active = true`)
	args := []any{}

	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if search := strings.TrimSpace(f.Search); search != "" {
		sb.WriteString(" AND LOWER(name) LIKE LOWER(" + arg("%"+search+"%") + ")")
	}

	switch category := strings.TrimSpace(f.Category); {
	case category == "":
	case strings.EqualFold(category, models.CategoryFavorite):
		sb.WriteString(" AND is_favorite = true")
	default:
		sb.WriteString(" AND category_id IN (SELECT id FROM categories WHERE LOWER(name) = LOWER(" + arg(category) + "))")
	}

	if f.MinPrice > 0 {
		sb.WriteString(" AND price >= " + arg(f.MinPrice))
	}
	if f.MaxPrice > 0 {
		sb.WriteString(" AND price <= " + arg(f.MaxPrice))
	}

	switch f.Type {
	case models.ProductTypeBuy1Get1:
		sb.WriteString(" AND is_buy1get1 = true")
	case models.ProductTypeFlashSale:
		sb.WriteString(" AND is_flash_sale = true")
	}

	switch {
	case f.SortName == "asc":
		sb.WriteString(" ORDER BY name ASC")
	case f.SortName == "desc":
		sb.WriteString(" ORDER BY name DESC")
	case f.SortPrice == "asc":
		sb.WriteString(" ORDER BY price ASC")
	case f.SortPrice == "desc":
		sb.WriteString(" ORDER BY price DESC")
	default:
		sb.WriteString(" ORDER BY created_at DESC")
	}

	return sb.String(), args
}

func (r *ProductRepository) GetProductByID(ctx context.Context, id int) (*models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1 AND is_active = true`

	p, err := scanProduct(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func scanProduct(row pgx.Row) (models.Product, error) {
	var p models.Product
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.CategoryID, &p.ImageURL, &p.Price, &p.OriginalPrice,
		&p.Stock, &p.IsFlashSale, &p.IsFavorite, &p.IsBuy1Get1, &p.IsActive, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

func collectProducts(rows pgx.Rows) ([]models.Product, error) {
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}
