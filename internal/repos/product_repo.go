package repos

import (
	"morefix/internal/domain"

	"github.com/jmoiron/sqlx"
)

type ProductRepo struct{ db *sqlx.DB }

func NewProductRepo(db *sqlx.DB) *ProductRepo { return &ProductRepo{db: db} }

const productCols = `
  id, title, description, category, condition, price, original_price,
  images_json, features_json, rating, reviews, in_stock,
  COALESCE(created_at,'') AS created_at`

// ListAll returns the whole catalog, newest first. Filtering and
// sorting for display happen in the catalog engine, not in SQL.
func (r *ProductRepo) ListAll() ([]domain.Product, error) {
	var out []domain.Product
	err := r.db.Select(&out, `SELECT`+productCols+` FROM products ORDER BY created_at DESC, id`)
	return out, err
}

func (r *ProductRepo) Get(id string) (domain.Product, error) {
	var p domain.Product
	err := r.db.Get(&p, `SELECT`+productCols+` FROM products WHERE id = ?`, id)
	return p, err
}

func (r *ProductRepo) Insert(p domain.Product) error {
	_, err := r.db.Exec(`
	  INSERT INTO products(id,title,description,category,condition,price,original_price,
	    images_json,features_json,rating,reviews,in_stock,created_at)
	  VALUES(?,?,?,?,?,?,?,?,?,?,?,?,CURRENT_TIMESTAMP)
	`, p.ID, p.Title, p.Description, p.Category, p.Condition, p.Price, p.OriginalPrice,
		p.ImagesJSON, p.FeaturesJSON, p.Rating, p.Reviews, p.InStock)
	return err
}

// Delete removes a product and reports whether a row existed.
func (r *ProductRepo) Delete(id string) (bool, error) {
	res, err := r.db.Exec(`DELETE FROM products WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}
