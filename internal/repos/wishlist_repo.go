package repos

import (
	"github.com/jmoiron/sqlx"
)

// WishlistRepo persists one ordered product-id set per user. Writes
// always replace the whole set; the later write wins.
type WishlistRepo struct{ db *sqlx.DB }

func NewWishlistRepo(db *sqlx.DB) *WishlistRepo { return &WishlistRepo{db: db} }

// Get returns the user's product ids in insertion order; empty when
// the user has no wishlist yet.
func (r *WishlistRepo) Get(userID string) ([]string, error) {
	var out []string
	err := r.db.Select(&out, `
	  SELECT product_id FROM wishlist_items
	  WHERE user_id = ?
	  ORDER BY position
	`, userID)
	if out == nil {
		out = []string{}
	}
	return out, err
}

// Replace overwrites the user's set with ids, preserving their order.
func (r *WishlistRepo) Replace(userID string, ids []string) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`DELETE FROM wishlist_items WHERE user_id = ?`, userID); err != nil {
		return err
	}
	for pos, pid := range ids {
		if _, err := tx.Exec(`
		  INSERT INTO wishlist_items(user_id, product_id, position, created_at)
		  VALUES(?, ?, ?, CURRENT_TIMESTAMP)
		  ON CONFLICT(user_id, product_id) DO NOTHING
		`, userID, pid, pos); err != nil {
			return err
		}
	}
	return tx.Commit()
}

type WishlistRow struct {
	ProductID string  `db:"product_id"`
	Title     string  `db:"title"`
	Condition string  `db:"condition"`
	Price     float64 `db:"price"`
	InStock   bool    `db:"in_stock"`
}

// ListDetailed joins the saved ids with the catalog for display,
// keeping insertion order. Ids whose product was deleted are skipped.
func (r *WishlistRepo) ListDetailed(userID string) ([]WishlistRow, error) {
	var out []WishlistRow
	err := r.db.Select(&out, `
	  SELECT p.id AS product_id, p.title, p.condition, p.price, p.in_stock
	  FROM wishlist_items wi
	  JOIN products p ON p.id = wi.product_id
	  WHERE wi.user_id = ?
	  ORDER BY wi.position
	`, userID)
	return out, err
}
