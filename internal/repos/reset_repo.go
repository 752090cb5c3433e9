package repos

import (
	"github.com/jmoiron/sqlx"
)

// ResetRepo stores short-lived password reset tokens.
type ResetRepo struct{ db *sqlx.DB }

func NewResetRepo(db *sqlx.DB) *ResetRepo { return &ResetRepo{db: db} }

func (r *ResetRepo) Create(token, userID string) error {
	_, err := r.db.Exec(`
	  INSERT INTO reset_tokens(token, user_id, expires_at)
	  VALUES(?, ?, datetime('now', '+1 hour'))
	`, token, userID)
	return err
}

// Consume resolves a live token to its user id and invalidates it.
func (r *ResetRepo) Consume(token string) (string, error) {
	var userID string
	err := r.db.Get(&userID, `
	  SELECT user_id FROM reset_tokens
	  WHERE token = ? AND expires_at > datetime('now')
	`, token)
	if err != nil {
		return "", err
	}
	_, _ = r.db.Exec(`DELETE FROM reset_tokens WHERE token = ?`, token)
	return userID, nil
}
