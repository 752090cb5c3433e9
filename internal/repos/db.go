package repos

import (
	"log"

	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"
	_ "modernc.org/sqlite"
)

// OpenDB opens the sqlite store, ensures the schema and seeds demo data.
// The account matching adminEmail is created (or promoted) with the
// ADMIN role.
func OpenDB(dsn, adminEmail string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}

	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	// Idempotent; safe to run every start.
	if err := seedProducts(db); err != nil {
		return nil, err
	}
	if err := seedUsers(db, adminEmail); err != nil {
		return nil, err
	}

	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
PRAGMA foreign_keys = ON;

-- Products
CREATE TABLE IF NOT EXISTS products(
  id TEXT PRIMARY KEY,
  title TEXT NOT NULL,
  description TEXT NOT NULL,
  category TEXT NOT NULL CHECK (category IN ('Stockage','Ordinateurs','Audio','Smartphones')),
  condition TEXT NOT NULL CHECK (condition IN ('Neuf','Occasion')),
  price NUMERIC NOT NULL CHECK (price >= 0),
  original_price NUMERIC NOT NULL DEFAULT 0,
  images_json TEXT NOT NULL,
  features_json TEXT NOT NULL DEFAULT '[]',
  rating NUMERIC NOT NULL DEFAULT 0,
  reviews INTEGER NOT NULL DEFAULT 0,
  in_stock INTEGER NOT NULL DEFAULT 1,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_products_category   ON products(category);
CREATE INDEX IF NOT EXISTS idx_products_created_at ON products(created_at);

-- Users & Sessions
CREATE TABLE IF NOT EXISTS users(
  id TEXT PRIMARY KEY,
  email TEXT NOT NULL UNIQUE,
  name TEXT NOT NULL,
  password_hash TEXT NOT NULL,
  role TEXT NOT NULL CHECK (role IN ('USER','ADMIN')),
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_users_email ON users(LOWER(email));

CREATE TABLE IF NOT EXISTS sessions(
  id TEXT PRIMARY KEY,               -- same value as the 'sid' cookie
  user_id TEXT NULL REFERENCES users(id) ON DELETE SET NULL,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  last_seen  TEXT
);
CREATE INDEX IF NOT EXISTS idx_sessions_user ON sessions(user_id);

-- Wishlists: one ordered id set per user, overwritten as a whole
CREATE TABLE IF NOT EXISTS wishlist_items(
  user_id    TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
  product_id TEXT NOT NULL,
  position   INTEGER NOT NULL,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  PRIMARY KEY (user_id, product_id)
);
CREATE INDEX IF NOT EXISTS idx_wishlist_user ON wishlist_items(user_id, position);

-- Password reset tokens
CREATE TABLE IF NOT EXISTS reset_tokens(
  token TEXT PRIMARY KEY,
  user_id TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
  expires_at TEXT NOT NULL,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
`
	_, err := db.Exec(schema)
	return err
}

func seedProducts(db *sqlx.DB) error {
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM products`); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	log.Println("[seed] inserting demo products")

	tx := db.MustBegin()
	tx.MustExec(`INSERT INTO products(id,title,description,category,condition,price,original_price,images_json,features_json,rating,reviews,in_stock) VALUES
	  ('ssd-870-evo','SSD Samsung 870 EVO 1To','Disque SSD SATA 2.5" rapide et fiable','Stockage','Neuf',89.99,119.99,
	   '["/images/ssd-870-1.jpg","/images/ssd-870-2.jpg"]','["SATA III","560 Mo/s","Garantie 5 ans"]',4.8,124,1),
	  ('dell-latitude-5400','Dell Latitude 5400','PC portable professionnel reconditionné, i5-8365U, 16 Go','Ordinateurs','Occasion',349.00,699.00,
	   '["/images/latitude-5400-1.jpg","/images/latitude-5400-2.jpg","/images/latitude-5400-3.jpg"]','["Intel i5-8365U","16 Go RAM","SSD 256 Go"]',4.5,37,1),
	  ('jbl-tune-510','Casque JBL Tune 510BT','Casque Bluetooth sans fil, autonomie 40h','Audio','Neuf',39.90,0,
	   '["/images/jbl-510-1.jpg"]','["Bluetooth 5.0","40h d''autonomie"]',4.3,89,1),
	  ('iphone-12-128','iPhone 12 128 Go','Smartphone reconditionné grade A, débloqué tout opérateur','Smartphones','Occasion',419.00,589.00,
	   '["/images/iphone12-1.jpg","/images/iphone12-2.jpg"]','["128 Go","Batterie neuve","Garantie 12 mois"]',4.6,211,1)`)
	return tx.Commit()
}

// seedUsers ensures a demo USER and the configured ADMIN exist.
func seedUsers(db *sqlx.DB, adminEmail string) error {
	type u struct {
		ID, Email, Name, Role, Hash string
	}
	mk := func(id, email, name, role, raw string) u {
		h, _ := bcrypt.GenerateFromPassword([]byte(raw), 12)
		return u{ID: id, Email: email, Name: name, Role: role, Hash: string(h)}
	}

	users := []u{
		mk("u-demo", "client@morefix.test", "Client Démo", "USER", "Passw0rd!"),
		mk("u-admin", adminEmail, "Admin", "ADMIN", "Passw0rd!"),
	}

	tx := db.MustBegin()
	defer func() { _ = tx.Rollback() }()

	for _, x := range users {
		if _, err := tx.Exec(`
			INSERT INTO users(id,email,name,password_hash,role)
			VALUES(?,?,?,?,?)
			ON CONFLICT(email) DO NOTHING
		`, x.ID, x.Email, x.Name, x.Hash, x.Role); err != nil {
			return err
		}
	}
	// The configured admin address always carries the ADMIN role, even
	// if the account was registered before the config change.
	if _, err := tx.Exec(`UPDATE users SET role='ADMIN' WHERE LOWER(email)=LOWER(?)`, adminEmail); err != nil {
		return err
	}

	return tx.Commit()
}
