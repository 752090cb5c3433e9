package services_test

import (
	"reflect"
	"testing"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // pure-Go SQLite driver

	"morefix/internal/repos"
	"morefix/internal/services"
)

func memdb(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := sqlx.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatal(err)
	}
	schema := `
	CREATE TABLE wishlist_items(
	  user_id TEXT NOT NULL,
	  product_id TEXT NOT NULL,
	  position INTEGER NOT NULL,
	  created_at TEXT,
	  PRIMARY KEY(user_id, product_id)
	);
	CREATE TABLE products(
	  id TEXT PRIMARY KEY, title TEXT, description TEXT, category TEXT,
	  condition TEXT, price NUMERIC, original_price NUMERIC,
	  images_json TEXT, features_json TEXT, rating NUMERIC, reviews INTEGER,
	  in_stock INTEGER, created_at TEXT
	);
	INSERT INTO products(id,title,description,category,condition,price,original_price,images_json,features_json,rating,reviews,in_stock,created_at) VALUES
	  ('p1','SSD','d','Stockage','Neuf',100,0,'[]','[]',4.5,3,1,'2024-01-01'),
	  ('p2','PC','d','Ordinateurs','Occasion',50,0,'[]','[]',0,0,1,'2024-01-02');
	`
	if _, err := db.Exec(schema); err != nil {
		t.Fatal(err)
	}
	return db
}

func TestToggleIsInvolution(t *testing.T) {
	svc := services.NewWishlistService(repos.NewWishlistRepo(memdb(t)))

	added, err := svc.Toggle("u1", "p1")
	if err != nil || !added {
		t.Fatalf("first toggle: want added=true, got %v err=%v", added, err)
	}
	added, err = svc.Toggle("u1", "p1")
	if err != nil || added {
		t.Fatalf("second toggle: want added=false, got %v err=%v", added, err)
	}

	ids, err := svc.IDs("u1")
	if err != nil {
		t.Fatal(err)
	}
	if len(ids) != 0 {
		t.Fatalf("double toggle must restore the empty set, got %v", ids)
	}
}

func TestToggleKeepsInsertionOrder(t *testing.T) {
	svc := services.NewWishlistService(repos.NewWishlistRepo(memdb(t)))

	if _, err := svc.Toggle("u1", "p2"); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Toggle("u1", "p1"); err != nil {
		t.Fatal(err)
	}

	ids, err := svc.IDs("u1")
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(ids, []string{"p2", "p1"}) {
		t.Fatalf("want insertion order [p2 p1], got %v", ids)
	}

	// removing the first keeps the rest in place
	if _, err := svc.Toggle("u1", "p2"); err != nil {
		t.Fatal(err)
	}
	ids, _ = svc.IDs("u1")
	if !reflect.DeepEqual(ids, []string{"p1"}) {
		t.Fatalf("want [p1], got %v", ids)
	}
}

func TestWishlistsAreScopedPerUser(t *testing.T) {
	svc := services.NewWishlistService(repos.NewWishlistRepo(memdb(t)))

	if _, err := svc.Toggle("u1", "p1"); err != nil {
		t.Fatal(err)
	}
	ids, err := svc.IDs("u2")
	if err != nil {
		t.Fatal(err)
	}
	if len(ids) != 0 {
		t.Fatalf("u2 must have an empty set, got %v", ids)
	}
}

func TestListDetailedJoinsCatalog(t *testing.T) {
	svc := services.NewWishlistService(repos.NewWishlistRepo(memdb(t)))

	if _, err := svc.Toggle("u1", "p1"); err != nil {
		t.Fatal(err)
	}
	rows, err := svc.List("u1")
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1 || rows[0].Title != "SSD" || rows[0].Price != 100 {
		t.Fatalf("bad detailed row: %+v", rows)
	}
}
