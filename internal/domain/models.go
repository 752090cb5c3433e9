package domain

import "encoding/json"

// Catalog categories. CategoryAll is the sentinel that matches everything.
const (
	CategoryAll = "Tous"

	CategoryStorage     = "Stockage"
	CategoryComputers   = "Ordinateurs"
	CategoryAudio       = "Audio"
	CategorySmartphones = "Smartphones"
)

// Categories lists the selectable product categories, sentinel excluded.
var Categories = []string{CategoryStorage, CategoryComputers, CategoryAudio, CategorySmartphones}

const (
	ConditionNew  = "Neuf"
	ConditionUsed = "Occasion"
)

type Product struct {
	ID            string  `db:"id"`
	Title         string  `db:"title"`
	Description   string  `db:"description"`
	Category      string  `db:"category"`
	Condition     string  `db:"condition"` // Neuf | Occasion
	Price         float64 `db:"price"`
	OriginalPrice float64 `db:"original_price"` // 0 when not discounted
	ImagesJSON    string  `db:"images_json"`
	FeaturesJSON  string  `db:"features_json"`
	Rating        float64 `db:"rating"` // 0 when unrated
	Reviews       int     `db:"reviews"`
	InStock       bool    `db:"in_stock"`
	CreatedAt     string  `db:"created_at"`
}

// Images decodes the stored image list; never nil.
func (p Product) Images() []string {
	var out []string
	if p.ImagesJSON != "" {
		_ = json.Unmarshal([]byte(p.ImagesJSON), &out)
	}
	if out == nil {
		out = []string{}
	}
	return out
}

// Features decodes the stored feature list; never nil.
func (p Product) Features() []string {
	var out []string
	if p.FeaturesJSON != "" {
		_ = json.Unmarshal([]byte(p.FeaturesJSON), &out)
	}
	if out == nil {
		out = []string{}
	}
	return out
}

func ValidCategory(c string) bool {
	for _, k := range Categories {
		if c == k {
			return true
		}
	}
	return false
}
