package services

import (
	"encoding/json"
	"errors"

	"morefix/internal/domain"
	"morefix/internal/repos"

	"github.com/google/uuid"
)

var (
	ErrMissingFields   = errors.New("title, price, description, category and at least one image are required")
	ErrUnknownCategory = errors.New("unknown category")
	ErrNoSuchProduct   = errors.New("no such product")
)

// ProductAdminService performs the admin-only catalog mutations. Authz
// is enforced at the HTTP layer; validation happens here, before
// anything reaches the store.
type ProductAdminService struct {
	Prods *repos.ProductRepo
}

func NewProductAdminService(p *repos.ProductRepo) *ProductAdminService {
	return &ProductAdminService{Prods: p}
}

type NewProduct struct {
	Title         string
	Description   string
	Category      string
	Condition     string
	Price         float64
	OriginalPrice float64
	Images        []string
	Features      []string
}

// Create validates and inserts a product. New products start rated 4.5
// with zero reviews and in stock, matching the storefront defaults.
func (s *ProductAdminService) Create(in NewProduct) (domain.Product, error) {
	if in.Title == "" || in.Description == "" || in.Category == "" || len(in.Images) == 0 || in.Price < 0 {
		return domain.Product{}, ErrMissingFields
	}
	if !domain.ValidCategory(in.Category) {
		return domain.Product{}, ErrUnknownCategory
	}
	if in.Condition != domain.ConditionNew && in.Condition != domain.ConditionUsed {
		in.Condition = domain.ConditionNew
	}

	images, _ := json.Marshal(in.Images)
	features, _ := json.Marshal(in.Features)
	if in.Features == nil {
		features = []byte("[]")
	}

	p := domain.Product{
		ID:            uuid.NewString(),
		Title:         in.Title,
		Description:   in.Description,
		Category:      in.Category,
		Condition:     in.Condition,
		Price:         in.Price,
		OriginalPrice: in.OriginalPrice,
		ImagesJSON:    string(images),
		FeaturesJSON:  string(features),
		Rating:        4.5,
		Reviews:       0,
		InStock:       true,
	}
	if err := s.Prods.Insert(p); err != nil {
		return domain.Product{}, err
	}
	return p, nil
}

// Delete removes a product. Deleting an id that does not exist is a
// no-op reported as a failure.
func (s *ProductAdminService) Delete(id string) error {
	ok, err := s.Prods.Delete(id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNoSuchProduct
	}
	return nil
}
