package services

import (
	"morefix/internal/catalog"
	"morefix/internal/domain"
	"morefix/internal/repos"
)

type CatalogService struct {
	Prods *repos.ProductRepo
}

func NewCatalogService(prods *repos.ProductRepo) *CatalogService {
	return &CatalogService{Prods: prods}
}

// Browse loads the catalog and applies the filter/sort engine. The
// engine itself is pure; every request recomputes from the stored
// collection.
func (s *CatalogService) Browse(q catalog.Query) ([]domain.Product, error) {
	all, err := s.Prods.ListAll()
	if err != nil {
		return nil, err
	}
	return catalog.Apply(all, q), nil
}

func (s *CatalogService) GetProduct(id string) (domain.Product, error) {
	return s.Prods.Get(id)
}
