package services

import (
	"time"

	"github.com/ibomiri431-oss/metra-feer/app/models"
	"github.com/ibomiri431-oss/metra-feer/app/repositories"
	"github.com/ibomiri431-oss/metra-feer/pkg/cache"
	"github.com/ibomiri431-oss/metra-feer/pkg/logger"
	"github.com/ibomiri431-oss/metra-feer/pkg/metrics"
)

const (
	productsCacheKey = "products:all"
	productsCacheTTL = 5 * time.Minute
)

// CatalogService handles product listing and admin CRUD. The unfiltered
// list is cached in Redis when available; filtered queries always hit the
// database so search semantics stay exact.
type CatalogService struct {
	products *repositories.ProductRepository
}

func NewCatalogService(products *repositories.ProductRepository) *CatalogService {
	return &CatalogService{products: products}
}

// List returns products, optionally filtered by a case-sensitive name
// substring and a category. Category "Tümü" means all categories.
func (s *CatalogService) List(search, category string) ([]models.Product, error) {
	filtered := search != "" || (category != "" && category != repositories.CategoryAll)
	if !filtered {
		var cached []models.Product
		if cache.Get(productsCacheKey, &cached) {
			metrics.CacheHits.Inc()
			if cached == nil {
				cached = make([]models.Product, 0)
			}
			return cached, nil
		}
		metrics.CacheMisses.Inc()
	}

	products, err := s.products.List(search, category)
	if err != nil {
		return nil, err
	}

	if !filtered {
		if err := cache.Set(productsCacheKey, products, productsCacheTTL); err != nil {
			logger.Warn("catalog: cache set failed", "error", err)
		}
	}
	return products, nil
}

// Create inserts a product and invalidates the list cache.
func (s *CatalogService) Create(product *models.Product) error {
	if err := s.products.Create(product); err != nil {
		return err
	}
	s.invalidate()
	return nil
}

// Update overwrites a product and invalidates the list cache.
func (s *CatalogService) Update(product *models.Product) error {
	if err := s.products.Update(product); err != nil {
		return err
	}
	s.invalidate()
	return nil
}

// Delete removes a product and invalidates the list cache.
func (s *CatalogService) Delete(id int) error {
	if err := s.products.Delete(id); err != nil {
		return err
	}
	s.invalidate()
	return nil
}

func (s *CatalogService) invalidate() {
	if err := cache.Del(productsCacheKey); err != nil {
		logger.Warn("catalog: cache invalidation failed", "error", err)
	}
}
