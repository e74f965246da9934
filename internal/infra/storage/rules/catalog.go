package rules

import (
	"context"
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/reservly/booking-engine/internal/domain"
)

// CatalogSource отдаёт разрешённый каталог правил тенанта:
// индустриальные дефолты с применёнными tenant-переопределениями.
// Правила read-mostly, поэтому результат кэшируется с TTL —
// изменение переопределений тенанта подхватывается после истечения кэша
type CatalogSource struct {
	repo  catalogRepository
	cache *gocache.Cache
}

type catalogRepository interface {
	GetIndustryDefaults(ctx context.Context, industry string) ([]domain.ConstraintRule, error)
	GetTenantOverrides(ctx context.Context, tenantID int64) ([]domain.TenantRuleOverride, error)
}

// NewCatalogSource создает источник каталогов с TTL-кэшем
func NewCatalogSource(repo catalogRepository, ttl time.Duration) *CatalogSource {
	return &CatalogSource{
		repo:  repo,
		cache: gocache.New(ttl, 2*ttl),
	}
}

// CatalogFor возвращает каталог правил для тенанта указанной индустрии
func (s *CatalogSource) CatalogFor(ctx context.Context, industry string, tenantID int64) (domain.RuleCatalog, error) {
	key := fmt.Sprintf("%s:%d", industry, tenantID)

	if cached, ok := s.cache.Get(key); ok {
		return cached.(domain.RuleCatalog), nil
	}

	defaults, err := s.repo.GetIndustryDefaults(ctx, industry)
	if err != nil {
		return domain.RuleCatalog{}, err
	}

	overrides, err := s.repo.GetTenantOverrides(ctx, tenantID)
	if err != nil {
		return domain.RuleCatalog{}, err
	}

	catalog := domain.ApplyOverrides(industry, tenantID, defaults, overrides)
	s.cache.SetDefault(key, catalog)

	return catalog, nil
}

// Invalidate сбрасывает кэш каталога тенанта
// Вызывается после изменения переопределений правил
func (s *CatalogSource) Invalidate(industry string, tenantID int64) {
	s.cache.Delete(fmt.Sprintf("%s:%d", industry, tenantID))
}
