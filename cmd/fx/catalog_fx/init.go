package catalog_fx

import (
	"os"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"lounge/internal/config"
	"lounge/internal/infra"
	"lounge/internal/services"
	mem "lounge/pkg/memcache"
)

var Module = fx.Provide(
	provideCatalogService)

func provideCatalogService(cfg *config.Config, log *zap.Logger) services.CatalogServiceInterface {
	source, err := os.ReadFile(cfg.CatalogPath)
	if err != nil {
		// Missing source is expected in dev setups; the service seeds itself.
		log.Warn("catalog source not readable",
			zap.String("path", cfg.CatalogPath),
			zap.Error(err))
		source = nil
	}

	index := infra.NewAssetIndex(cfg.AssetDir)
	return services.NewCatalogService(source, index.Exists, mem.NewResolvedImages(), log)
}
