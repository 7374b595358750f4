package config_fx

import (
	"go.uber.org/fx"

	"lounge/internal/config"
	"lounge/internal/logger"
)

var Module = fx.Provide(
	config.Load,
	logger.New,
)
