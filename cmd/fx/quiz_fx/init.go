package quiz_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"lounge/internal/repositories"
	"lounge/internal/services"
	mem "lounge/pkg/memcache"
)

var Module = fx.Provide(
	NewQuizService, NewQuizResultRepo, NewSessionStore)

func NewQuizService(
	catalog services.CatalogServiceInterface,
	sessions mem.SessionStore,
	resultRepo repositories.QuizResultRepositoryInterface,
	log *zap.Logger,
) services.QuizServiceInterface {
	return services.NewQuizService(catalog, sessions, resultRepo, log)
}

func NewQuizResultRepo(db *gorm.DB) repositories.QuizResultRepositoryInterface {
	return repositories.NewQuizResultRepository(db)
}

func NewSessionStore() mem.SessionStore {
	return mem.NewSessions()
}
