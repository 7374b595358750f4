package services

import (
	"context"

	"go.uber.org/zap"

	"lounge/internal/models/catalog_models"
	"lounge/internal/models/response_models"
	"lounge/pkg/assets"
	mem "lounge/pkg/memcache"
	"lounge/pkg/utils"
)

type CatalogServiceInterface interface {
	ListDestinations(page int, pageSize int, ctx context.Context) ([]response_models.DestinationResponse, error)
	GetDestinationByID(id string, ctx context.Context) (*response_models.DestinationResponse, error)

	// Destination exposes the raw catalog record for other services.
	Destination(id string) (catalog_models.Destination, bool)

	// ResolvedImages returns the renderable asset names for a destination,
	// or nil when the id is unknown.
	ResolvedImages(id string) []string
}

type CatalogService struct {
	destinations []catalog_models.Destination
	byID         map[string]int
	exists       assets.ExistsFunc
	resolved     mem.ResolvedImageStore
	logger       *zap.Logger
}

// NewCatalogService loads the catalog once from source. The loaded value is
// held by the service and handed to consumers explicitly; there is no shared
// global catalog.
func NewCatalogService(
	source []byte,
	exists assets.ExistsFunc,
	resolved mem.ResolvedImageStore,
	logger *zap.Logger,
) CatalogServiceInterface {
	destinations, err := decodeCatalog(source)
	if err != nil {
		logger.Warn("falling back to seed catalog", zap.Error(err))
		destinations = SeedCatalog()
	}

	byID := make(map[string]int, len(destinations))
	for i, d := range destinations {
		byID[d.ID] = i
	}

	logger.Info("catalog loaded", zap.Int("destinations", len(destinations)))

	return &CatalogService{
		destinations: destinations,
		byID:         byID,
		exists:       exists,
		resolved:     resolved,
		logger:       logger,
	}
}

func (c *CatalogService) ListDestinations(page int, pageSize int, ctx context.Context) ([]response_models.DestinationResponse, error) {
	if page < 1 {
		return nil, utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > 100 {
		return nil, utils.ErrInvalidPageSize
	}

	offset := (page - 1) * pageSize
	if offset >= len(c.destinations) {
		return []response_models.DestinationResponse{}, nil
	}

	end := offset + pageSize
	if end > len(c.destinations) {
		end = len(c.destinations)
	}

	responses := make([]response_models.DestinationResponse, 0, end-offset)
	for _, d := range c.destinations[offset:end] {
		responses = append(responses, c.toResponse(d))
	}

	return responses, nil
}

func (c *CatalogService) GetDestinationByID(id string, ctx context.Context) (*response_models.DestinationResponse, error) {
	d, ok := c.Destination(id)
	if !ok {
		return nil, utils.ErrDestinationNotFound
	}

	response := c.toResponse(d)
	return &response, nil
}

func (c *CatalogService) Destination(id string) (catalog_models.Destination, bool) {
	i, ok := c.byID[id]
	if !ok {
		return catalog_models.Destination{}, false
	}
	return c.destinations[i], true
}

func (c *CatalogService) ResolvedImages(id string) []string {
	d, ok := c.Destination(id)
	if !ok {
		return nil
	}

	if cached, ok := c.resolved.Get(d.ID); ok {
		return cached
	}

	names := assets.Resolve(d.ImageNames, d.Title, d.ID, c.exists)
	c.resolved.Set(d.ID, names)
	return names
}

func (c *CatalogService) toResponse(d catalog_models.Destination) response_models.DestinationResponse {
	captions := make([]response_models.CaptionResponse, 0, len(d.Captions))
	for _, caption := range d.Captions {
		captions = append(captions, response_models.CaptionResponse{
			Start: caption.Start,
			End:   caption.End,
			Text:  caption.Text,
		})
	}

	return response_models.DestinationResponse{
		ID:            d.ID,
		Title:         d.Title,
		Region:        d.Region,
		Summary:       d.Summary,
		Facts:         d.Facts,
		Images:        c.ResolvedImages(d.ID),
		NarrationFile: d.NarrationFile,
		Captions:      captions,
		QuizCount:     len(d.Quiz),
		Theme:         utils.RegionTheme(d.Region),
	}
}
