package services

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"lounge/internal/models/catalog_models"
)

// LoadCatalog decodes a destinations document into the catalog. It never
// fails: an absent source, a parse error, or a schema violation all yield the
// built-in seed catalog instead. The policy is all-or-nothing per document;
// there are no partial catalogs.
func LoadCatalog(source []byte) []catalog_models.Destination {
	destinations, err := decodeCatalog(source)
	if err != nil {
		return SeedCatalog()
	}
	return destinations
}

func decodeCatalog(source []byte) ([]catalog_models.Destination, error) {
	if len(source) == 0 {
		return nil, errors.New("catalog source is empty")
	}

	var doc struct {
		Destinations []catalog_models.Destination `json:"destinations"`
	}
	if err := json.Unmarshal(source, &doc); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if len(doc.Destinations) == 0 {
		return nil, errors.New("catalog has no destinations")
	}

	seen := make(map[string]struct{}, len(doc.Destinations))
	for i := range doc.Destinations {
		d := &doc.Destinations[i]
		if d.ID == "" || d.Title == "" {
			return nil, fmt.Errorf("destination %d is missing id or title", i)
		}
		if _, dup := seen[d.ID]; dup {
			return nil, fmt.Errorf("duplicate destination id %q", d.ID)
		}
		seen[d.ID] = struct{}{}

		if d.Facts == nil {
			d.Facts = []string{}
		}
		if d.ImageNames == nil {
			d.ImageNames = []string{}
		}
		if d.Quiz == nil {
			d.Quiz = []catalog_models.QuizQuestion{}
		}
		// Question identity is assigned locally; the source does not carry it.
		for j := range d.Quiz {
			d.Quiz[j].ID = uuid.New().String()
		}
	}

	return doc.Destinations, nil
}

// SeedCatalog is the fixed fallback shown when no valid catalog source is
// available, mirroring the bundled demo destinations.
func SeedCatalog() []catalog_models.Destination {
	return []catalog_models.Destination{
		{
			ID:            "paris",
			Title:         "Paris",
			Region:        "France",
			Summary:       "The City of Light — museums, cafés, and the Seine.",
			Facts:         []string{"Eiffel Tower", "Louvre Museum", "Seine River"},
			ImageNames:    []string{"Paris"},
			NarrationFile: "paris_narration.mp3",
			Quiz:          []catalog_models.QuizQuestion{},
		},
		{
			ID:            "kyoto",
			Title:         "Kyoto",
			Region:        "Japan",
			Summary:       "Historic temples, tea houses, and seasonal gardens.",
			Facts:         []string{"Fushimi Inari Shrine", "Arashiyama Bamboo Grove", "Gion District"},
			ImageNames:    []string{"Kyoto"},
			NarrationFile: "kyoto_narration.mp3",
			Quiz:          []catalog_models.QuizQuestion{},
		},
		{
			ID:            "santorini",
			Title:         "Santorini",
			Region:        "Greece",
			Summary:       "Caldera views and whitewashed villages overlooking the Aegean.",
			Facts:         []string{"Oia sunsets", "Volcanic beaches", "Blue-domed churches"},
			ImageNames:    []string{"Santorini"},
			NarrationFile: "santorini_narration.mp3",
			Quiz:          []catalog_models.QuizQuestion{},
		},
		{
			ID:            "newyork",
			Title:         "New York City",
			Region:        "USA",
			Summary:       "Skyscrapers, theatre, and diverse neighborhoods.",
			Facts:         []string{"Times Square", "Central Park", "Statue of Liberty"},
			ImageNames:    []string{"NewYork"},
			NarrationFile: "nyc_narration.mp3",
			Quiz:          []catalog_models.QuizQuestion{},
		},
	}
}
