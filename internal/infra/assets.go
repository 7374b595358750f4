package infra

import (
	"log"
	"os"

	"lounge/pkg/assets"
)

// AssetIndex is the image-lookup capability behind assets.ExistsFunc. It
// indexes the bundled image directory once at startup; both the file name and
// its extension-stripped stem are addressable, matching how asset catalogs
// look images up by stem.
type AssetIndex struct {
	names map[string]struct{}
}

func NewAssetIndex(dir string) *AssetIndex {
	index := &AssetIndex{names: make(map[string]struct{})}

	entries, err := os.ReadDir(dir)
	if err != nil {
		log.Printf("Asset directory %q not readable: %v", dir, err)
		return index
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		index.names[entry.Name()] = struct{}{}
		index.names[assets.StripExtension(entry.Name())] = struct{}{}
	}
	return index
}

func (a *AssetIndex) Exists(name string) bool {
	_, ok := a.names[name]
	return ok
}
