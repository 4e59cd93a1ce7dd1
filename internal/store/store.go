// Package store is the persistence adapter: it reads and writes the catalog
// tree as a single pretty-printed JSON document.
package store

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/go-ports/cataloger/internal/catalog"
)

// DefaultRootName is the name given to the root container when a document has
// to be synthesized from nothing.
const DefaultRootName = "house"

// Load reads the catalog document at path. On a missing file or a decode
// failure it logs a diagnostic and returns an empty root instead of an error,
// so a broken or absent document never stops the session from starting.
// Missing objects/containers lists anywhere in the document decode to nil and
// behave as empty.
func Load(path string) *catalog.Container {
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			slog.Warn("store: read catalog", "path", path, "err", err)
		}
		return catalog.NewRoot(DefaultRootName)
	}

	var root catalog.Container
	if err := json.Unmarshal(data, &root); err != nil {
		slog.Warn("store: decode catalog", "path", path, "err", err)
		return catalog.NewRoot(DefaultRootName)
	}
	if root.Name == "" {
		root.Name = DefaultRootName
	}
	return &root
}

// Save rewrites the full catalog document at path. The caller decides what a
// failed save means; the in-memory tree is never rolled back.
func Save(root *catalog.Container, path string) error {
	data, err := json.MarshalIndent(root, "", "    ")
	if err != nil {
		return fmt.Errorf("store.Save: encode catalog: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o600); err != nil {
		return fmt.Errorf("store.Save: write catalog: %w", err)
	}
	return nil
}

// Starter returns the seed tree written by `cataloger init`: a house with a
// couple of empty rooms to make the first add less of a cold start.
func Starter() *catalog.Container {
	house := catalog.NewRoot(DefaultRootName)
	house.AddContainer("kitchen")
	house.AddContainer("garage")
	return house
}
