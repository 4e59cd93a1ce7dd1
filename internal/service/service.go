// Package service implements the catalog session: it wires together
// configuration, the persisted document, and the tree operations, and re-saves
// the full document after every mutation.
package service

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/yalp/jsonpath"

	"github.com/go-ports/cataloger/internal/catalog"
	"github.com/go-ports/cataloger/internal/config"
	"github.com/go-ports/cataloger/internal/render"
	"github.com/go-ports/cataloger/internal/store"
)

// Service holds one catalog session: the loaded tree, the document path it
// came from, and the per-catalog configuration. It is the single writer; no
// locking is needed or provided.
type Service struct {
	CatalogHome string
	CatalogPath string
	Config      *config.CatalogConfig

	root *catalog.Container
}

// New initialises a Service rooted at catalogHome.
// If catalogHome is empty it is resolved via config.GetCatalogHome.
// A missing or unreadable document yields an empty tree, never an error.
func New(catalogHome string) (*Service, error) {
	if catalogHome == "" {
		catalogHome = config.GetCatalogHome()
	}

	if err := os.MkdirAll(catalogHome, 0o755); err != nil {
		return nil, fmt.Errorf("service.New: create catalog home: %w", err)
	}

	cfg, err := config.Load(filepath.Join(catalogHome, "config.yaml"))
	if err != nil {
		return nil, fmt.Errorf("service.New: load config: %w", err)
	}

	s := &Service{
		CatalogHome: catalogHome,
		CatalogPath: filepath.Join(catalogHome, "catalog.json"),
		Config:      cfg,
	}

	if _, err := os.Stat(s.CatalogPath); os.IsNotExist(err) {
		s.root = catalog.NewRoot(cfg.Root.Name)
	} else {
		s.root = store.Load(s.CatalogPath)
	}
	return s, nil
}

// Root exposes the live tree for read-only traversal (rendering, MCP).
func (s *Service) Root() *catalog.Container { return s.root }

// Count returns the total number of objects in the catalog.
func (s *Service) Count() int { return catalog.Count(s.root) }

// Location formats a child-to-root search path for display: reversed to
// root-to-leaf order and joined with the configured separator.
func (s *Service) Location(path []string) string {
	parts := make([]string, len(path))
	for i, name := range path {
		parts[len(path)-1-i] = name
	}
	return strings.Join(parts, s.Config.Display.Separator)
}

// save rewrites the whole document. A failure is logged and returned, but the
// in-memory tree keeps the mutation; memory and disk diverge until a save
// succeeds.
func (s *Service) save() error {
	if err := store.Save(s.root, s.CatalogPath); err != nil {
		slog.Warn("service: save catalog", "path", s.CatalogPath, "err", err)
		return err
	}
	return nil
}

// ---------------------------------------------------------------------------
// Queries
// ---------------------------------------------------------------------------

// Found describes a located object together with its display location.
type Found struct {
	Name     string
	Category string
	Location string
}

// Search locates the first object named name. The name must already be
// normalized by the caller.
func (s *Service) Search(name string) (*Found, bool) {
	obj, path, ok := catalog.FindObjectWithPath(s.root, name)
	if !ok {
		return nil, false
	}
	return &Found{
		Name:     obj.Name,
		Category: obj.Category,
		Location: s.Location(path),
	}, true
}

// ListAll returns one row per object in traversal order.
func (s *Service) ListAll() []render.Row {
	return s.listFrom(s.root)
}

// ListContainer returns the rows of the subtree rooted at the first container
// named containerName; locations are relative to that container.
func (s *Service) ListContainer(containerName string) ([]render.Row, bool) {
	sub, ok := catalog.FindContainer(s.root, containerName)
	if !ok {
		return nil, false
	}
	return s.listFrom(sub), true
}

func (s *Service) listFrom(node *catalog.Container) []render.Row {
	rows := make([]render.Row, 0)
	catalog.Walk(node, func(obj *catalog.Object, path []string) {
		rows = append(rows, render.Row{
			Name:     obj.Name,
			Category: obj.Category,
			Location: strings.Join(path, s.Config.Display.Separator),
		})
	})
	return rows
}

// QueryDocument evaluates a JSONPath expression against the live tree in its
// document form.
func (s *Service) QueryDocument(path string) (any, error) {
	data, err := json.Marshal(s.root)
	if err != nil {
		return nil, fmt.Errorf("QueryDocument: encode catalog: %w", err)
	}
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("QueryDocument: decode catalog: %w", err)
	}
	out, err := jsonpath.Read(doc, path)
	if err != nil {
		return nil, fmt.Errorf("QueryDocument: %w", err)
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Mutations
//
// Every mutation that changes the tree triggers a full re-save. The returned
// error is the save error only; "not found" is the boolean.
// ---------------------------------------------------------------------------

// Add appends an object to the first container named containerName.
func (s *Service) Add(containerName string, obj *catalog.Object) (bool, error) {
	target, ok := catalog.FindContainer(s.root, containerName)
	if !ok {
		return false, nil
	}
	target.AddObject(obj)
	return true, s.save()
}

// AddToNewContainer creates an empty container under the first container
// named parentName and places the object inside it.
func (s *Service) AddToNewContainer(parentName, newContainerName string, obj *catalog.Object) (bool, error) {
	parent, ok := catalog.FindContainer(s.root, parentName)
	if !ok {
		return false, nil
	}
	parent.AddContainer(newContainerName).AddObject(obj)
	return true, s.save()
}

// Modify renames and/or recategorizes the first object named name; blank
// fields leave the corresponding attribute unchanged.
func (s *Service) Modify(name, newName, newCategory string) (bool, error) {
	if !catalog.ModifyObject(s.root, name, newName, newCategory) {
		return false, nil
	}
	return true, s.save()
}

// Delete removes the first object named name.
func (s *Service) Delete(name string) (bool, error) {
	if !catalog.DeleteObject(s.root, name) {
		return false, nil
	}
	return true, s.save()
}
