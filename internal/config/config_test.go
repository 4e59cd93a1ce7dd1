package config_test

import (
	"os"
	"path/filepath"
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/go-ports/cataloger/internal/config"
)

func TestDefault_HappyPath(t *testing.T) {
	c := qt.New(t)
	cfg := config.Default()
	c.Assert(cfg, qt.IsNotNil)
	c.Assert(cfg.Display.Format, qt.Equals, "table")
	c.Assert(cfg.Display.Separator, qt.Equals, " > ")
	c.Assert(cfg.Root.Name, qt.Equals, "house")
}

func TestLoad_HappyPath(t *testing.T) {
	c := qt.New(t)

	c.Run("non-existent file returns defaults without error", func(c *qt.C) {
		cfg, err := config.Load("/nonexistent/config.yaml")
		c.Assert(err, qt.IsNil)
		c.Assert(cfg, qt.IsNotNil)
		c.Assert(cfg.Display.Format, qt.Equals, "table")
		c.Assert(cfg.Root.Name, qt.Equals, "house")
	})

	tests := []struct {
		name          string
		yaml          string
		wantFormat    string
		wantSeparator string
		wantRootName  string
	}{
		{
			name:          "full display section overrides all fields",
			yaml:          "display:\n  format: json\n  separator: \" / \"\n",
			wantFormat:    "json",
			wantSeparator: " / ",
			wantRootName:  "house",
		},
		{
			name:          "markdown format",
			yaml:          "display:\n  format: md\n",
			wantFormat:    "md",
			wantSeparator: " > ",
			wantRootName:  "house",
		},
		{
			name:          "custom root name",
			yaml:          "root:\n  name: apartment\n",
			wantFormat:    "table",
			wantSeparator: " > ",
			wantRootName:  "apartment",
		},
	}

	for _, tt := range tests {
		c.Run(tt.name, func(c *qt.C) {
			tmp := t.TempDir()
			path := filepath.Join(tmp, "config.yaml")
			err := os.WriteFile(path, []byte(tt.yaml), 0o600)
			c.Assert(err, qt.IsNil)

			cfg, err := config.Load(path)
			c.Assert(err, qt.IsNil)
			c.Assert(cfg.Display.Format, qt.Equals, tt.wantFormat)
			c.Assert(cfg.Display.Separator, qt.Equals, tt.wantSeparator)
			c.Assert(cfg.Root.Name, qt.Equals, tt.wantRootName)
		})
	}
}

func TestLoad_PartialOverrideRetainsDefaults(t *testing.T) {
	c := qt.New(t)

	tmp := t.TempDir()
	path := filepath.Join(tmp, "config.yaml")
	err := os.WriteFile(path, []byte("display:\n  format: md\n"), 0o600)
	c.Assert(err, qt.IsNil)

	cfg, err := config.Load(path)
	c.Assert(err, qt.IsNil)
	// Overridden field.
	c.Assert(cfg.Display.Format, qt.Equals, "md")
	// Defaults retained for unspecified fields.
	c.Assert(cfg.Display.Separator, qt.Equals, " > ")
	c.Assert(cfg.Root.Name, qt.Equals, "house")
}

func TestLoad_EmptyFormatRetainsDefault(t *testing.T) {
	c := qt.New(t)

	// Load only overrides format when the value is non-empty.
	tmp := t.TempDir()
	path := filepath.Join(tmp, "config.yaml")
	err := os.WriteFile(path, []byte("display:\n  format: \"\"\n"), 0o600)
	c.Assert(err, qt.IsNil)

	cfg, err := config.Load(path)
	c.Assert(err, qt.IsNil)
	c.Assert(cfg.Display.Format, qt.Equals, "table")
}

func TestLoad_MalformedYAMLReturnsError(t *testing.T) {
	c := qt.New(t)

	tmp := t.TempDir()
	path := filepath.Join(tmp, "config.yaml")
	err := os.WriteFile(path, []byte(":\n  - not yaml"), 0o600)
	c.Assert(err, qt.IsNil)

	_, err = config.Load(path)
	c.Assert(err, qt.IsNotNil)
}

func TestResolveCatalogHome_EnvOverride(t *testing.T) {
	c := qt.New(t)

	tmp := t.TempDir()
	t.Setenv("CATALOG_HOME", tmp)

	path, source := config.ResolveCatalogHome()
	c.Assert(source, qt.Equals, "env")
	c.Assert(path, qt.Equals, tmp)
}

func TestResolveCatalogHome_DefaultFallsBackToHomeDir(t *testing.T) {
	c := qt.New(t)

	t.Setenv("CATALOG_HOME", "")
	// Point the user home at a temp dir so no persisted config is found.
	t.Setenv("HOME", t.TempDir())

	path, source := config.ResolveCatalogHome()
	c.Assert(source, qt.Equals, "default")
	c.Assert(filepath.Base(path), qt.Equals, ".cataloger")
}

func TestPersistedCatalogHome_SetGetClear(t *testing.T) {
	c := qt.New(t)

	t.Setenv("HOME", t.TempDir())
	t.Setenv("CATALOG_HOME", "")

	_, ok, err := config.GetPersistedCatalogHome()
	c.Assert(err, qt.IsNil)
	c.Assert(ok, qt.IsFalse)

	target := t.TempDir()
	normalized, err := config.SetPersistedCatalogHome(target)
	c.Assert(err, qt.IsNil)
	c.Assert(normalized, qt.Equals, target)

	got, ok, err := config.GetPersistedCatalogHome()
	c.Assert(err, qt.IsNil)
	c.Assert(ok, qt.IsTrue)
	c.Assert(got, qt.Equals, target)

	path, source := config.ResolveCatalogHome()
	c.Assert(source, qt.Equals, "config")
	c.Assert(path, qt.Equals, target)

	removed, err := config.ClearPersistedCatalogHome()
	c.Assert(err, qt.IsNil)
	c.Assert(removed, qt.IsTrue)

	_, ok, err = config.GetPersistedCatalogHome()
	c.Assert(err, qt.IsNil)
	c.Assert(ok, qt.IsFalse)
}
