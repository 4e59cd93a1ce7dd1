// Package config handles configuration loading and catalog home resolution.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ---------------------------------------------------------------------------
// Config types
// ---------------------------------------------------------------------------

// DisplayConfig controls how catalog listings are presented.
type DisplayConfig struct {
	Format    string `yaml:"format"`    // "table" | "json" | "md"
	Separator string `yaml:"separator"` // joins location path segments
}

// RootConfig controls how an empty catalog is bootstrapped.
type RootConfig struct {
	Name string `yaml:"name"` // name of the root container
}

// CatalogConfig is the root per-catalog configuration.
type CatalogConfig struct {
	Display DisplayConfig `yaml:"display"`
	Root    RootConfig    `yaml:"root"`
}

// Default returns a CatalogConfig populated with sensible defaults.
func Default() *CatalogConfig {
	return &CatalogConfig{
		Display: DisplayConfig{
			Format:    "table",
			Separator: " > ",
		},
		Root: RootConfig{
			Name: "house",
		},
	}
}

// Load reads a per-catalog config.yaml from path.
// If the file does not exist it returns Default() with no error.
// Missing keys retain their default values.
func Load(path string) (*CatalogConfig, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, err
	}

	// Unmarshal into a plain map so we can apply only the keys that are present.
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	if disp, ok := raw["display"].(map[string]any); ok {
		if v, ok := disp["format"].(string); ok && v != "" {
			cfg.Display.Format = v
		}
		if v, ok := disp["separator"].(string); ok && v != "" {
			cfg.Display.Separator = v
		}
	}

	if root, ok := raw["root"].(map[string]any); ok {
		if v, ok := root["name"].(string); ok && v != "" {
			cfg.Root.Name = v
		}
	}

	return cfg, nil
}

// ---------------------------------------------------------------------------
// Catalog home resolution
// ---------------------------------------------------------------------------

// globalConfigPath returns the path to the global cataloger config file.
// This file stores only catalog_home (and future global settings).
func globalConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "cataloger", "config.yaml"), nil
}

// normalizePath expands ~ and makes the path absolute.
func normalizePath(path string) (string, error) {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		path = filepath.Join(home, path[2:])
	}
	return filepath.Abs(os.ExpandEnv(path))
}

// ResolveCatalogHome returns the catalog home path and the source of the
// resolution. Priority: CATALOG_HOME env → persisted global config → ~/.cataloger
// source is one of "env", "config", or "default".
func ResolveCatalogHome() (path, source string) {
	if env := os.Getenv("CATALOG_HOME"); env != "" {
		p, err := normalizePath(env)
		if err == nil {
			return p, "env"
		}
	}

	if persisted, ok, _ := GetPersistedCatalogHome(); ok {
		return persisted, "config"
	}

	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".cataloger"), "default"
}

// GetCatalogHome returns the resolved catalog home path.
func GetCatalogHome() string {
	path, _ := ResolveCatalogHome()
	return path
}

// GetPersistedCatalogHome reads catalog_home from the global config.
// Returns ("", false, nil) if not set.
func GetPersistedCatalogHome() (string, bool, error) {
	cfgPath, err := globalConfigPath()
	if err != nil {
		return "", false, err
	}

	data, err := os.ReadFile(cfgPath)
	if os.IsNotExist(err) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return "", false, nil
	}

	val, _ := raw["catalog_home"].(string)
	val = strings.TrimSpace(val)
	if val == "" {
		return "", false, nil
	}

	p, err := normalizePath(val)
	if err != nil {
		return "", false, err
	}
	return p, true, nil
}

// SetPersistedCatalogHome normalizes path and persists it in the global config.
// Returns the normalized path.
func SetPersistedCatalogHome(path string) (string, error) {
	normalized, err := normalizePath(path)
	if err != nil {
		return "", err
	}

	cfgPath, err := globalConfigPath()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(cfgPath), 0o755); err != nil {
		return "", err
	}

	// Read existing global config, preserving any other keys.
	var raw map[string]any
	if data, err := os.ReadFile(cfgPath); err == nil {
		_ = yaml.Unmarshal(data, &raw)
	}
	if raw == nil {
		raw = make(map[string]any)
	}
	raw["catalog_home"] = normalized

	out, err := yaml.Marshal(raw)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(cfgPath, out, 0o600); err != nil {
		return "", err
	}
	return normalized, nil
}

// ClearPersistedCatalogHome removes catalog_home from the global config.
// Returns true if the key was present and removed.
// If the file becomes empty after removal it is deleted.
func ClearPersistedCatalogHome() (bool, error) {
	cfgPath, err := globalConfigPath()
	if err != nil {
		return false, err
	}

	data, err := os.ReadFile(cfgPath)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return false, nil
	}

	if _, ok := raw["catalog_home"]; !ok {
		return false, nil
	}
	delete(raw, "catalog_home")

	if len(raw) == 0 {
		_ = os.Remove(cfgPath)
		return true, nil
	}

	out, err := yaml.Marshal(raw)
	if err != nil {
		return false, err
	}
	return true, os.WriteFile(cfgPath, out, 0o600)
}
