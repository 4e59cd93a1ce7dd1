// Package shared holds the context passed to all CLI commands.
package shared

// Context carries global CLI state (flags set on the root command).
type Context struct {
	// CatalogHome overrides the catalog home directory.
	// When empty, resolution falls through to CATALOG_HOME env var → persisted config → ~/.cataloger.
	CatalogHome string
}
