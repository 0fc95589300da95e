// Package content bundles the default study catalog so the binary works
// with no setup. An explicit catalog path in the config overrides it.
package content

import (
	_ "embed"

	"prepdeck/internal/catalog"
)

//go:embed catalog.yml
var defaultCatalog []byte

// Default returns the embedded study catalog.
func Default() (catalog.Catalog, error) {
	return catalog.Parse(defaultCatalog, "catalog.yml")
}

// DefaultYAML returns the raw embedded catalog, used by init scaffolding.
func DefaultYAML() []byte {
	return defaultCatalog
}
