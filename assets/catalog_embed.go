// Where: cli/assets/catalog_embed.go
// What: Embed the bundled template catalog and its schema.
// Why: The CLI must scaffold functions without a network catalog fetch.
package assets

import "embed"

//go:embed catalog/*.yaml
var CatalogFS embed.FS

// CatalogDir is the directory inside CatalogFS holding catalog files.
const CatalogDir = "catalog"

//go:embed catalog.schema.json
var CatalogSchema []byte
