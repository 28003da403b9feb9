package facetql

import (
	"fmt"

	"github.com/zeebo/xxh3"
)

// QueryKey returns a stable 128-bit hex key for a generated document.
// Structurally equal selections and catalogs compile to byte-identical
// text, so the key addresses an external request cache correctly.
func QueryKey(text string) string {
	sum := xxh3.Hash128([]byte(text))
	return fmt.Sprintf("%016x%016x", sum.Hi, sum.Lo)
}
