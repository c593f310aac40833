package cafes

import (
	"path/filepath"
	"strings"
)

// SafeFilename derives a filename safe to write under the uploads
// directory from a client-supplied name: path components are stripped and
// anything outside a conservative character set becomes an underscore.
func SafeFilename(name string) string {
	// Clients may send either separator regardless of platform.
	name = strings.ReplaceAll(name, "\\", "/")
	name = filepath.Base(name)

	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' || r == '-' || r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	out := b.String()
	if out == "" || strings.Trim(out, "._") == "" {
		return ""
	}
	return out
}
