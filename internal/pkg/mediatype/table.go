// Package mediatype maps declared content types to file extensions and back.
// The mapping is explicit configuration rather than the host MIME registry.
package mediatype

import (
	"path"
	"strings"
)

// OctetStream is reported for extensions missing from the table.
const OctetStream = "application/octet-stream"

// aliases are extra extensions recognised when serving files.
var aliases = map[string]string{
	".jpeg": "image/jpeg",
	".jpe":  "image/jpeg",
	".tif":  "image/tiff",
}

// DefaultExtensions is the content type to extension table used when
// configuration supplies none.
func DefaultExtensions() map[string]string {
	return map[string]string{
		"image/jpeg": ".jpg",
		"image/png":  ".png",
		"image/gif":  ".gif",
		"image/webp": ".webp",
		"image/heic": ".heic",
		"image/heif": ".heif",
		"image/bmp":  ".bmp",
		"image/tiff": ".tiff",
	}
}

// Table is an immutable bidirectional content type / extension lookup.
type Table struct {
	extByType map[string]string
	typeByExt map[string]string
}

// NewTable builds a table from a content type to extension mapping.
// Extensions are normalised to lowercase with a leading dot.
func NewTable(extByType map[string]string) *Table {
	t := &Table{
		extByType: make(map[string]string, len(extByType)),
		typeByExt: make(map[string]string, len(extByType)+len(aliases)),
	}
	for ct, ext := range extByType {
		ct = normalizeType(ct)
		ext = normalizeExt(ext)
		if ct == "" || ext == "" {
			continue
		}
		t.extByType[ct] = ext
		t.typeByExt[ext] = ct
	}
	for ext, ct := range aliases {
		if _, ok := t.typeByExt[ext]; !ok {
			t.typeByExt[ext] = ct
		}
	}
	return t
}

// ExtensionFor returns the extension registered for contentType, or "".
func (t *Table) ExtensionFor(contentType string) string {
	return t.extByType[normalizeType(contentType)]
}

// TypeFor guesses the content type of a file name from its extension.
func (t *Table) TypeFor(name string) string {
	if ct, ok := t.typeByExt[strings.ToLower(path.Ext(name))]; ok {
		return ct
	}
	return OctetStream
}

func normalizeType(ct string) string {
	if i := strings.IndexByte(ct, ';'); i >= 0 {
		ct = ct[:i]
	}
	return strings.ToLower(strings.TrimSpace(ct))
}

func normalizeExt(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext == "" {
		return ""
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}
