// Package storage uploads listing images to an object store.
package storage

import (
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

const defaultNameStem = "image"

// objectKey builds "<folder>/<slug(nameHint)>-<uuid><ext>".
func objectKey(folder, nameHint, fileName string) string {
	stem := slug.Make(nameHint)
	if stem == "" {
		stem = defaultNameStem
	}

	name := stem + "-" + uuid.NewString() + strings.ToLower(filepath.Ext(fileName))
	folder = strings.Trim(folder, "/")
	if folder == "" {
		return name
	}

	return path.Join(folder, name)
}

// joinURL appends key to base with exactly one slash between them.
func joinURL(base, key string) string {
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(key, "/")
}

// keyFromURL strips base from url. It fails for URLs outside base.
func keyFromURL(base, url string) (string, bool) {
	prefix := strings.TrimRight(base, "/") + "/"
	if base == "" || !strings.HasPrefix(url, prefix) {
		return "", false
	}

	key := strings.TrimPrefix(url, prefix)
	if key == "" {
		return "", false
	}

	return key, true
}
