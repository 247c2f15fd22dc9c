package utils

import (
	"fmt"
	"path"
	"strings"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

// AssetObjectKey builds a stable, collision-free object key for an uploaded
// gallery file from its human title and original filename.
func AssetObjectKey(title string, filename string) string {
	ext := strings.ToLower(path.Ext(filename))
	return fmt.Sprintf("%s-%s%s", slug.Make(title), uuid.NewString()[:8], ext)
}

func Ptr[T any](v T) *T {
	return &v
}
