package catalog

import (
	"strings"

	"github.com/darshan2121/PlantApp/types"
)

// FallbackImage stands in for the bundled placeholder asset.
const FallbackImage = "assets/images/plant-placeholder.png"

type ImageResolver struct {
	BaseURL  string
	Fallback string
}

// Resolve prefers an absolute URL, then a relative upload path joined to
// BaseURL, then the fallback. Image wins over the first of Images.
func (r ImageResolver) Resolve(p types.Plant) string {
	src := strings.TrimSpace(p.Image)
	if src == "" && len(p.Images) > 0 {
		src = strings.TrimSpace(p.Images[0])
	}
	fallback := r.Fallback
	if fallback == "" {
		fallback = FallbackImage
	}

	switch {
	case src == "":
		return fallback
	case strings.HasPrefix(src, "http://"), strings.HasPrefix(src, "https://"):
		return src
	case r.BaseURL == "":
		return fallback
	}
	rel := strings.TrimPrefix(src, "/")
	rel = strings.TrimPrefix(rel, "uploads/")
	return strings.TrimRight(r.BaseURL, "/") + "/" + rel
}
