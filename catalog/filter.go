package catalog

import (
	"strings"

	"github.com/darshan2121/PlantApp/types"
)

type Query struct {
	Search   string
	Category string
	Language types.Language
}

// Filter keeps plants whose active-language name or tag contains the search
// text, in the selected category. An empty category means All.
func Filter(plants []types.Plant, q Query) []types.Plant {
	search := strings.ToLower(q.Search)
	out := make([]types.Plant, 0, len(plants))
	for _, p := range plants {
		if !matchesCategory(p, q.Category) {
			continue
		}
		name := p.Name
		if q.Language == types.Gujarati {
			name = p.NameGujarati
		}
		if strings.Contains(strings.ToLower(name), search) || strings.Contains(strings.ToLower(p.Tag), search) {
			out = append(out, p)
		}
	}
	return out
}

func matchesCategory(p types.Plant, category string) bool {
	return category == "" || category == types.AllCategoryKey || p.Category == category
}
