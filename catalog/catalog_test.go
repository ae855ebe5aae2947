package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/darshan2121/PlantApp/types"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	items      []types.Plant
	categories []types.APICategory
	err        error
}

func (f *fakeSource) Items(context.Context) ([]types.Plant, error) { return f.items, f.err }
func (f *fakeSource) Categories(context.Context) ([]types.APICategory, error) {
	return f.categories, f.err
}

var plants = []types.Plant{
	{ID: "1", Name: "Tulsi", NameGujarati: "તુલસી", Category: "Medicinal", Tag: "Sacred"},
	{ID: "2", Name: "Rose", NameGujarati: "ગુલાબ", Category: "Flowering", Tag: "Fragrant"},
	{ID: "3", Name: "Mint", NameGujarati: "ફુદીનો", Category: "Herbs", Tag: "Medicinal herb"},
}

func TestMapCategoriesPrependsAll(t *testing.T) {
	got := MapCategories([]types.APICategory{
		{ID: "c1", Name: "Medicinal", NameGujarati: "ઔષધીય"},
		{ID: "c2", Name: "Shade"},
	})
	require.Len(t, got, 3)
	assert.Equal(t, types.AllCategory, got[0])
	assert.Equal(t, "c1", got[1].Key)
	assert.Equal(t, "Shade", got[2].Gujarati)

	assert.Equal(t, []types.Category{types.AllCategory}, MapCategories(nil))
}

func TestFetchKeepsPreviousOnError(t *testing.T) {
	src := &fakeSource{items: plants}
	c := New(src, zerolog.Nop())
	require.NoError(t, c.FetchItems(context.Background()))

	src.err = errors.New("network down")
	require.Error(t, c.FetchItems(context.Background()))

	state := c.Items()
	assert.False(t, state.Loading)
	assert.Equal(t, "network down", state.Err)
	assert.Len(t, state.Items, 3)
}

func TestCategoriesStartWithAll(t *testing.T) {
	c := New(&fakeSource{categories: []types.APICategory{{ID: "c1", Name: "Herbs"}}}, zerolog.Nop())
	assert.Equal(t, []types.Category{types.AllCategory}, c.Categories().Categories)

	require.NoError(t, c.FetchCategories(context.Background()))
	assert.Len(t, c.Categories().Categories, 2)
}

func TestFind(t *testing.T) {
	c := New(&fakeSource{items: plants}, zerolog.Nop())
	require.NoError(t, c.FetchItems(context.Background()))
	p, ok := c.Find("2")
	require.True(t, ok)
	assert.Equal(t, "Rose", p.Name)
	_, ok = c.Find("9")
	assert.False(t, ok)
}

func TestFilter(t *testing.T) {
	ids := func(ps []types.Plant) []string {
		out := []string{}
		for _, p := range ps {
			out = append(out, p.ID)
		}
		return out
	}

	assert.Equal(t, []string{"1", "2", "3"}, ids(Filter(plants, Query{Language: types.English})))
	assert.Equal(t, []string{"1"}, ids(Filter(plants, Query{Search: "TUL", Language: types.English})))
	assert.Equal(t, []string{"3"}, ids(Filter(plants, Query{Search: "herb", Language: types.English})))
	assert.Equal(t, []string{"2"}, ids(Filter(plants, Query{Search: "ગુલાબ", Language: types.Gujarati})))
	assert.Empty(t, Filter(plants, Query{Search: "rose", Language: types.Gujarati}))
	assert.Equal(t, []string{"2"}, ids(Filter(plants, Query{Category: "Flowering", Language: types.English})))
	assert.Equal(t, []string{"1", "2", "3"}, ids(Filter(plants, Query{Category: types.AllCategoryKey})))
}

func TestImageResolver(t *testing.T) {
	r := ImageResolver{BaseURL: "http://localhost:5679/uploads/", Fallback: "fallback.png"}

	assert.Equal(t, "https://cdn.example.com/a.jpg", r.Resolve(types.Plant{Image: "https://cdn.example.com/a.jpg"}))
	assert.Equal(t, "http://localhost:5679/uploads/a.jpg", r.Resolve(types.Plant{Image: "a.jpg"}))
	assert.Equal(t, "http://localhost:5679/uploads/b.jpg", r.Resolve(types.Plant{Image: "/uploads/b.jpg"}))
	assert.Equal(t, "http://localhost:5679/uploads/c.jpg", r.Resolve(types.Plant{Images: []string{"c.jpg"}}))
	assert.Equal(t, "fallback.png", r.Resolve(types.Plant{}))
	assert.Equal(t, FallbackImage, ImageResolver{}.Resolve(types.Plant{Image: "a.jpg"}))
}
