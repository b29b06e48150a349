package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "restaurants.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeCatalog(t, `[
		{"id": 1, "name": "La Parrilla del Sur", "cuisine": "Argentinian", "price_range": "$$$"},
		{"id": 2, "name": "Sakura Garden", "cuisine": "Japanese", "price_range": "$$"}
	]`)

	store, err := Load(path)
	require.NoError(t, err)

	restaurants := store.List()
	require.Len(t, restaurants, 2)
	assert.Equal(t, "La Parrilla del Sur", restaurants[0].Name)
	assert.Equal(t, "$$", restaurants[1].PriceRange)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoad_CorruptFile(t *testing.T) {
	path := writeCatalog(t, `{not json`)
	_, err := Load(path)
	assert.Error(t, err)
}

func TestList_ReturnsCopy(t *testing.T) {
	store := New([]Restaurant{
		{ID: 1, Name: "La Parrilla del Sur", Cuisine: "Argentinian", PriceRange: "$$$"},
	})

	list := store.List()
	list[0].Name = "mutated"

	assert.Equal(t, "La Parrilla del Sur", store.List()[0].Name)
	assert.Equal(t, "La Parrilla del Sur", store.GetByID(1).Name)
}

func TestGetByID(t *testing.T) {
	store := New([]Restaurant{
		{ID: 1, Name: "La Parrilla del Sur", Cuisine: "Argentinian", PriceRange: "$$$"},
	})

	found := store.GetByID(1)
	require.NotNil(t, found)
	assert.Equal(t, "La Parrilla del Sur", found.Name)

	assert.Nil(t, store.GetByID(42))
}
