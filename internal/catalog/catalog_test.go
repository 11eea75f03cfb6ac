package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"toolkit/internal/models"
)

func testTools() []models.Tool {
	return []models.Tool{
		{ID: "t1", Category: "Text", Popular: true},
		{ID: "t2", Category: "SEO", Popular: false},
		{ID: "t3", Category: "Text", Popular: false},
		{ID: "t4", Category: "SEO", Popular: true},
	}
}

func TestAllPreservesOrderAndCopies(t *testing.T) {
	c := New(testTools())

	all := c.All()
	assert.Equal(t, []string{"t1", "t2", "t3", "t4"}, ids(all))

	all[0].ID = "mutated"
	assert.Equal(t, "t1", c.All()[0].ID)
}

func TestByID(t *testing.T) {
	c := New(testTools())

	tool, err := c.ByID("t2")
	assert.NoError(t, err)
	assert.Equal(t, "SEO", tool.Category)

	_, err = c.ByID("missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestByCategory(t *testing.T) {
	c := New(testTools())
	assert.Equal(t, []string{"t1", "t3"}, ids(c.ByCategory("Text")))
	assert.Empty(t, c.ByCategory("text")) // exact match only
}

func TestPopular(t *testing.T) {
	c := New(testTools())
	assert.Equal(t, []string{"t1", "t4"}, ids(c.Popular()))
}

func TestDefaultCatalogHasUniqueIDs(t *testing.T) {
	c := Default()
	assert.Greater(t, c.Len(), 0)

	seen := make(map[string]bool)
	for _, tool := range c.All() {
		assert.False(t, seen[tool.ID], "duplicate tool id %s", tool.ID)
		seen[tool.ID] = true
		assert.NotEmpty(t, tool.Name)
		assert.NotEmpty(t, tool.Category)
		assert.NotEmpty(t, tool.Route)
	}
}

func ids(tools []models.Tool) []string {
	out := make([]string, 0, len(tools))
	for _, t := range tools {
		out = append(out, t.ID)
	}
	return out
}
