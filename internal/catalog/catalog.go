package catalog

import (
	"errors"

	"toolkit/internal/models"
)

var ErrNotFound = errors.New("tool not found")

// Catalog is the in-process, read-only list of all tools. It is built once
// at startup and shared without locking; every accessor preserves catalog
// order and returns copies so callers cannot mutate the table.
type Catalog struct {
	tools []models.Tool
	byID  map[string]models.Tool
}

func New(tools []models.Tool) *Catalog {
	byID := make(map[string]models.Tool, len(tools))
	for _, t := range tools {
		byID[t.ID] = t
	}
	return &Catalog{tools: tools, byID: byID}
}

// Default returns a catalog built from the compiled-in tool table.
func Default() *Catalog {
	return New(defaultTools)
}

func (c *Catalog) All() []models.Tool {
	out := make([]models.Tool, len(c.tools))
	copy(out, c.tools)
	return out
}

func (c *Catalog) ByID(id string) (models.Tool, error) {
	t, ok := c.byID[id]
	if !ok {
		return models.Tool{}, ErrNotFound
	}
	return t, nil
}

// ByCategory matches the category label exactly.
func (c *Catalog) ByCategory(category string) []models.Tool {
	var out []models.Tool
	for _, t := range c.tools {
		if t.Category == category {
			out = append(out, t)
		}
	}
	return out
}

func (c *Catalog) Popular() []models.Tool {
	var out []models.Tool
	for _, t := range c.tools {
		if t.Popular {
			out = append(out, t)
		}
	}
	return out
}

func (c *Catalog) Len() int {
	return len(c.tools)
}
