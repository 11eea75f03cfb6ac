package services

import (
	"toolkit/internal/catalog"
	"toolkit/internal/models"
)

const DefaultMaxRelated = 6

type RelatedService interface {
	Related(currentID, category string, maxTools int) []models.Tool
}

type relatedService struct {
	catalog *catalog.Catalog
}

func NewRelatedService(cat *catalog.Catalog) RelatedService {
	return &relatedService{catalog: cat}
}

// Related picks up to maxTools tools for the "related tools" rail: every
// other tool in the same category first, then popular tools from other
// categories, both in catalog order. The current tool is never included.
// An empty result is a valid outcome, not an error.
func (s *relatedService) Related(currentID, category string, maxTools int) []models.Tool {
	if maxTools <= 0 {
		maxTools = DefaultMaxRelated
	}

	related := make([]models.Tool, 0, maxTools)
	for _, tool := range s.catalog.ByCategory(category) {
		if len(related) == maxTools {
			return related
		}
		if tool.ID == currentID {
			continue
		}
		related = append(related, tool)
	}

	for _, tool := range s.catalog.Popular() {
		if len(related) == maxTools {
			break
		}
		if tool.ID == currentID || tool.Category == category {
			continue
		}
		related = append(related, tool)
	}
	return related
}
