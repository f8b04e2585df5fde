package domain

import "fmt"

type Category string

const (
	CategoryCoreFrameworks Category = "core"
	CategoryVisualization  Category = "visualization"
	CategoryNLP            Category = "nlp"
)

// OrderedCategories lists every known category in menu display order.
func OrderedCategories() []Category {
	return []Category{CategoryCoreFrameworks, CategoryVisualization, CategoryNLP}
}

func (c Category) Valid() bool {
	switch c {
	case CategoryCoreFrameworks, CategoryVisualization, CategoryNLP:
		return true
	default:
		return false
	}
}

// Title returns the human-readable category name used in menus.
func (c Category) Title() string {
	switch c {
	case CategoryCoreFrameworks:
		return "Core Frameworks"
	case CategoryVisualization:
		return "Visualization"
	case CategoryNLP:
		return "NLP"
	default:
		return string(c)
	}
}

// Library is one catalog entry. Entries are immutable once loaded; SizeMB is
// a static advisory estimate, never probed from a registry.
type Library struct {
	Name        string
	Category    Category
	SizeMB      float64
	Description string
}

// FormatSize renders a size estimate the way the catalog displays it:
// megabytes up to 1GB, gigabytes with one decimal beyond.
func FormatSize(sizeMB float64) string {
	if sizeMB >= 1024 {
		return fmt.Sprintf("~%.1fGB", sizeMB/1024)
	}

	return fmt.Sprintf("~%.0fMB", sizeMB)
}

// TotalSizeMB sums size estimates over a set of libraries.
func TotalSizeMB(libraries []Library) float64 {
	var total float64
	for _, library := range libraries {
		total += library.SizeMB
	}

	return total
}
