package catalog

import (
	"fmt"

	"github.com/bnema/mllib-cli/internal/domain"
)

const currentSchemaVersion = 1

type fileSchema struct {
	Version   int             `toml:"version"`
	Libraries []librarySchema `toml:"libraries"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported catalog schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type librarySchema struct {
	Name        string  `toml:"name"`
	Category    string  `toml:"category"`
	SizeMB      float64 `toml:"size_mb"`
	Description string  `toml:"description"`
}

func (s librarySchema) validate() error {
	if s.Name == "" {
		return fmt.Errorf("catalog entry with empty name")
	}
	if !domain.Category(s.Category).Valid() {
		return fmt.Errorf("catalog entry %q has unknown category %q", s.Name, s.Category)
	}
	if s.SizeMB < 0 {
		return fmt.Errorf("catalog entry %q has negative size %g", s.Name, s.SizeMB)
	}
	if s.Description == "" {
		return fmt.Errorf("catalog entry %q has empty description", s.Name)
	}

	return nil
}

func fromSchema(entry librarySchema) domain.Library {
	return domain.Library{
		Name:        entry.Name,
		Category:    domain.Category(entry.Category),
		SizeMB:      entry.SizeMB,
		Description: entry.Description,
	}
}
