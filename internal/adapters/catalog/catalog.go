package catalog

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bnema/mllib-cli/internal/domain"
	"github.com/bnema/mllib-cli/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	configName     = "config"
	configType     = "toml"
	catalogPathKey = "catalog.path"
	configDir      = ".mlc"
)

// Catalog serves the built-in library table, optionally extended and
// overridden by a user TOML file named in the config. Entries are loaded
// once at startup and never mutated.
type Catalog struct {
	categories []domain.Category
	byCategory map[domain.Category][]domain.Library
	byName     map[string]domain.Library
}

var _ ports.Catalog = (*Catalog)(nil)

// New builds the catalog. A corrupt or invalid user catalog file is the one
// fatal startup error of the tool, so it is returned rather than recovered.
func New(cfg *viper.Viper) (*Catalog, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	cfg.SetConfigName(configName)
	cfg.SetConfigType(configType)
	cfg.AddConfigPath(filepath.Join(homeDir, configDir))
	cfg.SetDefault(catalogPathKey, "")

	err = cfg.ReadInConfig()
	if err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	libraries := builtinLibraries()

	if userPath := cfg.GetString(catalogPathKey); userPath != "" {
		userLibraries, err := loadUserCatalog(userPath)
		if err != nil {
			return nil, err
		}
		libraries = mergeLibraries(libraries, userLibraries)
	}

	return build(libraries), nil
}

func (c *Catalog) Categories(ctx context.Context) ([]domain.Category, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	categories := make([]domain.Category, len(c.categories))
	copy(categories, c.categories)
	return categories, nil
}

func (c *Catalog) ListByCategory(ctx context.Context, category domain.Category) ([]domain.Library, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, ok := c.byCategory[category]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrCategoryNotFound, category)
	}

	libraries := make([]domain.Library, len(entries))
	copy(libraries, entries)
	return libraries, nil
}

func (c *Catalog) Describe(ctx context.Context, name string) (domain.Library, error) {
	if err := ctx.Err(); err != nil {
		return domain.Library{}, err
	}

	library, ok := c.byName[name]
	if !ok {
		return domain.Library{}, fmt.Errorf("%w: %q", domain.ErrLibraryNotFound, name)
	}

	return library, nil
}

func build(libraries []domain.Library) *Catalog {
	c := &Catalog{
		byCategory: make(map[domain.Category][]domain.Library),
		byName:     make(map[string]domain.Library, len(libraries)),
	}

	for _, library := range libraries {
		c.byName[library.Name] = library
		c.byCategory[library.Category] = append(c.byCategory[library.Category], library)
	}

	for _, category := range domain.OrderedCategories() {
		if _, ok := c.byCategory[category]; ok {
			c.categories = append(c.categories, category)
		}
	}

	return c
}

func loadUserCatalog(path string) ([]domain.Library, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}

	var file fileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("decode catalog file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return nil, err
	}
	file.applyDefaults()

	libraries := make([]domain.Library, 0, len(file.Libraries))
	seen := make(map[string]struct{}, len(file.Libraries))
	for _, entry := range file.Libraries {
		if err := entry.validate(); err != nil {
			return nil, fmt.Errorf("invalid catalog file: %w", err)
		}
		if _, ok := seen[entry.Name]; ok {
			return nil, fmt.Errorf("invalid catalog file: duplicate entry %q", entry.Name)
		}
		seen[entry.Name] = struct{}{}
		libraries = append(libraries, fromSchema(entry))
	}

	return libraries, nil
}

// mergeLibraries overlays user entries on the built-in table. A user entry
// with a built-in name replaces it in place; new names append in file order.
func mergeLibraries(builtin, user []domain.Library) []domain.Library {
	merged := make([]domain.Library, len(builtin))
	copy(merged, builtin)

	index := make(map[string]int, len(merged))
	for i, library := range merged {
		index[library.Name] = i
	}

	for _, library := range user {
		if i, ok := index[library.Name]; ok {
			merged[i] = library
			continue
		}
		index[library.Name] = len(merged)
		merged = append(merged, library)
	}

	return merged
}
