package command

import (
	"fmt"
	"os"

	"github.com/pixil98/go-adventure/internal/storage"
	"github.com/pixil98/go-adventure/internal/style"
)

// ThemeConfig points at a directory of theme assets. The built-in themes
// are always available; assets can add to or override them.
type ThemeConfig struct {
	AssetsPath string `json:"asset_path,omitempty"`
}

func (c *ThemeConfig) Validate() error {
	if c.AssetsPath == "" {
		return nil
	}
	if _, err := os.Stat(c.AssetsPath); err != nil {
		return fmt.Errorf("invalid theme asset_path %q: %w", c.AssetsPath, err)
	}
	return nil
}

// BuildTheme resolves a theme by name, preferring loaded assets over the
// built-ins.
func (c *ThemeConfig) BuildTheme(name string) (*style.Theme, error) {
	if c.AssetsPath != "" {
		store, err := storage.NewFileStore[*style.Theme](c.AssetsPath)
		if err != nil {
			return nil, fmt.Errorf("creating theme store: %w", err)
		}
		if t := store.Get(name); t != nil {
			return t, nil
		}
	}

	switch name {
	case "default":
		return style.Default(), nil
	case "spooky":
		return style.Spooky(), nil
	default:
		return nil, fmt.Errorf("unknown theme %q", name)
	}
}
