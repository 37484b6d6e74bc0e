// Package insights tracks externally generated chart images the dashboard can display.
package insights

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"feedback-dashboard/internal/model"

	"go.uber.org/zap"
)

// ErrUnknownImage is returned for names not in the catalog.
var ErrUnknownImage = errors.New("unknown insight image")

// ErrImageUnavailable is returned when a known image has not been generated.
var ErrImageUnavailable = errors.New("insight image not generated")

// Definition describes one expected image file.
type Definition struct {
	Name    string
	Title   string
	Caption string
}

// DefaultDefinitions are the two images produced by the offline analysis notebooks.
var DefaultDefinitions = []Definition{
	{Name: "recurring_issues_chart.png", Title: "Recurring Issues", Caption: "Top Recurring Issues"},
	{Name: "css_prediction_chart.png", Title: "CSS Prediction Trend", Caption: "Predicted CSS Trend for Next Month"},
}

// Catalog knows which insight images exist under a directory.
type Catalog struct {
	dir       string
	urlPrefix string
	defs      []Definition
	logger    *zap.Logger

	mu        sync.RWMutex
	available map[string]bool
}

// NewCatalog builds a catalog over dir and checks which images exist.
func NewCatalog(dir, urlPrefix string, defs []Definition, logger *zap.Logger) *Catalog {
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &Catalog{
		dir:       dir,
		urlPrefix: urlPrefix,
		defs:      defs,
		logger:    logger,
		available: make(map[string]bool, len(defs)),
	}
	c.Refresh()
	return c
}

// Dir returns the directory images are read from.
func (c *Catalog) Dir() string { return c.dir }

// Refresh re-checks every image on disk.
func (c *Catalog) Refresh() {
	for _, def := range c.defs {
		c.refreshOne(def.Name)
	}
}

func (c *Catalog) refreshOne(name string) bool {
	info, err := os.Stat(filepath.Join(c.dir, name))
	ok := err == nil && info.Mode().IsRegular()

	c.mu.Lock()
	prev, seen := c.available[name]
	c.available[name] = ok
	c.mu.Unlock()

	if seen && prev != ok {
		c.logger.Info("insight image availability changed", zap.String("image", name), zap.Bool("available", ok))
	}
	return ok
}

// Known reports whether name is one of the catalog's images.
func (c *Catalog) Known(name string) bool {
	_, ok := c.definition(name)
	return ok
}

func (c *Catalog) definition(name string) (Definition, bool) {
	for _, def := range c.defs {
		if def.Name == name {
			return def, true
		}
	}
	return Definition{}, false
}

// List returns every image with its availability, in catalog order.
func (c *Catalog) List() []model.InsightImage {
	c.mu.RLock()
	defer c.mu.RUnlock()

	images := make([]model.InsightImage, 0, len(c.defs))
	for _, def := range c.defs {
		img := model.InsightImage{
			Name:      def.Name,
			Title:     def.Title,
			Caption:   def.Caption,
			Available: c.available[def.Name],
		}
		if img.Available {
			img.URL = c.urlPrefix + def.Name
		} else {
			img.Warning = MissingWarning(def.Name)
		}
		images = append(images, img)
	}
	return images
}

// Read returns the bytes of an available image.
func (c *Catalog) Read(name string) ([]byte, error) {
	if !c.Known(name) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownImage, name)
	}

	data, err := os.ReadFile(filepath.Join(c.dir, name))
	if err != nil {
		c.refreshOne(name)
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrImageUnavailable, MissingWarning(name))
		}
		return nil, fmt.Errorf("failed to read insight image %s: %w", name, err)
	}
	return data, nil
}

// MissingWarning is the text shown in place of an image that does not exist.
func MissingWarning(name string) string {
	return fmt.Sprintf("%s not found. Run the offline analysis to generate it.", name)
}
