// Package site holds the brand, service, and location catalog for the site
// being generated. The catalog is a TOML file so that repointing the whole
// template at a different business is a config change, not a code change.
package site

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Brand describes the business the site is generated for.
type Brand struct {
	Name             string `toml:"name" json:"name"`
	Domain           string `toml:"domain" json:"domain"`
	PrimaryLocation  string `toml:"primary_location" json:"primary_location"`
	ServiceAreaLabel string `toml:"service_area_label" json:"service_area_label"`
	Phone            string `toml:"phone" json:"phone"`
	Email            string `toml:"email" json:"email"`
	Tagline          string `toml:"tagline" json:"tagline"`
}

// Service is one service the business offers.
type Service struct {
	Slug        string       `toml:"slug" json:"slug"`
	Name        string       `toml:"name" json:"name"`
	ShortLabel  string       `toml:"short_label" json:"short_label"`
	Description string       `toml:"description" json:"description"`
	SubServices []SubService `toml:"sub_services" json:"sub_services,omitempty"`
}

// SubService is a narrower offering under a parent service.
type SubService struct {
	Slug string `toml:"slug" json:"slug"`
	Name string `toml:"name" json:"name"`
}

// Location is one town or area the business covers.
type Location struct {
	Slug   string `toml:"slug" json:"slug"`
	Name   string `toml:"name" json:"name"`
	Region string `toml:"region" json:"region,omitempty"`
}

// Catalog is the full site definition.
type Catalog struct {
	Brand     Brand      `toml:"brand"`
	Services  []Service  `toml:"service"`
	Locations []Location `toml:"location"`
}

// Load reads and parses the site catalog from the given TOML path. If the
// file does not exist, a default catalog file is created at that path first.
func Load(path string) (*Catalog, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		if err := createDefault(path); err != nil {
			return nil, fmt.Errorf("creating default site file: %w", err)
		}
		slog.Info("created default site file", "path", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading site file: %w", err)
	}

	var cat Catalog
	if _, err := toml.Decode(string(data), &cat); err != nil {
		return nil, fmt.Errorf("parsing site file: %w", err)
	}

	if err := cat.validate(); err != nil {
		return nil, fmt.Errorf("validating site file: %w", err)
	}

	return &cat, nil
}

// createDefault writes the default catalog to the given path, creating any
// parent directories as needed.
func createDefault(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating site directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(defaultSiteContent), 0o644); err != nil {
		return fmt.Errorf("writing default site file: %w", err)
	}
	return nil
}

// validate checks the catalog for the fields generation cannot work without.
func (c *Catalog) validate() error {
	if c.Brand.Name == "" {
		return errors.New("brand.name is required")
	}
	if c.Brand.PrimaryLocation == "" {
		return errors.New("brand.primary_location is required")
	}
	seen := make(map[string]bool, len(c.Locations))
	for _, loc := range c.Locations {
		if loc.Slug == "" || loc.Name == "" {
			return fmt.Errorf("location %q: slug and name are required", loc.Name)
		}
		if seen[loc.Slug] {
			return fmt.Errorf("duplicate location slug %q", loc.Slug)
		}
		seen[loc.Slug] = true
	}
	seen = make(map[string]bool, len(c.Services))
	for _, svc := range c.Services {
		if svc.Slug == "" || svc.Name == "" {
			return fmt.Errorf("service %q: slug and name are required", svc.Name)
		}
		if seen[svc.Slug] {
			return fmt.Errorf("duplicate service slug %q", svc.Slug)
		}
		seen[svc.Slug] = true
	}
	return nil
}

// ServiceBySlug returns the service with the given slug, or nil.
func (c *Catalog) ServiceBySlug(slug string) *Service {
	for i := range c.Services {
		if c.Services[i].Slug == slug {
			return &c.Services[i]
		}
	}
	return nil
}

// LocationBySlug returns the location with the given slug, or nil.
func (c *Catalog) LocationBySlug(slug string) *Location {
	for i := range c.Locations {
		if c.Locations[i].Slug == slug {
			return &c.Locations[i]
		}
	}
	return nil
}

// LocationNames returns the display names of every location in the catalog.
func (c *Catalog) LocationNames() []string {
	names := make([]string, len(c.Locations))
	for i, loc := range c.Locations {
		names[i] = loc.Name
	}
	return names
}

// LocationNameBySlug returns the display name for a location slug, or ""
// if the slug is unknown.
func (c *Catalog) LocationNameBySlug(slug string) string {
	if loc := c.LocationBySlug(slug); loc != nil {
		return loc.Name
	}
	return ""
}

// Slugify converts a title into a URL-safe slug, trimmed to maxLen runes.
func Slugify(title string, maxLen int) string {
	var b strings.Builder
	lastDash := true // suppress a leading dash
	for _, r := range strings.ToLower(title) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		case r == ' ' || r == '-' || r == '_':
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	s := strings.TrimRight(b.String(), "-")
	if maxLen > 0 && len(s) > maxLen {
		s = strings.TrimRight(s[:maxLen], "-")
	}
	return s
}
