// Package contentkey defines the cache key namespace for generated page
// content and a typed parser for it.
//
// Keys are colon-delimited strings that identify one generatable content slot
// on the site. The wire format is fixed (it is the primary key of the
// ai_content table), so callers should build keys with the helpers here and
// parse incoming keys exactly once, passing the typed Key around afterwards.
package contentkey

import (
	"fmt"
	"strings"
)

// PageType classifies a content key by the kind of page it belongs to.
// The quality scoring thresholds are selected by page type.
type PageType string

const (
	PageTypeHome              PageType = "home"
	PageTypeServicesOverview  PageType = "services-overview"
	PageTypeService           PageType = "service"
	PageTypeLocation          PageType = "location"
	PageTypeServiceInLocation PageType = "service-in-location"
	PageTypeSubService        PageType = "sub-service"
	PageTypeBlog              PageType = "blog"
)

// Key is the parsed form of a content cache key.
// Only the fields relevant to the page type are populated.
type Key struct {
	Type           PageType
	LocationSlug   string
	ServiceSlug    string
	SubServiceSlug string
	BlogID         string
}

// String renders the key back to its wire format.
func (k Key) String() string {
	switch k.Type {
	case PageTypeHome:
		return "home:intro"
	case PageTypeServicesOverview:
		return "services:overview"
	case PageTypeService:
		return "service:" + k.ServiceSlug
	case PageTypeLocation:
		return "location:" + k.LocationSlug
	case PageTypeServiceInLocation:
		return "serviceInLocation:" + k.LocationSlug + ":" + k.ServiceSlug
	case PageTypeSubService:
		return "subService:" + k.ServiceSlug + ":" + k.SubServiceSlug
	case PageTypeBlog:
		return "blog:" + k.BlogID
	}
	return ""
}

// Home returns the key for the homepage intro slot.
func Home() Key { return Key{Type: PageTypeHome} }

// ServicesOverview returns the key for the services overview slot.
func ServicesOverview() Key { return Key{Type: PageTypeServicesOverview} }

// Service returns the key for a generic service page.
func Service(serviceSlug string) Key {
	return Key{Type: PageTypeService, ServiceSlug: serviceSlug}
}

// Location returns the key for a location page.
func Location(locationSlug string) Key {
	return Key{Type: PageTypeLocation, LocationSlug: locationSlug}
}

// ServiceInLocation returns the key for a service×location page.
func ServiceInLocation(locationSlug, serviceSlug string) Key {
	return Key{Type: PageTypeServiceInLocation, LocationSlug: locationSlug, ServiceSlug: serviceSlug}
}

// SubService returns the key for a sub-service page.
func SubService(serviceSlug, subServiceSlug string) Key {
	return Key{Type: PageTypeSubService, ServiceSlug: serviceSlug, SubServiceSlug: subServiceSlug}
}

// Blog returns the key for a blog content slot.
func Blog(id string) Key {
	return Key{Type: PageTypeBlog, BlogID: id}
}

// Parse parses a wire-format content key into its typed form.
func Parse(raw string) (Key, error) {
	parts := strings.Split(raw, ":")
	switch parts[0] {
	case "home":
		if len(parts) == 2 && parts[1] == "intro" {
			return Home(), nil
		}
	case "services":
		if len(parts) == 2 && parts[1] == "overview" {
			return ServicesOverview(), nil
		}
	case "service":
		if len(parts) == 2 && parts[1] != "" {
			return Service(parts[1]), nil
		}
	case "location":
		if len(parts) == 2 && parts[1] != "" {
			return Location(parts[1]), nil
		}
	case "serviceInLocation":
		if len(parts) == 3 && parts[1] != "" && parts[2] != "" {
			return ServiceInLocation(parts[1], parts[2]), nil
		}
	case "subService":
		if len(parts) == 3 && parts[1] != "" && parts[2] != "" {
			return SubService(parts[1], parts[2]), nil
		}
	case "blog":
		if len(parts) >= 2 && parts[1] != "" {
			return Blog(strings.Join(parts[1:], ":")), nil
		}
	}
	return Key{}, fmt.Errorf("invalid content key %q", raw)
}

// IsScorable reports whether the page type participates in quality scoring.
// The home intro and services overview slots are short blurbs with no
// per-type thresholds.
func (t PageType) IsScorable() bool {
	switch t {
	case PageTypeService, PageTypeLocation, PageTypeServiceInLocation, PageTypeSubService, PageTypeBlog:
		return true
	}
	return false
}
