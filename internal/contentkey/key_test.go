package contentkey

import "testing"

func TestParseRoundTrip(t *testing.T) {
	tests := []struct {
		raw  string
		want Key
	}{
		{"home:intro", Home()},
		{"services:overview", ServicesOverview()},
		{"service:drain-jetting", Service("drain-jetting")},
		{"location:swindon", Location("swindon")},
		{"serviceInLocation:swindon:blocked-drains", ServiceInLocation("swindon", "blocked-drains")},
		{"subService:blocked-drains:blocked-toilets", SubService("blocked-drains", "blocked-toilets")},
		{"blog:42", Blog("42")},
		{"blog:scheduled:1725000000000", Blog("scheduled:1725000000000")},
	}

	for _, tt := range tests {
		got, err := Parse(tt.raw)
		if err != nil {
			t.Errorf("Parse(%q) returned error: %v", tt.raw, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Parse(%q) = %+v, want %+v", tt.raw, got, tt.want)
		}
		if got.String() != tt.raw {
			t.Errorf("Parse(%q).String() = %q, want round trip", tt.raw, got.String())
		}
	}
}

func TestParseInvalid(t *testing.T) {
	invalid := []string{
		"",
		"home",
		"home:about",
		"services:all",
		"service:",
		"location:",
		"serviceInLocation:swindon",
		"serviceInLocation::blocked-drains",
		"subService:blocked-drains",
		"blog:",
		"unknown:key",
	}

	for _, raw := range invalid {
		if _, err := Parse(raw); err == nil {
			t.Errorf("Parse(%q) succeeded, want error", raw)
		}
	}
}

func TestIsScorable(t *testing.T) {
	scorable := []PageType{
		PageTypeService, PageTypeLocation, PageTypeServiceInLocation,
		PageTypeSubService, PageTypeBlog,
	}
	for _, pt := range scorable {
		if !pt.IsScorable() {
			t.Errorf("%s.IsScorable() = false, want true", pt)
		}
	}

	notScorable := []PageType{PageTypeHome, PageTypeServicesOverview}
	for _, pt := range notScorable {
		if pt.IsScorable() {
			t.Errorf("%s.IsScorable() = true, want false", pt)
		}
	}
}
