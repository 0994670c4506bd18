package handlers

import (
	"context"
	"testing"

	"github.com/hoanghai1803/localpages/internal/content"
	"github.com/hoanghai1803/localpages/internal/site"
	"github.com/hoanghai1803/localpages/internal/storage"
)

// newTestStore creates an in-memory SQLite store with migrations applied. It
// registers a cleanup function to close the database when the test
// completes.
func newTestStore(t *testing.T) *storage.Store {
	t.Helper()

	db, err := storage.OpenDatabase(":memory:")
	if err != nil {
		t.Fatalf("opening test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := storage.RunMigrations(db); err != nil {
		t.Fatalf("running migrations: %v", err)
	}

	return storage.NewStore(db)
}

// stubDispatcher is a scripted text generator for handler tests.
type stubDispatcher struct {
	content  string
	provider string
	err      error
}

func (s *stubDispatcher) Generate(ctx context.Context, prompt, preferred string) (string, string, error) {
	if s.err != nil {
		return "", "", s.err
	}
	provider := s.provider
	if provider == "" {
		provider = "openai"
	}
	return s.content, provider, nil
}

func newTestGenerator(store *storage.Store, dispatcher *stubDispatcher) *content.Generator {
	return content.NewGenerator(store, dispatcher, "openai", 0)
}

func testCatalog() *site.Catalog {
	return &site.Catalog{
		Brand: site.Brand{
			Name:             "Example Drain Heroes",
			PrimaryLocation:  "Swindon",
			ServiceAreaLabel: "Swindon and surrounding villages",
			Phone:            "01793 000000",
		},
		Services: []site.Service{
			{
				Slug: "blocked-drains",
				Name: "Blocked Drains",
				SubServices: []site.SubService{
					{Slug: "blocked-toilets", Name: "Blocked Toilets"},
				},
			},
			{Slug: "drain-jetting", Name: "Drain Jetting"},
		},
		Locations: []site.Location{
			{Slug: "swindon", Name: "Swindon"},
			{Slug: "cricklade", Name: "Cricklade"},
		},
	}
}
