package content

import (
	"testing"
	"time"
)

func TestDefaultPagesLanguagesDiffer(t *testing.T) {
	t.Parallel()

	es := DefaultPages("es")
	en := DefaultPages("en")
	if es.Home.Hero.Subtitle == en.Home.Hero.Subtitle {
		t.Fatal("expected localized hero subtitles")
	}
	if es.Contact.Info.Email != en.Contact.Info.Email {
		t.Fatal("contact info should be shared across languages")
	}
	if len(es.Home.Hero.Images) != 4 {
		t.Fatalf("expected 4 hero images, got %d", len(es.Home.Hero.Images))
	}
}

func TestDefaultPagesReturnsFreshCopy(t *testing.T) {
	t.Parallel()

	first := DefaultPages("es")
	first.Home.Hero.Images[0] = "mutated"
	second := DefaultPages("es")
	if second.Home.Hero.Images[0] == "mutated" {
		t.Fatal("defaults shared a backing array")
	}
}

func TestDefaultServicesCoverOrder(t *testing.T) {
	t.Parallel()

	for _, code := range []string{"es", "en"} {
		services := DefaultServices(code)
		for _, key := range ServiceOrder() {
			svc, ok := services[key]
			if !ok {
				t.Fatalf("%s catalog missing %q", code, key)
			}
			if svc.ID != key {
				t.Fatalf("service %q has id %q", key, svc.ID)
			}
			if svc.Title == "" || svc.Description == "" || len(svc.Bullets) == 0 {
				t.Fatalf("service %q incomplete", key)
			}
		}
	}
}

func TestSectionLookup(t *testing.T) {
	t.Parallel()

	pages := DefaultPages("es")
	section, ok := pages.Section("home", "hero")
	if !ok {
		t.Fatal("home hero not found")
	}
	if section["title"] != "Avanti Advisory Group" {
		t.Fatalf("unexpected title %v", section["title"])
	}
	if _, ok := pages.Section("home", "nope"); ok {
		t.Fatal("unknown section resolved")
	}
	if _, ok := pages.Section("nope", "hero"); ok {
		t.Fatal("unknown page resolved")
	}
}

func TestWithSectionReplacesOnlyTarget(t *testing.T) {
	t.Parallel()

	pages := DefaultPages("es")
	prior, _ := pages.Section("home", "hero")

	fields := MergeSection(prior, map[string]any{"title": "Nuevo"})
	updated, err := pages.WithSection("home", "hero", fields)
	if err != nil {
		t.Fatalf("with section: %v", err)
	}
	if updated.Home.Hero.Title != "Nuevo" {
		t.Fatalf("title not updated: %q", updated.Home.Hero.Title)
	}
	if updated.Home.Hero.Subtitle != pages.Home.Hero.Subtitle {
		t.Fatal("untouched field changed")
	}
	if updated.About != pages.About {
		t.Fatal("other page changed")
	}
	if pages.Home.Hero.Title != "Avanti Advisory Group" {
		t.Fatal("receiver mutated")
	}
}

func TestWithSectionRejectsUnknownTargets(t *testing.T) {
	t.Parallel()

	pages := DefaultPages("en")
	if _, err := pages.WithSection("home", "nope", map[string]any{}); err == nil {
		t.Fatal("expected error for unknown section")
	}
	if _, err := pages.WithSection("nope", "hero", map[string]any{}); err == nil {
		t.Fatal("expected error for unknown page")
	}
}

func TestMergeSectionDoesNotMutateInputs(t *testing.T) {
	t.Parallel()

	base := map[string]any{"a": 1, "b": 2}
	fields := map[string]any{"b": 3}
	merged := MergeSection(base, fields)
	if merged["a"] != 1 || merged["b"] != 3 {
		t.Fatalf("unexpected merge %v", merged)
	}
	if base["b"] != 2 {
		t.Fatal("base mutated")
	}
}

func TestDisplayDate(t *testing.T) {
	t.Parallel()

	ts := time.Date(2023, time.October, 12, 15, 0, 0, 0, time.UTC)
	if got := DisplayDate(ts); got != "Oct 12, 2023" {
		t.Fatalf("DisplayDate = %q", got)
	}
}
