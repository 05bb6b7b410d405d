package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadSeedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "faqs.yaml")
	data := `
- question: "How do I reset my password?"
  answer: "Use the forgot password link."
  category: Account
  keywords: [password, reset]
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write seed file: %v", err)
	}

	seeds, err := LoadSeedFile(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(seeds) != 1 {
		t.Fatalf("expected 1 seed, got %d", len(seeds))
	}
	if seeds[0].Category != "Account" || len(seeds[0].Keywords) != 2 {
		t.Errorf("seed parsed wrong: %+v", seeds[0])
	}

	if _, err := LoadSeedFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Errorf("expected error for missing file")
	}
}

func TestSeedIsIdempotent(t *testing.T) {
	s := NewMemStorage()
	ctx := context.Background()

	if err := Seed(ctx, s, DefaultSeedFaqs()); err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	if err := Seed(ctx, s, DefaultSeedFaqs()); err != nil {
		t.Fatalf("second seed failed: %v", err)
	}

	faqs, err := s.ListFaqs(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(faqs) != len(DefaultSeedFaqs()) {
		t.Errorf("seeding twice duplicated faqs: got %d", len(faqs))
	}
	for _, faq := range faqs {
		if faq.UsageCount != 0 {
			t.Errorf("seeded faq must start at usage_count 0")
		}
	}
}
