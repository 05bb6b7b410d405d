package storage

import (
	"context"
	"os"

	"gopkg.in/yaml.v3"
)

// SeedFaq mirrors one entry of the seed yaml file.
type SeedFaq struct {
	Question string   `yaml:"question"`
	Answer   string   `yaml:"answer"`
	Category string   `yaml:"category"`
	Keywords []string `yaml:"keywords"`
}

// LoadSeedFile reads seed FAQs from a yaml file.
func LoadSeedFile(path string) ([]SeedFaq, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var seeds []SeedFaq
	if err := yaml.Unmarshal(data, &seeds); err != nil {
		return nil, err
	}
	return seeds, nil
}

// DefaultSeedFaqs is the built-in seed set used when no seed file is
// available.
func DefaultSeedFaqs() []SeedFaq {
	return []SeedFaq{
		{
			Question: "How do I reset my password?",
			Answer:   "You can reset your password by clicking the 'Forgot Password' link on the login page and following the instructions sent to your email.",
			Category: "Account",
			Keywords: []string{"password", "reset", "login", "forgot", "account"},
		},
		{
			Question: "What are your business hours?",
			Answer:   "Our customer support is available 24/7 through this AI chatbot. For human assistance, our team is available Monday-Friday 9 AM to 6 PM EST.",
			Category: "General",
			Keywords: []string{"hours", "support", "time", "available", "contact"},
		},
		{
			Question: "How do I track my order?",
			Answer:   "You can track your order by logging into your account and visiting the 'Order History' section, or by using the tracking number sent to your email.",
			Category: "Orders",
			Keywords: []string{"track", "order", "shipping", "delivery", "status"},
		},
	}
}

// Seed inserts seed FAQs that are not already present, keyed by
// question text so restarts against a persistent backend stay idempotent.
func Seed(ctx context.Context, store Storage, seeds []SeedFaq) error {
	existing, err := store.ListFaqs(ctx)
	if err != nil {
		return err
	}
	present := make(map[string]bool, len(existing))
	for _, faq := range existing {
		present[faq.Question] = true
	}
	for _, seed := range seeds {
		if present[seed.Question] {
			continue
		}
		_, err := store.CreateFaq(ctx, FaqInput{
			Question: seed.Question,
			Answer:   seed.Answer,
			Category: seed.Category,
			Keywords: seed.Keywords,
		})
		if err != nil {
			return err
		}
	}
	return nil
}
