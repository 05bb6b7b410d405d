package types

type CreateFaqRequest struct {
	Question string   `json:"question"`
	Answer   string   `json:"answer"`
	Category string   `json:"category"`
	Keywords []string `json:"keywords"`
}

// UpdateFaqRequest is a partial update; nil fields stay untouched.
type UpdateFaqRequest struct {
	Question *string   `json:"question,omitempty"`
	Answer   *string   `json:"answer,omitempty"`
	Category *string   `json:"category,omitempty"`
	Keywords *[]string `json:"keywords,omitempty"`
}
