package models

// Teacher is read-only reference data in this panel.
type Teacher struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Email      string   `json:"email"`
	Subject    string   `json:"subject"`
	SectionIDs []string `json:"section_ids"`
}
