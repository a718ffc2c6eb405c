package models

// Section represents an educational level such as Kinder or Primaria.
type Section struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// SectionDetail pairs a section with the groups it contains.
type SectionDetail struct {
	Section
	GroupCount int `json:"group_count"`
}
