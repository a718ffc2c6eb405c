package models

// SchoolConfig is the mutable identity of the school shown by the
// panel. It is owned by the configuration service and persisted with
// the student roster; the core query/mutation services never read it.
type SchoolConfig struct {
	SchoolName   string     `json:"schoolName"`
	PrimaryColor ThemeColor `json:"primaryColor"`
	WelcomeMsg   string     `json:"welcomeMsg"`
	LogoURL      string     `json:"logoUrl,omitempty"`
}
