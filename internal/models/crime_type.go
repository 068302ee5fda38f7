package models

// CrimeType is a catalog entry seeded at startup and read-only afterwards.
// Reports store the crime type as free text, not as a foreign key.
type CrimeType struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Severity    string `json:"severity"`
	Description string `json:"description"`
}
