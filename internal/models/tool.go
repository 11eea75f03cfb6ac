package models

// Tool is one catalog entry describing a utility page. The catalog is
// compiled into the binary and immutable for the process lifetime.
type Tool struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Icon        string `json:"icon"`
	Route       string `json:"route"`
	Popular     bool   `json:"popular"`
}
