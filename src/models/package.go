package models

// PackageGroup groups the line templates the studio offers under one
// category, e.g. "wedding" or "portrait".
type PackageGroup struct {
	Base
	Category    string    `json:"category"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Packages    []Package `json:"packages"`
}

type Package struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description,omitempty"`
}
