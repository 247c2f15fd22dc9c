package models

type GalleryItem struct {
	Base
	Title     string `json:"title"`
	Category  string `json:"category,omitempty"`
	MediaType string `json:"mediaType,omitempty"`
	URL       string `json:"url"`
	Featured  bool   `json:"featured,omitempty"`
}
