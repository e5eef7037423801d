package models

type SearchResult struct {
	Title    string `json:"title"`
	Link     string `json:"link"`
	Size     string `json:"size"`
	Seeders  int    `json:"seeders"`
	Leechers int    `json:"leechers"`
}

type Category struct {
	ID       int        `yaml:"id"`
	Name     string     `yaml:"name"`
	Children []Category `yaml:"children,omitempty"`
}
