package domain

// Tool is an entry of the tool catalog.
type Tool struct {
	ID          string
	Name        string
	Description string
	Category    string // "math", "text", "color", "converter", "utility"
	Path        string
}

type Category struct {
	ID    string
	Name  string
	Count int
}

type ToolSearchResult struct {
	Tools      []Tool
	Total      int
	Categories []Category
}
