package types

// Category is the closed set of template families. Renderer dispatch keys on it.
type Category string

const (
	CategoryClassic     Category = "classic"
	CategoryModern      Category = "modern"
	CategoryTraditional Category = "traditional"
	CategoryCreative    Category = "creative"
)

// TemplateDescriptor describes one entry of the template catalog.
type TemplateDescriptor struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Preview     string   `json:"preview"`
	Category    Category `json:"category"`
}
