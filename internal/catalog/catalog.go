// Package catalog holds the built-in resume templates and groups them for the picker.
package catalog

import "github.com/jonathan/resume-builder/internal/types"

// templates is declared once at startup and never mutated.
var templates = []types.TemplateDescriptor{
	{
		ID:          "classic-professional",
		Name:        "Classic Professional",
		Description: "ATS-friendly traditional design perfect for corporate roles",
		Preview:     "Clean, scannable layout optimized for applicant tracking systems",
		Category:    types.CategoryClassic,
	},
	{
		ID:          "classic-executive",
		Name:        "Classic Executive",
		Description: "Premium traditional layout for senior positions",
		Preview:     "Sophisticated design with elegant typography and clear hierarchy",
		Category:    types.CategoryClassic,
	},
	{
		ID:          "modern-minimal",
		Name:        "Modern Minimal",
		Description: "Clean contemporary design with ATS compatibility",
		Preview:     "Minimalist layout with strategic use of color and white space",
		Category:    types.CategoryModern,
	},
	{
		ID:          "modern-tech",
		Name:        "Modern Tech",
		Description: "Contemporary design optimized for tech industry",
		Preview:     "Modern layout with subtle tech-inspired elements",
		Category:    types.CategoryModern,
	},
	{
		ID:          "traditional-formal",
		Name:        "Traditional Formal",
		Description: "Conservative design for traditional industries",
		Preview:     "Formal layout perfect for law, finance, and government roles",
		Category:    types.CategoryTraditional,
	},
	{
		ID:          "traditional-academic",
		Name:        "Traditional Academic",
		Description: "Scholarly design for academic and research positions",
		Preview:     "Academic-focused layout with emphasis on publications and research",
		Category:    types.CategoryTraditional,
	},
	{
		ID:          "creative-designer",
		Name:        "Creative Designer",
		Description: "Stylish design for creative professionals",
		Preview:     "Eye-catching layout showcasing creativity while maintaining readability",
		Category:    types.CategoryCreative,
	},
	{
		ID:          "creative-marketing",
		Name:        "Creative Marketing",
		Description: "Dynamic design for marketing and media professionals",
		Preview:     "Vibrant layout that demonstrates marketing flair and creativity",
		Category:    types.CategoryCreative,
	},
}

// All returns a copy of the catalog in declaration order.
func All() []types.TemplateDescriptor {
	return append([]types.TemplateDescriptor(nil), templates...)
}

// Lookup finds a template by id.
func Lookup(id string) (types.TemplateDescriptor, bool) {
	for _, t := range templates {
		if t.ID == id {
			return t, true
		}
	}
	return types.TemplateDescriptor{}, false
}

// Group is one category section of the template picker.
type Group struct {
	Category  types.Category             `json:"category"`
	Info      CategoryInfo               `json:"info"`
	Templates []types.TemplateDescriptor `json:"templates"`
}

// GroupByCategory groups entries by category. Categories appear in the order
// they are first seen and entries keep their relative order within a group.
func GroupByCategory(entries []types.TemplateDescriptor) []Group {
	var groups []Group
	index := make(map[types.Category]int)

	for _, e := range entries {
		i, ok := index[e.Category]
		if !ok {
			i = len(groups)
			index[e.Category] = i
			groups = append(groups, Group{Category: e.Category, Info: Info(e.Category)})
		}
		groups[i].Templates = append(groups[i].Templates, e)
	}

	return groups
}

// Grouped returns the built-in catalog grouped for the picker.
func Grouped() []Group {
	return GroupByCategory(templates)
}
