package catalog

import "github.com/jonathan/resume-builder/internal/types"

// CategoryInfo is the picker's presentation metadata for a category.
type CategoryInfo struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Accent      string `json:"accent"` // CSS colour used for the card header
}

var categoryInfo = map[types.Category]CategoryInfo{
	types.CategoryClassic: {
		Title:       "Classic Templates",
		Description: "Professional designs perfect for corporate and business roles",
		Accent:      "#1d4ed8",
	},
	types.CategoryModern: {
		Title:       "Modern Templates",
		Description: "Contemporary layouts ideal for tech and startup environments",
		Accent:      "#0f766e",
	},
	types.CategoryTraditional: {
		Title:       "Traditional Templates",
		Description: "Conservative formats for formal industries like law and finance",
		Accent:      "#4b5563",
	},
	types.CategoryCreative: {
		Title:       "Creative Templates",
		Description: "Unique designs for creative professionals and designers",
		Accent:      "#7e22ce",
	},
}

// Info returns the presentation metadata for c, falling back to a generic entry.
func Info(c types.Category) CategoryInfo {
	if info, ok := categoryInfo[c]; ok {
		return info
	}
	return CategoryInfo{
		Title:       "Templates",
		Description: "Professional resume templates",
		Accent:      "#1d4ed8",
	}
}
