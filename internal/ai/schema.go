package ai

import (
	"encoding/json"
	"sort"

	"weblive_server/internal/schema"
	"weblive_server/internal/sections"
)

// BuildPlanSchema derives the JSON schema handed to the model's structured
// output mode from the same tables the validator enforces, so the two can
// never drift apart. The props_seed object is left open; hydration filters
// it against the widget schemas afterwards.
func BuildPlanSchema() json.RawMessage {
	strField := map[string]any{"type": "string"}
	strArray := map[string]any{"type": "array", "items": strField}
	enum := func(values []string) map[string]any {
		return map[string]any{"type": "string", "enum": values}
	}

	sectionSchema := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"widget":     enum(allWidgetNames()),
			"variant":    strField,
			"props_seed": map[string]any{"type": "object"},
		},
		"required": []string{"widget", "variant"},
	}

	pageSchema := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"slug":      enum(sections.AllowedSlugs),
			"nav_label": strField,
			"purpose":   strField,
			"sections":  map[string]any{"type": "array", "items": sectionSchema},
		},
		"required": []string{"slug", "nav_label", "purpose"},
	}

	root := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"prompt_summary": strField,
			"site_type":      enum(schema.SiteTypes),
			"primary_goal":   enum(schema.PrimaryGoals),
			"tone":           enum(schema.Tones),
			"locale":         strField,
			"website_type":   enum([]string{sections.TypeInfo, sections.TypeCatalog}),
			"template_pack":  enum([]string{sections.PackInfo, sections.PackCatalog}),
			"recipe_id":      enum(allRecipeIDs()),
			"business": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"name":        strField,
					"description": strField,
				},
				"required": []string{"name"},
			},
			"pages":                map[string]any{"type": "array", "items": pageSchema},
			"requested_features":   strArray,
			"supported_features":   strArray,
			"unsupported_features": strArray,
			"warnings":             strArray,
		},
		"required": []string{
			"site_type", "primary_goal", "tone", "website_type", "business", "pages",
		},
	}

	raw, err := json.Marshal(root)
	if err != nil {
		// The schema is built from string literals only, so this cannot
		// happen; fall back to an unconstrained object just in case.
		return json.RawMessage(`{"type":"object"}`)
	}
	return raw
}

func allWidgetNames() []string {
	seen := map[string]bool{}
	var out []string
	for _, pack := range []string{sections.PackInfo, sections.PackCatalog} {
		for _, name := range sections.WidgetNames(pack) {
			if !seen[name] {
				seen[name] = true
				out = append(out, name)
			}
		}
	}
	sort.Strings(out)
	return out
}

func allRecipeIDs() []string {
	out := append([]string(nil), sections.RecipeIDs(sections.TypeInfo)...)
	out = append(out, sections.RecipeIDs(sections.TypeCatalog)...)
	sort.Strings(out)
	return out
}
