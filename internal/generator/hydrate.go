package generator

import (
	"fmt"

	"weblive_server/internal/sections"
	"weblive_server/internal/types"
)

// Hydrate turns a normalized layout plan into a fully populated spec: every
// section gets schema-valid props built from the plan's business material,
// with any recognized props_seed values from the planner model layered on
// top. Pages the model left without sections get a recipe skeleton. The
// input is not mutated.
func Hydrate(spec *types.SiteSpec, products []types.ProductInput, seed int64) *types.SiteSpec {
	out := spec.Clone()
	c := contentFromSpec(out, products)
	rng := NewRNG(seed)

	recipe := recipeFor(out)
	for pi := range out.Pages {
		page := &out.Pages[pi]
		home := page.Slug == "/"
		if len(page.Sections) == 0 {
			pairs := pagePairs(recipe, home)
			pairs = shuffleMiddle(rng, pairs)
			page.Sections = buildSections(pageID(page.Slug), pairs, c)
		} else {
			hydrateSections(page, out.TemplatePack, c)
		}
		ensureAnchors(page, home, out.TemplatePack, c)
	}
	InjectNav(out)
	return out
}

func recipeFor(spec *types.SiteSpec) sections.Recipe {
	recipes := sections.RecipesFor(spec.WebsiteType)
	for _, r := range recipes {
		if r.ID == spec.RecipeID {
			return r
		}
	}
	return recipes[0]
}

func pageID(slug string) string {
	if slug == "/" {
		return "home"
	}
	id := slug
	if len(id) > 0 && id[0] == '/' {
		id = id[1:]
	}
	return id
}

func hydrateSections(page *types.Page, packName string, c siteContent) {
	for si := range page.Sections {
		section := &page.Sections[si]
		entry, err := sections.Lookup(packName, section.Widget)
		if err != nil {
			continue
		}
		props := defaultProps(section.Widget, section.Variant, c)
		seeded := mergeSeed(entry, props, section.PropsSeed)
		if len(sections.ValidateProps(entry, seeded)) == 0 {
			props = seeded
		}
		section.Props = sections.NormalizeProps(entry, props)
		section.PropsSeed = nil
		if section.ID == "" {
			section.ID = fmt.Sprintf("sec_%s_%d", pageID(page.Slug), si)
		}
	}
}

// mergeSeed overlays recognized seed fields onto the defaults. Unknown seed
// keys are dropped; a seed that breaks the widget schema is discarded
// entirely by the caller.
func mergeSeed(entry sections.Entry, base, seed map[string]any) map[string]any {
	if len(seed) == 0 {
		return base
	}
	merged := make(map[string]any, len(base)+len(seed))
	for k, v := range base {
		merged[k] = v
	}
	for k, v := range seed {
		if _, known := entry.Props[k]; known {
			merged[k] = v
		}
	}
	return merged
}

// ensureAnchors enforces the layout invariants the model occasionally
// drops: a header at the top of every page and a hero on the home page.
func ensureAnchors(page *types.Page, home bool, packName string, c siteContent) {
	if len(page.Sections) == 0 {
		return
	}
	if page.Sections[0].Widget != "header" {
		header := types.Section{
			ID:      fmt.Sprintf("sec_%s_header", pageID(page.Slug)),
			Widget:  "header",
			Variant: defaultVariant(packName, "header"),
			Props:   defaultProps("header", "", c),
		}
		page.Sections = append([]types.Section{header}, page.Sections...)
	}
	if home && !hasWidget(page.Sections, "hero") {
		hero := types.Section{
			ID:      "sec_home_hero",
			Widget:  "hero",
			Variant: defaultVariant(packName, "hero"),
			Props:   defaultProps("hero", "", c),
		}
		rest := append([]types.Section(nil), page.Sections[1:]...)
		page.Sections = append(page.Sections[:1:1], append([]types.Section{hero}, rest...)...)
	}
}

func defaultVariant(packName, widget string) string {
	entry, err := sections.Lookup(packName, widget)
	if err != nil || len(entry.Variants) == 0 {
		return "default"
	}
	return entry.Variants[0]
}

func hasWidget(list []types.Section, widget string) bool {
	for _, s := range list {
		if s.Widget == widget {
			return true
		}
	}
	return false
}
