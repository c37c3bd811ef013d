package generator

import (
	"fmt"
	"time"

	"weblive_server/internal/sections"
	"weblive_server/internal/types"
)

var fontPool = []string{"Manrope", "Space Grotesk", "Inter", "Sora"}
var radiusPool = []int{12, 16, 20, 24}
var buttonStylePool = []string{"solid", "outline"}

var categorySiteTypes = map[string]string{
	"clinic":     "clinic",
	"lawyer":     "local_service",
	"ecommerce":  "ecommerce",
	"restaurant": "restaurant",
	"agency":     "agency",
	"generic":    "local_service",
}

var goalMap = map[string]string{
	"calls":     "calls",
	"leads":     "leads",
	"bookings":  "bookings",
	"sell":      "sales",
	"sales":     "sales",
	"visit":     "calls",
	"downloads": "downloads",
}

// NormalizeEcommerceInput forces the fixed ecommerce page set and folds the
// services field into product categories.
func NormalizeEcommerceInput(in types.WizardInput) types.WizardInput {
	categories := in.ProductCategories
	if categories == "" {
		categories = in.Services
	}
	in.Category = "ecommerce"
	in.Pages = append([]string(nil), sections.EcommerceFixedPages...)
	in.IncludeProductPage = false
	in.ProductCategories = categories
	in.Services = categories
	return in
}

func normalizeWizardInput(in types.WizardInput) types.WizardInput {
	if !sections.KnownCategory(in.Category) {
		in.Category = "generic"
	}
	if in.Category == "ecommerce" {
		in = NormalizeEcommerceInput(in)
	}
	if in.Locale == "" {
		in.Locale = "en"
	}
	if in.Tone == "" {
		in.Tone = "professional"
	}
	if _, ok := goalMap[in.Goal]; !ok {
		in.Goal = "leads"
	}
	return in
}

func websiteTypeFor(category string) string {
	if category == "ecommerce" {
		return sections.TypeCatalog
	}
	return sections.TypeInfo
}

// GenerateAuto runs Generate with a clock-derived seed. The seed is not
// recorded, so the result is legal but not reproducible.
func GenerateAuto(input types.WizardInput) (*types.SiteSpec, *types.SeoPayload) {
	return Generate(input, time.Now().UnixNano())
}

// Generate is the deterministic path: the same input and seed always yield
// a byte-identical site specification and SEO payload.
func Generate(input types.WizardInput, seed int64) (*types.SiteSpec, *types.SeoPayload) {
	in := normalizeWizardInput(input)
	c := contentFromWizard(in)
	rng := NewRNG(seed)

	websiteType := websiteTypeFor(in.Category)
	packName := sections.TemplatePackFor(websiteType)
	recipes := sections.RecipesFor(websiteType)
	recipe := recipes[rng.Intn(len(recipes))]

	theme := buildTheme(rng, websiteType, in.Brand)

	requested := make(map[string]bool, len(in.Pages))
	for _, id := range in.Pages {
		requested[id] = true
	}

	pages := make([]types.Page, 0, len(in.Pages))
	for _, rp := range sections.CategoryPages(in.Category) {
		if !requested[rp.ID] {
			continue
		}
		pairs := pagePairs(recipe, rp.ID == "home")
		pairs = shuffleMiddle(rng, pairs)
		pairs = insertExtras(rng, pairs, websiteType, rp.ID == "home")
		pages = append(pages, types.Page{
			Slug:     rp.Slug,
			NavLabel: rp.Name(in.Locale),
			Purpose:  rp.Purpose,
			Sections: buildSections(rp.ID, pairs, c),
		})
	}

	spec := &types.SiteSpec{
		PromptSummary: truncate(c.description(), 240),
		SiteType:      categorySiteTypes[in.Category],
		PrimaryGoal:   goalMap[in.Goal],
		Tone:          in.Tone,
		Locale:        in.Locale,
		WebsiteType:   websiteType,
		TemplatePack:  packName,
		RecipeID:      recipe.ID,
		Business: types.Business{
			Name:        in.BusinessName,
			Description: in.Description,
		},
		Brand:               in.Brand,
		Theme:               theme,
		Pages:               pages,
		RequestedFeatures:   []string{},
		SupportedFeatures:   []string{},
		UnsupportedFeatures: []string{},
		Warnings:            []string{},
	}
	if in.Contact != (types.Contact{}) {
		contact := in.Contact
		spec.Contact = &contact
	}
	InjectNav(spec)

	return spec, buildSeoPayload(in, spec)
}

func buildTheme(rng *RNG, websiteType string, brand types.Brand) types.Theme {
	preset := sections.StylePresets[sections.DefaultPreset(websiteType)]
	theme := types.Theme{
		PrimaryColor:   preset.PrimaryColor,
		SecondaryColor: preset.SecondaryColor,
		FontFamily:     rng.Pick(fontPool),
		Radius:         radiusPool[rng.Intn(len(radiusPool))],
		ButtonStyle:    buttonStylePool[rng.Intn(len(buttonStylePool))],
	}
	if brand.PrimaryColor != "" {
		theme.PrimaryColor = brand.PrimaryColor
	}
	if brand.SecondaryColor != "" {
		theme.SecondaryColor = brand.SecondaryColor
	}
	if brand.FontFamily != "" {
		theme.FontFamily = brand.FontFamily
	}
	return theme
}

// pagePairs resolves the recipe's widget:variant list for one page. Hero
// and catalog showcase widgets stay on the home page only.
func pagePairs(recipe sections.Recipe, home bool) []string {
	pairs := make([]string, 0, len(recipe.Sections))
	for _, pair := range recipe.Sections {
		widget, _ := sections.SplitPair(pair)
		if !home && (widget == "hero" || widget == "categories" || widget == "banners") {
			continue
		}
		pairs = append(pairs, pair)
	}
	return pairs
}

// shuffleMiddle reorders everything between the header/hero head anchors
// and the footer tail anchor.
func shuffleMiddle(rng *RNG, pairs []string) []string {
	head, middle, tail := splitAnchors(pairs)
	rng.Shuffle(len(middle), func(i, j int) {
		middle[i], middle[j] = middle[j], middle[i]
	})
	return rejoin(head, middle, tail)
}

func splitAnchors(pairs []string) (head, middle, tail []string) {
	rest := pairs
	for len(rest) > 0 {
		widget, _ := sections.SplitPair(rest[0])
		if widget != "header" && widget != "hero" {
			break
		}
		head = append(head, rest[0])
		rest = rest[1:]
	}
	if n := len(rest); n > 0 {
		if widget, _ := sections.SplitPair(rest[n-1]); widget == "footer" {
			tail = append(tail, rest[n-1])
			rest = rest[:n-1]
		}
	}
	middle = append(middle, rest...)
	return head, middle, tail
}

func rejoin(head, middle, tail []string) []string {
	out := make([]string, 0, len(head)+len(middle)+len(tail))
	out = append(out, head...)
	out = append(out, middle...)
	out = append(out, tail...)
	return out
}

// insertExtras splices 0-2 optional sections into the shuffled middle,
// drawn without replacement from the website type's extras pool. Home pages
// always get at least one extra.
func insertExtras(rng *RNG, pairs []string, websiteType string, home bool) []string {
	present := make(map[string]bool, len(pairs))
	for _, pair := range pairs {
		widget, _ := sections.SplitPair(pair)
		present[widget] = true
	}
	pool := make([]string, 0, 4)
	for _, pair := range sections.OptionalExtras(websiteType) {
		widget, _ := sections.SplitPair(pair)
		if !present[widget] {
			pool = append(pool, pair)
		}
	}

	count := rng.Intn(2)
	if home {
		count++
	}

	head, middle, tail := splitAnchors(pairs)
	for i := 0; i < count && len(pool) > 0; i++ {
		pick := rng.Intn(len(pool))
		pair := pool[pick]
		pool = append(pool[:pick], pool[pick+1:]...)
		pos := rng.Intn(len(middle) + 1)
		middle = append(middle[:pos], append([]string{pair}, middle[pos:]...)...)
	}
	return rejoin(head, middle, tail)
}

func buildSections(pageID string, pairs []string, c siteContent) []types.Section {
	out := make([]types.Section, 0, len(pairs))
	for i, pair := range pairs {
		widget, variant := sections.SplitPair(pair)
		out = append(out, types.Section{
			ID:      fmt.Sprintf("sec_%s_%d", pageID, i),
			Widget:  widget,
			Variant: variant,
			Props:   defaultProps(widget, variant, c),
		})
	}
	return out
}

// InjectNav recomputes navigation links from the final page list and writes
// them into every header and footer section. Run after any change to the
// page list so nav never goes stale.
func InjectNav(spec *types.SiteSpec) {
	navLinks := func(limit int) []any {
		out := make([]any, 0, len(spec.Pages))
		for _, page := range spec.Pages {
			if limit > 0 && len(out) == limit {
				break
			}
			out = append(out, map[string]any{"label": page.NavLabel, "href": page.Slug})
		}
		return out
	}
	for pi := range spec.Pages {
		for si := range spec.Pages[pi].Sections {
			section := &spec.Pages[pi].Sections[si]
			if section.Props == nil {
				continue
			}
			switch section.Widget {
			case "header":
				section.Props["nav"] = navLinks(0)
			case "footer":
				section.Props["links"] = navLinks(3)
			}
		}
	}
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
