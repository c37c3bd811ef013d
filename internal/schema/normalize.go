package schema

import (
	"strings"

	"weblive_server/internal/sections"
	"weblive_server/internal/types"
)

const promptSummaryLimit = 240

// Normalize shapes a structurally valid spec into canonical form: defaults
// filled, duplicate slugs dropped, page count clamped, theme completed from
// the style preset, and section props passed through the pack schemas.
// Normalizing an already canonical spec changes nothing.
func Normalize(spec *types.SiteSpec, maxPages int) *types.SiteSpec {
	if maxPages <= 0 {
		maxPages = DefaultMaxPages
	}
	out := spec.Clone()

	if out.Locale == "" {
		out.Locale = "en"
	}
	if out.Tone == "" {
		out.Tone = "professional"
	}
	if out.PrimaryGoal == "" {
		out.PrimaryGoal = "leads"
	}
	if out.SiteType == "" {
		out.SiteType = "local_service"
	}
	if out.WebsiteType == "" {
		switch {
		case out.TemplatePack == sections.PackCatalog:
			out.WebsiteType = sections.TypeCatalog
		case out.TemplatePack == sections.PackInfo:
			out.WebsiteType = sections.TypeInfo
		case out.SiteType == "ecommerce":
			out.WebsiteType = sections.TypeCatalog
		default:
			out.WebsiteType = sections.TypeInfo
		}
	}
	out.TemplatePack = sections.TemplatePackFor(out.WebsiteType)

	recipes := sections.RecipesFor(out.WebsiteType)
	if !knownRecipe(recipes, out.RecipeID) {
		out.RecipeID = recipes[0].ID
	}

	out.PromptSummary = truncateRunes(out.PromptSummary, promptSummaryLimit)

	out.Pages = normalizePages(out.Pages, maxPages)
	if len(out.Pages) == 0 {
		out.Pages = skeletonPages(out.WebsiteType, out.Locale)
	}
	for i := range out.Pages {
		page := &out.Pages[i]
		if page.NavLabel == "" {
			page.NavLabel = navLabelFromSlug(page.Slug)
		}
		normalizeSections(page, out.TemplatePack)
	}

	out.Theme = normalizeTheme(out.Theme, out.WebsiteType, out.Brand)

	out.RequestedFeatures = dedupeStrings(out.RequestedFeatures)
	out.SupportedFeatures = dedupeStrings(out.SupportedFeatures)
	out.UnsupportedFeatures = dedupeStrings(out.UnsupportedFeatures)
	out.Warnings = dedupeStrings(out.Warnings)

	return out
}

func knownRecipe(recipes []sections.Recipe, id string) bool {
	for _, r := range recipes {
		if r.ID == id {
			return true
		}
	}
	return false
}

// normalizePages drops repeated slugs keeping the first occurrence, then
// clamps the list length. The home page, when present, is never clamped
// away because dedupe preserves order and clamping cuts from the end.
func normalizePages(pages []types.Page, maxPages int) []types.Page {
	seen := make(map[string]bool, len(pages))
	out := make([]types.Page, 0, len(pages))
	for _, page := range pages {
		if seen[page.Slug] {
			continue
		}
		seen[page.Slug] = true
		out = append(out, page)
	}
	if len(out) > maxPages {
		out = out[:maxPages]
	}
	return out
}

func normalizeSections(page *types.Page, packName string) {
	for si := range page.Sections {
		section := &page.Sections[si]
		entry, err := sections.Lookup(packName, section.Widget)
		if err != nil {
			continue
		}
		if section.Props != nil {
			section.Props = sections.NormalizeProps(entry, section.Props)
		}
	}
}

func normalizeTheme(theme types.Theme, websiteType string, brand types.Brand) types.Theme {
	preset := sections.StylePresets[sections.DefaultPreset(websiteType)]
	if theme.PrimaryColor == "" {
		theme.PrimaryColor = preset.PrimaryColor
		if brand.PrimaryColor != "" {
			theme.PrimaryColor = brand.PrimaryColor
		}
	}
	if theme.SecondaryColor == "" {
		theme.SecondaryColor = preset.SecondaryColor
		if brand.SecondaryColor != "" {
			theme.SecondaryColor = brand.SecondaryColor
		}
	}
	if theme.FontFamily == "" {
		theme.FontFamily = preset.FontFamily
		if brand.FontFamily != "" {
			theme.FontFamily = brand.FontFamily
		}
	}
	if theme.Radius == 0 {
		theme.Radius = preset.Radius
	}
	if theme.ButtonStyle == "" {
		theme.ButtonStyle = preset.ButtonStyle
	}
	return theme
}

// skeletonPages is the fallback layout when a plan arrives with no pages at
// all. Sections stay empty here; hydration fills them from the recipe.
func skeletonPages(websiteType, locale string) []types.Page {
	ka := locale == "ka"
	pick := func(en, kaText string) string {
		if ka {
			return kaText
		}
		return en
	}
	middle := types.Page{
		Slug:     "/services",
		NavLabel: pick("Services", "სერვისები"),
		Purpose:  "present the service offering",
	}
	if websiteType == sections.TypeCatalog {
		middle = types.Page{
			Slug:     "/products",
			NavLabel: pick("Products", "პროდუქტები"),
			Purpose:  "showcase the product catalog",
		}
	}
	return []types.Page{
		{Slug: "/", NavLabel: pick("Home", "მთავარი"), Purpose: "introduce the business and its main offer"},
		{Slug: "/about", NavLabel: pick("About", "ჩვენ შესახებ"), Purpose: "tell the story behind the business"},
		middle,
		{Slug: "/contact", NavLabel: pick("Contact", "კონტაქტი"), Purpose: "make it easy to get in touch"},
	}
}

func navLabelFromSlug(slug string) string {
	if slug == "/" {
		return "Home"
	}
	words := strings.Split(strings.Trim(slug, "/"), "-")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

func dedupeStrings(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]bool, len(in))
	for _, s := range in {
		if seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}

func truncateRunes(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
