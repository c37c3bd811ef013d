package sections

import "strings"

// Recipe is a fixed ordered list of widget:variant pairs used as a page's
// default section skeleton. Recipes are pure data; the generator reorders
// only their non-anchor middle.
type Recipe struct {
	ID       string
	Name     string
	Sections []string // "widget:variant"
}

// SplitPair breaks a recipe entry into its widget and variant halves.
func SplitPair(pair string) (widget, variant string) {
	parts := strings.SplitN(pair, ":", 2)
	widget = parts[0]
	if len(parts) == 2 {
		variant = parts[1]
	}
	return widget, variant
}

var infoRecipes = []Recipe{
	{
		ID:   "info-corporate-clean",
		Name: "Corporate Clean",
		Sections: []string{
			"header:v1-classic", "hero:v1-centered", "services:grid", "stats:bar",
			"steps:steps", "testimonials:cards", "cta:v1-banner", "contact:form", "footer:v1-simple",
		},
	},
	{
		ID:   "info-agency-modern",
		Name: "Agency Modern",
		Sections: []string{
			"header:v1-classic", "hero:v2-split", "features:icons", "about:split",
			"testimonials:slider", "faq:accordion", "cta:v2-card", "contact:form+map", "footer:v2-mega",
		},
	},
	{
		ID:   "info-service-trust",
		Name: "Service Trust",
		Sections: []string{
			"header:v1-classic", "hero:v4-metrics", "services:list", "features:cards",
			"stats:grid", "testimonials:cards", "cta:v1-banner", "footer:v1-simple",
		},
	},
	{
		ID:   "info-local-growth",
		Name: "Local Growth",
		Sections: []string{
			"header:v1-classic", "hero:v2-split", "about:centered", "services:grid",
			"steps:timeline", "faq:accordion", "contact:form", "footer:v1-simple",
		},
	},
	{
		ID:   "info-premium",
		Name: "Premium Story",
		Sections: []string{
			"header:v1-classic", "hero:v1-centered", "about:split", "features:cards",
			"team:grid", "testimonials:slider", "cta:v2-card", "footer:v2-mega",
		},
	},
	{
		ID:   "info-lean",
		Name: "Lean Informational",
		Sections: []string{
			"header:v1-classic", "hero:v1-centered", "services:grid",
			"testimonials:cards", "contact:form", "footer:v1-simple",
		},
	},
}

var catalogRecipes = []Recipe{
	{
		ID:   "catalog-megamarket",
		Name: "MegaMarket",
		Sections: []string{
			"header:v2-search", "hero:v2-split", "banners:hero_side_promos", "categories:icons_grid",
			"products_grid:grid_8", "promo_strip:icons", "products_carousel:carousel", "newsletter:bar", "footer:v2-mega",
		},
	},
	{
		ID:   "catalog-boutique",
		Name: "Boutique Catalog",
		Sections: []string{
			"header:v2-search", "hero:v2-split", "categories:image_grid", "products_grid:grid_4",
			"promo_strip:cards", "newsletter:bar", "footer:v1-simple",
		},
	},
	{
		ID:   "catalog-clean",
		Name: "Catalog Clean",
		Sections: []string{
			"header:v2-search", "hero:v1-centered", "categories:icons_grid", "products_grid:grid_8",
			"brands_strip:logos", "promo_strip:icons", "footer:v1-simple",
		},
	},
	{
		ID:   "catalog-story",
		Name: "Story Commerce",
		Sections: []string{
			"header:v2-search", "hero:v4-metrics", "categories:image_grid", "products_grid:grid_4",
			"banners:two_column", "blog_teasers:cards", "footer:v2-mega",
		},
	},
	{
		ID:   "catalog-fast",
		Name: "Fast Catalog",
		Sections: []string{
			"header:v2-search", "hero:v1-centered", "categories:icons_grid", "products_grid:grid_8",
			"promo_strip:icons", "footer:v1-simple",
		},
	},
	{
		ID:   "catalog-landing",
		Name: "Campaign Catalog",
		Sections: []string{
			"header:v2-search", "hero:v2-split", "banners:hero_side_promos", "categories:image_grid",
			"products_grid:grid_4", "products_carousel:carousel", "newsletter:bar", "footer:v1-simple",
		},
	},
}

// RecipesFor returns the recipe set for a website type. Unknown types fall
// back to the informational set so the deterministic path always has data.
func RecipesFor(websiteType string) []Recipe {
	if websiteType == TypeCatalog {
		return catalogRecipes
	}
	return infoRecipes
}

// RecipeIDs lists recipe ids for a website type, for the planner schema.
func RecipeIDs(websiteType string) []string {
	recipes := RecipesFor(websiteType)
	ids := make([]string, 0, len(recipes))
	for _, r := range recipes {
		ids = append(ids, r.ID)
	}
	return ids
}

// OptionalExtras is the per-type pool of widget:variant pairs the generator
// may splice into a page's middle, beyond what its recipe carries.
func OptionalExtras(websiteType string) []string {
	if websiteType == TypeCatalog {
		return []string{"promo_strip:cards", "brands_strip:logos", "newsletter:bar", "blog_teasers:cards"}
	}
	return []string{"stats:grid", "faq:accordion", "team:grid", "steps:timeline"}
}

// RecipePage is one page of a category recipe: which page exists, its nav
// label per locale, and which slug it renders under.
type RecipePage struct {
	ID      string
	Slug    string
	NameEn  string
	NameKa  string
	Purpose string
}

// Name returns the localized nav label for a page.
func (p RecipePage) Name(locale string) string {
	if locale == "ka" {
		return p.NameKa
	}
	return p.NameEn
}

func page(id, slug, nameEn, nameKa, purpose string) RecipePage {
	return RecipePage{ID: id, Slug: slug, NameEn: nameEn, NameKa: nameKa, Purpose: purpose}
}

var categoryPages = map[string][]RecipePage{
	"clinic": {
		page("home", "/", "Home", "მთავარი", "Main landing page"),
		page("about", "/about", "About", "ჩვენ შესახებ", "Trust and company story"),
		page("services", "/services", "Services", "სერვისები", "Service overview"),
		page("contact", "/contact", "Contact", "კონტაქტი", "Lead capture and contact details"),
	},
	"lawyer": {
		page("home", "/", "Home", "მთავარი", "Main landing page"),
		page("practice", "/practice", "Practice Areas", "საქმის მიმართულებები", "Practice overview"),
		page("about", "/about", "About", "ჩვენ შესახებ", "Trust and company story"),
		page("contact", "/contact", "Contact", "კონტაქტი", "Lead capture and contact details"),
	},
	"ecommerce": {
		page("home", "/", "Home", "მთავარი", "Main landing page"),
		page("products", "/products", "Products", "პროდუქტები", "Product listing"),
		page("about", "/about", "About", "ჩვენ შესახებ", "Trust and company story"),
		page("contact", "/contact", "Contact", "კონტაქტი", "Lead capture and contact details"),
	},
	"restaurant": {
		page("home", "/", "Home", "მთავარი", "Main landing page"),
		page("menu", "/menu", "Menu", "მენიუ", "Menu listing"),
		page("about", "/about", "About", "ჩვენ შესახებ", "Trust and company story"),
		page("contact", "/contact", "Contact", "კონტაქტი", "Lead capture and contact details"),
	},
	"agency": {
		page("home", "/", "Home", "მთავარი", "Main landing page"),
		page("services", "/services", "Services", "სერვისები", "Service overview"),
		page("work", "/work", "Work", "ნამუშევრები", "Portfolio of past work"),
		page("contact", "/contact", "Contact", "კონტაქტი", "Lead capture and contact details"),
	},
	"generic": {
		page("home", "/", "Home", "მთავარი", "Main landing page"),
		page("about", "/about", "About", "ჩვენ შესახებ", "Trust and company story"),
		page("contact", "/contact", "Contact", "კონტაქტი", "Lead capture and contact details"),
	},
}

// CategoryPages resolves the per-category page set, falling back to the
// generic category when the input is unrecognized.
func CategoryPages(category string) []RecipePage {
	if pages, ok := categoryPages[category]; ok {
		return pages
	}
	return categoryPages["generic"]
}

// KnownCategory reports whether a wizard category has its own recipe.
func KnownCategory(category string) bool {
	_, ok := categoryPages[category]
	return ok
}

// EcommerceFixedPages is the page-id set forced for ecommerce inputs.
var EcommerceFixedPages = []string{"home", "products", "about", "contact"}
