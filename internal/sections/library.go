package sections

import (
	"fmt"
	"sort"

	"weblive_server/internal/types"
)

// The section library is the single vocabulary shared by the rule-based
// generator, the schema validator, and the planner prompt builder. The two
// generation paths must never diverge in what they consider legal, so all
// widget names, variants and prop shapes live here and nowhere else.

type Kind int

const (
	KindString Kind = iota
	KindObject
	KindList
)

// Field is a structural prop schema node. Objects are always strict:
// keys outside Fields are rejected.
type Field struct {
	Kind     Kind
	Required bool
	Default  any // applied when absent during normalization; nil = stay absent
	MinItems int
	MaxItems int // 0 = unbounded
	Elem     *Field
	Fields   map[string]Field
}

func str() Field                 { return Field{Kind: KindString, Required: true} }
func optStr(def string) Field    { return Field{Kind: KindString, Default: def} }
func obj(f map[string]Field) Field {
	return Field{Kind: KindObject, Required: true, Fields: f}
}
func optObj(f map[string]Field) Field { return Field{Kind: KindObject, Fields: f} }
func list(elem Field, min, max int) Field {
	return Field{Kind: KindList, Required: true, MinItems: min, MaxItems: max, Elem: &elem}
}
func optList(elem Field, min, max int) Field {
	return Field{Kind: KindList, Default: []any{}, MinItems: min, MaxItems: max, Elem: &elem}
}

func linkFields() map[string]Field {
	return map[string]Field{"label": str(), "href": str()}
}

func imageFields() map[string]Field {
	return map[string]Field{"src": str(), "alt": optStr("")}
}

// Entry declares one widget: its legal variants and its strict props schema.
type Entry struct {
	Widget   string
	Variants []string
	Props    map[string]Field
}

const (
	PackInfo    = "INFO_PACK"
	PackCatalog = "CATALOG_PACK"
)

const (
	TypeInfo    = "info"
	TypeCatalog = "catalog"
)

func headerProps() map[string]Field {
	return map[string]Field{
		"brand":        str(),
		"logo":         optStr(""),
		"nav":          list(obj(linkFields()), 1, 7),
		"cta":          obj(linkFields()),
		"tagline":      optStr(""),
		"announcement": optStr(""),
	}
}

func heroProps() map[string]Field {
	return map[string]Field{
		"eyebrow":     optStr(""),
		"headline":    str(),
		"subheadline": optStr(""),
		"ctaPrimary":  obj(linkFields()),
		"ctaSecondary": optObj(linkFields()),
		"bullets":     optList(str(), 0, 0),
		"stats": optList(obj(map[string]Field{
			"label": str(),
			"value": str(),
		}), 0, 0),
		"image":           optObj(imageFields()),
		"gallery":         optList(obj(imageFields()), 0, 0),
		"backgroundImage": optStr(""),
		"products": optList(obj(map[string]Field{
			"name":     str(),
			"price":    optStr(""),
			"imageUrl": optStr(""),
			"href":     optStr(""),
		}), 0, 0),
	}
}

func titledItems(min, max int, itemFields map[string]Field) map[string]Field {
	return map[string]Field{
		"title": str(),
		"items": list(obj(itemFields), min, max),
	}
}

func servicesProps() map[string]Field {
	return titledItems(2, 8, map[string]Field{
		"title": str(),
		"desc":  str(),
		"icon":  optStr("sparkles"),
	})
}

func featuresProps() map[string]Field {
	return titledItems(2, 8, map[string]Field{"title": str(), "desc": str()})
}

func statsProps() map[string]Field {
	return titledItems(2, 6, map[string]Field{"label": str(), "value": str()})
}

func testimonialsProps() map[string]Field {
	return titledItems(1, 8, map[string]Field{"quote": str(), "name": str(), "role": str()})
}

func stepsProps() map[string]Field {
	return titledItems(2, 8, map[string]Field{"title": str(), "desc": str()})
}

func aboutProps() map[string]Field {
	return map[string]Field{
		"title": str(),
		"body":  str(),
		"image": optObj(imageFields()),
	}
}

func faqProps() map[string]Field {
	return titledItems(2, 8, map[string]Field{"q": str(), "a": str()})
}

func teamProps() map[string]Field {
	return map[string]Field{
		"title": str(),
		"members": list(obj(map[string]Field{
			"name": str(),
			"role": str(),
			"bio":  str(),
		}), 1, 8),
	}
}

func ctaProps() map[string]Field {
	return map[string]Field{
		"title": str(),
		"body":  optStr(""),
		"cta":   obj(linkFields()),
	}
}

func footerProps() map[string]Field {
	return map[string]Field{
		"brand":   str(),
		"tagline": optStr(""),
		"links":   list(obj(linkFields()), 1, 10),
		"social":  optList(obj(linkFields()), 0, 0),
	}
}

func contactProps() map[string]Field {
	return map[string]Field{
		"title":   str(),
		"phone":   optStr(""),
		"email":   optStr(""),
		"address": optStr(""),
		"hours":   optStr(""),
	}
}

func categoriesProps() map[string]Field {
	return titledItems(1, 12, map[string]Field{
		"title": str(),
		"image": optObj(imageFields()),
		"href":  optStr("/products"),
	})
}

func productsGridProps() map[string]Field {
	return titledItems(1, 24, map[string]Field{
		"title": str(),
		"price": optStr(""),
		"desc":  optStr(""),
		"image": obj(imageFields()),
		"href":  optStr("/products"),
	})
}

func bannersProps() map[string]Field {
	return map[string]Field{
		"title": str(),
		"body":  optStr(""),
		"image": optObj(imageFields()),
		"items": optList(obj(imageFields()), 0, 0),
	}
}

func brandsStripProps() map[string]Field {
	return map[string]Field{
		"title": optStr(""),
		"logos": list(str(), 1, 20),
	}
}

func newsletterProps() map[string]Field {
	return map[string]Field{
		"title": str(),
		"body":  optStr(""),
		"cta":   optObj(linkFields()),
	}
}

func blogTeasersProps() map[string]Field {
	return map[string]Field{
		"title": str(),
		"posts": list(obj(map[string]Field{
			"title":   str(),
			"date":    str(),
			"excerpt": str(),
			"image":   optObj(imageFields()),
			"href":    optStr("/blog"),
		}), 1, 8),
	}
}

func commonEntries() map[string]Entry {
	return map[string]Entry{
		"header": {Widget: "header", Variants: []string{"v1-classic", "v2-search"}, Props: headerProps()},
		"hero":   {Widget: "hero", Variants: []string{"v1-centered", "v2-split", "v4-metrics"}, Props: heroProps()},
		"cta":    {Widget: "cta", Variants: []string{"v1-banner", "v2-card"}, Props: ctaProps()},
		"footer": {Widget: "footer", Variants: []string{"v1-simple", "v2-mega"}, Props: footerProps()},
	}
}

func infoPack() map[string]Entry {
	pack := commonEntries()
	pack["services"] = Entry{Widget: "services", Variants: []string{"grid", "list"}, Props: servicesProps()}
	pack["features"] = Entry{Widget: "features", Variants: []string{"icons", "cards"}, Props: featuresProps()}
	pack["stats"] = Entry{Widget: "stats", Variants: []string{"bar", "grid"}, Props: statsProps()}
	pack["testimonials"] = Entry{Widget: "testimonials", Variants: []string{"cards", "slider"}, Props: testimonialsProps()}
	pack["steps"] = Entry{Widget: "steps", Variants: []string{"steps", "timeline"}, Props: stepsProps()}
	pack["about"] = Entry{Widget: "about", Variants: []string{"split", "centered"}, Props: aboutProps()}
	pack["faq"] = Entry{Widget: "faq", Variants: []string{"accordion"}, Props: faqProps()}
	pack["team"] = Entry{Widget: "team", Variants: []string{"grid"}, Props: teamProps()}
	pack["contact"] = Entry{Widget: "contact", Variants: []string{"form", "form+map"}, Props: contactProps()}
	return pack
}

func catalogPack() map[string]Entry {
	pack := commonEntries()
	pack["categories"] = Entry{Widget: "categories", Variants: []string{"icons_grid", "image_grid"}, Props: categoriesProps()}
	pack["products_grid"] = Entry{Widget: "products_grid", Variants: []string{"grid_4", "grid_8"}, Props: productsGridProps()}
	pack["products_carousel"] = Entry{Widget: "products_carousel", Variants: []string{"carousel"}, Props: productsGridProps()}
	pack["promo_strip"] = Entry{Widget: "promo_strip", Variants: []string{"icons", "cards"}, Props: featuresProps()}
	pack["banners"] = Entry{Widget: "banners", Variants: []string{"hero_side_promos", "two_column"}, Props: bannersProps()}
	pack["brands_strip"] = Entry{Widget: "brands_strip", Variants: []string{"logos"}, Props: brandsStripProps()}
	pack["newsletter"] = Entry{Widget: "newsletter", Variants: []string{"bar"}, Props: newsletterProps()}
	pack["blog_teasers"] = Entry{Widget: "blog_teasers", Variants: []string{"cards"}, Props: blogTeasersProps()}
	pack["contact"] = Entry{Widget: "contact", Variants: []string{"form", "form+map"}, Props: contactProps()}
	return pack
}

var library = map[string]map[string]Entry{
	PackInfo:    infoPack(),
	PackCatalog: catalogPack(),
}

// Pack returns the full entry table for a template pack.
func Pack(name string) (map[string]Entry, error) {
	pack, ok := library[name]
	if !ok {
		return nil, fmt.Errorf("unknown template pack %q", name)
	}
	return pack, nil
}

// Lookup resolves one widget within a pack.
func Lookup(packName, widget string) (Entry, error) {
	pack, err := Pack(packName)
	if err != nil {
		return Entry{}, err
	}
	entry, ok := pack[widget]
	if !ok {
		return Entry{}, fmt.Errorf("unknown widget %q in pack %s", widget, packName)
	}
	return entry, nil
}

// WidgetNames lists a pack's widgets in sorted order, for prompt building.
func WidgetNames(packName string) []string {
	pack, err := Pack(packName)
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(pack))
	for name := range pack {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// TemplatePackFor maps a website type to its pack name.
func TemplatePackFor(websiteType string) string {
	if websiteType == TypeCatalog {
		return PackCatalog
	}
	return PackInfo
}

// AllowedSlugs is the fixed page slug allow-list shared between the
// validator and the planner prompt. Order is stable.
var AllowedSlugs = []string{
	"/", "/about", "/services", "/products", "/contact",
	"/menu", "/practice", "/work", "/blog", "/faq", "/team", "/pricing",
}

// SlugAllowed reports whether a page slug is in the allow-list.
func SlugAllowed(slug string) bool {
	for _, s := range AllowedSlugs {
		if s == slug {
			return true
		}
	}
	return false
}

// ForbiddenCatalogFeatureKeywords flags prompt requests this product class
// cannot serve. Matches are surfaced as unsupported features, never built.
var ForbiddenCatalogFeatureKeywords = []string{
	"checkout", "cart", "payment", "billing", "subscription", "account", "login",
}

// UnsupportedFeatureWarning is the fixed caller-visible notice added when
// forbidden keywords are detected.
const UnsupportedFeatureWarning = "Marketing/catalog site only; advanced features not included."

// StylePresets are the complete theme option sets a plan may reference.
var StylePresets = map[string]types.Theme{
	"dark-neon": {
		PrimaryColor:   "#0f192b",
		SecondaryColor: "#7333f2",
		FontFamily:     "Manrope",
		Radius:         24,
		ButtonStyle:    "solid",
	},
	"light-commerce": {
		PrimaryColor:   "#F8FAFC",
		SecondaryColor: "#4d5cf3",
		FontFamily:     "Manrope",
		Radius:         20,
		ButtonStyle:    "solid",
	},
	"premium-minimal": {
		PrimaryColor:   "#FFFFFF",
		SecondaryColor: "#2f9bfd",
		FontFamily:     "Manrope",
		Radius:         18,
		ButtonStyle:    "solid",
	},
}

// StylePresetIDs returns preset names in sorted order.
func StylePresetIDs() []string {
	ids := make([]string, 0, len(StylePresets))
	for id := range StylePresets {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// DefaultPreset picks the base preset for a website type.
func DefaultPreset(websiteType string) string {
	if websiteType == TypeCatalog {
		return "light-commerce"
	}
	return "dark-neon"
}
