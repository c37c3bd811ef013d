package types

import "encoding/json"

// Link is a labelled navigation target used across section props.
type Link struct {
	Label string `json:"label"`
	Href  string `json:"href"`
}

// Image pairs a source URL with alt text.
type Image struct {
	Src string `json:"src"`
	Alt string `json:"alt,omitempty"`
}

type Business struct {
	Name        string `json:"name"`
	Tagline     string `json:"tagline,omitempty"`
	Description string `json:"description,omitempty"`
}

type Contact struct {
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
	Address string `json:"address,omitempty"`
	City    string `json:"city,omitempty"`
	Country string `json:"country,omitempty"`
}

type Brand struct {
	PrimaryColor   string `json:"primaryColor,omitempty"`
	SecondaryColor string `json:"secondaryColor,omitempty"`
	FontFamily     string `json:"fontFamily,omitempty"`
	LogoUrl        string `json:"logoUrl,omitempty"`
}

// Theme is always fully populated in a finished spec.
type Theme struct {
	PrimaryColor   string `json:"primaryColor"`
	SecondaryColor string `json:"secondaryColor"`
	FontFamily     string `json:"fontFamily"`
	Radius         int    `json:"radius"`
	ButtonStyle    string `json:"buttonStyle"` // "solid" | "outline"
}

// Section is one widget instance on a page. Props is the canonical,
// schema-valid payload; PropsSeed is the loose object the planner model
// emits and is consumed (then cleared) during hydration.
type Section struct {
	ID        string         `json:"id,omitempty"`
	Widget    string         `json:"widget"`
	Variant   string         `json:"variant"`
	Props     map[string]any `json:"props,omitempty"`
	PropsSeed map[string]any `json:"props_seed,omitempty"`
}

type Page struct {
	Slug     string    `json:"slug"`
	NavLabel string    `json:"nav_label"`
	Purpose  string    `json:"purpose,omitempty"`
	Sections []Section `json:"sections"`
}

// SiteSpec is the canonical structured description of a generated website.
type SiteSpec struct {
	PromptSummary       string   `json:"prompt_summary"`
	SiteType            string   `json:"site_type"`
	PrimaryGoal         string   `json:"primary_goal"`
	Tone                string   `json:"tone"`
	Locale              string   `json:"locale"`
	WebsiteType         string   `json:"website_type"`  // "info" | "catalog"
	TemplatePack        string   `json:"template_pack"` // "INFO_PACK" | "CATALOG_PACK"
	RecipeID            string   `json:"recipe_id,omitempty"`
	Business            Business `json:"business"`
	Contact             *Contact `json:"contact,omitempty"`
	Brand               Brand    `json:"brand"`
	Theme               Theme    `json:"theme"`
	Pages               []Page   `json:"pages"`
	RequestedFeatures   []string `json:"requested_features"`
	SupportedFeatures   []string `json:"supported_features"`
	UnsupportedFeatures []string `json:"unsupported_features"`
	Warnings            []string `json:"warnings"`
}

// Clone returns a deep copy via a JSON round-trip. Props maps come from
// JSON in the first place, so the round-trip is lossless and keeps value
// types consistent between freshly-parsed and cloned specs.
func (s *SiteSpec) Clone() *SiteSpec {
	if s == nil {
		return nil
	}
	raw, err := json.Marshal(s)
	if err != nil {
		cp := *s
		return &cp
	}
	var out SiteSpec
	if err := json.Unmarshal(raw, &out); err != nil {
		cp := *s
		return &cp
	}
	return &out
}

type ProductInput struct {
	Name     string `json:"name"`
	Price    string `json:"price,omitempty"`
	ImageUrl string `json:"imageUrl,omitempty"`
}

type PlanBrand struct {
	Colors  []string `json:"colors,omitempty"`
	LogoUrl string   `json:"logo_url,omitempty"`
}

type PlanConstraints struct {
	MaxPages int `json:"max_pages,omitempty"`
}

// PlanInput is the planning request handed to the orchestrator.
type PlanInput struct {
	Prompt       string           `json:"prompt"`
	SiteTypeHint string           `json:"site_type,omitempty"`
	WebsiteType  string           `json:"website_type,omitempty"`
	Locale       string           `json:"locale,omitempty"`
	Brand        *PlanBrand       `json:"brand,omitempty"`
	Contact      *Contact         `json:"contact,omitempty"`
	Products     []ProductInput   `json:"products,omitempty"`
	Constraints  *PlanConstraints `json:"constraints,omitempty"`
}

// PlanOutput is what the orchestrator returns. Warnings and
// UnsupportedFeatures mirror the spec's own lists for convenience.
type PlanOutput struct {
	SiteSpec            *SiteSpec `json:"site_spec"`
	Warnings            []string  `json:"warnings"`
	UnsupportedFeatures []string  `json:"unsupported_features"`
}

// WizardInput is the structured business input collected by the wizard UI.
type WizardInput struct {
	BusinessName       string         `json:"businessName" binding:"required"`
	Category           string         `json:"category"`
	Description        string         `json:"description"`
	Goal               string         `json:"goal"`
	Tone               string         `json:"tone"`
	Locale             string         `json:"locale"`
	City               string         `json:"city"`
	Brand              Brand          `json:"brand"`
	Contact            Contact        `json:"contact"`
	Pages              []string       `json:"pages"` // page ids, e.g. "home", "about"
	Products           []ProductInput `json:"products,omitempty"`
	ProductCategories  string         `json:"productCategories,omitempty"`
	Services           string         `json:"services,omitempty"`
	IncludeProductPage bool           `json:"includeProductPage,omitempty"`
	Seed               *int64         `json:"seed,omitempty"`
}

type SeoProject struct {
	BusinessName string `json:"businessName"`
	Category     string `json:"category"`
}

type SeoPage struct {
	Slug        string   `json:"slug"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Keywords    []string `json:"keywords"`
}

// SeoPayload carries per-page metadata plus fixed best-practice recommendations.
type SeoPayload struct {
	Project         SeoProject `json:"project"`
	Pages           []SeoPage  `json:"pages"`
	Recommendations []string   `json:"recommendations"`
}
