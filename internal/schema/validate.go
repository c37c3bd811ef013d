// Package schema validates and normalizes site specifications. Validation
// reports every reason a candidate is unacceptable; normalization shapes a
// legal-but-loose candidate into the canonical form and is idempotent.
package schema

import (
	"fmt"

	"weblive_server/internal/sections"
	"weblive_server/internal/types"
)

var SiteTypes = []string{
	"agency", "restaurant", "clinic", "portfolio", "saas", "event",
	"real_estate", "education", "nonprofit", "local_service", "ecommerce", "blog",
}

var PrimaryGoals = []string{"calls", "leads", "bookings", "sales", "downloads"}

var Tones = []string{"professional", "friendly", "premium", "bold", "minimal", "playful"}

// DefaultMaxPages caps the page list when the caller does not configure one.
const DefaultMaxPages = 7

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

func packNameFor(spec *types.SiteSpec) string {
	if spec.TemplatePack != "" {
		return spec.TemplatePack
	}
	return sections.TemplatePackFor(spec.WebsiteType)
}

// ValidatePlan checks the structural vocabulary of a candidate: enums,
// slugs, and widget/variant pairs. Section props are not inspected, so raw
// planner output with props_seed payloads passes if its skeleton is legal.
func ValidatePlan(spec *types.SiteSpec) []string {
	var reasons []string
	if spec == nil {
		return []string{"candidate is empty"}
	}
	if !contains(SiteTypes, spec.SiteType) {
		reasons = append(reasons, fmt.Sprintf("site_type %q is not allowed", spec.SiteType))
	}
	if !contains(PrimaryGoals, spec.PrimaryGoal) {
		reasons = append(reasons, fmt.Sprintf("primary_goal %q is not allowed", spec.PrimaryGoal))
	}
	if !contains(Tones, spec.Tone) {
		reasons = append(reasons, fmt.Sprintf("tone %q is not allowed", spec.Tone))
	}
	if spec.Business.Name == "" {
		reasons = append(reasons, "business.name is required")
	}
	if spec.WebsiteType != "" && spec.WebsiteType != sections.TypeInfo && spec.WebsiteType != sections.TypeCatalog {
		reasons = append(reasons, fmt.Sprintf("website_type %q is not allowed", spec.WebsiteType))
	}
	if spec.TemplatePack != "" && spec.TemplatePack != sections.PackInfo && spec.TemplatePack != sections.PackCatalog {
		reasons = append(reasons, fmt.Sprintf("template_pack %q is not allowed", spec.TemplatePack))
	}
	// The two fields are redundant on purpose, so a contradiction means the
	// candidate's vocabulary is ambiguous and must be repaired, not guessed.
	validType := spec.WebsiteType == sections.TypeInfo || spec.WebsiteType == sections.TypeCatalog
	validPack := spec.TemplatePack == sections.PackInfo || spec.TemplatePack == sections.PackCatalog
	if validType && validPack && spec.TemplatePack != sections.TemplatePackFor(spec.WebsiteType) {
		reasons = append(reasons, fmt.Sprintf(
			"template_pack %q does not match website_type %q", spec.TemplatePack, spec.WebsiteType))
	}

	packName := packNameFor(spec)
	for _, page := range spec.Pages {
		if !sections.SlugAllowed(page.Slug) {
			reasons = append(reasons, fmt.Sprintf("page slug %q is not in the allow-list", page.Slug))
		}
		for _, section := range page.Sections {
			entry, err := sections.Lookup(packName, section.Widget)
			if err != nil {
				reasons = append(reasons, fmt.Sprintf("page %s: %v", page.Slug, err))
				continue
			}
			if !contains(entry.Variants, section.Variant) {
				reasons = append(reasons, fmt.Sprintf(
					"page %s: widget %q has no variant %q", page.Slug, section.Widget, section.Variant))
			}
		}
	}
	return reasons
}

// Validate checks a canonical specification in full: everything ValidatePlan
// covers plus slug uniqueness, layout anchors, and strict props schemas.
func Validate(spec *types.SiteSpec) []string {
	reasons := ValidatePlan(spec)
	if spec == nil {
		return reasons
	}

	packName := packNameFor(spec)
	seen := make(map[string]bool, len(spec.Pages))
	for _, page := range spec.Pages {
		if seen[page.Slug] {
			reasons = append(reasons, fmt.Sprintf("duplicate page slug %q", page.Slug))
		}
		seen[page.Slug] = true

		if len(page.Sections) > 0 && page.Sections[0].Widget != "header" {
			reasons = append(reasons, fmt.Sprintf("page %s: sections must begin with a header", page.Slug))
		}
		if page.Slug == "/" && len(page.Sections) > 0 && !containsWidget(page.Sections, "hero") {
			reasons = append(reasons, "home page must contain a hero section")
		}

		for _, section := range page.Sections {
			entry, err := sections.Lookup(packName, section.Widget)
			if err != nil {
				continue // already reported by ValidatePlan
			}
			props := section.Props
			if props == nil {
				props = map[string]any{}
			}
			for _, reason := range sections.ValidateProps(entry, props) {
				reasons = append(reasons, fmt.Sprintf("page %s: %s", page.Slug, reason))
			}
		}
	}
	return reasons
}

func containsWidget(list []types.Section, widget string) bool {
	for _, s := range list {
		if s.Widget == widget {
			return true
		}
	}
	return false
}
