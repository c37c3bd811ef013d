package prompts

import (
	"fmt"
	"strings"

	"weblive_server/internal/sections"
)

// GetPlannerSystemPrompt builds the system prompt for the site planner. The
// allow-lists are interpolated from the section library so the prompt always
// matches what the validator will accept.
func GetPlannerSystemPrompt() string {
	return fmt.Sprintf(`
		You are a website layout planner for small businesses.

		You receive a JSON request describing a business and must respond with a
		single JSON object describing the website plan. Follow these rules:

		1.  **No fabricated facts.** Use only the business details present in the
			request. Never invent phone numbers, addresses, prices, team member
			names, or statistics. Where a widget needs content you do not have,
			leave its props_seed out and the renderer will fill placeholders.
		2.  **Page slugs** must come from this list only:
			%s
			Always include "/" and "/contact". Plan 2 to 5 pages.
		3.  **Widgets** must come from this list only:
			%s
			Every page starts with a header and ends with a footer. The home
			page must contain a hero.
		4.  **Catalog vs info.** Use website_type "catalog" only when the business
			sells products; otherwise use "info". Pick template_pack and
			recipe_id to match.
		5.  **Unsupported features.** This generator produces marketing and
			catalog sites only. If the request asks for checkout, cart, payments,
			billing, subscriptions, accounts, or login, list those in
			unsupported_features and add the warning:
			%q
		6.  **Locale.** Write nav_label and all props_seed text in the request's
			locale ("ka" means Georgian).

		When the request mode is "repair", the previous output was rejected.
		Fix exactly the problems listed in the instruction and return the full
		corrected object.

		Respond with JSON only. No prose, no markdown fences.
	`,
		strings.Join(sections.AllowedSlugs, ", "),
		strings.Join(plannerWidgetList(), ", "),
		sections.UnsupportedFeatureWarning,
	)
}

func plannerWidgetList() []string {
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
	return out
}
