package utils

import (
	"fmt"
	"strings"

	"weblive_server/internal/types"
)

// SpecMarkdown renders a human-readable export of a generated site. The
// output is meant for handing off to a developer or pasting into a doc, not
// for machine parsing.
func SpecMarkdown(spec *types.SiteSpec, seo *types.SeoPayload) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", spec.Business.Name)
	if spec.Business.Description != "" {
		fmt.Fprintf(&b, "%s\n\n", spec.Business.Description)
	}
	fmt.Fprintf(&b, "- Site type: %s\n", spec.SiteType)
	fmt.Fprintf(&b, "- Primary goal: %s\n", spec.PrimaryGoal)
	fmt.Fprintf(&b, "- Tone: %s\n", spec.Tone)
	fmt.Fprintf(&b, "- Locale: %s\n\n", spec.Locale)

	b.WriteString("## Theme\n\n")
	fmt.Fprintf(&b, "- Primary color: %s\n", spec.Theme.PrimaryColor)
	fmt.Fprintf(&b, "- Secondary color: %s\n", spec.Theme.SecondaryColor)
	fmt.Fprintf(&b, "- Font: %s\n", spec.Theme.FontFamily)
	fmt.Fprintf(&b, "- Corner radius: %dpx\n", spec.Theme.Radius)
	fmt.Fprintf(&b, "- Buttons: %s\n\n", spec.Theme.ButtonStyle)

	b.WriteString("## Pages\n\n")
	for _, page := range spec.Pages {
		fmt.Fprintf(&b, "### %s (`%s`)\n\n", page.NavLabel, page.Slug)
		if page.Purpose != "" {
			fmt.Fprintf(&b, "%s\n\n", page.Purpose)
		}
		for _, section := range page.Sections {
			fmt.Fprintf(&b, "- %s (%s)\n", section.Widget, section.Variant)
		}
		b.WriteString("\n")
	}

	if len(spec.Warnings) > 0 {
		b.WriteString("## Warnings\n\n")
		for _, w := range spec.Warnings {
			fmt.Fprintf(&b, "- %s\n", w)
		}
		b.WriteString("\n")
	}

	if seo != nil {
		b.WriteString("## SEO\n\n")
		for _, page := range seo.Pages {
			fmt.Fprintf(&b, "- `%s`: %s\n", page.Slug, page.Title)
		}
		if len(seo.Recommendations) > 0 {
			b.WriteString("\n")
			for _, rec := range seo.Recommendations {
				fmt.Fprintf(&b, "- %s\n", rec)
			}
		}
		b.WriteString("\n")
	}

	return b.String()
}
