package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weblive_server/internal/types"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Smile Dental", "smile-dental"},
		{"Luna  Ceramics!", "luna-ceramics"},
		{"Cafe 24/7", "cafe-24-7"},
		{"  --  ", ""},
		{"ქართული სახელი", ""},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, Slugify(tc.in), tc.in)
	}
}

func sharedSpec() *types.SiteSpec {
	return &types.SiteSpec{
		Business: types.Business{Name: "Smile Dental"},
		Pages: []types.Page{
			{Slug: "/", NavLabel: "Home", Sections: []types.Section{
				{Widget: "header", Variant: "v1-classic", Props: map[string]any{
					"brand": "Smile Dental",
					"nav": []any{
						map[string]any{"label": "Home", "href": "/"},
						map[string]any{"label": "Contact", "href": "/contact"},
					},
					"cta": map[string]any{"label": "Book Now", "href": "/contact"},
				}},
				{Widget: "hero", Variant: "v1-centered", Props: map[string]any{
					"headline":   "Welcome",
					"ctaPrimary": map[string]any{"label": "Book Now", "href": "/contact"},
				}},
				{Widget: "cta", Variant: "v1-banner", Props: map[string]any{
					"title": "External",
					"cta":   map[string]any{"label": "Instagram", "href": "https://instagram.com/smile"},
				}},
				{Widget: "footer", Variant: "v1-simple", Props: map[string]any{
					"brand": "Smile Dental",
					"links": []any{map[string]any{"label": "Home", "href": "/"}},
				}},
			}},
		},
	}
}

func TestApplyShareLinks(t *testing.T) {
	out := ApplyShareLinks(sharedSpec(), "smile-abc")

	header := out.Pages[0].Sections[0].Props
	nav := header["nav"].([]any)
	assert.Equal(t, "/s/smile-abc", nav[0].(map[string]any)["href"])
	assert.Equal(t, "/s/smile-abc/contact", nav[1].(map[string]any)["href"])
	assert.Equal(t, "/s/smile-abc/contact", header["cta"].(map[string]any)["href"])

	hero := out.Pages[0].Sections[1].Props
	assert.Equal(t, "/s/smile-abc/contact", hero["ctaPrimary"].(map[string]any)["href"])

	footer := out.Pages[0].Sections[3].Props
	assert.Equal(t, "/s/smile-abc", footer["links"].([]any)[0].(map[string]any)["href"])
}

func TestApplyShareLinksLeavesExternalAlone(t *testing.T) {
	out := ApplyShareLinks(sharedSpec(), "smile-abc")
	cta := out.Pages[0].Sections[2].Props["cta"].(map[string]any)
	assert.Equal(t, "https://instagram.com/smile", cta["href"])
}

func TestApplyShareLinksIdempotentAndNonMutating(t *testing.T) {
	original := sharedSpec()
	once := ApplyShareLinks(original, "smile-abc")
	twice := ApplyShareLinks(once, "smile-abc")

	assert.Equal(t, once, twice)

	nav := original.Pages[0].Sections[0].Props["nav"].([]any)
	assert.Equal(t, "/", nav[0].(map[string]any)["href"], "input spec must not be rewritten")
}

func TestSpecMarkdown(t *testing.T) {
	spec := sharedSpec()
	spec.SiteType = "clinic"
	spec.PrimaryGoal = "bookings"
	spec.Tone = "professional"
	spec.Locale = "en"
	spec.Theme = types.Theme{PrimaryColor: "#0f192b", SecondaryColor: "#7333f2", FontFamily: "Manrope", Radius: 24, ButtonStyle: "solid"}
	spec.Warnings = []string{"Used deterministic planner fallback."}

	seo := &types.SeoPayload{
		Pages:           []types.SeoPage{{Slug: "/", Title: "Smile Dental | Home"}},
		Recommendations: []string{"Keep titles short."},
	}

	md := SpecMarkdown(spec, seo)
	require.NotEmpty(t, md)
	assert.Contains(t, md, "# Smile Dental")
	assert.Contains(t, md, "### Home (`/`)")
	assert.Contains(t, md, "- hero (v1-centered)")
	assert.Contains(t, md, "Used deterministic planner fallback.")
	assert.Contains(t, md, "Smile Dental | Home")
	assert.Contains(t, md, "Keep titles short.")
}

func TestSpecMarkdownWithoutSeo(t *testing.T) {
	md := SpecMarkdown(sharedSpec(), nil)
	assert.NotContains(t, md, "## SEO")
}
