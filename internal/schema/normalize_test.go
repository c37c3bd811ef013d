package schema

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weblive_server/internal/types"
)

func TestNormalizeFillsDefaults(t *testing.T) {
	spec := &types.SiteSpec{
		SiteType:    "clinic",
		PrimaryGoal: "bookings",
		Tone:        "professional",
		Business:    types.Business{Name: "Smile Dental"},
		Pages:       []types.Page{{Slug: "/"}},
	}
	out := Normalize(spec, 0)

	assert.Equal(t, "en", out.Locale)
	assert.Equal(t, "info", out.WebsiteType)
	assert.Equal(t, "INFO_PACK", out.TemplatePack)
	assert.NotEmpty(t, out.RecipeID)
	assert.Equal(t, "Home", out.Pages[0].NavLabel)

	assert.NotEmpty(t, out.Theme.PrimaryColor)
	assert.NotEmpty(t, out.Theme.FontFamily)
	assert.NotZero(t, out.Theme.Radius)
	assert.NotEmpty(t, out.Theme.ButtonStyle)
}

func TestNormalizeEcommerceDefaultsToCatalog(t *testing.T) {
	spec := &types.SiteSpec{
		SiteType:    "ecommerce",
		PrimaryGoal: "sales",
		Tone:        "bold",
		Business:    types.Business{Name: "Luna Ceramics"},
		Pages:       []types.Page{{Slug: "/"}},
	}
	out := Normalize(spec, 0)
	assert.Equal(t, "catalog", out.WebsiteType)
	assert.Equal(t, "CATALOG_PACK", out.TemplatePack)
}

func TestNormalizePackImpliesWebsiteType(t *testing.T) {
	spec := &types.SiteSpec{
		SiteType:     "agency",
		PrimaryGoal:  "leads",
		Tone:         "bold",
		TemplatePack: "CATALOG_PACK",
		Business:     types.Business{Name: "Luna Ceramics"},
		Pages:        []types.Page{{Slug: "/"}},
	}
	out := Normalize(spec, 0)
	assert.Equal(t, "catalog", out.WebsiteType)
	assert.Equal(t, "CATALOG_PACK", out.TemplatePack)
}

func TestNormalizeBrandOverridesPresetColors(t *testing.T) {
	spec := &types.SiteSpec{
		SiteType:    "agency",
		PrimaryGoal: "leads",
		Tone:        "premium",
		Business:    types.Business{Name: "Studio K"},
		Brand:       types.Brand{PrimaryColor: "#abcdef"},
		Pages:       []types.Page{{Slug: "/"}},
	}
	out := Normalize(spec, 0)
	assert.Equal(t, "#abcdef", out.Theme.PrimaryColor)
	assert.NotEmpty(t, out.Theme.SecondaryColor)
}

func TestNormalizeDedupesSlugsKeepingFirst(t *testing.T) {
	spec := &types.SiteSpec{
		SiteType:    "clinic",
		PrimaryGoal: "calls",
		Tone:        "friendly",
		Business:    types.Business{Name: "Smile Dental"},
		Pages: []types.Page{
			{Slug: "/", NavLabel: "Home"},
			{Slug: "/about", NavLabel: "First About"},
			{Slug: "/about", NavLabel: "Second About"},
			{Slug: "/contact", NavLabel: "Contact"},
		},
	}
	out := Normalize(spec, 0)

	require.Len(t, out.Pages, 3)
	assert.Equal(t, "First About", out.Pages[1].NavLabel)
}

func TestNormalizeClampsPageCount(t *testing.T) {
	spec := &types.SiteSpec{
		SiteType:    "agency",
		PrimaryGoal: "leads",
		Tone:        "bold",
		Business:    types.Business{Name: "Studio K"},
		Pages: []types.Page{
			{Slug: "/"}, {Slug: "/about"}, {Slug: "/services"},
			{Slug: "/work"}, {Slug: "/blog"}, {Slug: "/contact"},
		},
	}
	out := Normalize(spec, 3)

	require.Len(t, out.Pages, 3)
	assert.Equal(t, "/", out.Pages[0].Slug, "home survives clamping")
}

func TestNormalizeSynthesizesSkeletonWhenNoPages(t *testing.T) {
	info := Normalize(&types.SiteSpec{
		SiteType:    "clinic",
		PrimaryGoal: "calls",
		Tone:        "professional",
		Business:    types.Business{Name: "Smile Dental"},
	}, 0)

	slugs := func(spec *types.SiteSpec) []string {
		out := make([]string, 0, len(spec.Pages))
		for _, p := range spec.Pages {
			out = append(out, p.Slug)
		}
		return out
	}
	assert.Equal(t, []string{"/", "/about", "/services", "/contact"}, slugs(info))

	catalog := Normalize(&types.SiteSpec{
		SiteType:    "ecommerce",
		PrimaryGoal: "sales",
		Tone:        "bold",
		Business:    types.Business{Name: "Luna Ceramics"},
	}, 0)
	assert.Equal(t, []string{"/", "/about", "/products", "/contact"}, slugs(catalog))

	georgian := Normalize(&types.SiteSpec{
		SiteType:    "clinic",
		PrimaryGoal: "calls",
		Tone:        "professional",
		Locale:      "ka",
		Business:    types.Business{Name: "კლინიკა"},
	}, 0)
	assert.Equal(t, "მთავარი", georgian.Pages[0].NavLabel)
}

func TestNormalizeTruncatesPromptSummary(t *testing.T) {
	spec := &types.SiteSpec{
		SiteType:      "blog",
		PrimaryGoal:   "leads",
		Tone:          "minimal",
		PromptSummary: strings.Repeat("ა", 300),
		Business:      types.Business{Name: "Notes"},
		Pages:         []types.Page{{Slug: "/"}},
	}
	out := Normalize(spec, 0)
	assert.Len(t, []rune(out.PromptSummary), 240)
}

func TestNormalizeDedupesFeatureLists(t *testing.T) {
	spec := &types.SiteSpec{
		SiteType:            "saas",
		PrimaryGoal:         "downloads",
		Tone:                "minimal",
		Business:            types.Business{Name: "Toolkit"},
		Pages:               []types.Page{{Slug: "/"}},
		UnsupportedFeatures: []string{"checkout", "checkout", "login"},
		Warnings:            []string{"a", "a"},
	}
	out := Normalize(spec, 0)
	assert.Equal(t, []string{"checkout", "login"}, out.UnsupportedFeatures)
	assert.Equal(t, []string{"a"}, out.Warnings)
}

func TestNormalizeIdempotent(t *testing.T) {
	spec := &types.SiteSpec{
		SiteType:    "restaurant",
		PrimaryGoal: "bookings",
		Tone:        "friendly",
		Locale:      "ka",
		Business:    types.Business{Name: "Old Tbilisi"},
		Brand:       types.Brand{PrimaryColor: "#700000"},
		Pages: []types.Page{
			{Slug: "/", NavLabel: "მთავარი"},
			{Slug: "/menu"},
			{Slug: "/contact"},
		},
	}
	once := Normalize(spec, 5)
	twice := Normalize(once, 5)

	rawOnce, err := json.Marshal(once)
	require.NoError(t, err)
	rawTwice, err := json.Marshal(twice)
	require.NoError(t, err)
	assert.JSONEq(t, string(rawOnce), string(rawTwice))
}

func TestNormalizeDoesNotMutateInput(t *testing.T) {
	spec := &types.SiteSpec{
		SiteType:    "clinic",
		PrimaryGoal: "calls",
		Tone:        "professional",
		Business:    types.Business{Name: "Smile Dental"},
		Pages:       []types.Page{{Slug: "/"}, {Slug: "/"}},
	}
	before, _ := json.Marshal(spec)
	Normalize(spec, 0)
	after, _ := json.Marshal(spec)
	assert.Equal(t, string(before), string(after))
}
