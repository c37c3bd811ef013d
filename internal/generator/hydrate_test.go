package generator

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weblive_server/internal/schema"
	"weblive_server/internal/types"
)

func planFixture() *types.SiteSpec {
	return &types.SiteSpec{
		PromptSummary: "Handmade ceramics studio",
		SiteType:      "ecommerce",
		PrimaryGoal:   "sales",
		Tone:          "premium",
		Locale:        "en",
		WebsiteType:   "catalog",
		TemplatePack:  "CATALOG_PACK",
		RecipeID:      "catalog-fast",
		Business:      types.Business{Name: "Luna Ceramics", Description: "Handmade ceramic tableware"},
		Pages: []types.Page{
			{
				Slug:     "/",
				NavLabel: "Home",
				Purpose:  "introduce the studio",
				Sections: []types.Section{
					{Widget: "header", Variant: "v2-search"},
					{
						Widget:  "hero",
						Variant: "v1-centered",
						PropsSeed: map[string]any{
							"headline":   "Ceramics with a story",
							"mood_board": "warm minimalism",
						},
					},
					{Widget: "products_grid", Variant: "grid_4"},
					{Widget: "footer", Variant: "v1-simple"},
				},
			},
			{Slug: "/products", NavLabel: "Products", Purpose: "full catalog"},
			{Slug: "/contact", NavLabel: "Contact", Purpose: "get in touch"},
		},
	}
}

func TestHydrateProducesValidSpec(t *testing.T) {
	spec := generatorNormalize(t, planFixture())
	out := Hydrate(spec, nil, 17)

	assert.Empty(t, schema.Validate(out))
	for _, page := range out.Pages {
		require.NotEmpty(t, page.Sections, "page %s left empty", page.Slug)
		for _, section := range page.Sections {
			assert.NotEmpty(t, section.ID)
			assert.NotNil(t, section.Props)
			assert.Nil(t, section.PropsSeed, "seed must be consumed")
		}
	}
}

func TestHydrateAppliesRecognizedSeedFields(t *testing.T) {
	spec := generatorNormalize(t, planFixture())
	out := Hydrate(spec, nil, 17)

	hero := findSection(t, out, "/", "hero")
	assert.Equal(t, "Ceramics with a story", hero.Props["headline"])
	_, leaked := hero.Props["mood_board"]
	assert.False(t, leaked, "unknown seed key must be dropped")
}

func TestHydrateDiscardsBrokenSeed(t *testing.T) {
	plan := planFixture()
	plan.Pages[0].Sections[1].PropsSeed = map[string]any{"headline": ""}
	out := Hydrate(generatorNormalize(t, plan), nil, 17)

	hero := findSection(t, out, "/", "hero")
	assert.Equal(t, "Luna Ceramics", hero.Props["headline"], "empty headline breaks the schema, defaults win")
}

func TestHydrateFillsEmptyPagesFromRecipe(t *testing.T) {
	out := Hydrate(generatorNormalize(t, planFixture()), nil, 23)

	products := findPage(t, out, "/products")
	require.NotEmpty(t, products.Sections)
	assert.Equal(t, "header", products.Sections[0].Widget)
	assert.Equal(t, "footer", products.Sections[len(products.Sections)-1].Widget)
}

func TestHydrateInsertsMissingAnchors(t *testing.T) {
	plan := planFixture()
	// Strip the header and hero the model was supposed to emit.
	plan.Pages[0].Sections = plan.Pages[0].Sections[2:]
	out := Hydrate(generatorNormalize(t, plan), nil, 5)

	home := findPage(t, out, "/")
	require.NotEmpty(t, home.Sections)
	assert.Equal(t, "header", home.Sections[0].Widget)
	assert.Equal(t, "hero", home.Sections[1].Widget)
}

func TestHydrateDoesNotMutateInput(t *testing.T) {
	spec := generatorNormalize(t, planFixture())
	before, err := json.Marshal(spec)
	require.NoError(t, err)

	Hydrate(spec, nil, 17)

	after, err := json.Marshal(spec)
	require.NoError(t, err)
	assert.Equal(t, string(before), string(after))
}

func TestHydrateDeterministic(t *testing.T) {
	a := Hydrate(generatorNormalize(t, planFixture()), nil, 99)
	b := Hydrate(generatorNormalize(t, planFixture()), nil, 99)
	rawA, _ := json.Marshal(a)
	rawB, _ := json.Marshal(b)
	assert.Equal(t, string(rawA), string(rawB))
}

func generatorNormalize(t *testing.T, spec *types.SiteSpec) *types.SiteSpec {
	t.Helper()
	require.Empty(t, schema.ValidatePlan(spec), "fixture must be a legal plan")
	return schema.Normalize(spec, 7)
}

func findPage(t *testing.T, spec *types.SiteSpec, slug string) types.Page {
	t.Helper()
	for _, page := range spec.Pages {
		if page.Slug == slug {
			return page
		}
	}
	t.Fatalf("page %s not found", slug)
	return types.Page{}
}

func findSection(t *testing.T, spec *types.SiteSpec, slug, widget string) types.Section {
	t.Helper()
	page := findPage(t, spec, slug)
	for _, section := range page.Sections {
		if section.Widget == widget {
			return section
		}
	}
	t.Fatalf("section %s not found on %s", widget, slug)
	return types.Section{}
}
