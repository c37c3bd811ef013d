package sections

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecipesReferenceValidEntries(t *testing.T) {
	for _, websiteType := range []string{TypeInfo, TypeCatalog} {
		packName := TemplatePackFor(websiteType)
		for _, recipe := range RecipesFor(websiteType) {
			require.NotEmpty(t, recipe.Sections, "recipe %s has no sections", recipe.ID)
			for _, pair := range recipe.Sections {
				widget, variant := SplitPair(pair)
				entry, err := Lookup(packName, widget)
				require.NoError(t, err, "recipe %s references %s", recipe.ID, pair)
				assert.Contains(t, entry.Variants, variant, "recipe %s pair %s", recipe.ID, pair)
			}
		}
	}
}

func TestRecipesStartWithHeaderAndEndWithFooter(t *testing.T) {
	for _, websiteType := range []string{TypeInfo, TypeCatalog} {
		for _, recipe := range RecipesFor(websiteType) {
			first, _ := SplitPair(recipe.Sections[0])
			last, _ := SplitPair(recipe.Sections[len(recipe.Sections)-1])
			assert.Equal(t, "header", first, "recipe %s", recipe.ID)
			assert.Equal(t, "footer", last, "recipe %s", recipe.ID)

			hasHero := false
			for _, pair := range recipe.Sections {
				if w, _ := SplitPair(pair); w == "hero" {
					hasHero = true
				}
			}
			assert.True(t, hasHero, "recipe %s has no hero", recipe.ID)
		}
	}
}

func TestOptionalExtrasResolve(t *testing.T) {
	for _, websiteType := range []string{TypeInfo, TypeCatalog} {
		packName := TemplatePackFor(websiteType)
		for _, pair := range OptionalExtras(websiteType) {
			widget, variant := SplitPair(pair)
			entry, err := Lookup(packName, widget)
			require.NoError(t, err, "extra %s", pair)
			assert.Contains(t, entry.Variants, variant, "extra %s", pair)
		}
	}
}

func TestCategoryPageSlugsAreAllowed(t *testing.T) {
	for category := range map[string]bool{"clinic": true, "lawyer": true, "ecommerce": true, "restaurant": true, "agency": true, "generic": true} {
		for _, page := range CategoryPages(category) {
			assert.True(t, SlugAllowed(page.Slug), "category %s page %s", category, page.Slug)
			assert.NotEmpty(t, page.NameEn)
			assert.NotEmpty(t, page.NameKa)
		}
	}
}

func TestCategoryPagesFallsBackToGeneric(t *testing.T) {
	assert.Equal(t, CategoryPages("generic"), CategoryPages("florist"))
	assert.False(t, KnownCategory("florist"))
	assert.True(t, KnownCategory("restaurant"))
}

func TestLookupUnknown(t *testing.T) {
	_, err := Lookup(PackInfo, "products_grid")
	assert.Error(t, err, "catalog widget must not leak into the info pack")

	_, err = Lookup("NO_SUCH_PACK", "header")
	assert.Error(t, err)

	_, err = Lookup(PackCatalog, "products_grid")
	assert.NoError(t, err)
}

func TestStylePresets(t *testing.T) {
	require.ElementsMatch(t, []string{"dark-neon", "light-commerce", "premium-minimal"}, StylePresetIDs())
	for id, theme := range StylePresets {
		assert.NotEmpty(t, theme.PrimaryColor, id)
		assert.NotEmpty(t, theme.SecondaryColor, id)
		assert.NotEmpty(t, theme.FontFamily, id)
		assert.NotZero(t, theme.Radius, id)
		assert.NotEmpty(t, theme.ButtonStyle, id)
	}
	assert.Equal(t, "light-commerce", DefaultPreset(TypeCatalog))
	assert.Equal(t, "dark-neon", DefaultPreset(TypeInfo))
}

func TestPackTopology(t *testing.T) {
	info, err := Pack(PackInfo)
	require.NoError(t, err)
	catalog, err := Pack(PackCatalog)
	require.NoError(t, err)

	for _, shared := range []string{"header", "hero", "cta", "footer", "contact"} {
		assert.Contains(t, info, shared)
		assert.Contains(t, catalog, shared)
	}
	assert.NotContains(t, info, "products_grid")
	assert.NotContains(t, catalog, "team")
}
