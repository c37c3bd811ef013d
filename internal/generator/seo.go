package generator

import (
	"fmt"

	"weblive_server/internal/types"
)

var categoryLabelsKa = map[string]string{
	"clinic":     "კლინიკა",
	"lawyer":     "იურისტი",
	"ecommerce":  "ელ-კომერცია",
	"restaurant": "რესტორანი",
	"agency":     "სააგენტო",
	"generic":    "ზოგადი",
}

var categoryLabelsEn = map[string]string{
	"clinic":     "clinic",
	"lawyer":     "law firm",
	"ecommerce":  "online store",
	"restaurant": "restaurant",
	"agency":     "agency",
	"generic":    "business",
}

var goalLabelsKa = map[string]string{
	"calls":    "ზარები",
	"leads":    "ლიდები",
	"bookings": "დაჯავშნა",
	"sell":     "გაყიდვა",
	"visit":    "ვიზიტები",
}

var goalLabelsEn = map[string]string{
	"calls":    "calls",
	"leads":    "leads",
	"bookings": "bookings",
	"sell":     "sales",
	"visit":    "visits",
}

// seoRecommendations are fixed best-practice strings, not content-derived.
var seoRecommendationsKa = []string{
	"დაადასტურე, რომ თითოეულ გვერდს აქვს უნიკალური სათაური (60 სიმბოლომდე).",
	"დაამატე ლოკაციაზე ორიენტირებული საკვანძო სიტყვები ლოკალური ხილვადობისთვის.",
	"გამოიყენე აღწერითი alt ტექსტები ყველა სურათზე, ლოგოს ჩათვლით.",
	"meta აღწერები შეინარჩუნე 120–160 სიმბოლოს ფარგლებში.",
}

var seoRecommendationsEn = []string{
	"Make sure every page has a unique title under 60 characters.",
	"Add location-oriented keywords for local visibility.",
	"Use descriptive alt text on every image, including the logo.",
	"Keep meta descriptions between 120 and 160 characters.",
}

func label(table map[string]string, key, fallback string) string {
	if v, ok := table[key]; ok {
		return v
	}
	return fallback
}

func buildSeoPayload(in types.WizardInput, spec *types.SiteSpec) *types.SeoPayload {
	var categoryLabel, goalLabel string
	var keywords []string
	var recommendations []string
	if in.Locale == "ka" {
		categoryLabel = label(categoryLabelsKa, in.Category, "ბიზნესი")
		goalLabel = label(goalLabelsKa, in.Goal, "ზრდა")
		keywords = []string{categoryLabel, goalLabel, "ლოკალური", "სერვისები"}
		recommendations = seoRecommendationsKa
	} else {
		categoryLabel = label(categoryLabelsEn, in.Category, "business")
		goalLabel = label(goalLabelsEn, in.Goal, "growth")
		keywords = []string{categoryLabel, goalLabel, "local", "services"}
		recommendations = seoRecommendationsEn
	}

	pages := make([]types.SeoPage, 0, len(spec.Pages))
	for _, page := range spec.Pages {
		pages = append(pages, types.SeoPage{
			Slug:        page.Slug,
			Title:       fmt.Sprintf("%s | %s", in.BusinessName, page.NavLabel),
			Description: in.Description,
			Keywords:    append([]string(nil), keywords...),
		})
	}

	return &types.SeoPayload{
		Project: types.SeoProject{
			BusinessName: in.BusinessName,
			Category:     in.Category,
		},
		Pages:           pages,
		Recommendations: append([]string(nil), recommendations...),
	}
}
