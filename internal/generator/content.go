package generator

import (
	"fmt"
	"strings"

	"weblive_server/internal/types"
)

// siteContent is the business material default props are built from. Both
// generation paths reduce to this shape so their section content matches.
type siteContent struct {
	BusinessName string
	Description  string
	Locale       string
	Goal         string
	Contact      types.Contact
	Services     []string
	Categories   []string
	Products     []types.ProductInput
}

// placeholderImages is the fixed pool cycled through when the caller's
// product list is shorter than a section's capacity.
var placeholderImages = []string{
	"/placeholders/product-1.jpg",
	"/placeholders/product-2.jpg",
	"/placeholders/product-3.jpg",
	"/placeholders/product-4.jpg",
	"/placeholders/product-5.jpg",
	"/placeholders/product-6.jpg",
}

func tr(locale, en, ka string) string {
	if locale == "ka" {
		return ka
	}
	return en
}

func splitCSV(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if v := strings.TrimSpace(p); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func contentFromWizard(in types.WizardInput) siteContent {
	services := splitCSV(in.Services)
	if len(services) == 0 {
		services = splitCSV(in.ProductCategories)
	}
	return siteContent{
		BusinessName: in.BusinessName,
		Description:  in.Description,
		Locale:       in.Locale,
		Goal:         in.Goal,
		Contact:      in.Contact,
		Services:     services,
		Categories:   splitCSV(in.ProductCategories),
		Products:     in.Products,
	}
}

func contentFromSpec(spec *types.SiteSpec, products []types.ProductInput) siteContent {
	c := siteContent{
		BusinessName: spec.Business.Name,
		Description:  spec.Business.Description,
		Locale:       spec.Locale,
		Goal:         spec.PrimaryGoal,
		Products:     products,
	}
	if spec.Contact != nil {
		c.Contact = *spec.Contact
	}
	if c.BusinessName == "" {
		c.BusinessName = "My Business"
	}
	return c
}

// productAt returns the i-th product, synthesizing a placeholder with a
// cycled image when the caller supplied fewer products than needed.
func (c siteContent) productAt(i int) types.ProductInput {
	if i < len(c.Products) {
		p := c.Products[i]
		if p.ImageUrl == "" {
			p.ImageUrl = placeholderImages[i%len(placeholderImages)]
		}
		return p
	}
	return types.ProductInput{
		Name:     fmt.Sprintf("%s %d", tr(c.Locale, "Product", "პროდუქტი"), i+1),
		ImageUrl: placeholderImages[i%len(placeholderImages)],
	}
}

func (c siteContent) serviceAt(i int) string {
	if i < len(c.Services) {
		return c.Services[i]
	}
	return fmt.Sprintf("%s %d", tr(c.Locale, "Service", "სერვისი"), i+1)
}

func (c siteContent) categoryAt(i int) string {
	if i < len(c.Categories) {
		return c.Categories[i]
	}
	return fmt.Sprintf("%s %d", tr(c.Locale, "Category", "კატეგორია"), i+1)
}

func (c siteContent) ctaLabel() string {
	switch c.Goal {
	case "calls":
		return tr(c.Locale, "Call Us", "დაგვირეკე")
	case "bookings":
		return tr(c.Locale, "Book Now", "დაჯავშნე")
	case "sales":
		return tr(c.Locale, "Shop Now", "შეიძინე")
	case "downloads":
		return tr(c.Locale, "Download", "ჩამოტვირთე")
	default:
		return tr(c.Locale, "Get in Touch", "დაგვიკავშირდი")
	}
}

func (c siteContent) location() string {
	loc := strings.TrimSpace(c.Contact.Address + " " + c.Contact.City)
	if loc == "" {
		return tr(c.Locale, "Reach us through the contact page.", "დაგვიკავშირდი საკონტაქტო გვერდიდან.")
	}
	return loc
}

func (c siteContent) description() string {
	if c.Description != "" {
		return c.Description
	}
	return tr(c.Locale,
		fmt.Sprintf("%s delivers reliable service with a personal touch.", c.BusinessName),
		fmt.Sprintf("%s გთავაზობთ სანდო მომსახურებას.", c.BusinessName))
}

func linkMap(label, href string) map[string]any {
	return map[string]any{"label": label, "href": href}
}

func imageMap(src, alt string) map[string]any {
	return map[string]any{"src": src, "alt": alt}
}

// defaultProps builds a schema-valid props object for a widget from the
// business material. Nav and footer links carry temporary values that are
// replaced once the final page list is known.
func defaultProps(widget, variant string, c siteContent) map[string]any {
	switch widget {
	case "header":
		return map[string]any{
			"brand": c.BusinessName,
			"nav":   []any{linkMap(tr(c.Locale, "Home", "მთავარი"), "/")},
			"cta":   linkMap(c.ctaLabel(), "/contact"),
		}
	case "hero":
		props := map[string]any{
			"headline":    c.BusinessName,
			"subheadline": c.description(),
			"ctaPrimary":  linkMap(c.ctaLabel(), "/contact"),
		}
		if variant == "v4-metrics" {
			props["stats"] = []any{
				map[string]any{"label": tr(c.Locale, "Happy clients", "კმაყოფილი კლიენტი"), "value": "200+"},
				map[string]any{"label": tr(c.Locale, "Years active", "წლიანი გამოცდილება"), "value": "5"},
				map[string]any{"label": tr(c.Locale, "Projects", "პროექტი"), "value": "120"},
			}
		}
		if len(c.Products) > 0 || len(c.Categories) > 0 {
			items := make([]any, 0, 3)
			for i := 0; i < 3; i++ {
				p := c.productAt(i)
				items = append(items, map[string]any{
					"name": p.Name, "price": p.Price, "imageUrl": p.ImageUrl, "href": "/products",
				})
			}
			props["products"] = items
		}
		return props
	case "services":
		items := make([]any, 0, 3)
		for i := 0; i < 3; i++ {
			items = append(items, map[string]any{
				"title": c.serviceAt(i),
				"desc":  c.description(),
			})
		}
		return map[string]any{"title": tr(c.Locale, "Services", "სერვისები"), "items": items}
	case "features", "promo_strip":
		return map[string]any{
			"title": tr(c.Locale, "Why choose us", "რატომ ჩვენ"),
			"items": []any{
				map[string]any{"title": tr(c.Locale, "Fast response", "სწრაფი რეაგირება"), "desc": c.description()},
				map[string]any{"title": tr(c.Locale, "Fair pricing", "სამართლიანი ფასები"), "desc": c.description()},
				map[string]any{"title": tr(c.Locale, "Local expertise", "ლოკალური გამოცდილება"), "desc": c.description()},
			},
		}
	case "stats":
		return map[string]any{
			"title": tr(c.Locale, "By the numbers", "ციფრებში"),
			"items": []any{
				map[string]any{"label": tr(c.Locale, "Clients", "კლიენტი"), "value": "200+"},
				map[string]any{"label": tr(c.Locale, "Years", "წელი"), "value": "5"},
				map[string]any{"label": tr(c.Locale, "Rating", "შეფასება"), "value": "4.9"},
			},
		}
	case "testimonials":
		return map[string]any{
			"title": tr(c.Locale, "What clients say", "რას ამბობენ კლიენტები"),
			"items": []any{
				map[string]any{
					"quote": tr(c.Locale, "Great service, highly recommended.", "შესანიშნავი მომსახურება."),
					"name":  "Nino K.",
					"role":  tr(c.Locale, "Client", "კლიენტი"),
				},
				map[string]any{
					"quote": tr(c.Locale, "Professional and on time.", "პროფესიონალური და დროული."),
					"name":  "Giorgi M.",
					"role":  tr(c.Locale, "Client", "კლიენტი"),
				},
			},
		}
	case "steps":
		return map[string]any{
			"title": tr(c.Locale, "How it works", "როგორ მუშაობს"),
			"items": []any{
				map[string]any{"title": tr(c.Locale, "Reach out", "დაგვიკავშირდი"), "desc": tr(c.Locale, "Tell us what you need.", "გვითხარი რა გჭირდება.")},
				map[string]any{"title": tr(c.Locale, "Get a plan", "მიიღე გეგმა"), "desc": tr(c.Locale, "We prepare a clear offer.", "მოვამზადებთ მკაფიო შეთავაზებას.")},
				map[string]any{"title": tr(c.Locale, "See results", "ნახე შედეგი"), "desc": tr(c.Locale, "We deliver and follow up.", "ვასრულებთ და ვაგრძელებთ ზრუნვას.")},
			},
		}
	case "about":
		return map[string]any{
			"title": tr(c.Locale, "About us", "ჩვენ შესახებ"),
			"body":  c.description(),
		}
	case "faq":
		return map[string]any{
			"title": tr(c.Locale, "Frequently asked questions", "ხშირად დასმული კითხვები"),
			"items": []any{
				map[string]any{
					"q": tr(c.Locale, "How do I get started?", "როგორ დავიწყო?"),
					"a": tr(c.Locale, "Contact us and we will guide you through.", "დაგვიკავშირდი და ყველაფერს აგიხსნით."),
				},
				map[string]any{
					"q": tr(c.Locale, "Where are you located?", "სად მდებარეობთ?"),
					"a": c.location(),
				},
			},
		}
	case "team":
		return map[string]any{
			"title": tr(c.Locale, "Our team", "ჩვენი გუნდი"),
			"members": []any{
				map[string]any{
					"name": tr(c.Locale, "Team Member", "გუნდის წევრი"),
					"role": tr(c.Locale, "Founder", "დამფუძნებელი"),
					"bio":  c.description(),
				},
			},
		}
	case "cta":
		return map[string]any{
			"title": tr(c.Locale, "Ready to get started?", "მზად ხარ დასაწყებად?"),
			"cta":   linkMap(c.ctaLabel(), "/contact"),
		}
	case "footer":
		return map[string]any{
			"brand": c.BusinessName,
			"links": []any{linkMap(tr(c.Locale, "Home", "მთავარი"), "/")},
		}
	case "contact":
		return map[string]any{
			"title":   tr(c.Locale, "Contact", "კონტაქტი"),
			"phone":   c.Contact.Phone,
			"email":   c.Contact.Email,
			"address": strings.TrimSpace(c.Contact.Address + " " + c.Contact.City),
		}
	case "categories":
		count := len(c.Categories)
		if count < 3 {
			count = 3
		}
		if count > 12 {
			count = 12
		}
		items := make([]any, 0, count)
		for i := 0; i < count; i++ {
			items = append(items, map[string]any{
				"title": c.categoryAt(i),
				"image": imageMap(placeholderImages[i%len(placeholderImages)], c.categoryAt(i)),
				"href":  "/products",
			})
		}
		return map[string]any{"title": tr(c.Locale, "Categories", "კატეგორიები"), "items": items}
	case "products_grid", "products_carousel":
		count := len(c.Products)
		if count < 4 {
			count = 4
		}
		if count > 8 {
			count = 8
		}
		items := make([]any, 0, count)
		for i := 0; i < count; i++ {
			p := c.productAt(i)
			items = append(items, map[string]any{
				"title": p.Name,
				"price": p.Price,
				"image": imageMap(p.ImageUrl, p.Name),
				"href":  "/products",
			})
		}
		return map[string]any{"title": tr(c.Locale, "Products", "პროდუქტები"), "items": items}
	case "banners":
		return map[string]any{
			"title": tr(c.Locale, "Seasonal offers", "სეზონური შეთავაზებები"),
			"body":  c.description(),
			"items": []any{
				imageMap(placeholderImages[0], c.BusinessName),
				imageMap(placeholderImages[1], c.BusinessName),
			},
		}
	case "brands_strip":
		return map[string]any{
			"logos": []any{placeholderImages[2], placeholderImages[3], placeholderImages[4]},
		}
	case "newsletter":
		return map[string]any{
			"title": tr(c.Locale, "Stay in the loop", "იყავი საქმის კურსში"),
			"body":  tr(c.Locale, "New arrivals and offers, once a week.", "სიახლეები და შეთავაზებები, კვირაში ერთხელ."),
		}
	case "blog_teasers":
		return map[string]any{
			"title": tr(c.Locale, "From the blog", "ბლოგიდან"),
			"posts": []any{
				map[string]any{
					"title":   tr(c.Locale, "Our story", "ჩვენი ისტორია"),
					"date":    "2026-01-15",
					"excerpt": c.description(),
					"href":    "/blog",
				},
				map[string]any{
					"title":   tr(c.Locale, "What's new this season", "რა არის ახალი ამ სეზონზე"),
					"date":    "2026-02-20",
					"excerpt": c.description(),
					"href":    "/blog",
				},
			},
		}
	}
	return map[string]any{}
}
