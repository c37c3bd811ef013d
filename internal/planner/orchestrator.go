// Package planner orchestrates site planning: it asks the AI planner for a
// layout, validates and repairs the answer, and falls back to the
// deterministic generator whenever the model cannot produce a usable plan.
// Callers always get a complete site spec; failure shows up as a warning,
// never as an empty result.
package planner

import (
	"context"
	"encoding/json"
	"hash/fnv"
	"log"
	"strings"

	"weblive_server/internal/ai"
	"weblive_server/internal/generator"
	"weblive_server/internal/schema"
	"weblive_server/internal/sections"
	"weblive_server/internal/types"
)

const (
	WarnFallbackBlank   = "Used deterministic planner fallback."
	WarnFallbackInvalid = "Planner fallback was used due to invalid model output."
	WarnFallbackOutage  = "AI planner unavailable, used deterministic fallback."
)

// ModelCaller is the slice of the AI planner the orchestrator needs. Tests
// substitute a fake; production wires *ai.Planner.
type ModelCaller interface {
	CallPlanner(ctx context.Context, input types.PlanInput, repair *ai.RepairRequest) (json.RawMessage, error)
}

type Orchestrator struct {
	caller   ModelCaller
	maxPages int
}

// NewOrchestrator builds an orchestrator. A nil caller is legal and routes
// every request straight to the deterministic fallback.
func NewOrchestrator(caller ModelCaller, maxPages int) *Orchestrator {
	if maxPages <= 0 {
		maxPages = schema.DefaultMaxPages
	}
	return &Orchestrator{caller: caller, maxPages: maxPages}
}

// PlanSite produces a complete site spec for the request. The model gets one
// planning call and at most one repair call; any failure after that ends in
// the deterministic fallback with a warning naming the cause.
func (o *Orchestrator) PlanSite(ctx context.Context, input types.PlanInput) (*types.PlanOutput, error) {
	if strings.TrimSpace(input.Prompt) == "" {
		return o.fallback(input, WarnFallbackBlank), nil
	}
	if o.caller == nil {
		return o.fallback(input, WarnFallbackOutage), nil
	}

	raw, err := o.caller.CallPlanner(ctx, input, nil)
	if err != nil {
		log.Printf("planner call failed, using deterministic fallback: %v", err)
		return o.fallback(input, WarnFallbackOutage), nil
	}

	candidate, reasons := decodeCandidate(raw)
	if len(reasons) > 0 {
		repair := &ai.RepairRequest{
			InvalidPayload: raw,
			Instruction:    "The previous plan was rejected. Fix these problems and return the full corrected plan: " + strings.Join(reasons, "; "),
		}
		raw, err = o.caller.CallPlanner(ctx, input, repair)
		if err != nil {
			log.Printf("planner repair call failed, using deterministic fallback: %v", err)
			return o.fallback(input, WarnFallbackOutage), nil
		}
		candidate, reasons = decodeCandidate(raw)
		if len(reasons) > 0 {
			log.Printf("planner output still invalid after repair: %s", strings.Join(reasons, "; "))
			return o.fallback(input, WarnFallbackInvalid), nil
		}
	}

	return o.finishPlan(candidate, input), nil
}

// decodeCandidate parses raw model output and checks its structural
// vocabulary. Returned reasons are written for the model to act on.
func decodeCandidate(raw json.RawMessage) (*types.SiteSpec, []string) {
	var candidate types.SiteSpec
	if err := json.Unmarshal(raw, &candidate); err != nil {
		return nil, []string{"output was not a valid JSON object: " + err.Error()}
	}
	if reasons := schema.ValidatePlan(&candidate); len(reasons) > 0 {
		return nil, reasons
	}
	return &candidate, nil
}

// finishPlan turns an accepted candidate into the canonical output:
// normalize, hydrate section props deterministically, then layer the
// feature scan over whatever the model already flagged.
func (o *Orchestrator) finishPlan(candidate *types.SiteSpec, input types.PlanInput) *types.PlanOutput {
	spec := schema.Normalize(candidate, o.maxPages)
	spec = generator.Hydrate(spec, input.Products, fallbackSeed(input.Prompt, spec.Locale))

	if len(spec.RequestedFeatures) == 0 {
		spec.RequestedFeatures = requestedFeatures(input.Prompt)
	}
	applyFeatureScan(spec, input.Prompt)

	return &types.PlanOutput{
		SiteSpec:            spec,
		Warnings:            spec.Warnings,
		UnsupportedFeatures: spec.UnsupportedFeatures,
	}
}

// fallback builds the site with the deterministic generator. The prompt is
// reduced to wizard fields with keyword heuristics, and the seed is derived
// from the prompt so the same request always falls back to the same site.
func (o *Orchestrator) fallback(input types.PlanInput, warning string) *types.PlanOutput {
	prompt := strings.TrimSpace(input.Prompt)
	if prompt == "" {
		prompt = "Business website"
	}
	locale := input.Locale
	if locale == "" {
		locale = "en"
	}

	category := categoryFor(input, prompt)
	wiz := wizardFromPlan(input, prompt, locale, category)
	spec, _ := generator.Generate(wiz, fallbackSeed(prompt, locale))

	spec.RequestedFeatures = requestedFeatures(prompt)
	applyFeatureScan(spec, prompt)
	spec.Warnings = appendUnique(spec.Warnings, warning)

	return &types.PlanOutput{
		SiteSpec:            spec,
		Warnings:            spec.Warnings,
		UnsupportedFeatures: spec.UnsupportedFeatures,
	}
}

var siteTypeCategories = map[string]string{
	"restaurant":    "restaurant",
	"clinic":        "clinic",
	"ecommerce":     "ecommerce",
	"agency":        "agency",
	"saas":          "agency",
	"portfolio":     "agency",
	"local_service": "generic",
}

var categoryKeywords = []struct {
	category string
	words    []string
}{
	{"restaurant", []string{"restaurant", "cafe", "menu", "bakery", "bistro"}},
	{"clinic", []string{"clinic", "dental", "doctor", "medical", "health"}},
	{"lawyer", []string{"law", "attorney", "legal", "notary"}},
	{"ecommerce", []string{"product", "catalog", "shop", "store", "collection", "sku", "ecommerce"}},
	{"agency", []string{"agency", "marketing", "studio", "design"}},
}

// categoryFor maps a planning request onto a wizard category. An explicit
// site type hint wins over prompt keywords.
func categoryFor(input types.PlanInput, prompt string) string {
	if input.SiteTypeHint != "" {
		if category, ok := siteTypeCategories[input.SiteTypeHint]; ok {
			return category
		}
	}
	if input.WebsiteType == sections.TypeCatalog {
		return "ecommerce"
	}
	lower := strings.ToLower(prompt)
	for _, ck := range categoryKeywords {
		for _, word := range ck.words {
			if strings.Contains(lower, word) {
				return ck.category
			}
		}
	}
	return "generic"
}

func wizardFromPlan(input types.PlanInput, prompt, locale, category string) types.WizardInput {
	wiz := types.WizardInput{
		BusinessName: businessNameFrom(prompt, locale),
		Category:     category,
		Description:  prompt,
		Goal:         "leads",
		Locale:       locale,
		Pages:        pickPages(category, clampPages(input.Constraints)),
		Products:     input.Products,
	}
	if category == "ecommerce" {
		wiz.Goal = "sell"
	}
	if input.Brand != nil {
		if len(input.Brand.Colors) > 0 {
			wiz.Brand.PrimaryColor = input.Brand.Colors[0]
		}
		if len(input.Brand.Colors) > 1 {
			wiz.Brand.SecondaryColor = input.Brand.Colors[1]
		}
		wiz.Brand.LogoUrl = input.Brand.LogoUrl
	}
	if input.Contact != nil {
		wiz.Contact = *input.Contact
		wiz.City = input.Contact.City
	}
	return wiz
}

// clampPages bounds the requested page count to 2..5, defaulting to 4.
func clampPages(constraints *types.PlanConstraints) int {
	if constraints == nil || constraints.MaxPages == 0 {
		return 4
	}
	n := constraints.MaxPages
	if n < 2 {
		return 2
	}
	if n > 5 {
		return 5
	}
	return n
}

// pickPages selects up to maxPages page ids for the category, always keeping
// the home and contact pages.
func pickPages(category string, maxPages int) []string {
	pages := sections.CategoryPages(category)
	ids := make([]string, 0, len(pages))
	for _, p := range pages {
		ids = append(ids, p.ID)
	}
	if len(ids) <= maxPages {
		return ids
	}
	out := ids[:maxPages-1]
	if !containsString(out, "contact") {
		out = append(out, "contact")
	} else {
		out = ids[:maxPages]
	}
	return out
}

func businessNameFrom(prompt, locale string) string {
	words := strings.Fields(prompt)
	if len(words) > 4 {
		words = words[:4]
	}
	name := strings.Join(words, " ")
	name = strings.Trim(name, ".,;:!?")
	if name == "" {
		if locale == "ka" {
			return "თქვენი ბიზნესი"
		}
		return "Your Business"
	}
	return name
}

// requestedFeatures splits the prompt into short feature phrases, capped so
// a rambling prompt cannot flood the spec.
func requestedFeatures(prompt string) []string {
	parts := strings.FieldsFunc(prompt, func(r rune) bool {
		return r == ',' || r == '.' || r == ';' || r == '\n'
	})
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		out = append(out, part)
		if len(out) == 12 {
			break
		}
	}
	return out
}

// applyFeatureScan flags transactional asks the generator cannot serve. The
// scan runs even when the model already populated the lists, as a backstop.
func applyFeatureScan(spec *types.SiteSpec, prompt string) {
	lower := strings.ToLower(prompt)
	for _, keyword := range sections.ForbiddenCatalogFeatureKeywords {
		if strings.Contains(lower, keyword) {
			spec.UnsupportedFeatures = appendUnique(spec.UnsupportedFeatures, keyword)
		}
	}
	if len(spec.UnsupportedFeatures) > 0 {
		spec.Warnings = appendUnique(spec.Warnings, sections.UnsupportedFeatureWarning)
	}
	if spec.UnsupportedFeatures == nil {
		spec.UnsupportedFeatures = []string{}
	}
	if spec.Warnings == nil {
		spec.Warnings = []string{}
	}
}

func fallbackSeed(prompt, locale string) int64 {
	h := fnv.New64a()
	h.Write([]byte(prompt))
	h.Write([]byte("|"))
	h.Write([]byte(locale))
	return int64(h.Sum64())
}

func appendUnique(list []string, v string) []string {
	for _, item := range list {
		if item == v {
			return list
		}
	}
	return append(list, v)
}

func containsString(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
