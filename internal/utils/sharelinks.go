package utils

import (
	"strings"

	"weblive_server/internal/types"
)

// ApplyShareLinks returns a copy of the spec whose navigation targets are
// rewritten for public viewing under /s/<slug>. Only internal hrefs are
// touched; external links and anchors pass through. Applying twice is a
// no-op.
func ApplyShareLinks(spec *types.SiteSpec, shareSlug string) *types.SiteSpec {
	out := spec.Clone()
	prefix := "/s/" + shareSlug
	for pi := range out.Pages {
		for si := range out.Pages[pi].Sections {
			section := &out.Pages[pi].Sections[si]
			if section.Props == nil {
				continue
			}
			switch section.Widget {
			case "header":
				rewriteLinkList(section.Props["nav"], prefix)
				rewriteLink(section.Props["cta"], prefix)
			case "footer":
				rewriteLinkList(section.Props["links"], prefix)
			case "hero":
				rewriteLink(section.Props["ctaPrimary"], prefix)
				rewriteLink(section.Props["ctaSecondary"], prefix)
			}
		}
	}
	return out
}

func rewriteLinkList(v any, prefix string) {
	list, ok := v.([]any)
	if !ok {
		return
	}
	for _, item := range list {
		rewriteLink(item, prefix)
	}
}

func rewriteLink(v any, prefix string) {
	link, ok := v.(map[string]any)
	if !ok {
		return
	}
	href, ok := link["href"].(string)
	if !ok {
		return
	}
	if !strings.HasPrefix(href, "/") || strings.HasPrefix(href, prefix) {
		return
	}
	if href == "/" {
		link["href"] = prefix
		return
	}
	link["href"] = prefix + href
}
