package sections

import (
	"fmt"
	"sort"
)

// ValidateProps checks a props object against a widget's strict schema.
// Returned strings are human-readable failure reasons; empty means valid.
func ValidateProps(entry Entry, props map[string]any) []string {
	return validateObject(entry.Widget, entry.Props, props)
}

func validateObject(path string, fields map[string]Field, value map[string]any) []string {
	var reasons []string

	keys := make([]string, 0, len(value))
	for k := range value {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if _, ok := fields[k]; !ok {
			reasons = append(reasons, fmt.Sprintf("%s: unknown field %q", path, k))
		}
	}

	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		spec := fields[name]
		raw, present := value[name]
		fieldPath := path + "." + name
		if !present {
			if spec.Required {
				reasons = append(reasons, fmt.Sprintf("%s: required field missing", fieldPath))
			}
			continue
		}
		reasons = append(reasons, validateField(fieldPath, spec, raw)...)
	}
	return reasons
}

func validateField(path string, spec Field, raw any) []string {
	switch spec.Kind {
	case KindString:
		s, ok := raw.(string)
		if !ok {
			return []string{fmt.Sprintf("%s: expected string", path)}
		}
		if spec.Required && s == "" {
			return []string{fmt.Sprintf("%s: must not be empty", path)}
		}
		return nil
	case KindObject:
		m, ok := raw.(map[string]any)
		if !ok {
			return []string{fmt.Sprintf("%s: expected object", path)}
		}
		return validateObject(path, spec.Fields, m)
	case KindList:
		items, ok := raw.([]any)
		if !ok {
			return []string{fmt.Sprintf("%s: expected list", path)}
		}
		var reasons []string
		if spec.MinItems > 0 && len(items) < spec.MinItems {
			reasons = append(reasons, fmt.Sprintf("%s: needs at least %d items, got %d", path, spec.MinItems, len(items)))
		}
		if spec.MaxItems > 0 && len(items) > spec.MaxItems {
			reasons = append(reasons, fmt.Sprintf("%s: allows at most %d items, got %d", path, spec.MaxItems, len(items)))
		}
		for i, item := range items {
			reasons = append(reasons, validateField(fmt.Sprintf("%s[%d]", path, i), *spec.Elem, item)...)
		}
		return reasons
	}
	return nil
}

// NormalizeProps returns a fresh props object with declared defaults filled
// in for absent optional fields and unknown keys dropped. Running it on an
// already-normalized object returns an equal value.
func NormalizeProps(entry Entry, props map[string]any) map[string]any {
	return normalizeObject(entry.Props, props)
}

func normalizeObject(fields map[string]Field, value map[string]any) map[string]any {
	out := make(map[string]any, len(fields))
	for name, spec := range fields {
		raw, present := value[name]
		if !present {
			if spec.Default != nil {
				out[name] = defaultValue(spec)
			}
			continue
		}
		out[name] = normalizeField(spec, raw)
	}
	return out
}

func normalizeField(spec Field, raw any) any {
	switch spec.Kind {
	case KindObject:
		if m, ok := raw.(map[string]any); ok {
			return normalizeObject(spec.Fields, m)
		}
	case KindList:
		if items, ok := raw.([]any); ok {
			out := make([]any, 0, len(items))
			for _, item := range items {
				out = append(out, normalizeField(*spec.Elem, item))
			}
			return out
		}
	}
	return raw
}

func defaultValue(spec Field) any {
	if spec.Kind == KindList {
		return []any{}
	}
	return spec.Default
}
