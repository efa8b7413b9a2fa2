// Package export renders a project's title and content map into a
// downloadable DOCX or PPTX file. Exporters never look at history.
package export

import "sort"

// Section is one heading/body pair in export order.
type Section struct {
	Name string
	Text string
}

// Order arranges content for export: outline order first for sections that
// have text, then any orphaned content keys in sorted order. Whenever the
// content map was produced by bulk generation this is exactly the order the
// text was generated in.
func Order(outline []string, content map[string]string) []Section {
	out := make([]Section, 0, len(content))
	seen := make(map[string]struct{}, len(content))

	for _, name := range outline {
		if text, ok := content[name]; ok {
			out = append(out, Section{Name: name, Text: text})
			seen[name] = struct{}{}
		}
	}

	var orphans []string
	for name := range content {
		if _, ok := seen[name]; !ok {
			orphans = append(orphans, name)
		}
	}
	sort.Strings(orphans)
	for _, name := range orphans {
		out = append(out, Section{Name: name, Text: content[name]})
	}

	return out
}
