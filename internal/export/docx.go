package export

import (
	"bytes"
	"strings"

	docx "github.com/fumiama/go-docx"
)

// Docx renders the document title as a top heading, then one heading and
// body paragraph per section.
func Docx(title string, sections []Section) ([]byte, error) {
	w := docx.New().WithDefaultTheme()

	h := w.AddParagraph()
	h.AddText(title).Size("36").Bold()

	for _, s := range sections {
		sh := w.AddParagraph()
		sh.AddText(s.Name).Size("28").Bold()

		// one paragraph per line keeps the source's line breaks
		for _, line := range strings.Split(s.Text, "\n") {
			if strings.TrimSpace(line) == "" {
				continue
			}
			w.AddParagraph().AddText(line)
		}
	}

	var buf bytes.Buffer
	if _, err := w.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
