package project

// Canned outline suggestions. These are static on purpose: outline
// suggestion never hits the generation backend.

var docxOutline = []string{
	"Introduction",
	"Background",
	"Problem Statement",
	"Analysis",
	"Solution",
	"Conclusion",
}

var pptxOutline = []string{
	"Title Slide",
	"Agenda",
	"Problem",
	"Approach",
	"Results",
	"Conclusion",
}

var projectOutline = []string{
	"Introduction",
	"Industry Background",
	"Market Analysis",
	"Future Trends",
	"Conclusion",
}

// SuggestOutline returns a doc-type-shaped outline for a document that may
// not exist yet. Anything that is not "docx" gets the slide-deck list.
func SuggestOutline(docType string) []string {
	if docType == "docx" {
		return append([]string(nil), docxOutline...)
	}
	return append([]string(nil), pptxOutline...)
}

// SuggestOutlineForProject returns the fixed per-project suggestion list.
// It ignores the project's current outline and content.
func SuggestOutlineForProject() []string {
	return append([]string(nil), projectOutline...)
}
