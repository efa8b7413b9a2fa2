package llm

import (
	"context"
	"fmt"
	"time"
)

// fallback produces placeholder output so the service stays usable and
// testable without network access. The shape is stable; only the timestamp
// varies.
type fallback struct {
	now func() time.Time
}

func NewFallback() Client {
	return &fallback{now: time.Now}
}

func (f *fallback) GenerateSection(_ context.Context, topic, section string) string {
	ts := f.now().UTC().Format("2006-01-02 15:04")
	return fmt.Sprintf(
		"(%s — placeholder) %s\n\nThis is a generated placeholder for %q on topic %q. "+
			"Set OPENAI_API_KEY to produce real model output.",
		ts, section, section, topic,
	)
}

func (f *fallback) Refine(_ context.Context, existing, instruction string) string {
	return fmt.Sprintf("%s\n\n[Refined with instruction: %s]", existing, instruction)
}
