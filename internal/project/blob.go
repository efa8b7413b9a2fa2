package project

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// The outline, content, and history columns are JSON stored as text. These
// types parse and validate the stored value on every read; a malformed blob
// is a scan error, never silently passed through.

// OutlineList is the ordered list of section names to generate.
type OutlineList []string

func (o OutlineList) Value() (driver.Value, error) {
	if o == nil {
		return "[]", nil
	}
	return marshalBlob(o)
}

func (o *OutlineList) Scan(src any) error {
	return scanBlob(src, o, func() { *o = OutlineList{} })
}

// ContentMap maps a section name to its current generated text.
type ContentMap map[string]string

func (c ContentMap) Value() (driver.Value, error) {
	if c == nil {
		return "{}", nil
	}
	return marshalBlob(c)
}

func (c *ContentMap) Scan(src any) error {
	return scanBlob(src, c, func() { *c = ContentMap{} })
}

// HistoryMap maps a section name to its append-only event list.
type HistoryMap map[string][]Event

func (h HistoryMap) Value() (driver.Value, error) {
	if h == nil {
		return "{}", nil
	}
	return marshalBlob(h)
}

func (h *HistoryMap) Scan(src any) error {
	return scanBlob(src, h, func() { *h = HistoryMap{} })
}

// Event is one history record for a section. Exactly one kind of event is
// populated at a time; absent fields are omitted from the serialized form so
// a refinement looks like {old_text,new_text,instruction}, a feedback marker
// like {feedback}, and a note like {comment}.
type Event struct {
	OldText     *string `json:"old_text,omitempty"`
	NewText     *string `json:"new_text,omitempty"`
	Instruction *string `json:"instruction,omitempty"`
	Feedback    *string `json:"feedback,omitempty"`
	Comment     *string `json:"comment,omitempty"`
}

func RefinementEvent(oldText, newText, instruction string) Event {
	return Event{OldText: &oldText, NewText: &newText, Instruction: &instruction}
}

func FeedbackEvent(feedback string) Event {
	return Event{Feedback: &feedback}
}

func CommentEvent(comment string) Event {
	return Event{Comment: &comment}
}

func marshalBlob(v any) (driver.Value, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func scanBlob(src any, dst any, reset func()) error {
	var raw []byte
	switch s := src.(type) {
	case nil:
		reset()
		return nil
	case string:
		raw = []byte(s)
	case []byte:
		raw = s
	default:
		return fmt.Errorf("unsupported blob type %T", src)
	}
	if len(raw) == 0 {
		reset()
		return nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("malformed blob: %w", err)
	}
	return nil
}
