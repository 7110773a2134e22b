package recordstore

import (
	"fmt"
	"time"
)

// Record is one stored document: an opaque id plus typed properties.
// CreatedTime is the store's intrinsic creation metadata, distinct from
// any date property the writer set.
type Record struct {
	ID          string     `json:"id"`
	URL         string     `json:"url,omitempty"`
	CreatedTime time.Time  `json:"created_time,omitzero"`
	Properties  Properties `json:"properties,omitempty"`
}

type Properties map[string]Property

// Property is the store's tagged property container. Exactly one of
// the typed fields is set for a well-formed property.
type Property struct {
	RichText []RichTextRun `json:"rich_text,omitempty"`
	Date     *DateValue    `json:"date,omitempty"`
}

type RichTextRun struct {
	Text      *TextContent `json:"text,omitempty"`
	PlainText string       `json:"plain_text,omitempty"`
}

type TextContent struct {
	Content string `json:"content"`
}

type DateValue struct {
	Start string `json:"start"`
	End   string `json:"end,omitempty"`
}

// RichTextProperty wraps a literal string as a single-run rich-text
// property. The store handles its own escaping; no further treatment
// of the content is needed.
func RichTextProperty(value string) Property {
	return Property{
		RichText: []RichTextRun{
			{Text: &TextContent{Content: value}},
		},
	}
}

// DateProperty wraps an instant as a date-range start value.
func DateProperty(start string) Property {
	return Property{
		Date: &DateValue{Start: start},
	}
}

// PlainText extracts the first run's plain text, or "" when the
// property has no runs. Write payloads carry the text under Text
// rather than PlainText, so both are consulted.
func (p Property) PlainText() string {
	if len(p.RichText) == 0 {
		return ""
	}
	run := p.RichText[0]
	if run.PlainText != "" {
		return run.PlainText
	}
	if run.Text != nil {
		return run.Text.Content
	}
	return ""
}

type SortSpec struct {
	Timestamp string `json:"timestamp"`
	Direction string `json:"direction"`
}

// CreatedTimeDescending orders a query newest-first on the store's
// creation metadata. The feed relies on this ordering as-is.
func CreatedTimeDescending() []SortSpec {
	return []SortSpec{
		{Timestamp: "created_time", Direction: "descending"},
	}
}

type CreateResult struct {
	ID  string `json:"id"`
	URL string `json:"url,omitempty"`
}

// StoreError carries the store's own diagnostic for a failed call.
type StoreError struct {
	Status  int    `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("record store returned status %d (%s): %s", e.Status, e.Code, e.Message)
}
