package board

import (
	"time"

	"whisperboard/internal/constants"
	"whisperboard/internal/recordstore"
)

// SubmissionProperties maps a validated submission onto the store's
// property schema: each string field becomes a single-run rich-text
// property and the creation date becomes a date-range start value,
// defaulting to the current instant when the caller did not supply
// one. The submission itself is never mutated.
func SubmissionProperties(sub Submission) recordstore.Properties {
	createdDate := sub.CreatedDate
	if createdDate == "" {
		createdDate = time.Now().UTC().Format(time.RFC3339)
	}

	return recordstore.Properties{
		constants.PropContent:     recordstore.RichTextProperty(sub.Content),
		constants.PropFingerprint: recordstore.RichTextProperty(sub.Fingerprint),
		constants.PropUsername:    recordstore.RichTextProperty(sub.Username),
		constants.PropCreatedDate: recordstore.DateProperty(createdDate),
	}
}

// MessageFromRecord reverses the translation for one decoded record.
// Only Full records yield field values; Partial and Unknown records
// degrade to an all-defaults message so one bad record never fails a
// list response. The timestamp comes from the record's intrinsic
// creation metadata, not from the created_date property.
func MessageFromRecord(dec recordstore.DecodedRecord) Message {
	msg := Message{
		ID:        dec.Record.ID,
		Timestamp: dec.Record.CreatedTime,
	}
	if msg.Timestamp.IsZero() {
		msg.Timestamp = time.Now()
	}

	if dec.Kind != recordstore.RecordFull {
		return msg
	}

	msg.Content = dec.Record.Properties[constants.PropContent].PlainText()
	// An empty username is rendered as absent at the JSON boundary via
	// omitempty; the stored value makes no such distinction.
	msg.Username = dec.Record.Properties[constants.PropUsername].PlainText()

	return msg
}
