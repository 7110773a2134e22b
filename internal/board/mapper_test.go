package board

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"whisperboard/internal/recordstore"
)

func TestSubmissionProperties(t *testing.T) {
	sub := Submission{
		Content:     "hello",
		Fingerprint: "fp1",
		Username:    "calm-cloud-42",
	}

	before := time.Now().UTC()
	props := SubmissionProperties(sub)
	after := time.Now().UTC()

	assert.Equal(t, "hello", props["content"].PlainText())
	assert.Equal(t, "fp1", props["fingerprint"].PlainText())
	assert.Equal(t, "calm-cloud-42", props["username"].PlainText())

	require.NotNil(t, props["created_date"].Date)
	start, err := time.Parse(time.RFC3339, props["created_date"].Date.Start)
	require.NoError(t, err)
	assert.False(t, start.Before(before.Truncate(time.Second)))
	assert.False(t, start.After(after.Add(time.Second)))

	// Input is never mutated.
	assert.Equal(t, "", sub.CreatedDate)
}

func TestSubmissionPropertiesExplicitDate(t *testing.T) {
	sub := Submission{
		Content:     "hello",
		Fingerprint: "fp1",
		Username:    "calm-cloud-42",
		CreatedDate: "2024-05-01T09:30:00Z",
	}

	props := SubmissionProperties(sub)
	require.NotNil(t, props["created_date"].Date)
	assert.Equal(t, "2024-05-01T09:30:00Z", props["created_date"].Date.Start)
}

func TestMessageFromRecordFull(t *testing.T) {
	created := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	dec := recordstore.DecodedRecord{
		Kind: recordstore.RecordFull,
		Record: recordstore.Record{
			ID:          "rec-1",
			CreatedTime: created,
			Properties: recordstore.Properties{
				"content": {RichText: []recordstore.RichTextRun{{PlainText: "hi"}}},
			},
		},
	}

	msg := MessageFromRecord(dec)
	assert.Equal(t, "rec-1", msg.ID)
	assert.Equal(t, "hi", msg.Content)
	assert.Equal(t, created, msg.Timestamp)
	// No username property means an absent username, surfaced as the
	// empty string internally and omitted from JSON.
	assert.Equal(t, "", msg.Username)
}

func TestMessageFromRecordWithUsername(t *testing.T) {
	dec := recordstore.DecodedRecord{
		Kind: recordstore.RecordFull,
		Record: recordstore.Record{
			ID:          "rec-2",
			CreatedTime: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
			Properties: recordstore.Properties{
				"content":  {RichText: []recordstore.RichTextRun{{PlainText: "hi"}}},
				"username": {RichText: []recordstore.RichTextRun{{PlainText: "calm-cloud-42"}}},
			},
		},
	}

	msg := MessageFromRecord(dec)
	assert.Equal(t, "calm-cloud-42", msg.Username)
}

func TestMessageFromRecordZeroRuns(t *testing.T) {
	dec := recordstore.DecodedRecord{
		Kind: recordstore.RecordFull,
		Record: recordstore.Record{
			ID:          "rec-3",
			CreatedTime: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
			Properties: recordstore.Properties{
				"content": {RichText: []recordstore.RichTextRun{}},
			},
		},
	}

	msg := MessageFromRecord(dec)
	assert.Equal(t, "", msg.Content)
}

func TestMessageFromRecordPartial(t *testing.T) {
	created := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	dec := recordstore.DecodedRecord{
		Kind: recordstore.RecordPartial,
		Record: recordstore.Record{
			ID:          "rec-4",
			CreatedTime: created,
		},
	}

	msg := MessageFromRecord(dec)
	assert.Equal(t, "rec-4", msg.ID)
	assert.Equal(t, "", msg.Content)
	assert.Equal(t, "", msg.Username)
	assert.Equal(t, created, msg.Timestamp)
}

func TestMessageFromRecordUnknownDefaultsTimestamp(t *testing.T) {
	before := time.Now()
	msg := MessageFromRecord(recordstore.DecodedRecord{Kind: recordstore.RecordUnknown})
	after := time.Now()

	assert.Equal(t, "", msg.ID)
	assert.Equal(t, "", msg.Content)
	assert.False(t, msg.Timestamp.Before(before))
	assert.False(t, msg.Timestamp.After(after))
}
