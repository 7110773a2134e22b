package board

import "time"

// Message is the read-side view of one stored record. The service
// layer holds it transiently for a single request/response cycle; the
// external store owns the data.
type Message struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
	Username  string    `json:"username,omitempty"`
}

// Submission is the validated input to a create operation. It is not
// persisted as its own entity; it exists only for the duration of one
// write request. The fingerprint is a write-time provenance tag: it is
// required on write but never surfaced back to readers, and nothing
// reads it today (no dedup, no rate limiting).
type Submission struct {
	Content     string `json:"content"`
	Fingerprint string `json:"fingerprint"`
	Username    string `json:"username"`
	CreatedDate string `json:"created_date,omitempty"`
}

type ListResponse struct {
	Messages []Message `json:"messages"`
}

type CreateResult struct {
	ID  string `json:"id"`
	URL string `json:"url,omitempty"`
}
