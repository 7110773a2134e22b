package constants

import "time"

const (
	DefaultHTTPTimeout = 10 * time.Second
	ShutdownTimeout    = 5 * time.Second
)

const (
	// MaxContentLength caps a single submission's content.
	MaxContentLength = 1000

	// FingerprintSentinel is returned when no browser-like environment
	// is available, so pre-render code paths stay safe to call.
	FingerprintSentinel = "server-side"
)

const (
	DefaultStoreBaseURL = "https://api.notion.com"
	StoreVersion        = "2022-06-28"

	// Store property names on the submissions collection.
	PropContent     = "content"
	PropFingerprint = "fingerprint"
	PropUsername    = "username"
	PropCreatedDate = "created_date"
)

const (
	HTTPStatusOKMin = 200
	HTTPStatusOKMax = 300
)
