package recordstore

import (
	"encoding/json"
)

type RecordKind int

const (
	// RecordUnknown marks a result element that could not be decoded
	// into a record at all.
	RecordUnknown RecordKind = iota
	// RecordPartial marks a reference-only record with no properties
	// sub-structure, as returned by some query modes.
	RecordPartial
	// RecordFull marks a record safe for field extraction.
	RecordFull
)

// DecodedRecord is the result of classifying one raw query result.
// Only Full records proceed to field extraction; Partial and Unknown
// degrade to defaults deterministically instead of failing the batch.
type DecodedRecord struct {
	Kind   RecordKind
	Record Record
}

// DecodeRecord classifies a raw store result. Shape problems are not
// errors: one malformed record must never fail a whole list response.
func DecodeRecord(raw json.RawMessage) DecodedRecord {
	var rec Record
	if err := json.Unmarshal(raw, &rec); err != nil {
		return DecodedRecord{Kind: RecordUnknown}
	}
	if rec.ID == "" {
		return DecodedRecord{Kind: RecordUnknown}
	}
	if rec.Properties == nil {
		return DecodedRecord{Kind: RecordPartial, Record: rec}
	}
	return DecodedRecord{Kind: RecordFull, Record: rec}
}
