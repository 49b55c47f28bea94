package domain

import "time"

// HashRecord is the golden hash recorded for a case.
type HashRecord struct {
	CaseName  string    `json:"case_name,omitzero"`
	Units     int       `json:"units,omitzero"`
	Hash      string    `json:"hash,omitzero"`
	Timestamp time.Time `json:"timestamp,omitzero"`
}
