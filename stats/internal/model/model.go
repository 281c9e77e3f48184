package model

import "time"

// VisitorStats aggregates the loan events of one visitor.
type VisitorStats struct {
	VisitorIdentifier string    `json:"visitor_identifier" db:"visitor_identifier"`
	Loans             int       `json:"loans" db:"loans"`
	Returns           int       `json:"returns" db:"returns"`
	OpenLoans         int       `json:"open_loans" db:"open_loans"`
	LastActivity      time.Time `json:"last_activity" db:"last_activity"`
}
