package model

import "time"

// LendRequest and ReturnRequest are checked by the service so that every violation,
// including lookups, is reported in one response.
type LendRequest struct {
	BookCopyIdentifier string     `json:"book_copy_identifier"`
	VisitorIdentifier  string     `json:"visitor_identifier"`
	DueDate            *time.Time `json:"due_date"`
}

type ReturnRequest struct {
	BookCopyIdentifier string     `json:"book_copy_identifier"`
	BookCopyCondition  *Condition `json:"book_copy_condition"`
}

// Loan is the response projection of a BookLoan with its copy, book author and visitor resolved.
type Loan struct {
	ID         int64       `json:"id"`
	Book       LoanBook    `json:"book"`
	Visitor    LoanVisitor `json:"visitor"`
	LoanDate   time.Time   `json:"loan_date"`
	DueDate    time.Time   `json:"due_date"`
	ReturnDate *time.Time  `json:"return_date"`
}

type LoanBook struct {
	BookCopyIdentifier string     `json:"book_copy_identifier"`
	ISBN               string     `json:"isbn"`
	Author             LoanAuthor `json:"author"`
}

type LoanAuthor struct {
	ID        int64  `json:"id"`
	FullName  string `json:"full_name"`
	BirthYear *int   `json:"birth_year"`
}

type LoanVisitor struct {
	Identifier  string `json:"identifier"`
	FullName    string `json:"full_name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
}

type LoanFilter struct {
	VisitorIdentifier  string
	BookCopyIdentifier string
	// Open filters on return_date being null (true) or set (false); nil means both.
	Open *bool
}
