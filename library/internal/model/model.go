package model

import "time"

type Condition string

const (
	ConditionVeryGood   Condition = "Very Good"
	ConditionGood       Condition = "Good"
	ConditionAcceptable Condition = "Acceptable"
	ConditionPoor       Condition = "Poor"
)

var Conditions = []Condition{ConditionVeryGood, ConditionGood, ConditionAcceptable, ConditionPoor}

func (c Condition) Valid() bool {
	for _, v := range Conditions {
		if c == v {
			return true
		}
	}
	return false
}

type Author struct {
	ID          int64  `json:"id" db:"id"`
	FullName    string `json:"full_name" db:"full_name"`
	BirthYear   *int   `json:"birth_year" db:"birth_year"`
	Description string `json:"description" db:"description"`
}

type Publisher struct {
	ID      int64  `json:"id" db:"id"`
	Name    string `json:"name" db:"name"`
	Address string `json:"address" db:"address"`
}

// Book is a literary work, regardless of its editions and copies.
type Book struct {
	ID          int64       `json:"id"`
	Title       string      `json:"title"`
	Author      Author      `json:"author"`
	CopiesCount CopiesCount `json:"copies_count"`
}

type CopiesCount struct {
	Total     int `json:"total"`
	Available int `json:"available"`
}

type BookEdition struct {
	ID              int64  `json:"id" db:"id"`
	BookID          int64  `json:"book" db:"book_id"`
	PublisherID     int64  `json:"publisher" db:"publisher_id"`
	PublicationDate Date   `json:"publication_date" db:"-"`
	ISBN            string `json:"isbn" db:"isbn"`
}

// BookCopy is one physical copy. IsAvailable mirrors the absence of an open loan
// and is written only by the lending and return transitions.
type BookCopy struct {
	ID            int64     `json:"id" db:"id"`
	Identifier    string    `json:"identifier" db:"identifier"`
	BookEditionID int64     `json:"book_edition" db:"book_edition_id"`
	Condition     Condition `json:"condition" db:"condition"`
	IsAvailable   bool      `json:"is_available" db:"is_available"`
}

type Visitor struct {
	ID          int64  `json:"-" db:"id"`
	Identifier  string `json:"identifier" db:"identifier"`
	FullName    string `json:"full_name" db:"full_name"`
	Email       string `json:"email" db:"email"`
	PhoneNumber string `json:"phone_number" db:"phone_number"`
	IsActive    bool   `json:"is_active" db:"is_active"`
}

// BookLoan is a single row of the ledger. ReturnDate == nil means the loan is open.
type BookLoan struct {
	ID         int64      `db:"id"`
	VisitorID  int64      `db:"visitor_id"`
	BookCopyID int64      `db:"book_copy_id"`
	LoanDate   time.Time  `db:"loan_date"`
	DueDate    time.Time  `db:"due_date"`
	ReturnDate *time.Time `db:"return_date"`
}

func (l BookLoan) Open() bool {
	return l.ReturnDate == nil
}
