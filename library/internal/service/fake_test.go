package service_test

import (
	"context"
	"sync"
	"time"

	"github.com/jackc/pgerrcode"

	"github.com/Astemirdum/bookaloo/library/internal/errs"
	"github.com/Astemirdum/bookaloo/library/internal/model"
	"github.com/Astemirdum/bookaloo/library/internal/repository"
	"github.com/Astemirdum/bookaloo/pkg/kafka"
)

// fakeLedger is an in-memory repository. Transactions are serialized, roll back on
// error and the one-open-loan-per-copy rule is enforced like the partial unique index.
type fakeLedger struct {
	repository.CatalogRepository

	mu    sync.Mutex
	state ledgerState
	// createLoanErr, when set, is returned by CreateLoan before any check.
	createLoanErr error
}

type ledgerState struct {
	copies   map[string]model.BookCopy
	visitors map[string]model.Visitor
	loans    []model.BookLoan
}

func (s ledgerState) clone() ledgerState {
	out := ledgerState{
		copies:   make(map[string]model.BookCopy, len(s.copies)),
		visitors: make(map[string]model.Visitor, len(s.visitors)),
		loans:    make([]model.BookLoan, len(s.loans)),
	}
	for k, v := range s.copies {
		out.copies[k] = v
	}
	for k, v := range s.visitors {
		out.visitors[k] = v
	}
	for i, l := range s.loans {
		if l.ReturnDate != nil {
			rd := *l.ReturnDate
			l.ReturnDate = &rd
		}
		out.loans[i] = l
	}
	return out
}

func newFakeLedger() *fakeLedger {
	return &fakeLedger{state: ledgerState{
		copies:   map[string]model.BookCopy{},
		visitors: map[string]model.Visitor{},
	}}
}

func (f *fakeLedger) addCopy(identifier string, available bool) model.BookCopy {
	c := model.BookCopy{
		ID:            int64(len(f.state.copies) + 1),
		Identifier:    identifier,
		BookEditionID: 1,
		Condition:     model.ConditionVeryGood,
		IsAvailable:   available,
	}
	f.state.copies[identifier] = c
	return c
}

func (f *fakeLedger) addVisitor(identifier string, active bool) model.Visitor {
	v := model.Visitor{
		ID:         int64(len(f.state.visitors) + 1),
		Identifier: identifier,
		FullName:   "Visitor " + identifier,
		Email:      identifier + "@example.com",
		IsActive:   active,
	}
	f.state.visitors[identifier] = v
	return v
}

func (f *fakeLedger) copy(identifier string) model.BookCopy {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state.copies[identifier]
}

func (f *fakeLedger) loans() []model.BookLoan {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state.clone().loans
}

func (f *fakeLedger) InTx(ctx context.Context, fn func(tx repository.Tx) error) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	snapshot := f.state.clone()
	if err := fn(&fakeTx{f: f}); err != nil {
		f.state = snapshot
		return err
	}
	return nil
}

func (f *fakeLedger) GetLoan(ctx context.Context, id int64) (model.Loan, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.project(id)
}

func (f *fakeLedger) ListLoans(ctx context.Context, filter model.LoanFilter, page model.PageRequest) (model.Page[model.Loan], error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.Loan
	for i := len(f.state.loans) - 1; i >= 0; i-- {
		l, err := f.project(f.state.loans[i].ID)
		if err != nil {
			return model.Page[model.Loan]{}, err
		}
		out = append(out, l)
	}
	return model.NewPage(out, len(out), page), nil
}

func (f *fakeLedger) project(id int64) (model.Loan, error) {
	for _, l := range f.state.loans {
		if l.ID != id {
			continue
		}
		loan := model.Loan{
			ID:         l.ID,
			LoanDate:   l.LoanDate,
			DueDate:    l.DueDate,
			ReturnDate: l.ReturnDate,
			Book: model.LoanBook{
				ISBN:   "9780140447934",
				Author: model.LoanAuthor{ID: 1, FullName: "Leo Tolstoy"},
			},
		}
		for _, c := range f.state.copies {
			if c.ID == l.BookCopyID {
				loan.Book.BookCopyIdentifier = c.Identifier
			}
		}
		for _, v := range f.state.visitors {
			if v.ID == l.VisitorID {
				loan.Visitor = model.LoanVisitor{
					Identifier: v.Identifier, FullName: v.FullName, Email: v.Email, PhoneNumber: v.PhoneNumber,
				}
			}
		}
		return loan, nil
	}
	return model.Loan{}, errs.ErrNotFound
}

type fakeTx struct {
	f *fakeLedger
}

func (t *fakeTx) GetCopyForUpdate(_ context.Context, identifier string) (model.BookCopy, error) {
	c, ok := t.f.state.copies[identifier]
	if !ok {
		return model.BookCopy{}, errs.ErrNotFound
	}
	return c, nil
}

func (t *fakeTx) GetVisitor(_ context.Context, identifier string) (model.Visitor, error) {
	v, ok := t.f.state.visitors[identifier]
	if !ok {
		return model.Visitor{}, errs.ErrNotFound
	}
	return v, nil
}

func (t *fakeTx) GetOpenLoan(_ context.Context, copyID int64) (model.BookLoan, error) {
	for _, l := range t.f.state.loans {
		if l.BookCopyID == copyID && l.Open() {
			return l, nil
		}
	}
	return model.BookLoan{}, errs.ErrNotFound
}

func (t *fakeTx) CreateLoan(ctx context.Context, loan model.BookLoan) (int64, error) {
	if t.f.createLoanErr != nil {
		return 0, t.f.createLoanErr
	}
	if _, err := t.GetOpenLoan(ctx, loan.BookCopyID); err == nil {
		return 0, &errs.ConstraintError{
			Code:       pgerrcode.UniqueViolation,
			Constraint: "unique_active_loan_per_book_copy",
		}
	}
	loan.ID = int64(len(t.f.state.loans) + 1)
	loan.ReturnDate = nil
	t.f.state.loans = append(t.f.state.loans, loan)
	return loan.ID, nil
}

func (t *fakeTx) CloseLoan(_ context.Context, loanID int64, returnedAt time.Time) error {
	for i, l := range t.f.state.loans {
		if l.ID == loanID && l.Open() {
			t.f.state.loans[i].ReturnDate = &returnedAt
			return nil
		}
	}
	return errs.ErrNotFound
}

func (t *fakeTx) UpdateCopyState(_ context.Context, copyID int64, available bool, condition model.Condition) error {
	for k, c := range t.f.state.copies {
		if c.ID == copyID {
			c.IsAvailable = available
			c.Condition = condition
			t.f.state.copies[k] = c
			return nil
		}
	}
	return errs.ErrNotFound
}

func (t *fakeTx) GetLoan(_ context.Context, id int64) (model.Loan, error) {
	return t.f.project(id)
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []kafka.LoanEvent
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, event kafka.LoanEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return p.err
}

// checkLedger reports copies whose flag disagrees with the presence of an open loan,
// and copies with more than one open loan.
func (f *fakeLedger) checkLedger() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	var problems []string
	for _, c := range f.state.copies {
		open := 0
		for _, l := range f.state.loans {
			if l.BookCopyID == c.ID && l.Open() {
				open++
			}
		}
		if open > 1 {
			problems = append(problems, c.Identifier+": several open loans")
		}
		if c.IsAvailable != (open == 0) {
			problems = append(problems, c.Identifier+": availability flag out of sync")
		}
	}
	return problems
}
