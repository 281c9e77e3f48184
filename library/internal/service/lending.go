package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/bookaloo/library/internal/errs"
	"github.com/Astemirdum/bookaloo/library/internal/model"
	"github.com/Astemirdum/bookaloo/library/internal/repository"
	"github.com/Astemirdum/bookaloo/pkg/kafka"
)

const (
	fieldCopy      = "book_copy_identifier"
	fieldVisitor   = "visitor_identifier"
	fieldDueDate   = "due_date"
	fieldCondition = "book_copy_condition"

	// activeLoanConstraint is the partial unique index allowing one open loan per copy.
	activeLoanConstraint = "unique_active_loan_per_book_copy"
)

// Lend opens a loan for an available copy. All rule violations are returned together
// as *errs.FieldErrors; nothing is written unless every rule passes.
func (s *Service) Lend(ctx context.Context, req model.LendRequest) (model.Loan, error) {
	now := s.now().UTC()
	fe := errs.NewFieldErrors()

	if req.BookCopyIdentifier == "" {
		fe.Required(fieldCopy)
	}
	if req.VisitorIdentifier == "" {
		fe.Required(fieldVisitor)
	}
	due := now.Add(s.loanPeriod)
	if req.DueDate != nil {
		due = req.DueDate.UTC()
		if !due.After(now.Add(s.minDueAhead)) {
			fe.Add(fieldDueDate, errs.MsgDueDateTooSoon)
		}
	}
	if fe.Has(fieldCopy) && fe.Has(fieldVisitor) {
		s.log.Debug("lend rejected", zap.Error(fe))
		return model.Loan{}, fe
	}

	var loan model.Loan
	err := s.repo.InTx(ctx, func(tx repository.Tx) error {
		var (
			bookCopy  model.BookCopy
			copyFound bool
			err       error
		)
		if !fe.Has(fieldCopy) {
			bookCopy, copyFound, err = s.lockCopy(ctx, tx, req.BookCopyIdentifier, fe)
			if err != nil {
				return err
			}
		}

		var visitor model.Visitor
		if !fe.Has(fieldVisitor) {
			visitor, err = tx.GetVisitor(ctx, req.VisitorIdentifier)
			switch {
			case errors.Is(err, errs.ErrNotFound):
				fe.NotFound(fieldVisitor, req.VisitorIdentifier)
			case err != nil:
				return errors.Wrap(err, "get visitor")
			case !visitor.IsActive:
				fe.Add(fieldVisitor, fmt.Sprintf(errs.MsgVisitorInactive, req.VisitorIdentifier))
			}
		}

		if copyFound {
			available, err := s.copyAvailable(ctx, tx, bookCopy)
			if err != nil {
				return err
			}
			if !available {
				fe.Add(fieldCopy, fmt.Sprintf(errs.MsgCopyUnavailable, req.BookCopyIdentifier))
			}
		}
		if err := fe.Err(); err != nil {
			return err
		}

		id, err := tx.CreateLoan(ctx, model.BookLoan{
			VisitorID:  visitor.ID,
			BookCopyID: bookCopy.ID,
			LoanDate:   now,
			DueDate:    due,
		})
		if err != nil {
			return err
		}
		if err = tx.UpdateCopyState(ctx, bookCopy.ID, false, bookCopy.Condition); err != nil {
			return errors.Wrap(err, "mark copy on loan")
		}
		loan, err = tx.GetLoan(ctx, id)
		return errors.Wrap(err, "get loan")
	})
	if c, ok := errs.Constraint(err); ok && c == activeLoanConstraint {
		err = errs.NewFieldErrors().
			Add(fieldCopy, fmt.Sprintf(errs.MsgCopyUnavailable, req.BookCopyIdentifier))
	}
	if err != nil {
		s.log.Debug("lend rejected",
			zap.String("book_copy_identifier", req.BookCopyIdentifier),
			zap.String("visitor_identifier", req.VisitorIdentifier),
			zap.Error(err))
		return model.Loan{}, err
	}

	s.log.Info("loan created",
		zap.Int64("loan_id", loan.ID),
		zap.String("book_copy_identifier", loan.Book.BookCopyIdentifier),
		zap.String("visitor_identifier", loan.Visitor.Identifier),
		zap.Time("due_date", loan.DueDate))
	s.publish(ctx, kafka.LoanEvent{
		EventID:            uuid.NewString(),
		EventType:          kafka.EventLoanCreated,
		LoanID:             loan.ID,
		BookCopyIdentifier: loan.Book.BookCopyIdentifier,
		VisitorIdentifier:  loan.Visitor.Identifier,
		OccurredAt:         loan.LoanDate,
		DueDate:            loan.DueDate,
	})
	return loan, nil
}

// Return closes the open loan of a copy and makes it available again.
func (s *Service) Return(ctx context.Context, req model.ReturnRequest) (model.Loan, error) {
	now := s.now().UTC()
	fe := errs.NewFieldErrors()

	if req.BookCopyIdentifier == "" {
		fe.Required(fieldCopy)
	}
	if req.BookCopyCondition != nil && !req.BookCopyCondition.Valid() {
		fe.Add(fieldCondition, fmt.Sprintf(errs.MsgInvalidChoice, *req.BookCopyCondition))
	}
	if fe.Has(fieldCopy) {
		return model.Loan{}, fe
	}

	var (
		loan      model.Loan
		condition model.Condition
	)
	err := s.repo.InTx(ctx, func(tx repository.Tx) error {
		bookCopy, copyFound, err := s.lockCopy(ctx, tx, req.BookCopyIdentifier, fe)
		if err != nil {
			return err
		}
		if !copyFound {
			return fe
		}

		// the ledger decides, not the availability flag
		open, err := tx.GetOpenLoan(ctx, bookCopy.ID)
		switch {
		case errors.Is(err, errs.ErrNotFound):
			fe.Add(fieldCopy, errs.MsgAlreadyReturned)
		case err != nil:
			return errors.Wrap(err, "get open loan")
		}
		if err := fe.Err(); err != nil {
			return err
		}

		if err = tx.CloseLoan(ctx, open.ID, now); err != nil {
			return errors.Wrap(err, "close loan")
		}
		condition = bookCopy.Condition
		if req.BookCopyCondition != nil {
			condition = *req.BookCopyCondition
		}
		if err = tx.UpdateCopyState(ctx, bookCopy.ID, true, condition); err != nil {
			return errors.Wrap(err, "mark copy available")
		}
		loan, err = tx.GetLoan(ctx, open.ID)
		return errors.Wrap(err, "get loan")
	})
	if err != nil {
		s.log.Debug("return rejected",
			zap.String("book_copy_identifier", req.BookCopyIdentifier),
			zap.Error(err))
		return model.Loan{}, err
	}

	s.log.Info("loan returned",
		zap.Int64("loan_id", loan.ID),
		zap.String("book_copy_identifier", loan.Book.BookCopyIdentifier),
		zap.String("condition", string(condition)))
	s.publish(ctx, kafka.LoanEvent{
		EventID:            uuid.NewString(),
		EventType:          kafka.EventLoanReturned,
		LoanID:             loan.ID,
		BookCopyIdentifier: loan.Book.BookCopyIdentifier,
		VisitorIdentifier:  loan.Visitor.Identifier,
		OccurredAt:         now,
		DueDate:            loan.DueDate,
		ReturnDate:         loan.ReturnDate,
		Condition:          string(condition),
	})
	return loan, nil
}

func (s *Service) lockCopy(ctx context.Context, tx repository.Tx, identifier string, fe *errs.FieldErrors) (model.BookCopy, bool, error) {
	bookCopy, err := tx.GetCopyForUpdate(ctx, identifier)
	switch {
	case errors.Is(err, errs.ErrNotFound):
		fe.NotFound(fieldCopy, identifier)
		return model.BookCopy{}, false, nil
	case err != nil:
		return model.BookCopy{}, false, errors.Wrap(err, "get copy")
	}
	return bookCopy, true, nil
}

// copyAvailable trusts a false flag but re-checks a true one against the open loan.
func (s *Service) copyAvailable(ctx context.Context, tx repository.Tx, bookCopy model.BookCopy) (bool, error) {
	if !bookCopy.IsAvailable {
		return false, nil
	}
	open, err := tx.GetOpenLoan(ctx, bookCopy.ID)
	switch {
	case errors.Is(err, errs.ErrNotFound):
		return true, nil
	case err != nil:
		return false, errors.Wrap(err, "get open loan")
	}
	s.log.Warn("availability flag out of sync with ledger",
		zap.String("book_copy_identifier", bookCopy.Identifier),
		zap.Int64("open_loan_id", open.ID))
	return false, nil
}

func (s *Service) GetLoan(ctx context.Context, id int64) (model.Loan, error) {
	return s.repo.GetLoan(ctx, id)
}

func (s *Service) ListLoans(ctx context.Context, filter model.LoanFilter, page model.PageRequest) (model.Page[model.Loan], error) {
	return s.repo.ListLoans(ctx, filter, page)
}
