package address

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"winsbygroup.com/custbook/internal/apperr"
	"winsbygroup.com/custbook/internal/customer"
	"winsbygroup.com/custbook/internal/sqlite"
)

type Service struct {
	repo      Repository
	customers *customer.Service
	db        *sqlx.DB
}

func NewService(db *sqlx.DB, customers *customer.Service) *Service {
	return &Service{
		db:        db,
		repo:      New(db),
		customers: customers,
	}
}

func (s *Service) WithTx(ctx context.Context, fn func(*sqlx.Tx) error) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit()
}

func (s *Service) Get(ctx context.Context, id int64) (*Address, error) {
	a, err := s.repo.Get(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFound("Address not found")
	}
	if err != nil {
		return nil, apperr.Storage("failed to get address", err)
	}
	return a, nil
}

// GetForCustomer returns all addresses owned by the customer, oldest
// first. A customer id that does not exist is a not-found error rather
// than an indistinguishable empty list.
func (s *Service) GetForCustomer(ctx context.Context, customerID int64) ([]Address, error) {
	exists, err := s.customers.Exists(ctx, customerID)
	if err != nil {
		return nil, apperr.Storage("failed to check customer", err)
	}
	if !exists {
		return nil, apperr.NotFound("Customer not found")
	}

	out, err := s.repo.GetForCustomer(ctx, customerID)
	if err != nil {
		return nil, apperr.Storage("failed to list addresses", err)
	}
	return out, nil
}

// Create persists a new address for the customer. Customer existence is
// not checked at this layer; a bad customer id surfaces as the store's
// foreign key violation. Marking the address default clears the flag on
// the customer's other addresses in the same transaction.
func (s *Service) Create(ctx context.Context, a *Address) (*Address, error) {
	if a.AddressDetails == "" || a.City == "" || a.State == "" || a.PinCode == "" {
		return nil, apperr.Validation("All fields are required!")
	}

	var id int64
	err := s.WithTx(ctx, func(tx *sqlx.Tx) error {
		var err error
		id, err = s.repo.Create(ctx, tx, a)
		if err != nil {
			return err
		}
		if a.IsDefault {
			return s.repo.ClearOtherDefaults(ctx, tx, a.CustomerID, id)
		}
		return nil
	})
	if sqlite.IsForeignKeyConstraintError(err) {
		return nil, apperr.Storage("customer does not exist", err)
	}
	if err != nil {
		return nil, apperr.Storage("failed to create address", err)
	}

	return s.Get(ctx, id)
}

// Update overwrites all mutable fields unconditionally; callers resend
// the full record. The owning customer cannot be changed.
func (s *Service) Update(ctx context.Context, a *Address) (*Address, error) {
	if a.AddressDetails == "" || a.City == "" || a.State == "" || a.PinCode == "" {
		return nil, apperr.Validation("All fields are required!")
	}

	var affected int64
	err := s.WithTx(ctx, func(tx *sqlx.Tx) error {
		var err error
		affected, err = s.repo.Update(ctx, tx, a)
		if err != nil || affected == 0 {
			return err
		}
		if a.IsDefault {
			customerID, err := s.repo.CustomerID(ctx, tx, a.ID)
			if err != nil {
				return err
			}
			return s.repo.ClearOtherDefaults(ctx, tx, customerID, a.ID)
		}
		return nil
	})
	if err != nil {
		return nil, apperr.Storage("failed to update address", err)
	}
	if affected == 0 {
		return nil, apperr.NotFound("Address not found")
	}

	return s.Get(ctx, a.ID)
}

// Delete removes a single address; the owning customer is unaffected.
func (s *Service) Delete(ctx context.Context, id int64) error {
	var affected int64
	err := s.WithTx(ctx, func(tx *sqlx.Tx) error {
		var err error
		affected, err = s.repo.Delete(ctx, tx, id)
		return err
	})
	if err != nil {
		return apperr.Storage("failed to delete address", err)
	}
	if affected == 0 {
		return apperr.NotFound("Address not found")
	}
	return nil
}
