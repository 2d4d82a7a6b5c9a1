package customer

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"winsbygroup.com/custbook/internal/apperr"
	"winsbygroup.com/custbook/internal/sqlite"
)

type Service struct {
	repo Repository
	db   *sqlx.DB
}

func NewService(db *sqlx.DB) *Service {
	return &Service{
		db:   db,
		repo: New(db),
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

// List answers a search/filter/sort/paginate request. Page and limit are
// clamped, unknown sort fields fall back to id, and every row carries its
// address count.
func (s *Service) List(ctx context.Context, p ListParams) (*ListResult, error) {
	p = p.normalized()

	items, total, err := s.repo.List(ctx, p)
	if err != nil {
		return nil, apperr.Storage("failed to list customers", err)
	}

	totalPages := (total + p.Limit - 1) / p.Limit
	if totalPages < 1 {
		totalPages = 1
	}

	return &ListResult{
		Customers:  items,
		Page:       p.Page,
		Limit:      p.Limit,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    p.Page < totalPages,
	}, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*Customer, error) {
	c, err := s.repo.Get(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFound("Customer not found")
	}
	if err != nil {
		return nil, apperr.Storage("failed to get customer", err)
	}
	return c, nil
}

func (s *Service) Create(ctx context.Context, c *Customer) (*Customer, error) {
	if c.FirstName == "" || c.LastName == "" || c.PhoneNumber == "" {
		return nil, apperr.Validation("All fields are required!")
	}

	var id int64
	err := s.WithTx(ctx, func(tx *sqlx.Tx) error {
		var err error
		id, err = s.repo.Create(ctx, tx, c)
		return err
	})
	if sqlite.IsUniqueConstraintError(err) {
		return nil, apperr.Conflict("phone number already exists")
	}
	if err != nil {
		return nil, apperr.Storage("failed to create customer", err)
	}

	return s.Get(ctx, id)
}

// Update overwrites all three mutable fields unconditionally; callers
// resend the full record.
func (s *Service) Update(ctx context.Context, c *Customer) (*Customer, error) {
	if c.FirstName == "" || c.LastName == "" || c.PhoneNumber == "" {
		return nil, apperr.Validation("All fields are required!")
	}

	var affected int64
	err := s.WithTx(ctx, func(tx *sqlx.Tx) error {
		var err error
		affected, err = s.repo.Update(ctx, tx, c)
		return err
	})
	if sqlite.IsUniqueConstraintError(err) {
		return nil, apperr.Conflict("phone number already exists")
	}
	if err != nil {
		return nil, apperr.Storage("failed to update customer", err)
	}
	if affected == 0 {
		return nil, apperr.NotFound("Customer not found")
	}

	return s.Get(ctx, c.ID)
}

// Delete removes the customer row; the store cascades deletion of all
// owned addresses.
func (s *Service) Delete(ctx context.Context, id int64) error {
	var affected int64
	err := s.WithTx(ctx, func(tx *sqlx.Tx) error {
		var err error
		affected, err = s.repo.Delete(ctx, tx, id)
		return err
	})
	if err != nil {
		return apperr.Storage("failed to delete customer", err)
	}
	if affected == 0 {
		return apperr.NotFound("Customer not found")
	}
	return nil
}

func (s *Service) Exists(ctx context.Context, id int64) (bool, error) {
	return s.repo.Exists(ctx, id)
}
