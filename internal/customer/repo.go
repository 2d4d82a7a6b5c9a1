package customer

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

type Repository interface {
	List(ctx context.Context, p ListParams) ([]ListItem, int, error)
	Get(ctx context.Context, id int64) (*Customer, error)
	Create(ctx context.Context, tx *sqlx.Tx, c *Customer) (int64, error)
	Update(ctx context.Context, tx *sqlx.Tx, c *Customer) (int64, error)
	Delete(ctx context.Context, tx *sqlx.Tx, id int64) (int64, error)
	Exists(ctx context.Context, id int64) (bool, error)
}

type repo struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) Repository {
	return &repo{db: db}
}

// List runs the count and page queries inside one transaction so the
// reported total and the returned page come from the same snapshot.
func (r *repo) List(ctx context.Context, p ListParams) ([]ListItem, int, error) {
	where, args := p.whereClause()

	countQuery := countCustomersSQL + where
	dataQuery := fmt.Sprintf("%s%s\nORDER BY %s %s\nLIMIT ? OFFSET ?",
		listCustomersSQL, where, p.sortColumn(), p.sortOrder())

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("begin list tx: %w", err)
	}
	defer tx.Rollback()

	var total int
	if err := tx.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("count customers: %w", err)
	}

	offset := (p.Page - 1) * p.Limit
	dataArgs := append(append([]interface{}{}, args...), p.Limit, offset)

	items := []ListItem{}
	if err := tx.SelectContext(ctx, &items, dataQuery, dataArgs...); err != nil {
		return nil, 0, fmt.Errorf("list customers: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, 0, fmt.Errorf("commit list tx: %w", err)
	}
	return items, total, nil
}

func (r *repo) Get(ctx context.Context, id int64) (*Customer, error) {
	var c Customer
	err := r.db.GetContext(ctx, &c, getCustomerSQL, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return &c, nil
}

func (r *repo) Create(ctx context.Context, tx *sqlx.Tx, c *Customer) (int64, error) {
	res, err := tx.ExecContext(ctx, createCustomerSQL,
		c.FirstName,
		c.LastName,
		c.PhoneNumber,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r *repo) Update(ctx context.Context, tx *sqlx.Tx, c *Customer) (int64, error) {
	res, err := tx.ExecContext(ctx, updateCustomerSQL,
		c.FirstName,
		c.LastName,
		c.PhoneNumber,
		c.ID,
	)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *repo) Delete(ctx context.Context, tx *sqlx.Tx, id int64) (int64, error) {
	res, err := tx.ExecContext(ctx, deleteCustomerSQL, id)
	if err != nil {
		return 0, fmt.Errorf("delete customer: %w", err)
	}
	return res.RowsAffected()
}

func (r *repo) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists, customerExistsSQL, id)
	if err != nil {
		return false, fmt.Errorf("customer exists: %w", err)
	}
	return exists, nil
}
