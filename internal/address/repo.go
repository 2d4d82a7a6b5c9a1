package address

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

type Repository interface {
	Get(ctx context.Context, id int64) (*Address, error)
	GetForCustomer(ctx context.Context, customerID int64) ([]Address, error)
	Create(ctx context.Context, tx *sqlx.Tx, a *Address) (int64, error)
	Update(ctx context.Context, tx *sqlx.Tx, a *Address) (int64, error)
	Delete(ctx context.Context, tx *sqlx.Tx, id int64) (int64, error)
	CustomerID(ctx context.Context, tx *sqlx.Tx, id int64) (int64, error)
	ClearOtherDefaults(ctx context.Context, tx *sqlx.Tx, customerID, exceptID int64) error
}

type repo struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) Repository {
	return &repo{db: db}
}

func (r *repo) Get(ctx context.Context, id int64) (*Address, error) {
	var a Address
	err := r.db.GetContext(ctx, &a, getAddressSQL, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("get address: %w", err)
	}
	return &a, nil
}

func (r *repo) GetForCustomer(ctx context.Context, customerID int64) ([]Address, error) {
	out := []Address{}
	err := r.db.SelectContext(ctx, &out, getForCustomerSQL, customerID)
	if err != nil {
		return nil, fmt.Errorf("get addresses for customer: %w", err)
	}
	return out, nil
}

func (r *repo) Create(ctx context.Context, tx *sqlx.Tx, a *Address) (int64, error) {
	res, err := tx.ExecContext(ctx, createAddressSQL,
		a.CustomerID,
		a.AddressDetails,
		a.City,
		a.State,
		a.PinCode,
		a.IsDefault,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r *repo) Update(ctx context.Context, tx *sqlx.Tx, a *Address) (int64, error) {
	res, err := tx.ExecContext(ctx, updateAddressSQL,
		a.AddressDetails,
		a.City,
		a.State,
		a.PinCode,
		a.IsDefault,
		a.ID,
	)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *repo) Delete(ctx context.Context, tx *sqlx.Tx, id int64) (int64, error) {
	res, err := tx.ExecContext(ctx, deleteAddressSQL, id)
	if err != nil {
		return 0, fmt.Errorf("delete address: %w", err)
	}
	return res.RowsAffected()
}

func (r *repo) CustomerID(ctx context.Context, tx *sqlx.Tx, id int64) (int64, error) {
	var customerID int64
	err := tx.GetContext(ctx, &customerID, getCustomerIDSQL, id)
	if err != nil {
		return 0, fmt.Errorf("get address owner: %w", err)
	}
	return customerID, nil
}

func (r *repo) ClearOtherDefaults(ctx context.Context, tx *sqlx.Tx, customerID, exceptID int64) error {
	if _, err := tx.ExecContext(ctx, clearDefaultsSQL, customerID, exceptID); err != nil {
		return fmt.Errorf("clear default addresses: %w", err)
	}
	return nil
}
