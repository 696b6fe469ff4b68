package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/avdeev/workboard/pkg/models"
	"github.com/avdeev/workboard/pkg/repository"
)

func (r *SQLiteRepo) CreateOrder(ctx context.Context, o *models.Order) error {
	if o == nil {
		return fmt.Errorf("order is nil")
	}

	// A zero ID lets sqlite assign the next rowid; orders are the one
	// entity whose id is not required from the caller.
	var id any
	if o.ID != 0 {
		id = o.ID
	}

	res, err := r.conn.Exec(ctx,
		`INSERT INTO orders (id, name, description, start_date, end_date, address, price, customer_id, executor_id) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, o.Name, o.Description, o.StartDate, o.EndDate, o.Address, o.Price, o.CustomerID, o.ExecutorID)
	if err != nil {
		return mapErr(err)
	}

	if o.ID == 0 {
		o.ID, err = res.LastInsertId()
	}

	return err
}

func (r *SQLiteRepo) GetOrderByID(ctx context.Context, id int64) (*models.Order, error) {
	row := r.conn.QueryRow(ctx,
		`SELECT id, name, description, start_date, end_date, address, price, customer_id, executor_id FROM orders WHERE id = ?`, id)

	o, err := scanOrder(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, repository.ErrNotFound
		}

		return nil, err
	}

	return o, nil
}

func (r *SQLiteRepo) ListOrders(ctx context.Context) ([]models.Order, error) {
	rows, err := r.conn.QueryRows(ctx,
		`SELECT id, name, description, start_date, end_date, address, price, customer_id, executor_id FROM orders ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Order
	for rows.Next() {
		o, err := scanOrder(rows.Scan)
		if err != nil {
			return nil, err
		}

		out = append(out, *o)
	}

	return out, rows.Err()
}

func (r *SQLiteRepo) UpdateOrder(ctx context.Context, id int64, o *models.Order) error {
	if o == nil {
		return fmt.Errorf("order is nil")
	}

	res, err := r.conn.Exec(ctx,
		`UPDATE orders SET id = ?, name = ?, description = ?, start_date = ?, end_date = ?, address = ?, price = ?, customer_id = ?, executor_id = ? WHERE id = ?`,
		o.ID, o.Name, o.Description, o.StartDate, o.EndDate, o.Address, o.Price, o.CustomerID, o.ExecutorID, id)
	if err != nil {
		return mapErr(err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return repository.ErrNotFound
	}

	return nil
}

func (r *SQLiteRepo) DeleteOrder(ctx context.Context, id int64) error {
	res, err := r.conn.Exec(ctx, `DELETE FROM orders WHERE id = ?`, id)
	if err != nil {
		return err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return repository.ErrNotFound
	}

	return nil
}

func scanOrder(scan func(dest ...any) error) (*models.Order, error) {
	var o models.Order
	var executor sql.NullInt64
	if err := scan(&o.ID, &o.Name, &o.Description, &o.StartDate, &o.EndDate, &o.Address, &o.Price, &o.CustomerID, &executor); err != nil {
		return nil, err
	}

	if executor.Valid {
		v := executor.Int64
		o.ExecutorID = &v
	}

	return &o, nil
}
