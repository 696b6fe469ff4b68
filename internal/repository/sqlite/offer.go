package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/avdeev/workboard/pkg/models"
	"github.com/avdeev/workboard/pkg/repository"
)

func (r *SQLiteRepo) CreateOffer(ctx context.Context, o *models.Offer) error {
	if o == nil {
		return fmt.Errorf("offer is nil")
	}

	_, err := r.conn.Exec(ctx,
		`INSERT INTO offers (id, order_id, executor_id) VALUES (?, ?, ?)`,
		o.ID, o.OrderID, o.ExecutorID)
	return mapErr(err)
}

func (r *SQLiteRepo) GetOfferByID(ctx context.Context, id int64) (*models.Offer, error) {
	row := r.conn.QueryRow(ctx,
		`SELECT id, order_id, executor_id FROM offers WHERE id = ?`, id)

	var o models.Offer
	if err := row.Scan(&o.ID, &o.OrderID, &o.ExecutorID); err != nil {
		if err == sql.ErrNoRows {
			return nil, repository.ErrNotFound
		}

		return nil, err
	}

	return &o, nil
}

func (r *SQLiteRepo) ListOffers(ctx context.Context) ([]models.Offer, error) {
	rows, err := r.conn.QueryRows(ctx,
		`SELECT id, order_id, executor_id FROM offers ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Offer
	for rows.Next() {
		var o models.Offer
		if err := rows.Scan(&o.ID, &o.OrderID, &o.ExecutorID); err != nil {
			return nil, err
		}

		out = append(out, o)
	}

	return out, rows.Err()
}

func (r *SQLiteRepo) UpdateOffer(ctx context.Context, id int64, o *models.Offer) error {
	if o == nil {
		return fmt.Errorf("offer is nil")
	}

	res, err := r.conn.Exec(ctx,
		`UPDATE offers SET id = ?, order_id = ?, executor_id = ? WHERE id = ?`,
		o.ID, o.OrderID, o.ExecutorID, id)
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

func (r *SQLiteRepo) DeleteOffer(ctx context.Context, id int64) error {
	res, err := r.conn.Exec(ctx, `DELETE FROM offers WHERE id = ?`, id)
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
