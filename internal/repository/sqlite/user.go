package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/avdeev/workboard/pkg/models"
	"github.com/avdeev/workboard/pkg/repository"
)

func (r *SQLiteRepo) CreateUser(ctx context.Context, u *models.User) error {
	if u == nil {
		return fmt.Errorf("user is nil")
	}

	_, err := r.conn.Exec(ctx,
		`INSERT INTO users (id, first_name, last_name, age, email, role, phone) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		u.ID, u.FirstName, u.LastName, u.Age, u.Email, u.Role, u.Phone)
	return mapErr(err)
}

func (r *SQLiteRepo) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	row := r.conn.QueryRow(ctx,
		`SELECT id, first_name, last_name, age, email, role, phone FROM users WHERE id = ?`, id)

	var u models.User
	if err := row.Scan(&u.ID, &u.FirstName, &u.LastName, &u.Age, &u.Email, &u.Role, &u.Phone); err != nil {
		if err == sql.ErrNoRows {
			return nil, repository.ErrNotFound
		}

		return nil, err
	}

	return &u, nil
}

func (r *SQLiteRepo) ListUsers(ctx context.Context) ([]models.User, error) {
	rows, err := r.conn.QueryRows(ctx,
		`SELECT id, first_name, last_name, age, email, role, phone FROM users ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.User
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.FirstName, &u.LastName, &u.Age, &u.Email, &u.Role, &u.Phone); err != nil {
			return nil, err
		}

		out = append(out, u)
	}

	return out, rows.Err()
}

// UpdateUser rewrites every column of the row keyed by id, including the
// primary key when the payload carries a different one.
func (r *SQLiteRepo) UpdateUser(ctx context.Context, id int64, u *models.User) error {
	if u == nil {
		return fmt.Errorf("user is nil")
	}

	res, err := r.conn.Exec(ctx,
		`UPDATE users SET id = ?, first_name = ?, last_name = ?, age = ?, email = ?, role = ?, phone = ? WHERE id = ?`,
		u.ID, u.FirstName, u.LastName, u.Age, u.Email, u.Role, u.Phone, id)
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

func (r *SQLiteRepo) DeleteUser(ctx context.Context, id int64) error {
	res, err := r.conn.Exec(ctx, `DELETE FROM users WHERE id = ?`, id)
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
