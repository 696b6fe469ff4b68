package db

import (
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"path"

	"github.com/avdeev/workboard/pkg/models"
)

// Reseed rebuilds the entity schema and loads the fixture data. It runs
// once per process start, before the API accepts traffic: the schema is
// dropped and recreated, then users, orders and offers are bulk-inserted
// in that order because orders and offers reference user and order ids.
// Any failure leaves the process with no usable dataset, so callers must
// treat an error as fatal.
func Reseed(ctx context.Context, d *DB, schema string, fixtures fs.FS) error {
	if _, err := d.Exec(ctx, schema); err != nil {
		return fmt.Errorf("rebuild schema: %w", err)
	}

	var users []models.User
	if err := readFixture(fixtures, "users.json", &users); err != nil {
		return err
	}
	if err := insertBatch(ctx, d,
		`INSERT INTO users (id, first_name, last_name, age, email, role, phone) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		len(users), func(i int) []any {
			u := users[i]
			return []any{u.ID, u.FirstName, u.LastName, u.Age, u.Email, u.Role, u.Phone}
		}); err != nil {
		return fmt.Errorf("seed users: %w", err)
	}

	var orders []models.Order
	if err := readFixture(fixtures, "orders.json", &orders); err != nil {
		return err
	}
	if err := insertBatch(ctx, d,
		`INSERT INTO orders (id, name, description, start_date, end_date, address, price, customer_id, executor_id) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		len(orders), func(i int) []any {
			o := orders[i]
			return []any{o.ID, o.Name, o.Description, o.StartDate, o.EndDate, o.Address, o.Price, o.CustomerID, o.ExecutorID}
		}); err != nil {
		return fmt.Errorf("seed orders: %w", err)
	}

	var offers []models.Offer
	if err := readFixture(fixtures, "offers.json", &offers); err != nil {
		return err
	}
	if err := insertBatch(ctx, d,
		`INSERT INTO offers (id, order_id, executor_id) VALUES (?, ?, ?)`,
		len(offers), func(i int) []any {
			o := offers[i]
			return []any{o.ID, o.OrderID, o.ExecutorID}
		}); err != nil {
		return fmt.Errorf("seed offers: %w", err)
	}

	return nil
}

// readFixture decodes one fixture file from the embedded FS. Fixture
// dates are MM/DD/YYYY strings; models.Date parses them during unmarshal,
// so a malformed date fails the whole seed.
func readFixture(fixtures fs.FS, name string, dst any) error {
	b, err := fs.ReadFile(fixtures, path.Join("fixtures", name))
	if err != nil {
		return fmt.Errorf("read fixture %s: %w", name, err)
	}
	if err := json.Unmarshal(b, dst); err != nil {
		return fmt.Errorf("parse fixture %s: %w", name, err)
	}

	return nil
}

// insertBatch writes one fixture batch inside a single transaction.
func insertBatch(ctx context.Context, d *DB, query string, n int, args func(i int) []any) error {
	tx, err := d.GetConn().BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for i := 0; i < n; i++ {
		if _, err := stmt.ExecContext(ctx, args(i)...); err != nil {
			return fmt.Errorf("insert row %d: %w", i, err)
		}
	}

	return tx.Commit()
}
