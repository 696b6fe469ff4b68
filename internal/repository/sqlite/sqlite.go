package sqlite

import (
	"errors"
	"fmt"

	"github.com/avdeev/workboard/internal/db"
	"github.com/avdeev/workboard/pkg/repository"
	sqlite3 "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"
)

// SQLiteRepo implements repository interfaces using the internal DB wrapper.
type SQLiteRepo struct {
	conn *db.DB
}

// Ensure SQLiteRepo implements the public interfaces.
var _ repository.UserRepo = (*SQLiteRepo)(nil)
var _ repository.OrderRepo = (*SQLiteRepo)(nil)
var _ repository.OfferRepo = (*SQLiteRepo)(nil)

func New(conn *db.DB) *SQLiteRepo {
	return &SQLiteRepo{conn: conn}
}

// mapErr translates sqlite constraint failures (duplicate primary key,
// foreign key) into repository.ErrConflict so handlers can map them to a
// client error instead of a 500.
func mapErr(err error) error {
	if err == nil {
		return nil
	}

	var se *sqlite3.Error
	if errors.As(err, &se) && se.Code()&0xff == sqlite3lib.SQLITE_CONSTRAINT {
		return fmt.Errorf("%w: %s", repository.ErrConflict, se.Error())
	}

	return err
}
