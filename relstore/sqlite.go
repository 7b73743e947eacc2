package relstore

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	_ "github.com/mattn/go-sqlite3"

	"github.com/katalvlaran/companion/benefit"
)

// LoadDB reads (helper, helped, effect) rows from the configured table of
// an open database, in rowid order. The table must be a rowid table.
func LoadDB(ctx context.Context, db *sql.DB, opts ...Option) (*benefit.Graph, error) {
	const src = "<db>"
	o, err := resolve(opts)
	if err != nil {
		return nil, &LoadError{Source: src, Err: err}
	}
	ds, err := readSQL(ctx, src, db, o.Table)
	if err != nil {
		return nil, err
	}

	return build(ctx, src, ds, o)
}

// loadSQLiteFile opens path read-only; a missing file is ErrUnreadable
// rather than a freshly created empty database.
func loadSQLiteFile(ctx context.Context, path string, o Options) (*benefit.Graph, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, &LoadError{Source: path, Err: fmt.Errorf("%w: %v", ErrUnreadable, err)}
	}
	db, err := sql.Open("sqlite3", "file:"+path+"?mode=ro")
	if err != nil {
		return nil, &LoadError{Source: path, Err: fmt.Errorf("%w: %v", ErrUnreadable, err)}
	}
	defer db.Close()

	ds, err := readSQL(ctx, path, db, o.Table)
	if err != nil {
		return nil, err
	}

	return build(ctx, path, ds, o)
}

func readSQL(ctx context.Context, src string, db *sql.DB, table string) (dataset, error) {
	var ds dataset

	// table is validated as a plain identifier by WithTable / DefaultTable.
	q := fmt.Sprintf("SELECT helper, helped, effect FROM %s ORDER BY rowid", table)
	rows, err := db.QueryContext(ctx, q)
	if err != nil {
		return ds, &LoadError{Source: src, Field: table, Err: fmt.Errorf("%w: %v", ErrUnreadable, err)}
	}
	defer rows.Close()

	num := 0
	for rows.Next() {
		num++
		var helper, helped, effect sql.NullString
		if err = rows.Scan(&helper, &helped, &effect); err != nil {
			return ds, &LoadError{Source: src, Record: num, Err: fmt.Errorf("%w: %v", ErrUnreadable, err)}
		}
		rec, err := rowRecord(src, num, []string{helper.String, helped.String, effect.String})
		if err != nil {
			return ds, err
		}
		ds.records = append(ds.records, rec)
	}
	if err = rows.Err(); err != nil {
		return ds, &LoadError{Source: src, Record: num, Err: fmt.Errorf("%w: %v", ErrUnreadable, err)}
	}

	return ds, nil
}
