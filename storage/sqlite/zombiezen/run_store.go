package zombiezen

import (
	"context"
	"encoding/json"
	"fmt"
	"runtime"
	"time"

	"github.com/revelaction/annodiff/compare"
	"github.com/revelaction/annodiff/storage"
	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"
)

// RunHandler stores runs in a single sqlite database file. Records are
// kept as a JSON text column.
type RunHandler struct {
	pool *sqlitex.Pool
}

var _ storage.RunRepository = (*RunHandler)(nil)

// NewRunHandler opens the sqlite run store at dbPath, creating file and
// schema when missing.
func NewRunHandler(dbPath string) (*RunHandler, error) {
	poolSize := runtime.NumCPU()
	initString := fmt.Sprintf("file:%s?_journal_mode=WAL&_synchronous=NORMAL&_busy_timeout=5000", dbPath)

	pool, err := sqlitex.NewPool(initString, sqlitex.PoolOptions{
		PoolSize: poolSize,
		PrepareConn: func(conn *sqlite.Conn) error {
			return initSchema(conn)
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create zombiezen pool at %s: %w", dbPath, err)
	}

	return &RunHandler{pool: pool}, nil
}

func (h *RunHandler) Close() error {
	return h.pool.Close()
}

func (h *RunHandler) List() ([]storage.Run, error) {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return nil, err
	}
	defer h.pool.Put(conn)

	runs := []storage.Run{}
	err = sqlitex.Execute(conn, "SELECT id, created_at, name_a, name_b, truncated, num_records FROM runs ORDER BY id", &sqlitex.ExecOptions{
		ResultFunc: func(stmt *sqlite.Stmt) error {
			created, err := time.Parse(time.RFC3339, stmt.ColumnText(1))
			if err != nil {
				return err
			}

			runs = append(runs, storage.Run{
				Id:         int(stmt.ColumnInt64(0)),
				CreatedAt:  created,
				NameA:      stmt.ColumnText(2),
				NameB:      stmt.ColumnText(3),
				Truncated:  int(stmt.ColumnInt64(4)),
				NumRecords: int(stmt.ColumnInt64(5)),
			})
			return nil
		},
	})
	if err != nil {
		return nil, err
	}

	return runs, nil
}

func (h *RunHandler) Read(id int) (storage.Run, error) {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return storage.Run{}, err
	}
	defer h.pool.Put(conn)

	run := storage.Run{}
	found := false
	err = sqlitex.Execute(conn, "SELECT id, created_at, name_a, name_b, truncated, num_records, records FROM runs WHERE id = ?", &sqlitex.ExecOptions{
		Args: []any{id},
		ResultFunc: func(stmt *sqlite.Stmt) error {
			found = true

			created, err := time.Parse(time.RFC3339, stmt.ColumnText(1))
			if err != nil {
				return err
			}

			var records []compare.Record
			if err := json.Unmarshal([]byte(stmt.ColumnText(6)), &records); err != nil {
				return err
			}

			run = storage.Run{
				Id:         int(stmt.ColumnInt64(0)),
				CreatedAt:  created,
				NameA:      stmt.ColumnText(2),
				NameB:      stmt.ColumnText(3),
				Truncated:  int(stmt.ColumnInt64(4)),
				NumRecords: int(stmt.ColumnInt64(5)),
				Records:    records,
			}
			return nil
		},
	})
	if err != nil {
		return storage.Run{}, err
	}

	if !found {
		return storage.Run{}, fmt.Errorf("no run with id %d", id)
	}

	return run, nil
}

func (h *RunHandler) Write(run storage.Run) (int, error) {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return 0, err
	}
	defer h.pool.Put(conn)

	recordsJSON, err := json.Marshal(run.Records)
	if err != nil {
		return 0, err
	}

	createdAt := run.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	err = sqlitex.Execute(conn, "INSERT INTO runs (created_at, name_a, name_b, truncated, num_records, records) VALUES (?, ?, ?, ?, ?, ?)", &sqlitex.ExecOptions{
		Args: []any{createdAt.Format(time.RFC3339), run.NameA, run.NameB, run.Truncated, run.NumRecords, string(recordsJSON)},
	})
	if err != nil {
		return 0, err
	}

	return int(conn.LastInsertRowID()), nil
}
