package zombiezen

import (
	"embed"

	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"
)

// sqlFiles embeds all SQL scripts from the sql/ subdirectory.
//
//go:embed sql/*.sql
var sqlFiles embed.FS

// initSchema runs the embedded schema script on the connection.
// ExecuteScript handles multi-statement strings.
func initSchema(conn *sqlite.Conn) error {
	script, err := sqlFiles.ReadFile("sql/runs.sql")
	if err != nil {
		return err
	}

	return sqlitex.ExecuteScript(conn, string(script), nil)
}
