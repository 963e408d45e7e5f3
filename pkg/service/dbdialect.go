package service

import (
	sq "github.com/Masterminds/squirrel"
)

// DatabaseDialect provides database-specific SQL syntax
type DatabaseDialect interface {
	// Query builder configuration
	PlaceholderFormat() sq.PlaceholderFormat

	// Column types used by the schema
	TimestampType() string
	DecimalType() string

	// MySQL has no CREATE INDEX IF NOT EXISTS
	SupportsCreateIndexIfNotExists() bool

	// Name escaping
	EscapeColumnName(name string) string
	EscapeTableName(name string) string
}

// GetDialect returns the appropriate dialect for the given driver name
func GetDialect(driverName string) DatabaseDialect {
	switch driverName {
	case "mysql":
		return &MySQLDialect{}
	case "postgres":
		return &PostgreSQLDialect{}
	case "sqlite3":
		return &SQLiteDialect{}
	default:
		return &SQLiteDialect{} // default fallback
	}
}

// MySQLDialect implements MySQL-specific SQL syntax
type MySQLDialect struct{}

func (d *MySQLDialect) PlaceholderFormat() sq.PlaceholderFormat {
	return sq.Question
}

func (d *MySQLDialect) TimestampType() string {
	return "DATETIME(3)"
}

func (d *MySQLDialect) DecimalType() string {
	return "DECIMAL(32, 8)"
}

func (d *MySQLDialect) SupportsCreateIndexIfNotExists() bool {
	return false
}

func (d *MySQLDialect) EscapeColumnName(name string) string {
	return "`" + name + "`"
}

func (d *MySQLDialect) EscapeTableName(name string) string {
	return "`" + name + "`"
}

// PostgreSQLDialect implements PostgreSQL-specific SQL syntax
type PostgreSQLDialect struct{}

func (d *PostgreSQLDialect) PlaceholderFormat() sq.PlaceholderFormat {
	return sq.Dollar
}

func (d *PostgreSQLDialect) TimestampType() string {
	return "TIMESTAMP"
}

func (d *PostgreSQLDialect) DecimalType() string {
	return "NUMERIC(32, 8)"
}

func (d *PostgreSQLDialect) SupportsCreateIndexIfNotExists() bool {
	return true
}

func (d *PostgreSQLDialect) EscapeColumnName(name string) string {
	return `"` + name + `"`
}

func (d *PostgreSQLDialect) EscapeTableName(name string) string {
	return `"` + name + `"`
}

// SQLiteDialect implements SQLite-specific SQL syntax
type SQLiteDialect struct{}

func (d *SQLiteDialect) PlaceholderFormat() sq.PlaceholderFormat {
	return sq.Question
}

func (d *SQLiteDialect) TimestampType() string {
	return "DATETIME"
}

func (d *SQLiteDialect) DecimalType() string {
	return "TEXT"
}

func (d *SQLiteDialect) SupportsCreateIndexIfNotExists() bool {
	return true
}

func (d *SQLiteDialect) EscapeColumnName(name string) string {
	return "`" + name + "`"
}

func (d *SQLiteDialect) EscapeTableName(name string) string {
	return "`" + name + "`"
}
