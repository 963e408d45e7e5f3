package service

import (
	"context"
	"fmt"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type DatabaseService struct {
	Driver string
	DSN    string
	DB     *sqlx.DB
}

func NewDatabaseService(driver, dsn string) (*DatabaseService, error) {
	if driver == "mysql" {
		var err error
		dsn, err = ReformatMysqlDSN(dsn)
		if err != nil {
			return nil, errors.Wrap(err, "invalid mysql dsn")
		}
	}

	return &DatabaseService{
		Driver: driver,
		DSN:    dsn,
	}, nil
}

func (s *DatabaseService) Connect() error {
	var err error
	s.DB, err = sqlx.Connect(s.Driver, s.DSN)
	return err
}

func (s *DatabaseService) Close() error {
	return s.DB.Close()
}

func (s *DatabaseService) Dialect() DatabaseDialect {
	return GetDialect(s.Driver)
}

// Upgrade creates the tables and indexes that do not exist yet.
func (s *DatabaseService) Upgrade(ctx context.Context) error {
	for _, stmt := range schemaStatements(s.Dialect()) {
		log.Debugf("executing schema statement: %s", stmt)
		if _, err := s.DB.ExecContext(ctx, stmt); err != nil {
			return errors.Wrapf(err, "schema upgrade failed")
		}
	}

	return nil
}

func schemaStatements(dialect DatabaseDialect) []string {
	table := dialect.EscapeTableName(orderBookSnapshotTable)
	col := dialect.EscapeColumnName

	stmts := []string{
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
    %s VARCHAR(36) NOT NULL PRIMARY KEY,
    %s %s NOT NULL,
    %s VARCHAR(32) NOT NULL,
    %s VARCHAR(16) NOT NULL,
    %s VARCHAR(16) NOT NULL,
    %s %s NOT NULL,
    %s TEXT NOT NULL,
    %s TEXT NOT NULL,
    %s %s NOT NULL
)`,
			table,
			col("uuid"),
			col("timestamp"), dialect.TimestampType(),
			col("exchange"),
			col("pair_base"),
			col("pair_quote"),
			col("exchange_timestamp"), dialect.TimestampType(),
			col("bids"),
			col("asks"),
			col("volume"), dialect.DecimalType(),
		),
	}

	if dialect.SupportsCreateIndexIfNotExists() {
		stmts = append(stmts, fmt.Sprintf("CREATE INDEX IF NOT EXISTS %s ON %s (%s, %s, %s, %s)",
			col("prices_exchange_pair_timestamp"), table,
			col("exchange"), col("pair_base"), col("pair_quote"), col("timestamp")))
	}

	return stmts
}

func ReformatMysqlDSN(dsn string) (string, error) {
	config, err := mysql.ParseDSN(dsn)
	if err != nil {
		return "", err
	}

	config.ParseTime = true
	dsn = config.FormatDSN()
	return dsn, nil
}
