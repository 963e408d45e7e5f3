package cmdutil

import (
	"context"

	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/c9s/cexio/pkg/service"
)

// ConnectDatabase opens the database named by --db-driver and --db-dsn and creates the missing tables.
func ConnectDatabase(ctx context.Context, v *viper.Viper) (*service.DatabaseService, error) {
	driver := v.GetString("db-driver")
	dsn := v.GetString("db-dsn")
	if dsn == "" {
		return nil, errors.New("--db-dsn option or DB_DSN is required")
	}

	db, err := service.NewDatabaseService(driver, dsn)
	if err != nil {
		return nil, err
	}

	if err := db.Connect(); err != nil {
		return nil, errors.Wrapf(err, "can not connect to %s database", driver)
	}

	if err := db.Upgrade(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	log.Debugf("connected to %s database", driver)
	return db, nil
}
