package db_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"ironlog/internal/config"
	"ironlog/internal/infra"
)

var Module = fx.Provide(
	provideDB)

func provideDB(cfg *config.Config) (*gorm.DB, error) {
	db, err := infra.InitPostgresql(&cfg.DB)
	if err != nil {
		return nil, err
	}

	if err := infra.Migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}
