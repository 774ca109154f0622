// Package db contains the database connection bootstrap
package db

import (
	"dkowalik/todo-api/model"
	"fmt"

	"github.com/spf13/viper"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func New() (*gorm.DB, error) {
	var (
		db  *gorm.DB
		err error
	)

	// TranslateError turns driver specific unique violations into
	// gorm.ErrDuplicatedKey so handlers can map them to 400s
	cfg := &gorm.Config{TranslateError: true}

	switch viper.GetString("db.driver") {
	case "postgres":
		db, err = gorm.Open(postgres.Open(viper.GetString("db.dsn")), cfg)
	default:
		db, err = gorm.Open(sqlite.Open(viper.GetString("db.path")), cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database, %w", err)
	}

	err = db.AutoMigrate(model.User{}, model.Token{}, model.Todo{})
	if err != nil {
		return nil, fmt.Errorf("failed to automigrate tables, %w", err)
	}

	return db, nil
}
