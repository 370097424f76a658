package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"sistema_eventos/model"
)

// Connect abre a conexão Postgres a partir da connection string e migra
// o schema das seis entidades.
func Connect(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("falha ao conectar banco de dados: %w", err)
	}

	if err := db.AutoMigrate(
		&model.Location{},
		&model.User{},
		&model.Event{},
		&model.Order{},
		&model.Ticket{},
		&model.Rating{},
	); err != nil {
		return nil, fmt.Errorf("falha na migração: %w", err)
	}

	return db, nil
}
