package service

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"sistema_eventos/model"
)

// setupTestDB abre um SQLite em memória e migra todas as entidades.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("não foi possível abrir DB de teste: %v", err)
	}
	if err := db.AutoMigrate(
		&model.Location{},
		&model.User{},
		&model.Event{},
		&model.Order{},
		&model.Ticket{},
		&model.Rating{},
	); err != nil {
		t.Fatalf("falha na migração: %v", err)
	}
	return db
}
