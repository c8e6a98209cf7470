package storage

import (
	"context"
	"database/sql"
	"log"

	_ "github.com/lib/pq"
	"github.com/stephenafamo/bob"

	"github.com/carson-networks/finance-tracker/internal/config"
	"github.com/carson-networks/finance-tracker/internal/storage/category"
	"github.com/carson-networks/finance-tracker/internal/storage/transaction"
)

// Storage is the single source of truth for durable state. Reads go through
// the table fields; writes go through a Writer obtained from Write, which
// binds every table to one database transaction.
type Storage struct {
	DB           *sql.DB
	Categories   category.ITable
	Transactions transaction.ITable

	bobDB bob.DB
}

func NewStorage(env *config.Config) *Storage {
	connStr := "postgres://" + env.PostgresUsername + ":" +
		env.PostgresPassword + "@" + env.PostgresAddress + ":" +
		env.PostgresPort + "/" + env.PostgresDB + "?sslmode=disable"

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		log.Fatal(err)
	}

	bobDB := bob.NewDB(db)

	return &Storage{
		DB:           db,
		Categories:   category.NewReader(bobDB),
		Transactions: transaction.NewReader(bobDB),
		bobDB:        bobDB,
	}
}

// Write begins a database transaction and returns a Writer bound to it.
func (s *Storage) Write(ctx context.Context) (*Writer, error) {
	tx, err := s.bobDB.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return NewWriter(tx), nil
}
