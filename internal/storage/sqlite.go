// Package storage persists the ledger's collections as JSON blobs in
// SQLite, one slot per collection.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// Slot names for the persisted collections.
const (
	SlotTransactions     = "transactions"
	SlotAccounts         = "accounts"
	SlotBudgets          = "budgets"
	SlotSavingsGoals     = "savingsGoals"
	SlotSubscriptions    = "subscriptions"
	SlotDebts            = "debts"
	SlotDjam3ias         = "djam3ias"
	SlotCustomCategories = "customCategories"
	SlotShopItems        = "shopItems"
	SlotAppSettings      = "appSettings"
	SlotDarkMode         = "darkMode"
)

// SQLiteStorage implements the collection blob store using SQLite.
type SQLiteStorage struct {
	db     *sql.DB
	dbPath string
}

// NewSQLiteStorage creates a new SQLite storage instance.
func NewSQLiteStorage(dbPath string) (*SQLiteStorage, error) {
	if dbPath == "" {
		return nil, fmt.Errorf("dbPath cannot be empty")
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite doesn't benefit from multiple connections.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &SQLiteStorage{
		db:     db,
		dbPath: dbPath,
	}, nil
}

// Close closes the database connection.
func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}

// LoadRaw returns the serialized blob stored in a slot, or nil when
// the slot has never been written.
func (s *SQLiteStorage) LoadRaw(ctx context.Context, slot string) ([]byte, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateSlot(slot); err != nil {
		return nil, err
	}

	var data []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT data FROM collections WHERE slot = ?`, slot).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load slot %q: %w", slot, err)
	}
	return data, nil
}

// SaveRaw writes a serialized blob to a slot, replacing any previous
// value. Used directly by the import path to bypass in-memory state.
func (s *SQLiteStorage) SaveRaw(ctx context.Context, slot string, data []byte) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateSlot(slot); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO collections (slot, data, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(slot) DO UPDATE SET
			data = excluded.data,
			updated_at = CURRENT_TIMESTAMP`,
		slot, data)
	if err != nil {
		return fmt.Errorf("failed to save slot %q: %w", slot, err)
	}
	return nil
}

// SaveAll writes every given slot in a single database transaction.
// Writes within the batch are atomic, but the ledger still serializes
// each collection independently; see the multi-writer disclaimer in
// the ledger package.
func (s *SQLiteStorage) SaveAll(ctx context.Context, slots map[string][]byte) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for slot, data := range slots {
		if err := validateSlot(slot); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO collections (slot, data, updated_at)
			VALUES (?, ?, CURRENT_TIMESTAMP)
			ON CONFLICT(slot) DO UPDATE SET
				data = excluded.data,
				updated_at = CURRENT_TIMESTAMP`,
			slot, data); err != nil {
			return fmt.Errorf("failed to save slot %q: %w", slot, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	return nil
}

// DeleteAll removes every persisted slot. Used by the clear-data path.
func (s *SQLiteStorage) DeleteAll(ctx context.Context) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if _, err := s.db.ExecContext(ctx, `DELETE FROM collections`); err != nil {
		return fmt.Errorf("failed to clear collections: %w", err)
	}
	return nil
}

func validateContext(ctx context.Context) error {
	if ctx == nil {
		return fmt.Errorf("context cannot be nil")
	}
	return ctx.Err()
}

func validateSlot(slot string) error {
	if slot == "" {
		return fmt.Errorf("slot cannot be empty")
	}
	return nil
}
