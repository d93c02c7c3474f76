package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"hrdesk/internal/core"
	client "hrdesk/internal/database/client"
	"hrdesk/internal/database/slot"
)

// SlotRepository 每個 slot 一列：name 為主鍵，value 為序列化後的內容
type SlotRepository struct {
	db    *sql.DB
	table string
}

func NewSlotRepository(sqliteClient *client.SQLiteClient) (*SlotRepository, error) {
	repository := &SlotRepository{db: sqliteClient.DB(), table: string(core.SQLiteTableSlots)}
	if err := repository.migrate(context.Background()); err != nil {
		return nil, err
	}
	return repository, nil
}

func (repository *SlotRepository) migrate(ctx context.Context) error {
	_, err := repository.db.ExecContext(ctx, fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
		name TEXT PRIMARY KEY,
		value BLOB NOT NULL,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`, repository.table))
	if err != nil {
		return fmt.Errorf("migrate %s: %w", repository.table, err)
	}
	return nil
}

func (repository *SlotRepository) Get(ctx context.Context, name core.SlotName) ([]byte, error) {
	var value []byte
	err := repository.db.QueryRowContext(ctx,
		fmt.Sprintf(`SELECT value FROM %s WHERE name = ?`, repository.table), string(name),
	).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, slot.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return value, nil
}

func (repository *SlotRepository) Set(ctx context.Context, name core.SlotName, value []byte) error {
	_, err := repository.db.ExecContext(ctx, fmt.Sprintf(`INSERT INTO %s (name, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(name) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`, repository.table),
		string(name), value)
	return err
}

func (repository *SlotRepository) Delete(ctx context.Context, name core.SlotName) error {
	_, err := repository.db.ExecContext(ctx,
		fmt.Sprintf(`DELETE FROM %s WHERE name = ?`, repository.table), string(name))
	return err
}

func (repository *SlotRepository) Names(ctx context.Context) ([]core.SlotName, error) {
	rows, err := repository.db.QueryContext(ctx, fmt.Sprintf(`SELECT name FROM %s ORDER BY name`, repository.table))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []core.SlotName
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, core.SlotName(name))
	}
	return names, rows.Err()
}

func (repository *SlotRepository) Driver() core.StorageDriver { return core.StorageSQLite }
