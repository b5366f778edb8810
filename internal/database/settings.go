package database

import (
	"context"
	"database/sql"
	"errors"
)

func (d *Database) GetSetting(ctx context.Context, key string) (string, bool) {
	value, err := withDBContextResult(d, ctx, func(ctx context.Context) (sql.NullString, error) {
		var value sql.NullString
		err := d.DB.QueryRowContext(ctx, "SELECT value FROM settings WHERE key = ?", key).Scan(&value)
		return value, err
	})
	if err != nil || !value.Valid {
		return "", false
	}
	return value.String, true
}

func (d *Database) SetSetting(ctx context.Context, key, value string) error {
	if key == "" {
		return wrapSettingErr("set", key, errors.New("empty key"))
	}
	return d.withDBContext(ctx, func(ctx context.Context) error {
		_, err := d.DB.ExecContext(ctx, "INSERT INTO settings (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value", key, value)
		return wrapSettingErr("set", key, err)
	})
}
