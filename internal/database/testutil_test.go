package database

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
)

func setupTestDB(t *testing.T, ctx context.Context) *Database {
	t.Helper()
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "test.db")
	db, err := Open(ctx, dbPath)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Logf("db close failed: %v", err)
		}
	})
	return db
}

type TestDataBuilder struct {
	t       *testing.T
	ctx     context.Context
	db      *Database
	taskIDs []string
}

func NewTestDataBuilder(t *testing.T) *TestDataBuilder {
	t.Helper()
	ctx := context.Background()
	db := setupTestDB(t, ctx)
	return &TestDataBuilder{t: t, ctx: ctx, db: db}
}

func (b *TestDataBuilder) WithTasks(date string, count int) *TestDataBuilder {
	b.t.Helper()
	for i := 0; i < count; i++ {
		task, err := b.db.AddTask(b.ctx, fmt.Sprintf("Task %s #%d", date, i+1), date, "")
		if err != nil {
			b.t.Fatalf("AddTask failed: %v", err)
		}
		b.taskIDs = append(b.taskIDs, task.ID)
	}
	return b
}

func (b *TestDataBuilder) Build() *Database {
	return b.db
}

func (b *TestDataBuilder) TaskIDs() []string {
	return append([]string(nil), b.taskIDs...)
}
