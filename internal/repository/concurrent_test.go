package repository

import (
	"context"
	"database/sql"
	"path/filepath"
	"sync"
	"testing"

	"github.com/alexanderramin/milkround/internal/db"
	"github.com/alexanderramin/milkround/internal/domain"
	"github.com/alexanderramin/milkround/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newConcurrentTestDB creates a file-backed SQLite database in a temp directory.
// Unlike :memory:, a file-backed DB shares state across all connections in the
// pool, which is required to test real concurrent access with WAL mode.
func newConcurrentTestDB(t *testing.T) *sql.DB {
	t.Helper()
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "concurrent_test.db")
	database, err := db.OpenDB(dbPath)
	require.NoError(t, err, "failed to create concurrent test database")
	t.Cleanup(func() { database.Close() })
	return database
}

// TestConcurrentAccess_ScheduleReplaceIsNeverPartial swaps between two full
// schedules in transactions while readers load the schedule. Every read must
// match one of the two schedules exactly.
func TestConcurrentAccess_ScheduleReplaceIsNeverPartial(t *testing.T) {
	database := newConcurrentTestDB(t)
	ctx := context.Background()
	uow := db.NewSQLiteUnitOfWork(database)

	wide := testutil.NewTestSchedule(
		testutil.Line("cow", 1, 1),
		testutil.Line("buffalo", 0.5, 0),
		testutil.Line("a2", 0, 2),
	)
	narrow := testutil.NewTestSchedule(testutil.Line("cow", 2, 0))
	require.NoError(t, NewSQLiteScheduleRepo(database).Replace(ctx, wide))

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 20; i++ {
			next := narrow
			if i%2 == 1 {
				next = wide
			}
			err := uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
				return NewSQLiteScheduleRepo(tx).Replace(ctx, next)
			})
			if err != nil {
				t.Errorf("writer: replace %d: %v", i, err)
				return
			}
		}
	}()

	reader := NewSQLiteScheduleRepo(database)
	for r := 0; r < 5; r++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for i := 0; i < 10; i++ {
				got, err := reader.Get(ctx)
				if err != nil {
					t.Errorf("reader %d: get schedule: %v", id, err)
					return
				}
				if !assert.ObjectsAreEqual(wide, got) && !assert.ObjectsAreEqual(narrow, got) {
					t.Errorf("reader %d: observed partial schedule %+v", id, got.Lines)
				}
			}
		}(r)
	}

	wg.Wait()

	final, err := reader.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, wide, final)
}

// TestConcurrentAccess_OverrideWritesAndReads writes overrides for distinct
// products while readers list the day. Readers only ever see complete rows.
func TestConcurrentAccess_OverrideWritesAndReads(t *testing.T) {
	database := newConcurrentTestDB(t)
	ctx := context.Background()
	repo := NewSQLiteOverrideRepo(database)
	products := []string{"cow", "buffalo", "a2", "goat", "camel"}

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		for _, id := range products {
			if err := repo.Upsert(ctx, testutil.NewTestOverride(testutil.Day, id, testutil.WithLiters(1, 0.5))); err != nil {
				t.Errorf("writer: upsert %s: %v", id, err)
				return
			}
		}
	}()

	for r := 0; r < 5; r++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for i := 0; i < 10; i++ {
				got, err := repo.ListByDate(ctx, testutil.Day)
				if err != nil {
					t.Errorf("reader %d: list overrides: %v", id, err)
					return
				}
				for _, o := range got {
					if o.Kind != domain.OverrideAdjust || o.LitersMorning != 1 || o.LitersEvening != 0.5 {
						t.Errorf("reader %d: got incomplete override %+v", id, o)
					}
				}
			}
		}(r)
	}

	wg.Wait()

	got, err := repo.ListByDate(ctx, testutil.Day)
	require.NoError(t, err)
	assert.Len(t, got, len(products))
}
