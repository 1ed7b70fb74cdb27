package mysql

import (
	"context"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	bookDomain "library-backend/internal/domain/book"
	loanDomain "library-backend/internal/domain/loan"
	studentDomain "library-backend/internal/domain/student"
	"library-backend/pkg/id"
)

// openTestDB migrates the real domain models into an in-memory sqlite DB;
// the schema uses no mysql-only column types so this is safe.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&studentDomain.Student{}, &bookDomain.Book{}, &loanDomain.Record{}); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}

func seedBook(t *testing.T, repo *BookRepository, total, available int) *bookDomain.Book {
	t.Helper()
	b := &bookDomain.Book{
		BookID:          id.NewID32(),
		Title:           "The Mythical Man-Month",
		Author:          "Brooks",
		TotalCopies:     total,
		AvailableCopies: available,
	}
	if err := repo.Create(context.Background(), b); err != nil {
		t.Fatalf("seed book: %v", err)
	}
	return b
}

func TestBookRepo_CreateAndGet(t *testing.T) {
	repo := NewBookRepository(openTestDB(t))
	b := seedBook(t, repo, 3, 3)

	got, err := repo.GetByBookID(context.Background(), b.BookID)
	if err != nil {
		t.Fatalf("GetByBookID: %v", err)
	}
	if got.Title != b.Title || got.AvailableCopies != 3 {
		t.Fatalf("got %+v", got)
	}

	if _, err := repo.GetByBookID(context.Background(), id.NewID32()); err != bookDomain.ErrNotFound {
		t.Fatalf("missing book: want ErrNotFound, got %v", err)
	}
}

func TestBookRepo_DecrementToZeroThenOutOfStock(t *testing.T) {
	repo := NewBookRepository(openTestDB(t))
	b := seedBook(t, repo, 1, 1)
	ctx := context.Background()

	if err := repo.DecrementAvailable(ctx, b.BookID); err != nil {
		t.Fatalf("first decrement: %v", err)
	}
	got, _ := repo.GetByBookID(ctx, b.BookID)
	if got.AvailableCopies != 0 {
		t.Fatalf("available = %d, want 0", got.AvailableCopies)
	}

	if err := repo.DecrementAvailable(ctx, b.BookID); err != bookDomain.ErrOutOfStock {
		t.Fatalf("second decrement: want ErrOutOfStock, got %v", err)
	}
	got, _ = repo.GetByBookID(ctx, b.BookID)
	if got.AvailableCopies != 0 {
		t.Fatalf("available went negative: %d", got.AvailableCopies)
	}
}

func TestBookRepo_DecrementMissingBook(t *testing.T) {
	repo := NewBookRepository(openTestDB(t))

	if err := repo.DecrementAvailable(context.Background(), id.NewID32()); err != bookDomain.ErrNotFound {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestBookRepo_IncrementClampsAtTotal(t *testing.T) {
	repo := NewBookRepository(openTestDB(t))
	b := seedBook(t, repo, 2, 1)
	ctx := context.Background()

	restocked, err := repo.IncrementAvailable(ctx, b.BookID)
	if err != nil || !restocked {
		t.Fatalf("increment: restocked=%v err=%v", restocked, err)
	}

	// at total now: a further increment is clamped, not applied
	restocked, err = repo.IncrementAvailable(ctx, b.BookID)
	if err != nil {
		t.Fatalf("increment at cap: %v", err)
	}
	if restocked {
		t.Fatal("expected clamp at total_copies")
	}
	got, _ := repo.GetByBookID(ctx, b.BookID)
	if got.AvailableCopies != 2 {
		t.Fatalf("available = %d, want 2", got.AvailableCopies)
	}
}

func TestBookRepo_Delete(t *testing.T) {
	repo := NewBookRepository(openTestDB(t))
	b := seedBook(t, repo, 1, 1)
	ctx := context.Background()

	if err := repo.Delete(ctx, b.BookID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := repo.Delete(ctx, b.BookID); err != bookDomain.ErrNotFound {
		t.Fatalf("second delete: want ErrNotFound, got %v", err)
	}
}
