package bookmock

import (
	"context"

	domain "library-backend/internal/domain/book"
)

// Repo is a function-backed mock that satisfies book.Repository.
// Only set the functions your test needs.
type Repo struct {
	CreateFn             func(ctx context.Context, b *domain.Book) error
	GetByBookIDFn        func(ctx context.Context, bookID string) (*domain.Book, error)
	ListFn               func(ctx context.Context) ([]domain.Book, error)
	SaveFn               func(ctx context.Context, b *domain.Book) error
	DeleteFn             func(ctx context.Context, bookID string) error
	DecrementAvailableFn func(ctx context.Context, bookID string) error
	IncrementAvailableFn func(ctx context.Context, bookID string) (bool, error)
}

func (m *Repo) Create(ctx context.Context, b *domain.Book) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, b)
	}
	return nil
}

func (m *Repo) GetByBookID(ctx context.Context, bookID string) (*domain.Book, error) {
	if m.GetByBookIDFn != nil {
		return m.GetByBookIDFn(ctx, bookID)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) List(ctx context.Context) ([]domain.Book, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}

func (m *Repo) Save(ctx context.Context, b *domain.Book) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, b)
	}
	return nil
}

func (m *Repo) Delete(ctx context.Context, bookID string) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, bookID)
	}
	return nil
}

func (m *Repo) DecrementAvailable(ctx context.Context, bookID string) error {
	if m.DecrementAvailableFn != nil {
		return m.DecrementAvailableFn(ctx, bookID)
	}
	return nil
}

func (m *Repo) IncrementAvailable(ctx context.Context, bookID string) (bool, error) {
	if m.IncrementAvailableFn != nil {
		return m.IncrementAvailableFn(ctx, bookID)
	}
	return true, nil
}
