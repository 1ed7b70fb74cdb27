package book

import "context"

type Repository interface {
	Create(ctx context.Context, b *Book) error
	GetByBookID(ctx context.Context, bookID string) (*Book, error)
	List(ctx context.Context) ([]Book, error)
	Save(ctx context.Context, b *Book) error
	Delete(ctx context.Context, bookID string) error

	// DecrementAvailable atomically takes one copy off the shelf.
	// Returns ErrOutOfStock when no copy is available; the check and the
	// write are a single conditional statement, so two concurrent issues
	// of the last copy cannot both succeed.
	DecrementAvailable(ctx context.Context, bookID string) error

	// IncrementAvailable puts one copy back, clamped to total_copies.
	// The bool reports whether a copy was actually restocked; false means
	// the clamp was hit (total_copies shrank after issuance).
	IncrementAvailable(ctx context.Context, bookID string) (bool, error)
}
