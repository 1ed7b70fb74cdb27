package catalog

import (
	"context"
	"errors"

	bookDomain "library-backend/internal/domain/book"
	"library-backend/pkg/id"
)

var ErrInvalidCopies = errors.New("total copies must be at least 0")

// Usecase is the librarian/admin inventory surface: catalog CRUD. Stock
// movement during lending never goes through here; it uses the repository's
// conditional increment/decrement.
type Usecase struct {
	books bookDomain.Repository
}

func NewUsecase(books bookDomain.Repository) *Usecase { return &Usecase{books: books} }

type CreateBookInput struct {
	Title       string
	Author      string
	TotalCopies int
}

func (u *Usecase) Create(ctx context.Context, in CreateBookInput) (*bookDomain.Book, error) {
	if in.TotalCopies < 0 {
		return nil, ErrInvalidCopies
	}
	b := &bookDomain.Book{
		BookID:          id.NewID32(),
		Title:           in.Title,
		Author:          in.Author,
		TotalCopies:     in.TotalCopies,
		AvailableCopies: in.TotalCopies,
	}
	if err := u.books.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (u *Usecase) Get(ctx context.Context, bookID string) (*bookDomain.Book, error) {
	return u.books.GetByBookID(ctx, bookID)
}

func (u *Usecase) List(ctx context.Context) ([]bookDomain.Book, error) {
	return u.books.List(ctx)
}

type UpdateBookInput struct {
	Title       *string
	Author      *string
	TotalCopies *int
}

// Update edits catalog fields. Shrinking total copies clamps available
// copies down with it; loans in flight keep their title snapshots.
func (u *Usecase) Update(ctx context.Context, bookID string, in UpdateBookInput) (*bookDomain.Book, error) {
	b, err := u.books.GetByBookID(ctx, bookID)
	if err != nil {
		return nil, err
	}
	if in.Title != nil {
		b.Title = *in.Title
	}
	if in.Author != nil {
		b.Author = *in.Author
	}
	if in.TotalCopies != nil {
		if *in.TotalCopies < 0 {
			return nil, ErrInvalidCopies
		}
		delta := *in.TotalCopies - b.TotalCopies
		b.TotalCopies = *in.TotalCopies
		if delta > 0 {
			b.AvailableCopies += delta
		}
		if b.AvailableCopies > b.TotalCopies {
			b.AvailableCopies = b.TotalCopies
		}
	}
	if err := u.books.Save(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (u *Usecase) Delete(ctx context.Context, bookID string) error {
	return u.books.Delete(ctx, bookID)
}
