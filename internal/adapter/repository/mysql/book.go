package mysql

import (
	"context"
	"errors"

	bookDomain "library-backend/internal/domain/book"

	"gorm.io/gorm"
)

type BookRepository struct{ db *gorm.DB }

func NewBookRepository(db *gorm.DB) *BookRepository { return &BookRepository{db: db} }

func (r *BookRepository) Create(ctx context.Context, b *bookDomain.Book) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *BookRepository) GetByBookID(ctx context.Context, bookID string) (*bookDomain.Book, error) {
	var out bookDomain.Book
	res := r.db.WithContext(ctx).Where("book_id = ?", bookID).First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, bookDomain.ErrNotFound
	}
	return &out, res.Error
}

func (r *BookRepository) List(ctx context.Context) ([]bookDomain.Book, error) {
	var out []bookDomain.Book
	res := r.db.WithContext(ctx).Order("title ASC").Find(&out)
	return out, res.Error
}

func (r *BookRepository) Save(ctx context.Context, b *bookDomain.Book) error {
	return r.db.WithContext(ctx).Save(b).Error
}

func (r *BookRepository) Delete(ctx context.Context, bookID string) error {
	res := r.db.WithContext(ctx).Where("book_id = ?", bookID).Delete(&bookDomain.Book{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return bookDomain.ErrNotFound
	}
	return nil
}

// DecrementAvailable is the stock check and the take in one statement;
// zero rows affected means there was no copy to take.
func (r *BookRepository) DecrementAvailable(ctx context.Context, bookID string) error {
	res := r.db.WithContext(ctx).Model(&bookDomain.Book{}).
		Where("book_id = ? AND available_copies > 0", bookID).
		UpdateColumn("available_copies", gorm.Expr("available_copies - 1"))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		// distinguish a missing book from an empty shelf
		if _, err := r.GetByBookID(ctx, bookID); err != nil {
			return err
		}
		return bookDomain.ErrOutOfStock
	}
	return nil
}

// IncrementAvailable restocks one copy, clamped to total_copies.
func (r *BookRepository) IncrementAvailable(ctx context.Context, bookID string) (bool, error) {
	res := r.db.WithContext(ctx).Model(&bookDomain.Book{}).
		Where("book_id = ? AND available_copies < total_copies", bookID).
		UpdateColumn("available_copies", gorm.Expr("available_copies + 1"))
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
