package book

import (
	"errors"
	"time"
)

var (
	ErrNotFound = errors.New("book not found")

	// ErrOutOfStock means the conditional stock decrement found no available copy.
	ErrOutOfStock = errors.New("no copies of this book are currently available")
)

// Book is a catalog entry. AvailableCopies moves only through the
// repository's conditional decrement/increment so that
// 0 <= available_copies <= total_copies holds at all times.
type Book struct {
	ID              uint64    `gorm:"primaryKey;column:id" json:"-"`
	BookID          string    `gorm:"column:book_id;size:32;uniqueIndex:ux_books_book_id" json:"book_id"`
	Title           string    `gorm:"column:title;size:255;not null" json:"title"`
	Author          string    `gorm:"column:author;size:255" json:"author"`
	TotalCopies     int       `gorm:"column:total_copies;not null" json:"total_copies"`
	AvailableCopies int       `gorm:"column:available_copies;not null" json:"available_copies"`
	CreatedAt       time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Book) TableName() string { return "books" }
