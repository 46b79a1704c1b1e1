package core

import "fmt"

// ItemKind tags the CatalogItem variants.
type ItemKind string

const (
	KindBook    ItemKind = "book"
	KindJournal ItemKind = "journal"
)

// CatalogItem is a lendable entity. The set of implementations is closed: *Book and *Journal.
//
// The checked-out flag can only be changed through WithCheckedOut, which returns a copy.
type CatalogItem interface {
	Title() string
	Identifier() Identifier
	Details() string
	IsCheckedOut() bool
	Kind() ItemKind

	clone() CatalogItem
	setCheckedOut(checkedOut bool)
}

// CloneItem returns a deep copy of the item.
func CloneItem(item CatalogItem) CatalogItem {
	return item.clone()
}

// WithCheckedOut returns a copy of the item with the checked-out flag set.
func WithCheckedOut(item CatalogItem, checkedOut bool) CatalogItem {
	c := item.clone()
	c.setCheckedOut(checkedOut)

	return c
}

type itemBase struct {
	title      string
	identifier Identifier
	checkedOut bool
}

func (b *itemBase) Title() string {
	return b.title
}

func (b *itemBase) Identifier() Identifier {
	return b.identifier
}

func (b *itemBase) IsCheckedOut() bool {
	return b.checkedOut
}

func (b *itemBase) setCheckedOut(checkedOut bool) {
	b.checkedOut = checkedOut
}

/***** Book *****/

type Book struct {
	itemBase
	author string
	copies int
}

// NewBook creates a book with one copy.
func NewBook(title string, identifier Identifier, author string) *Book {
	return NewBookWithCopies(title, identifier, author, 1)
}

// NewBookWithCopies creates a book; a negative copy count is stored as zero.
func NewBookWithCopies(title string, identifier Identifier, author string, copies int) *Book {
	return &Book{
		itemBase: itemBase{title: title, identifier: identifier},
		author:   author,
		copies:   max(copies, 0),
	}
}

func (b *Book) Author() string {
	return b.author
}

func (b *Book) Copies() int {
	return b.copies
}

// AddCopies increments the copy count by n. Values below 1 are ignored.
func (b *Book) AddCopies(n int) {
	if n < 1 {
		return
	}

	b.copies += n
}

func (b *Book) AddCopy() {
	b.AddCopies(1)
}

func (b *Book) Kind() ItemKind {
	return KindBook
}

func (b *Book) Details() string {
	return fmt.Sprintf("Book: '%s' by %s. Copies: %d. %s", b.title, b.author, b.copies, b.identifier)
}

func (b *Book) clone() CatalogItem {
	c := *b
	return &c
}

/***** Journal *****/

type Journal struct {
	itemBase
	volume int
	issue  int
}

func NewJournal(title string, identifier Identifier, volume int, issue int) *Journal {
	return &Journal{
		itemBase: itemBase{title: title, identifier: identifier},
		volume:   volume,
		issue:    issue,
	}
}

func (j *Journal) Volume() int {
	return j.volume
}

func (j *Journal) Issue() int {
	return j.issue
}

func (j *Journal) Kind() ItemKind {
	return KindJournal
}

func (j *Journal) Details() string {
	return fmt.Sprintf("Journal: '%s', Vol %d, Issue %d. %s", j.title, j.volume, j.issue, j.identifier)
}

func (j *Journal) clone() CatalogItem {
	c := *j
	return &c
}
