package library

import (
	"log"
	"sync"
	"time"

	"bookflix/internal/openlibrary"
)

// Item is one status-tagged book in the user's library. The book is a full
// copy, not a reference, so the library renders without re-fetching.
type Item struct {
	Book    openlibrary.Book `json:"book"`
	Status  Status           `json:"status"`
	AddedAt time.Time        `json:"addedAt"`
}

// Store is the user's library: an ordered collection of items keyed by
// book ID, with at most one item per book. Every mutation re-serializes the
// whole collection through the injected port; construction hydrates from it
// once.
type Store struct {
	mu    sync.Mutex
	items []Item
	port  Port
	now   func() time.Time
}

// Open builds a Store hydrated from port. Missing or malformed persisted
// data yields an empty library, never an error.
func Open(port Port) *Store {
	s := &Store{port: port, now: time.Now}

	items, err := port.Load()
	if err != nil {
		log.Printf("library: load failed, starting empty: %v", err)
		items = nil
	}
	for i := range items {
		items[i].Status = items[i].Status.canonical()
	}
	s.items = items
	return s
}

// SetStatus upserts or deletes the item for book, keyed by book ID.
// StatusNone removes any existing item; any other status replaces the
// existing item's status and refreshes AddedAt, or inserts a new item at
// the end of the collection.
func (s *Store) SetStatus(book openlibrary.Book, status Status) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if status == StatusNone {
		for i, item := range s.items {
			if item.Book.ID == book.ID {
				s.items = append(s.items[:i], s.items[i+1:]...)
				break
			}
		}
		s.persistLocked()
		return
	}

	for i := range s.items {
		if s.items[i].Book.ID == book.ID {
			s.items[i].Status = status
			s.items[i].AddedAt = s.now()
			s.persistLocked()
			return
		}
	}
	s.items = append(s.items, Item{Book: book, Status: status, AddedAt: s.now()})
	s.persistLocked()
}

// Get looks up the item for a book ID.
func (s *Store) Get(bookID string) (Item, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, item := range s.items {
		if item.Book.ID == bookID {
			return item, true
		}
	}
	return Item{}, false
}

// ByStatus returns, in collection order, the books whose status equals
// status. The legacy wishlist label matches StatusWantIt.
func (s *Store) ByStatus(status Status) []openlibrary.Book {
	s.mu.Lock()
	defer s.mu.Unlock()

	var books []openlibrary.Book
	for _, item := range s.items {
		if item.Status.canonical() == status.canonical() {
			books = append(books, item.Book)
		}
	}
	return books
}

// Len returns the number of items in the library.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// Items returns a copy of the collection in order.
func (s *Store) Items() []Item {
	s.mu.Lock()
	defer s.mu.Unlock()

	dup := make([]Item, len(s.items))
	copy(dup, s.items)
	return dup
}

func (s *Store) persistLocked() {
	dup := make([]Item, len(s.items))
	copy(dup, s.items)
	if err := s.port.Save(dup); err != nil {
		log.Printf("library: save failed: %v", err)
	}
}
