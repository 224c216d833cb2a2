package library

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"bookflix/internal/openlibrary"
)

func testBook(id, title string) openlibrary.Book {
	return openlibrary.Book{
		ID:       id,
		Title:    title,
		Authors:  []string{"Author"},
		CoverURL: "https://covers.example/1-L.jpg",
	}
}

func TestSetStatus_InsertThenGet(t *testing.T) {
	s := Open(&MemoryPort{})

	at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return at }

	b := testBook("/works/OL1W", "Dune")
	s.SetStatus(b, StatusReading)

	item, ok := s.Get(b.ID)
	if !ok {
		t.Fatal("Get returned no item after SetStatus")
	}
	if item.Status != StatusReading {
		t.Fatalf("Status = %q, want %q", item.Status, StatusReading)
	}
	if !item.AddedAt.Equal(at) {
		t.Fatalf("AddedAt = %v, want %v", item.AddedAt, at)
	}
	if item.Book.Title != "Dune" {
		t.Fatalf("Book = %#v, want full copy embedded", item.Book)
	}
}

func TestSetStatus_UpsertDoesNotDuplicate(t *testing.T) {
	s := Open(&MemoryPort{})

	first := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return first }

	b := testBook("/works/OL1W", "Dune")
	s.SetStatus(b, StatusWantIt)

	second := first.Add(time.Hour)
	s.now = func() time.Time { return second }
	s.SetStatus(b, StatusCompleted)

	if s.Len() != 1 {
		t.Fatalf("Len = %d, want 1 after repeated SetStatus", s.Len())
	}
	item, _ := s.Get(b.ID)
	if item.Status != StatusCompleted {
		t.Fatalf("Status = %q, want %q", item.Status, StatusCompleted)
	}
	if !item.AddedAt.Equal(second) {
		t.Fatalf("AddedAt = %v, want refreshed to %v", item.AddedAt, second)
	}
}

func TestSetStatus_NoneRemoves(t *testing.T) {
	s := Open(&MemoryPort{})

	b := testBook("/works/OL1W", "Dune")
	s.SetStatus(b, StatusTBR)
	s.SetStatus(b, StatusNone)

	if _, ok := s.Get(b.ID); ok {
		t.Fatal("Get returned an item after clearing status")
	}
	if got := s.ByStatus(StatusTBR); len(got) != 0 {
		t.Fatalf("ByStatus after clear = %v, want empty", got)
	}

	// Clearing an absent book is a no-op.
	s.SetStatus(testBook("/works/OL9W", "Ghost"), StatusNone)
	if s.Len() != 0 {
		t.Fatalf("Len = %d, want 0", s.Len())
	}
}

func TestByStatus_CollectionOrder(t *testing.T) {
	s := Open(&MemoryPort{})

	a := testBook("/works/OL1W", "A")
	b := testBook("/works/OL2W", "B")
	c := testBook("/works/OL3W", "C")

	s.SetStatus(a, StatusTBR)
	s.SetStatus(b, StatusReading)
	s.SetStatus(c, StatusTBR)

	got := s.ByStatus(StatusTBR)
	if len(got) != 2 || got[0].ID != a.ID || got[1].ID != c.ID {
		t.Fatalf("ByStatus = %v, want [A C] in insertion order", got)
	}
	if got := s.ByStatus(StatusCompleted); len(got) != 0 {
		t.Fatalf("ByStatus(Completed) = %v, want empty", got)
	}
}

func TestStore_PersistsOnEveryMutation(t *testing.T) {
	port := &MemoryPort{}
	s := Open(port)

	b := testBook("/works/OL1W", "Dune")
	s.SetStatus(b, StatusWantIt)
	s.SetStatus(b, StatusReading)
	s.SetStatus(b, StatusNone)

	if port.Saves() != 3 {
		t.Fatalf("Saves = %d, want one per mutation (3)", port.Saves())
	}
}

func TestStore_RoundTripThroughPort(t *testing.T) {
	port := &MemoryPort{}
	s := Open(port)

	s.SetStatus(testBook("/works/OL1W", "A"), StatusWantIt)
	s.SetStatus(testBook("/works/OL2W", "B"), StatusTBR)
	s.SetStatus(testBook("/works/OL3W", "C"), StatusReading)
	s.SetStatus(testBook("/works/OL4W", "D"), StatusCompleted)

	rebuilt := Open(port)
	for _, status := range Statuses() {
		want := s.ByStatus(status)
		got := rebuilt.ByStatus(status)
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("ByStatus(%q) after round trip = %v, want %v", status, got, want)
		}
	}
}

func TestOpen_LegacyWishlistAliasMapsToWantIt(t *testing.T) {
	port := &MemoryPort{}
	port.data = []byte(`[{"book":{"id":"/works/OL1W","title":"Dune","authors":["Frank Herbert"],"coverUrl":"u"},"status":"My List","addedAt":"2024-01-02T15:04:05Z"}]`)

	s := Open(port)
	got := s.ByStatus(StatusWantIt)
	if len(got) != 1 || got[0].ID != "/works/OL1W" {
		t.Fatalf("ByStatus(WantIt) = %v, want legacy item included", got)
	}

	// A mutation rewrites the collection with the canonical label only.
	s.SetStatus(testBook("/works/OL2W", "B"), StatusTBR)
	if strings.Contains(string(port.data), legacyWantIt) {
		t.Fatalf("persisted data still contains legacy label: %s", port.data)
	}
	rebuilt := Open(port)
	item, ok := rebuilt.Get("/works/OL1W")
	if !ok || item.Status != StatusWantIt {
		t.Fatalf("rewritten status = %#v, want canonical Want It", item)
	}
}

func TestOpen_MalformedDataYieldsEmptyStore(t *testing.T) {
	port := &MemoryPort{}
	port.data = []byte("{not-json")

	s := Open(port)
	if s.Len() != 0 {
		t.Fatalf("Len = %d, want 0 for malformed data", s.Len())
	}
}

func TestStatus_Validity(t *testing.T) {
	for _, status := range Statuses() {
		if !status.Valid() {
			t.Fatalf("%q not valid", status)
		}
	}
	if StatusNone.Valid() {
		t.Fatal("StatusNone is valid, want invalid")
	}
	if Status("Binge").Valid() {
		t.Fatal("arbitrary status is valid, want invalid")
	}
}
