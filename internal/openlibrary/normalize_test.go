package openlibrary

import (
	"reflect"
	"strings"
	"testing"
)

func TestNormalize_FullDoc(t *testing.T) {
	d := Doc{
		Key:              "/works/OL123W",
		Title:            "Dune",
		AuthorNames:      []string{"Frank Herbert"},
		CoverID:          11481354,
		FirstPublishYear: 1965,
		FirstSentence:    []string{"A beginning is the time for taking the most delicate care."},
		Subjects:         []string{"Science fiction", "Deserts", "Politics", "Ecology", "Religion", "Spice"},
	}

	b := Normalize(d)
	if b.ID != "/works/OL123W" || b.Title != "Dune" {
		t.Fatalf("identity fields = %q/%q, want key/title carried over", b.ID, b.Title)
	}
	if !reflect.DeepEqual(b.Authors, []string{"Frank Herbert"}) {
		t.Fatalf("Authors = %v, want [Frank Herbert]", b.Authors)
	}
	if b.FirstPublishYear != 1965 {
		t.Fatalf("FirstPublishYear = %d, want 1965", b.FirstPublishYear)
	}
	if b.Description != d.FirstSentence[0] {
		t.Fatalf("Description = %q, want first sentence", b.Description)
	}
	if len(b.Subjects) != 5 {
		t.Fatalf("Subjects = %v, want truncated to 5", b.Subjects)
	}
	if !strings.Contains(b.CoverURL, "11481354-L.jpg") {
		t.Fatalf("CoverURL = %q, want cover id in URL", b.CoverURL)
	}
	if !b.HasCover() {
		t.Fatal("HasCover() = false, want true")
	}
}

func TestNormalize_EmptyDocDegradesToDefaults(t *testing.T) {
	b := Normalize(Doc{Key: "/works/OL9W", Title: "Mystery"})

	if !reflect.DeepEqual(b.Authors, []string{"Unknown Author"}) {
		t.Fatalf("Authors = %v, want [Unknown Author]", b.Authors)
	}
	if b.Description != "" {
		t.Fatalf("Description = %q, want empty", b.Description)
	}
	if len(b.Subjects) != 0 {
		t.Fatalf("Subjects = %v, want empty", b.Subjects)
	}
	if b.CoverURL == "" {
		t.Fatal("CoverURL is empty, want placeholder")
	}
	if b.CoverURL != placeholderCover {
		t.Fatalf("CoverURL = %q, want placeholder", b.CoverURL)
	}
	if b.HasCover() {
		t.Fatal("HasCover() = true, want false without cover_i")
	}
}

func TestNormalize_SubjectsShorterThanCapKeptAsIs(t *testing.T) {
	b := Normalize(Doc{Subjects: []string{"Art", "History"}})
	if !reflect.DeepEqual(b.Subjects, []string{"Art", "History"}) {
		t.Fatalf("Subjects = %v, want unchanged", b.Subjects)
	}
}

func TestNormalize_NeverEmptyInvariants(t *testing.T) {
	docs := []Doc{
		{},
		{Key: "x"},
		{AuthorNames: []string{}},
		{CoverID: 7},
		{FirstSentence: []string{}},
	}
	for i, d := range docs {
		b := Normalize(d)
		if b.CoverURL == "" {
			t.Fatalf("doc %d: CoverURL empty", i)
		}
		if len(b.Authors) == 0 {
			t.Fatalf("doc %d: Authors empty", i)
		}
	}
}
