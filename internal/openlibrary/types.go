package openlibrary

// searchResponse mirrors the payload returned by /search.json.
type searchResponse struct {
	NumFound int   `json:"numFound"`
	Docs     []Doc `json:"docs"`
}

// Doc is a raw catalog record as returned by the search endpoint. Every
// field is optional; Normalize defaults whatever is missing.
type Doc struct {
	Key              string   `json:"key"`
	Title            string   `json:"title"`
	AuthorNames      []string `json:"author_name"`
	CoverID          int      `json:"cover_i"`
	FirstPublishYear int      `json:"first_publish_year"`
	FirstSentence    []string `json:"first_sentence"`
	Subjects         []string `json:"subject"`
}

// Book is the internal book model handed to the UI and the library store.
// CoverURL is computed once at normalization time and is never empty.
type Book struct {
	ID               string   `json:"id"`
	Title            string   `json:"title"`
	Authors          []string `json:"authors"`
	CoverID          int      `json:"coverId,omitempty"`
	FirstPublishYear int      `json:"firstPublishYear,omitempty"`
	Description      string   `json:"description,omitempty"`
	Subjects         []string `json:"subjects,omitempty"`
	CoverURL         string   `json:"coverUrl"`
}

// HasCover reports whether the catalog record carried cover art.
func (b Book) HasCover() bool {
	return b.CoverID > 0
}
