package openlibrary

import "fmt"

const (
	maxSubjects      = 5
	placeholderCover = "https://via.placeholder.com/300x450?text=No+Cover"
)

// Normalize converts a raw search doc into a Book using the default covers
// host. It is total: missing fields degrade to documented defaults and the
// result always has a non-empty CoverURL and at least one author name.
func Normalize(d Doc) Book {
	return normalize(defaultCoversBase, d)
}

func normalize(coversBase string, d Doc) Book {
	b := Book{
		ID:               d.Key,
		Title:            d.Title,
		Authors:          d.AuthorNames,
		CoverID:          d.CoverID,
		FirstPublishYear: d.FirstPublishYear,
	}

	if len(b.Authors) == 0 {
		b.Authors = []string{"Unknown Author"}
	}

	if len(d.FirstSentence) > 0 {
		b.Description = d.FirstSentence[0]
	}

	if len(d.Subjects) > maxSubjects {
		b.Subjects = d.Subjects[:maxSubjects]
	} else {
		b.Subjects = d.Subjects
	}

	if d.CoverID > 0 {
		b.CoverURL = fmt.Sprintf("%s/%d-L.jpg", coversBase, d.CoverID)
	} else {
		b.CoverURL = placeholderCover
	}

	return b
}
