package book

import (
	"sort"
	"time"
)

// rankingWindowSize caps the candidate set fetched before in-memory scoring.
// Trending can therefore only ever surface the newest 200 rows; an old book
// with many sources never ranks, which is a scope-limiting policy.
const rankingWindowSize = 200

const hoursPerDay = 24

// popularScore ranks a book by how many sources it has.
func popularScore(b Book) float64 {
	return float64(len(b.Sources))
}

// trendingScore rewards both recency and source abundance:
// (sources+1)/(1+ageDays). Age is floored at one millisecond so a
// just-created row does not blow up the division.
func trendingScore(b Book, now time.Time) float64 {
	age := now.Sub(b.CreatedAt)
	if age < time.Millisecond {
		age = time.Millisecond
	}
	days := age.Hours() / hoursPerDay
	return (float64(len(b.Sources)) + 1) / (1 + days)
}

// rankBooks sorts a copy of the window by descending score and truncates to
// limit. Equal scores tie-break on ascending book id so the ordering is
// deterministic. The input slice is never reordered.
func rankBooks(window []Book, limit int, score func(Book) float64) []Book {
	type scored struct {
		book  Book
		score float64
	}
	ranked := make([]scored, len(window))
	for i, b := range window {
		ranked[i] = scored{book: b, score: score(b)}
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}
		return ranked[i].book.ID < ranked[j].book.ID
	})

	if limit > len(ranked) {
		limit = len(ranked)
	}
	out := make([]Book, limit)
	for i := 0; i < limit; i++ {
		out[i] = ranked[i].book
	}
	return out
}
