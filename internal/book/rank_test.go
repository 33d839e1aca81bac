package book

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func bookWithSources(id string, createdAt time.Time, sourceCount int) Book {
	sources := make([]Source, sourceCount)
	for i := range sources {
		sources[i] = Source{ID: id + "-s", BookID: id, URL: "https://example.com/"}
	}
	return Book{ID: id, Title: "Book " + id, CreatedAt: createdAt, Sources: sources}
}

func TestPopularRanking(t *testing.T) {
	now := time.Now()
	window := []Book{
		bookWithSources("a", now, 0),
		bookWithSources("b", now, 3),
		bookWithSources("c", now, 1),
	}

	ranked := rankBooks(window, 2, popularScore)

	assert.Len(t, ranked, 2)
	assert.Equal(t, "b", ranked[0].ID)
	assert.Equal(t, "c", ranked[1].ID)
}

func TestPopularRanking_TieBreakByID(t *testing.T) {
	now := time.Now()
	window := []Book{
		bookWithSources("z", now, 2),
		bookWithSources("a", now, 2),
		bookWithSources("m", now, 2),
	}

	ranked := rankBooks(window, 3, popularScore)

	assert.Equal(t, []string{"a", "m", "z"}, []string{ranked[0].ID, ranked[1].ID, ranked[2].ID})
}

func TestRankBooks_DoesNotMutateWindow(t *testing.T) {
	now := time.Now()
	window := []Book{
		bookWithSources("a", now, 0),
		bookWithSources("b", now, 5),
	}

	_ = rankBooks(window, 2, popularScore)

	assert.Equal(t, "a", window[0].ID)
	assert.Equal(t, "b", window[1].ID)
}

func TestRankBooks_LimitExceedsWindow(t *testing.T) {
	ranked := rankBooks([]Book{bookWithSources("a", time.Now(), 1)}, 10, popularScore)
	assert.Len(t, ranked, 1)
}

func TestTrendingScore(t *testing.T) {
	now := time.Now()

	t.Run("recency dominates at equal source count", func(t *testing.T) {
		fresh := bookWithSources("fresh", now, 0)
		old := bookWithSources("old", now.AddDate(0, 0, -30), 0)

		assert.Greater(t, trendingScore(fresh, now), trendingScore(old, now))
	})

	t.Run("formula decides rich-old vs fresh-empty", func(t *testing.T) {
		// (9+1)/(1+30) ≈ 0.32 for a 30-day-old book with 9 sources;
		// (0+1)/(1+~0) ≈ 1.0 for a just-created book with none.
		richOld := bookWithSources("rich", now.AddDate(0, 0, -30), 9)
		freshEmpty := bookWithSources("fresh", now, 0)

		assert.InDelta(t, 10.0/31.0, trendingScore(richOld, now), 0.001)
		assert.Greater(t, trendingScore(freshEmpty, now), trendingScore(richOld, now))
	})

	t.Run("zero age does not blow up", func(t *testing.T) {
		b := bookWithSources("x", now, 0)
		score := trendingScore(b, now)
		assert.Greater(t, score, 0.0)
		assert.LessOrEqual(t, score, 1.0)
	})
}

func TestTrendingRanking(t *testing.T) {
	now := time.Now()
	window := []Book{
		bookWithSources("rich-old", now.AddDate(0, 0, -30), 9),
		bookWithSources("fresh-empty", now, 0),
	}

	ranked := rankBooks(window, 2, func(b Book) float64 {
		return trendingScore(b, now)
	})

	assert.Equal(t, "fresh-empty", ranked[0].ID)
	assert.Equal(t, "rich-old", ranked[1].ID)
}
