package matching

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"foundit-fast/internal/domain"
)

func lostPost(category, location, description string) domain.Post {
	return domain.Post{
		ID:          uuid.New(),
		UserID:      uuid.New(),
		Kind:        domain.KindLost,
		Status:      domain.PostActive,
		Title:       "Lost item",
		Category:    category,
		Location:    location,
		Description: description,
	}
}

func foundPost(category, location, description string) *domain.Post {
	return &domain.Post{
		ID:          uuid.New(),
		UserID:      uuid.New(),
		Kind:        domain.KindFound,
		Status:      domain.PostActive,
		Title:       "Found item",
		Category:    category,
		Location:    location,
		Description: description,
	}
}

func TestFindMatches_AllSignals(t *testing.T) {
	lost := lostPost("Electronics", "Central Park", "black iphone cracked screen")
	found := foundPost("Electronics", "central park near the fountain", "found a black iphone with a cracked screen")

	matches := FindMatches(found, []domain.Post{lost})

	assert.Len(t, matches, 1)
	assert.Equal(t, 100, matches[0].Percentage)
	assert.Equal(t, lost.ID, matches[0].LostPost.ID)
	assert.Equal(t,
		"Same category (Electronics), Similar location (central park), Similar description keywords",
		matches[0].Reason)
}

func TestFindMatches_ThresholdBoundary(t *testing.T) {
	t.Run("category plus location is exactly enough", func(t *testing.T) {
		lost := lostPost("Documents", "Main Library", "aaaa bbbb")
		found := foundPost("Documents", "library entrance", "cccc dddd")

		matches := FindMatches(found, []domain.Post{lost})

		assert.Len(t, matches, 1)
		assert.Equal(t, 75, matches[0].Percentage)
		assert.Equal(t, "Same category (Documents), Similar location (main library)", matches[0].Reason)
	})

	t.Run("category plus keywords falls short", func(t *testing.T) {
		lost := lostPost("Documents", "north gate", "blue passport folder visa")
		found := foundPost("Documents", "river walk", "blue passport folder visa")

		matches := FindMatches(found, []domain.Post{lost})

		// 40 + 25 = 65, below the threshold.
		assert.Empty(t, matches)
	})

	t.Run("location plus keywords falls short", func(t *testing.T) {
		lost := lostPost("Clothing", "Main Station", "red jacket leather zipper")
		found := foundPost("Electronics", "main station", "red jacket leather zipper")

		matches := FindMatches(found, []domain.Post{lost})

		assert.Empty(t, matches)
	})
}

func TestFindMatches_KeywordPointsAreCapped(t *testing.T) {
	// Two overlapping keywords are worth 16, three would be 24, four hit
	// the cap at 25.
	lost := lostPost("Electronics", "City Mall", "silver laptop charger sticker")
	found := foundPost("Electronics", "city mall food court", "silver laptop without charger")

	matches := FindMatches(found, []domain.Post{lost})

	assert.Len(t, matches, 1)
	// 40 + 35 + 3*8 = 99
	assert.Equal(t, 99, matches[0].Percentage)
}

func TestFindMatches_CategoryIsCaseSensitive(t *testing.T) {
	lost := lostPost("electronics", "Central Park", "black iphone cracked screen")
	found := foundPost("Electronics", "central park", "black iphone cracked screen")

	matches := FindMatches(found, []domain.Post{lost})

	// Location (35) + keywords (25) only.
	assert.Empty(t, matches)
}

func TestFindMatches_ShortLocationWordsIgnored(t *testing.T) {
	lost := lostPost("Electronics", "lot A", "black iphone cracked screen")
	found := foundPost("Electronics", "lot B", "black iphone cracked screen")

	matches := FindMatches(found, []domain.Post{lost})

	// "lot" is too short to count as a location signal, so 40 + 25 = 65.
	assert.Empty(t, matches)
}

func TestFindMatches_SortedByScoreDescending(t *testing.T) {
	weaker := lostPost("Electronics", "Train Station", "umbrella")
	stronger := lostPost("Electronics", "Train Station", "black iphone cracked screen")

	found := foundPost("Electronics", "train station platform two", "black iphone cracked screen")

	matches := FindMatches(found, []domain.Post{weaker, stronger})

	assert.Len(t, matches, 2)
	assert.Equal(t, stronger.ID, matches[0].LostPost.ID)
	assert.Equal(t, 100, matches[0].Percentage)
	assert.Equal(t, weaker.ID, matches[1].LostPost.ID)
	assert.Equal(t, 75, matches[1].Percentage)
}

func TestFindMatches_EqualScoresKeepInputOrder(t *testing.T) {
	first := lostPost("Bags & Accessories", "West Entrance", "qqqq")
	second := lostPost("Bags & Accessories", "West Entrance", "zzzz")

	found := foundPost("Bags & Accessories", "west entrance", "brown bag")

	matches := FindMatches(found, []domain.Post{first, second})

	assert.Len(t, matches, 2)
	assert.Equal(t, first.ID, matches[0].LostPost.ID)
	assert.Equal(t, second.ID, matches[1].LostPost.ID)
}

func TestFindMatches_NoOpenLostPosts(t *testing.T) {
	found := foundPost("Electronics", "anywhere", "something")

	assert.Empty(t, FindMatches(found, nil))
	assert.Empty(t, FindMatches(found, []domain.Post{}))
}
