package fallback

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArticles_Deterministic(t *testing.T) {
	first := Articles()
	second := Articles()

	require.NotEmpty(t, first)
	assert.Equal(t, first, second, "fallback list must be identical between calls")
}

func TestArticles_CopyIsolation(t *testing.T) {
	first := Articles()
	first[0].Title = "mutated"

	second := Articles()
	assert.NotEqual(t, "mutated", second[0].Title, "callers must not be able to mutate the shared dataset")
}

func TestArticleByID_NarrowerThanList(t *testing.T) {
	list := Articles()
	require.Greater(t, len(list), 1)

	// Article 1 is reachable both ways.
	a, ok := ArticleByID(1)
	require.True(t, ok)
	assert.Equal(t, list[0].Title, a.Title)

	// Articles past the first appear in the list but not in the by-id set.
	// This is the shipped behavior, asserted so nobody "fixes" it silently.
	for _, item := range list[1:] {
		_, ok := ArticleByID(item.ID)
		assert.False(t, ok, "article %d should be missing from the by-id set", item.ID)
	}
}

func TestGallery_OrderAndByIDGap(t *testing.T) {
	list := Gallery()
	require.Len(t, list, 3)

	for i := 1; i < len(list); i++ {
		assert.LessOrEqual(t, list[i-1].Order, list[i].Order, "gallery must come back in display order")
	}

	_, ok := GalleryImageByID(1)
	assert.True(t, ok)
	_, ok = GalleryImageByID(2)
	assert.False(t, ok, "gallery by-id set only knows the first record")
}

func TestFallbackAlwaysPublished(t *testing.T) {
	for _, a := range Articles() {
		assert.True(t, a.Published)
	}
	for _, g := range Gallery() {
		assert.True(t, g.Published)
	}
}
