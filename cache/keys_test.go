package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListKey(t *testing.T) {
	assert.Equal(t, "publisher:all:basic", ListKey(NamespacePublisher, false))
	assert.Equal(t, "publisher:all:with-websites", ListKey(NamespacePublisher, true))
	assert.Equal(t, "website:all:basic", ListKey(NamespaceWebsite, false))
	assert.Equal(t, "website:all:with-publisher", ListKey(NamespaceWebsite, true))
}

func TestDetailKey(t *testing.T) {
	assert.Equal(t, "publisher:id:7:basic", DetailKey(NamespacePublisher, 7, false))
	assert.Equal(t, "publisher:id:7:with-websites", DetailKey(NamespacePublisher, 7, true))
	assert.Equal(t, "website:id:42:basic", DetailKey(NamespaceWebsite, 42, false))
	assert.Equal(t, "website:id:42:with-publisher", DetailKey(NamespaceWebsite, 42, true))
}

func TestWebsitesByPublisherKey(t *testing.T) {
	assert.Equal(t, "website:publisher:3:basic", WebsitesByPublisherKey(3, false))
	assert.Equal(t, "website:publisher:3:with-publisher", WebsitesByPublisherKey(3, true))
}

// Deleting website 42 owned by publisher 3 must clear the website's own keys
// plus every publisher-side view that embeds website data.
func TestInvalidationSetWebsiteDelete(t *testing.T) {
	keys := InvalidationSet(NamespaceWebsite, 42, []int64{3})

	assert.ElementsMatch(t, []string{
		"website:all:basic",
		"website:all:with-publisher",
		"website:id:42:basic",
		"website:id:42:with-publisher",
		"website:publisher:3:basic",
		"website:publisher:3:with-publisher",
		"publisher:all:basic",
		"publisher:all:with-websites",
		"publisher:id:3:basic",
		"publisher:id:3:with-websites",
	}, keys)
}

// Moving a website between publishers touches both owners' views.
func TestInvalidationSetWebsiteMove(t *testing.T) {
	keys := InvalidationSet(NamespaceWebsite, 42, []int64{3, 5})

	assert.Contains(t, keys, "website:publisher:3:basic")
	assert.Contains(t, keys, "website:publisher:5:basic")
	assert.Contains(t, keys, "publisher:id:3:with-websites")
	assert.Contains(t, keys, "publisher:id:5:with-websites")
}

func TestInvalidationSetPublisherWithWebsites(t *testing.T) {
	keys := InvalidationSet(NamespacePublisher, 3, []int64{10, 11})

	assert.ElementsMatch(t, []string{
		"publisher:all:basic",
		"publisher:all:with-websites",
		"publisher:id:3:basic",
		"publisher:id:3:with-websites",
		"website:all:basic",
		"website:all:with-publisher",
		"website:publisher:3:basic",
		"website:publisher:3:with-publisher",
		"website:id:10:basic",
		"website:id:10:with-publisher",
		"website:id:11:basic",
		"website:id:11:with-publisher",
	}, keys)
}

// A publisher without websites only clears its own namespace.
func TestInvalidationSetPublisherNoWebsites(t *testing.T) {
	keys := InvalidationSet(NamespacePublisher, 3, nil)

	assert.ElementsMatch(t, []string{
		"publisher:all:basic",
		"publisher:all:with-websites",
		"publisher:id:3:basic",
		"publisher:id:3:with-websites",
	}, keys)
}

// A not-yet-persisted entity has no detail keys to clear.
func TestInvalidationSetUnpersistedEntity(t *testing.T) {
	keys := InvalidationSet(NamespacePublisher, 0, nil)

	assert.ElementsMatch(t, []string{
		"publisher:all:basic",
		"publisher:all:with-websites",
	}, keys)
}

func TestInvalidationSetDeduplicatesAndSorts(t *testing.T) {
	keys := InvalidationSet(NamespaceWebsite, 42, []int64{3, 3, 0, -1})

	seen := make(map[string]int)
	for _, k := range keys {
		seen[k]++
	}
	for k, n := range seen {
		assert.Equal(t, 1, n, "duplicate key %s", k)
	}
	assert.IsIncreasing(t, keys)
}
