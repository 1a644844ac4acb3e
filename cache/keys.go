package cache

import (
	"sort"
	"strconv"
)

// Namespace cache key namespace, one per entity
type Namespace string

const (
	// NamespacePublisher publisher entity keys
	NamespacePublisher Namespace = "publisher"
	// NamespaceWebsite website entity keys
	NamespaceWebsite Namespace = "website"
)

// relationSuffix returns the key suffix for the relation expansion flag
func relationSuffix(ns Namespace, includeRelation bool) string {
	if !includeRelation {
		return "basic"
	}
	if ns == NamespacePublisher {
		return "with-websites"
	}
	return "with-publisher"
}

// ListKey key for the full entity list
// One of two values per namespace: "<ns>:all:basic" / "<ns>:all:<relation>"
func ListKey(ns Namespace, includeRelation bool) string {
	return string(ns) + ":all:" + relationSuffix(ns, includeRelation)
}

// DetailKey key for a single entity by id
func DetailKey(ns Namespace, id int64, includeRelation bool) string {
	return string(ns) + ":id:" + strconv.FormatInt(id, 10) + ":" + relationSuffix(ns, includeRelation)
}

// WebsitesByPublisherKey key for the website list scoped to one publisher
func WebsitesByPublisherKey(publisherID int64, includeRelation bool) string {
	return string(NamespaceWebsite) + ":publisher:" + strconv.FormatInt(publisherID, 10) + ":" + relationSuffix(NamespaceWebsite, includeRelation)
}

// InvalidationSet computes every cache key that must be deleted after a
// mutation of the given entity so that no stale denormalized view survives.
//
// For a website write, relatedIDs are the publisher ids touched by the write
// (previous owner when the foreign key changed, and the new owner): the set
// spans the website's own list/detail keys plus, per publisher, the
// by-publisher list and the publisher's own list/detail keys (whose cached
// views embed website data).
//
// For a publisher write, relatedIDs are the ids of its owned websites: the
// set spans the publisher's own keys plus the website list, each website's
// detail keys and the by-publisher list (whose cached views embed the
// publisher summary).
//
// id <= 0 (entity not yet persisted) omits the entity's own detail keys.
// The result is deduplicated and sorted.
func InvalidationSet(ns Namespace, id int64, relatedIDs []int64) []string {
	keys := make(map[string]struct{})

	add := func(ks ...string) {
		for _, k := range ks {
			keys[k] = struct{}{}
		}
	}

	add(ListKey(ns, false), ListKey(ns, true))
	if id > 0 {
		add(DetailKey(ns, id, false), DetailKey(ns, id, true))
	}

	switch ns {
	case NamespaceWebsite:
		for _, publisherID := range relatedIDs {
			if publisherID <= 0 {
				continue
			}
			add(
				WebsitesByPublisherKey(publisherID, false),
				WebsitesByPublisherKey(publisherID, true),
				ListKey(NamespacePublisher, false),
				ListKey(NamespacePublisher, true),
				DetailKey(NamespacePublisher, publisherID, false),
				DetailKey(NamespacePublisher, publisherID, true),
			)
		}
	case NamespacePublisher:
		if len(relatedIDs) > 0 {
			add(ListKey(NamespaceWebsite, false), ListKey(NamespaceWebsite, true))
			if id > 0 {
				add(
					WebsitesByPublisherKey(id, false),
					WebsitesByPublisherKey(id, true),
				)
			}
		}
		for _, websiteID := range relatedIDs {
			if websiteID <= 0 {
				continue
			}
			add(
				DetailKey(NamespaceWebsite, websiteID, false),
				DetailKey(NamespaceWebsite, websiteID, true),
			)
		}
	}

	result := make([]string, 0, len(keys))
	for k := range keys {
		result = append(result, k)
	}
	sort.Strings(result)
	return result
}
