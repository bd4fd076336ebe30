// Package ports defines interfaces for external service communication.
package ports

import "github.com/ersonp/topic-core/internal/domain/entities"

// TopicStore holds current topic snapshots, their version history and the
// derived parent/child index. Implementations are not required to be safe for
// concurrent use; callers serialize mutations.
type TopicStore interface {
	// Insert stores a new topic and seeds its history with that snapshot.
	Insert(topic entities.Topic)

	// Replace swaps the current snapshot and appends it to the history.
	Replace(topic entities.Topic)

	// Get returns the current snapshot for id.
	Get(id string) (entities.Topic, bool)

	// Has reports whether id is a current topic.
	Has(id string) bool

	// Children returns the ids of the direct children of id in creation order.
	Children(id string) []string

	// Roots returns the ids of topics without a parent in creation order.
	Roots() []string

	// History returns every snapshot committed for id, oldest first.
	// The second result is false when id has no history at all.
	History(id string) ([]entities.Topic, bool)

	// Remove drops the current snapshot and the whole history of id.
	// Children are not touched.
	Remove(id string)

	// List returns every current snapshot in creation order.
	List() []entities.Topic

	// Count returns the number of current topics.
	Count() int
}
