// Package memstore provides the process-lifetime, in-memory TopicStore.
package memstore

import (
	"slices"

	"github.com/ersonp/topic-core/internal/domain/entities"
)

// rootKey indexes topics without a parent in the children map.
const rootKey = ""

// Store keeps topics in an arena keyed by id plus an incrementally maintained
// child index, so child enumeration never scans the whole arena.
// Store is not safe for concurrent use.
type Store struct {
	topics   map[string]entities.Topic
	children map[string][]string
	order    []string
	ledger   *ledger
}

// New creates an empty Store.
func New() *Store {
	return &Store{
		topics:   make(map[string]entities.Topic),
		children: make(map[string][]string),
		ledger:   newLedger(),
	}
}

// Insert stores a new topic and seeds its history with that snapshot.
func (s *Store) Insert(topic entities.Topic) {
	s.topics[topic.ID] = topic
	s.children[topic.ParentTopicID] = append(s.children[topic.ParentTopicID], topic.ID)
	s.order = append(s.order, topic.ID)
	s.ledger.seed(topic)
}

// Replace swaps the current snapshot and appends it to the history.
// Parent linkage is taken from the stored snapshot; it never changes.
func (s *Store) Replace(topic entities.Topic) {
	current, ok := s.topics[topic.ID]
	if !ok {
		return
	}
	topic.ParentTopicID = current.ParentTopicID
	s.topics[topic.ID] = topic
	s.ledger.append(topic)
}

// Get returns the current snapshot for id.
func (s *Store) Get(id string) (entities.Topic, bool) {
	topic, ok := s.topics[id]
	return topic, ok
}

// Has reports whether id is a current topic.
func (s *Store) Has(id string) bool {
	_, ok := s.topics[id]
	return ok
}

// Children returns the ids of the direct children of id in creation order.
func (s *Store) Children(id string) []string {
	if id == rootKey {
		return nil
	}
	return slices.Clone(s.children[id])
}

// Roots returns the ids of topics without a parent in creation order.
func (s *Store) Roots() []string {
	return slices.Clone(s.children[rootKey])
}

// History returns every snapshot committed for id, oldest first.
func (s *Store) History(id string) ([]entities.Topic, bool) {
	return s.ledger.history(id)
}

// Remove drops the current snapshot and the whole history of id.
func (s *Store) Remove(id string) {
	topic, ok := s.topics[id]
	if !ok {
		return
	}
	delete(s.topics, id)
	s.ledger.drop(id)

	siblings := slices.DeleteFunc(s.children[topic.ParentTopicID], func(c string) bool { return c == id })
	if len(siblings) == 0 {
		delete(s.children, topic.ParentTopicID)
	} else {
		s.children[topic.ParentTopicID] = siblings
	}
	s.order = slices.DeleteFunc(s.order, func(o string) bool { return o == id })
}

// List returns every current snapshot in creation order.
func (s *Store) List() []entities.Topic {
	result := make([]entities.Topic, 0, len(s.order))
	for _, id := range s.order {
		result = append(result, s.topics[id])
	}
	return result
}

// Count returns the number of current topics.
func (s *Store) Count() int {
	return len(s.topics)
}
