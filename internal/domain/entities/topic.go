// Package entities contains core domain data structures.
package entities

import "time"

// Topic is the current snapshot of a versioned content node.
// A Topic value sealed into the version history is immutable.
type Topic struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Content       string    `json:"content"`
	ParentTopicID string    `json:"parentTopicId,omitempty"`
	Version       int       `json:"version"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// IsRoot reports whether the topic has no parent.
func (t *Topic) IsRoot() bool {
	return t.ParentTopicID == ""
}

// TopicNode is a topic together with its nested subtopics.
type TopicNode struct {
	Topic     Topic       `json:"topic"`
	Subtopics []TopicNode `json:"subtopics"`
}

// TopicPath is the identity sequence connecting two topics, start and end inclusive.
type TopicPath struct {
	Path     []string `json:"path"`
	Distance int      `json:"distance"`
}
