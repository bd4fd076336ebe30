package services

import (
	"context"
	"fmt"

	"github.com/ersonp/topic-core/internal/domain/entities"
)

// Subtree returns the topic and all of its descendants in pre-order:
// the node first, then each child's full subtree in creation order.
func (s *TopicService) Subtree(_ context.Context, id string) ([]entities.Topic, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.store.Has(id) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return s.walk(id, nil), nil
}

func (s *TopicService) walk(id string, acc []entities.Topic) []entities.Topic {
	topic, ok := s.store.Get(id)
	if !ok {
		return acc
	}
	acc = append(acc, topic)
	for _, child := range s.store.Children(id) {
		acc = s.walk(child, acc)
	}
	return acc
}

// Tree returns the subtree rooted at id in nested form.
func (s *TopicService) Tree(_ context.Context, id string) (*entities.TopicNode, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.store.Has(id) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	node := s.nest(id)
	return &node, nil
}

func (s *TopicService) nest(id string) entities.TopicNode {
	topic, _ := s.store.Get(id)
	children := s.store.Children(id)
	node := entities.TopicNode{
		Topic:     topic,
		Subtopics: make([]entities.TopicNode, 0, len(children)),
	}
	for _, child := range children {
		node.Subtopics = append(node.Subtopics, s.nest(child))
	}
	return node
}

// Roots returns every topic without a parent, in creation order.
func (s *TopicService) Roots(_ context.Context) ([]entities.Topic, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := s.store.Roots()
	roots := make([]entities.Topic, 0, len(ids))
	for _, id := range ids {
		if topic, ok := s.store.Get(id); ok && topic.IsRoot() {
			roots = append(roots, topic)
		}
	}
	return roots, nil
}
