package services

import (
	"context"
	"fmt"

	"github.com/ersonp/topic-core/internal/domain/entities"
)

// pathStep is one queue entry of the breadth-first search.
type pathStep struct {
	id       string
	path     []string
	distance int
}

// extend returns a step one edge further along, with its own copy of the path.
func (p pathStep) extend(next string) pathStep {
	path := make([]string, len(p.path), len(p.path)+1)
	copy(path, p.path)
	return pathStep{
		id:       next,
		path:     append(path, next),
		distance: p.distance + 1,
	}
}

// ShortestPath finds the path between two topics, treating parent/child links
// as undirected edges.
//
// Nodes are marked visited when dequeued, not when enqueued, so a node may sit
// in the queue more than once. The target test runs before the visited test;
// FIFO order still guarantees the first dequeue of any node is at its BFS depth.
func (s *TopicService) ShortestPath(_ context.Context, startID, endID string) (*entities.TopicPath, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.store.Has(startID) || !s.store.Has(endID) {
		return nil, fmt.Errorf("%w: one or both topics not found", ErrNotFound)
	}

	visited := make(map[string]bool)
	queue := []pathStep{{id: startID, path: []string{startID}}}

	for len(queue) > 0 {
		step := queue[0]
		queue = queue[1:]

		if step.id == endID {
			return &entities.TopicPath{Path: step.path, Distance: step.distance}, nil
		}
		if visited[step.id] {
			continue
		}
		visited[step.id] = true

		topic, ok := s.store.Get(step.id)
		if !ok {
			continue
		}

		if parent := topic.ParentTopicID; parent != "" && !visited[parent] && s.store.Has(parent) {
			queue = append(queue, step.extend(parent))
		}
		for _, child := range s.store.Children(step.id) {
			if !visited[child] {
				queue = append(queue, step.extend(child))
			}
		}
	}

	return nil, fmt.Errorf("%w: no path found between topics", ErrNotFound)
}
