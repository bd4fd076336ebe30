package memstore

import "github.com/ersonp/topic-core/internal/domain/entities"

// ledger is the append-only per-topic sequence of sealed snapshots.
// Entry i of a topic's slice holds version i+1.
type ledger struct {
	versions map[string][]entities.Topic
}

func newLedger() *ledger {
	return &ledger{versions: make(map[string][]entities.Topic)}
}

// seed starts the history of a new topic with its first snapshot.
func (l *ledger) seed(topic entities.Topic) {
	l.versions[topic.ID] = []entities.Topic{topic}
}

// append seals another snapshot onto an existing history.
func (l *ledger) append(topic entities.Topic) {
	l.versions[topic.ID] = append(l.versions[topic.ID], topic)
}

// history returns a copy so callers cannot rewrite sealed versions.
func (l *ledger) history(id string) ([]entities.Topic, bool) {
	versions, ok := l.versions[id]
	if !ok {
		return nil, false
	}
	out := make([]entities.Topic, len(versions))
	copy(out, versions)
	return out, true
}

func (l *ledger) drop(id string) {
	delete(l.versions, id)
}
