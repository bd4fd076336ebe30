package parsers

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// YAMLParser parses topic seeds from a YAML sequence.
type YAMLParser struct{}

// Parse reads YAML from the reader and returns parsed topics.
// Line numbers come from the YAML node positions.
func (p *YAMLParser) Parse(r io.Reader) ([]RawTopic, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return []RawTopic{}, nil
		}
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}

	if len(doc.Content) == 0 {
		return []RawTopic{}, nil
	}
	seq := doc.Content[0]
	if seq.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("parsing YAML: expected a list of topics at line %d", seq.Line)
	}

	topics := make([]RawTopic, 0, len(seq.Content))
	for _, item := range seq.Content {
		var topic RawTopic
		if err := item.Decode(&topic); err != nil {
			return nil, fmt.Errorf("line %d: %w", item.Line, err)
		}
		topic.LineNum = item.Line
		topics = append(topics, topic)
	}

	return topics, nil
}
