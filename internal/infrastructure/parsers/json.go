package parsers

import (
	"encoding/json"
	"fmt"
	"io"
)

// JSONParser parses topic seeds from a JSON array.
type JSONParser struct{}

// Parse reads JSON from the reader and returns parsed topics.
func (p *JSONParser) Parse(r io.Reader) ([]RawTopic, error) {
	var topics []RawTopic

	decoder := json.NewDecoder(r)
	if err := decoder.Decode(&topics); err != nil {
		return nil, fmt.Errorf("parsing JSON: %w", err)
	}

	// Set line numbers (array index + 1, 1-indexed)
	for i := range topics {
		topics[i].LineNum = i + 1
	}

	return topics, nil
}
