package parsers

import (
	"encoding/csv"
	"fmt"
	"io"
)

// CSVParser parses topic seeds from CSV format.
type CSVParser struct{}

// Parse reads CSV from the reader and returns parsed topics.
// Expected columns: key, name, content, parent
func (p *CSVParser) Parse(r io.Reader) ([]RawTopic, error) {
	reader := csv.NewReader(r)

	colIndex, err := p.readHeader(reader)
	if err != nil {
		return nil, err
	}

	return p.readRecords(reader, colIndex)
}

// readHeader reads and validates the CSV header row.
func (p *CSVParser) readHeader(reader *csv.Reader) (map[string]int, error) {
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading CSV header: %w", err)
	}

	colIndex := make(map[string]int)
	for i, col := range header {
		colIndex[col] = i
	}

	requiredCols := []string{"key", "name", "content"}
	for _, col := range requiredCols {
		if _, ok := colIndex[col]; !ok {
			return nil, fmt.Errorf("missing required column: %s", col)
		}
	}

	return colIndex, nil
}

// readRecords reads all data rows and converts them to RawTopics.
func (p *CSVParser) readRecords(reader *csv.Reader, colIndex map[string]int) ([]RawTopic, error) {
	topics := []RawTopic{}
	lineNum := 1 // Header is line 1

	for {
		lineNum++
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}

		topics = append(topics, RawTopic{
			Key:     getColumn(record, colIndex, "key"),
			Name:    getColumn(record, colIndex, "name"),
			Content: getColumn(record, colIndex, "content"),
			Parent:  getColumn(record, colIndex, "parent"),
			LineNum: lineNum,
		})
	}

	return topics, nil
}

// getColumn safely retrieves a column value from a record.
func getColumn(record []string, colIndex map[string]int, col string) string {
	if idx, ok := colIndex[col]; ok && idx < len(record) {
		return record[idx]
	}
	return ""
}
