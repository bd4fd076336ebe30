package parsers

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONParser_Parse_ValidInput(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []RawTopic
	}{
		{
			name:  "single root",
			input: `[{"key": "go", "name": "Go", "content": "A language"}]`,
			expected: []RawTopic{
				{Key: "go", Name: "Go", Content: "A language", LineNum: 1},
			},
		},
		{
			name: "parent reference",
			input: `[
				{"key": "go", "name": "Go", "content": "A language"},
				{"key": "chans", "name": "Channels", "content": "CSP", "parent": "go"}
			]`,
			expected: []RawTopic{
				{Key: "go", Name: "Go", Content: "A language", LineNum: 1},
				{Key: "chans", Name: "Channels", Content: "CSP", Parent: "go", LineNum: 2},
			},
		},
		{
			name:     "empty array",
			input:    "[]",
			expected: []RawTopic{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parser := &JSONParser{}
			result, err := parser.Parse(strings.NewReader(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestJSONParser_Parse_InvalidInput(t *testing.T) {
	parser := &JSONParser{}
	_, err := parser.Parse(strings.NewReader("not json"))
	require.Error(t, err)
}

func TestCSVParser_Parse_ValidInput(t *testing.T) {
	input := "key,name,content,parent\n" +
		"go,Go,A language,\n" +
		"chans,Channels,CSP,go\n"

	parser := &CSVParser{}
	result, err := parser.Parse(strings.NewReader(input))
	require.NoError(t, err)

	expected := []RawTopic{
		{Key: "go", Name: "Go", Content: "A language", LineNum: 2},
		{Key: "chans", Name: "Channels", Content: "CSP", Parent: "go", LineNum: 3},
	}
	assert.Equal(t, expected, result)
}

func TestCSVParser_Parse_ParentColumnOptional(t *testing.T) {
	input := "name,key,content\nGo,go,A language\n"

	parser := &CSVParser{}
	result, err := parser.Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "go", result[0].Key)
	assert.Equal(t, "Go", result[0].Name)
	assert.Empty(t, result[0].Parent)
}

func TestCSVParser_Parse_MissingColumn(t *testing.T) {
	parser := &CSVParser{}
	_, err := parser.Parse(strings.NewReader("key,name\ngo,Go\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing required column: content")
}

func TestCSVParser_Parse_EmptyInput(t *testing.T) {
	parser := &CSVParser{}
	_, err := parser.Parse(strings.NewReader(""))
	require.Error(t, err)
}

func TestYAMLParser_Parse(t *testing.T) {
	input := `- key: go
  name: Go
  content: A language
- key: chans
  name: Channels
  content: CSP
  parent: go
`
	parser := &YAMLParser{}
	result, err := parser.Parse(strings.NewReader(input))
	require.NoError(t, err)

	expected := []RawTopic{
		{Key: "go", Name: "Go", Content: "A language", LineNum: 1},
		{Key: "chans", Name: "Channels", Content: "CSP", Parent: "go", LineNum: 4},
	}
	assert.Equal(t, expected, result)
}

func TestYAMLParser_Parse_EmptyDocument(t *testing.T) {
	parser := &YAMLParser{}
	result, err := parser.Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, result)
}

func TestYAMLParser_Parse_NotASequence(t *testing.T) {
	parser := &YAMLParser{}
	_, err := parser.Parse(strings.NewReader("key: go\n"))
	require.Error(t, err)
}

func TestForFormat(t *testing.T) {
	assert.IsType(t, &JSONParser{}, ForFormat("json"))
	assert.IsType(t, &CSVParser{}, ForFormat("CSV"))
	assert.IsType(t, &YAMLParser{}, ForFormat("yml"))
	assert.Nil(t, ForFormat("xml"))
}

func TestForFile(t *testing.T) {
	assert.IsType(t, &JSONParser{}, ForFile("seed.json"))
	assert.IsType(t, &CSVParser{}, ForFile("/tmp/seed.csv"))
	assert.IsType(t, &YAMLParser{}, ForFile("seed.yaml"))
	assert.Nil(t, ForFile("seed.txt"))
}
