package utils

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrintDocument(t *testing.T) {
	var buf bytes.Buffer
	PrintDocument(&buf, Document{ID: 3, Relevance: 0.5, Rating: 2})
	assert.Equal(t, "{ document_id = 3, relevance = 0.500000, rating = 2 }\n", buf.String())
}

func TestPrintMatchResult(t *testing.T) {
	var buf bytes.Buffer
	PrintMatchResult(&buf, 1, []string{"cat", "dog"}, StatusActual)
	assert.Equal(t, "{ document_id = 1, status = ACTUAL, words = cat dog }\n", buf.String())
}

func TestPrintMatchResultNoWords(t *testing.T) {
	var buf bytes.Buffer
	PrintMatchResult(&buf, 1, nil, StatusBanned)
	assert.Equal(t, "{ document_id = 1, status = BANNED, words = }\n", buf.String())
}
