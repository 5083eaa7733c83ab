package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProcessQueriesEngine(t *testing.T) *SearchEngine {
	t.Helper()
	e := mustEngine(t, "and with")
	texts := []string{
		"funny pet and nasty rat",
		"funny pet with curly hair",
		"funny pet and not very nasty rat",
		"pet with rat and rat and rat",
		"nasty rat with curly hair",
	}
	for i, text := range texts {
		require.NoError(t, e.AddDocument(i+1, text, StatusActual, []int{1, 2}))
	}
	return e
}

func TestProcessQueriesPreservesOrder(t *testing.T) {
	e := newProcessQueriesEngine(t)
	queries := []string{"nasty rat -not", "not very funny nasty pet", "curly hair"}

	results, err := ProcessQueries(e, queries)
	require.NoError(t, err)
	require.Len(t, results, len(queries))

	for i, q := range queries {
		want, err := e.FindTopDocuments(q, ActualOnly())
		require.NoError(t, err)
		assert.Equal(t, want, results[i])
	}
}

func TestProcessQueriesJoinedEqualsConcatenation(t *testing.T) {
	e := newProcessQueriesEngine(t)
	queries := []string{"nasty rat -not", "not very funny nasty pet", "curly hair"}

	perQuery, err := ProcessQueries(e, queries)
	require.NoError(t, err)

	joined, err := ProcessQueriesJoined(e, queries)
	require.NoError(t, err)

	var expected []Document
	for _, docs := range perQuery {
		expected = append(expected, docs...)
	}
	assert.Equal(t, expected, joined)
}

func TestProcessQueriesPropagatesErrors(t *testing.T) {
	e := newProcessQueriesEngine(t)
	_, err := ProcessQueries(e, []string{"curly hair", "--bad"})
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestProcessQueriesEmpty(t *testing.T) {
	e := newProcessQueriesEngine(t)
	results, err := ProcessQueries(e, nil)
	require.NoError(t, err)
	assert.Empty(t, results)
}
