package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// S5 Request window.
func TestRequestWindowRollover(t *testing.T) {
	e := mustEngine(t, "and on at")
	require.NoError(t, e.AddDocument(1, "fluffy cat fluffy tail", StatusActual, []int{7, 2, 7}))
	require.NoError(t, e.AddDocument(2, "fluffy dog and fancy collar", StatusActual, []int{1, 2, 3}))
	require.NoError(t, e.AddDocument(3, "big cat fancy collar", StatusActual, []int{1, 2, 8}))
	require.NoError(t, e.AddDocument(4, "big dog starling Eugine", StatusActual, []int{1, 3, 2}))
	require.NoError(t, e.AddDocument(5, "big dog starling Vasya", StatusActual, []int{1, 1, 1}))

	w := NewRequestWindow(e)

	const nullRequests = 1439
	for i := 0; i < nullRequests; i++ {
		_, err := w.AddFindRequest("empty request", nil)
		require.NoError(t, err)
	}

	_, err := w.AddFindRequest("fluffy dog", nil)
	require.NoError(t, err)

	_, err = w.AddFindRequest("big collar", nil)
	require.NoError(t, err)

	_, err = w.AddFindRequest("starling", nil)
	require.NoError(t, err)

	assert.Equal(t, 1437, w.GetNoResultRequests())
}

func TestRequestWindowReturnsEngineResults(t *testing.T) {
	e := mustEngine(t, "")
	require.NoError(t, e.AddDocument(1, "cat", StatusActual, nil))
	w := NewRequestWindow(e)

	results, err := w.AddFindRequest("cat", nil)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, 1, results[0].ID)
}

func TestRequestWindowPropagatesErrors(t *testing.T) {
	e := mustEngine(t, "")
	w := NewRequestWindow(e)
	_, err := w.AddFindRequest("--bad", nil)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}
