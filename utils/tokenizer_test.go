package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitWords(t *testing.T) {
	assert.Equal(t, []string{"cat", "dog"}, splitWords("cat dog"))
	assert.Equal(t, []string{"", "cat", "", "dog", ""}, splitWords(" cat  dog "))
	assert.Equal(t, []string{""}, splitWords(""))
	assert.Equal(t, []string{"single"}, splitWords("single"))
}

func TestIsValidWord(t *testing.T) {
	assert.True(t, isValidWord("cat"))
	assert.True(t, isValidWord(""))
	assert.False(t, isValidWord("ca\tt"))
	assert.False(t, isValidWord("ca\x01t"))
	assert.True(t, isValidWord("word!"))
}
