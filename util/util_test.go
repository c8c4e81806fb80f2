package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetKeysSorted(t *testing.T) {
	m := map[string]int{"b": 2, "a": 1, "c": 3}
	assert.Equal(t, []string{"a", "b", "c"}, GetKeysSorted(m))
}

func TestMax(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(2, Max(1, 2))
	assert.Equal(0, Max(-3, 0))
	assert.Equal("b", Max("a", "b"))
}
