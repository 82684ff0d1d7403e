package uid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewID(t *testing.T) {
	a, b := NewID(), NewID()

	assert.Len(t, a, 11)
	assert.NotEqual(t, a, b)
}
