package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrom(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("missing ]", From("missing ]"))
	assert.Equal("line 3 column 7", From("line %d column %d", 3, 7))
}
