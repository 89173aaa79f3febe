package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrom(t *testing.T) {
	assert := assert.New(t)

	assert.NoError(SetLanguage("en-US"))
	assert.Equal(`Label "loop" not found`, From("Label \"%v\" not found", "loop"))
	assert.Equal("address 12", From("address %s", "12"))
}

func TestSetLanguageInvalid(t *testing.T) {
	assert := assert.New(t)

	assert.Error(SetLanguage("not a language tag!"))
	assert.Equal("ok", From("ok"))
}
