package task

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateDescription(t *testing.T) {
	assert.NoError(t, ValidateDescription("buy milk"))
	assert.NoError(t, ValidateDescription(strings.Repeat("x", MaxDescriptionLen)))

	assert.Error(t, ValidateDescription(""))
	assert.Error(t, ValidateDescription("   \n\t"))
	assert.Error(t, ValidateDescription(strings.Repeat("x", MaxDescriptionLen+1)))
}
