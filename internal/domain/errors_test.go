package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCodeOf(t *testing.T) {
	err := NewError(CodeDuplicateID, "product_id %s already exists", "P1")
	assert.Equal(t, CodeDuplicateID, CodeOf(err))
	assert.Equal(t, "product_id P1 already exists", err.Error())

	wrapped := fmt.Errorf("add product: %w", err)
	assert.Equal(t, CodeDuplicateID, CodeOf(wrapped))
	assert.True(t, IsCode(wrapped, CodeDuplicateID))

	assert.Equal(t, ErrorCode(""), CodeOf(errors.New("plain")))
	assert.False(t, IsCode(nil, CodeNotFound))
}
