package utils

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestParseStringToUUID(t *testing.T) {
	id := uuid.New()

	assert.Equal(t, id, ParseStringToUUID(id.String()))
	assert.Equal(t, uuid.Nil, ParseStringToUUID(""))
	assert.Equal(t, uuid.Nil, ParseStringToUUID("not-a-uuid"))
}
