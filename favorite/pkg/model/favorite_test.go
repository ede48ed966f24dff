package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDuplicatePolicy(t *testing.T) {
	p, err := ParseDuplicatePolicy("")
	require.NoError(t, err)
	assert.Equal(t, DuplicateToggle, p)

	p, err = ParseDuplicatePolicy("reject")
	require.NoError(t, err)
	assert.Equal(t, DuplicateReject, p)

	_, err = ParseDuplicatePolicy("ignore")
	assert.Error(t, err)
}
