package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadScriptParsesSteps(t *testing.T) {
	s, err := loadScript("../../testdata/single_tone.json")
	require.NoError(t, err)

	assert.NotEmpty(t, s.Steps)
	assert.Equal(t, uint32(20000000), s.TrailCycles)
}

func TestLoadScriptMissingFile(t *testing.T) {
	_, err := loadScript("../../testdata/does_not_exist.json")
	assert.Error(t, err)
}
