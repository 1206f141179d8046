package main

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplatesCommand_Text(t *testing.T) {
	out, _, err := runCLI(t, "templates")
	require.NoError(t, err)

	classic := strings.Index(out, "Classic Templates")
	creative := strings.Index(out, "Creative Templates")
	assert.GreaterOrEqual(t, classic, 0)
	assert.Greater(t, creative, classic, "categories keep catalog order")
	assert.Contains(t, out, "modern-minimal")
	assert.Contains(t, out, "traditional-academic")
}

func TestTemplatesCommand_JSON(t *testing.T) {
	out, _, err := runCLI(t, "templates", "--json")
	require.NoError(t, err)

	var groups []struct {
		Category  string            `json:"category"`
		Templates []json.RawMessage `json:"templates"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &groups))
	require.Len(t, groups, 4)
	for _, g := range groups {
		assert.Len(t, g.Templates, 2, g.Category)
	}
}
