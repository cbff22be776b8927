package menu_test

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sortlab/arraygen"
	"github.com/katalvlaran/sortlab/menu"
)

func TestConsole_RepromptsOnGarbage(t *testing.T) {
	var out bytes.Buffer
	c := menu.NewConsole(strings.NewReader("abc 99999999999999999999 3"), &out, false)

	v, err := c.MenuChoice()
	require.NoError(t, err)
	assert.Equal(t, 3, v)
	assert.Contains(t, out.String(), `"abc" is not a whole number, try again.`)
	assert.Contains(t, out.String(), `is out of range, try again.`)
	assert.Equal(t, 3, strings.Count(out.String(), "Option: "))
}

func TestConsole_EOF(t *testing.T) {
	c := menu.NewConsole(strings.NewReader(""), io.Discard, false)
	_, err := c.SearchValue()
	assert.ErrorIs(t, err, io.EOF)

	_, err = c.GenerateRequest()
	assert.ErrorIs(t, err, io.EOF)
}

func TestConsole_Confirm(t *testing.T) {
	var out bytes.Buffer
	c := menu.NewConsole(strings.NewReader("2 1 0"), &out, false)

	yes, err := c.Confirm("Continue?")
	require.NoError(t, err)
	assert.True(t, yes)
	assert.Contains(t, out.String(), "Enter a value between 0 and 1.")

	yes, err = c.Confirm("Continue?")
	require.NoError(t, err)
	assert.False(t, yes)
}

func TestConsole_GenerateRequest(t *testing.T) {
	var out bytes.Buffer
	// size option 4 is rejected, then rect 2x3, duplicates allowed, range -5..9
	c := menu.NewConsole(strings.NewReader("4 3 2 3 1 -5 9"), &out, false)

	req, err := c.GenerateRequest()
	require.NoError(t, err)
	assert.Equal(t, menu.GenerateRequest{
		Spec:       arraygen.SizeSpec{Mode: arraygen.Rect, N: 2, M: 3},
		Duplicates: true,
		Min:        -5,
		Max:        9,
	}, req)
	assert.Contains(t, out.String(), "Enter a value between 1 and 3.")
	assert.Contains(t, out.String(), "M: ")
}

func TestConsole_GenerateRequestSkipsMForDirect(t *testing.T) {
	var out bytes.Buffer
	c := menu.NewConsole(strings.NewReader("1 4 0 1 9"), &out, false)

	req, err := c.GenerateRequest()
	require.NoError(t, err)
	assert.Equal(t, arraygen.Direct, req.Spec.Mode)
	assert.Equal(t, 4, req.Spec.N)
	assert.False(t, req.Duplicates)
	assert.NotContains(t, out.String(), "M: ")
}

func TestConsole_Echo(t *testing.T) {
	var out bytes.Buffer
	c := menu.NewConsole(strings.NewReader("7"), &out, true)
	_, err := c.SearchValue()
	require.NoError(t, err)
	assert.Equal(t, "Value to search: 7\n", out.String())
}

func TestConsole_OversizedToken(t *testing.T) {
	var out bytes.Buffer
	huge := strings.Repeat("9", 70000)
	c := menu.NewConsole(strings.NewReader(huge+" 4 "+strings.Repeat("x", 2000)), &out, false)

	v, err := c.MenuChoice()
	require.NoError(t, err)
	assert.Equal(t, 4, v)
	assert.Equal(t, 1, strings.Count(out.String(), "is not a whole number, try again."))
	assert.NotContains(t, out.String(), huge[:100])

	// an oversized word that runs into end of input
	_, err = c.MenuChoice()
	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, 2, strings.Count(out.String(), "is not a whole number, try again."))
}

func TestConsole_OversizedCompleteToken(t *testing.T) {
	var out bytes.Buffer
	// the whole word and its delimiter arrive in one read
	c := menu.NewConsole(strings.NewReader(strings.Repeat("7", 1500)+" 5"), &out, true)

	v, err := c.SearchValue()
	require.NoError(t, err)
	assert.Equal(t, 5, v)
	assert.Equal(t, "Value to search: ...\n"+
		"Input longer than 1024 characters is not a whole number, try again.\n"+
		"Value to search: 5\n", out.String())
}
