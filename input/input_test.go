package input_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent/input"
)

func TestLines(t *testing.T) {
	assert.Equal(t, []string{"ab", "", "cd"}, input.Lines("ab\r\n\ncd\n\n  \n"))
	assert.Empty(t, input.Lines("\n\n"))
}

func TestInts(t *testing.T) {
	assert.Equal(t, []int{1, 4}, input.Ints("Player 1 starting position: 4"))
	assert.Equal(t, []int{-3, 12, 0}, input.Ints("x=-3..12, y=0"))
	assert.Nil(t, input.Ints("no digits"))
}

func TestParseError(t *testing.T) {
	cause := errors.New("bad rune")
	err := input.Errorf(2, 5, "12x4", cause, "rune %q", 'x')

	require.ErrorIs(t, err, input.ErrParse)
	require.ErrorIs(t, err, cause)
	assert.Equal(t, `line 2, column 5: bad rune: rune 'x' ("12x4")`, err.Error())

	var pe *input.ParseError
	require.True(t, errors.As(error(err), &pe))
	assert.Equal(t, 2, pe.Line)

	whole := input.Errorf(3, 0, "", cause, "")
	assert.Equal(t, `line 3: bad rune ("")`, whole.Error())
}
