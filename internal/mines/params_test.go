package mines

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPresets(t *testing.T) {
	tests := []struct {
		d    Difficulty
		want Params
	}{
		{Beginner, Params{Cols: 8, Rows: 8, MineCount: 10}},
		{Intermediate, Params{Cols: 16, Rows: 16, MineCount: 40}},
		{Expert, Params{Cols: 24, Rows: 24, MineCount: 99}},
	}
	for _, test := range tests {
		t.Run(test.d.String(), func(t *testing.T) {
			p, ok := test.d.Preset()
			require.True(t, ok)
			assert.Equal(t, test.want, p)
			assert.NoError(t, p.Validate())
		})
	}

	_, ok := Custom.Preset()
	assert.False(t, ok)
}

func TestParseDifficulty(t *testing.T) {
	for _, d := range []Difficulty{Beginner, Intermediate, Expert, Custom} {
		got, err := ParseDifficulty(d.String())
		require.NoError(t, err)
		assert.Equal(t, d, got)
	}

	got, err := ParseDifficulty(" Expert ")
	require.NoError(t, err)
	assert.Equal(t, Expert, got)

	_, err = ParseDifficulty("nightmare")
	assert.Error(t, err)
}

func TestDifficultyCycle(t *testing.T) {
	assert.Equal(t, Intermediate, Beginner.Next())
	assert.Equal(t, Expert, Intermediate.Next())
	assert.Equal(t, Custom, Expert.Next())
	assert.Equal(t, Beginner, Custom.Next())

	assert.Equal(t, Custom, Beginner.Prev())
	assert.Equal(t, Beginner, Intermediate.Prev())
	assert.Equal(t, Intermediate, Expert.Prev())
	assert.Equal(t, Expert, Custom.Prev())
}

func TestParamsValidate(t *testing.T) {
	assert.NoError(t, Params{Cols: 2, Rows: 2, MineCount: 3}.Validate())

	err := Params{Cols: 2, Rows: 2, MineCount: 4}.Validate()
	assert.True(t, errors.Is(err, ErrInvalidConfiguration))
	assert.Contains(t, err.Error(), "at most 3")
}

func TestParamsString(t *testing.T) {
	assert.Equal(t, "30x16/99", Params{Cols: 30, Rows: 16, MineCount: 99}.String())
}
