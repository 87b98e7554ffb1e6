package tokens

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodingFor_Families(t *testing.T) {
	tests := []struct {
		model string
		want  string
	}{
		{"gpt-3.5-turbo-1106", encodingCL100K},
		{"gpt-4-1106-preview", encodingCL100K},
		{"gpt-4", encodingCL100K},
		{"gpt-4o-mini", encodingO200K},
		{"gemini-1.5-pro", encodingCL100K},
		{"models/gemini-1.5-flash", encodingCL100K},
	}
	for _, tt := range tests {
		t.Run(tt.model, func(t *testing.T) {
			got, err := EncodingFor(tt.model)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEncodingFor_UnknownModel(t *testing.T) {
	for _, model := range []string{"", "claude-3-opus", "llama3", "GPT-4"} {
		_, err := EncodingFor(model)
		assert.True(t, errors.Is(err, ErrUnknownModel), "model %q: got %v", model, err)
	}
}

func TestEstimator_UnknownModelSkipsEncodingLoad(t *testing.T) {
	e := NewEstimator()

	n, err := e.Estimate("mystery-model", "hello")
	require.ErrorIs(t, err, ErrUnknownModel)
	assert.Zero(t, n)
	assert.Empty(t, e.encoders)
}

func TestEstimator_Counts(t *testing.T) {
	e := NewEstimator()

	tests := []struct {
		model string
		text  string
		want  int
	}{
		{"gpt-3.5-turbo-1106", "hello world", 2},
		{"gpt-4-1106-preview", "hello world", 2},
		{"gemini-1.5-pro", "hello world", 2},
		{"gpt-3.5-turbo-1106", "", 0},
	}
	for _, tt := range tests {
		n, err := e.Estimate(tt.model, tt.text)
		require.NoError(t, err, tt.model)
		assert.Equal(t, tt.want, n, "%s %q", tt.model, tt.text)
	}
}

func TestEstimator_SpecialTokenTextIsCounted(t *testing.T) {
	e := NewEstimator()

	n, err := e.Estimate("gpt-4", "<|endoftext|>")
	require.NoError(t, err)
	assert.Positive(t, n)
}

func TestEstimator_SharesEncoderWithinFamily(t *testing.T) {
	e := NewEstimator()

	_, err := e.Estimate("gpt-3.5-turbo-1106", "hello")
	require.NoError(t, err)
	_, err = e.Estimate("gpt-4-1106-preview", "hello")
	require.NoError(t, err)

	assert.Len(t, e.encoders, 1)
	assert.Contains(t, e.encoders, encodingCL100K)
}

func TestEstimator_FamiliesUseDifferentEncoders(t *testing.T) {
	e := NewEstimator()

	_, err := e.Estimate("gpt-3.5-turbo-1106", "hello world")
	require.NoError(t, err)
	_, err = e.Estimate("gpt-4o-mini", "hello world")
	require.NoError(t, err)

	require.Len(t, e.encoders, 2)
	assert.NotSame(t, e.encoders[encodingCL100K], e.encoders[encodingO200K])
}
