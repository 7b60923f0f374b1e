package numerology

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPrompt(t *testing.T) {
	req := BuildPrompt(3, "female", 34, "Should I change careers?")

	assert.Equal(t, 3, req.LifeNumber)
	assert.Equal(t, "female", req.Gender)
	assert.Equal(t, 34, req.Age)
	assert.Equal(t, "Should I change careers?", req.Question)
	assert.Equal(t, FocusCareer, req.Focus)

	require.NotEmpty(t, req.Prompt)
	assert.Contains(t, req.Prompt, "Life number: 3")
	assert.Contains(t, req.Prompt, "Gender: female")
	assert.Contains(t, req.Prompt, "Age: 34")
	assert.Contains(t, req.Prompt, "Should I change careers?")
	assert.Contains(t, req.Prompt, FocusCareer)
	assert.Contains(t, req.Prompt, "5000 words")
}

func TestBuildPromptEmptyQuestion(t *testing.T) {
	req := BuildPrompt(11, "male", 17, "")

	assert.Equal(t, FocusMinor, req.Focus)
	assert.Contains(t, req.Prompt, "Life number: 11")
	// An empty question must not break the template.
	assert.Contains(t, req.Prompt, "Current question: \n")
}

func TestBuildPromptResolvesFocusByAge(t *testing.T) {
	assert.Equal(t, FocusRetirement, BuildPrompt(7, "male", 65, "").Focus)
	assert.Equal(t, FocusStudent, BuildPrompt(7, "male", 18, "").Focus)
}
