package summary

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarizeFallback(t *testing.T) {
	inputs := []string{
		"Hi. Ok.",
		"",
		"- item one\n- item two",
		"Linera is a blockchain protocol built around microchains.",
	}

	for _, in := range inputs {
		got := Summarize(in)
		assert.Equal(t, []string{
			"Verified factual explanation regarding the requested subject matter.",
			"Consensus reached on the simulated microchain state.",
			"Deterministic proof identifier successfully validated.",
		}, got, "input %q", in)
		assert.True(t, IsFallback(got))
	}
}

func TestSummarizeTakesFirstThree(t *testing.T) {
	answer := "Linera is a blockchain protocol built around microchains. " +
		"Each user can own a microchain that runs in parallel with others! " +
		"Validators execute many chains concurrently for horizontal scale? " +
		"This fourth sentence should never appear in the summary output."

	got := Summarize(answer)
	require.Len(t, got, 3)
	assert.Equal(t, "Linera is a blockchain protocol built around microchains.", got[0])
	assert.Equal(t, "Each user can own a microchain that runs in parallel with others.", got[1])
	assert.Equal(t, "Validators execute many chains concurrently for horizontal scale.", got[2])
	assert.False(t, IsFallback(got))

	for _, b := range got {
		assert.True(t, strings.HasSuffix(b, "."))
		assert.False(t, strings.HasSuffix(b, ".."))
	}
}

func TestSummarizeTwoSentences(t *testing.T) {
	got := Summarize("Short. Microchains isolate each application state. Tiny! Cross-chain messages are delivered asynchronously.")
	assert.Equal(t, []string{
		"Microchains isolate each application state.",
		"Cross-chain messages are delivered asynchronously.",
	}, got)
}

func TestSummarizeLengthBoundary(t *testing.T) {
	exactly25 := strings.Repeat("a", 25)
	twentySix := strings.Repeat("b", 26)

	assert.True(t, IsFallback(Summarize(exactly25+". "+exactly25+".")))
	assert.Equal(t, []string{twentySix + ".", twentySix + "."}, Summarize(twentySix+". "+twentySix+"."))
}

func TestFallbackIsACopy(t *testing.T) {
	f := Fallback()
	f[0] = "mutated"
	assert.NotEqual(t, "mutated", Fallback()[0])
}
