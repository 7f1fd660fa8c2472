package search

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTokenize_LowersAndSplits(t *testing.T) {
	tokens := Tokenize("Hiking ALPS snow")
	require.Equal(t, []string{"hiking", "alps", "snow"}, tokens)
}

func TestTokenize_DropsStopWords(t *testing.T) {
	tokens := Tokenize("the quick fox and a hound")
	require.Equal(t, []string{"quick", "fox", "hound"}, tokens)
}

func TestTokenize_PunctuationDelimits(t *testing.T) {
	tokens := Tokenize("snow,flour!bread... (mountain)")
	require.Equal(t, []string{"snow", "flour", "bread", "mountain"}, tokens)
}

func TestTokenize_Empty(t *testing.T) {
	require.Empty(t, Tokenize(""))
	require.Empty(t, Tokenize("the and of"))
	require.Empty(t, Tokenize("!!! ..."))
}
