// Package tokens counts sub-word tokens with the GPT-4 family vocabulary.
package tokens

import (
	"fmt"
	"strings"

	"github.com/tiktoken-go/tokenizer"
)

// Estimator counts tokens with the cl100k_base encoding.
type Estimator struct {
	codec tokenizer.Codec
}

// New loads the cl100k_base vocabulary used by GPT-4 and gpt-3.5-turbo.
func New() (*Estimator, error) {
	enc, err := tokenizer.Get(tokenizer.Cl100kBase)
	if err != nil {
		return nil, fmt.Errorf("load tokenizer: %w", err)
	}
	return &Estimator{codec: enc}, nil
}

// WordTokens returns how many tokens the model needs to encode word.
func (e *Estimator) WordTokens(word string) (int, error) {
	ids, _, err := e.codec.Encode(word)
	if err != nil {
		return 0, fmt.Errorf("encode %q: %w", word, err)
	}
	return len(ids), nil
}

// PromptEstimate compares the exact token count of a prompt with the
// words-to-tokens approximation the pricing formulas use.
type PromptEstimate struct {
	Words  int
	Exact  int
	Approx float64
}

// Prompt counts text exactly and approximates it as words * tokensPerKWords.
func (e *Estimator) Prompt(text string, tokensPerKWords float64) (PromptEstimate, error) {
	exact, err := e.WordTokens(text)
	if err != nil {
		return PromptEstimate{}, err
	}
	words := len(strings.Fields(text))
	return PromptEstimate{
		Words:  words,
		Exact:  exact,
		Approx: float64(words) * tokensPerKWords,
	}, nil
}
