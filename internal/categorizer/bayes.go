package categorizer

import (
	"errors"
	"math"
	"strings"
	"unicode"
)

// Sample is one labelled training example.
type Sample struct {
	Text  string `json:"text"`
	Label string `json:"label"`
}

// Model is a multinomial naive Bayes classifier over bag-of-words counts
// with Laplace smoothing. All fields are exported so the trained state
// serializes to JSON as-is.
type Model struct {
	Classes     []string                  `json:"classes"`
	ClassDocs   map[string]int            `json:"class_docs"`
	TokenCounts map[string]map[string]int `json:"token_counts"`
	ClassTokens map[string]int            `json:"class_tokens"`
	Vocabulary  map[string]struct{}       `json:"vocabulary"`
	TotalDocs   int                       `json:"total_docs"`
}

var ErrEmptyModel = errors.New("model has no training data")

// Train builds a model from labelled samples. Texts are lowercased,
// tokenized and stopword-filtered before counting.
func Train(samples []Sample) *Model {
	m := &Model{
		ClassDocs:   make(map[string]int),
		TokenCounts: make(map[string]map[string]int),
		ClassTokens: make(map[string]int),
		Vocabulary:  make(map[string]struct{}),
	}

	for _, s := range samples {
		tokens := Tokenize(s.Text)
		if len(tokens) == 0 {
			continue
		}
		if _, seen := m.ClassDocs[s.Label]; !seen {
			m.Classes = append(m.Classes, s.Label)
			m.TokenCounts[s.Label] = make(map[string]int)
		}
		m.ClassDocs[s.Label]++
		m.TotalDocs++
		for _, tok := range tokens {
			m.TokenCounts[s.Label][tok]++
			m.ClassTokens[s.Label]++
			m.Vocabulary[tok] = struct{}{}
		}
	}

	return m
}

// Validate reports whether the model is usable for prediction. A model
// deserialized from a corrupted artifact fails here and triggers retraining.
func (m *Model) Validate() error {
	if m == nil || m.TotalDocs == 0 || len(m.Classes) == 0 || len(m.Vocabulary) == 0 {
		return ErrEmptyModel
	}
	for _, class := range m.Classes {
		if m.ClassDocs[class] == 0 || m.TokenCounts[class] == nil {
			return ErrEmptyModel
		}
	}
	return nil
}

// Predict returns the most probable class for the tokens and its normalized
// probability. With no usable tokens the class probabilities collapse to the
// class priors.
func (m *Model) Predict(tokens []string) (string, float64, error) {
	if err := m.Validate(); err != nil {
		return "", 0, err
	}

	vocabSize := float64(len(m.Vocabulary))
	logProbs := make([]float64, len(m.Classes))
	for i, class := range m.Classes {
		logProb := math.Log(float64(m.ClassDocs[class]) / float64(m.TotalDocs))
		denom := float64(m.ClassTokens[class]) + vocabSize
		for _, tok := range tokens {
			count := float64(m.TokenCounts[class][tok])
			logProb += math.Log((count + 1) / denom)
		}
		logProbs[i] = logProb
	}

	// Normalize in log space to get per-class probabilities.
	maxLog := logProbs[0]
	for _, lp := range logProbs[1:] {
		if lp > maxLog {
			maxLog = lp
		}
	}
	var sum float64
	probs := make([]float64, len(logProbs))
	for i, lp := range logProbs {
		probs[i] = math.Exp(lp - maxLog)
		sum += probs[i]
	}

	best := 0
	for i := range probs {
		probs[i] /= sum
		if probs[i] > probs[best] {
			best = i
		}
	}
	return m.Classes[best], probs[best], nil
}

// stopwords are common English words carrying no category signal.
var stopwords = map[string]struct{}{
	"a": {}, "an": {}, "and": {}, "are": {}, "as": {}, "at": {}, "be": {},
	"by": {}, "for": {}, "from": {}, "has": {}, "he": {}, "in": {}, "is": {},
	"it": {}, "its": {}, "of": {}, "on": {}, "or": {}, "that": {}, "the": {},
	"to": {}, "was": {}, "were": {}, "will": {}, "with": {},
}

// Tokenize lowercases the text and splits it into stopword-filtered word
// tokens. Anything that is not a letter or digit separates tokens.
func Tokenize(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if _, skip := stopwords[f]; skip {
			continue
		}
		tokens = append(tokens, f)
	}
	return tokens
}
