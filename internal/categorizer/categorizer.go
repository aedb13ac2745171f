// Package categorizer suggests an expense category for a free-text
// description using a small naive Bayes model.
//
// Categorization is advisory: Categorize never fails. Low-confidence
// predictions and any internal error fall back to Miscellaneous.
package categorizer

import (
	"errors"
	"log/slog"
	"strings"
	"time"

	"fintrack/internal/cache"
	"fintrack/internal/core"
)

// ConfidenceThreshold is the minimum class probability a prediction must
// exceed to be returned instead of the Miscellaneous fallback.
const ConfidenceThreshold = 0.3

// Status describes how the categorizer reached its trained state.
// SaveErr is informational only; persistence failures are never fatal.
type Status struct {
	LoadedFromStore bool
	Retrained       bool
	SaveErr         error
}

type suggestion struct {
	category   core.Category
	confidence float64
}

type Categorizer struct {
	model  *Model
	store  ModelStore
	cache  *cache.LRUCache[suggestion]
	status Status
}

// New builds a trained categorizer. A previously persisted model is loaded
// from the store when possible; otherwise a fresh model is trained from the
// bundled examples and persisted best-effort.
func New(store ModelStore) *Categorizer {
	c := &Categorizer{
		store: store,
		cache: cache.NewLRUCache[suggestion](256, time.Hour),
	}

	model, err := store.Load()
	if err == nil {
		err = model.Validate()
	}
	if err == nil {
		c.model = model
		c.status.LoadedFromStore = true
		return c
	}

	if !errors.Is(err, ErrModelNotFound) {
		slog.Warn("Persisted categorizer model unusable, retraining", "error", err)
	}
	c.model = Train(bundledSamples())
	c.status.Retrained = true
	if saveErr := store.Save(c.model); saveErr != nil {
		slog.Warn("Could not persist categorizer model", "error", saveErr)
		c.status.SaveErr = saveErr
	}
	return c
}

// Categorize suggests a category for the description. It always returns a
// usable category; Miscellaneous when the description is empty, unknown to
// the model, or predicted with confidence at or below the threshold.
func (c *Categorizer) Categorize(description string) core.Category {
	category, _ := c.Suggest(description)
	return category
}

// Suggest is Categorize plus the confidence behind the suggestion. The
// confidence for the Miscellaneous fallback is the rejected prediction's,
// or zero when no prediction was possible.
func (c *Categorizer) Suggest(description string) (core.Category, float64) {
	key := strings.ToLower(strings.TrimSpace(description))
	if key == "" {
		return core.CategoryMiscellaneous, 0
	}
	if cached, ok := c.cache.Get(key); ok {
		return cached.category, cached.confidence
	}

	tokens := Tokenize(key)
	if len(tokens) == 0 {
		return core.CategoryMiscellaneous, 0
	}

	label, confidence, err := c.model.Predict(tokens)
	if err != nil {
		slog.Warn("Categorizer prediction failed", "error", err)
		return core.CategoryMiscellaneous, 0
	}
	if confidence <= ConfidenceThreshold {
		return core.CategoryMiscellaneous, confidence
	}

	category := core.Category(label)
	c.cache.Set(key, suggestion{category: category, confidence: confidence})
	return category, confidence
}

// Status reports how the model was obtained and whether persisting it
// failed. Exposed so callers and tests can observe the silent fallbacks.
func (c *Categorizer) Status() Status {
	return c.status
}
