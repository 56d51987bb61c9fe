// Package analyzer turns a free-text description into a structured Analysis:
// category classification, named concepts, numeric literals, animation-type
// hint and timing hints. Classification is a keyword heuristic, not a model.
// The whole package is pure: no I/O, no retries, deterministic output for
// identical input.
package analyzer

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/animaforge/scene-forge/internal/models"
)

const preferredStyleBonus = 2

var (
	specialChars = regexp.MustCompile(`[^\w\s.,;:!?()-]`)
	multiSpace   = regexp.MustCompile(`\s+`)
	tokenPattern = regexp.MustCompile(`[0-9]+(?:\.[0-9]+)?|[a-z]+`)
)

// Analyze tokenizes and classifies text. preferred nudges classification with
// a fixed bonus when it already scored, it never overrides a zero score.
func Analyze(text string, preferred models.AnimationStyle) (*models.Analysis, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, errors.Wrap(models.ErrInvalidInput, "description is empty")
	}
	if len(trimmed) > models.MaxDescriptionLen {
		return nil, errors.Wrapf(models.ErrInvalidInput, "description exceeds %d characters", models.MaxDescriptionLen)
	}

	clean := normalize(trimmed)
	tokens := tokenize(clean)
	set := newTokenSet(tokens)

	return &models.Analysis{
		Tokens:        tokens,
		Category:      classify(set, preferred),
		Concepts:      detectConcepts(set),
		Numbers:       extractNumbers(tokens),
		AnimationType: scoreAnimationType(set),
		Timing:        timingHints(clean),
	}, nil
}

func normalize(text string) string {
	clean := specialChars.ReplaceAllString(text, "")
	clean = multiSpace.ReplaceAllString(clean, " ")
	return strings.ToLower(strings.TrimSpace(clean))
}

func tokenize(clean string) []string {
	return tokenPattern.FindAllString(clean, -1)
}

func classify(tokens tokenSet, preferred models.AnimationStyle) models.AnimationStyle {
	scores := make(map[models.AnimationStyle]int, len(categoryKeywords))
	for _, entry := range categoryKeywords {
		for _, topic := range entry.topics {
			for _, keyword := range topic.keywords {
				if tokens.has(keyword) {
					scores[entry.category]++
				}
			}
		}
	}

	if preferred != models.StyleGeneral && scores[preferred] > 0 {
		scores[preferred] += preferredStyleBonus
	}

	// Strictly-highest score wins; a tie keeps the earliest declared category.
	best := models.StyleGeneral
	bestScore := 0
	for _, entry := range categoryKeywords {
		if scores[entry.category] > bestScore {
			best = entry.category
			bestScore = scores[entry.category]
		}
	}
	return best
}

func detectConcepts(tokens tokenSet) []models.Concept {
	var concepts []models.Concept
	for _, rule := range conceptRules {
		if rule.match(tokens) {
			concepts = append(concepts, models.Concept{
				Name:       rule.name,
				Kind:       rule.kind,
				Category:   rule.category,
				Confidence: rule.confidence,
			})
		}
	}
	return concepts
}

func extractNumbers(tokens []string) []models.NumberLiteral {
	var numbers []models.NumberLiteral
	for _, token := range tokens {
		value, err := strconv.ParseFloat(token, 64)
		if err != nil {
			continue
		}
		numbers = append(numbers, models.NumberLiteral{Value: value, Original: token})
	}
	return numbers
}

func scoreAnimationType(tokens tokenSet) string {
	best := "static"
	bestScore := 0
	for _, entry := range animationTypeKeywords {
		score := 0
		for _, keyword := range entry.keywords {
			if tokens.has(keyword) {
				score++
			}
		}
		if score > bestScore {
			best = entry.name
			bestScore = score
		}
	}
	return best
}

// timingHints searches the normalized text, not the token list, so multi-word
// markers like "at the same time" are seen. The flags are independent.
func timingHints(clean string) models.TimingHints {
	sequenceWords := []string{"first", "then", "next", "finally", "simultaneously", "after", "before"}
	hints := models.TimingHints{}
	for _, word := range sequenceWords {
		if strings.Contains(clean, word) {
			hints.HasSequence = true
			break
		}
	}
	hints.IsSimultaneous = strings.Contains(clean, "simultaneously") || strings.Contains(clean, "at the same time")
	hints.HasSteps = strings.Contains(clean, "step") || strings.Contains(clean, "stage")
	return hints
}
