package search

import (
	"context"
	"sort"
	"strings"

	"github.com/cleitonmarx/symbiont-ai-dogcare/internal/domain"
)

const (
	// Caps keep lexical matches from ever outranking semantic ones in
	// reported confidence.
	questionMatchCap = 0.85
	answerMatchCap   = 0.75

	// Minimum score for a keyword match to be accepted at all.
	keywordAcceptFloor = 0.30

	// Score assigned to an exact substring match when the query has no
	// usable tokens.
	exactMatchScore = 0.70

	// Bonus applied when two or more query tokens hit the question field.
	multiTokenBoost = 0.10

	// Upper bound on tokens considered per query.
	maxQueryTokens = 8
)

// stopWords are discarded before lexical scoring, together with any token of
// length <= 2.
var stopWords = map[string]struct{}{
	"the": {}, "is": {}, "are": {}, "a": {}, "an": {}, "and": {}, "or": {},
	"but": {}, "in": {}, "on": {}, "at": {}, "to": {}, "for": {}, "of": {},
	"with": {}, "by": {}, "what": {}, "should": {}, "can": {}, "my": {},
	"i": {}, "me": {}, "how": {}, "why": {}, "when": {}, "where": {},
	"do": {}, "does": {}, "did": {}, "will": {}, "would": {}, "could": {},
	"may": {}, "might": {},
}

// KeywordStrategy scores candidates by weighted lexical overlap. It is the
// last stage of the chain and needs no embeddings at all.
type KeywordStrategy struct {
	knowledgeRepo domain.KnowledgeRepository
	topK          int
}

// NewKeywordStrategy creates a new KeywordStrategy.
func NewKeywordStrategy(knowledgeRepo domain.KnowledgeRepository, topK int) KeywordStrategy {
	return KeywordStrategy{
		knowledgeRepo: knowledgeRepo,
		topK:          topK,
	}
}

// Name implements MatchStrategy.
func (s KeywordStrategy) Name() string {
	return "keyword"
}

// Attempt implements MatchStrategy. Question-field hits weigh twice as much
// as answer-field hits; scores are normalized by 2x the query token count and
// capped below the HIGH confidence cutoff so a degraded lexical match can
// never claim semantic-level certainty.
func (s KeywordStrategy) Attempt(ctx context.Context, query domain.Query) ([]domain.ScoredEntry, error) {
	entries, err := s.knowledgeRepo.ListEntries(ctx, false)
	if err != nil {
		return nil, err
	}

	tokens := Tokenize(query.Text)
	if len(tokens) == 0 {
		return s.exactMatch(entries, query.Text), nil
	}
	if len(tokens) > maxQueryTokens {
		tokens = tokens[:maxQueryTokens]
	}

	questionMatches := s.scoreEntries(entries, tokens, true)
	if best := bestScore(questionMatches); best >= keywordAcceptFloor {
		return capLen(questionMatches, s.topK), nil
	}

	answerMatches := s.scoreEntries(entries, tokens, false)
	if best := bestScore(answerMatches); best >= keywordAcceptFloor {
		return capLen(answerMatches, s.topK), nil
	}

	return nil, nil
}

// scoreEntries scores every candidate. In question-priority mode only entries
// with at least one question-field hit are considered and the higher cap
// applies; otherwise any hit qualifies under the lower answer-only cap.
func (s KeywordStrategy) scoreEntries(entries []domain.KnowledgeEntry, tokens []string, questionPriority bool) []domain.ScoredEntry {
	var matches []domain.ScoredEntry

	for _, entry := range entries {
		questionLower := strings.ToLower(entry.Question)
		answerLower := strings.ToLower(entry.Answer)

		questionHits := 0
		answerHits := 0
		for _, token := range tokens {
			if strings.Contains(questionLower, token) {
				questionHits++
			}
			if strings.Contains(answerLower, token) {
				answerHits++
			}
		}

		if questionPriority && questionHits == 0 {
			continue
		}
		if questionHits == 0 && answerHits == 0 {
			continue
		}

		scoreCap := answerMatchCap
		if questionPriority {
			scoreCap = questionMatchCap
		}

		score := float64(questionHits*2+answerHits) / float64(len(tokens)*2)
		if questionPriority && questionHits >= 2 {
			score += multiTokenBoost
		}
		if score > scoreCap {
			score = scoreCap
		}

		matches = append(matches, domain.ScoredEntry{Entry: entry, Score: score})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})
	return matches
}

// exactMatch handles queries with no usable tokens by falling back to a plain
// substring match on the question field.
func (s KeywordStrategy) exactMatch(entries []domain.KnowledgeEntry, text string) []domain.ScoredEntry {
	needle := strings.ToLower(strings.TrimSpace(text))
	if needle == "" {
		return nil
	}

	var matches []domain.ScoredEntry
	for _, entry := range entries {
		if strings.Contains(strings.ToLower(entry.Question), needle) {
			matches = append(matches, domain.ScoredEntry{Entry: entry, Score: exactMatchScore})
			if len(matches) == s.topK {
				break
			}
		}
	}
	return matches
}

// Tokenize lowercases the text and returns the meaningful tokens: stop words
// and tokens of length <= 2 are discarded.
func Tokenize(text string) []string {
	fields := strings.Fields(strings.ToLower(strings.TrimSpace(text)))

	tokens := make([]string, 0, len(fields))
	for _, field := range fields {
		token := strings.Trim(field, ".,!?;:'\"()")
		if len(token) <= 2 {
			continue
		}
		if _, skip := stopWords[token]; skip {
			continue
		}
		tokens = append(tokens, token)
	}
	return tokens
}

func bestScore(matches []domain.ScoredEntry) float64 {
	if len(matches) == 0 {
		return 0
	}
	return matches[0].Score
}

func capLen(matches []domain.ScoredEntry, topK int) []domain.ScoredEntry {
	if len(matches) > topK {
		return matches[:topK]
	}
	return matches
}
