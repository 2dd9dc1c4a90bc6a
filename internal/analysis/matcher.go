// Package analysis maps free legal text to statute sections by keyword
// overlap against a fixed reference table.
package analysis

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lexbridge/relay/internal/domain"
	"github.com/rs/zerolog/log"
)

// ErrNoMatch means no table entry scored above zero for the query.
var ErrNoMatch = errors.New("no relevant section")

const (
	aiSenderID   = "ai"
	aiSenderName = "AI Assistant"
)

// KeywordExtractor is the external text-analysis collaborator. An error or
// an empty result is recoverable: the matcher falls back to the raw text.
type KeywordExtractor interface {
	Extract(ctx context.Context, text string) ([]string, error)
}

type Matcher struct {
	extractor KeywordExtractor
	table     []Section
}

func NewMatcher(extractor KeywordExtractor) *Matcher {
	return &Matcher{extractor: extractor, table: Sections()}
}

// Analyze extracts keywords from text and matches them against the table.
// Extraction failure is never surfaced; matching then runs on the raw text.
func (m *Matcher) Analyze(ctx context.Context, text string) (Section, error) {
	tokens := m.queryTokens(ctx, text)
	return m.match(tokens)
}

func (m *Matcher) queryTokens(ctx context.Context, text string) map[string]struct{} {
	if m.extractor != nil {
		keywords, err := m.extractor.Extract(ctx, text)
		if err != nil {
			log.Warn().Str("module", "analysis").Err(err).Msg("keyword extraction failed, falling back to raw text")
		} else if len(keywords) > 0 {
			return tokenize(strings.Join(keywords, " "))
		} else {
			log.Debug().Str("module", "analysis").Msg("keyword extraction returned nothing, falling back to raw text")
		}
	}
	return tokenize(text)
}

// match scores each entry by how many of its keywords appear in the query
// token set. Highest score wins; ties keep the earlier table entry.
func (m *Matcher) match(tokens map[string]struct{}) (Section, error) {
	best := -1
	bestScore := 0
	for i, entry := range m.table {
		score := 0
		for _, kw := range entry.Keywords {
			if _, ok := tokens[kw]; ok {
				score++
			}
		}
		if score > bestScore {
			best, bestScore = i, score
		}
	}
	if best < 0 {
		return Section{}, ErrNoMatch
	}
	return m.table[best], nil
}

func tokenize(s string) map[string]struct{} {
	fields := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !('a' <= r && r <= 'z' || '0' <= r && r <= '9')
	})
	set := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		set[f] = struct{}{}
	}
	return set
}

// AIMessage wraps a matched section into the synthetic assistant message
// that re-enters the relay for normal room delivery.
func AIMessage(conversationID domain.ConversationID, section Section) domain.Message {
	relatedCase := section.RelatedCase
	if relatedCase == "" {
		relatedCase = "N/A"
	}
	content := fmt.Sprintf(
		"Legal Analysis:\n\nIPC Section %s - %s\n\n%s\n\nRelated Case: %s",
		section.Number, section.Title, section.Description, relatedCase,
	)
	return domain.Message{
		ID:             uuid.NewString(),
		ConversationID: conversationID,
		SenderID:       aiSenderID,
		SenderName:     aiSenderName,
		SenderRole:     domain.RoleLawyer,
		Content:        content,
		Timestamp:      time.Now().UTC().Format(time.RFC3339),
		IsAI:           true,
	}
}
