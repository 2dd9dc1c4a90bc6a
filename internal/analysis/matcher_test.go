package analysis

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexbridge/relay/internal/domain"
)

type fakeExtractor struct {
	keywords []string
	err      error
	calls    int
}

func (f *fakeExtractor) Extract(_ context.Context, _ string) ([]string, error) {
	f.calls++
	return f.keywords, f.err
}

func TestAnalyzeMatchesTheftQuery(t *testing.T) {
	m := NewMatcher(&fakeExtractor{keywords: []string{"punishment", "theft"}})

	section, err := m.Analyze(context.Background(), "What is the punishment for theft?")

	require.NoError(t, err)
	assert.Equal(t, "378", section.Number)
	assert.Equal(t, "Theft", section.Title)
}

func TestAnalyzeNoOverlapReturnsErrNoMatch(t *testing.T) {
	m := NewMatcher(&fakeExtractor{keywords: []string{"xyzzy", "nonsense"}})

	_, err := m.Analyze(context.Background(), "xyzzy nonsense")

	assert.ErrorIs(t, err, ErrNoMatch)
}

func TestAnalyzeFallsBackToRawTextOnExtractorError(t *testing.T) {
	fx := &fakeExtractor{err: errors.New("upstream down")}
	m := NewMatcher(fx)

	section, err := m.Analyze(context.Background(), "my husband demands dowry")

	require.NoError(t, err)
	assert.Equal(t, "498A", section.Number)
	assert.Equal(t, 1, fx.calls)
}

func TestAnalyzeFallsBackToRawTextOnEmptyExtraction(t *testing.T) {
	m := NewMatcher(&fakeExtractor{})

	section, err := m.Analyze(context.Background(), "someone forged my signature on a document")

	require.NoError(t, err)
	assert.Equal(t, "463", section.Number)
}

func TestAnalyzeNilExtractorTokenizesRawText(t *testing.T) {
	m := NewMatcher(nil)

	section, err := m.Analyze(context.Background(), "He was KILLED. Murder!")

	require.NoError(t, err)
	assert.Equal(t, "302", section.Number)
}

func TestAnalyzeHighestOverlapWins(t *testing.T) {
	// One theft keyword versus three murder keywords.
	m := NewMatcher(nil)

	section, err := m.Analyze(context.Background(), "stolen, then killed: a murder, a homicide")

	require.NoError(t, err)
	assert.Equal(t, "302", section.Number)
}

func TestAnalyzeTieKeepsEarlierEntry(t *testing.T) {
	// "theft" and "murder" score one apiece; 378 precedes 302 in the table.
	m := NewMatcher(nil)

	section, err := m.Analyze(context.Background(), "theft murder")

	require.NoError(t, err)
	assert.Equal(t, "378", section.Number)
}

func TestAnalyzeIsDeterministic(t *testing.T) {
	m := NewMatcher(nil)
	first, err := m.Analyze(context.Background(), "they beat and attacked him, an assault")
	require.NoError(t, err)

	for i := 0; i < 20; i++ {
		section, err := m.Analyze(context.Background(), "they beat and attacked him, an assault")
		require.NoError(t, err)
		assert.Equal(t, first.Number, section.Number)
	}
}

func TestAIMessageFormat(t *testing.T) {
	section := Section{
		Number:      "378",
		Title:       "Theft",
		Description: "Whoever takes property dishonestly commits theft.",
		RelatedCase: "Pyare Lal Bhargava v. State of Rajasthan (1963)",
	}

	m := AIMessage("c1", section)

	assert.NotEmpty(t, m.ID)
	assert.Equal(t, domain.ConversationID("c1"), m.ConversationID)
	assert.Equal(t, "ai", m.SenderID)
	assert.Equal(t, "AI Assistant", m.SenderName)
	assert.Equal(t, domain.RoleLawyer, m.SenderRole)
	assert.True(t, m.IsAI)
	assert.NotEmpty(t, m.Timestamp)
	assert.True(t, strings.HasPrefix(m.Content, "Legal Analysis:\n\nIPC Section 378 - Theft\n\n"))
	assert.Contains(t, m.Content, "Related Case: Pyare Lal Bhargava v. State of Rajasthan (1963)")
}

func TestAIMessageMissingCaseRendersNA(t *testing.T) {
	m := AIMessage("c1", Section{Number: "441", Title: "Criminal Trespass", Description: "d"})

	assert.Contains(t, m.Content, "Related Case: N/A")
}
