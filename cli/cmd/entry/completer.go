package entry

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"github.com/josh65536/graph-war/graph"
)

// isWordBoundary returns true if the rune is a word delimiter for completion
// purposes. This includes whitespace, parentheses, the assignment sign, and
// every expression operator character.
func isWordBoundary(r rune) bool {
	switch r {
	case ' ', '\t', '\n',
		'(', ')', '=',
		'+', '-', '*', '/', '%', '^':
		return true
	}

	return false
}

// wordBounds returns the current word at the cursor position and its byte
// boundaries within input. Words are delimited by whitespace, parentheses,
// and operator characters.
// Returns an empty word when the cursor sits on a boundary (after a space,
// start of line, etc.).
func wordBounds(input string, cursor int) (word string, start, end int) {
	if cursor > len(input) {
		cursor = len(input)
	}

	// Walk backward from cursor to find word start.
	start = cursor

	for start > 0 {
		r, size := utf8.DecodeLastRuneInString(input[:start])
		if isWordBoundary(r) {
			break
		}

		start -= size
	}

	// Walk forward from cursor to find word end.
	end = cursor

	for end < len(input) {
		r, size := utf8.DecodeRuneInString(input[end:])
		if isWordBoundary(r) {
			break
		}

		end += size
	}

	word = input[start:end]

	return word, start, end
}

// completionCandidates returns every name the expression language can
// resolve: the parameter t, the registered constants, and the unary and
// binary function names.
func completionCandidates() []string {
	names := []string{"t"}
	names = append(names, graph.ConstantNames()...)
	names = append(names, graph.UnaryNames()...)
	names = append(names, graph.BinaryNames()...)

	return names
}

// computeMatches calculates the fuzzy match results for the word at the
// cursor of the focused expression field. It returns the matches (ranked
// best-first), the candidate list, and the word boundaries. An empty word
// yields nil matches so the hint line stays visible.
func (m model) computeMatches() (
	matches fuzzy.Matches,
	candidates []string,
	wordStart, wordEnd int,
) {
	input := m.focusedValue()
	cursor := m.focusedCursor()

	word, ws, we := wordBounds(input, cursor)
	wordStart, wordEnd = ws, we

	if word == "" {
		return nil, nil, wordStart, wordEnd
	}

	// A word that starts with a digit is a number literal, never a name.
	r, _ := utf8.DecodeRuneInString(word)
	if r >= '0' && r <= '9' || r == '.' {
		return nil, nil, wordStart, wordEnd
	}

	candidates = completionCandidates()
	matches = fuzzy.Find(word, candidates)

	return matches, candidates, wordStart, wordEnd
}

// refreshMatches recomputes fuzzy matches for the focused field. When
// autoConfirm is true it also auto-confirms the completion when exactly one
// candidate remains and the typed word already equals that candidate.
// autoConfirm should be false for deletions and cursor navigation so that
// the user can freely edit without unexpected completions.
func refreshMatches(m *model, autoConfirm bool) {
	if m.focus == focusWhere {
		m.matches = nil
		m.suggIdx = -1

		return
	}

	m.matches, m.candidates, m.wordStart, m.wordEnd = m.computeMatches()

	if !m.tabActive {
		m.suggIdx = -1
	}

	if !autoConfirm || len(m.matches) != 1 {
		return
	}

	// Auto-confirm when the typed word already equals the sole candidate.
	candidate := m.matches[0].Str
	word := m.focusedValue()[m.wordStart:m.wordEnd]

	if word == candidate {
		replaceCurrentWord(m, candidate)
		m.tabActive = false
		m.suggIdx = -1
		m.matches = nil
	}
}

// replaceCurrentWord replaces the current word boundaries in the focused
// field with the given replacement text and repositions the cursor.
func replaceCurrentWord(m *model, replacement string) {
	input := m.focusedValue()
	newInput := input[:m.wordStart] + replacement + input[m.wordEnd:]
	newCursor := m.wordStart + len(replacement)

	m.setFocusedValue(newInput, newCursor)

	// Update word boundaries for the replaced text.
	m.wordEnd = newCursor
}

// suggest returns the closest known name to the given unknown identifier, or
// false when nothing matches.
func suggest(name string) (string, bool) {
	matches := fuzzy.Find(name, completionCandidates())
	if len(matches) == 0 {
		return "", false
	}

	return matches[0].Str, true
}

// renderCandidateBar builds the single-line completion bar, ellipsized to
// fit within the given terminal width. Each candidate is rendered with its
// matched characters highlighted. The selected candidate (when tabbing) uses
// the selected style.
func renderCandidateBar(
	matches fuzzy.Matches,
	suggIdx int,
	tabActive bool,
	width int,
) string {
	if len(matches) == 0 || width <= 0 {
		return ""
	}

	const sep = "  "

	sepWidth := lipgloss.Width(sep)
	ellipsis := hintStyle.Render("...")
	ellipsisWidth := lipgloss.Width(ellipsis)

	var b strings.Builder

	used := 0

	for i, match := range matches {
		selected := tabActive && i == suggIdx
		rendered := renderCandidate(match, selected)
		candidateWidth := lipgloss.Width(rendered)

		entryWidth := candidateWidth
		if i > 0 {
			entryWidth += sepWidth
		}

		// Check if adding this candidate would exceed width.
		if used+entryWidth+ellipsisWidth > width && i > 0 {
			b.WriteString(sep)
			b.WriteString(ellipsis)

			break
		}

		if i > 0 {
			b.WriteString(sep)
		}

		b.WriteString(rendered)

		used += entryWidth

		// If this is the last candidate, no need to reserve ellipsis space.
		if i == len(matches)-1 {
			break
		}
	}

	return b.String()
}

// renderCandidate renders a single candidate with matched characters
// highlighted.
func renderCandidate(match fuzzy.Match, selected bool) string {
	baseStyle := suggestionStyle
	highlightStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("4")).
		Bold(true)

	if selected {
		baseStyle = selectedStyle
		highlightStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("4")).
			Bold(true)
	}

	matchSet := make(map[int]bool, len(match.MatchedIndexes))
	for _, idx := range match.MatchedIndexes {
		matchSet[idx] = true
	}

	var b strings.Builder

	for i, r := range match.Str {
		ch := string(r)
		if matchSet[i] {
			b.WriteString(highlightStyle.Render(ch))
		} else {
			b.WriteString(baseStyle.Render(ch))
		}
	}

	return b.String()
}
