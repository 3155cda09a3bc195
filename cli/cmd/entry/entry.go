// Package entry implements the interactive curve entry form.
//
// The form has three fields: the x(t) expression, the y(t) expression, and a
// multi-line "where" block of auxiliary assignments. Submitting the form
// compiles the curve and reports either success with a sample preview or the
// positioned compile error.
package entry

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/josh65536/graph-war/graph"
	"github.com/josh65536/graph-war/log"
)

const (
	promptX     = "x(t) = "
	promptY     = "y(t) = "
	labelWhere  = "where"
	whereHeight = 4
)

// focusField identifies which form field holds input focus.
type focusField int

const (
	focusX focusField = iota
	focusY
	focusWhere
	fieldCount
)

// Styles.
var (
	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("6")).
			Bold(true)
	resultStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	errorStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	hintStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	suggestionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	selectedStyle   = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("4"))
)

// model is the Bubble Tea model for the entry form.
type model struct {
	ctxFunc      func() context.Context
	inputX       textinput.Model
	inputY       textinput.Model
	inputWhere   textarea.Model
	logger       log.Logger
	lastPath     string
	focus        focusField
	matches      fuzzy.Matches // current fuzzy match results
	candidates   []string      // backing candidate list
	wordStart    int           // byte offset of current word start
	wordEnd      int           // byte offset of current word end
	suggIdx      int           // selected candidate index
	tabActive    bool          // whether user is tab-cycling
	preTabText   string        // input text before tab-cycling began
	preTabCursor int           // cursor position before tab-cycling began
	width        int           // terminal width for ellipsization
	status       string        // rendered result of the last submission
	hint         string        // did-you-mean hint for the last error
	preview      []string      // rendered sample points of the last curve
	quitting     bool
}

// Run starts the entry form. The previous submission is restored from
// cacheDir and the latest successful submission is saved back to it.
func Run(
	ctx context.Context,
	cacheDir string,
	logger log.Logger,
) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	logger.TraceContext(
		ctx,
		"entry start",
		slog.String("cache_dir", cacheDir),
	)

	lastPath := filepath.Join(cacheDir, baseLast)

	last, err := loadLast(lastPath)
	if err != nil {
		fmt.Printf("Warning: could not load previous curve: %v\n", err)
	}

	m := newModel(ctx, last, lastPath, logger)

	p := tea.NewProgram(m, tea.WithContext(ctx))
	_, err = p.Run()

	return err
}

const defaultWidth = 80

func newModel(
	ctx context.Context,
	last lastSubmission,
	lastPath string,
	logger log.Logger,
) model {
	tx := textinput.New()
	tx.Prompt = promptStyle.Render(promptX)
	tx.CharLimit = 1024
	tx.Width = defaultWidth
	tx.SetValue(last.X)
	tx.Focus()

	ty := textinput.New()
	ty.Prompt = promptStyle.Render(promptY)
	ty.CharLimit = 1024
	ty.Width = defaultWidth
	ty.SetValue(last.Y)

	tw := textarea.New()
	tw.Prompt = "  "
	tw.Placeholder = "name = expression"
	tw.ShowLineNumbers = false
	tw.CharLimit = 4096
	tw.SetWidth(defaultWidth)
	tw.SetHeight(whereHeight)
	tw.SetValue(last.Where)

	return model{
		ctxFunc:    func() context.Context { return ctx },
		inputX:     tx,
		inputY:     ty,
		inputWhere: tw,
		logger:     logger,
		lastPath:   lastPath,
		focus:      focusX,
		width:      defaultWidth,
	}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.inputX.Width = msg.Width - len(promptX) - 2
		m.inputY.Width = msg.Width - len(promptY) - 2
		m.inputWhere.SetWidth(msg.Width - 4)

		return m, nil
	}

	return m.updateFocused(msg)
}

func (m model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(m.inputX.View())
	b.WriteString("\n")
	b.WriteString(m.inputY.View())
	b.WriteString("\n")
	b.WriteString(promptStyle.Render(labelWhere))
	b.WriteString("\n")
	b.WriteString(m.inputWhere.View())
	b.WriteString("\n")

	switch {
	case len(m.matches) > 0:
		b.WriteString(renderCandidateBar(
			m.matches, m.suggIdx, m.tabActive, m.width,
		))
		b.WriteString("\n")

	case m.hint != "":
		b.WriteString(hintStyle.Render(m.hint))
		b.WriteString("\n")

	default:
		hint := "Tab switches fields, Ctrl+S submits, Esc quits"
		if m.focus != focusWhere {
			hint = "Tab completes or switches fields, " +
				"Ctrl+S submits, Esc quits"
		}

		b.WriteString(hintStyle.Render(hint))
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString(m.status)
		b.WriteString("\n")
	}

	for _, line := range m.preview {
		b.WriteString(line)
		b.WriteString("\n")
	}

	return b.String()
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	m.logger.TraceContext(
		m.ctxFunc(),
		"entry keypress",
		slog.String("key", msg.String()),
		slog.Int("field", int(m.focus)),
	)

	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyCtrlD:
		m.quitting = true

		return m, tea.Quit

	case tea.KeyEsc:
		if m.tabActive {
			m.tabActive = false
			m.restorePreTab()
			refreshMatches(&m, false)

			return m, nil
		}

		m.quitting = true

		return m, tea.Quit

	case tea.KeyCtrlS:
		return m.submit()

	case tea.KeyEnter:
		// Enter inserts a newline in the where block and otherwise
		// advances focus.
		if m.focus == focusWhere {
			return m.updateFocused(msg)
		}

		if m.tabActive && len(m.matches) > 0 {
			m.tabActive = false
			refreshMatches(&m, true)

			return m, nil
		}

		return m.setFocus((m.focus + 1) % fieldCount)

	case tea.KeyTab:
		if m.focus != focusWhere && len(m.matches) > 0 {
			return m.handleTab()
		}

		return m.setFocus((m.focus + 1) % fieldCount)

	case tea.KeyShiftTab:
		if m.focus != focusWhere && len(m.matches) > 0 {
			return m.handleShiftTab()
		}

		return m.setFocus((m.focus + fieldCount - 1) % fieldCount)

	case tea.KeyRunes:
		// Space acts as a "breaking" key while tab-cycling.
		if m.tabActive && msg.String() == " " {
			m.tabActive = false
		}

		var cmd tea.Cmd

		m, cmd = m.updateFocused(msg)
		refreshMatches(&m, true)

		return m, cmd
	}

	// For any other key (backspace, delete, arrows, etc.),
	// update input and recompute matches without auto-confirm.
	var cmd tea.Cmd

	m.tabActive = false
	m, cmd = m.updateFocused(msg)
	refreshMatches(&m, false)

	return m, cmd
}

// updateFocused forwards a message to whichever field holds focus.
func (m model) updateFocused(msg tea.Msg) (model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.focus {
	case focusX:
		m.inputX, cmd = m.inputX.Update(msg)
	case focusY:
		m.inputY, cmd = m.inputY.Update(msg)
	default:
		m.inputWhere, cmd = m.inputWhere.Update(msg)
	}

	return m, cmd
}

// setFocus moves focus to the given field, clearing any in-progress
// completion state.
func (m model) setFocus(f focusField) (model, tea.Cmd) {
	m.tabActive = false
	m.matches = nil
	m.suggIdx = -1
	m.focus = f

	m.inputX.Blur()
	m.inputY.Blur()
	m.inputWhere.Blur()

	switch f {
	case focusX:
		return m, m.inputX.Focus()
	case focusY:
		return m, m.inputY.Focus()
	default:
		return m, m.inputWhere.Focus()
	}
}

func (m model) handleTab() (model, tea.Cmd) {
	// Single candidate: complete and confirm immediately.
	if len(m.matches) == 1 {
		replaceCurrentWord(&m, m.matches[0].Str)
		m.tabActive = false
		m.suggIdx = -1
		m.matches = nil

		return m, nil
	}

	if m.tabActive {
		// Cycle forward through candidates.
		m.suggIdx++
		if m.suggIdx >= len(m.matches) {
			m.suggIdx = 0
		}
	} else {
		m.tabActive = true
		m.preTabText = m.focusedValue()
		m.preTabCursor = m.focusedCursor()
		m.suggIdx = 0
	}

	replaceCurrentWord(&m, m.matches[m.suggIdx].Str)

	return m, nil
}

func (m model) handleShiftTab() (model, tea.Cmd) {
	// Single candidate: complete and confirm immediately.
	if len(m.matches) == 1 {
		replaceCurrentWord(&m, m.matches[0].Str)
		m.tabActive = false
		m.suggIdx = -1
		m.matches = nil

		return m, nil
	}

	if m.tabActive {
		// Cycle backward through candidates.
		m.suggIdx--
		if m.suggIdx < 0 {
			m.suggIdx = len(m.matches) - 1
		}
	} else {
		m.tabActive = true
		m.preTabText = m.focusedValue()
		m.preTabCursor = m.focusedCursor()
		m.suggIdx = len(m.matches) - 1
	}

	replaceCurrentWord(&m, m.matches[m.suggIdx].Str)

	return m, nil
}

// focusedValue returns the text of the focused single-line field.
func (m *model) focusedValue() string {
	if m.focus == focusY {
		return m.inputY.Value()
	}

	return m.inputX.Value()
}

// focusedCursor returns the cursor offset of the focused single-line field.
func (m *model) focusedCursor() int {
	if m.focus == focusY {
		return m.inputY.Position()
	}

	return m.inputX.Position()
}

// setFocusedValue rewrites the focused single-line field and repositions the
// cursor.
func (m *model) setFocusedValue(text string, cursor int) {
	if m.focus == focusY {
		m.inputY.SetValue(text)
		m.inputY.SetCursor(cursor)

		return
	}

	m.inputX.SetValue(text)
	m.inputX.SetCursor(cursor)
}

func (m *model) restorePreTab() {
	m.setFocusedValue(m.preTabText, m.preTabCursor)
}

const previewCount = 4

func (m model) submit() (model, tea.Cmd) {
	x := m.inputX.Value()
	y := m.inputY.Value()
	where := m.inputWhere.Value()

	m.logger.TraceContext(
		m.ctxFunc(),
		"entry submit",
		slog.String("x", x),
		slog.String("y", y),
	)

	p, err := graph.Compile(x, y, where, graph.WithLogger(m.logger))
	if err != nil {
		m.status, m.hint = renderCompileError(err)
		m.preview = nil

		return m, nil
	}

	m.status = resultStyle.Render(graph.StatusSuccess)
	m.hint = ""
	m.preview = renderPreview(p.Points(previewCount))

	if err := saveLast(m.lastPath, lastSubmission{
		X:     x,
		Y:     y,
		Where: where,
	}); err != nil {
		m.logger.TraceContext(
			m.ctxFunc(),
			"entry save failed",
			slog.String("error", err.Error()),
		)
	}

	return m, nil
}

// renderCompileError renders the status line for a failed compilation, plus a
// did-you-mean hint when the error names an unknown identifier close to a
// known one.
func renderCompileError(err error) (status, hint string) {
	ce := &graph.CompileError{}
	if !errors.As(err, &ce) {
		return errorStyle.Render("error: " + err.Error()), ""
	}

	status = errorStyle.Render(ce.Status())

	if name, ok := unknownName(ce.Message); ok {
		if best, found := suggest(name); found {
			hint = "did you mean '" + best + "'?"
		}
	}

	return status, hint
}

// unknownName extracts the offending identifier from an unknown-variable or
// unknown-function message.
func unknownName(msg string) (string, bool) {
	for _, prefix := range []string{
		"unknown variable: ",
		"unknown unary function: ",
		"unknown binary function: ",
	} {
		if name, ok := strings.CutPrefix(msg, prefix); ok {
			return name, true
		}
	}

	return "", false
}

// renderPreview formats a handful of sampled points for display under the
// status line.
func renderPreview(pts []graph.Point) []string {
	lines := make([]string, 0, len(pts))

	for _, pt := range pts {
		lines = append(lines, hintStyle.Render(fmt.Sprintf(
			"  t=%s: (%s, %s)",
			strconv.FormatFloat(pt.T, 'g', 4, 64),
			strconv.FormatFloat(pt.X, 'g', 4, 64),
			strconv.FormatFloat(pt.Y, 'g', 4, 64),
		)))
	}

	return lines
}
