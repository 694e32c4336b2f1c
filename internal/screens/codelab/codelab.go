package codelab

import (
	"context"
	"fmt"
	"strings"
	"time"

	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	cl "github.com/abhisek/studygen/internal/codelab"
	"github.com/abhisek/studygen/internal/screen"
	"github.com/abhisek/studygen/internal/ui/components"
	"github.com/abhisek/studygen/internal/ui/layout"
	"github.com/abhisek/studygen/internal/ui/theme"
)

// PlaygroundScreen is the AI-checked coding playground for one problem.
type PlaygroundScreen struct {
	evaluator *cl.Evaluator
	pg        *cl.Playground

	editor textarea.Model
	stdin  components.TextInput

	editorFocused   bool
	running         bool
	solutionLoading bool
	spinFrame       int
	result          *cl.EvaluationResult
	langIdx         int
	statusMsg       string
}

var _ screen.Screen = (*PlaygroundScreen)(nil)

// New opens the playground for a practice or exam problem.
func New(evaluator *cl.Evaluator, problem string) *PlaygroundScreen {
	pg := cl.NewPlayground(problem)

	editor := textarea.New()
	editor.SetValue(pg.Code)
	editor.Focus()

	stdin := components.NewTextInput("stdin (optional)", 120)

	return &PlaygroundScreen{
		evaluator:     evaluator,
		pg:            pg,
		editor:        editor,
		stdin:         stdin,
		editorFocused: true,
	}
}

func (p *PlaygroundScreen) Title() string {
	return "Playground"
}

func (p *PlaygroundScreen) Init() tea.Cmd {
	return p.editor.Focus()
}

func spinTick() tea.Cmd {
	return tea.Tick(120*time.Millisecond, func(t time.Time) tea.Msg {
		return spinTickMsg(t)
	})
}

func (p *PlaygroundScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case evalMsg:
		p.running = false
		result := msg.Result
		p.result = &result
		return p, nil

	case solutionMsg:
		p.solutionLoading = false
		if msg.Err != nil {
			p.statusMsg = "Could not fetch the solution. Try again."
			return p, nil
		}
		p.pg.CacheSolution(msg.Code)
		return p, nil

	case spinTickMsg:
		if !p.running && !p.solutionLoading {
			return p, nil
		}
		p.spinFrame++
		return p, spinTick()

	case tea.KeyMsg:
		if cmd, handled := p.handleGlobalKey(msg); handled {
			return p, cmd
		}
	}

	var cmd tea.Cmd
	if p.editorFocused {
		p.editor, cmd = p.editor.Update(msg)
		p.pg.Code = p.editor.Value()
	} else {
		p.stdin, cmd = p.stdin.Update(msg)
		p.pg.Input = p.stdin.Value()
	}
	return p, cmd
}

func (p *PlaygroundScreen) handleGlobalKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch msg.String() {
	case "ctrl+r":
		return p.run(), true

	case "ctrl+l":
		p.langIdx = (p.langIdx + 1) % len(cl.Languages)
		p.pg.SetLanguage(cl.Languages[p.langIdx])
		p.editor.SetValue(p.pg.Code)
		p.result = nil
		p.statusMsg = ""
		return nil, true

	case "ctrl+s":
		return p.toggleSolution(), true

	case "tab":
		if p.editorFocused {
			p.editorFocused = false
			p.editor.Blur()
			return p.stdin.Focus(), true
		}
		p.editorFocused = true
		p.stdin.Blur()
		return p.editor.Focus(), true
	}
	return nil, false
}

func (p *PlaygroundScreen) run() tea.Cmd {
	if p.running {
		return nil
	}
	p.running = true
	p.result = nil
	p.statusMsg = ""
	p.pg.RecordAttempt()

	problem, code, lang, input := p.pg.Problem, p.pg.Code, p.pg.Language, p.pg.Input
	eval := func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()
		return evalMsg{Result: p.evaluator.CheckCode(ctx, problem, code, lang, input)}
	}
	return tea.Batch(eval, spinTick())
}

func (p *PlaygroundScreen) toggleSolution() tea.Cmd {
	if p.pg.SolutionLocked() {
		left := cl.SolutionUnlockAttempts - p.pg.Attempts()
		p.statusMsg = fmt.Sprintf("Solution unlocks after %d more attempt(s).", left)
		return nil
	}
	if !p.pg.ToggleSolution() {
		return nil
	}

	p.solutionLoading = true
	problem, lang := p.pg.Problem, p.pg.Language
	fetch := func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()
		code, err := p.evaluator.GetSolution(ctx, problem, lang)
		return solutionMsg{Code: code, Err: err}
	}
	return tea.Batch(fetch, spinTick())
}

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

func (p *PlaygroundScreen) View(width, height int) string {
	cw := width - 6
	var sections []string

	sections = append(sections,
		theme.Selected.Render("Problem"),
		theme.Body.Width(cw).Render(p.pg.Problem),
		"",
		theme.Hint.Render("Language: ")+theme.Badge.Render(p.pg.Language),
		"",
	)

	if p.pg.SolutionVisible() {
		if sol, ok := p.pg.CachedSolution(); ok {
			sections = append(sections,
				theme.Selected.Render("Reference Solution"),
				theme.Card.Width(cw).Render(sol),
			)
		}
	} else {
		p.editor.SetWidth(cw)
		p.editor.SetHeight(max(6, height/3))
		sections = append(sections, p.editor.View())
	}

	sections = append(sections, "", theme.Hint.Render("Input: ")+p.stdin.View())

	switch {
	case p.running:
		frame := spinnerFrames[p.spinFrame%len(spinnerFrames)]
		sections = append(sections, "", theme.Subtitle.Render(frame+" Evaluating..."))
	case p.solutionLoading:
		frame := spinnerFrames[p.spinFrame%len(spinnerFrames)]
		sections = append(sections, "", theme.Subtitle.Render(frame+" Fetching solution..."))
	case p.result != nil:
		sections = append(sections, "", p.renderResult(cw))
	}

	if p.statusMsg != "" {
		sections = append(sections, "", theme.Hint.Render(p.statusMsg))
	}

	return lipgloss.NewStyle().Padding(1, 3).Render(strings.Join(sections, "\n"))
}

func (p *PlaygroundScreen) renderResult(cw int) string {
	verdict := theme.Incorrect.Render("✗ Not quite")
	if p.result.IsCorrect {
		verdict = theme.Correct.Render("✓ Correct")
	}
	out := theme.Card.Width(cw).Render(
		theme.Hint.Render("Output") + "\n" + theme.Body.Render(p.result.Output))
	return verdict + "\n" + out + "\n" + theme.Body.Width(cw).Render(p.result.Analysis)
}

// KeyHints implements screen.KeyHintProvider.
func (p *PlaygroundScreen) KeyHints() []layout.KeyHint {
	solLabel := "Solution"
	if p.pg.SolutionVisible() {
		solLabel = "Hide solution"
	}
	return []layout.KeyHint{
		{Key: "Ctrl+R", Description: "Run"},
		{Key: "Ctrl+L", Description: "Language"},
		{Key: "Ctrl+S", Description: solLabel},
		{Key: "Tab", Description: "Editor/Input"},
		{Key: "Esc", Description: "Back"},
	}
}
