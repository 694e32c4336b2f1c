package codelab

// SolutionUnlockAttempts is how many evaluation runs unlock the
// reference solution.
const SolutionUnlockAttempts = 3

// Playground tracks one coding problem's editor state. Attempts count
// runs across the whole problem: switching language resets the editor
// and discards the cached solution for the old language, but earned
// attempts are never taken back.
type Playground struct {
	Problem  string
	Language string
	Code     string
	Input    string

	attempts        int
	solution        string
	hasSolution     bool
	solutionVisible bool
}

// NewPlayground opens a problem with the default language scaffold.
func NewPlayground(problem string) *Playground {
	lang := Languages[0]
	return &Playground{
		Problem:  problem,
		Language: lang,
		Code:     StarterCode(lang),
	}
}

// SetLanguage switches the editor language, replacing the code with
// that language's scaffold. The cached solution belongs to the old
// language and is dropped.
func (p *Playground) SetLanguage(language string) {
	p.Language = language
	p.Code = StarterCode(language)
	p.solution = ""
	p.hasSolution = false
	p.solutionVisible = false
}

// RecordAttempt counts an evaluation run. Runs count whether or not
// they pass.
func (p *Playground) RecordAttempt() {
	p.attempts++
}

// Attempts returns the number of evaluation runs so far.
func (p *Playground) Attempts() int {
	return p.attempts
}

// SolutionLocked reports whether the reference solution is still
// withheld.
func (p *Playground) SolutionLocked() bool {
	return p.attempts < SolutionUnlockAttempts
}

// CacheSolution stores a fetched solution and reveals it.
func (p *Playground) CacheSolution(code string) {
	p.solution = code
	p.hasSolution = true
	p.solutionVisible = true
}

// CachedSolution returns the stored solution for the current language.
func (p *Playground) CachedSolution() (string, bool) {
	return p.solution, p.hasSolution
}

// SolutionVisible reports whether the solution pane is showing.
func (p *Playground) SolutionVisible() bool {
	return p.solutionVisible
}

// ToggleSolution flips the solution pane. Returns true when a fetch is
// needed first: the solution is unlocked, about to show, and not yet
// cached.
func (p *Playground) ToggleSolution() (needFetch bool) {
	if p.solutionVisible {
		p.solutionVisible = false
		return false
	}
	if p.SolutionLocked() {
		return false
	}
	if !p.hasSolution {
		return true
	}
	p.solutionVisible = true
	return false
}
