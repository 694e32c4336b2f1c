package quiz

// Question is one multiple-choice quiz question. CorrectAnswerIndex
// points into Options.
type Question struct {
	Question           string   `json:"question"`
	Options            []string `json:"options"`
	CorrectAnswerIndex int      `json:"correctAnswerIndex"`
	Explanation        string   `json:"explanation"`
}
