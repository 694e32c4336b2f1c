package daysession

// DayDetails is the generated resource bundle for one study day.
type DayDetails struct {
	Description      string   `json:"description"`
	YouTubeQueries   []string `json:"youtubeQueries"`
	PracticeProblems []string `json:"practiceProblems"`
}
