package plan

// DayPlan is one day of scheduled work. The Day label is display text
// from the model; day identity everywhere else comes from the timeline's
// global index, never from this field.
type DayPlan struct {
	Day        string   `json:"day"`
	Topics     []string `json:"topics"`
	Activities []string `json:"activities"`
}

// PeriodPlan groups consecutive days under one focus, e.g. "Week 1".
type PeriodPlan struct {
	Period string    `json:"period"`
	Focus  string    `json:"focus"`
	Days   []DayPlan `json:"days"`
}

// StudyPlan is a generated curriculum. Schedule order is chronological.
type StudyPlan struct {
	Title    string       `json:"title"`
	Overview string       `json:"overview"`
	Schedule []PeriodPlan `json:"schedule"`
}

// TotalDays returns the number of days across all periods.
func (p *StudyPlan) TotalDays() int {
	n := 0
	for _, period := range p.Schedule {
		n += len(period.Days)
	}
	return n
}

// Duration is the requested plan length.
type Duration string

const (
	DurationWeekend  Duration = "Weekend Crash Course"
	DurationOneWeek  Duration = "1 Week"
	DurationTwoWeeks Duration = "2 Weeks"
	DurationOneMonth Duration = "1 Month"
	DurationSemester Duration = "Semester (4 Months)"
)

// Durations lists all selectable durations in display order.
func Durations() []Duration {
	return []Duration{
		DurationWeekend,
		DurationOneWeek,
		DurationTwoWeeks,
		DurationOneMonth,
		DurationSemester,
	}
}

// Intensity is the requested daily workload.
type Intensity string

const (
	IntensityLight   Intensity = "Light (1-2 hours/day)"
	IntensityMedium  Intensity = "Medium (3-4 hours/day)"
	IntensityIntense Intensity = "Intense (5+ hours/day)"
)

// Intensities lists all selectable intensities in display order.
func Intensities() []Intensity {
	return []Intensity{
		IntensityLight,
		IntensityMedium,
		IntensityIntense,
	}
}
