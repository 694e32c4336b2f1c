package plan

import "fmt"

// TimelineItem is one day projected onto the flat timeline. GlobalIndex
// is 0-based and continuous across periods; it is the canonical "Day N"
// identity used for display labels and quiz cooldown keys.
type TimelineItem struct {
	Period      string
	Focus       string
	Day         DayPlan
	GlobalIndex int
}

// Title returns the canonical day title, e.g. "Day 3: Pointers".
func (t TimelineItem) Title() string {
	return fmt.Sprintf("%s: %s", t.Label(), t.Focus)
}

// Label returns the positional day label, e.g. "Day 3".
func (t TimelineItem) Label() string {
	return fmt.Sprintf("Day %d", t.GlobalIndex+1)
}

// Flatten projects a plan's nested period/day structure into a flat,
// indexable sequence. Pure and order-preserving: recompute it whenever
// the plan changes rather than mutating a stored copy. Plans without
// periods or days yield an empty sequence.
func Flatten(p *StudyPlan) []TimelineItem {
	if p == nil {
		return nil
	}

	items := make([]TimelineItem, 0, p.TotalDays())
	idx := 0
	for _, period := range p.Schedule {
		for _, day := range period.Days {
			items = append(items, TimelineItem{
				Period:      period.Period,
				Focus:       period.Focus,
				Day:         day,
				GlobalIndex: idx,
			})
			idx++
		}
	}
	return items
}
