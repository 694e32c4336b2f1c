package plan

import "testing"

func samplePlan() *StudyPlan {
	return &StudyPlan{
		Title:    "Rust Fundamentals",
		Overview: "A two week introduction to Rust.",
		Schedule: []PeriodPlan{
			{
				Period: "Week 1",
				Focus:  "Language basics",
				Days: []DayPlan{
					{Day: "Setup & Hello World", Topics: []string{"toolchain"}},
					{Day: "Ownership", Topics: []string{"borrowing"}},
				},
			},
			{
				Period: "Week 2",
				Focus:  "Building programs",
				Days: []DayPlan{
					{Day: "Traits", Topics: []string{"generics"}},
				},
			},
		},
	}
}

func TestFlattenPreservesOrderAndIndex(t *testing.T) {
	p := samplePlan()
	items := Flatten(p)

	if len(items) != p.TotalDays() {
		t.Fatalf("Flatten returned %d items, want %d", len(items), p.TotalDays())
	}

	for i, item := range items {
		if item.GlobalIndex != i {
			t.Errorf("item %d: GlobalIndex = %d, want %d", i, item.GlobalIndex, i)
		}
	}

	if items[0].Day.Day != "Setup & Hello World" {
		t.Errorf("first item = %q, want schedule order preserved", items[0].Day.Day)
	}
	if items[2].Period != "Week 2" {
		t.Errorf("third item period = %q, want %q", items[2].Period, "Week 2")
	}
}

func TestFlattenIndexContinuousAcrossPeriods(t *testing.T) {
	items := Flatten(samplePlan())

	// Day in the second period continues the count, it does not restart.
	if got := items[2].Label(); got != "Day 3" {
		t.Errorf("Label = %q, want %q", got, "Day 3")
	}
	if got := items[2].Title(); got != "Day 3: Building programs" {
		t.Errorf("Title = %q, want %q", got, "Day 3: Building programs")
	}
}

func TestFlattenEmpty(t *testing.T) {
	if items := Flatten(nil); len(items) != 0 {
		t.Errorf("Flatten(nil) returned %d items", len(items))
	}
	if items := Flatten(&StudyPlan{}); len(items) != 0 {
		t.Errorf("Flatten of empty plan returned %d items", len(items))
	}
	empty := &StudyPlan{Schedule: []PeriodPlan{{Period: "Week 1"}}}
	if items := Flatten(empty); len(items) != 0 {
		t.Errorf("Flatten of dayless period returned %d items", len(items))
	}
}
