package plan

import (
	"yearcompass/internal/task"
)

// Document is the year-long hierarchical schedule the model generates:
// quarters hold months, months hold weeks, weeks assign focus areas and
// sample tasks to weekdays.
type Document struct {
	Year     int       `json:"year"`
	Vision   string    `json:"vision"`
	Quarters []Quarter `json:"quarters"`
}

type Quarter struct {
	Quarter    int      `json:"quarter"`
	Theme      string   `json:"theme"`
	FocusAreas []string `json:"focus_areas"`
	Months     []Month  `json:"months"`
}

type Month struct {
	Month           int      `json:"month"`
	Name            string   `json:"name"`
	PrimaryFocus    string   `json:"primary_focus"`
	SupportingFocus []string `json:"supporting_focus,omitempty"`
	Milestones      []string `json:"milestones"`
	Weeks           []Week   `json:"weeks"`
}

type Week struct {
	Week          int                        `json:"week"`
	Theme         string                     `json:"theme"`
	FocusRotation map[string][]string        `json:"focus_rotation"`
	SampleTasks   map[string][]task.Template `json:"sample_tasks"`
}

// FirstWeek resolves quarters[0].months[0].weeks[0], the week that seeds
// day-one tasks. Nil when the hierarchy doesn't reach that deep.
func (d *Document) FirstWeek() *Week {
	if len(d.Quarters) == 0 || len(d.Quarters[0].Months) == 0 || len(d.Quarters[0].Months[0].Weeks) == 0 {
		return nil
	}
	return &d.Quarters[0].Months[0].Weeks[0]
}
