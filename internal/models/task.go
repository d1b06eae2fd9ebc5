package models

// TaskPriority represents the priority tier of a generated task
type TaskPriority string

const (
	TaskPriorityHigh   TaskPriority = "high"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityLow    TaskPriority = "low"
)

// TaskIntelligence records why a task was generated and which rule or
// data source produced it.
type TaskIntelligence struct {
	Reasoning string `json:"reasoning"`
	Source    string `json:"source"`
}

// SmartTask is one generated pre-trip task. Tasks are created fresh on
// every generation call and have no identity beyond the current
// response; IDs are stable rule identifiers, unique within one call.
type SmartTask struct {
	ID             string           `json:"id"`
	Title          string           `json:"title"`
	Subtitle       string           `json:"subtitle"`
	Category       string           `json:"category"`
	Completed      bool             `json:"completed"`
	Urgent         bool             `json:"urgent"`
	Priority       TaskPriority     `json:"priority"`
	// DaysBeforeTrip is the reminder threshold in days. Zero means no
	// threshold is attached to the task.
	DaysBeforeTrip int              `json:"days_before_trip,omitempty"`
	Intelligence   TaskIntelligence `json:"intelligence"`
}
