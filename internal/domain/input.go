package domain

// TaskInput carries raw user input for creating a task. Times are the raw
// HH:MM strings from the form; Date is optional and defaults to today.
type TaskInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	Date        string `json:"date"`
}

// TaskPatch holds optional field updates for an existing task. Nil fields
// are left untouched.
type TaskPatch struct {
	Title       *string
	Description *string
	Category    *Category
	StartTime   *ClockTime
	EndTime     *ClockTime
	Date        *string
	Status      *Status
}
