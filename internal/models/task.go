package models

// Status is the (label, color) pair ClickUp attaches to a task. The label
// vocabulary is operator-configured, so no enumeration exists here.
type Status struct {
	Label string `json:"label"`
	Color string `json:"color"`
}

type Assignee struct {
	ID             int    `json:"id"`
	Username       string `json:"username"`
	Initials       string `json:"initials,omitempty"`
	Color          string `json:"color,omitempty"`
	ProfilePicture string `json:"profile_picture,omitempty"`
}

type ListRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Task is a read-only snapshot of one unit of work. DueDate keeps the wire
// format: a string holding epoch milliseconds, empty when unset.
type Task struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Status       Status        `json:"status"`
	Assignees    []Assignee    `json:"assignees"`
	DueDate      string        `json:"due_date,omitempty"`
	CustomFields []CustomField `json:"custom_fields,omitempty"`
	List         *ListRef      `json:"list,omitempty"`
}

type List struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
