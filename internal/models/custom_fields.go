package models

// CustomField carries one workspace-configured attribute of a task. Value is
// whatever the API returned (number, string, user list); callers interpret it
// against Type and Options.
type CustomField struct {
	ID      string        `json:"id"`
	Name    string        `json:"name"`
	Type    string        `json:"type"`
	Value   any           `json:"value,omitempty"`
	Options []FieldOption `json:"options,omitempty"`
}

// FieldOption is one entry of an enumerated field's option catalog.
type FieldOption struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	OrderIndex int    `json:"orderindex"`
	Color      string `json:"color,omitempty"`
}
