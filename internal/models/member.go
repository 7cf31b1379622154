package models

// Member is a workspace participant.
type Member struct {
	ID             int    `json:"id"`
	Username       string `json:"username"`
	Email          string `json:"email,omitempty"`
	Color          string `json:"color,omitempty"`
	Initials       string `json:"initials,omitempty"`
	ProfilePicture string `json:"profile_picture,omitempty"`
	CustomRole     string `json:"custom_role,omitempty"`
}
