package clickup

type ClickUpErrors struct {
	Err  string `json:"err"`
	Code string `json:"ECODE"`
}

type GetMultipleWorkspacesResponse struct {
	Teams []ClickUpTeam `json:"teams"`
}

type GetMultipleSpacesResponse struct {
	Spaces []ClickUpSpace `json:"spaces"`
}

type GetMultipleFoldersResponse struct {
	Folders []ClickUpFolder `json:"folders"`
}

type GetMultipleListsResponse struct {
	Lists []ClickUpList `json:"lists"`
}

type GetMultipleTasksResponse struct {
	Tasks []ClickUpTask `json:"tasks"`
}

type ClickUpSpace struct {
	Id   string `json:"id"`
	Name string `json:"name"`
}

type ClickUpFolder struct {
	Id   string `json:"id"`
	Name string `json:"name"`
}

type ClickUpList struct {
	Id   string `json:"id"`
	Name string `json:"name"`
}

type ClickUpTeamMember struct {
	User ClickUpTeamMemberUser `json:"user"`
}

type ClickUpTeamMemberUser struct {
	Id             int    `json:"id"`
	Username       string `json:"username"`
	Email          string `json:"email"`
	Color          string `json:"color"`
	ProfilePicture string `json:"profilePicture"`
	Initials       string `json:"initials"`
	Role           int    `json:"role"`
	CustomRole     string `json:"custom_role"`
	LastActive     string `json:"last_active"`
	DateJoined     string `json:"date_joined"`
	DateInvited    string `json:"date_invited"`
}

type ClickUpTeam struct {
	Id      string              `json:"id"`
	Name    string              `json:"name"`
	Color   string              `json:"color"`
	Avatar  string              `json:"avatar"`
	Members []ClickUpTeamMember `json:"members"`
}

type ClickUpStatus struct {
	Status     string `json:"status"`
	Color      string `json:"color"`
	OrderIndex int    `json:"orderindex"`
	Type       string `json:"type"`
}

type ClickUpAssignee struct {
	Id             int    `json:"id"`
	Username       string `json:"username"`
	Color          string `json:"color"`
	Initials       string `json:"initials"`
	Email          string `json:"email"`
	ProfilePicture string `json:"profilePicture"`
}

type ClickUpFieldOption struct {
	Id         string `json:"id"`
	Name       string `json:"name"`
	Color      string `json:"color"`
	OrderIndex int    `json:"orderindex"`
}

type ClickUpFieldTypeConfig struct {
	Options []ClickUpFieldOption `json:"options"`
}

type ClickUpCustomField struct {
	Id         string                 `json:"id"`
	Name       string                 `json:"name"`
	Type       string                 `json:"type"`
	Value      any                    `json:"value"`
	TypeConfig ClickUpFieldTypeConfig `json:"type_config"`
}

type ClickUpTask struct {
	Id           string               `json:"id"`
	Name         string               `json:"name"`
	Status       ClickUpStatus        `json:"status"`
	OrderIndex   string               `json:"orderindex"`
	DateCreated  string               `json:"date_created"`
	DateUpdated  string               `json:"date_updated"`
	DateClosed   *string              `json:"date_closed"`
	Assignees    []ClickUpAssignee    `json:"assignees"`
	DueDate      *string              `json:"due_date"`
	CustomFields []ClickUpCustomField `json:"custom_fields"`
	List         *ClickUpList         `json:"list"`
}
