package clickup

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/TWRT/ops-dashboard/internal/models"
)

const DefaultBaseURL = "https://api.clickup.com/api/v2"

// Client talks to the ClickUp API v2, or to anything speaking the same
// surface. When pointed at the proxy gateway, leave the token empty and
// the gateway injects its own.
type Client struct {
	baseUrl    string
	token      string
	httpClient *http.Client
}

func NewClient(baseUrl, token string) *Client {
	if baseUrl == "" {
		baseUrl = DefaultBaseURL
	}
	return &Client{
		baseUrl:    baseUrl,
		token:      token,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// doGet issues one GET and decodes the JSON body into out. Non-200 responses
// are turned into errors carrying the ClickUp error envelope when present.
func (c *Client) doGet(path string, query url.Values, out any) error {
	u := c.baseUrl + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequest("GET", u, nil)
	if err != nil {
		return fmt.Errorf("build request (clickup): %w", err)
	}
	if c.token != "" {
		req.Header.Set("Authorization", c.token)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("get %s (clickup): %w", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response body (clickup): %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var clickupErr ClickUpErrors
		if err := json.Unmarshal(body, &clickupErr); err == nil && clickupErr.Err != "" {
			return fmt.Errorf("ClickUp error: %s", clickupErr.Err)
		}
		return fmt.Errorf("API error status %d", resp.StatusCode)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("parse response (clickup): %w", err)
	}
	return nil
}

func (c *Client) GetWorkspaces() ([]ClickUpTeam, error) {
	var resp GetMultipleWorkspacesResponse
	if err := c.doGet("/team", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Teams, nil
}

func (c *Client) GetSpaces(workspaceId string) ([]ClickUpSpace, error) {
	var resp GetMultipleSpacesResponse
	query := url.Values{"archived": {"false"}}
	if err := c.doGet("/team/"+workspaceId+"/space", query, &resp); err != nil {
		return nil, err
	}
	return resp.Spaces, nil
}

func (c *Client) GetFolders(spaceId string) ([]ClickUpFolder, error) {
	var resp GetMultipleFoldersResponse
	query := url.Values{"archived": {"false"}}
	if err := c.doGet("/space/"+spaceId+"/folder", query, &resp); err != nil {
		return nil, err
	}
	return resp.Folders, nil
}

func (c *Client) GetFolderLists(folderId string) ([]ClickUpList, error) {
	var resp GetMultipleListsResponse
	query := url.Values{"archived": {"false"}}
	if err := c.doGet("/folder/"+folderId+"/list", query, &resp); err != nil {
		return nil, err
	}
	return resp.Lists, nil
}

// GetSpaceLists returns the folderless lists of a space.
func (c *Client) GetSpaceLists(spaceId string) ([]ClickUpList, error) {
	var resp GetMultipleListsResponse
	query := url.Values{"archived": {"false"}}
	if err := c.doGet("/space/"+spaceId+"/list", query, &resp); err != nil {
		return nil, err
	}
	return resp.Lists, nil
}

func (c *Client) GetListTasks(listId string, query url.Values) ([]ClickUpTask, error) {
	var resp GetMultipleTasksResponse
	if err := c.doGet("/list/"+listId+"/task", query, &resp); err != nil {
		return nil, err
	}
	return resp.Tasks, nil
}

func (c *Client) GetTeamTasks(teamId string, query url.Values) ([]ClickUpTask, error) {
	var resp GetMultipleTasksResponse
	if err := c.doGet("/team/"+teamId+"/task", query, &resp); err != nil {
		return nil, err
	}
	return resp.Tasks, nil
}

func toTask(t ClickUpTask) models.Task {
	assignees := make([]models.Assignee, 0, len(t.Assignees))
	for _, a := range t.Assignees {
		assignees = append(assignees, models.Assignee{
			ID:             a.Id,
			Username:       a.Username,
			Initials:       a.Initials,
			Color:          a.Color,
			ProfilePicture: a.ProfilePicture,
		})
	}

	var fields []models.CustomField
	for _, f := range t.CustomFields {
		field := models.CustomField{
			ID:    f.Id,
			Name:  f.Name,
			Type:  f.Type,
			Value: f.Value,
		}
		for _, o := range f.TypeConfig.Options {
			field.Options = append(field.Options, models.FieldOption{
				ID:         o.Id,
				Name:       o.Name,
				OrderIndex: o.OrderIndex,
				Color:      o.Color,
			})
		}
		fields = append(fields, field)
	}

	task := models.Task{
		ID:           t.Id,
		Name:         t.Name,
		Status:       models.Status{Label: t.Status.Status, Color: t.Status.Color},
		Assignees:    assignees,
		CustomFields: fields,
	}
	if t.DueDate != nil {
		task.DueDate = *t.DueDate
	}
	if t.List != nil {
		task.List = &models.ListRef{ID: t.List.Id, Name: t.List.Name}
	}
	return task
}

func toTasks(raw []ClickUpTask) []models.Task {
	tasks := make([]models.Task, len(raw))
	for i, t := range raw {
		tasks[i] = toTask(t)
	}
	return tasks
}

func toMember(m ClickUpTeamMember) models.Member {
	return models.Member{
		ID:             m.User.Id,
		Username:       m.User.Username,
		Email:          m.User.Email,
		Color:          m.User.Color,
		Initials:       m.User.Initials,
		ProfilePicture: m.User.ProfilePicture,
		CustomRole:     m.User.CustomRole,
	}
}
