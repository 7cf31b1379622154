package clickup

import (
	"log"
	"net/url"
	"strconv"

	"github.com/TWRT/ops-dashboard/internal/models"
)

// The Fetch* methods are the surface the dashboard renders from. They never
// return an error: any failure degrades to the empty collection with a logged
// diagnostic, so a partial outage still produces a page instead of a crash.
// Missing ids are not failures either, they short-circuit to empty without
// touching the network.

func (c *Client) FetchLists(folderId string) []models.List {
	if folderId == "" {
		log.Println("clickup: fetch lists ignorado, folder id vazio")
		return []models.List{}
	}

	raw, err := c.GetFolderLists(folderId)
	if err != nil {
		log.Printf("clickup: erro ao buscar listas do folder %s: %v", folderId, err)
		return []models.List{}
	}

	lists := make([]models.List, len(raw))
	for i, l := range raw {
		lists[i] = models.List{ID: l.Id, Name: l.Name}
	}
	return lists
}

// FetchTasks pages through a list until an empty page comes back,
// accumulating tasks in arrival order. A failed page stops the loop and
// whatever was collected so far is returned.
func (c *Client) FetchTasks(listId string, includeCustomFields bool) []models.Task {
	if listId == "" {
		log.Println("clickup: fetch tasks ignorado, list id vazio")
		return []models.Task{}
	}

	params := url.Values{"archived": {"false"}}
	if includeCustomFields {
		params.Set("include_custom_fields", "true")
	}
	return c.fetchPaginatedTasks(listId, params)
}

func (c *Client) fetchPaginatedTasks(listId string, params url.Values) []models.Task {
	var all []models.Task

	for page := 0; ; page++ {
		query := url.Values{}
		for key, values := range params {
			query[key] = values
		}
		query.Set("page", strconv.Itoa(page))
		query.Set("subtasks", "true")
		query.Set("include_closed", "true")

		tasks, err := c.GetListTasks(listId, query)
		if err != nil {
			// Stop on error to return what we have.
			log.Printf("clickup: erro na página %d da lista %s: %v", page, listId, err)
			break
		}
		if len(tasks) == 0 {
			break
		}
		all = append(all, toTasks(tasks)...)
	}

	if all == nil {
		return []models.Task{}
	}
	return all
}

func (c *Client) FetchListCount(listId string) int {
	return len(c.FetchTasks(listId, false))
}

// FetchWorkspaceMembers returns the member roster of the first team the
// token can see; the dashboard assumes a single-workspace token.
func (c *Client) FetchWorkspaceMembers() []models.Member {
	teams, err := c.GetWorkspaces()
	if err != nil {
		log.Printf("clickup: erro ao buscar workspaces: %v", err)
		return []models.Member{}
	}
	if len(teams) == 0 {
		return []models.Member{}
	}

	members := make([]models.Member, 0, len(teams[0].Members))
	for _, m := range teams[0].Members {
		members = append(members, toMember(m))
	}
	return members
}

// Members implements the member directory over the live workspace.
func (c *Client) Members() []models.Member {
	return c.FetchWorkspaceMembers()
}

func (c *Client) FetchMemberTasks(memberId int) []models.Task {
	teams, err := c.GetWorkspaces()
	if err != nil {
		log.Printf("clickup: erro ao resolver team para member %d: %v", memberId, err)
		return []models.Task{}
	}
	if len(teams) == 0 {
		log.Println("clickup: nenhum workspace disponível")
		return []models.Task{}
	}

	query := url.Values{
		"assignees[]":    {strconv.Itoa(memberId)},
		"include_closed": {"true"},
		"subtasks":       {"true"},
	}
	tasks, err := c.GetTeamTasks(teams[0].Id, query)
	if err != nil {
		log.Printf("clickup: erro ao buscar tasks do member %d: %v", memberId, err)
		return []models.Task{}
	}
	return toTasks(tasks)
}
