package service

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/TWRT/ops-dashboard/internal/client"
	"github.com/TWRT/ops-dashboard/internal/config"
	"github.com/TWRT/ops-dashboard/internal/models"
)

// DashboardService derives the role-specific views from fresh ClickUp
// snapshots. Every call re-fetches; nothing is cached between calls.
type DashboardService struct {
	source    client.TaskSource
	directory client.MemberDirectory
	now       func() time.Time
}

func NewDashboardService(source client.TaskSource, directory client.MemberDirectory) *DashboardService {
	return &DashboardService{
		source:    source,
		directory: directory,
		now:       time.Now,
	}
}

type ExecutiveOverview struct {
	ActiveClients int `json:"active_clients"`
}

func (s *DashboardService) ExecutiveOverview() ExecutiveOverview {
	return ExecutiveOverview{
		ActiveClients: s.source.FetchListCount(config.ListAccOperacaoMacro),
	}
}

type AccountOverview struct {
	PendingMeetings int           `json:"pending_meetings"`
	DemandsFilter   int           `json:"demands_filter"`
	Meetings        []models.Task `json:"meetings"`
}

func (s *DashboardService) AccountOverview() AccountOverview {
	meetings := s.source.FetchTasks(config.ListAccReunioesPesquisa, false)
	demands := s.source.FetchTasks(config.ListAccFiltroDemandas, false)
	return AccountOverview{
		PendingMeetings: ActiveCount(meetings),
		DemandsFilter:   ActiveCount(demands),
		Meetings:        meetings,
	}
}

func (s *DashboardService) TrafficPipeline() []models.Task {
	return s.source.FetchTasks(config.ListGtGestaoTrafego, false)
}

// AllOpenTasks aggregates the operational lists the team view counts
// against. Lists are fetched sequentially; a failed list contributes nothing.
func (s *DashboardService) AllOpenTasks() []models.Task {
	var all []models.Task
	for _, id := range config.OperationalLists {
		all = append(all, s.source.FetchTasks(id, false)...)
	}
	return all
}

type MemberPerformance struct {
	Member  models.Member `json:"member"`
	Summary StatusSummary `json:"summary"`
	Tasks   []models.Task `json:"tasks"`
}

// TeamPerformance groups the operational workload per roster member, in
// roster order.
func (s *DashboardService) TeamPerformance() []MemberPerformance {
	groups := GroupByAssignee(s.AllOpenTasks())
	members := s.directory.Members()

	out := make([]MemberPerformance, 0, len(members))
	for _, m := range members {
		tasks := TasksForMember(groups, m.Username)
		out = append(out, MemberPerformance{
			Member:  m,
			Summary: Summarize(tasks, s.now()),
			Tasks:   tasks,
		})
	}
	return out
}

// MemberWorkload fetches every member's assigned tasks concurrently and
// joins on all of them; results are keyed by member id so completion order
// does not matter.
func (s *DashboardService) MemberWorkload() map[int][]models.Task {
	members := s.directory.Members()

	var wg sync.WaitGroup
	var mu sync.Mutex
	out := make(map[int][]models.Task, len(members))

	for _, m := range members {
		wg.Add(1)
		go func(m models.Member) {
			defer wg.Done()
			tasks := s.source.FetchMemberTasks(m.ID)
			mu.Lock()
			out[m.ID] = tasks
			mu.Unlock()
		}(m)
	}
	wg.Wait()
	return out
}

type ClientSummary struct {
	TaskID   string         `json:"task_id"`
	Name     string         `json:"name"`
	Metadata ClientMetadata `json:"metadata"`
}

// Clients lists the macro operations list, one task per client.
func (s *DashboardService) Clients() []ClientSummary {
	macro := s.source.FetchTasks(config.ListAccOperacaoMacro, true)
	out := make([]ClientSummary, 0, len(macro))
	for _, t := range macro {
		out = append(out, ClientSummary{
			TaskID:   t.ID,
			Name:     t.Name,
			Metadata: ExtractClientMetadata(t),
		})
	}
	return out
}

type ClientDrilldown struct {
	Name     string          `json:"name"`
	Metadata *ClientMetadata `json:"metadata,omitempty"`
	ListID   string          `json:"list_id,omitempty"`
	Tasks    []models.Task   `json:"tasks"`
	Summary  StatusSummary   `json:"summary"`
}

// ClientDrilldown resolves one client's macro metadata and operational
// tasks. An unknown client renders empty, never errors.
func (s *DashboardService) ClientDrilldown(name string) ClientDrilldown {
	view := ClientDrilldown{Name: name}

	macro := s.source.FetchTasks(config.ListAccOperacaoMacro, true)
	for _, t := range macro {
		if t.Name == name {
			meta := ExtractClientMetadata(t)
			view.Metadata = &meta
			break
		}
	}

	view.ListID = s.ResolveClientListID(name)
	view.Tasks = s.source.FetchTasks(view.ListID, false)
	view.Summary = Summarize(view.Tasks, s.now())
	return view
}

// ResolveClientListID maps a client name to its operational list id with a
// deterministic three-step fallback: exact map lookup, fuzzy bidirectional
// substring over the sorted map keys, then a live lookup of the clients
// folder matched by stripped-prefix name. Empty when all three miss.
func (s *DashboardService) ResolveClientListID(name string) string {
	if name == "" {
		return ""
	}
	if id, ok := config.ClientListMap[name]; ok {
		return id
	}

	lower := strings.ToLower(name)
	keys := make([]string, 0, len(config.ClientListMap))
	for k := range config.ClientListMap {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		kl := strings.ToLower(k)
		if strings.Contains(lower, kl) || strings.Contains(kl, lower) {
			return config.ClientListMap[k]
		}
	}

	for _, l := range s.source.FetchLists(config.FolderClientes) {
		ln := strings.ToLower(stripListPrefix(l.Name))
		if ln == "" {
			continue
		}
		if strings.Contains(ln, lower) || strings.Contains(lower, ln) {
			return l.ID
		}
	}
	return ""
}

// stripListPrefix drops the squad tag lists carry ("CLT - Botopremium").
func stripListPrefix(name string) string {
	if idx := strings.Index(name, "-"); idx >= 0 {
		name = name[idx+1:]
	}
	return strings.TrimSpace(name)
}
