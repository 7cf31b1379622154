package service

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TWRT/ops-dashboard/internal/config"
	"github.com/TWRT/ops-dashboard/internal/models"
)

// mockSource is a test double for client.TaskSource backed by fixed maps.
type mockSource struct {
	mu          sync.Mutex
	tasksByList map[string][]models.Task
	listsByDir  map[string][]models.List
	memberTasks map[int][]models.Task
	fetchCalls  []string
}

func newMockSource() *mockSource {
	return &mockSource{
		tasksByList: make(map[string][]models.Task),
		listsByDir:  make(map[string][]models.List),
		memberTasks: make(map[int][]models.Task),
	}
}

func (m *mockSource) FetchLists(folderID string) []models.List {
	m.record("lists:" + folderID)
	return m.listsByDir[folderID]
}

func (m *mockSource) FetchTasks(listID string, includeCustomFields bool) []models.Task {
	m.record("tasks:" + listID)
	if listID == "" {
		return []models.Task{}
	}
	return m.tasksByList[listID]
}

func (m *mockSource) FetchListCount(listID string) int {
	return len(m.FetchTasks(listID, false))
}

func (m *mockSource) FetchMemberTasks(memberID int) []models.Task {
	return m.memberTasks[memberID]
}

func (m *mockSource) record(call string) {
	m.mu.Lock()
	m.fetchCalls = append(m.fetchCalls, call)
	m.mu.Unlock()
}

type mockDirectory struct {
	members []models.Member
}

func (m *mockDirectory) Members() []models.Member { return m.members }

func newTestService(source *mockSource, members ...models.Member) *DashboardService {
	svc := NewDashboardService(source, &mockDirectory{members: members})
	svc.now = func() time.Time { return time.UnixMilli(1_700_000_000_000) }
	return svc
}

func TestExecutiveOverview(t *testing.T) {
	source := newMockSource()
	source.tasksByList[config.ListAccOperacaoMacro] = []models.Task{
		{Name: "Botopremium"}, {Name: "LocMoto"},
	}

	overview := newTestService(source).ExecutiveOverview()
	assert.Equal(t, 2, overview.ActiveClients)
}

func TestAccountOverview_CountsActiveOnly(t *testing.T) {
	source := newMockSource()
	source.tasksByList[config.ListAccReunioesPesquisa] = []models.Task{
		{Name: "kickoff", Status: models.Status{Label: "a fazer"}},
		{Name: "review", Status: models.Status{Label: "complete"}},
	}
	source.tasksByList[config.ListAccFiltroDemandas] = []models.Task{
		{Name: "criativo", Status: models.Status{Label: "closed"}},
	}

	account := newTestService(source).AccountOverview()
	assert.Equal(t, 1, account.PendingMeetings)
	assert.Equal(t, 0, account.DemandsFilter)
	assert.Len(t, account.Meetings, 2)
}

func TestTeamPerformance_GroupsAcrossOperationalLists(t *testing.T) {
	source := newMockSource()
	source.tasksByList[config.ListGtGestaoTrafego] = []models.Task{
		{Name: "campanha", Status: models.Status{Label: "doing"},
			Assignees: []models.Assignee{{ID: 3, Username: "carlos.gt"}}},
	}
	source.tasksByList[config.ListGcGestaoConteudo] = []models.Task{
		{Name: "roteiro", Status: models.Status{Label: "complete"},
			Assignees: []models.Assignee{{ID: 3, Username: "carlos.gt"}}},
	}

	team := newTestService(source,
		models.Member{ID: 3, Username: "Carlos GT"},
		models.Member{ID: 5, Username: "Raquel"},
	).TeamPerformance()

	require.Len(t, team, 2)
	assert.Equal(t, 2, team[0].Summary.Total)
	assert.Equal(t, 1, team[0].Summary.Active)
	assert.Equal(t, 0, team[1].Summary.Total)
}

func TestMemberWorkload_KeyedByMemberID(t *testing.T) {
	source := newMockSource()
	source.memberTasks[1] = []models.Task{{Name: "a"}, {Name: "b"}}
	source.memberTasks[2] = []models.Task{{Name: "c"}}

	workload := newTestService(source,
		models.Member{ID: 1, Username: "ana"},
		models.Member{ID: 2, Username: "carlos"},
		models.Member{ID: 3, Username: "raquel"},
	).MemberWorkload()

	require.Len(t, workload, 3)
	assert.Len(t, workload[1], 2)
	assert.Len(t, workload[2], 1)
	assert.Empty(t, workload[3])
}

func TestClients_ReadsMacroList(t *testing.T) {
	source := newMockSource()
	source.tasksByList[config.ListAccOperacaoMacro] = []models.Task{
		{ID: "m1", Name: "Botopremium", CustomFields: []models.CustomField{
			{Name: "Account", Type: "users", Value: userValue("matheus.neri")},
		}},
	}

	clients := newTestService(source).Clients()
	require.Len(t, clients, 1)
	assert.Equal(t, "Botopremium", clients[0].Name)
	assert.Equal(t, "matheus.neri", clients[0].Metadata.Account)
}

func TestResolveClientListID_ExactMatchFirst(t *testing.T) {
	svc := newTestService(newMockSource())
	assert.Equal(t, config.ClientListMap["Botopremium"], svc.ResolveClientListID("Botopremium"))
}

func TestResolveClientListID_FuzzyFallback(t *testing.T) {
	svc := newTestService(newMockSource())
	assert.Equal(t, config.ClientListMap["LocMoto"], svc.ResolveClientListID("LocMoto Motos"))
	assert.Equal(t, config.ClientListMap["Atendly"], svc.ResolveClientListID("atendly"))
}

func TestResolveClientListID_LiveFallback(t *testing.T) {
	source := newMockSource()
	source.listsByDir[config.FolderClientes] = []models.List{
		{ID: "999", Name: "CLT - Nova Marca"},
	}

	svc := newTestService(source)
	assert.Equal(t, "999", svc.ResolveClientListID("Nova Marca"))
}

func TestResolveClientListID_Miss(t *testing.T) {
	svc := newTestService(newMockSource())
	assert.Equal(t, "", svc.ResolveClientListID("Desconhecido"))
	assert.Equal(t, "", svc.ResolveClientListID(""))
}

func TestClientDrilldown(t *testing.T) {
	source := newMockSource()
	source.tasksByList[config.ListAccOperacaoMacro] = []models.Task{
		{Name: "Botopremium", CustomFields: []models.CustomField{
			{Name: "Gestor de Tráfego", Type: "users", Value: userValue("carlos.gt")},
		}},
	}
	source.tasksByList[config.ClientListMap["Botopremium"]] = []models.Task{
		{Name: "campanha", Status: models.Status{Label: "in progress"}},
		{Name: "relatório", Status: models.Status{Label: "complete"}},
	}

	view := newTestService(source).ClientDrilldown("Botopremium")

	require.NotNil(t, view.Metadata)
	assert.Equal(t, "carlos.gt", view.Metadata.GT)
	assert.Len(t, view.Tasks, 2)
	assert.Equal(t, 1, view.Summary.Active)
}

func TestClientDrilldown_UnknownClientRendersEmpty(t *testing.T) {
	view := newTestService(newMockSource()).ClientDrilldown("Desconhecido")

	assert.Nil(t, view.Metadata)
	assert.Empty(t, view.ListID)
	assert.Empty(t, view.Tasks)
	assert.Equal(t, 0, view.Summary.Total)
}

func TestFallbackDirectory(t *testing.T) {
	live := &mockDirectory{members: []models.Member{{ID: 42, Username: "live"}}}
	d := NewFallbackDirectory(live)
	require.Len(t, d.Members(), 1)
	assert.Equal(t, 42, d.Members()[0].ID)

	empty := NewFallbackDirectory(&mockDirectory{})
	assert.Equal(t, StaticRoster, empty.Members())
}
