package client

import "github.com/TWRT/ops-dashboard/internal/models"

// TaskSource is the degrading fetch surface the dashboard consumes. Every
// method resolves failures to the empty collection after logging; none of
// them returns an error to the caller.
type TaskSource interface {
	FetchLists(folderID string) []models.List
	FetchTasks(listID string, includeCustomFields bool) []models.Task
	FetchListCount(listID string) int
	FetchMemberTasks(memberID int) []models.Task
}

// MemberDirectory lists the workspace roster. The live ClickUp-backed
// directory is canonical; a static roster serves as fallback.
type MemberDirectory interface {
	Members() []models.Member
}
