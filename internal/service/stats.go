package service

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/TWRT/ops-dashboard/internal/models"
)

// Pure aggregation over task snapshots. No I/O happens here and nothing
// returns an error: missing fields and unparseable values resolve to the
// documented defaults.

type StatusBucket string

const (
	BucketDone       StatusBucket = "done"
	BucketOverdue    StatusBucket = "overdue"
	BucketInProgress StatusBucket = "in_progress"
	BucketTodo       StatusBucket = "todo"
)

// Status labels are operator-configured and case-inconsistent upstream, so
// every comparison normalizes first. Policy choice, not an upstream
// guarantee.
func normalizeStatus(label string) string {
	return strings.ToLower(strings.TrimSpace(label))
}

func isDone(label string) bool {
	s := normalizeStatus(label)
	return s == "complete" || s == "closed"
}

func isInProgress(label string) bool {
	s := normalizeStatus(label)
	return s == "in progress" || s == "doing"
}

// Overdue reports whether the due-date string holds an epoch-ms instant
// before now. Absent or unparseable dates are never overdue.
func Overdue(dueDate string, now time.Time) bool {
	if dueDate == "" {
		return false
	}
	ms, err := strconv.ParseInt(dueDate, 10, 64)
	if err != nil {
		return false
	}
	return ms < now.UnixMilli()
}

// Bucket classifies one task: done wins over overdue, overdue over the
// status-derived buckets.
func Bucket(task models.Task, now time.Time) StatusBucket {
	switch {
	case isDone(task.Status.Label):
		return BucketDone
	case Overdue(task.DueDate, now):
		return BucketOverdue
	case isInProgress(task.Status.Label):
		return BucketInProgress
	default:
		return BucketTodo
	}
}

type StatusSummary struct {
	Total      int `json:"total"`
	Done       int `json:"done"`
	Overdue    int `json:"overdue"`
	InProgress int `json:"in_progress"`
	Todo       int `json:"todo"`
	Active     int `json:"active"`
}

func Summarize(tasks []models.Task, now time.Time) StatusSummary {
	s := StatusSummary{Total: len(tasks)}
	for _, t := range tasks {
		switch Bucket(t, now) {
		case BucketDone:
			s.Done++
		case BucketOverdue:
			s.Overdue++
		case BucketInProgress:
			s.InProgress++
		default:
			s.Todo++
		}
	}
	s.Active = s.Total - s.Done
	return s
}

// ActiveCount counts the tasks not yet complete/closed.
func ActiveCount(tasks []models.Task) int {
	count := 0
	for _, t := range tasks {
		if !isDone(t.Status.Label) {
			count++
		}
	}
	return count
}

// GroupByAssignee partitions tasks by assignee username. A task with N
// assignees lands in N groups; an unassigned task in none.
func GroupByAssignee(tasks []models.Task) map[string][]models.Task {
	groups := make(map[string][]models.Task)
	for _, t := range tasks {
		for _, a := range t.Assignees {
			groups[a.Username] = append(groups[a.Username], t)
		}
	}
	return groups
}

// TasksForMember finds a member's group by first-name substring, the way the
// roster names drift from ClickUp usernames.
func TasksForMember(groups map[string][]models.Task, memberName string) []models.Task {
	parts := strings.Fields(memberName)
	if len(parts) == 0 {
		return nil
	}
	first := strings.ToLower(parts[0])
	for username, tasks := range groups {
		if strings.Contains(strings.ToLower(username), first) {
			return tasks
		}
	}
	return nil
}

// FindCustomField returns the first field whose name contains any of the
// candidate substrings, case-insensitive. Field names are operator-configured
// strings carrying the domain meaning, so matching is by name, never by id.
func FindCustomField(fields []models.CustomField, candidates ...string) *models.CustomField {
	for i, f := range fields {
		name := strings.ToLower(f.Name)
		for _, c := range candidates {
			if strings.Contains(name, strings.ToLower(c)) {
				return &fields[i]
			}
		}
	}
	return nil
}

// resolveOption maps a dropdown value onto its option catalog: numeric
// values match by orderindex, string values by option id.
func resolveOption(f models.CustomField) (string, bool) {
	for _, opt := range f.Options {
		switch v := f.Value.(type) {
		case float64:
			if int(v) == opt.OrderIndex {
				return opt.Name, true
			}
		case int:
			if v == opt.OrderIndex {
				return opt.Name, true
			}
		case string:
			if v == opt.ID {
				return opt.Name, true
			}
		}
	}
	return "", false
}

// usernames joins the display names of a multi-user field value.
func usernames(f *models.CustomField) string {
	if f == nil {
		return "N/A"
	}
	users, ok := f.Value.([]any)
	if !ok || len(users) == 0 {
		return "N/A"
	}
	names := make([]string, 0, len(users))
	for _, u := range users {
		if m, ok := u.(map[string]any); ok {
			if name, ok := m["username"].(string); ok && name != "" {
				names = append(names, name)
			}
		}
	}
	if len(names) == 0 {
		return "N/A"
	}
	return strings.Join(names, ", ")
}

// ClientMetadata is the per-client service matrix read off a macro task.
type ClientMetadata struct {
	Onboarding string `json:"onboarding"`
	Account    string `json:"account"`
	GT         string `json:"gt"`
	GC         string `json:"gc"`
}

// ExtractClientMetadata reads the contracted-services fields of a macro
// task. A client without an onboarding field is ongoing; an unresolvable
// dropdown reads N/A.
func ExtractClientMetadata(task models.Task) ClientMetadata {
	onboarding := FindCustomField(task.CustomFields, "onboarding")
	account := FindCustomField(task.CustomFields, "account")
	gt := FindCustomField(task.CustomFields, "tráfego", "gt")
	gc := FindCustomField(task.CustomFields, "conteúdo", "gc")

	return ClientMetadata{
		Onboarding: onboardingStatus(onboarding),
		Account:    usernames(account),
		GT:         usernames(gt),
		GC:         usernames(gc),
	}
}

func onboardingStatus(f *models.CustomField) string {
	if f == nil {
		return "Ongoing"
	}
	if f.Type == "drop_down" {
		if name, ok := resolveOption(*f); ok {
			return name
		}
		return "N/A"
	}
	if f.Value != nil {
		if s := fmt.Sprintf("%v", f.Value); s != "" {
			return s
		}
	}
	return "Ongoing"
}

// ClientName extracts the value of the field named exactly "Cliente".
// Enumerated fields resolve through their option catalog; plain fields
// stringify. Returns false when the field or its value is absent, or when a
// dropdown value matches no option.
func ClientName(task models.Task) (string, bool) {
	for _, f := range task.CustomFields {
		if f.Name != "Cliente" {
			continue
		}
		if f.Value == nil {
			return "", false
		}
		if len(f.Options) > 0 {
			return resolveOption(f)
		}
		return fmt.Sprintf("%v", f.Value), true
	}
	return "", false
}
