package service

import (
	"github.com/TWRT/ops-dashboard/internal/client"
	"github.com/TWRT/ops-dashboard/internal/models"
)

// StaticRoster is the hand-kept collaborator list. The live workspace
// directory is canonical; this survives as fallback for when the team
// endpoint yields nothing, and as a test fixture.
var StaticRoster = []models.Member{
	{ID: 1, Username: "Matheus Neri", CustomRole: "Account", Initials: "MN", Color: "#3b82f6"},
	{ID: 2, Username: "Ana Silva", CustomRole: "Design", Initials: "AS", Color: "#ef4444"},
	{ID: 3, Username: "Carlos GT", CustomRole: "Tráfego", Initials: "CG", Color: "#10b981"},
	{ID: 4, Username: "Beatriz Copy", CustomRole: "Conteúdo", Initials: "BC", Color: "#f59e0b"},
	{ID: 5, Username: "Raquel", CustomRole: "Audiovisual", Initials: "RA", Color: "#8b5cf6"},
	{ID: 6, Username: "Alexandre", CustomRole: "Growth", Initials: "AL", Color: "#ec4899"},
	{ID: 7, Username: "Camila", CustomRole: "Gestão", Initials: "CA", Color: "#6366f1"},
	{ID: 8, Username: "Nicollas", CustomRole: "Growth", Initials: "NI", Color: "#14b8a6"},
	{ID: 9, Username: "Isadora", CustomRole: "Instagram", Initials: "IS", Color: "#f97316"},
}

// FallbackDirectory serves the live roster when available and the static one
// otherwise.
type FallbackDirectory struct {
	Live   client.MemberDirectory
	Static []models.Member
}

func NewFallbackDirectory(live client.MemberDirectory) *FallbackDirectory {
	return &FallbackDirectory{Live: live, Static: StaticRoster}
}

func (d *FallbackDirectory) Members() []models.Member {
	if d.Live != nil {
		if members := d.Live.Members(); len(members) > 0 {
			return members
		}
	}
	return d.Static
}
