package handlers

import (
	"net/http"

	"github.com/TWRT/ops-dashboard/internal/service"
)

// DashboardHandler exposes the derived views as JSON. The layers below never
// error outward, so every endpoint answers 200 with whatever could be
// assembled. A degraded upstream shows as empty collections and zero counts.
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

func (h *DashboardHandler) GetExecutiveOverview(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"overview": h.dashboardService.ExecutiveOverview(),
	})
}

func (h *DashboardHandler) GetAccountOverview(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"account": h.dashboardService.AccountOverview(),
	})
}

func (h *DashboardHandler) GetTrafficPipeline(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"pipeline": h.dashboardService.TrafficPipeline(),
	})
}

func (h *DashboardHandler) GetTeamPerformance(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"team": h.dashboardService.TeamPerformance(),
	})
}

func (h *DashboardHandler) GetMemberWorkload(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"workload": h.dashboardService.MemberWorkload(),
	})
}

func (h *DashboardHandler) GetClients(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"clients": h.dashboardService.Clients(),
	})
}

func (h *DashboardHandler) GetClient(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"client": h.dashboardService.ClientDrilldown(name),
	})
}

func (h *DashboardHandler) GetHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
