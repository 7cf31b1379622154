package api

import (
	"net/http"
	"os"

	"github.com/TWRT/ops-dashboard/internal/api/handlers"
	"github.com/TWRT/ops-dashboard/internal/client/clickup"
	"github.com/TWRT/ops-dashboard/internal/service"
)

func SetupRouter(clickupToken string) *http.ServeMux {
	mux := http.NewServeMux()

	clickUpClient := clickup.NewClient(clickup.DefaultBaseURL, clickupToken)

	directory := service.NewFallbackDirectory(clickUpClient)
	dashboardService := service.NewDashboardService(clickUpClient, directory)

	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	// The proxy re-reads the token per request; a token rotated in the
	// environment applies without restarting.
	proxyHandler := handlers.NewProxyHandler(clickup.DefaultBaseURL, func() string {
		return os.Getenv("CLICKUP_API_TOKEN")
	})

	mux.HandleFunc("GET /api/health", dashboardHandler.GetHealth)
	mux.HandleFunc("GET /api/dashboard/executive", dashboardHandler.GetExecutiveOverview)
	mux.HandleFunc("GET /api/dashboard/account", dashboardHandler.GetAccountOverview)
	mux.HandleFunc("GET /api/dashboard/traffic", dashboardHandler.GetTrafficPipeline)
	mux.HandleFunc("GET /api/dashboard/team", dashboardHandler.GetTeamPerformance)
	mux.HandleFunc("GET /api/dashboard/workload", dashboardHandler.GetMemberWorkload)
	mux.HandleFunc("GET /api/dashboard/clients", dashboardHandler.GetClients)
	mux.HandleFunc("GET /api/dashboard/clients/{name}", dashboardHandler.GetClient)

	mux.Handle("/api/clickup/{path...}", proxyHandler)

	return mux
}
