package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/TWRT/ops-dashboard/internal/client/clickup"
	"github.com/TWRT/ops-dashboard/internal/service"
)

var rootCmd = &cobra.Command{
	Use:   "opsdash",
	Short: "Terminal views over the ClickUp operations dashboard",
	Long: `opsdash renders the agency's operational views in the terminal:
executive overview, account queues, traffic pipeline, team performance and
per-client drill-down. Data comes straight from ClickUp on every run; nothing
is cached. 'opsdash snapshot' captures the workspace hierarchy into
clickup_hierarchy.json for configuration reference.`,
}

func main() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("base-url", clickup.DefaultBaseURL, "ClickUp API base URL (point at a proxy if needed)")
	_ = viper.BindPFlag("base-url", rootCmd.PersistentFlags().Lookup("base-url"))

	rootCmd.AddCommand(overviewCmd)
	rootCmd.AddCommand(accountCmd)
	rootCmd.AddCommand(trafficCmd)
	rootCmd.AddCommand(teamCmd)
	rootCmd.AddCommand(clientsCmd)
	rootCmd.AddCommand(clientCmd)
	rootCmd.AddCommand(snapshotCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println("error:", err)
		os.Exit(1)
	}
}

func initConfig() {
	_ = godotenv.Load()
	viper.SetEnvPrefix("OPSDASH")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	_ = viper.BindEnv("token", "CLICKUP_API_TOKEN")
}

func newService() *service.DashboardService {
	c := clickup.NewClient(viper.GetString("base-url"), viper.GetString("token"))
	directory := service.NewFallbackDirectory(c)
	return service.NewDashboardService(c, directory)
}

func formatDueDate(ms string) string {
	if ms == "" {
		return "Sem data"
	}
	v, err := strconv.ParseInt(ms, 10, 64)
	if err != nil {
		return ms
	}
	return time.UnixMilli(v).Format("02/01/2006")
}

func newTable(header table.Row) table.Writer {
	tw := table.NewWriter()
	tw.SetOutputMirror(os.Stdout)
	tw.AppendHeader(header)
	return tw
}

var overviewCmd = &cobra.Command{
	Use:   "overview",
	Short: "Executive overview",
	Run: func(cmd *cobra.Command, args []string) {
		svc := newService()
		overview := svc.ExecutiveOverview()
		tw := newTable(table.Row{"KPI", "Value"})
		tw.AppendRow(table.Row{"Active clients", overview.ActiveClients})
		tw.Render()
	},
}

var accountCmd = &cobra.Command{
	Use:   "account",
	Short: "Account queues and meeting agenda",
	Run: func(cmd *cobra.Command, args []string) {
		svc := newService()
		account := svc.AccountOverview()

		tw := newTable(table.Row{"Queue", "Pending"})
		tw.AppendRow(table.Row{"Reuniões Pendentes", account.PendingMeetings})
		tw.AppendRow(table.Row{"Filtro de Demandas", account.DemandsFilter})
		tw.Render()

		if len(account.Meetings) > 0 {
			fmt.Println()
			agenda := newTable(table.Row{"Meeting", "Due", "Status"})
			for _, m := range account.Meetings {
				agenda.AppendRow(table.Row{m.Name, formatDueDate(m.DueDate), m.Status.Label})
			}
			agenda.Render()
		}
	},
}

var trafficCmd = &cobra.Command{
	Use:   "traffic",
	Short: "Traffic pipeline",
	Run: func(cmd *cobra.Command, args []string) {
		svc := newService()
		tw := newTable(table.Row{"Task", "Status", "Due", "Assignee"})
		for _, t := range svc.TrafficPipeline() {
			assignee := ""
			if len(t.Assignees) > 0 {
				assignee = t.Assignees[0].Username
			}
			tw.AppendRow(table.Row{t.Name, strings.ToUpper(t.Status.Label), formatDueDate(t.DueDate), assignee})
		}
		tw.Render()
	},
}

var teamCmd = &cobra.Command{
	Use:   "team",
	Short: "Per-member workload over the operational lists",
	Run: func(cmd *cobra.Command, args []string) {
		svc := newService()
		tw := newTable(table.Row{"Member", "Role", "Active", "Overdue", "In Progress", "Done"})
		for _, p := range svc.TeamPerformance() {
			tw.AppendRow(table.Row{
				p.Member.Username, p.Member.CustomRole,
				p.Summary.Active, p.Summary.Overdue, p.Summary.InProgress, p.Summary.Done,
			})
		}
		tw.Render()
	},
}

var clientsCmd = &cobra.Command{
	Use:   "clients",
	Short: "Client roster from the macro operations list",
	Run: func(cmd *cobra.Command, args []string) {
		svc := newService()
		tw := newTable(table.Row{"Client", "Onboarding", "Account", "GT", "GC"})
		for _, c := range svc.Clients() {
			tw.AppendRow(table.Row{c.Name, c.Metadata.Onboarding, c.Metadata.Account, c.Metadata.GT, c.Metadata.GC})
		}
		tw.Render()
	},
}

var clientCmd = &cobra.Command{
	Use:   "client <name>",
	Short: "Drill into one client's operational tasks",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		svc := newService()
		view := svc.ClientDrilldown(args[0])

		if view.Metadata != nil {
			fmt.Printf("Status: %s | Account: %s | GT: %s | GC: %s\n\n",
				view.Metadata.Onboarding, view.Metadata.Account, view.Metadata.GT, view.Metadata.GC)
		}

		tw := newTable(table.Row{"Task", "Status", "Due"})
		for _, t := range view.Tasks {
			tw.AppendRow(table.Row{t.Name, strings.ToUpper(t.Status.Label), formatDueDate(t.DueDate)})
		}
		tw.Render()
		fmt.Printf("\nTotal %d | Ativas %d | Atrasadas %d\n",
			view.Summary.Total, view.Summary.Active, view.Summary.Overdue)
	},
}
