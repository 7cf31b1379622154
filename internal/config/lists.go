// Package config holds the fixed ClickUp ids the dashboard points at.
// The values come from clickup_hierarchy.json, captured with
// `opsdash snapshot`, and change only when the workspace is reorganized.
package config

// Operational list ids, per squad.
const (
	ListAccOperacaoMacro    = "901305001121"
	ListAccReunioesPesquisa = "901305001187"
	ListAccFiltroDemandas   = "901305001204"
	ListGtGestaoTrafego     = "901305002310"
	ListGcGestaoConteudo    = "901305002377"
	ListTickets             = "901305003415"
	ListDsnAtiveConecta     = "901305003488"
	ListAcaoMeteorica       = "901305004501"
)

// FolderClientes groups the per-client operational lists.
const FolderClientes = "90131200456"

// OperationalLists feed the per-member aggregation on the team view.
var OperationalLists = []string{
	ListAccFiltroDemandas,
	ListGtGestaoTrafego,
	ListGcGestaoConteudo,
	ListTickets,
	ListDsnAtiveConecta,
	ListAcaoMeteorica,
}

// ClientListMap maps a client name (as written on the macro task) to the
// client's operational list. Names here must match the macro list; fuzzy
// resolution covers the drift (see service.ResolveClientListID).
var ClientListMap = map[string]string{
	"Botopremium": "901305010111",
	"LocMoto":     "901305010146",
	"Atendly":     "901305010172",
}
