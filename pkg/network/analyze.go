package network

import (
	"fmt"
	"sort"
	"strings"
)

// pscFanOutThreshold is the number of controlled companies above which
// a single PSC is flagged as unusual.
const pscFanOutThreshold = 3

// CentralNode is a node ranked by total degree.
type CentralNode struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Connections int    `json:"connections"`
}

// RiskFactor is one heuristic finding over a graph.
type RiskFactor struct {
	Type        string `json:"type"`
	Severity    string `json:"severity"`
	Description string `json:"description"`
}

// Analysis summarizes the structure and risk signals of one graph.
type Analysis struct {
	TotalNodes     int           `json:"total_nodes"`
	TotalEdges     int           `json:"total_edges"`
	NetworkDensity float64       `json:"network_density"`
	CentralNodes   []CentralNode `json:"central_nodes"`
	RiskFactors    []RiskFactor  `json:"risk_factors"`
}

// Analyze computes summary analytics over a built graph. It takes the
// graph explicitly, so it has no hidden state and is safe to call
// concurrently with builds.
func Analyze(g *Graph) Analysis {
	a := Analysis{
		TotalNodes:   len(g.Nodes),
		TotalEdges:   len(g.Edges),
		CentralNodes: make([]CentralNode, 0, len(g.Nodes)),
		RiskFactors:  make([]RiskFactor, 0),
	}

	// Directed-graph max-edge normalization; 0 when there is nothing
	// to connect.
	if len(g.Nodes) > 1 {
		a.NetworkDensity = float64(len(g.Edges)) / float64(len(g.Nodes)*(len(g.Nodes)-1))
	}

	degree := make(map[string]int, len(g.Nodes))
	for _, e := range g.Edges {
		degree[e.Source]++
		degree[e.Target]++
	}
	for i := range g.Nodes {
		n := &g.Nodes[i]
		a.CentralNodes = append(a.CentralNodes, CentralNode{
			ID:          n.ID,
			Name:        n.DisplayName(),
			Connections: degree[n.ID],
		})
	}
	sort.SliceStable(a.CentralNodes, func(i, j int) bool {
		return a.CentralNodes[i].Connections > a.CentralNodes[j].Connections
	})

	a.RiskFactors = append(a.RiskFactors, circularOwnershipFactors(g)...)
	a.RiskFactors = append(a.RiskFactors, pscFanOutFactors(g)...)
	a.RiskFactors = append(a.RiskFactors, criticalCompanyFactors(g)...)

	return a
}

// isOwnershipEdge identifies PSC control edges by their label; the
// label format is fixed by the builder.
func isOwnershipEdge(e Edge) bool {
	return strings.HasSuffix(e.Label, "control")
}

// circularOwnershipFactors flags node pairs linked by
// opposing-direction ownership edges.
func circularOwnershipFactors(g *Graph) []RiskFactor {
	names := make(map[string]string, len(g.Nodes))
	for i := range g.Nodes {
		names[g.Nodes[i].ID] = g.Nodes[i].DisplayName()
	}

	forward := make(map[string]bool, len(g.Edges))
	for _, e := range g.Edges {
		if isOwnershipEdge(e) {
			forward[e.Source+"->"+e.Target] = true
		}
	}

	factors := make([]RiskFactor, 0)
	seen := make(map[string]bool)
	for _, e := range g.Edges {
		if !isOwnershipEdge(e) {
			continue
		}
		if !forward[e.Target+"->"+e.Source] {
			continue
		}
		key := e.Source + "|" + e.Target
		if e.Target < e.Source {
			key = e.Target + "|" + e.Source
		}
		if seen[key] {
			continue
		}
		seen[key] = true
		factors = append(factors, RiskFactor{
			Type:     "circular_ownership",
			Severity: "high",
			Description: fmt.Sprintf(
				"Circular ownership between %s and %s",
				names[e.Source], names[e.Target],
			),
		})
	}
	return factors
}

// pscFanOutFactors flags PSC nodes with ownership edges into more
// companies than the fan-out threshold.
func pscFanOutFactors(g *Graph) []RiskFactor {
	controlled := make(map[string]int)
	for _, e := range g.Edges {
		if isOwnershipEdge(e) {
			controlled[e.Source]++
		}
	}

	factors := make([]RiskFactor, 0)
	for i := range g.Nodes {
		n := &g.Nodes[i]
		if n.Kind != NodeKindPerson || n.Person == nil || n.Person.PersonType != PersonTypePSC {
			continue
		}
		if count := controlled[n.ID]; count > pscFanOutThreshold {
			factors = append(factors, RiskFactor{
				Type:     "psc_fan_out",
				Severity: "medium",
				Description: fmt.Sprintf(
					"%s holds significant control over %d companies",
					n.DisplayName(), count,
				),
			})
		}
	}
	return factors
}

// criticalCompanyFactors flags company nodes scored critical by the
// risk heuristics.
func criticalCompanyFactors(g *Graph) []RiskFactor {
	factors := make([]RiskFactor, 0)
	for i := range g.Nodes {
		n := &g.Nodes[i]
		if n.Kind != NodeKindCompany || n.Company == nil {
			continue
		}
		if n.Company.RiskLevel == RiskCritical {
			factors = append(factors, RiskFactor{
				Type:     "critical_risk_company",
				Severity: "high",
				Description: fmt.Sprintf(
					"%s (%s) scores critical on the risk heuristics",
					n.Company.CompanyName, n.Company.CompanyNumber,
				),
			})
		}
	}
	return factors
}
