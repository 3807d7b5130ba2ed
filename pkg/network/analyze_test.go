package network

import (
	"math"
	"testing"
)

func ownershipEdge(id, source, target string) Edge {
	return Edge{
		ID:        id,
		Source:    source,
		Target:    target,
		Label:     "50% control",
		MarkerEnd: MarkerArrow,
		Style:     EdgeStyle{Stroke: pscEdgeStroke, StrokeWidth: pscEdgeWidth},
	}
}

func TestAnalyze_Density(t *testing.T) {
	tests := []struct {
		name  string
		nodes int
		edges int
		want  float64
	}{
		{"EmptyGraph", 0, 0, 0},
		{"SingleNode", 1, 0, 0},
		{"TwoNodesOneEdge", 2, 1, 0.5},
		{"FullyConnectedThree", 3, 6, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := &Graph{}
			for i := 0; i < tc.nodes; i++ {
				g.Nodes = append(g.Nodes, companyAt(1, "N"))
				g.Nodes[i].ID = g.Nodes[i].Company.CompanyName
			}
			for i := 0; i < tc.edges; i++ {
				g.Edges = append(g.Edges, Edge{ID: "e", Source: "N", Target: "N"})
			}

			a := Analyze(g)
			if math.Abs(a.NetworkDensity-tc.want) > 1e-9 {
				t.Fatalf("density = %v, want %v", a.NetworkDensity, tc.want)
			}
			if a.TotalNodes != tc.nodes || a.TotalEdges != tc.edges {
				t.Fatalf("counts = %d/%d, want %d/%d", a.TotalNodes, a.TotalEdges, tc.nodes, tc.edges)
			}
		})
	}
}

func TestAnalyze_CentralNodes(t *testing.T) {
	g, err := BuildNetwork(testBundle(), nil, DefaultBuildOptions())
	if err != nil {
		t.Fatalf("BuildNetwork returned error: %v", err)
	}

	a := Analyze(g)
	if len(a.CentralNodes) != len(g.Nodes) {
		t.Fatalf("central nodes = %d, want %d", len(a.CentralNodes), len(g.Nodes))
	}

	// The primary company touches every edge, so it ranks first.
	if a.CentralNodes[0].Name != "Test Trading Ltd" {
		t.Fatalf("top central node = %q, want primary company", a.CentralNodes[0].Name)
	}
	if a.CentralNodes[0].Connections != len(g.Edges) {
		t.Fatalf("primary degree = %d, want %d", a.CentralNodes[0].Connections, len(g.Edges))
	}
	for i := 1; i < len(a.CentralNodes); i++ {
		if a.CentralNodes[i].Connections > a.CentralNodes[i-1].Connections {
			t.Fatalf("central nodes not sorted by degree: %+v", a.CentralNodes)
		}
	}
}

func TestAnalyze_CircularOwnership(t *testing.T) {
	a := companyAt(1, "Alpha Ltd")
	a.ID = "node-1"
	b := companyAt(2, "Beta Ltd")
	b.ID = "node-2"

	g := &Graph{
		Nodes: []Node{a, b},
		Edges: []Edge{
			ownershipEdge("edge-1", "node-1", "node-2"),
			ownershipEdge("edge-2", "node-2", "node-1"),
		},
	}

	res := Analyze(g)
	found := 0
	for _, f := range res.RiskFactors {
		if f.Type == "circular_ownership" {
			found++
			if f.Severity != "high" {
				t.Fatalf("circular ownership severity = %q, want high", f.Severity)
			}
		}
	}
	if found != 1 {
		t.Fatalf("expected exactly 1 circular ownership factor, got %d: %+v", found, res.RiskFactors)
	}
}

func TestAnalyze_PscFanOut(t *testing.T) {
	psc := personAt(2, "OMNIPRESENT HOLDINGS SA")
	psc.Person.PersonType = PersonTypePSC
	psc.ID = "node-psc"

	g := &Graph{Nodes: []Node{psc}}
	for i := 0; i < pscFanOutThreshold+1; i++ {
		c := companyAt(1, "Co")
		c.ID = "node-co-" + string(rune('a'+i))
		g.Nodes = append(g.Nodes, c)
		g.Edges = append(g.Edges, ownershipEdge("edge-"+c.ID, psc.ID, c.ID))
	}

	res := Analyze(g)
	found := false
	for _, f := range res.RiskFactors {
		if f.Type == "psc_fan_out" {
			found = true
			if f.Severity != "medium" {
				t.Fatalf("fan-out severity = %q, want medium", f.Severity)
			}
		}
	}
	if !found {
		t.Fatalf("expected psc fan-out factor, got %+v", res.RiskFactors)
	}

	// At the threshold itself, no flag.
	g.Edges = g.Edges[:pscFanOutThreshold]
	res = Analyze(g)
	for _, f := range res.RiskFactors {
		if f.Type == "psc_fan_out" {
			t.Fatalf("fan-out flagged at threshold: %+v", f)
		}
	}
}

func TestAnalyze_CriticalCompany(t *testing.T) {
	n := companyAt(1, "Shell Co Ltd")
	n.ID = "node-1"
	n.Company.CompanyNumber = "00000001"
	n.Company.RiskLevel = RiskCritical

	res := Analyze(&Graph{Nodes: []Node{n}})
	found := false
	for _, f := range res.RiskFactors {
		if f.Type == "critical_risk_company" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected critical company factor, got %+v", res.RiskFactors)
	}
}
