package network

import (
	"math"
	"testing"
)

func companyAt(level int, name string) Node {
	return Node{
		Kind:    NodeKindCompany,
		Company: &CompanyNodeData{CompanyName: name, Level: level},
	}
}

func personAt(level int, name string) Node {
	return Node{
		Kind:   NodeKindPerson,
		Person: &PersonNodeData{Name: name, Level: level, PersonType: PersonTypeOfficer},
	}
}

func TestApplyHierarchicalLayout_Bands(t *testing.T) {
	nodes := []Node{
		companyAt(1, "Primary"),
		personAt(2, "A"),
		personAt(2, "B"),
		personAt(2, "C"),
		companyAt(3, "Related"),
	}

	applyHierarchicalLayout(nodes)

	if nodes[0].Position.X != canvasCenterX || nodes[0].Position.Y != canvasCenterY {
		t.Fatalf("level-1 node not pinned to center: %+v", nodes[0].Position)
	}

	for i := 1; i <= 3; i++ {
		if nodes[i].Position.Y != 2*levelHeight {
			t.Fatalf("level-2 node %d at y=%v, want %v", i, nodes[i].Position.Y, 2*levelHeight)
		}
	}
	if nodes[4].Position.Y != 3*levelHeight {
		t.Fatalf("level-3 node at y=%v, want %v", nodes[4].Position.Y, 3*levelHeight)
	}

	// Three nodes in the band: spacing = min(300, 800/3), centered.
	spacing := nodes[2].Position.X - nodes[1].Position.X
	wantSpacing := maxBandWidth / 3
	if math.Abs(spacing-wantSpacing) > 1e-9 {
		t.Fatalf("band spacing = %v, want %v", spacing, wantSpacing)
	}
	mid := (nodes[1].Position.X + nodes[3].Position.X) / 2
	if math.Abs(mid-canvasCenterX) > 1e-9 {
		t.Fatalf("band not centered: midpoint %v, want %v", mid, canvasCenterX)
	}
}

func TestApplyHierarchicalLayout_SpacingCap(t *testing.T) {
	nodes := []Node{personAt(2, "A"), personAt(2, "B")}
	applyHierarchicalLayout(nodes)

	spacing := math.Abs(nodes[1].Position.X - nodes[0].Position.X)
	if spacing != maxNodeSpacing {
		t.Fatalf("two-node spacing = %v, want cap %v", spacing, maxNodeSpacing)
	}
}

func TestBuildNetwork_CenterCompanyOff(t *testing.T) {
	opts := DefaultBuildOptions()
	opts.CenterCompany = false
	g, err := BuildNetwork(testBundle(), nil, opts)
	if err != nil {
		t.Fatalf("BuildNetwork returned error: %v", err)
	}

	// Primary stays at the fixed center even without the layout pass.
	if g.Nodes[0].Position.X != canvasCenterX || g.Nodes[0].Position.Y != canvasCenterY {
		t.Fatalf("primary moved without layout pass: %+v", g.Nodes[0].Position)
	}

	// Officers keep their arc positions below the company, PSCs above.
	for _, n := range g.Nodes[1:] {
		if n.Person == nil {
			continue
		}
		switch n.Person.PersonType {
		case PersonTypeOfficer:
			if n.Position.Y <= canvasCenterY {
				t.Fatalf("officer %q not below company: %+v", n.Person.Name, n.Position)
			}
		case PersonTypePSC:
			if n.Position.Y >= canvasCenterY {
				t.Fatalf("psc %q not above company: %+v", n.Person.Name, n.Position)
			}
		}
	}
}
