package network

import (
	"fmt"
	"math"

	"github.com/corposcope/backend/pkg/common"
)

const (
	// MarkerArrow is the directional arrow marker attached to every
	// edge.
	MarkerArrow = "arrow"

	officerEdgeStroke = "#8b5cf6"
	pscEdgeStroke     = "#10b981"
	relatedEdgeStroke = "#3b82f6"

	officerEdgeWidth = 2.0
	pscEdgeWidth     = 3.0
	relatedEdgeWidth = 1.5

	// PSC role shown on person payloads built from PSC records.
	pscRole = "Person with Significant Control"

	// Depth at which related-company nodes are added.
	relatedDepth = 3

	// Radius of the pre-layout arcs around the primary company.
	arcRadius = 250.0
)

// BuildOptions controls which records become nodes and whether the
// hierarchical layout pass runs. MaxDepth outside [1,3] is a
// caller-validation concern and is not enforced here.
type BuildOptions struct {
	MaxDepth        int  `json:"max_depth"`
	IncludeOfficers bool `json:"include_officers"`
	IncludePSCs     bool `json:"include_pscs"`
	IncludeInactive bool `json:"include_inactive"`
	CenterCompany   bool `json:"center_company"`
}

// DefaultBuildOptions returns the documented defaults: depth 3, active
// officers and PSCs included, hierarchical re-layout enabled.
func DefaultBuildOptions() BuildOptions {
	return BuildOptions{
		MaxDepth:        3,
		IncludeOfficers: true,
		IncludePSCs:     true,
		IncludeInactive: false,
		CenterCompany:   true,
	}
}

// builder threads node/edge id counters through a single build call.
// Counters start fresh per build, so ids are unique only within one
// graph.
type builder struct {
	nodeSeq int
	edgeSeq int
	nodes   []Node
	edges   []Edge
}

func (b *builder) addNode(n Node) string {
	b.nodeSeq++
	n.ID = fmt.Sprintf("node-%d", b.nodeSeq)
	b.nodes = append(b.nodes, n)
	return n.ID
}

func (b *builder) addEdge(source, target, label string, style EdgeStyle) {
	b.edgeSeq++
	b.edges = append(b.edges, Edge{
		ID:        fmt.Sprintf("edge-%d", b.edgeSeq),
		Source:    source,
		Target:    target,
		Label:     label,
		MarkerEnd: MarkerArrow,
		Style:     style,
	})
}

func (b *builder) addCompanyNode(rec common.CompanyRecord, level int, pos Position) string {
	return b.addNode(Node{
		Kind:     NodeKindCompany,
		Position: pos,
		Company: &CompanyNodeData{
			CompanyName:             rec.CompanyName,
			CompanyNumber:           rec.CompanyNumber,
			CompanyType:             rec.CompanyType,
			CompanyStatus:           rec.CompanyStatus,
			DateOfCreation:          rec.DateOfCreation,
			RegisteredOfficeAddress: rec.RegisteredOfficeAddress,
			SicCodes:                rec.SicCodes,
			Level:                   level,
			RiskLevel:               CompanyRiskLevel(rec),
		},
	})
}

// BuildNetwork converts a primary company bundle plus optional related
// bundles into a positioned graph. It is a pure transformation: no
// I/O, no retained state, safe to call concurrently.
func BuildNetwork(primary common.CompanyBundle, related []common.CompanyBundle, opts BuildOptions) (*Graph, error) {
	if err := validatePrimary(primary.Profile); err != nil {
		return nil, err
	}

	b := &builder{}
	center := Position{X: canvasCenterX, Y: canvasCenterY}
	primaryID := b.addCompanyNode(primary.Profile, 1, center)

	if opts.IncludeOfficers {
		officers := activeOfficers(primary.Officers, opts.IncludeInactive)
		for i, off := range officers {
			pos := arcPosition(center, i, len(officers), true)
			nodeID := b.addNode(Node{
				Kind:     NodeKindPerson,
				Position: pos,
				Person: &PersonNodeData{
					Name:               off.Name,
					Role:               off.OfficerRole,
					Nationality:        off.Nationality,
					CountryOfResidence: off.CountryOfResidence,
					DateOfBirth:        off.DateOfBirth,
					AppointedOn:        off.AppointedOn,
					ResignedOn:         off.ResignedOn,
					Level:              2,
					PersonType:         PersonTypeOfficer,
				},
			})
			b.addEdge(primaryID, nodeID, off.OfficerRole, EdgeStyle{
				Stroke:      officerEdgeStroke,
				StrokeWidth: officerEdgeWidth,
			})
		}
	}

	if opts.IncludePSCs {
		pscs := activePscs(primary.Pscs, opts.IncludeInactive)
		for i, psc := range pscs {
			pct := ownershipPercent(psc.NaturesOfControl)
			pos := arcPosition(center, i, len(pscs), false)
			nodeID := b.addNode(Node{
				Kind:     NodeKindPerson,
				Position: pos,
				Person: &PersonNodeData{
					Name:                psc.Name,
					Role:                pscRole,
					Nationality:         psc.Nationality,
					CountryOfResidence:  psc.CountryOfResidence,
					DateOfBirth:         psc.DateOfBirth,
					OwnershipPercentage: pct,
					NaturesOfControl:    psc.NaturesOfControl,
					Level:               2,
					PersonType:          PersonTypePSC,
				},
			})
			b.addEdge(nodeID, primaryID, fmt.Sprintf("%d%% control", pct), EdgeStyle{
				Stroke:      pscEdgeStroke,
				StrokeWidth: pscEdgeWidth,
			})
		}
	}

	if opts.MaxDepth >= relatedDepth && len(related) > 0 {
		for i, rel := range related {
			pos := ringPosition(center, i, len(related))
			nodeID := b.addCompanyNode(rel.Profile, relatedDepth, pos)
			// Relationship semantics are not modeled; this is a
			// placeholder link (see DESIGN.md).
			b.addEdge(primaryID, nodeID, "Related entity", EdgeStyle{
				Stroke:      relatedEdgeStroke,
				StrokeWidth: relatedEdgeWidth,
				Dashed:      true,
			})
		}
	}

	if opts.CenterCompany {
		applyHierarchicalLayout(b.nodes)
	}

	return &Graph{Nodes: b.nodes, Edges: b.edges}, nil
}

func validatePrimary(rec common.CompanyRecord) error {
	if rec.CompanyNumber == "" {
		return &ValidationError{Field: "company_number", Reason: "is required"}
	}
	if rec.CompanyName == "" {
		return &ValidationError{Field: "company_name", Reason: "is required"}
	}
	return nil
}

func activeOfficers(officers []common.OfficerRecord, includeInactive bool) []common.OfficerRecord {
	if includeInactive {
		return officers
	}
	out := make([]common.OfficerRecord, 0, len(officers))
	for _, off := range officers {
		if off.ResignedOn == "" {
			out = append(out, off)
		}
	}
	return out
}

func activePscs(pscs []common.PscRecord, includeInactive bool) []common.PscRecord {
	if includeInactive {
		return pscs
	}
	out := make([]common.PscRecord, 0, len(pscs))
	for _, psc := range pscs {
		if psc.CeasedOn == "" {
			out = append(out, psc)
		}
	}
	return out
}

// arcPosition spreads nodes over a semicircle around the center:
// officers below the company, PSCs above.
func arcPosition(center Position, idx, count int, below bool) Position {
	angle := math.Pi * float64(idx+1) / float64(count+1)
	dy := arcRadius * math.Sin(angle)
	if !below {
		dy = -dy
	}
	return Position{
		X: center.X - arcRadius*math.Cos(angle),
		Y: center.Y + dy,
	}
}

// ringPosition spreads related companies over a full circle around the
// primary company.
func ringPosition(center Position, idx, count int) Position {
	angle := 2 * math.Pi * float64(idx) / float64(count)
	return Position{
		X: center.X + arcRadius*math.Cos(angle),
		Y: center.Y + arcRadius*math.Sin(angle),
	}
}
