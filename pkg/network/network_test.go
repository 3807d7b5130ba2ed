package network

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"

	"github.com/corposcope/backend/pkg/common"
)

func testBundle() common.CompanyBundle {
	return common.CompanyBundle{
		Profile: common.CompanyRecord{
			CompanyNumber:  "01234567",
			CompanyName:    "Test Trading Ltd",
			CompanyStatus:  "active",
			CompanyType:    "ltd",
			DateOfCreation: "2010-03-01",
			RegisteredOfficeAddress: &common.Address{
				AddressLine1: "1 High Street",
				Locality:     "London",
				PostalCode:   "EC1A 1AA",
			},
			SicCodes: []string{"62020"},
		},
		Officers: []common.OfficerRecord{
			{Name: "SMITH, Jane", OfficerRole: "director", AppointedOn: "2010-03-01"},
			{Name: "DOE, John", OfficerRole: "director", AppointedOn: "2012-01-15"},
			{Name: "BLACK, Iris", OfficerRole: "secretary", AppointedOn: "2010-03-01", ResignedOn: "2016-08-30"},
		},
		Pscs: []common.PscRecord{
			{Name: "HOLDCO CAPITAL LTD", NaturesOfControl: []string{"ownership-of-shares-50-to-75-percent (60%)"}},
		},
	}
}

func TestBuildNetwork_EndToEnd(t *testing.T) {
	g, err := BuildNetwork(testBundle(), nil, DefaultBuildOptions())
	if err != nil {
		t.Fatalf("BuildNetwork returned error: %v", err)
	}

	// 1 company + 2 active officers + 1 PSC; resigned officer dropped.
	if len(g.Nodes) != 4 {
		t.Fatalf("expected 4 nodes, got %d", len(g.Nodes))
	}
	if len(g.Edges) != 3 {
		t.Fatalf("expected 3 edges, got %d", len(g.Edges))
	}

	primary := g.Nodes[0]
	if primary.Kind != NodeKindCompany || primary.Company == nil {
		t.Fatalf("first node is not a company node: %+v", primary)
	}
	if primary.Company.Level != 1 {
		t.Fatalf("primary level = %d, want 1", primary.Company.Level)
	}
	if primary.Position.X != canvasCenterX || primary.Position.Y != canvasCenterY {
		t.Fatalf("primary position = %+v, want canvas center", primary.Position)
	}

	pscEdges := 0
	for _, e := range g.Edges {
		if isOwnershipEdge(e) {
			pscEdges++
			if e.Label != "60% control" {
				t.Fatalf("psc edge label = %q, want %q", e.Label, "60% control")
			}
			if e.Target != primary.ID {
				t.Fatalf("psc edge target = %q, want primary %q", e.Target, primary.ID)
			}
		}
	}
	if pscEdges != 1 {
		t.Fatalf("expected 1 psc edge, got %d", pscEdges)
	}
}

func TestBuildNetwork_NoDanglingEdges(t *testing.T) {
	related := []common.CompanyBundle{
		{Profile: common.CompanyRecord{CompanyNumber: "07654321", CompanyName: "Related Ltd", CompanyStatus: "active"}},
		{Profile: common.CompanyRecord{CompanyNumber: "09999999", CompanyName: "Other Ltd", CompanyStatus: "dissolved"}},
	}
	g, err := BuildNetwork(testBundle(), related, DefaultBuildOptions())
	if err != nil {
		t.Fatalf("BuildNetwork returned error: %v", err)
	}

	ids := make(map[string]bool, len(g.Nodes))
	for _, n := range g.Nodes {
		if ids[n.ID] {
			t.Fatalf("duplicate node id %q", n.ID)
		}
		ids[n.ID] = true
	}
	for _, e := range g.Edges {
		if !ids[e.Source] || !ids[e.Target] {
			t.Fatalf("edge %q references unknown node (%q -> %q)", e.ID, e.Source, e.Target)
		}
	}
}

func TestBuildNetwork_Deterministic(t *testing.T) {
	related := []common.CompanyBundle{
		{Profile: common.CompanyRecord{CompanyNumber: "07654321", CompanyName: "Related Ltd", CompanyStatus: "active"}},
	}
	a, err := BuildNetwork(testBundle(), related, DefaultBuildOptions())
	if err != nil {
		t.Fatalf("first build: %v", err)
	}
	b, err := BuildNetwork(testBundle(), related, DefaultBuildOptions())
	if err != nil {
		t.Fatalf("second build: %v", err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("identical inputs produced different graphs:\nfirst:  %+v\nsecond: %+v", a, b)
	}
}

func TestBuildNetwork_FilteringLaw(t *testing.T) {
	bundle := testBundle()

	opts := DefaultBuildOptions()
	g, err := BuildNetwork(bundle, nil, opts)
	if err != nil {
		t.Fatalf("BuildNetwork returned error: %v", err)
	}
	for _, n := range g.Nodes {
		if n.Kind != NodeKindPerson {
			continue
		}
		if n.Person.ResignedOn != "" {
			t.Fatalf("resigned officer %q present with include_inactive=false", n.Person.Name)
		}
	}

	opts.IncludeInactive = true
	g, err = BuildNetwork(bundle, nil, opts)
	if err != nil {
		t.Fatalf("BuildNetwork returned error: %v", err)
	}
	foundResigned := false
	for _, n := range g.Nodes {
		if n.Kind == NodeKindPerson && n.Person.ResignedOn != "" {
			foundResigned = true
		}
	}
	if !foundResigned {
		t.Fatal("resigned officer missing with include_inactive=true")
	}
}

func TestBuildNetwork_OptionToggles(t *testing.T) {
	bundle := testBundle()
	related := []common.CompanyBundle{
		{Profile: common.CompanyRecord{CompanyNumber: "07654321", CompanyName: "Related Ltd"}},
	}

	tests := []struct {
		name      string
		mutate    func(*BuildOptions)
		wantNodes int
		wantEdges int
	}{
		{"Defaults", func(o *BuildOptions) {}, 5, 4},
		{"NoOfficers", func(o *BuildOptions) { o.IncludeOfficers = false }, 3, 2},
		{"NoPSCs", func(o *BuildOptions) { o.IncludePSCs = false }, 4, 3},
		{"ShallowDepthDropsRelated", func(o *BuildOptions) { o.MaxDepth = 2 }, 4, 3},
		{"OnlyPrimary", func(o *BuildOptions) {
			o.IncludeOfficers = false
			o.IncludePSCs = false
			o.MaxDepth = 1
		}, 1, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			opts := DefaultBuildOptions()
			tc.mutate(&opts)
			g, err := BuildNetwork(bundle, related, opts)
			if err != nil {
				t.Fatalf("BuildNetwork returned error: %v", err)
			}
			if len(g.Nodes) != tc.wantNodes || len(g.Edges) != tc.wantEdges {
				t.Fatalf("got %d nodes / %d edges, want %d / %d",
					len(g.Nodes), len(g.Edges), tc.wantNodes, tc.wantEdges)
			}
		})
	}
}

func TestBuildNetwork_InvalidPrimary(t *testing.T) {
	tests := []struct {
		name      string
		profile   common.CompanyRecord
		wantField string
	}{
		{"MissingNumber", common.CompanyRecord{CompanyName: "No Number Ltd"}, "company_number"},
		{"MissingName", common.CompanyRecord{CompanyNumber: "01234567"}, "company_name"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := BuildNetwork(common.CompanyBundle{Profile: tc.profile}, nil, DefaultBuildOptions())
			var vErr *ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if vErr.Field != tc.wantField {
				t.Fatalf("validation field = %q, want %q", vErr.Field, tc.wantField)
			}
		})
	}
}

func TestNodeJSON_RoundTrip(t *testing.T) {
	g, err := BuildNetwork(testBundle(), nil, DefaultBuildOptions())
	if err != nil {
		t.Fatalf("BuildNetwork returned error: %v", err)
	}

	raw, err := json.Marshal(g)
	if err != nil {
		t.Fatalf("marshal graph: %v", err)
	}

	var decoded Graph
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unmarshal graph: %v", err)
	}
	if !reflect.DeepEqual(g, &decoded) {
		t.Fatalf("graph changed across JSON round trip:\nbefore: %+v\nafter:  %+v", g, &decoded)
	}

	// The wire shape keeps the payload under "data" for renderers.
	var wire struct {
		Nodes []map[string]json.RawMessage `json:"nodes"`
	}
	if err := json.Unmarshal(raw, &wire); err != nil {
		t.Fatalf("unmarshal wire shape: %v", err)
	}
	for i, n := range wire.Nodes {
		if _, ok := n["data"]; !ok {
			t.Fatalf("node %d has no data payload on the wire", i)
		}
	}
}

func TestSampleNetwork(t *testing.T) {
	g, err := SampleNetwork("04027356")
	if err != nil {
		t.Fatalf("SampleNetwork returned error: %v", err)
	}
	if len(g.Nodes) == 0 || len(g.Edges) == 0 {
		t.Fatalf("sample graph is empty: %d nodes, %d edges", len(g.Nodes), len(g.Edges))
	}
	if g.Nodes[0].Company == nil || g.Nodes[0].Company.CompanyNumber != "04027356" {
		t.Fatalf("sample center company number not applied: %+v", g.Nodes[0])
	}
}
