package network

import (
	"encoding/json"
	"fmt"

	"github.com/corposcope/backend/pkg/common"
)

// NodeKind discriminates the node payload variants.
type NodeKind string

const (
	NodeKindCompany NodeKind = "company"
	NodeKindPerson  NodeKind = "person"
)

// PersonType discriminates person nodes by their relationship to the
// company.
type PersonType string

const (
	PersonTypeOfficer PersonType = "officer"
	PersonTypePSC     PersonType = "psc"
)

// RiskLevel is the coarse heuristic risk band assigned to company
// nodes. It is a proxy, not a validated risk model.
type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskMedium   RiskLevel = "medium"
	RiskHigh     RiskLevel = "high"
	RiskCritical RiskLevel = "critical"
)

// Position is a 2-D layout coordinate.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// CompanyNodeData is the payload of a company node.
type CompanyNodeData struct {
	CompanyName             string          `json:"company_name"`
	CompanyNumber           string          `json:"company_number"`
	CompanyType             string          `json:"company_type,omitempty"`
	CompanyStatus           string          `json:"company_status,omitempty"`
	DateOfCreation          string          `json:"date_of_creation,omitempty"`
	RegisteredOfficeAddress *common.Address `json:"registered_office_address,omitempty"`
	SicCodes                []string        `json:"sic_codes,omitempty"`
	Level                   int             `json:"level"`
	RiskLevel               RiskLevel       `json:"risk_level"`
}

// PersonNodeData is the payload of a person node. Appointment fields
// are set for officers, ownership fields for PSCs.
type PersonNodeData struct {
	Name                string              `json:"name"`
	Role                string              `json:"role"`
	Nationality         string              `json:"nationality,omitempty"`
	CountryOfResidence  string              `json:"country_of_residence,omitempty"`
	DateOfBirth         *common.DateOfBirth `json:"date_of_birth,omitempty"`
	AppointedOn         string              `json:"appointed_on,omitempty"`
	ResignedOn          string              `json:"resigned_on,omitempty"`
	OwnershipPercentage int                 `json:"ownership_percentage,omitempty"`
	NaturesOfControl    []string            `json:"natures_of_control,omitempty"`
	Level               int                 `json:"level"`
	PersonType          PersonType          `json:"person_type"`
}

// Node is a positioned graph node. Exactly one of Company or Person is
// set, matching Kind; use the accessors instead of touching the
// payload pointers directly.
type Node struct {
	ID       string
	Kind     NodeKind
	Position Position
	Company  *CompanyNodeData
	Person   *PersonNodeData
}

// DisplayName resolves the human-readable name of the node.
func (n *Node) DisplayName() string {
	switch n.Kind {
	case NodeKindCompany:
		if n.Company != nil {
			return n.Company.CompanyName
		}
	case NodeKindPerson:
		if n.Person != nil {
			return n.Person.Name
		}
	}
	return ""
}

// Level returns the hierarchy depth of the node.
func (n *Node) Level() int {
	switch n.Kind {
	case NodeKindCompany:
		if n.Company != nil {
			return n.Company.Level
		}
	case NodeKindPerson:
		if n.Person != nil {
			return n.Person.Level
		}
	}
	return 0
}

type nodeJSON struct {
	ID       string          `json:"id"`
	Kind     NodeKind        `json:"kind"`
	Position Position        `json:"position"`
	Data     json.RawMessage `json:"data"`
}

// MarshalJSON flattens the payload union into a single "data" object so
// node-graph rendering libraries can consume nodes directly.
func (n Node) MarshalJSON() ([]byte, error) {
	var data any
	switch n.Kind {
	case NodeKindCompany:
		data = n.Company
	case NodeKindPerson:
		data = n.Person
	default:
		return nil, fmt.Errorf("unknown node kind %q", n.Kind)
	}

	raw, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	return json.Marshal(nodeJSON{
		ID:       n.ID,
		Kind:     n.Kind,
		Position: n.Position,
		Data:     raw,
	})
}

// UnmarshalJSON restores the payload variant selected by "kind".
func (n *Node) UnmarshalJSON(b []byte) error {
	var aux nodeJSON
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}

	n.ID = aux.ID
	n.Kind = aux.Kind
	n.Position = aux.Position
	n.Company = nil
	n.Person = nil

	switch aux.Kind {
	case NodeKindCompany:
		payload := new(CompanyNodeData)
		if err := json.Unmarshal(aux.Data, payload); err != nil {
			return err
		}
		n.Company = payload
	case NodeKindPerson:
		payload := new(PersonNodeData)
		if err := json.Unmarshal(aux.Data, payload); err != nil {
			return err
		}
		n.Person = payload
	default:
		return fmt.Errorf("unknown node kind %q", aux.Kind)
	}
	return nil
}

// EdgeStyle is a rendering hint encoding the relationship category.
type EdgeStyle struct {
	Stroke      string  `json:"stroke"`
	StrokeWidth float64 `json:"stroke_width"`
	Dashed      bool    `json:"dashed,omitempty"`
}

// Edge is a directed edge between two node ids of the same build.
type Edge struct {
	ID        string    `json:"id"`
	Source    string    `json:"source"`
	Target    string    `json:"target"`
	Label     string    `json:"label"`
	MarkerEnd string    `json:"marker_end"`
	Style     EdgeStyle `json:"style"`
}

// Graph is one built node/edge set. Node and edge ids are unique
// within the graph but not across builds, so node and edge sets from
// different builds must not be mixed.
type Graph struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// ValidationError reports a primary record that cannot produce a
// graph. Heuristic-default cases (unparseable ownership, unknown
// relationship type) are not validation errors.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid primary record: %s %s", e.Field, e.Reason)
}
