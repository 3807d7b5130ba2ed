package pgx

import (
	"encoding/json"

	"github.com/corposcope/backend/pkg/network"
)

func encodeGraph(g *network.Graph) (nodes, edges []byte, err error) {
	if g == nil {
		return nil, nil, nil
	}
	nodes, err = json.Marshal(g.Nodes)
	if err != nil {
		return nil, nil, err
	}
	edges, err = json.Marshal(g.Edges)
	if err != nil {
		return nil, nil, err
	}
	return nodes, edges, nil
}

func decodeGraph(nodes, edges []byte) (*network.Graph, error) {
	if nodes == nil && edges == nil {
		return nil, nil
	}
	g := &network.Graph{}
	if nodes != nil {
		if err := json.Unmarshal(nodes, &g.Nodes); err != nil {
			return nil, err
		}
	}
	if edges != nil {
		if err := json.Unmarshal(edges, &g.Edges); err != nil {
			return nil, err
		}
	}
	return g, nil
}

func encodeAnalysis(a *network.Analysis) ([]byte, error) {
	if a == nil {
		return nil, nil
	}
	return json.Marshal(a)
}

func decodeAnalysis(raw []byte) (*network.Analysis, error) {
	if raw == nil {
		return nil, nil
	}
	a := &network.Analysis{}
	if err := json.Unmarshal(raw, a); err != nil {
		return nil, err
	}
	return a, nil
}
