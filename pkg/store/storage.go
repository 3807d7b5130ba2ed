package store

import (
	"context"
	"errors"
	"time"

	"github.com/corposcope/backend/pkg/network"
)

// ErrNotFound is returned when a network with the requested public id
// does not exist.
var ErrNotFound = errors.New("network not found")

// NetworkState tracks a network row through its build lifecycle.
type NetworkState string

const (
	StatePending  NetworkState = "pending"
	StateBuilding NetworkState = "building"
	StateReady    NetworkState = "ready"
	StateFailed   NetworkState = "failed"
)

// NetworkRecord is a fully hydrated network row, including the graph
// and analysis payloads when the build has completed.
type NetworkRecord struct {
	ID            int64
	PublicID      string
	CompanyNumber string
	CompanyName   string
	State         NetworkState
	ErrorMessage  string
	NodeCount     int
	EdgeCount     int
	Density       float64
	Graph         *network.Graph
	Analysis      *network.Analysis
	SnapshotKey   string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NetworkSummary is the listing projection of a network row. It omits
// the JSONB payloads so listings stay cheap.
type NetworkSummary struct {
	PublicID      string
	CompanyNumber string
	CompanyName   string
	State         NetworkState
	NodeCount     int
	EdgeCount     int
	CreatedAt     time.Time
}

// NetworkStorage defines the interface for persisting and querying
// company networks. Rows move pending -> building -> ready, or to
// failed when a build cannot complete.
type NetworkStorage interface {
	CreateNetwork(ctx context.Context, companyNumber, companyName string) (*NetworkRecord, error)
	MarkBuilding(ctx context.Context, publicID string) error
	SaveBuildResult(ctx context.Context, publicID string, graph *network.Graph, analysis *network.Analysis) error
	MarkFailed(ctx context.Context, publicID, reason string) error

	GetNetwork(ctx context.Context, publicID string) (*NetworkRecord, error)
	ListNetworks(ctx context.Context, companyNumber string, limit int) ([]NetworkSummary, error)
	DeleteNetwork(ctx context.Context, publicID string) error

	SetSnapshotKey(ctx context.Context, publicID, key string) error
}
