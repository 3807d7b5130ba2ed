package pgx

import (
	"context"
	"errors"

	pgxv5 "github.com/jackc/pgx/v5"
	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/corposcope/backend/pkg/logger"
	"github.com/corposcope/backend/pkg/network"
	"github.com/corposcope/backend/pkg/store"
)

// CreateNetwork inserts a pending network row and returns it. The
// public id is a nanoid so database ids never leak into the API.
func (s *NetworkDBStorage) CreateNetwork(ctx context.Context, companyNumber, companyName string) (*store.NetworkRecord, error) {
	publicID, err := gonanoid.New()
	if err != nil {
		return nil, err
	}

	rec := &store.NetworkRecord{
		PublicID:      publicID,
		CompanyNumber: companyNumber,
		CompanyName:   companyName,
		State:         store.StatePending,
	}
	err = s.conn.QueryRow(ctx, `
		INSERT INTO networks (public_id, company_number, company_name, state)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at`,
		publicID, companyNumber, companyName, store.StatePending,
	).Scan(&rec.ID, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		return nil, err
	}

	logger.Debug("[Store][CreateNetwork] Created pending network", "publicId", publicID, "companyNumber", companyNumber)
	return rec, nil
}

// MarkBuilding transitions a pending row to building.
func (s *NetworkDBStorage) MarkBuilding(ctx context.Context, publicID string) error {
	tag, err := s.conn.Exec(ctx, `
		UPDATE networks
		SET state = $2, updated_at = now()
		WHERE public_id = $1`,
		publicID, store.StateBuilding,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}

// SaveBuildResult stores the finished graph and analysis and marks the
// row ready. Counters and density are denormalized so listings do not
// need to touch the JSONB payloads.
func (s *NetworkDBStorage) SaveBuildResult(ctx context.Context, publicID string, graph *network.Graph, analysis *network.Analysis) error {
	nodes, edges, err := encodeGraph(graph)
	if err != nil {
		return err
	}
	analysisRaw, err := encodeAnalysis(analysis)
	if err != nil {
		return err
	}

	var nodeCount, edgeCount int
	var density float64
	if analysis != nil {
		nodeCount = analysis.TotalNodes
		edgeCount = analysis.TotalEdges
		density = analysis.NetworkDensity
	} else if graph != nil {
		nodeCount = len(graph.Nodes)
		edgeCount = len(graph.Edges)
	}

	tag, err := s.conn.Exec(ctx, `
		UPDATE networks
		SET state = $2,
		    error_message = '',
		    node_count = $3,
		    edge_count = $4,
		    density = $5,
		    nodes = $6,
		    edges = $7,
		    analysis = $8,
		    updated_at = now()
		WHERE public_id = $1`,
		publicID, store.StateReady, nodeCount, edgeCount, density, nodes, edges, analysisRaw,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}

	logger.Info("[Store][SaveBuildResult] Network ready", "publicId", publicID, "nodes", nodeCount, "edges", edgeCount)
	return nil
}

// MarkFailed transitions a row to failed and records the reason.
func (s *NetworkDBStorage) MarkFailed(ctx context.Context, publicID, reason string) error {
	tag, err := s.conn.Exec(ctx, `
		UPDATE networks
		SET state = $2, error_message = $3, updated_at = now()
		WHERE public_id = $1`,
		publicID, store.StateFailed, reason,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}

// GetNetwork loads a network row including its graph and analysis
// payloads.
func (s *NetworkDBStorage) GetNetwork(ctx context.Context, publicID string) (*store.NetworkRecord, error) {
	rec := &store.NetworkRecord{}
	var nodes, edges, analysisRaw []byte

	err := s.conn.QueryRow(ctx, `
		SELECT id, public_id, company_number, company_name, state,
		       error_message, node_count, edge_count, density,
		       nodes, edges, analysis, snapshot_key,
		       created_at, updated_at
		FROM networks
		WHERE public_id = $1`,
		publicID,
	).Scan(
		&rec.ID, &rec.PublicID, &rec.CompanyNumber, &rec.CompanyName, &rec.State,
		&rec.ErrorMessage, &rec.NodeCount, &rec.EdgeCount, &rec.Density,
		&nodes, &edges, &analysisRaw, &rec.SnapshotKey,
		&rec.CreatedAt, &rec.UpdatedAt,
	)
	if errors.Is(err, pgxv5.ErrNoRows) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	rec.Graph, err = decodeGraph(nodes, edges)
	if err != nil {
		return nil, err
	}
	rec.Analysis, err = decodeAnalysis(analysisRaw)
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// ListNetworks returns network summaries, newest first, optionally
// filtered by company number.
func (s *NetworkDBStorage) ListNetworks(ctx context.Context, companyNumber string, limit int) ([]store.NetworkSummary, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := s.conn.Query(ctx, `
		SELECT public_id, company_number, company_name, state,
		       node_count, edge_count, created_at
		FROM networks
		WHERE ($1 = '' OR company_number = $1)
		ORDER BY created_at DESC
		LIMIT $2`,
		companyNumber, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	summaries := make([]store.NetworkSummary, 0)
	for rows.Next() {
		var sum store.NetworkSummary
		if err := rows.Scan(
			&sum.PublicID, &sum.CompanyNumber, &sum.CompanyName, &sum.State,
			&sum.NodeCount, &sum.EdgeCount, &sum.CreatedAt,
		); err != nil {
			return nil, err
		}
		summaries = append(summaries, sum)
	}
	return summaries, rows.Err()
}

// DeleteNetwork removes a network row.
func (s *NetworkDBStorage) DeleteNetwork(ctx context.Context, publicID string) error {
	tag, err := s.conn.Exec(ctx, `DELETE FROM networks WHERE public_id = $1`, publicID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	logger.Info("[Store][DeleteNetwork] Deleted network", "publicId", publicID)
	return nil
}

// SetSnapshotKey records the object storage key of the exported graph
// snapshot.
func (s *NetworkDBStorage) SetSnapshotKey(ctx context.Context, publicID, key string) error {
	tag, err := s.conn.Exec(ctx, `
		UPDATE networks
		SET snapshot_key = $2, updated_at = now()
		WHERE public_id = $1`,
		publicID, key,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}
