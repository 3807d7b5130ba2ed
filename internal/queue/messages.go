package queue

import (
	"github.com/corposcope/backend/pkg/common"
	"github.com/corposcope/backend/pkg/network"
)

// BuildJob describes one network to build. The records are carried in
// the message so the worker does not depend on any upstream data
// source being reachable.
type BuildJob struct {
	NetworkID string                 `json:"network_id"`
	Primary   common.CompanyBundle   `json:"primary"`
	Related   []common.CompanyBundle `json:"related,omitempty"`
	Options   *network.BuildOptions  `json:"options,omitempty"`
}

// QueueBuildMsg is the payload published to the build queue. A message
// may carry several jobs which the worker fans out concurrently.
type QueueBuildMsg struct {
	Message string     `json:"message,omitempty"`
	Jobs    []BuildJob `json:"jobs"`
}

// QueueDeleteMsg is the payload published to the delete queue.
type QueueDeleteMsg struct {
	NetworkID   string `json:"network_id"`
	SnapshotKey string `json:"snapshot_key,omitempty"`
}
