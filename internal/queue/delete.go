package queue

import (
	"context"
	"encoding/json"
	"errors"

	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/corposcope/backend/internal/storage"
	"github.com/corposcope/backend/internal/util"
	"github.com/corposcope/backend/pkg/logger"
	"github.com/corposcope/backend/pkg/store"
	networkstorage "github.com/corposcope/backend/pkg/store/pgx"
)

// ProcessDeleteMessage removes a network row and its exported
// snapshot. A row that is already gone is treated as success so
// redeliveries stay idempotent.
func ProcessDeleteMessage(
	ctx context.Context,
	s3Client *awss3.Client,
	conn *pgxpool.Pool,
	msg string,
) error {
	data := new(QueueDeleteMsg)
	if err := json.Unmarshal([]byte(msg), data); err != nil {
		return err
	}

	if data.SnapshotKey != "" && s3Client != nil {
		err := util.RetryErrWithContext(ctx, 3, func(ctx context.Context) error {
			return storage.DeleteSnapshot(ctx, s3Client, data.SnapshotKey)
		})
		if err != nil {
			logger.Warn("[Queue] Failed to delete snapshot", "networkId", data.NetworkID, "key", data.SnapshotKey, "err", err)
		}
	}

	st := networkstorage.NewNetworkDBStorageWithConnection(conn)
	if err := st.DeleteNetwork(ctx, data.NetworkID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			logger.Debug("[Queue] Network already deleted", "networkId", data.NetworkID)
			return nil
		}
		return err
	}

	logger.Info("[Queue] Network deleted", "networkId", data.NetworkID)
	return nil
}
