package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"

	"github.com/corposcope/backend/internal/storage"
	"github.com/corposcope/backend/internal/util"
	"github.com/corposcope/backend/pkg/leaselock"
	"github.com/corposcope/backend/pkg/logger"
	"github.com/corposcope/backend/pkg/network"
	networkstorage "github.com/corposcope/backend/pkg/store/pgx"
)

// maxParallelBuilds bounds the fan-out when a message carries several
// jobs.
const maxParallelBuilds = 4

// ProcessBuildMessage builds every network named in the message.
// Validation failures mark the row failed and are not retried;
// transient failures (database, object storage) propagate so the
// delivery goes through the retry queue.
func ProcessBuildMessage(
	ctx context.Context,
	s3Client *awss3.Client,
	conn *pgxpool.Pool,
	msg string,
) error {
	data := new(QueueBuildMsg)
	if err := json.Unmarshal([]byte(msg), data); err != nil {
		return err
	}
	if len(data.Jobs) == 0 {
		logger.Warn("[Queue] Build message with no jobs")
		return nil
	}

	store := networkstorage.NewNetworkDBStorageWithConnection(conn)
	lockClient := leaselock.New(conn)

	eg, ectx := errgroup.WithContext(ctx)
	eg.SetLimit(maxParallelBuilds)
	for _, job := range data.Jobs {
		eg.Go(func() error {
			return processBuildJob(ectx, s3Client, store, lockClient, job)
		})
	}
	return eg.Wait()
}

func processBuildJob(
	ctx context.Context,
	s3Client *awss3.Client,
	store *networkstorage.NetworkDBStorage,
	lockClient *leaselock.Client,
	job BuildJob,
) error {
	companyNumber := util.NormalizeCompanyNumber(job.Primary.Profile.CompanyNumber)

	// One build per company at a time, across all workers.
	lockKey := fmt.Sprintf("company:%s", companyNumber)
	return lockClient.WithLease(ctx, lockKey, leaselock.Options{
		TTL:        10 * time.Minute,
		RenewEvery: 4 * time.Minute,
		Wait:       true,
	}, func(ctx context.Context) error {
		return buildAndPersist(ctx, s3Client, store, job)
	})
}

func buildAndPersist(
	ctx context.Context,
	s3Client *awss3.Client,
	store *networkstorage.NetworkDBStorage,
	job BuildJob,
) error {
	if err := store.MarkBuilding(ctx, job.NetworkID); err != nil {
		return err
	}

	opts := network.DefaultBuildOptions()
	if job.Options != nil {
		opts = *job.Options
	}

	start := time.Now()
	graph, err := network.BuildNetwork(job.Primary, job.Related, opts)
	if err != nil {
		var verr *network.ValidationError
		if errors.As(err, &verr) {
			logger.Warn("[Queue] Build rejected", "networkId", job.NetworkID, "err", err)
			return store.MarkFailed(ctx, job.NetworkID, verr.Error())
		}
		return err
	}
	analysis := network.Analyze(graph)

	if err := store.SaveBuildResult(ctx, job.NetworkID, graph, &analysis); err != nil {
		return err
	}

	if s3Client != nil {
		payload, err := json.Marshal(graph)
		if err != nil {
			return err
		}
		key, err := util.RetryWithContext(ctx, 3, func(ctx context.Context) (string, error) {
			return storage.PutSnapshot(ctx, s3Client, job.NetworkID, payload)
		})
		if err != nil {
			return err
		}
		if err := store.SetSnapshotKey(ctx, job.NetworkID, key); err != nil {
			return err
		}
	}

	logger.Info("[Queue] Build completed",
		"networkId", job.NetworkID,
		"nodes", analysis.TotalNodes,
		"edges", analysis.TotalEdges,
		"duration_sec", time.Since(start).Seconds(),
	)
	return nil
}
