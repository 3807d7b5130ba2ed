package routes

import (
	"encoding/json"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/corposcope/backend/internal/queue"
	"github.com/corposcope/backend/internal/server/middleware"
	"github.com/corposcope/backend/pkg/common"
	"github.com/corposcope/backend/pkg/logger"
	"github.com/corposcope/backend/pkg/store"
	networkstorage "github.com/corposcope/backend/pkg/store/pgx"
)

// jobsPerMessage bounds how many builds ride in one queue message so a
// single poisoned delivery cannot stall a large batch.
const jobsPerMessage = 25

// CreateNetworkJobsHandler accepts a batch of build requests, creates
// pending network rows, and enqueues them for the worker.
func CreateNetworkJobsHandler(c echo.Context) error {
	type networkJobBody struct {
		buildOptionsBody
		Primary common.CompanyBundle   `json:"primary" validate:"required"`
		Related []common.CompanyBundle `json:"related"`
	}

	type createJobsBody struct {
		Jobs []networkJobBody `json:"jobs" validate:"required,min=1,max=100,dive"`
	}

	type createdJob struct {
		ID            string `json:"id"`
		CompanyNumber string `json:"company_number"`
	}

	type createJobsResponse struct {
		Message string       `json:"message"`
		Jobs    []createdJob `json:"jobs,omitempty"`
	}

	data := new(createJobsBody)
	if err := c.Bind(data); err != nil {
		return c.JSON(http.StatusBadRequest, createJobsResponse{
			Message: "Invalid request body",
		})
	}
	if err := c.Validate(data); err != nil {
		return c.JSON(http.StatusBadRequest, createJobsResponse{
			Message: "Invalid request body",
		})
	}

	ctx := c.Request().Context()
	conn := c.(*middleware.AppContext).App.DBConn
	st := networkstorage.NewNetworkDBStorageWithConnection(conn)

	created := make([]createdJob, 0, len(data.Jobs))
	buildJobs := make([]queue.BuildJob, 0, len(data.Jobs))
	for _, job := range data.Jobs {
		rec, err := st.CreateNetwork(ctx, job.Primary.Profile.CompanyNumber, job.Primary.Profile.CompanyName)
		if err != nil {
			logger.Error("Failed to create network record", "err", err)
			return c.JSON(http.StatusInternalServerError, createJobsResponse{
				Message: "Internal server error",
			})
		}
		opts := job.buildOptionsBody.toBuildOptions()
		created = append(created, createdJob{
			ID:            rec.PublicID,
			CompanyNumber: rec.CompanyNumber,
		})
		buildJobs = append(buildJobs, queue.BuildJob{
			NetworkID: rec.PublicID,
			Primary:   job.Primary,
			Related:   job.Related,
			Options:   &opts,
		})
	}

	ch := c.(*middleware.AppContext).App.Queue
	err := store.ChunkRange(len(buildJobs), jobsPerMessage, func(start, end int) error {
		msg := queue.QueueBuildMsg{
			Message: "Network build requested",
			Jobs:    buildJobs[start:end],
		}
		raw, err := json.Marshal(msg)
		if err != nil {
			return err
		}
		return queue.PublishFIFO(ch, queue.BuildQueue, raw)
	})
	if err != nil {
		logger.Error("Failed to publish build jobs", "err", err)
		return c.JSON(http.StatusInternalServerError, createJobsResponse{
			Message: "Internal server error",
		})
	}

	return c.JSON(http.StatusAccepted, createJobsResponse{
		Message: "Network builds queued",
		Jobs:    created,
	})
}
