package routes

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/corposcope/backend/internal/server/middleware"
	"github.com/corposcope/backend/internal/storage"
	"github.com/corposcope/backend/pkg/common"
	"github.com/corposcope/backend/pkg/logger"
	"github.com/corposcope/backend/pkg/network"
	networkstorage "github.com/corposcope/backend/pkg/store/pgx"
)

// CreateNetworkHandler builds a network synchronously, persists it,
// and returns the graph with its analysis.
func CreateNetworkHandler(c echo.Context) error {
	type createNetworkBody struct {
		buildOptionsBody
		Primary common.CompanyBundle   `json:"primary" validate:"required"`
		Related []common.CompanyBundle `json:"related"`
	}

	type createNetworkResponse struct {
		Message  string            `json:"message"`
		ID       string            `json:"id,omitempty"`
		Graph    *network.Graph    `json:"graph,omitempty"`
		Analysis *network.Analysis `json:"analysis,omitempty"`
	}

	data := new(createNetworkBody)
	if err := c.Bind(data); err != nil {
		return c.JSON(http.StatusBadRequest, createNetworkResponse{
			Message: "Invalid request body",
		})
	}
	if err := c.Validate(data); err != nil {
		return c.JSON(http.StatusBadRequest, createNetworkResponse{
			Message: "Invalid request body",
		})
	}

	opts := data.buildOptionsBody.toBuildOptions()

	graph, err := network.BuildNetwork(data.Primary, data.Related, opts)
	if err != nil {
		var verr *network.ValidationError
		if errors.As(err, &verr) {
			return c.JSON(http.StatusUnprocessableEntity, createNetworkResponse{
				Message: verr.Error(),
			})
		}
		logger.Error("Failed to build network", "err", err)
		return c.JSON(http.StatusInternalServerError, createNetworkResponse{
			Message: "Internal server error",
		})
	}
	analysis := network.Analyze(graph)

	ctx := c.Request().Context()
	conn := c.(*middleware.AppContext).App.DBConn
	store := networkstorage.NewNetworkDBStorageWithConnection(conn)

	rec, err := store.CreateNetwork(ctx, data.Primary.Profile.CompanyNumber, data.Primary.Profile.CompanyName)
	if err != nil {
		logger.Error("Failed to create network record", "err", err)
		return c.JSON(http.StatusInternalServerError, createNetworkResponse{
			Message: "Internal server error",
		})
	}
	if err := store.SaveBuildResult(ctx, rec.PublicID, graph, &analysis); err != nil {
		logger.Error("Failed to save network", "publicId", rec.PublicID, "err", err)
		return c.JSON(http.StatusInternalServerError, createNetworkResponse{
			Message: "Internal server error",
		})
	}

	s3Client := c.(*middleware.AppContext).App.S3
	if s3Client != nil {
		payload, err := json.Marshal(graph)
		if err == nil {
			key, putErr := storage.PutSnapshot(ctx, s3Client, rec.PublicID, payload)
			if putErr != nil {
				logger.Warn("Failed to upload snapshot", "publicId", rec.PublicID, "err", putErr)
			} else if err := store.SetSnapshotKey(ctx, rec.PublicID, key); err != nil {
				logger.Warn("Failed to record snapshot key", "publicId", rec.PublicID, "err", err)
			}
		}
	}

	return c.JSON(http.StatusOK, createNetworkResponse{
		Message:  "Network built successfully",
		ID:       rec.PublicID,
		Graph:    graph,
		Analysis: &analysis,
	})
}
