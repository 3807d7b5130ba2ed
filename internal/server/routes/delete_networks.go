package routes

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/corposcope/backend/internal/queue"
	"github.com/corposcope/backend/internal/server/middleware"
	"github.com/corposcope/backend/internal/util"
	"github.com/corposcope/backend/pkg/logger"
	"github.com/corposcope/backend/pkg/store"
	networkstorage "github.com/corposcope/backend/pkg/store/pgx"
)

// DeleteNetworkHandler queues a network for deletion. The row and its
// snapshot are removed by the worker.
func DeleteNetworkHandler(c echo.Context) error {
	type deleteNetworkParams struct {
		ID string `param:"id" validate:"required"`
	}

	type deleteNetworkResponse struct {
		Message string `json:"message"`
	}

	params := new(deleteNetworkParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, deleteNetworkResponse{
			Message: "Invalid request",
		})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, deleteNetworkResponse{
			Message: "Invalid request",
		})
	}

	ctx := c.Request().Context()
	conn := c.(*middleware.AppContext).App.DBConn
	st := networkstorage.NewNetworkDBStorageWithConnection(conn)

	rec, err := st.GetNetwork(ctx, params.ID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, deleteNetworkResponse{
				Message: "Network not found",
			})
		}
		logger.Error("Failed to get network", "publicId", params.ID, "err", err)
		return c.JSON(http.StatusInternalServerError, deleteNetworkResponse{
			Message: "Internal server error",
		})
	}

	msg := queue.QueueDeleteMsg{
		NetworkID:   rec.PublicID,
		SnapshotKey: rec.SnapshotKey,
	}
	raw, err := json.Marshal(msg)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, deleteNetworkResponse{
			Message: "Internal server error",
		})
	}

	ch := c.(*middleware.AppContext).App.Queue
	if err := util.RetryErr(2, func() error {
		return queue.PublishFIFO(ch, queue.DeleteQueue, raw)
	}); err != nil {
		logger.Error("Failed to publish delete job", "publicId", params.ID, "err", err)
		return c.JSON(http.StatusInternalServerError, deleteNetworkResponse{
			Message: "Internal server error",
		})
	}

	return c.JSON(http.StatusAccepted, deleteNetworkResponse{
		Message: "Network deletion queued",
	})
}
