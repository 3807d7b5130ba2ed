package routes

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/corposcope/backend/internal/server/middleware"
	"github.com/corposcope/backend/internal/storage"
	"github.com/corposcope/backend/internal/util"
	"github.com/corposcope/backend/pkg/logger"
	"github.com/corposcope/backend/pkg/store"
	networkstorage "github.com/corposcope/backend/pkg/store/pgx"
)

// GetNetworkExportHandler returns a time-limited download link for the
// network's exported graph JSON.
func GetNetworkExportHandler(c echo.Context) error {
	type exportParams struct {
		ID string `param:"id" validate:"required"`
	}

	type exportResponse struct {
		Message string `json:"message"`
		URL     string `json:"url,omitempty"`
	}

	params := new(exportParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, exportResponse{
			Message: "Invalid request",
		})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, exportResponse{
			Message: "Invalid request",
		})
	}

	ctx := c.Request().Context()
	conn := c.(*middleware.AppContext).App.DBConn
	st := networkstorage.NewNetworkDBStorageWithConnection(conn)

	rec, err := st.GetNetwork(ctx, params.ID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, exportResponse{
				Message: "Network not found",
			})
		}
		logger.Error("Failed to get network", "publicId", params.ID, "err", err)
		return c.JSON(http.StatusInternalServerError, exportResponse{
			Message: "Internal server error",
		})
	}

	if rec.SnapshotKey == "" {
		return c.JSON(http.StatusConflict, exportResponse{
			Message: "No export available for this network",
		})
	}

	s3Client := c.(*middleware.AppContext).App.S3
	url, err := util.Retry(2, func() (string, error) {
		return storage.GenerateDownloadLink(ctx, s3Client, rec.SnapshotKey)
	})
	if err != nil {
		logger.Error("Failed to presign download link", "publicId", params.ID, "err", err)
		return c.JSON(http.StatusInternalServerError, exportResponse{
			Message: "Internal server error",
		})
	}

	return c.JSON(http.StatusOK, exportResponse{
		Message: "OK",
		URL:     url,
	})
}
