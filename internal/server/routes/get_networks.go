package routes

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/corposcope/backend/internal/server/middleware"
	"github.com/corposcope/backend/pkg/logger"
	"github.com/corposcope/backend/pkg/network"
	"github.com/corposcope/backend/pkg/store"
	networkstorage "github.com/corposcope/backend/pkg/store/pgx"
)

type networkSummaryJSON struct {
	ID            string    `json:"id"`
	CompanyNumber string    `json:"company_number"`
	CompanyName   string    `json:"company_name"`
	State         string    `json:"state"`
	NodeCount     int       `json:"node_count"`
	EdgeCount     int       `json:"edge_count"`
	CreatedAt     time.Time `json:"created_at"`
}

// GetNetworksHandler lists networks, optionally filtered by company
// number.
func GetNetworksHandler(c echo.Context) error {
	type getNetworksQuery struct {
		CompanyNumber string `query:"company_number"`
		Limit         int    `query:"limit" validate:"omitempty,min=1,max=200"`
	}

	type getNetworksResponse struct {
		Message  string               `json:"message"`
		Networks []networkSummaryJSON `json:"networks"`
	}

	data := new(getNetworksQuery)
	if err := c.Bind(data); err != nil {
		return c.JSON(http.StatusBadRequest, getNetworksResponse{
			Message: "Invalid request",
		})
	}
	if err := c.Validate(data); err != nil {
		return c.JSON(http.StatusBadRequest, getNetworksResponse{
			Message: "Invalid request",
		})
	}

	ctx := c.Request().Context()
	conn := c.(*middleware.AppContext).App.DBConn
	st := networkstorage.NewNetworkDBStorageWithConnection(conn)

	summaries, err := st.ListNetworks(ctx, data.CompanyNumber, data.Limit)
	if err != nil {
		logger.Error("Failed to list networks", "err", err)
		return c.JSON(http.StatusInternalServerError, getNetworksResponse{
			Message: "Internal server error",
		})
	}

	out := make([]networkSummaryJSON, 0, len(summaries))
	for _, s := range summaries {
		out = append(out, networkSummaryJSON{
			ID:            s.PublicID,
			CompanyNumber: s.CompanyNumber,
			CompanyName:   s.CompanyName,
			State:         string(s.State),
			NodeCount:     s.NodeCount,
			EdgeCount:     s.EdgeCount,
			CreatedAt:     s.CreatedAt,
		})
	}

	return c.JSON(http.StatusOK, getNetworksResponse{
		Message:  "OK",
		Networks: out,
	})
}

// GetNetworkHandler returns one network with its graph and analysis.
func GetNetworkHandler(c echo.Context) error {
	type getNetworkParams struct {
		ID string `param:"id" validate:"required"`
	}

	type getNetworkResponse struct {
		Message       string            `json:"message"`
		ID            string            `json:"id,omitempty"`
		CompanyNumber string            `json:"company_number,omitempty"`
		CompanyName   string            `json:"company_name,omitempty"`
		State         string            `json:"state,omitempty"`
		ErrorMessage  string            `json:"error_message,omitempty"`
		Graph         *network.Graph    `json:"graph,omitempty"`
		Analysis      *network.Analysis `json:"analysis,omitempty"`
		CreatedAt     *time.Time        `json:"created_at,omitempty"`
		UpdatedAt     *time.Time        `json:"updated_at,omitempty"`
	}

	params := new(getNetworkParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, getNetworkResponse{
			Message: "Invalid request",
		})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, getNetworkResponse{
			Message: "Invalid request",
		})
	}

	ctx := c.Request().Context()
	conn := c.(*middleware.AppContext).App.DBConn
	st := networkstorage.NewNetworkDBStorageWithConnection(conn)

	rec, err := st.GetNetwork(ctx, params.ID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, getNetworkResponse{
				Message: "Network not found",
			})
		}
		logger.Error("Failed to get network", "publicId", params.ID, "err", err)
		return c.JSON(http.StatusInternalServerError, getNetworkResponse{
			Message: "Internal server error",
		})
	}

	return c.JSON(http.StatusOK, getNetworkResponse{
		Message:       "OK",
		ID:            rec.PublicID,
		CompanyNumber: rec.CompanyNumber,
		CompanyName:   rec.CompanyName,
		State:         string(rec.State),
		ErrorMessage:  rec.ErrorMessage,
		Graph:         rec.Graph,
		Analysis:      rec.Analysis,
		CreatedAt:     &rec.CreatedAt,
		UpdatedAt:     &rec.UpdatedAt,
	})
}
