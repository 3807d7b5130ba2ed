package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/corposcope/backend/internal/util"
	"github.com/corposcope/backend/pkg/network"
)

// GetSampleNetworkHandler returns a built-in demo network, mainly for
// frontend development against a predictable graph.
func GetSampleNetworkHandler(c echo.Context) error {
	type sampleQuery struct {
		CompanyNumber string `query:"company_number"`
	}

	type sampleResponse struct {
		Message  string            `json:"message"`
		Graph    *network.Graph    `json:"graph,omitempty"`
		Analysis *network.Analysis `json:"analysis,omitempty"`
	}

	data := new(sampleQuery)
	if err := c.Bind(data); err != nil {
		return c.JSON(http.StatusBadRequest, sampleResponse{
			Message: "Invalid request",
		})
	}

	companyNumber := util.NormalizeCompanyNumber(data.CompanyNumber)
	if companyNumber == "" {
		companyNumber = "00482775"
	}

	graph, err := network.SampleNetwork(companyNumber)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, sampleResponse{
			Message: "Internal server error",
		})
	}
	analysis := network.Analyze(graph)

	return c.JSON(http.StatusOK, sampleResponse{
		Message:  "OK",
		Graph:    graph,
		Analysis: &analysis,
	})
}
