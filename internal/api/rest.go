package api

import (
	"net/http"

	"github.com/d6e/fanboi/internal/controller"
	"github.com/d6e/fanboi/internal/sensors"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/qdm12/reprint"
)

const (
	urlParamId      = "id"
	indentationChar = "  "
)

type (
	Result struct {
		Name    string `json:"name"`
		Message string `json:"message"`
	}

	// Status is the view of the control loop served on /status/
	Status struct {
		FanId      string                `json:"fanId"`
		Statistics controller.Statistics `json:"statistics"`
	}
)

// CreateRestService serves a read-only view of the running control loop.
// Nothing served here can change the fan or the controller.
func CreateRestService(contr controller.FanController, aggregator *sensors.Aggregator) *echo.Echo {
	echoRest := CreateWebserver()

	echoRest.GET("/alive/", isAlive)
	echoRest.GET("/metrics/", echoprometheus.NewHandler())

	registerStatusEndpoints(echoRest, contr)
	registerSensorEndpoints(echoRest, aggregator)

	return echoRest
}

func registerStatusEndpoints(rest *echo.Echo, contr controller.FanController) {
	rest.GET("/status/", func(c echo.Context) error {
		data := reprint.This(Status{
			FanId:      contr.GetFanId(),
			Statistics: contr.GetStatistics(),
		})
		return c.JSONPretty(http.StatusOK, data, indentationChar)
	})
}

// returns an empty "ok" answer
func isAlive(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

// return a "not found" message
func returnNotFound(c echo.Context, id string) (err error) {
	return c.JSONPretty(http.StatusNotFound, &Result{
		Name:    "Not found",
		Message: "No item with id '" + id + "' found",
	}, indentationChar)
}
