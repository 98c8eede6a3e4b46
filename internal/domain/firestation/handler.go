package firestation

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/safetynet/alerts/internal/platform/httperr"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes registers the firestation CRUD surface. The bare
// GET /firestation route carries the station-coverage aggregation and is
// registered by the alert handler.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/firestation")
	g.GET("/all", h.ListFirestations)
	g.GET("/addr/:address", h.GetFirestationsByAddress)
	g.GET("/stat/:station", h.GetFirestationsByStation)
	g.GET("/:address/:station", h.GetFirestation)
	g.POST("", h.CreateFirestation)
	g.PUT("/:address/:station", h.UpdateFirestation)
	g.DELETE("/:address/:station", h.DeleteFirestation)
}

func parseStation(raw string) (int, error) {
	station, err := strconv.Atoi(raw)
	if err != nil || station < 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid station number")
	}
	return station, nil
}

func (h *Handler) ListFirestations(c echo.Context) error {
	return c.JSON(http.StatusOK, h.svc.ListFirestations())
}

func (h *Handler) GetFirestation(c echo.Context) error {
	station, err := parseStation(c.Param("station"))
	if err != nil {
		return err
	}
	f, err := h.svc.GetFirestation(c.Param("address"), station)
	if err != nil {
		return httperr.From(err)
	}
	return c.JSON(http.StatusOK, f)
}

func (h *Handler) GetFirestationsByAddress(c echo.Context) error {
	return c.JSON(http.StatusOK, h.svc.FirestationsByAddress(c.Param("address")))
}

func (h *Handler) GetFirestationsByStation(c echo.Context) error {
	station, err := parseStation(c.Param("station"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, h.svc.FirestationsByStation(station))
}

func (h *Handler) CreateFirestation(c echo.Context) error {
	var f Firestation
	if err := c.Bind(&f); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.svc.CreateFirestation(f); err != nil {
		return httperr.From(err)
	}
	return c.JSON(http.StatusCreated, f)
}

func (h *Handler) UpdateFirestation(c echo.Context) error {
	station, err := parseStation(c.Param("station"))
	if err != nil {
		return err
	}
	var f Firestation
	if err := c.Bind(&f); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.svc.UpdateFirestation(c.Param("address"), station, f); err != nil {
		return httperr.From(err)
	}
	return c.JSON(http.StatusOK, f)
}

func (h *Handler) DeleteFirestation(c echo.Context) error {
	station, err := parseStation(c.Param("station"))
	if err != nil {
		return err
	}
	if err := h.svc.DeleteFirestation(c.Param("address"), station); err != nil {
		return httperr.From(err)
	}
	return c.NoContent(http.StatusNoContent)
}
