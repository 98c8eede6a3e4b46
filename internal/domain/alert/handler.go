package alert

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/safetynet/alerts/internal/platform/httperr"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/firestation", h.StationCoverage)
	e.GET("/childAlert", h.ChildAlert)
	e.GET("/phoneAlert", h.PhoneAlert)
	e.GET("/fire", h.FireAlert)
	e.GET("/personInfo", h.PersonInfo)
	e.GET("/communityEmail", h.CommunityEmail)
	e.GET("/flood", h.FloodAlert)
}

func (h *Handler) StationCoverage(c echo.Context) error {
	station, err := strconv.Atoi(c.QueryParam("stationNumber"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid stationNumber")
	}
	return c.JSON(http.StatusOK, h.svc.StationCoverage(station))
}

func (h *Handler) ChildAlert(c echo.Context) error {
	address := c.QueryParam("address")
	if address == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "address is required")
	}
	return c.JSON(http.StatusOK, h.svc.ChildAlert(address))
}

func (h *Handler) PhoneAlert(c echo.Context) error {
	station, err := strconv.Atoi(c.QueryParam("firestation"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid firestation")
	}
	return c.JSON(http.StatusOK, h.svc.PhoneAlert(station))
}

func (h *Handler) FireAlert(c echo.Context) error {
	address := c.QueryParam("address")
	if address == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "address is required")
	}
	return c.JSON(http.StatusOK, h.svc.FireAlert(address))
}

func (h *Handler) PersonInfo(c echo.Context) error {
	lastName, firstName := c.QueryParam("lastName"), c.QueryParam("firstName")
	if lastName == "" || firstName == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "lastName and firstName are required")
	}
	info, err := h.svc.PersonInfo(lastName, firstName)
	if err != nil {
		return httperr.From(err)
	}
	return c.JSON(http.StatusOK, info)
}

func (h *Handler) CommunityEmail(c echo.Context) error {
	city := c.QueryParam("city")
	if city == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "city is required")
	}
	return c.JSON(http.StatusOK, h.svc.CommunityEmail(city))
}

// FloodAlert accepts stations either repeated (?stations=1&stations=2) or
// comma-separated (?stations=1,2).
func (h *Handler) FloodAlert(c echo.Context) error {
	raw := c.QueryParams()["stations"]
	if len(raw) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "stations is required")
	}

	var stations []int
	for _, chunk := range raw {
		for _, field := range strings.Split(chunk, ",") {
			field = strings.TrimSpace(field)
			if field == "" {
				continue
			}
			station, err := strconv.Atoi(field)
			if err != nil {
				return echo.NewHTTPError(http.StatusBadRequest, "invalid station number: "+field)
			}
			stations = append(stations, station)
		}
	}
	if len(stations) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "stations is required")
	}
	return c.JSON(http.StatusOK, h.svc.FloodAlert(stations))
}
