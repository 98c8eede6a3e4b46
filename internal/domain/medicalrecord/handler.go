package medicalrecord

import (
	"net/http"

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
	g := e.Group("/medicalrecord")
	g.GET("/all", h.ListRecords)
	g.GET("/:lastName/:firstName", h.GetRecord)
	g.POST("", h.CreateRecord)
	g.PUT("/:lastName/:firstName", h.UpdateRecord)
	g.DELETE("/:lastName/:firstName", h.DeleteRecord)
}

func (h *Handler) ListRecords(c echo.Context) error {
	return c.JSON(http.StatusOK, h.svc.ListRecords())
}

func (h *Handler) GetRecord(c echo.Context) error {
	m, err := h.svc.GetRecord(c.Param("lastName"), c.Param("firstName"))
	if err != nil {
		return httperr.From(err)
	}
	return c.JSON(http.StatusOK, m)
}

func (h *Handler) CreateRecord(c echo.Context) error {
	var m Medicalrecord
	if err := c.Bind(&m); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.svc.CreateRecord(m); err != nil {
		return httperr.From(err)
	}
	return c.JSON(http.StatusCreated, m)
}

func (h *Handler) UpdateRecord(c echo.Context) error {
	var m Medicalrecord
	if err := c.Bind(&m); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	lastName, firstName := c.Param("lastName"), c.Param("firstName")
	if err := h.svc.UpdateRecord(lastName, firstName, m); err != nil {
		return httperr.From(err)
	}
	m.LastName, m.FirstName = lastName, firstName
	return c.JSON(http.StatusOK, m)
}

func (h *Handler) DeleteRecord(c echo.Context) error {
	if err := h.svc.DeleteByName(c.Param("lastName"), c.Param("firstName")); err != nil {
		return httperr.From(err)
	}
	return c.NoContent(http.StatusNoContent)
}
