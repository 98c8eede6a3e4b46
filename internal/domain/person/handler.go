package person

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
	g := e.Group("/person")
	g.GET("/all", h.ListPersons)
	g.GET("/:lastName/:firstName", h.GetPerson)
	g.POST("", h.CreatePerson)
	g.PUT("/:lastName/:firstName", h.UpdatePerson)
	g.DELETE("/:lastName/:firstName", h.DeletePerson)
}

func (h *Handler) ListPersons(c echo.Context) error {
	return c.JSON(http.StatusOK, h.svc.ListPersons())
}

func (h *Handler) GetPerson(c echo.Context) error {
	p, err := h.svc.GetPerson(c.Param("lastName"), c.Param("firstName"))
	if err != nil {
		return httperr.From(err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *Handler) CreatePerson(c echo.Context) error {
	var p Person
	if err := c.Bind(&p); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.svc.CreatePerson(p); err != nil {
		return httperr.From(err)
	}
	return c.JSON(http.StatusCreated, p)
}

func (h *Handler) UpdatePerson(c echo.Context) error {
	var p Person
	if err := c.Bind(&p); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	lastName, firstName := c.Param("lastName"), c.Param("firstName")
	if err := h.svc.UpdatePerson(lastName, firstName, p); err != nil {
		return httperr.From(err)
	}
	p.LastName, p.FirstName = lastName, firstName
	return c.JSON(http.StatusOK, p)
}

func (h *Handler) DeletePerson(c echo.Context) error {
	if err := h.svc.DeletePerson(c.Param("lastName"), c.Param("firstName")); err != nil {
		return httperr.From(err)
	}
	return c.NoContent(http.StatusNoContent)
}
