package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/apicourse/demo-api/internal/core/domain"
)

// DemoHandler serves the parameter-handling tutorial routes.
type DemoHandler struct{}

func NewDemoHandler() *DemoHandler {
	return &DemoHandler{}
}

// Root returns the canonical hello-world payload.
//
// @Summary      Hello world
// @Tags         demo
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       / [get]
func (h *DemoHandler) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"hello": "world"})
}

// GetItem demonstrates integer path-parameter coercion.
//
// @Summary      Get an item by numeric id
// @Tags         demo
// @Produce      json
// @Param        id   path      int  true  "Item id"
// @Success      200  {object}  map[string]int
// @Failure      400  {object}  map[string]string
// @Router       /items/{id} [get]
func (h *DemoHandler) GetItem(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "item_id must be an integer")
	}
	return c.JSON(http.StatusOK, map[string]int{"item_id": id})
}

// GetEnum demonstrates an enum-constrained path parameter: only the declared
// members are routable, and the symbolic name is returned.
//
// @Summary      Resolve an enum member
// @Tags         demo
// @Produce      json
// @Param        model  path      string  true  "Enum value (1, 2 or 3)"
// @Success      200    {string}  string
// @Failure      400    {object}  map[string]string
// @Router       /enum/{model} [get]
func (h *DemoHandler) GetEnum(c echo.Context) error {
	model, err := domain.ParseModelName(c.Param("model"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, model.Name())
}

// paramsQuery covers the four query-parameter flavours: required, defaulted,
// optional-nullable and optional-with-default.
type paramsQuery struct {
	Num  *int `query:"num" validate:"required"`
	Num2 *int `query:"num2"`
	Num3 *int `query:"num3"`
	Num4 *int `query:"num4"`
}

type paramsResponse struct {
	Num  int  `json:"num"`
	Num2 int  `json:"num2"`
	Num3 *int `json:"num3"`
	Num4 int  `json:"num4"`
}

// Params demonstrates query-parameter binding with defaults.
//
// @Summary      Query parameter flavours
// @Tags         demo
// @Produce      json
// @Param        num   query     int  true   "Required"
// @Param        num2  query     int  false  "Defaults to 1"
// @Param        num3  query     int  false  "Optional, null when absent"
// @Param        num4  query     int  false  "Defaults to 5"
// @Success      200   {object}  paramsResponse
// @Failure      400   {object}  map[string]string
// @Router       /param [get]
func (h *DemoHandler) Params(c echo.Context) error {
	var q paramsQuery
	if err := c.Bind(&q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "query parameters must be integers")
	}
	if err := c.Validate(&q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	resp := paramsResponse{Num: *q.Num, Num2: 1, Num3: q.Num3, Num4: 5}
	if q.Num2 != nil {
		resp.Num2 = *q.Num2
	}
	if q.Num4 != nil {
		resp.Num4 = *q.Num4
	}
	return c.JSON(http.StatusOK, resp)
}
