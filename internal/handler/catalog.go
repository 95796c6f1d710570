package handler

import (
	"net/http"
	"strconv"

	"github.com/wb-go/wbf/ginext"

	"github.com/Rudolfananta/ruangan-undiksha-web/internal/handler/dto"
	"github.com/Rudolfananta/ruangan-undiksha-web/internal/middleware"
)

func (h *Handler) ListUnits(c *ginext.Context) {
	units, err := h.catalog.Units(c.Request.Context(), middleware.Token(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.UnitResponse, 0, len(units))
	for _, u := range units {
		resp = append(resp, dto.ToUnitResponse(u))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) CreateUnit(c *ginext.Context) {
	var req dto.CatalogItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.catalog.CreateUnit(c.Request.Context(), middleware.Token(c), req.Name); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusCreated)
}

func (h *Handler) UpdateUnit(c *ginext.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.CatalogItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.catalog.RenameUnit(c.Request.Context(), middleware.Token(c), id, req.Name); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusOK)
}

func (h *Handler) DeleteUnit(c *ginext.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.catalog.DeleteUnit(c.Request.Context(), middleware.Token(c), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusOK)
}

func (h *Handler) ListRooms(c *ginext.Context) {
	rooms, err := h.catalog.Rooms(c.Request.Context(), middleware.Token(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.RoomResponse, 0, len(rooms))
	for _, r := range rooms {
		resp = append(resp, dto.ToRoomResponse(r))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) CreateRoom(c *ginext.Context) {
	var req dto.CatalogItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.catalog.CreateRoom(c.Request.Context(), middleware.Token(c), req.Name); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusCreated)
}

func (h *Handler) UpdateRoom(c *ginext.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.CatalogItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.catalog.RenameRoom(c.Request.Context(), middleware.Token(c), id, req.Name); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusOK)
}

func (h *Handler) DeleteRoom(c *ginext.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.catalog.DeleteRoom(c.Request.Context(), middleware.Token(c), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusOK)
}

func pathID(c *ginext.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid id"})
		return 0, false
	}
	return id, true
}
