package handler

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"library-backend/internal/domains/genre"
	"library-backend/internal/shared/response"
)

type GenreHandler struct {
	service genre.Service
}

func NewGenreHandler(svc genre.Service) *GenreHandler {
	return &GenreHandler{service: svc}
}

// List - GET /api/genres
func (h *GenreHandler) List(c *gin.Context) {
	genres, err := h.service.List(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, "Failed to list genres.")
		return
	}

	response.OK(c, genres)
}

// GetByID - GET /api/genres/:id
func (h *GenreHandler) GetByID(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		response.NotFound(c, fmt.Sprintf("Genre with id %s was not found.", idStr))
		return
	}

	resp, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, genre.ErrGenreNotFound) {
			response.NotFound(c, fmt.Sprintf("Genre with id %d was not found.", id))
			return
		}
		response.InternalServerError(c, "Failed to get genre.")
		return
	}

	response.OK(c, resp)
}

// Create - POST /api/genres
func (h *GenreHandler) Create(c *gin.Context) {
	var req genre.GenreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body.")
		return
	}

	req.Normalize()
	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, genre.ErrDuplicateGenre) {
			response.Conflict(c, fmt.Sprintf("Genre '%s' already exists.", req.Name))
			return
		}
		response.Error(c, genre.ToHTTPStatus(err), "Failed to create genre.")
		return
	}

	response.Created(c, fmt.Sprintf("/api/genres/%d", resp.ID), resp)
}

// Update - PUT /api/genres/:id
func (h *GenreHandler) Update(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		response.NotFound(c, fmt.Sprintf("Genre with id %s was not found.", idStr))
		return
	}

	var req genre.GenreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body.")
		return
	}

	req.Normalize()
	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, genre.ErrGenreNotFound):
			response.NotFound(c, fmt.Sprintf("Genre with id %d was not found.", id))
		case errors.Is(err, genre.ErrDuplicateGenre):
			response.Conflict(c, fmt.Sprintf("Genre '%s' already exists.", req.Name))
		default:
			response.InternalServerError(c, "Failed to update genre.")
		}
		return
	}

	response.OK(c, resp)
}

// Delete - DELETE /api/genres/:id
func (h *GenreHandler) Delete(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		response.NotFound(c, fmt.Sprintf("Genre with id %s was not found.", idStr))
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, genre.ErrGenreNotFound) {
			response.NotFound(c, fmt.Sprintf("Genre with id %d was not found.", id))
			return
		}
		response.InternalServerError(c, "Failed to delete genre.")
		return
	}

	response.NoContent(c)
}
