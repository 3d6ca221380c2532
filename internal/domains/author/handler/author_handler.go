package handler

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"library-backend/internal/domains/author"
	"library-backend/internal/shared/response"
)

type AuthorHandler struct {
	service author.Service
}

func NewAuthorHandler(svc author.Service) *AuthorHandler {
	return &AuthorHandler{service: svc}
}

// List - GET /api/authors
func (h *AuthorHandler) List(c *gin.Context) {
	authors, err := h.service.List(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, "Failed to list authors.")
		return
	}

	response.OK(c, authors)
}

// GetByID - GET /api/authors/:id
func (h *AuthorHandler) GetByID(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		response.NotFound(c, fmt.Sprintf("Author with id %s was not found.", idStr))
		return
	}

	resp, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, author.ErrAuthorNotFound) {
			response.NotFound(c, fmt.Sprintf("Author with id %d was not found.", id))
			return
		}
		response.InternalServerError(c, "Failed to get author.")
		return
	}

	response.OK(c, resp)
}

// Create - POST /api/authors
func (h *AuthorHandler) Create(c *gin.Context) {
	var req author.AuthorRequest
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
		if errors.Is(err, author.ErrDuplicateAuthor) {
			response.Conflict(c, fmt.Sprintf("Author '%s %s' already exists.", req.FirstName, req.LastName))
			return
		}
		response.Error(c, author.ToHTTPStatus(err), "Failed to create author.")
		return
	}

	response.Created(c, fmt.Sprintf("/api/authors/%d", resp.ID), resp)
}

// Update - PUT /api/authors/:id
func (h *AuthorHandler) Update(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		response.NotFound(c, fmt.Sprintf("Author with id %s was not found.", idStr))
		return
	}

	var req author.AuthorRequest
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
		case errors.Is(err, author.ErrAuthorNotFound):
			response.NotFound(c, fmt.Sprintf("Author with id %d was not found.", id))
		case errors.Is(err, author.ErrDuplicateAuthor):
			response.Conflict(c, fmt.Sprintf("Author '%s %s' already exists.", req.FirstName, req.LastName))
		default:
			response.InternalServerError(c, "Failed to update author.")
		}
		return
	}

	response.OK(c, resp)
}

// Delete - DELETE /api/authors/:id
func (h *AuthorHandler) Delete(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		response.NotFound(c, fmt.Sprintf("Author with id %s was not found.", idStr))
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, author.ErrAuthorNotFound) {
			response.NotFound(c, fmt.Sprintf("Author with id %d was not found.", id))
			return
		}
		response.InternalServerError(c, "Failed to delete author.")
		return
	}

	response.NoContent(c)
}
