package handler

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"library-backend/internal/domains/book"
	"library-backend/internal/shared/response"
)

type BookHandler struct {
	service book.Service
}

func NewBookHandler(svc book.Service) *BookHandler {
	return &BookHandler{service: svc}
}

// List - GET /api/books?search=&authorId=&genreId=
func (h *BookHandler) List(c *gin.Context) {
	filter, err := parseFilter(c)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	books, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.InternalServerError(c, "Failed to list books.")
		return
	}

	response.OK(c, books)
}

// GetByID - GET /api/books/:id
func (h *BookHandler) GetByID(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		response.NotFound(c, fmt.Sprintf("Book with id %s was not found.", idStr))
		return
	}

	resp, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, book.ErrBookNotFound) {
			response.NotFound(c, fmt.Sprintf("Book with id %d was not found.", id))
			return
		}
		response.InternalServerError(c, "Failed to get book.")
		return
	}

	response.OK(c, resp)
}

// Create - POST /api/books
func (h *BookHandler) Create(c *gin.Context) {
	var req book.BookRequest
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
		h.writeMutationError(c, &req, err, "Failed to create book.")
		return
	}

	response.Created(c, fmt.Sprintf("/api/books/%d", resp.ID), resp)
}

// Update - PUT /api/books/:id
func (h *BookHandler) Update(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		response.NotFound(c, fmt.Sprintf("Book with id %s was not found.", idStr))
		return
	}

	var req book.BookRequest
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
		if errors.Is(err, book.ErrBookNotFound) {
			response.NotFound(c, fmt.Sprintf("Book with id %d was not found.", id))
			return
		}
		h.writeMutationError(c, &req, err, "Failed to update book.")
		return
	}

	response.OK(c, resp)
}

// Delete - DELETE /api/books/:id
func (h *BookHandler) Delete(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		response.NotFound(c, fmt.Sprintf("Book with id %s was not found.", idStr))
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, book.ErrBookNotFound) {
			response.NotFound(c, fmt.Sprintf("Book with id %d was not found.", id))
			return
		}
		response.InternalServerError(c, "Failed to delete book.")
		return
	}

	response.NoContent(c)
}

func (h *BookHandler) writeMutationError(c *gin.Context, req *book.BookRequest, err error, fallback string) {
	switch {
	case errors.Is(err, book.ErrAuthorRefMissing):
		response.BadRequest(c, "One or more author ids do not exist.")
	case errors.Is(err, book.ErrGenreRefMissing):
		response.BadRequest(c, "One or more genre ids do not exist.")
	case errors.Is(err, book.ErrDuplicateISBN):
		response.Conflict(c, fmt.Sprintf("Book with ISBN '%s' already exists.", req.ISBN))
	default:
		response.Error(c, book.ToHTTPStatus(err), fallback)
	}
}

// parseFilter reads the list query parameters. The id filters must be
// positive integers when present; search is trimmed before matching.
func parseFilter(c *gin.Context) (book.Filter, error) {
	filter := book.Filter{Search: strings.TrimSpace(c.Query("search"))}

	if raw := c.Query("authorId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			return book.Filter{}, errors.New("authorId must be greater than zero.")
		}
		filter.AuthorID = id
	}

	if raw := c.Query("genreId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			return book.Filter{}, errors.New("genreId must be greater than zero.")
		}
		filter.GenreID = id
	}

	return filter, nil
}
