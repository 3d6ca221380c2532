package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

func (c *Client) ListAuthors(ctx context.Context) ([]Author, error) {
	var authors []Author
	if err := c.do(ctx, http.MethodGet, "/api/authors", nil, nil, &authors); err != nil {
		return nil, err
	}
	return authors, nil
}

func (c *Client) GetAuthor(ctx context.Context, id int64) (*Author, error) {
	var a Author
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/authors/%d", id), nil, nil, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

func (c *Client) CreateAuthor(ctx context.Context, req *AuthorRequest) (*Author, error) {
	var a Author
	if err := c.do(ctx, http.MethodPost, "/api/authors", nil, req, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

func (c *Client) UpdateAuthor(ctx context.Context, id int64, req *AuthorRequest) (*Author, error) {
	var a Author
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/authors/%d", id), nil, req, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

func (c *Client) DeleteAuthor(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/authors/%d", id), nil, nil, nil)
}

func (c *Client) ListGenres(ctx context.Context) ([]Genre, error) {
	var genres []Genre
	if err := c.do(ctx, http.MethodGet, "/api/genres", nil, nil, &genres); err != nil {
		return nil, err
	}
	return genres, nil
}

func (c *Client) GetGenre(ctx context.Context, id int64) (*Genre, error) {
	var g Genre
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/genres/%d", id), nil, nil, &g); err != nil {
		return nil, err
	}
	return &g, nil
}

func (c *Client) CreateGenre(ctx context.Context, req *GenreRequest) (*Genre, error) {
	var g Genre
	if err := c.do(ctx, http.MethodPost, "/api/genres", nil, req, &g); err != nil {
		return nil, err
	}
	return &g, nil
}

func (c *Client) UpdateGenre(ctx context.Context, id int64, req *GenreRequest) (*Genre, error) {
	var g Genre
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/genres/%d", id), nil, req, &g); err != nil {
		return nil, err
	}
	return &g, nil
}

func (c *Client) DeleteGenre(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/genres/%d", id), nil, nil, nil)
}

func (c *Client) ListBooks(ctx context.Context, opts BookListOptions) ([]Book, error) {
	query := url.Values{}
	if opts.Search != "" {
		query.Set("search", opts.Search)
	}
	if opts.AuthorID > 0 {
		query.Set("authorId", strconv.FormatInt(opts.AuthorID, 10))
	}
	if opts.GenreID > 0 {
		query.Set("genreId", strconv.FormatInt(opts.GenreID, 10))
	}

	var books []Book
	if err := c.do(ctx, http.MethodGet, "/api/books", query, nil, &books); err != nil {
		return nil, err
	}
	return books, nil
}

func (c *Client) GetBook(ctx context.Context, id int64) (*Book, error) {
	var b Book
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/books/%d", id), nil, nil, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

func (c *Client) CreateBook(ctx context.Context, req *BookRequest) (*Book, error) {
	var b Book
	if err := c.do(ctx, http.MethodPost, "/api/books", nil, req, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

func (c *Client) UpdateBook(ctx context.Context, id int64, req *BookRequest) (*Book, error) {
	var b Book
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/books/%d", id), nil, req, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

func (c *Client) DeleteBook(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/books/%d", id), nil, nil, nil)
}

func (c *Client) Health(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/api/health", nil, nil, nil)
}
