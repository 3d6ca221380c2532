// Command libraryctl is a small operator CLI for the library catalog
// API, built on pkg/client.
//
// Usage:
//
//	libraryctl [-addr URL] <resource> <action> [flags]
//
// Resources: authors, genres, books. Actions: list, get, create,
// update, delete.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"library-backend/pkg/client"
)

func main() {
	addr := flag.String("addr", envOr("LIBRARY_API_ADDR", "http://localhost:8080"), "API base URL")
	timeout := flag.Duration("timeout", 30*time.Second, "request timeout")
	flag.Parse()

	args := flag.Args()
	if len(args) < 2 {
		usage()
		os.Exit(2)
	}

	c := client.New(*addr)
	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	resource, action := args[0], args[1]
	rest := args[2:]

	var err error
	switch resource {
	case "authors":
		err = runAuthors(ctx, c, action, rest)
	case "genres":
		err = runGenres(ctx, c, action, rest)
	case "books":
		err = runBooks(ctx, c, action, rest)
	default:
		usage()
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func runAuthors(ctx context.Context, c *client.Client, action string, args []string) error {
	switch action {
	case "list":
		authors, err := c.ListAuthors(ctx)
		if err != nil {
			return err
		}
		return printJSON(authors)
	case "get":
		id, err := idArg(args)
		if err != nil {
			return err
		}
		a, err := c.GetAuthor(ctx, id)
		if err != nil {
			return err
		}
		return printJSON(a)
	case "create", "update":
		fs := flag.NewFlagSet("authors "+action, flag.ExitOnError)
		firstName := fs.String("first-name", "", "author first name")
		lastName := fs.String("last-name", "", "author last name")
		birthDate := fs.String("birth-date", "", "birth date (yyyy-MM-dd)")
		country := fs.String("country", "", "author country")
		id, args, err := splitUpdateID(action, args)
		if err != nil {
			return err
		}
		if err := fs.Parse(args); err != nil {
			return err
		}

		req := &client.AuthorRequest{
			FirstName: *firstName,
			LastName:  *lastName,
			BirthDate: *birthDate,
			Country:   optional(*country),
		}
		if action == "create" {
			a, err := c.CreateAuthor(ctx, req)
			if err != nil {
				return err
			}
			return printJSON(a)
		}
		a, err := c.UpdateAuthor(ctx, id, req)
		if err != nil {
			return err
		}
		return printJSON(a)
	case "delete":
		id, err := idArg(args)
		if err != nil {
			return err
		}
		if err := c.DeleteAuthor(ctx, id); err != nil {
			return err
		}
		fmt.Printf("Author %d deleted.\n", id)
		return nil
	default:
		return fmt.Errorf("unknown authors action %q", action)
	}
}

func runGenres(ctx context.Context, c *client.Client, action string, args []string) error {
	switch action {
	case "list":
		genres, err := c.ListGenres(ctx)
		if err != nil {
			return err
		}
		return printJSON(genres)
	case "get":
		id, err := idArg(args)
		if err != nil {
			return err
		}
		g, err := c.GetGenre(ctx, id)
		if err != nil {
			return err
		}
		return printJSON(g)
	case "create", "update":
		fs := flag.NewFlagSet("genres "+action, flag.ExitOnError)
		name := fs.String("name", "", "genre name")
		description := fs.String("description", "", "genre description")
		id, args, err := splitUpdateID(action, args)
		if err != nil {
			return err
		}
		if err := fs.Parse(args); err != nil {
			return err
		}

		req := &client.GenreRequest{
			Name:        *name,
			Description: optional(*description),
		}
		if action == "create" {
			g, err := c.CreateGenre(ctx, req)
			if err != nil {
				return err
			}
			return printJSON(g)
		}
		g, err := c.UpdateGenre(ctx, id, req)
		if err != nil {
			return err
		}
		return printJSON(g)
	case "delete":
		id, err := idArg(args)
		if err != nil {
			return err
		}
		if err := c.DeleteGenre(ctx, id); err != nil {
			return err
		}
		fmt.Printf("Genre %d deleted.\n", id)
		return nil
	default:
		return fmt.Errorf("unknown genres action %q", action)
	}
}

func runBooks(ctx context.Context, c *client.Client, action string, args []string) error {
	switch action {
	case "list":
		fs := flag.NewFlagSet("books list", flag.ExitOnError)
		search := fs.String("search", "", "title substring filter")
		authorID := fs.Int64("author-id", 0, "filter by author id")
		genreID := fs.Int64("genre-id", 0, "filter by genre id")
		if err := fs.Parse(args); err != nil {
			return err
		}

		books, err := c.ListBooks(ctx, client.BookListOptions{
			Search:   *search,
			AuthorID: *authorID,
			GenreID:  *genreID,
		})
		if err != nil {
			return err
		}
		return printJSON(books)
	case "get":
		id, err := idArg(args)
		if err != nil {
			return err
		}
		b, err := c.GetBook(ctx, id)
		if err != nil {
			return err
		}
		return printJSON(b)
	case "create", "update":
		fs := flag.NewFlagSet("books "+action, flag.ExitOnError)
		title := fs.String("title", "", "book title")
		isbn := fs.String("isbn", "", "ISBN (digits only)")
		publishYear := fs.Int("publish-year", 0, "publish year")
		quantity := fs.Int("quantity", 0, "quantity in stock")
		authorIDs := fs.String("author-ids", "", "comma-separated author ids")
		genreIDs := fs.String("genre-ids", "", "comma-separated genre ids")
		id, args, err := splitUpdateID(action, args)
		if err != nil {
			return err
		}
		if err := fs.Parse(args); err != nil {
			return err
		}

		aIDs, err := parseIDList(*authorIDs)
		if err != nil {
			return fmt.Errorf("invalid -author-ids: %w", err)
		}
		gIDs, err := parseIDList(*genreIDs)
		if err != nil {
			return fmt.Errorf("invalid -genre-ids: %w", err)
		}

		req := &client.BookRequest{
			Title:           *title,
			ISBN:            *isbn,
			PublishYear:     *publishYear,
			QuantityInStock: *quantity,
			AuthorIDs:       aIDs,
			GenreIDs:        gIDs,
		}
		if action == "create" {
			b, err := c.CreateBook(ctx, req)
			if err != nil {
				return err
			}
			return printJSON(b)
		}
		b, err := c.UpdateBook(ctx, id, req)
		if err != nil {
			return err
		}
		return printJSON(b)
	case "delete":
		id, err := idArg(args)
		if err != nil {
			return err
		}
		if err := c.DeleteBook(ctx, id); err != nil {
			return err
		}
		fmt.Printf("Book %d deleted.\n", id)
		return nil
	default:
		return fmt.Errorf("unknown books action %q", action)
	}
}

// splitUpdateID takes the leading positional id off the args for
// update actions; create has no id.
func splitUpdateID(action string, args []string) (int64, []string, error) {
	if action != "update" {
		return 0, args, nil
	}
	id, err := idArg(args)
	if err != nil {
		return 0, nil, err
	}
	return id, args[1:], nil
}

func idArg(args []string) (int64, error) {
	if len(args) == 0 {
		return 0, fmt.Errorf("missing id argument")
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", args[0])
	}
	return id, nil
}

func parseIDList(raw string) ([]int64, error) {
	if raw == "" {
		return nil, nil
	}
	parts := strings.Split(raw, ",")
	ids := make([]int64, 0, len(parts))
	for _, part := range parts {
		id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid id %q", part)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func usage() {
	fmt.Fprintln(os.Stderr, `Usage: libraryctl [-addr URL] <resource> <action> [flags]

Resources and actions:
  authors  list | get <id> | create [flags] | update <id> [flags] | delete <id>
  genres   list | get <id> | create [flags] | update <id> [flags] | delete <id>
  books    list [flags] | get <id> | create [flags] | update <id> [flags] | delete <id>

Run "libraryctl <resource> <action> -h" for action flags.`)
}
