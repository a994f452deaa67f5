package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rubiojr/folio/pkg/config"
	"github.com/rubiojr/folio/pkg/page"
	"github.com/rubiojr/folio/pkg/render"
	"github.com/rubiojr/folio/pkg/search"
	"github.com/urfave/cli/v3"
)

// SearchCommand creates the search command
func SearchCommand() *cli.Command {
	return &cli.Command{
		Name:  "search",
		Usage: "Search books through the search API",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "query",
				Aliases: []string{"q"},
				Usage:   "Search query (empty lists everything)",
			},
			&cli.StringFlag{
				Name:  "category",
				Usage: "Restrict to a category",
			},
			&cli.StringFlag{
				Name:  "author",
				Usage: "Restrict to an author",
			},
			&cli.StringFlag{
				Name:  "published",
				Usage: "Restrict by status: true or false",
			},
			&cli.IntFlag{
				Name:  "page",
				Usage: "Result page forwarded to the API",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			cfg, err := loadSettings(c)
			if err != nil {
				return err
			}

			published := c.String("published")
			if published != "" && published != search.PublishedTrue && published != search.PublishedFalse {
				return fmt.Errorf("--published must be true or false, got %q", published)
			}
			if c.Int("page") < 0 {
				return fmt.Errorf("--page must not be negative")
			}

			params := search.Params{
				Query:     c.String("query"),
				Category:  c.String("category"),
				Author:    c.String("author"),
				Published: published,
				Page:      int(c.Int("page")),
			}
			return searchBooks(ctx, os.Stdout, cfg, params)
		},
	}
}

// SuggestCommand creates the suggest command
func SuggestCommand() *cli.Command {
	return &cli.Command{
		Name:      "suggest",
		Usage:     "Show autocomplete suggestions for some text",
		ArgsUsage: "TEXT",
		Action: func(ctx context.Context, c *cli.Command) error {
			cfg, err := loadSettings(c)
			if err != nil {
				return err
			}
			return suggest(ctx, os.Stdout, cfg, strings.Join(c.Args().Slice(), " "))
		},
	}
}

// FiltersCommand creates the filters command
func FiltersCommand() *cli.Command {
	return &cli.Command{
		Name:  "filters",
		Usage: "List the categories and authors offered by the search API",
		Action: func(ctx context.Context, c *cli.Command) error {
			cfg, err := loadSettings(c)
			if err != nil {
				return err
			}
			return listFilters(ctx, os.Stdout, cfg)
		},
	}
}

// searchBooks runs one search and prints the result cards
func searchBooks(ctx context.Context, w io.Writer, cfg *config.Config, params search.Params) error {
	ctrl := page.NewController(newClient(cfg))
	params = params.Normalize()

	view := ctrl.PerformSearch(ctx, params)
	fmt.Fprint(w, formatResults(view, params))

	if view.State == render.StateError {
		return fmt.Errorf("searching %s failed", cfg.APIURL)
	}
	return nil
}

// suggest prints the suggestions for text; short text prints nothing
func suggest(ctx context.Context, w io.Writer, cfg *config.Config, text string) error {
	ctrl := page.NewController(newClient(cfg))
	fmt.Fprint(w, formatSuggestions(ctrl.HandleInput(ctx, text)))
	return nil
}

// listFilters prints the filter vocabulary
func listFilters(ctx context.Context, w io.Writer, cfg *config.Config) error {
	ctrl := page.NewController(newClient(cfg))

	panel := ctrl.LoadFilters(ctx)
	fmt.Fprint(w, formatFilters(panel))

	if len(panel.Category.Options) == 0 {
		return fmt.Errorf("loading filters from %s failed", cfg.APIURL)
	}
	return nil
}
