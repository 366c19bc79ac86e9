package main

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"book_browser/browse"
	"book_browser/catalog"
	"book_browser/lang"
)

type listOptions struct {
	title      string
	author     string
	genre      string
	page       int
	jsonOutput bool
}

func newListCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print one page of the filtered catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, rootFlags, opts)
		},
	}

	cmd.Flags().StringVar(&opts.title, "title", "", "Case-insensitive title substring")
	cmd.Flags().StringVar(&opts.author, "author", catalog.Any, "Author id")
	cmd.Flags().StringVar(&opts.genre, "genre", catalog.Any, "Genre id")
	cmd.Flags().IntVar(&opts.page, "page", 1, "Page to print (1-based)")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func runList(cmd *cobra.Command, rootFlags *rootFlags, opts *listOptions) error {
	if opts.page < 1 {
		return fmt.Errorf("list: --page must be at least 1, got %d", opts.page)
	}

	a, err := rootFlags.load(cmd, false)
	if err != nil {
		return err
	}
	defer a.Close()

	snap := a.session.SubmitFilter(catalog.NewQuery(opts.title, opts.author, opts.genre))
	for snap.Page < opts.page && snap.Remaining > 0 {
		snap = a.session.ShowMore()
	}
	if snap.Page < opts.page {
		// Past the last page: nothing to show, but keep the counters.
		snap.Books = nil
	}

	if opts.jsonOutput {
		return renderListJSON(cmd, a.session.Store(), snap, opts.page)
	}
	return renderListTable(cmd, a.session.Store(), snap)
}

func renderListTable(cmd *cobra.Command, store *catalog.Store, snap browse.Snapshot) error {
	out := cmd.OutOrStdout()
	texts := lang.Active()

	if snap.Empty {
		fmt.Fprintln(out, texts.List.NoResults)
		return nil
	}

	writer := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "ID\tTITLE\tAUTHOR\tYEAR\tGENRES")
	for _, b := range snap.Books {
		fmt.Fprintf(writer, "%s\t%s\t%s\t%s\t%s\n",
			b.ID,
			b.Title,
			store.AuthorName(b.AuthorID),
			yearOrDash(b.Year()),
			genreNames(store, b.GenreIDs),
		)
	}
	if err := writer.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, lang.BookCount(snap.Total-snap.Remaining, snap.Total))
	if snap.Remaining > 0 {
		fmt.Fprintln(out, texts.List.ShowMore+lang.Remaining(snap.Remaining))
	}
	return nil
}

type listJSONBook struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Author      string   `json:"author"`
	AuthorName  string   `json:"author_name"`
	Year        int      `json:"year,omitempty"`
	Genres      []string `json:"genres"`
	Description string   `json:"description,omitempty"`
}

type listJSONPayload struct {
	Page      int            `json:"page"`
	Total     int            `json:"total"`
	Remaining int            `json:"remaining"`
	Books     []listJSONBook `json:"books"`
}

func renderListJSON(cmd *cobra.Command, store *catalog.Store, snap browse.Snapshot, page int) error {
	payload := listJSONPayload{
		Page:      page,
		Total:     snap.Total,
		Remaining: snap.Remaining,
		Books:     make([]listJSONBook, len(snap.Books)),
	}
	for i, b := range snap.Books {
		payload.Books[i] = listJSONBook{
			ID:          b.ID,
			Title:       b.Title,
			Author:      b.AuthorID,
			AuthorName:  store.AuthorName(b.AuthorID),
			Year:        b.Year(),
			Genres:      append([]string{}, b.GenreIDs...),
			Description: b.Description,
		}
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}

func yearOrDash(year int) string {
	if year == 0 {
		return "-"
	}
	return strconv.Itoa(year)
}

func genreNames(store *catalog.Store, ids []string) string {
	names := make([]string, len(ids))
	for i, id := range ids {
		names[i] = store.GenreName(id)
	}
	return strings.Join(names, ", ")
}
