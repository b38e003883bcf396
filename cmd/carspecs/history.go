package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/nao1215/carspecs/internal/database"
	"github.com/nao1215/carspecs/internal/model"
	"github.com/nao1215/carspecs/internal/report"
)

// historyHeader is the column layout of the history listing.
var historyHeader = []string{"id", "time", "lookup", "mode", "status", "rows"}

// NewHistoryCmd creates the history command.
func NewHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show lookups recorded with --save",
		Long: `History lists lookups recorded in the history database, newest first.

With --id, the stored table of one lookup is printed again without
fetching the page.

Examples:
  # List all recorded lookups
  carspecs history

  # Only the last 5 lookups of one make
  carspecs history --make honda --limit 5

  # Print the table stored by lookup 3 as Markdown
  carspecs history --id 3 --markdown`,
		Args: cobra.NoArgs,
		RunE: runHistoryCmd,
	}

	cmd.Flags().String("make", "", "Only list lookups of this make")
	cmd.Flags().IntP("limit", "n", 0, "Maximum number of lookups to list (0 lists all)")
	cmd.Flags().Int64("id", 0, "Print the stored result of one lookup")
	cmd.Flags().BoolP("markdown", "m", false, "Print the stored result as Markdown (with --id)")

	return cmd
}

// runHistoryCmd executes the history command.
func runHistoryCmd(cmd *cobra.Command, _ []string) error {
	dbDir, err := cmd.Flags().GetString("db-dir")
	if err != nil {
		return err
	}

	carMake, err := cmd.Flags().GetString("make")
	if err != nil {
		return err
	}

	limit, err := cmd.Flags().GetInt("limit")
	if err != nil {
		return err
	}

	id, err := cmd.Flags().GetInt64("id")
	if err != nil {
		return err
	}

	markdown, err := cmd.Flags().GetBool("markdown")
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	db, err := database.Open(dbDir, database.Options{CreateIfNotExists: false})
	if errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintln(out, "No lookups recorded.")
		return nil
	}
	if err != nil {
		return err
	}
	defer db.Close()

	ctx := cmd.Context()

	if id != 0 {
		rec, err := db.GetLookup(ctx, id)
		if err != nil {
			return err
		}
		return showLookup(out, rec, markdown)
	}

	records, err := db.ListLookups(ctx, database.ListOptions{Make: carMake, Limit: limit})
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Fprintln(out, "No lookups recorded.")
		return nil
	}

	_, err = report.NewSimpleWriter(out).WriteTable(historyTable(records))
	return err
}

// historyTable lays out records as one row each.
func historyTable(records []database.LookupRecord) *model.Table {
	columns := make([][]string, len(historyHeader))
	for _, rec := range records {
		rows := strconv.Itoa(rec.RowCount)
		if !rec.Found {
			rows = "-"
		}
		columns[0] = append(columns[0], strconv.FormatInt(rec.ID, 10))
		columns[1] = append(columns[1], rec.Timestamp.Local().Format(time.DateTime))
		columns[2] = append(columns[2], rec.Request.String())
		columns[3] = append(columns[3], rec.Mode)
		columns[4] = append(columns[4], strconv.Itoa(rec.StatusCode))
		columns[5] = append(columns[5], rows)
	}
	return model.NewTable(historyHeader, columns...)
}

// showLookup prints a stored lookup the way the original run printed it.
func showLookup(out io.Writer, rec *database.LookupRecord, markdown bool) error {
	result := &model.Result{
		Request:    rec.Request,
		Mode:       rec.Request.Mode(),
		URL:        rec.URL,
		StatusCode: rec.StatusCode,
		PageHash:   rec.PageHash,
		Table:      rec.Table,
		LookedUpAt: rec.Timestamp,
	}

	var writer report.Writer = report.NewSimpleWriter(out)
	if markdown {
		writer = report.NewMarkdownWriter(out)
	}

	if !markdown && !result.Found() {
		fmt.Fprintf(out, "Lookup %d (%s) found no data.\n", rec.ID, rec.Request)
		return nil
	}

	_, err := writer.Write(result)
	return err
}
