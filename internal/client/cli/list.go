package cli

import (
	"context"
	"flag"
	"fmt"
	"text/tabwriter"

	"github.com/akazakov/jobtrack/internal/client/client"
	"github.com/akazakov/jobtrack/internal/client/models"
)

// List fetches and renders the jobs list. Flags:
//
//	-q <text>       free-text search
//	-status <s>     Applied | Interviewed | Rejected
//	-order <o>      asc | desc (default desc, newest first)
func (a *App) List(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	fs.SetOutput(a.out)
	search := fs.String("q", "", "free-text search")
	status := fs.String("status", "", "filter by status")
	order := fs.String("order", "", "dateApplied sort direction")
	if err := fs.Parse(args); err != nil {
		return nil
	}

	if *status != "" && !models.Status(*status).Valid() {
		fmt.Fprintln(a.out, "Status is invalid.")
		return nil
	}
	if *order != "" && *order != string(client.OrderAsc) && *order != string(client.OrderDesc) {
		fmt.Fprintln(a.out, "Order must be asc or desc.")
		return nil
	}

	q := client.JobQuery{
		Search: *search,
		Status: models.Status(*status),
		Order:  client.SortOrder(*order),
	}

	if err := a.listView.Refresh(ctx, q); err != nil {
		if ctx.Err() != nil {
			return nil
		}
	}
	a.renderList()
	return nil
}

func (a *App) renderList() {
	state, message := a.listView.State()
	switch state {
	case StateError:
		fmt.Fprintln(a.out, message)
	case StateSuccess:
		rows := a.listView.Rows()
		if len(rows) == 0 {
			fmt.Fprintln(a.out, "No applications found.")
			return
		}
		tw := tabwriter.NewWriter(a.out, 2, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tCOMPANY\tROLE\tSTATUS\tAPPLIED")
		for _, j := range rows {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", j.ID, j.Company, j.Role, j.Status, j.DateApplied)
		}
		_ = tw.Flush()
	}
}
