package cli

import (
	"context"
	"fmt"
)

// Delete removes an application. The row leaves the displayed list
// before the round trip; a failed delete surfaces an error but does not
// bring the row back.
func (a *App) Delete(ctx context.Context, args []string) error {
	id, err := a.argOrPrompt(args, "Enter record id to delete")
	if err != nil {
		return err
	}

	a.listView.RemoveRow(id)

	if err := a.jobs.Delete(ctx, id); err != nil {
		if ctx.Err() != nil {
			return nil
		}
		fmt.Fprintln(a.out, userMessage(err))
		return err
	}
	fmt.Fprintln(a.out, "Deleted.")
	return nil
}
