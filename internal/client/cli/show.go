package cli

import (
	"context"
	"fmt"

	"github.com/akazakov/jobtrack/internal/client/models"
)

// argOrPrompt takes the id from the command arguments, falling back to an
// interactive prompt.
func (a *App) argOrPrompt(args []string, prompt string) (models.ID, error) {
	if len(args) > 0 {
		return models.ID(args[0]), nil
	}
	raw, err := GetSimpleText(a.reader, prompt, a.out)
	if err != nil {
		return "", err
	}
	return models.ID(raw), nil
}

// Show prints one application in full.
func (a *App) Show(ctx context.Context, args []string) error {
	id, err := a.argOrPrompt(args, "Enter record id to show")
	if err != nil {
		return err
	}

	job, err := a.jobs.Get(ctx, id)
	if err != nil {
		if ctx.Err() != nil {
			return nil
		}
		fmt.Fprintln(a.out, userMessage(err))
		return err
	}

	fmt.Fprintf(a.out, "Company:  %s\n", job.Company)
	fmt.Fprintf(a.out, "Role:     %s\n", job.Role)
	fmt.Fprintf(a.out, "Status:   %s\n", job.Status)
	fmt.Fprintf(a.out, "Applied:  %s\n", job.DateApplied)
	if job.Details != "" {
		fmt.Fprintf(a.out, "Details:  %s\n", job.Details)
	}
	return nil
}
