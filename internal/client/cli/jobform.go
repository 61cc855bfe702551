package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/akazakov/jobtrack/internal/client/models"
)

// promptForm walks the user through the job form. Each field shows its
// seeded value as the default; an empty answer keeps it.
func (a *App) promptForm(seed models.JobForm) (models.JobForm, error) {
	var f models.JobForm
	var err error

	if f.Company, err = GetTextWithDefault(a.reader, "Company", seed.Company, a.out); err != nil {
		return f, err
	}
	if f.Role, err = GetTextWithDefault(a.reader, "Role", seed.Role, a.out); err != nil {
		return f, err
	}

	options := make([]string, len(models.StatusOptions))
	for i, s := range models.StatusOptions {
		options[i] = string(s)
	}
	status, err := GetTextWithDefault(a.reader,
		fmt.Sprintf("Status (%s)", strings.Join(options, " | ")), string(seed.Status), a.out)
	if err != nil {
		return f, err
	}
	f.Status = models.Status(status)

	if f.DateApplied, err = GetTextWithDefault(a.reader, "Date applied (yyyy-mm-dd)", seed.DateApplied, a.out); err != nil {
		return f, err
	}
	if f.Details, err = GetTextWithDefault(a.reader, "Details", seed.Details, a.out); err != nil {
		return f, err
	}
	return f, nil
}

// Add creates a new application. The date defaults to today and the
// status to Applied.
func (a *App) Add(ctx context.Context) error {
	seed := models.JobForm{Status: models.StatusApplied, DateApplied: models.Today()}
	form, err := a.promptForm(seed)
	if err != nil {
		return err
	}

	job, err := a.jobs.Create(ctx, form)
	if err != nil {
		if ctx.Err() != nil {
			return nil
		}
		fmt.Fprintln(a.out, userMessage(err))
		return err
	}
	fmt.Fprintf(a.out, "Added %s at %s (id %s)\n", job.Role, job.Company, job.ID)
	return nil
}

// Edit updates an existing application. When the record is already in
// the displayed list the form is seeded from memory with no round trip;
// otherwise it is fetched by id first.
func (a *App) Edit(ctx context.Context, args []string) error {
	id, err := a.argOrPrompt(args, "Enter record id to edit")
	if err != nil {
		return err
	}

	var seed models.JobForm
	if job, ok := a.listView.Find(id); ok {
		seed = models.FormFromJob(job)
	} else {
		job, err := a.jobs.Get(ctx, id)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			fmt.Fprintln(a.out, userMessage(err))
			return err
		}
		seed = models.FormFromJob(job)
	}

	form, err := a.promptForm(seed)
	if err != nil {
		return err
	}

	job, err := a.jobs.Update(ctx, id, form)
	if err != nil {
		if ctx.Err() != nil {
			return nil
		}
		fmt.Fprintln(a.out, userMessage(err))
		return err
	}
	fmt.Fprintf(a.out, "Updated %s at %s\n", job.Role, job.Company)
	return nil
}
