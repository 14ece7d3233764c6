package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/sponsor-tracker/backend/config"
	"github.com/sponsor-tracker/backend/internal/application/adapter"
	"github.com/sponsor-tracker/backend/internal/application/usecase/calendar"
	"github.com/sponsor-tracker/backend/internal/application/usecase/renewal"
	"github.com/sponsor-tracker/backend/internal/domain/valueobject"
	"github.com/sponsor-tracker/backend/internal/infra/db"
	"github.com/sponsor-tracker/backend/internal/infra/dependency"
)

// newRootCmd builds the command tree. The clock decides what "today" means.
func newRootCmd(cfg *config.Config, clock adapter.Clock) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "sponsorctl",
		Short:         "Fiscal calendar and renewal tooling for the sponsor tracker",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		newFiscalYearCmd(cfg, clock),
		newRenewalDateCmd(),
		newOptionsCmd(cfg, clock),
		newRemindersCmd(cfg, clock),
	)
	return rootCmd
}

func newFiscalYearCmd(cfg *config.Config, clock adapter.Clock) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "fiscal-year",
		Short: "Print the fiscal year containing a date (default today)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			input := calendar.GetFiscalYearInput{}
			if date != "" {
				parsed, err := valueobject.ParseDate(date)
				if err != nil {
					return err
				}
				input.Date = &parsed
			}

			uc := calendar.NewGetFiscalYearUseCase(clock, cfg.Fiscal.YearsBack, cfg.Fiscal.YearsForward)
			output, err := uc.Execute(cmd.Context(), input)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s (%s to %s)\n",
				output.FiscalYear,
				valueobject.FormatDate(output.StartDate),
				valueobject.FormatDate(output.EndDate),
			)
			return nil
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "Date as YYYY-MM-DD")
	return cmd
}

func newRenewalDateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "renewal-date <payment-date>",
		Short: "Print the renewal date of a payment made on YYYY-MM-DD",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output, err := calendar.NewCalculateRenewalDateUseCase().Execute(cmd.Context(), calendar.CalculateRenewalDateInput{
				PaymentDate: args[0],
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), valueobject.FormatDate(output.RenewalDate))
			return nil
		},
	}
}

func newOptionsCmd(cfg *config.Config, clock adapter.Clock) *cobra.Command {
	var back, forward int

	cmd := &cobra.Command{
		Use:   "options",
		Short: "List the selectable fiscal years around today",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			current := valueobject.CurrentFiscalYear(clock.Now())
			for _, fy := range valueobject.FiscalYearOptions(back, forward, clock.Now()) {
				if fy == current {
					fmt.Fprintf(out, "%s *\n", fy)
					continue
				}
				fmt.Fprintln(out, fy)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&back, "back", cfg.Fiscal.YearsBack, "Past fiscal years to list")
	cmd.Flags().IntVar(&forward, "forward", cfg.Fiscal.YearsForward, "Future fiscal years to list")
	return cmd
}

func newRemindersCmd(cfg *config.Config, clock adapter.Clock) *cobra.Command {
	var includeLapsed, dryRun, send bool

	cmd := &cobra.Command{
		Use:   "reminders",
		Short: "Queue renewal reminders for urgent sponsorships",
		Long: `Queues a renewal reminder for every urgent sponsorship that has not been
reminded yet. With --include-lapsed, lapsed sponsors also get a follow-up.
With --send, due emails are delivered right away instead of waiting for the API worker.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			database, err := db.NewPostgresConnection(&cfg.Database)
			if err != nil {
				return err
			}
			defer database.Close()

			if err := database.Migrate(); err != nil {
				return err
			}

			injector, err := dependency.NewInjector(cfg, database.DB(), dependency.Options{Clock: clock})
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
			defer cancel()

			output, err := injector.QueueReminders.Execute(ctx, renewal.QueueRemindersInput{
				IncludeLapsed: includeLapsed,
				DryRun:        dryRun,
			})
			if err != nil {
				return err
			}
			printReminders(cmd.OutOrStdout(), output, dryRun)

			if send && !dryRun {
				injector.EmailWorker.ProcessNow(ctx)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&includeLapsed, "include-lapsed", false, "Also queue follow-ups for lapsed sponsorships")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show what would be queued without queueing")
	cmd.Flags().BoolVar(&send, "send", false, "Deliver queued emails before exiting")
	return cmd
}

func printReminders(out io.Writer, output *renewal.QueueRemindersOutput, dryRun bool) {
	verb := "queued"
	if dryRun {
		verb = "would queue"
	}

	for _, q := range output.Queued {
		fmt.Fprintf(out, "%s %s for %s <%s> (%d days)\n", verb, q.Template, q.OrganizationName, q.ContactEmail, q.DaysRemaining)
	}
	for _, s := range output.Skipped {
		fmt.Fprintf(out, "skipped %s\n", s)
	}
	for _, w := range output.Warnings {
		fmt.Fprintf(out, "warning %s\n", w)
	}
	fmt.Fprintf(out, "%d %s, %d skipped as of %s\n", len(output.Queued), verb, len(output.Skipped), valueobject.FormatDate(output.Today))
}
