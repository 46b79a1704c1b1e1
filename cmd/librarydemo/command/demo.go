package command

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/AntonStoeckl/library-loans-go/eventstore/memengine"
	"github.com/AntonStoeckl/library-loans-go/eventstore/oteladapters"
	"github.com/AntonStoeckl/library-loans-go/library/core"
	"github.com/AntonStoeckl/library-loans-go/library/loanmanager"
)

func newDemoCommand(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run the scripted library session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDemo(cmd.Context(), flags, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
}

func runDemo(ctx context.Context, flags *rootFlags, out io.Writer, logOut io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := flags.loadConfig()
	if err != nil {
		return err
	}

	level, err := cfg.SlogLevel()
	if err != nil {
		return err
	}

	logger := oteladapters.NewSlogBridgeLoggerWithHandler(slog.NewTextHandler(logOut, &slog.HandlerOptions{Level: level}))

	storeOptions := []memengine.Option{memengine.WithContextualLogger(logger)}

	managerOptions, err := cfg.ManagerOptions()
	if err != nil {
		return err
	}

	view := &presenter{out: out}
	managerOptions = append(managerOptions,
		loanmanager.WithContextualLogger(logger),
		loanmanager.WithObserver(view),
	)

	var tel *telemetry
	if flags.telemetry {
		tel = newTelemetry()
		defer func() { _ = tel.shutdown(context.Background()) }()

		storeOptions = append(storeOptions, memengine.WithMetrics(tel.metrics))
		managerOptions = append(managerOptions, loanmanager.WithMetrics(tel.metrics), loanmanager.WithTracing(tel.tracing))
	}

	store, err := memengine.NewEventStore(storeOptions...)
	if err != nil {
		return err
	}

	manager, err := loanmanager.New(store, managerOptions...)
	if err != nil {
		return err
	}

	view.manager = manager

	if err = walkthrough(ctx, out, manager); err != nil {
		return err
	}

	if tel != nil {
		return tel.printSummary(ctx, out)
	}

	return nil
}

// walkthrough is the scripted session.
func walkthrough(ctx context.Context, out io.Writer, manager *loanmanager.Manager) error {
	fmt.Fprintln(out, "--- Library Loans Demo ---")

	cleanCode := core.NewBook("Clean Code", core.MustIdentifier("978-0321356680"), "Robert C. Martin")
	mockingbird := core.NewBookWithCopies("To Kill a Mockingbird", core.MustIdentifier("978-1509897103"), "Harper Lee", 5)
	journal := core.NewJournal("Journal of Comp Sci", core.MustIdentifier("978-0262510875"), 45, 1)

	for _, item := range []core.CatalogItem{cleanCode, mockingbird, journal} {
		if err := manager.AddItem(ctx, item); err != nil {
			return err
		}
	}

	if err := manager.AddCopies(ctx, mockingbird.Identifier(), 1); err != nil {
		return err
	}

	alice, err := manager.RegisterMember(ctx, "Alice Johnson", core.Student)
	if err != nil {
		return err
	}

	bob, err := manager.RegisterMember(ctx, "Bob Williams", core.Faculty)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "\n--- Initial Item & Member Details ---")
	for _, item := range manager.Items() {
		fmt.Fprintln(out, item.Details())
	}
	for _, member := range manager.Members() {
		fmt.Fprintln(out, member.Details())
	}

	fmt.Fprintln(out, "\n--- Demo 1: Loan & Return ---")

	today := manager.Today()

	// Alice borrowed Clean Code 20 days ago and is 6 days late.
	if _, _, err = manager.LoanItemBetween(ctx, cleanCode, alice, today.AddDate(0, 0, -20), today.AddDate(0, 0, -6)); err != nil {
		return err
	}

	if _, _, err = manager.LoanItem(ctx, cleanCode, bob); err != nil {
		return err
	}

	if _, _, err = manager.LoanItem(ctx, mockingbird, bob); err != nil {
		return err
	}

	if _, err = manager.ReturnItem(ctx, journal); err != nil {
		if !errors.Is(err, core.ErrItemNotFound) {
			return err
		}

		fmt.Fprintf(out, "Handled error: %v\n", err)
	}

	fmt.Fprintln(out, manager.Policy())

	for _, overdue := range manager.OverdueLoans() {
		fmt.Fprintf(out, "Overdue: %s held by %s for %d days, fine so far $%s\n",
			overdue.Loan.ItemID(), overdue.Member.Name(), overdue.DaysOverdue, overdue.AccruedFine.StringFixed(2))
	}

	if _, err = manager.ReturnItem(ctx, cleanCode); err != nil {
		return err
	}

	fmt.Fprintln(out, "\n--- Demo 2: Predicate Search ---")

	results := manager.SearchItems(func(item core.CatalogItem) bool {
		return item.Identifier() == cleanCode.Identifier()
	})

	fmt.Fprintln(out, "Search results for Clean Code:")
	for _, item := range results {
		fmt.Fprintln(out, item.Details())
	}

	fmt.Fprintf(out, "Any title containing \"Comp\": %t\n", manager.MatchesSearch("Comp"))
	fmt.Fprintf(out, "Any title containing \"comp\": %t\n", manager.MatchesSearch("comp"))

	fmt.Fprintln(out, "\n--- Final Loan Status ---")
	for _, loan := range manager.Loans() {
		fmt.Fprintln(out, loan.Details())
	}

	return manager.CheckInvariants()
}
