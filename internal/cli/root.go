package cli

import (
	"time"

	"github.com/alexanderramin/milkround/internal/catalog"
	"github.com/alexanderramin/milkround/internal/config"
	"github.com/alexanderramin/milkround/internal/domain"
	"github.com/alexanderramin/milkround/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Catalog *catalog.Catalog
	Config  config.Config

	Schedule  service.ScheduleService
	Overrides service.OverrideService
	Days      service.DayService
	Ledger    service.LedgerService
	Customers service.CustomerService

	// IsInteractive reports whether stdin is a terminal. Interactive
	// editors refuse to start when it returns false. Nil means false.
	IsInteractive func() bool

	// Now is the clock used for "today". Nil means time.Now.
	Now func() time.Time
}

func (a *App) today() domain.Date {
	if a.Now != nil {
		return domain.DateOf(a.Now())
	}
	return domain.DateOf(time.Now())
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) stepLiters() float64 {
	if a.Config.StepLiters > 0 {
		return a.Config.StepLiters
	}
	return config.DefaultConfig().StepLiters
}

func (a *App) historyDays() int {
	if a.Config.HistoryDays > 0 {
		return a.Config.HistoryDays
	}
	return config.DefaultConfig().HistoryDays
}

// NewRootCmd creates the top-level "milkround" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "milkround",
		Short:         "Milk delivery planner: standing order, daily changes and dues",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newCatalogCmd(app),
		newPlanCmd(app),
		newDayCmd(app),
		newSkipCmd(app),
		newAdjustCmd(app),
		newResetCmd(app),
		newHistoryCmd(app),
		newOrderCmd(app),
		newPayCmd(app),
		newPaymentsCmd(app),
		newStatementCmd(app),
		newProfileCmd(app),
	)

	return root
}
