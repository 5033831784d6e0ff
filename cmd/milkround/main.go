package main

import (
	"fmt"
	"os"
	"time"

	"github.com/alexanderramin/milkround/internal/catalog"
	"github.com/alexanderramin/milkround/internal/cli"
	"github.com/alexanderramin/milkround/internal/config"
	"github.com/alexanderramin/milkround/internal/db"
	"github.com/alexanderramin/milkround/internal/repository"
	"github.com/alexanderramin/milkround/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		return err
	}

	// Open database
	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	scheduleRepo := repository.NewSQLiteScheduleRepo(database)
	overrideRepo := repository.NewSQLiteOverrideRepo(database)
	paymentRepo := repository.NewSQLitePaymentRepo(database)
	customerRepo := repository.NewSQLiteCustomerRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)

	var observers []service.UseCaseObserver
	if cfg.LogUseCases {
		observers = append(observers, service.NewLogUseCaseObserver(os.Stderr))
	}

	app := &cli.App{
		Catalog:   cat,
		Config:    cfg,
		Schedule:  service.NewScheduleService(scheduleRepo, cat, uow, observers...),
		Overrides: service.NewOverrideService(overrideRepo, cat, uow, observers...),
		Days:      service.NewDayService(scheduleRepo, overrideRepo, cat, observers...),
		Ledger:    service.NewLedgerService(paymentRepo, scheduleRepo, overrideRepo, customerRepo, cat, observers...),
		Customers: service.NewCustomerService(customerRepo, observers...),
		Now:       time.Now,
	}

	// Interactive editors need a real terminal on stdin.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
