package service

import (
	"database/sql"
	"testing"

	"github.com/alexanderramin/milkround/internal/catalog"
	"github.com/alexanderramin/milkround/internal/repository"
	"github.com/alexanderramin/milkround/internal/testutil"
)

type testEnv struct {
	db        *sql.DB
	catalog   *catalog.Catalog
	schedules *repository.SQLiteScheduleRepo
	overrides *repository.SQLiteOverrideRepo
	payments  *repository.SQLitePaymentRepo
	customers *repository.SQLiteCustomerRepo

	scheduleSvc ScheduleService
	overrideSvc OverrideService
	daySvc      DayService
	ledgerSvc   LedgerService
	customerSvc CustomerService
}

func newTestEnv(t *testing.T, observers ...UseCaseObserver) *testEnv {
	t.Helper()
	database := testutil.NewTestDB(t)
	cat := testutil.NewTestCatalog()
	uow := testutil.NewTestUoW(database)

	env := &testEnv{
		db:        database,
		catalog:   cat,
		schedules: repository.NewSQLiteScheduleRepo(database),
		overrides: repository.NewSQLiteOverrideRepo(database),
		payments:  repository.NewSQLitePaymentRepo(database),
		customers: repository.NewSQLiteCustomerRepo(database),
	}
	env.scheduleSvc = NewScheduleService(env.schedules, cat, uow, observers...)
	env.overrideSvc = NewOverrideService(env.overrides, cat, uow, observers...)
	env.daySvc = NewDayService(env.schedules, env.overrides, cat, observers...)
	env.ledgerSvc = NewLedgerService(env.payments, env.schedules, env.overrides, env.customers, cat, observers...)
	env.customerSvc = NewCustomerService(env.customers, observers...)
	return env
}
