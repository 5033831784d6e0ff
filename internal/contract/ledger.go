package contract

import "github.com/alexanderramin/milkround/internal/app"

type StatementRequest = app.StatementRequest

type MonthStatement = app.MonthStatement

type StatementResponse = app.StatementResponse
