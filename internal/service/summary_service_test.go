package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"fintrack/internal/models"
)

func TestDashboard_AggregatesAllFigures(t *testing.T) {
	accounts := &mockAccountsRepo{total: 1200.5}
	ledger := &mockLedgerRepo{monthIncome: 2500, monthExpense: 430.25}
	history := &mockHistoryRepo{txs: []models.Transaction{
		{ID: 2, AccountID: 1, Description: "card payment", Amount: -30},
		{ID: 1, AccountID: 1, Description: "salary", Amount: 2500},
	}}
	svc := NewSummaryService(accounts, ledger, history)

	now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)
	got, err := svc.Dashboard(context.Background(), 7, now)
	if err != nil {
		t.Fatalf("Dashboard: %v", err)
	}

	if got.TotalBalance != 1200.5 || got.MonthIncome != 2500 || got.MonthExpense != 430.25 {
		t.Fatalf("unexpected figures: %+v", got)
	}
	if len(got.Transactions) != 2 || got.Transactions[0].ID != 2 {
		t.Fatalf("unexpected transactions: %+v", got.Transactions)
	}
	if ledger.lastYear != 2025 || ledger.lastMonth != time.March {
		t.Fatalf("expected calendar month 2025-03, got %d-%v", ledger.lastYear, ledger.lastMonth)
	}
}

func TestDashboard_EmptyMonthReportsZeros(t *testing.T) {
	svc := NewSummaryService(&mockAccountsRepo{}, &mockLedgerRepo{}, &mockHistoryRepo{})

	got, err := svc.Dashboard(context.Background(), 7, time.Now())
	if err != nil {
		t.Fatalf("Dashboard: %v", err)
	}
	if got.MonthIncome != 0 || got.MonthExpense != 0 || got.TotalBalance != 0 {
		t.Fatalf("expected zero figures, got %+v", got)
	}
}

func TestDashboard_PropagatesQueryError(t *testing.T) {
	accounts := &mockAccountsRepo{totalErr: errors.New("down")}
	svc := NewSummaryService(accounts, &mockLedgerRepo{}, &mockHistoryRepo{})

	if _, err := svc.Dashboard(context.Background(), 7, time.Now()); err == nil {
		t.Fatalf("expected error, got nil")
	}
}
