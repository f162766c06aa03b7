package services

import (
	"context"
	"regexp"
	"strings"
	"testing"
	"time"

	"donation-backend/internal/domain"
	"donation-backend/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestReportDefaultsMethodAndStatus(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO reported_donations")).
		WithArgs("Raj", 250.0, "other", "reported", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(5, 1))

	svc := ReportService{Repo: repositories.ReportedDonationRepository{DB: db}}
	rec, err := svc.Report(context.Background(), ReportInput{DonorName: " Raj ", Amount: amt(250)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.PaymentMethodIndicated != domain.MethodOther || rec.Status != domain.ReportStatusReported {
		t.Fatalf("unexpected defaults %+v", rec)
	}
	if rec.ID != 5 {
		t.Fatalf("expected id 5, got %d", rec.ID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestReportRejectsBadInput(t *testing.T) {
	db, mock := newMock(t)
	svc := ReportService{Repo: repositories.ReportedDonationRepository{DB: db}}

	cases := []ReportInput{
		{DonorName: "", Amount: amt(100)},
		{DonorName: "   ", Amount: amt(100)},
		{DonorName: "Raj", Amount: amt(0)},
		{DonorName: "Raj", Amount: amt(-3)},
		{DonorName: "Raj"},
		{DonorName: "Raj", Amount: amt(10), PaymentMethodIndicated: "crypto"},
		{DonorName: strings.Repeat("a", 121), Amount: amt(10)},
	}
	for i, in := range cases {
		if _, err := svc.Report(context.Background(), in); !domain.IsValidation(err) {
			t.Fatalf("case %d: expected validation error, got %v", i, err)
		}
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("nothing should be stored: %v", err)
	}
}

func TestSetStatus(t *testing.T) {
	db, mock := newMock(t)
	now := time.Now().UTC()
	cols := []string{"id", "donor_name", "amount", "payment_method_indicated", "status", "reported_at", "created_at", "updated_at"}

	mock.ExpectQuery("FROM reported_donations WHERE id").WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows(cols).AddRow(3, "Raj", 100.0, "upi", "reported", now, now, now))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE reported_donations SET status = ? WHERE id = ?")).
		WithArgs("verified", int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("FROM reported_donations WHERE id").WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows(cols).AddRow(3, "Raj", 100.0, "upi", "verified", now, now, now))

	svc := ReportService{Repo: repositories.ReportedDonationRepository{DB: db}}
	rec, err := svc.SetStatus(context.Background(), 3, "verified")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Status != domain.ReportStatusVerified {
		t.Fatalf("status got %s", rec.Status)
	}

	if _, err := svc.SetStatus(context.Background(), 3, "approved"); !domain.IsValidation(err) {
		t.Fatalf("unknown status should be rejected, got %v", err)
	}
}
