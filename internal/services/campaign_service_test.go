package services

import (
	"context"
	"regexp"
	"testing"
	"time"

	"donation-backend/internal/domain"
	"donation-backend/internal/domain/models"
	"donation-backend/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestSummarizeDonationsCountsCapturedOnly(t *testing.T) {
	got := SummarizeDonations([]models.Donation{
		{Amount: 10000, Status: domain.StatusCaptured, DonorName: "Raj"},
		{Amount: 20000, Status: domain.StatusCaptured, DonorName: "raj"},
		{Amount: 50000, Status: domain.StatusCreated, DonorName: "Meera"},
		{Amount: 70000, Status: domain.StatusFailed, DonorName: "Kiran"},
	})
	if got.TotalRaised != 300 {
		t.Fatalf("total got %v want 300", got.TotalRaised)
	}
	if got.DonorCount != 1 {
		t.Fatalf("Raj and raj are one donor, got %d", got.DonorCount)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	got := SummarizeDonations(nil)
	if got.TotalRaised != 0 || got.DonorCount != 0 {
		t.Fatalf("empty input should give zeros, got %+v", got)
	}
}

func TestSummarizeReportedCountsEveryStatus(t *testing.T) {
	got := SummarizeReported([]models.ReportedDonation{
		{DonorName: "Asha", Amount: 100.5, Status: domain.ReportStatusReported},
		{DonorName: "", Amount: 50, Status: domain.ReportStatusVerified},
		{DonorName: "  ", Amount: 25, Status: domain.ReportStatusPendingVerification},
	})
	if got.TotalRaised != 175.5 {
		t.Fatalf("total got %v want 175.5", got.TotalRaised)
	}
	if got.DonorCount != 2 {
		t.Fatalf("unnamed donors share one bucket, got %d", got.DonorCount)
	}
}

func TestSummarizeAllMergesDonors(t *testing.T) {
	got := SummarizeAll(
		[]models.Donation{{Amount: 60000, Status: domain.StatusCaptured, DonorName: "Raj"}},
		[]models.ReportedDonation{{DonorName: "RAJ", Amount: 400}, {DonorName: "Meera", Amount: 1}},
	)
	if got.TotalRaised != 1001 {
		t.Fatalf("total got %v want 1001", got.TotalRaised)
	}
	if got.DonorCount != 2 {
		t.Fatalf("donor count got %d want 2", got.DonorCount)
	}
}

func TestGatewayProgressQueriesCaptured(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectQuery(regexp.QuoteMeta("FROM donations WHERE status = ?")).
		WithArgs("captured").
		WillReturnRows(donationRows(
			rowSpec{orderID: "order_1", status: "captured", donor: "Raj", amount: 10000},
			rowSpec{orderID: "order_2", status: "captured", donor: "raj", amount: 20000},
		))

	svc := CampaignService{Donations: repositories.DonationRepository{DB: db}}
	got, err := svc.GatewayProgress(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.TotalRaised != 300 || got.DonorCount != 1 {
		t.Fatalf("unexpected progress %+v", got)
	}
}

func TestReportedProgressFromStore(t *testing.T) {
	db, mock := newMock(t)
	now := time.Now().UTC()
	mock.ExpectQuery("FROM reported_donations").
		WillReturnRows(sqlmock.NewRows([]string{"id", "donor_name", "amount", "payment_method_indicated", "status", "reported_at", "created_at", "updated_at"}).
			AddRow(1, "Asha", 500.0, "upi", "reported", now, now, now).
			AddRow(2, "asha", 250.0, "other", "verified", now, now, now))

	svc := CampaignService{Reports: repositories.ReportedDonationRepository{DB: db}}
	got, err := svc.ReportedProgress(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.TotalRaised != 750 || got.DonorCount != 1 {
		t.Fatalf("unexpected progress %+v", got)
	}
}
