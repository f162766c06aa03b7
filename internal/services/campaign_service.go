package services

import (
	"context"

	"donation-backend/internal/domain"
	"donation-backend/internal/domain/models"
	"donation-backend/internal/repositories"
)

// CampaignService aggregates donations for the public progress widgets.
//
// Gateway-backed donations count only once captured. Self-reported donations
// count in every status, since none of them is ever verified by the gateway.
// Donors are grouped case-insensitively; unnamed records share one
// "anonymous" bucket.
type CampaignService struct {
	Donations repositories.DonationRepository
	Reports   repositories.ReportedDonationRepository
}

type tally struct {
	paise  int64
	donors map[string]struct{}
}

func newTally() *tally {
	return &tally{donors: map[string]struct{}{}}
}

func (t *tally) addDonations(list []models.Donation) {
	for _, d := range list {
		if d.Status != domain.StatusCaptured {
			continue
		}
		t.paise += d.Amount
		t.donors[domain.DonorKey(d.DonorName)] = struct{}{}
	}
}

func (t *tally) addReported(list []models.ReportedDonation) {
	for _, d := range list {
		t.paise += domain.ToSubunits(d.Amount)
		t.donors[domain.DonorKey(d.DonorName)] = struct{}{}
	}
}

func (t *tally) progress() models.CampaignProgress {
	return models.CampaignProgress{
		TotalRaised: domain.FromSubunits(t.paise),
		DonorCount:  len(t.donors),
	}
}

// SummarizeDonations totals captured donations in rupees.
func SummarizeDonations(list []models.Donation) models.CampaignProgress {
	t := newTally()
	t.addDonations(list)
	return t.progress()
}

// SummarizeReported totals self-reported donations in rupees.
func SummarizeReported(list []models.ReportedDonation) models.CampaignProgress {
	t := newTally()
	t.addReported(list)
	return t.progress()
}

// SummarizeAll merges both paths; a donor present in both counts once.
func SummarizeAll(donations []models.Donation, reported []models.ReportedDonation) models.CampaignProgress {
	t := newTally()
	t.addDonations(donations)
	t.addReported(reported)
	return t.progress()
}

func (s CampaignService) GatewayProgress(ctx context.Context) (models.CampaignProgress, error) {
	list, err := s.Donations.ListByStatus(ctx, domain.StatusCaptured)
	if err != nil {
		return models.CampaignProgress{}, domain.InternalError{Msg: "Failed to compute campaign progress", Err: err}
	}
	return SummarizeDonations(list), nil
}

func (s CampaignService) ReportedProgress(ctx context.Context) (models.CampaignProgress, error) {
	list, err := s.Reports.List(ctx)
	if err != nil {
		return models.CampaignProgress{}, domain.InternalError{Msg: "Failed to compute campaign progress", Err: err}
	}
	return SummarizeReported(list), nil
}

func (s CampaignService) CombinedProgress(ctx context.Context) (models.CampaignProgress, error) {
	donations, err := s.Donations.ListByStatus(ctx, domain.StatusCaptured)
	if err != nil {
		return models.CampaignProgress{}, domain.InternalError{Msg: "Failed to compute campaign progress", Err: err}
	}
	reported, err := s.Reports.List(ctx)
	if err != nil {
		return models.CampaignProgress{}, domain.InternalError{Msg: "Failed to compute campaign progress", Err: err}
	}
	return SummarizeAll(donations, reported), nil
}
