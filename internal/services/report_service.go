package services

import (
	"context"
	"fmt"

	"donation-backend/internal/domain"
	"donation-backend/internal/domain/models"
	"donation-backend/internal/repositories"
	"donation-backend/internal/utils"
)

const maxDonorNameLen = 120

// ReportService records out-of-band donations on the donor's word.
type ReportService struct {
	Repo      repositories.ReportedDonationRepository
	RequestID string
}

type ReportInput struct {
	DonorName              string
	Amount                 *float64 // rupees
	PaymentMethodIndicated string
}

func (s ReportService) Report(ctx context.Context, in ReportInput) (models.ReportedDonation, error) {
	name := utils.NormalizeSpace(in.DonorName)
	if name == "" {
		return models.ReportedDonation{}, domain.ValidationError{Field: "donorName", Msg: "is required"}
	}
	if len([]rune(name)) > maxDonorNameLen {
		return models.ReportedDonation{}, domain.ValidationError{Field: "donorName", Msg: fmt.Sprintf("must be at most %d characters", maxDonorNameLen)}
	}
	amount, err := domain.ValidateReportedAmount(in.Amount)
	if err != nil {
		return models.ReportedDonation{}, err
	}
	method, err := domain.ParsePaymentMethod(in.PaymentMethodIndicated)
	if err != nil {
		return models.ReportedDonation{}, err
	}

	rec, err := s.Repo.Create(ctx, models.ReportedDonation{
		DonorName:              name,
		Amount:                 amount,
		PaymentMethodIndicated: method,
		Status:                 domain.ReportStatusReported,
	})
	if err != nil {
		return models.ReportedDonation{}, domain.InternalError{Msg: "Failed to record donation", Err: err}
	}
	utils.LogEvent(s.RequestID, "report", "create", utils.KV("id", rec.ID, "method", rec.PaymentMethodIndicated))
	return rec, nil
}

func (s ReportService) List(ctx context.Context) ([]models.ReportedDonation, error) {
	list, err := s.Repo.List(ctx)
	if err != nil {
		return nil, domain.InternalError{Msg: "Failed to list reported donations", Err: err}
	}
	return list, nil
}

// SetStatus is the manual review step; nothing in the system calls it on its own.
func (s ReportService) SetStatus(ctx context.Context, id int64, raw string) (models.ReportedDonation, error) {
	if id <= 0 {
		return models.ReportedDonation{}, domain.ValidationError{Field: "id", Msg: "is invalid"}
	}
	status := domain.ReportStatus(raw)
	if !status.Valid() {
		return models.ReportedDonation{}, domain.ValidationError{Field: "status", Msg: "must be one of reported, pending_verification, verified"}
	}

	if _, err := s.Repo.FindByID(ctx, id); err != nil {
		return models.ReportedDonation{}, err
	}
	if err := s.Repo.UpdateStatus(ctx, id, status); err != nil {
		return models.ReportedDonation{}, domain.InternalError{Msg: "Failed to update reported donation", Err: err}
	}
	rec, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		return models.ReportedDonation{}, err
	}
	utils.LogEvent(s.RequestID, "report", "set_status", utils.KV("id", id, "status", status))
	return rec, nil
}
