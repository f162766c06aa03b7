package handlers

import (
	"database/sql"

	"donation-backend/internal/gateway"
	"donation-backend/internal/repositories"
	"donation-backend/internal/services"
)

// Handlers carries the collaborators built in main. Services are built per
// request with that request's ID.
type Handlers struct {
	Gateway  gateway.Client
	Verifier services.SignatureVerifier
	Notifier services.Notifier
	Auth     services.AuthService
	OrgName  string
	DB       *sql.DB
}

func (h *Handlers) donations() repositories.DonationRepository {
	return repositories.DonationRepository{DB: h.DB}
}

func (h *Handlers) reports() repositories.ReportedDonationRepository {
	return repositories.ReportedDonationRepository{DB: h.DB}
}

func (h *Handlers) events() repositories.GatewayEventRepository {
	return repositories.GatewayEventRepository{DB: h.DB}
}
