package repositories

import (
	"context"
	"database/sql"
	"errors"

	intconfig "donation-backend/internal/config"
	"donation-backend/internal/domain"
	"donation-backend/internal/domain/models"
	"donation-backend/internal/utils"
)

const reportedColumns = `id, donor_name, amount, payment_method_indicated, status, reported_at, created_at, updated_at`

type ReportedDonationRepository struct {
	DB *sql.DB
}

func (r ReportedDonationRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func scanReported(row rowScanner) (models.ReportedDonation, error) {
	var d models.ReportedDonation
	var method, status string
	err := row.Scan(&d.ID, &d.DonorName, &d.Amount, &method, &status, &d.ReportedAt, &d.CreatedAt, &d.UpdatedAt)
	d.PaymentMethodIndicated = domain.PaymentMethod(method)
	d.Status = domain.ReportStatus(status)
	return d, err
}

func (r ReportedDonationRepository) Create(ctx context.Context, d models.ReportedDonation) (models.ReportedDonation, error) {
	db := r.db()
	if db == nil {
		return models.ReportedDonation{}, domain.InternalError{Msg: "database not connected"}
	}
	now := utils.NowUTC()
	if d.ReportedAt.IsZero() {
		d.ReportedAt = now
	}

	res, err := db.ExecContext(ctx, `
		INSERT INTO reported_donations (donor_name, amount, payment_method_indicated, status, reported_at)
		VALUES (?, ?, ?, ?, ?)`,
		d.DonorName, d.Amount, string(d.PaymentMethodIndicated), string(d.Status), d.ReportedAt,
	)
	if err != nil {
		return models.ReportedDonation{}, err
	}
	if id, err := res.LastInsertId(); err == nil {
		d.ID = id
	}
	d.CreatedAt = now
	d.UpdatedAt = now
	return d, nil
}

// List returns every self-reported donation, most recent first.
func (r ReportedDonationRepository) List(ctx context.Context) ([]models.ReportedDonation, error) {
	db := r.db()
	if db == nil {
		return nil, domain.InternalError{Msg: "database not connected"}
	}
	rows, err := db.QueryContext(ctx, `SELECT `+reportedColumns+` FROM reported_donations ORDER BY reported_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.ReportedDonation{}
	for rows.Next() {
		d, err := scanReported(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (r ReportedDonationRepository) FindByID(ctx context.Context, id int64) (models.ReportedDonation, error) {
	db := r.db()
	if db == nil {
		return models.ReportedDonation{}, domain.InternalError{Msg: "database not connected"}
	}
	d, err := scanReported(db.QueryRowContext(ctx, `SELECT `+reportedColumns+` FROM reported_donations WHERE id = ? LIMIT 1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.ReportedDonation{}, domain.NotFoundError{Resource: "reported donation", Err: err}
		}
		return models.ReportedDonation{}, err
	}
	return d, nil
}

func (r ReportedDonationRepository) UpdateStatus(ctx context.Context, id int64, status domain.ReportStatus) error {
	db := r.db()
	if db == nil {
		return domain.InternalError{Msg: "database not connected"}
	}
	_, err := db.ExecContext(ctx, `UPDATE reported_donations SET status = ? WHERE id = ?`, string(status), id)
	return err
}
