package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	intconfig "donation-backend/internal/config"
	intdb "donation-backend/internal/db"
	"donation-backend/internal/domain"
	"donation-backend/internal/domain/models"
	"donation-backend/internal/utils"
)

const donationColumns = `id, order_id, COALESCE(payment_id,''), amount, currency, status,
		       COALESCE(method,''), COALESCE(donor_name,''), COALESCE(email,''), COALESCE(contact,''),
		       COALESCE(signature,''), COALESCE(receipt,''), created_at, updated_at`

type DonationRepository struct {
	DB *sql.DB
}

func (r DonationRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDonation(row rowScanner) (models.Donation, error) {
	var d models.Donation
	var status string
	err := row.Scan(
		&d.ID,
		&d.OrderID,
		&d.PaymentID,
		&d.Amount,
		&d.Currency,
		&status,
		&d.Method,
		&d.DonorName,
		&d.Email,
		&d.Contact,
		&d.Signature,
		&d.Receipt,
		&d.CreatedAt,
		&d.UpdatedAt,
	)
	d.Status = domain.Status(status)
	return d, err
}

// Create inserts a new donation in its initial state. A duplicate order id is a conflict.
func (r DonationRepository) Create(ctx context.Context, d models.Donation) (models.Donation, error) {
	db := r.db()
	if db == nil {
		return models.Donation{}, domain.InternalError{Msg: "database not connected"}
	}
	if strings.TrimSpace(d.OrderID) == "" {
		return models.Donation{}, domain.ValidationError{Field: "order_id", Msg: "is required"}
	}
	if d.Currency == "" {
		d.Currency = "INR"
	}
	if d.Status == "" {
		d.Status = domain.StatusCreated
	}

	res, err := db.ExecContext(ctx, `
		INSERT INTO donations (order_id, amount, currency, status, donor_name, receipt)
		VALUES (?, ?, ?, ?, ?, ?)`,
		d.OrderID, d.Amount, d.Currency, string(d.Status), intdb.NullIfEmpty(d.DonorName), intdb.NullIfEmpty(d.Receipt),
	)
	if err != nil {
		if isDuplicateKey(err) {
			return models.Donation{}, domain.ConflictError{Resource: "donation", Msg: "order already recorded", Err: err}
		}
		return models.Donation{}, err
	}
	if id, err := res.LastInsertId(); err == nil {
		d.ID = id
	}
	now := utils.NowUTC()
	d.CreatedAt = now
	d.UpdatedAt = now
	return d, nil
}

func (r DonationRepository) FindByOrderID(ctx context.Context, orderID string) (models.Donation, error) {
	return r.findOne(ctx, "order_id", orderID)
}

func (r DonationRepository) FindByPaymentID(ctx context.Context, paymentID string) (models.Donation, error) {
	return r.findOne(ctx, "payment_id", paymentID)
}

func (r DonationRepository) findOne(ctx context.Context, column, value string) (models.Donation, error) {
	db := r.db()
	if db == nil {
		return models.Donation{}, domain.InternalError{Msg: "database not connected"}
	}
	row := db.QueryRowContext(ctx, `SELECT `+donationColumns+` FROM donations WHERE `+column+` = ? LIMIT 1`, value)
	d, err := scanDonation(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Donation{}, domain.NotFoundError{Resource: "donation", Err: err}
		}
		return models.Donation{}, err
	}
	return d, nil
}

// ListAll returns every donation, newest first.
func (r DonationRepository) ListAll(ctx context.Context) ([]models.Donation, error) {
	return r.list(ctx, `SELECT `+donationColumns+` FROM donations ORDER BY created_at DESC, id DESC`)
}

func (r DonationRepository) ListByStatus(ctx context.Context, status domain.Status) ([]models.Donation, error) {
	return r.list(ctx, `SELECT `+donationColumns+` FROM donations WHERE status = ? ORDER BY created_at DESC, id DESC`, string(status))
}

// ListStale returns donations still in "created" that were opened before cutoff.
func (r DonationRepository) ListStale(ctx context.Context, cutoff time.Time) ([]models.Donation, error) {
	return r.list(ctx, `SELECT `+donationColumns+` FROM donations WHERE status = ? AND created_at < ? ORDER BY created_at ASC`,
		string(domain.StatusCreated), cutoff)
}

func (r DonationRepository) list(ctx context.Context, query string, args ...any) ([]models.Donation, error) {
	db := r.db()
	if db == nil {
		return nil, domain.InternalError{Msg: "database not connected"}
	}
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Donation{}
	for rows.Next() {
		d, err := scanDonation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// ApplySettlement updates the donation matching s.OrderID in one statement.
// Rows already in a terminal status are left as they are; empty optional
// fields keep their stored value. changed reports whether this call wrote the
// row; a concurrent settlement that already reached a terminal status wins.
func (r DonationRepository) ApplySettlement(ctx context.Context, s models.Settlement) (changed bool, err error) {
	db := r.db()
	if db == nil {
		return false, domain.InternalError{Msg: "database not connected"}
	}
	if strings.TrimSpace(s.OrderID) == "" {
		return false, domain.ValidationError{Field: "order_id", Msg: "is required"}
	}

	res, err := db.ExecContext(ctx, `
		UPDATE donations SET
		       payment_id = COALESCE(?, payment_id),
		       status = ?,
		       method = COALESCE(?, method),
		       email = COALESCE(?, email),
		       contact = COALESCE(?, contact),
		       signature = COALESCE(?, signature),
		       donor_name = COALESCE(?, donor_name)
		WHERE order_id = ?
		  AND status NOT IN (?, ?)`,
		intdb.NullIfEmpty(s.PaymentID),
		string(s.Status),
		intdb.NullIfEmpty(s.Method),
		intdb.NullIfEmpty(s.Email),
		intdb.NullIfEmpty(s.Contact),
		intdb.NullIfEmpty(s.Signature),
		intdb.NullIfEmpty(strings.TrimSpace(s.DonorName)),
		s.OrderID,
		string(domain.TerminalStatuses[0]),
		string(domain.TerminalStatuses[1]),
	)
	if err != nil {
		if isDuplicateKey(err) {
			return false, domain.ConflictError{Resource: "donation", Msg: "payment already recorded on another order", Err: err}
		}
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
