package services

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"donation-backend/internal/domain/models"
	"donation-backend/internal/gateway"

	"github.com/DATA-DOG/go-sqlmock"
)

const testKeySecret = "test_key_secret"

type fakeGateway struct {
	order      gateway.Order
	orderErr   error
	payment    gateway.Payment
	paymentErr error

	orderReqs     []gateway.OrderRequest
	paymentFetchs int
}

func (g *fakeGateway) CreateOrder(_ context.Context, req gateway.OrderRequest) (gateway.Order, error) {
	g.orderReqs = append(g.orderReqs, req)
	return g.order, g.orderErr
}

func (g *fakeGateway) FetchPayment(_ context.Context, _ string) (gateway.Payment, error) {
	g.paymentFetchs++
	return g.payment, g.paymentErr
}

type fakeNotifier struct {
	sent []models.Donation
}

func (n *fakeNotifier) ThankDonor(_ context.Context, d models.Donation) error {
	n.sent = append(n.sent, d)
	return nil
}

var donationCols = []string{
	"id", "order_id", "payment_id", "amount", "currency", "status",
	"method", "donor_name", "email", "contact", "signature", "receipt", "created_at", "updated_at",
}

type rowSpec struct {
	orderID, paymentID, status, donor, email string
	amount                                   int64
}

func donationRows(specs ...rowSpec) *sqlmock.Rows {
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows(donationCols)
	for i, s := range specs {
		rows.AddRow(int64(i+1), s.orderID, s.paymentID, s.amount, "INR", s.status, "", s.donor, s.email, "", "", "receipt_order_1", now, now)
	}
	return rows
}

func newMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db, mock
}
