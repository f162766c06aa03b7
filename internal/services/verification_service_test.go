package services

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"donation-backend/internal/domain"
	"donation-backend/internal/gateway"
	"donation-backend/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
)

func validInput() VerifyInput {
	return VerifyInput{
		OrderID:   "order_1",
		PaymentID: "pay_1",
		Signature: Sign(testKeySecret, CheckoutPayload("order_1", "pay_1")),
	}
}

func newVerification(db *sql.DB, gw *fakeGateway, n Notifier) VerificationService {
	return VerificationService{
		Gateway:  gw,
		Verifier: SignatureVerifier{KeySecret: testKeySecret},
		Repo:     repositories.DonationRepository{DB: db},
		Notifier: n,
	}
}

func TestVerifySettlesCapturedPayment(t *testing.T) {
	db, mock := newMock(t)
	gw := &fakeGateway{payment: gateway.Payment{ID: "pay_1", OrderID: "order_1", Status: "captured", Method: "upi", Email: "asha@example.com"}}
	notifier := &fakeNotifier{}

	byOrder := regexp.QuoteMeta("FROM donations WHERE order_id = ? LIMIT 1")
	mock.ExpectQuery(byOrder).WithArgs("order_1").
		WillReturnRows(donationRows(rowSpec{orderID: "order_1", status: "created", amount: 60000}))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE donations SET")).
		WithArgs("pay_1", "captured", "upi", "asha@example.com", nil, sqlmock.AnyArg(), nil, "order_1", "captured", "refunded").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(byOrder).WithArgs("order_1").
		WillReturnRows(donationRows(rowSpec{orderID: "order_1", paymentID: "pay_1", status: "captured", email: "asha@example.com", amount: 60000}))

	got, err := newVerification(db, gw, notifier).Verify(context.Background(), validInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Status != domain.StatusCaptured || got.PaymentID != "pay_1" {
		t.Fatalf("unexpected record %+v", got)
	}
	if len(notifier.sent) != 1 {
		t.Fatalf("expected one thank-you mail, got %d", len(notifier.sent))
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestVerifySignatureMismatchTouchesNothing(t *testing.T) {
	db, mock := newMock(t)
	gw := &fakeGateway{}

	in := validInput()
	in.Signature = Sign("some_other_secret", CheckoutPayload("order_1", "pay_1"))

	_, err := newVerification(db, gw, nil).Verify(context.Background(), in)
	if !domain.IsSignature(err) {
		t.Fatalf("expected signature error, got %v", err)
	}
	if gw.paymentFetchs != 0 {
		t.Fatalf("gateway must not be queried after a mismatch")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("no database calls expected: %v", err)
	}
}

func TestVerifyMissingParameters(t *testing.T) {
	db, _ := newMock(t)
	in := validInput()
	in.PaymentID = " "
	_, err := newVerification(db, &fakeGateway{}, nil).Verify(context.Background(), in)
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestVerifyUnknownOrderIsUnreconciled(t *testing.T) {
	db, mock := newMock(t)
	gw := &fakeGateway{payment: gateway.Payment{ID: "pay_1", Status: "captured"}}

	mock.ExpectQuery("FROM donations WHERE order_id").WithArgs("order_1").
		WillReturnRows(sqlmock.NewRows(donationCols))

	_, err := newVerification(db, gw, nil).Verify(context.Background(), validInput())
	if !domain.IsUnreconciled(err) {
		t.Fatalf("expected unreconciled error, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestVerifyGatewayFailureAfterValidSignature(t *testing.T) {
	db, mock := newMock(t)
	gw := &fakeGateway{paymentErr: errors.New("timeout")}

	_, err := newVerification(db, gw, nil).Verify(context.Background(), validInput())
	if !domain.IsUpstream(err) {
		t.Fatalf("expected upstream error, got %v", err)
	}
	if err.Error() != "Payment verified, but failed to process details or update database.: timeout" {
		t.Fatalf("unexpected message %q", err.Error())
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("no database calls expected: %v", err)
	}
}

func TestVerifyIsIdempotentOnTerminalRecord(t *testing.T) {
	db, mock := newMock(t)
	gw := &fakeGateway{payment: gateway.Payment{ID: "pay_1", OrderID: "order_1", Status: "captured", Email: "asha@example.com"}}
	notifier := &fakeNotifier{}

	captured := rowSpec{orderID: "order_1", paymentID: "pay_1", status: "captured", email: "asha@example.com", amount: 60000}
	mock.ExpectQuery("FROM donations WHERE order_id").WillReturnRows(donationRows(captured))
	mock.ExpectExec("UPDATE donations SET").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("FROM donations WHERE order_id").WillReturnRows(donationRows(captured))

	got, err := newVerification(db, gw, notifier).Verify(context.Background(), validInput())
	if err != nil {
		t.Fatalf("repeat verification should succeed, got %v", err)
	}
	if got.Status != domain.StatusCaptured {
		t.Fatalf("status changed to %s", got.Status)
	}
	if len(notifier.sent) != 0 {
		t.Fatalf("no second thank-you mail expected")
	}
}

func TestVerifyDoesNotDowngradeCaptured(t *testing.T) {
	db, mock := newMock(t)
	gw := &fakeGateway{payment: gateway.Payment{ID: "pay_1", OrderID: "order_1", Status: "failed"}}

	captured := rowSpec{orderID: "order_1", paymentID: "pay_1", status: "captured", amount: 60000}
	mock.ExpectQuery("FROM donations WHERE order_id").WillReturnRows(donationRows(captured))
	mock.ExpectExec("UPDATE donations SET").
		WithArgs("pay_1", "failed", nil, nil, nil, sqlmock.AnyArg(), nil, "order_1", "captured", "refunded").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("FROM donations WHERE order_id").WillReturnRows(donationRows(captured))

	got, err := newVerification(db, gw, nil).Verify(context.Background(), validInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Status != domain.StatusCaptured {
		t.Fatalf("captured record must stay captured, got %s", got.Status)
	}
}

func TestVerifyConcurrentSettlementSendsNoSecondMail(t *testing.T) {
	db, mock := newMock(t)
	gw := &fakeGateway{payment: gateway.Payment{ID: "pay_1", OrderID: "order_1", Status: "captured", Email: "asha@example.com"}}
	notifier := &fakeNotifier{}

	// The first read still sees "created"; another request settles the row before our UPDATE runs.
	mock.ExpectQuery("FROM donations WHERE order_id").
		WillReturnRows(donationRows(rowSpec{orderID: "order_1", status: "created", amount: 60000}))
	mock.ExpectExec("UPDATE donations SET").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("FROM donations WHERE order_id").
		WillReturnRows(donationRows(rowSpec{orderID: "order_1", paymentID: "pay_1", status: "captured", email: "asha@example.com", amount: 60000}))

	got, err := newVerification(db, gw, notifier).Verify(context.Background(), validInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Status != domain.StatusCaptured {
		t.Fatalf("unexpected status %s", got.Status)
	}
	if len(notifier.sent) != 0 {
		t.Fatalf("thank-you mail belongs to the request that settled the row, got %d", len(notifier.sent))
	}
}

func TestVerifyDuplicatePaymentIsInternalError(t *testing.T) {
	db, mock := newMock(t)
	gw := &fakeGateway{payment: gateway.Payment{ID: "pay_1", OrderID: "order_1", Status: "captured"}}

	mock.ExpectQuery("FROM donations WHERE order_id").
		WillReturnRows(donationRows(rowSpec{orderID: "order_1", status: "created", amount: 60000}))
	mock.ExpectExec("UPDATE donations SET").
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'pay_1' for key 'payment_id'"})

	_, err := newVerification(db, gw, nil).Verify(context.Background(), validInput())
	if !domain.IsInternal(err) {
		t.Fatalf("expected internal error, got %v", err)
	}
	if err.Error() != msgVerifiedNotFinalized {
		t.Fatalf("unexpected message %q", err.Error())
	}
}
