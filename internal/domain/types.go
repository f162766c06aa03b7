package domain

import "strings"

// Status represents a lightweight state value.
type Status string

// Gateway-backed donation statuses. Razorpay may report others; they are kept verbatim.
const (
	StatusCreated    Status = "created"
	StatusAuthorized Status = "authorized"
	StatusCaptured   Status = "captured"
	StatusFailed     Status = "failed"
	StatusRefunded   Status = "refunded"
)

// Terminal statuses are never overwritten by settlement.
var TerminalStatuses = []Status{StatusCaptured, StatusRefunded}

func (s Status) IsTerminal() bool {
	for _, t := range TerminalStatuses {
		if s == t {
			return true
		}
	}
	return false
}

// ReportStatus is the honor-system state of a self-reported donation.
type ReportStatus string

const (
	ReportStatusReported            ReportStatus = "reported"
	ReportStatusPendingVerification ReportStatus = "pending_verification"
	ReportStatusVerified            ReportStatus = "verified"
)

func (s ReportStatus) Valid() bool {
	switch s {
	case ReportStatusReported, ReportStatusPendingVerification, ReportStatusVerified:
		return true
	}
	return false
}

// PaymentMethod is the channel a self-reporting donor says they used.
type PaymentMethod string

const (
	MethodUPI          PaymentMethod = "upi"
	MethodBankTransfer PaymentMethod = "bank_transfer"
	MethodOther        PaymentMethod = "other"
)

// ParsePaymentMethod defaults an empty value to "other".
func ParsePaymentMethod(raw string) (PaymentMethod, error) {
	m := PaymentMethod(strings.ToLower(strings.TrimSpace(raw)))
	switch m {
	case "":
		return MethodOther, nil
	case MethodUPI, MethodBankTransfer, MethodOther:
		return m, nil
	}
	return "", ValidationError{Field: "paymentMethodIndicated", Msg: "must be one of upi, bank_transfer, other"}
}

// AnonymousDonor buckets records without a donor name when counting distinct donors.
const AnonymousDonor = "anonymous"

// DonorKey normalizes a donor name for case-insensitive grouping.
func DonorKey(name string) string {
	key := strings.ToLower(strings.Join(strings.Fields(name), " "))
	if key == "" {
		return AnonymousDonor
	}
	return key
}
