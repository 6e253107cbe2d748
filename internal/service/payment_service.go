package service

import (
	"context"
	"sort"
	"strings"

	"qubic-pay/internal/core/domain"
	"qubic-pay/internal/core/ports"
	"qubic-pay/pkg/apperror"

	"github.com/rs/zerolog"
)

// PaymentServiceImpl implements ports.PaymentService.
type PaymentServiceImpl struct {
	session  ports.LedgerSession
	ids      ports.IDSource
	clock    ports.Clock
	linkBase string
	log      zerolog.Logger
}

// NewPaymentService creates a new PaymentServiceImpl. linkBase is the
// public URL prefix the shareable payment link is derived from.
func NewPaymentService(
	session ports.LedgerSession,
	ids ports.IDSource,
	clock ports.Clock,
	linkBase string,
	log zerolog.Logger,
) *PaymentServiceImpl {
	return &PaymentServiceImpl{
		session:  session,
		ids:      ids,
		clock:    clock,
		linkBase: strings.TrimRight(linkBase, "/"),
		log:      log,
	}
}

// CreatePayment issues a new PENDING payment request with the next
// sequential id for the current year.
func (s *PaymentServiceImpl) CreatePayment(ctx context.Context, req ports.CreatePaymentRequest) (*ports.CreatePaymentResult, error) {
	if req.MerchantID == "" || req.Asset == "" {
		return nil, apperror.InvalidInput("Missing required fields")
	}
	if !req.Amount.IsPositive() {
		return nil, apperror.InvalidInput("Amount must be positive")
	}
	if !domain.ValidAsset(req.Asset) {
		return nil, apperror.InvalidInput("Unsupported asset")
	}

	var out domain.Payment
	err := s.session.Update(ctx, func(led *domain.Ledger) error {
		if led.MerchantByID(req.MerchantID) == nil {
			return apperror.NotFound("Merchant")
		}

		now := s.clock.Now()
		p := domain.Payment{
			ID:          led.NextPaymentID(now.Year()),
			MerchantID:  req.MerchantID,
			Amount:      req.Amount,
			Asset:       req.Asset,
			Description: req.Description,
			Status:      domain.PaymentStatusPending,
			CreatedAt:   now,
		}
		led.Payments = append(led.Payments, p)
		out = p
		return nil
	})
	if err != nil {
		return nil, wrapErr(err)
	}

	s.log.Info().
		Str("payment_id", out.ID).
		Str("merchant_id", out.MerchantID).
		Str("asset", out.Asset).
		Msg("payment created")

	return &ports.CreatePaymentResult{
		Payment:     out,
		PaymentLink: s.linkBase + "/" + out.ID,
	}, nil
}

// ListMerchantPayments returns the merchant's payments, newest first.
func (s *PaymentServiceImpl) ListMerchantPayments(ctx context.Context, merchantID string) ([]domain.Payment, error) {
	if merchantID == "" {
		return nil, apperror.InvalidInput("Merchant ID is required")
	}

	var out []domain.Payment
	err := s.session.View(ctx, func(led *domain.Ledger) error {
		out = make([]domain.Payment, 0)
		for i := range led.Payments {
			if led.Payments[i].MerchantID == merchantID {
				out = append(out, led.Payments[i])
			}
		}
		return nil
	})
	if err != nil {
		return nil, wrapErr(err)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// GetPublicPayment returns the projection served on the payment link. An
// unknown id is simply not found; "expired link" is a display convention
// of the collaborator, not a payment state.
func (s *PaymentServiceImpl) GetPublicPayment(ctx context.Context, id string) (*domain.PublicPayment, error) {
	var out domain.PublicPayment
	err := s.session.View(ctx, func(led *domain.Ledger) error {
		p := led.PaymentByID(id)
		if p == nil {
			return apperror.NotFound("Payment")
		}

		merchantName := "Unknown Merchant"
		if m := led.MerchantByID(p.MerchantID); m != nil {
			merchantName = m.Name
		}

		out = domain.PublicPayment{
			ID:           p.ID,
			MerchantName: merchantName,
			Amount:       p.Amount,
			Asset:        p.Asset,
			Description:  p.Description,
			Status:       p.Status,
			CreatedAt:    p.CreatedAt,
			PaidAt:       p.PaidAt,
		}
		return nil
	})
	if err != nil {
		return nil, wrapErr(err)
	}
	return &out, nil
}

// PayPayment performs the one-way PENDING -> PAID transition. A second
// call on a PAID id is rejected and changes nothing: the original receipt
// is never reissued.
func (s *PaymentServiceImpl) PayPayment(ctx context.Context, id string, payerID string) (*ports.PayPaymentResult, error) {
	var out ports.PayPaymentResult
	err := s.session.Update(ctx, func(led *domain.Ledger) error {
		p := led.PaymentByID(id)
		if p == nil {
			return apperror.NotFound("Payment")
		}
		if p.IsPaid() {
			return apperror.AlreadyPaid("Payment")
		}

		now := s.clock.Now()
		p.Status = domain.PaymentStatusPaid
		p.PaidAt = &now
		p.ReceiptID = s.ids.ReceiptID()
		if payerID != "" {
			p.PaidBy = payerID
		}

		out = ports.PayPaymentResult{ID: p.ID, Status: p.Status, PaidAt: now}
		return nil
	})
	if err != nil {
		return nil, wrapErr(err)
	}

	s.log.Info().
		Str("payment_id", out.ID).
		Str("paid_by", payerID).
		Msg("payment settled")

	return &out, nil
}
