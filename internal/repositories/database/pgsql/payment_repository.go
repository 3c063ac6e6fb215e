package pgsql

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/SscSPs/sales_crm_app/internal/core/domain"
	portsrepo "github.com/SscSPs/sales_crm_app/internal/core/ports/repositories"
	"github.com/SscSPs/sales_crm_app/internal/models"
	"github.com/SscSPs/sales_crm_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

var paymentColumns = []string{
	"payment_id", "organization_id", "deal_id", "received_amount", "payment_date", "payment_status",
	"remarks", "receipt_url", "verifier_id", "denial_remarks", "verified_at", "is_edited", "edited_at",
	"created_at", "created_by", "last_updated_at", "last_updated_by",
}

type PgxPaymentRepository struct {
	BaseRepository
}

func newPgxPaymentRepository(pool *pgxpool.Pool) portsrepo.PaymentRepositoryFacade {
	return &PgxPaymentRepository{BaseRepository: newBaseRepository(pool)}
}

var _ portsrepo.PaymentRepositoryFacade = (*PgxPaymentRepository)(nil)

func insertPayment(builder sq.StatementBuilderType, m models.Payment) sq.InsertBuilder {
	return builder.Insert("payments").
		Columns(paymentColumns...).
		Values(m.PaymentID, m.OrganizationID, m.DealID, m.ReceivedAmount, m.PaymentDate, m.PaymentStatus,
			m.Remarks, m.ReceiptURL, m.VerifierID, m.DenialRemarks, m.VerifiedAt, m.IsEdited, m.EditedAt,
			m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy)
}

// attachPayments loads the payments of deals in one query and sets each deal's Payments,
// oldest payment first. Deals without payments get an empty, non-nil list.
func attachPayments(ctx context.Context, db querier, builder sq.StatementBuilderType, deals []domain.Deal) error {
	if len(deals) == 0 {
		return nil
	}

	ids := make([]string, len(deals))
	for i, d := range deals {
		ids[i] = d.DealID
	}

	stmt := builder.Select(paymentColumns...).
		From("payments").
		Where(sq.Eq{"deal_id": ids}).
		OrderBy("payment_date", "created_at")

	rows, err := selectAll[models.Payment](ctx, db, stmt)
	if err != nil {
		return fmt.Errorf("failed to load payments: %w", err)
	}

	byDeal := mapping.GroupPaymentsByDeal(rows)
	for i := range deals {
		if payments, ok := byDeal[deals[i].DealID]; ok {
			deals[i].Payments = payments
		} else {
			deals[i].Payments = []domain.Payment{}
		}
	}
	return nil
}

func (r *PgxPaymentRepository) FindPaymentByID(ctx context.Context, organizationID, paymentID string) (*domain.Payment, error) {
	stmt := r.Builder.Select(paymentColumns...).
		From("payments").
		Where(sq.Eq{"organization_id": organizationID, "payment_id": paymentID})

	m, err := selectOne[models.Payment](ctx, r.Pool, stmt)
	if err != nil {
		return nil, fmt.Errorf("payment %s: %w", paymentID, err)
	}
	payment := mapping.ToDomainPayment(*m)
	return &payment, nil
}

func (r *PgxPaymentRepository) FindPaymentsByStatus(ctx context.Context, organizationID string, status domain.PaymentStatus, limit, offset int) ([]domain.Payment, error) {
	stmt := r.Builder.Select(paymentColumns...).
		From("payments").
		Where(sq.Eq{"organization_id": organizationID, "payment_status": string(status)}).
		OrderBy("payment_date DESC", "created_at DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset))

	rows, err := selectAll[models.Payment](ctx, r.Pool, stmt)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s payments: %w", status, err)
	}
	return mapping.ToDomainPaymentSlice(rows), nil
}

func (r *PgxPaymentRepository) SummarizePaymentsByStatus(ctx context.Context, organizationID string, from, to time.Time) ([]domain.PaymentStatusSummary, error) {
	stmt := r.Builder.Select(
		"payment_status",
		"COUNT(*) AS payment_count",
		"COALESCE(SUM(received_amount), 0) AS total_amount",
	).
		From("payments").
		Where(sq.Eq{"organization_id": organizationID}).
		Where(sq.GtOrEq{"payment_date": from}).
		Where(sq.LtOrEq{"payment_date": to}).
		GroupBy("payment_status")

	rows, err := selectAll[models.PaymentStatusSummary](ctx, r.Pool, stmt)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize payments: %w", err)
	}

	summaries := make([]domain.PaymentStatusSummary, len(rows))
	for i, row := range rows {
		summaries[i] = domain.PaymentStatusSummary{
			Status:      domain.PaymentStatus(row.PaymentStatus),
			Count:       row.Count,
			TotalAmount: row.TotalAmount,
		}
	}
	return summaries, nil
}

func (r *PgxPaymentRepository) SavePayment(ctx context.Context, payment domain.Payment) error {
	_, err := exec(ctx, r.Pool, insertPayment(r.Builder, mapping.ToModelPayment(payment)))
	return translateWriteError(err, "payment "+payment.PaymentID)
}

func (r *PgxPaymentRepository) UpdatePayment(ctx context.Context, payment domain.Payment) error {
	m := mapping.ToModelPayment(payment)
	stmt := r.Builder.Update("payments").
		SetMap(map[string]any{
			"received_amount": m.ReceivedAmount,
			"payment_date":    m.PaymentDate,
			"payment_status":  m.PaymentStatus,
			"remarks":         m.Remarks,
			"receipt_url":     m.ReceiptURL,
			"verifier_id":     m.VerifierID,
			"denial_remarks":  m.DenialRemarks,
			"verified_at":     m.VerifiedAt,
			"is_edited":       m.IsEdited,
			"edited_at":       m.EditedAt,
			"last_updated_at": m.LastUpdatedAt,
			"last_updated_by": m.LastUpdatedBy,
		}).
		Where(sq.Eq{"organization_id": m.OrganizationID, "payment_id": m.PaymentID})

	tag, err := exec(ctx, r.Pool, stmt)
	if err != nil {
		return translateWriteError(err, "payment "+m.PaymentID)
	}
	return requireAffected(tag, "payment", m.PaymentID)
}

func (r *PgxPaymentRepository) DeletePayment(ctx context.Context, organizationID, paymentID string) error {
	stmt := r.Builder.Delete("payments").
		Where(sq.Eq{"organization_id": organizationID, "payment_id": paymentID})

	tag, err := exec(ctx, r.Pool, stmt)
	if err != nil {
		return translateWriteError(err, "payment "+paymentID)
	}
	return requireAffected(tag, "payment", paymentID)
}
