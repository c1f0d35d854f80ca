package postgre

import (
	"context"
	"database/sql"
	"fmt"

	"solosync/internal/model"
	repo "solosync/internal/workflow/repository"
)

const invoiceColumns = `id, amount, status, COALESCE(project_id, ''), COALESCE(client_id, ''), created_at`

func scanInvoice(s rowScanner) (model.Invoice, error) {
	var (
		inv    model.Invoice
		status string
	)
	if err := s.Scan(&inv.ID, &inv.Amount, &status, &inv.ProjectID, &inv.ClientID, &inv.CreatedAt); err != nil {
		return model.Invoice{}, err
	}
	inv.Status = model.InvoiceStatus(status)
	return inv, nil
}

// nullable maps "" to SQL NULL so optional foreign keys stay unset.
func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func (r *implRepository) CreateInvoice(ctx context.Context, opt repo.CreateInvoiceOptions) (model.Invoice, error) {
	query := `
		INSERT INTO invoices (id, amount, status, project_id, client_id, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING ` + invoiceColumns

	inv, err := scanInvoice(r.db.QueryRowContext(ctx, query,
		newID(), opt.Amount, string(opt.Status), nullable(opt.ProjectID), nullable(opt.ClientID),
	))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.op("CreateInvoice"), err)
		return model.Invoice{}, repo.ErrFailedToInsert
	}
	return inv, nil
}

func (r *implRepository) ListInvoices(ctx context.Context, opt repo.ListInvoicesOptions) ([]model.Invoice, int, error) {
	where, args := r.buildInvoiceFilter(opt)

	var total int
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM invoices WHERE %s`, where)
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.op("ListInvoices"), err)
		return nil, 0, repo.ErrFailedToList
	}

	query, args := paginate(
		fmt.Sprintf(`SELECT %s FROM invoices WHERE %s ORDER BY created_at DESC`, invoiceColumns, where),
		args, opt.Limit, opt.Offset,
	)
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.op("ListInvoices"), err)
		return nil, 0, repo.ErrFailedToList
	}
	defer rows.Close()

	invoices := make([]model.Invoice, 0)
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.op("ListInvoices"), err)
			return nil, 0, repo.ErrFailedToList
		}
		invoices = append(invoices, inv)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.op("ListInvoices"), err)
		return nil, 0, repo.ErrFailedToList
	}
	return invoices, total, nil
}

func (r *implRepository) UpdateInvoiceStatus(ctx context.Context, opt repo.UpdateInvoiceStatusOptions) (model.Invoice, error) {
	query := `UPDATE invoices SET status = $1 WHERE id = $2 RETURNING ` + invoiceColumns

	inv, err := scanInvoice(r.db.QueryRowContext(ctx, query, string(opt.Status), opt.ID))
	if err == sql.ErrNoRows {
		return model.Invoice{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.op("UpdateInvoiceStatus"), err)
		return model.Invoice{}, repo.ErrFailedToUpdate
	}
	return inv, nil
}

func (r *implRepository) SumInvoiceAmounts(ctx context.Context) (map[model.InvoiceStatus]float64, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT status, COALESCE(SUM(amount), 0) FROM invoices GROUP BY status`)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.op("SumInvoiceAmounts"), err)
		return nil, repo.ErrFailedToGet
	}
	defer rows.Close()

	sums := make(map[model.InvoiceStatus]float64)
	for rows.Next() {
		var (
			status string
			total  float64
		)
		if err := rows.Scan(&status, &total); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.op("SumInvoiceAmounts"), err)
			return nil, repo.ErrFailedToGet
		}
		sums[model.InvoiceStatus(status)] = total
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.op("SumInvoiceAmounts"), err)
		return nil, repo.ErrFailedToGet
	}
	return sums, nil
}
