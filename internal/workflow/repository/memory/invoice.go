package memory

import (
	"context"

	"solosync/internal/model"
	repo "solosync/internal/workflow/repository"
)

func (r *implRepository) CreateInvoice(ctx context.Context, opt repo.CreateInvoiceOptions) (model.Invoice, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	invoice := model.Invoice{
		ID:        newID(),
		Amount:    opt.Amount,
		Status:    opt.Status,
		ProjectID: opt.ProjectID,
		ClientID:  opt.ClientID,
		CreatedAt: r.now(),
	}
	r.invoices = append(r.invoices, invoice)
	return invoice, nil
}

func (r *implRepository) ListInvoices(ctx context.Context, opt repo.ListInvoicesOptions) ([]model.Invoice, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := r.invoices
	if opt.Status != "" {
		matched = make([]model.Invoice, 0, len(r.invoices))
		for _, inv := range r.invoices {
			if inv.Status == opt.Status {
				matched = append(matched, inv)
			}
		}
	}

	start, end := window(len(matched), opt.Limit, opt.Offset)
	return newestFirst(matched, start, end), len(matched), nil
}

func (r *implRepository) UpdateInvoiceStatus(ctx context.Context, opt repo.UpdateInvoiceStatusOptions) (model.Invoice, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.invoices {
		if r.invoices[i].ID == opt.ID {
			r.invoices[i].Status = opt.Status
			return r.invoices[i], nil
		}
	}
	return model.Invoice{}, nil
}

func (r *implRepository) SumInvoiceAmounts(ctx context.Context) (map[model.InvoiceStatus]float64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sums := make(map[model.InvoiceStatus]float64)
	for _, inv := range r.invoices {
		sums[inv.Status] += inv.Amount
	}
	return sums, nil
}
