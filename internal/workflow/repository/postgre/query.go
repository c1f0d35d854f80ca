package postgre

import (
	"fmt"
	"strconv"
	"strings"

	repo "solosync/internal/workflow/repository"
)

func itoa(i int) string {
	return strconv.Itoa(i)
}

// buildGetOneClientQuery builds WHERE clause + args for GetOneClient.
// All non-empty fields are applied as AND conditions.
func (r *implRepository) buildGetOneClientQuery(opt repo.GetOneClientOptions) (string, []any) {
	var conditions []string
	var args []any
	idx := 1

	if opt.ID != "" {
		conditions = append(conditions, fmt.Sprintf("id = $%d", idx))
		args = append(args, opt.ID)
		idx++
	}
	if opt.Name != "" {
		conditions = append(conditions, fmt.Sprintf("name = $%d", idx))
		args = append(args, opt.Name)
		idx++
	}

	if len(conditions) == 0 {
		return "1=1", args
	}
	return strings.Join(conditions, " AND "), args
}

// buildInvoiceFilter builds the WHERE clause + args for invoice listing and counting.
func (r *implRepository) buildInvoiceFilter(opt repo.ListInvoicesOptions) (string, []any) {
	if opt.Status == "" {
		return "1=1", nil
	}
	return "status = $1", []any{string(opt.Status)}
}
