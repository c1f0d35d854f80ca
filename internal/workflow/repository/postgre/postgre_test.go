package postgre

import (
	"context"
	"database/sql"
	"os"
	"reflect"
	"testing"
	"time"

	_ "github.com/lib/pq"

	"solosync/internal/model"
	repo "solosync/internal/workflow/repository"
	"solosync/migrations"
	pkgLog "solosync/pkg/log"
)

func TestPaginate(t *testing.T) {
	tests := []struct {
		name          string
		args          []any
		limit, offset int
		wantQuery     string
		wantArgs      []any
	}{
		{"none", nil, 0, 0, "SELECT 1", nil},
		{"limit only", nil, 20, 0, "SELECT 1 LIMIT $1", []any{20}},
		{"limit and offset after filter", []any{"Draft"}, 10, 5, "SELECT 1 LIMIT $2 OFFSET $3", []any{"Draft", 10, 5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, args := paginate("SELECT 1", tt.args, tt.limit, tt.offset)
			if q != tt.wantQuery {
				t.Errorf("query = %q, want %q", q, tt.wantQuery)
			}
			if !reflect.DeepEqual(args, tt.wantArgs) {
				t.Errorf("args = %v, want %v", args, tt.wantArgs)
			}
		})
	}
}

func TestBuildGetOneClientQuery(t *testing.T) {
	r := &implRepository{}

	where, args := r.buildGetOneClientQuery(repo.GetOneClientOptions{ID: "c1", Name: "John"})
	if where != "id = $1 AND name = $2" || !reflect.DeepEqual(args, []any{"c1", "John"}) {
		t.Errorf("got %q %v", where, args)
	}

	where, args = r.buildGetOneClientQuery(repo.GetOneClientOptions{})
	if where != "1=1" || len(args) != 0 {
		t.Errorf("empty filter got %q %v", where, args)
	}
}

func TestBuildInvoiceFilter(t *testing.T) {
	r := &implRepository{}
	if where, args := r.buildInvoiceFilter(repo.ListInvoicesOptions{Status: model.InvoiceStatusPaid}); where != "status = $1" || args[0] != "Paid" {
		t.Errorf("got %q %v", where, args)
	}
	if where, args := r.buildInvoiceFilter(repo.ListInvoicesOptions{}); where != "1=1" || args != nil {
		t.Errorf("got %q %v", where, args)
	}
}

// newIntegrationRepo connects to SOLOSYNC_TEST_POSTGRES_DSN and applies the schema.
func newIntegrationRepo(t *testing.T) *implRepository {
	t.Helper()
	dsn := os.Getenv("SOLOSYNC_TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("SOLOSYNC_TEST_POSTGRES_DSN not set")
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	ctx := context.Background()
	if _, err := db.ExecContext(ctx, `DROP TABLE IF EXISTS invoices, projects, clients, communications`); err != nil {
		t.Fatalf("reset: %v", err)
	}
	if _, err := migrations.Apply(ctx, db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return New(db, pkgLog.NewNop())
}

func TestIntegrationWorkflow(t *testing.T) {
	r := newIntegrationRepo(t)
	ctx := context.Background()

	comm, err := r.CreateCommunication(ctx, repo.CreateCommunicationOptions{Platform: "Email", Content: "hello"})
	if err != nil || comm.ID == "" {
		t.Fatalf("CreateCommunication: %v %+v", err, comm)
	}

	onboarded := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	client, err := r.CreateClient(ctx, repo.CreateClientOptions{
		Name:    "John",
		History: []model.ClientEvent{{Event: model.EventClientOnboarded, Date: onboarded}},
	})
	if err != nil {
		t.Fatalf("CreateClient: %v", err)
	}
	found, err := r.GetOneClient(ctx, repo.GetOneClientOptions{Name: "John"})
	if err != nil || found.ID != client.ID || len(found.History) != 1 || !found.History[0].Date.Equal(onboarded) {
		t.Fatalf("GetOneClient: %v %+v", err, found)
	}
	missing, err := r.GetOneClient(ctx, repo.GetOneClientOptions{Name: "Nobody"})
	if err != nil || missing.ID != "" {
		t.Fatalf("GetOneClient missing: %v %+v", err, missing)
	}

	deadline := time.Date(2024, 5, 3, 15, 30, 0, 0, time.UTC)
	project, err := r.CreateProject(ctx, repo.CreateProjectOptions{
		ClientName: "John", TaskTitle: "Logo Design", Budget: 500, Deadline: deadline, Status: model.ProjectStatusToDo,
	})
	if err != nil || !project.Deadline.Equal(deadline) {
		t.Fatalf("CreateProject: %v %+v", err, project)
	}

	invoice, err := r.CreateInvoice(ctx, repo.CreateInvoiceOptions{
		Amount: 500, Status: model.InvoiceStatusDraft, ProjectID: project.ID, ClientID: client.ID,
	})
	if err != nil || invoice.ProjectID != project.ID {
		t.Fatalf("CreateInvoice: %v %+v", err, invoice)
	}

	updated, err := r.UpdateInvoiceStatus(ctx, repo.UpdateInvoiceStatusOptions{ID: invoice.ID, Status: model.InvoiceStatusPaid})
	if err != nil || updated.Status != model.InvoiceStatusPaid {
		t.Fatalf("UpdateInvoiceStatus: %v %+v", err, updated)
	}
	none, err := r.UpdateProjectStatus(ctx, repo.UpdateProjectStatusOptions{ID: "missing", Status: model.ProjectStatusPaid})
	if err != nil || none.ID != "" {
		t.Fatalf("UpdateProjectStatus missing: %v %+v", err, none)
	}

	invoices, total, err := r.ListInvoices(ctx, repo.ListInvoicesOptions{ListOptions: repo.ListOptions{Limit: 10}, Status: model.InvoiceStatusPaid})
	if err != nil || total != 1 || len(invoices) != 1 {
		t.Fatalf("ListInvoices: %v total=%d len=%d", err, total, len(invoices))
	}

	sums, err := r.SumInvoiceAmounts(ctx)
	if err != nil || sums[model.InvoiceStatusPaid] != 500 {
		t.Fatalf("SumInvoiceAmounts: %v %v", err, sums)
	}
}
