package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"solosync/internal/analyzer"
	"solosync/internal/model"
	"solosync/internal/workflow"
	repo "solosync/internal/workflow/repository"
	"solosync/pkg/gcalendar"
)

// Sync turns a raw client message into client, project and invoice records.
func (uc *implUseCase) Sync(ctx context.Context, input workflow.SyncInput) (workflow.SyncOutput, error) {
	if strings.TrimSpace(input.RawText) == "" {
		return workflow.SyncOutput{}, workflow.ErrEmptyRawText
	}
	platform := strings.TrimSpace(input.Platform)
	if platform == "" {
		platform = model.DefaultPlatform
	}

	comm, err := uc.repo.CreateCommunication(ctx, repo.CreateCommunicationOptions{
		Platform: platform,
		Content:  input.RawText,
	})
	if err != nil {
		uc.l.Errorf(ctx, "workflow.usecase.Sync.CreateCommunication: %v", err)
		return workflow.SyncOutput{}, err
	}

	analysis, err := uc.analyzer.Analyze(ctx, analyzer.AnalyzeInput{Text: input.RawText})
	if err != nil {
		uc.l.Errorf(ctx, "workflow.usecase.Sync.Analyze: %v", err)
		return workflow.SyncOutput{}, err
	}
	res := analysis.Result

	client, created, err := uc.findOrCreateClient(ctx, res.Client, comm.Timestamp)
	if err != nil {
		return workflow.SyncOutput{}, err
	}

	calendarLink := uc.scheduleDeadline(ctx, res, input.RawText)

	project, err := uc.repo.CreateProject(ctx, repo.CreateProjectOptions{
		ClientName:   res.Client,
		TaskTitle:    res.Task,
		Budget:       res.Budget,
		Deadline:     res.Deadline,
		Status:       model.ProjectStatusToDo,
		CalendarLink: calendarLink,
	})
	if err != nil {
		uc.l.Errorf(ctx, "workflow.usecase.Sync.CreateProject: %v", err)
		return workflow.SyncOutput{}, err
	}

	invoice, err := uc.repo.CreateInvoice(ctx, repo.CreateInvoiceOptions{
		Amount:    res.Budget,
		Status:    model.InvoiceStatusDraft,
		ProjectID: project.ID,
		ClientID:  client.ID,
	})
	if err != nil {
		uc.l.Errorf(ctx, "workflow.usecase.Sync.CreateInvoice: %v", err)
		return workflow.SyncOutput{}, err
	}

	uc.publish(ctx, workflow.EventSyncComplete, workflow.SyncCompleteEvent{
		Project: project,
		Invoice: invoice,
		Client:  client,
	})

	uc.l.Infof(ctx, "workflow.usecase.Sync: project=%s invoice=%s client=%q new_client=%t",
		project.ID, invoice.ID, client.Name, created)

	return workflow.SyncOutput{
		Communication: comm,
		Client:        client,
		ClientCreated: created,
		Project:       project,
		Invoice:       invoice,
	}, nil
}

// findOrCreateClient matches clients by exact name. New clients start their
// history with an onboarding entry dated at the message time.
func (uc *implUseCase) findOrCreateClient(ctx context.Context, name string, at time.Time) (model.Client, bool, error) {
	existing, err := uc.repo.GetOneClient(ctx, repo.GetOneClientOptions{Name: name})
	if err != nil {
		uc.l.Errorf(ctx, "workflow.usecase.findOrCreateClient.GetOneClient: %v", err)
		return model.Client{}, false, err
	}
	if existing.ID != "" {
		return existing, false, nil
	}

	client, err := uc.repo.CreateClient(ctx, repo.CreateClientOptions{
		Name: name,
		History: []model.ClientEvent{
			{Event: model.EventClientOnboarded, Date: at},
		},
	})
	if err != nil {
		uc.l.Errorf(ctx, "workflow.usecase.findOrCreateClient.CreateClient: %v", err)
		return model.Client{}, false, err
	}
	return client, true, nil
}

// scheduleDeadline books a calendar slot ending at the deadline and returns
// its link, or "" when no calendar is configured or the call fails. An event
// with the same summary already ending at the deadline is reused.
func (uc *implUseCase) scheduleDeadline(ctx context.Context, res analyzer.Result, rawText string) string {
	if uc.calendar == nil {
		return ""
	}

	summary := fmt.Sprintf("%s - %s", res.Task, res.Client)
	start := res.Deadline.Add(-uc.calCfg.Duration)

	if link, ok := uc.findScheduled(ctx, summary, start, res.Deadline); ok {
		uc.l.Infof(ctx, "workflow.usecase.scheduleDeadline: reusing event %q", summary)
		return link
	}

	event, err := uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID:  uc.calCfg.CalendarID,
		Summary:     summary,
		Description: fmt.Sprintf("Budget: %.2f\n\n%s", res.Budget, rawText),
		StartTime:   start,
		EndTime:     res.Deadline,
		Timezone:    uc.calCfg.Timezone,
	})
	if err != nil {
		uc.l.Warnf(ctx, "workflow.usecase.scheduleDeadline.CreateEvent: %v", err)
		return ""
	}
	return event.HtmlLink
}

// findScheduled looks for an event named summary that ends at end.
// A listing failure is treated as "not found".
func (uc *implUseCase) findScheduled(ctx context.Context, summary string, start, end time.Time) (string, bool) {
	events, err := uc.calendar.ListEvents(ctx, gcalendar.ListEventsRequest{
		CalendarID: uc.calCfg.CalendarID,
		TimeMin:    start,
		TimeMax:    end,
		MaxResults: maxScheduledLookup,
	})
	if err != nil {
		uc.l.Warnf(ctx, "workflow.usecase.findScheduled.ListEvents: %v", err)
		return "", false
	}

	for _, e := range events {
		if e.Summary == summary && e.EndTime.Equal(end) {
			return e.HtmlLink, true
		}
	}
	return "", false
}

func (uc *implUseCase) publish(ctx context.Context, event string, payload any) {
	if uc.notifier == nil {
		return
	}
	if err := uc.notifier.Publish(ctx, event, payload); err != nil {
		uc.l.Warnf(ctx, "workflow.usecase.publish %s: %v", event, err)
	}
}
