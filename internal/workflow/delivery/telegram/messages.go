package telegram

import (
	"fmt"
	"strings"

	"solosync/internal/workflow"
)

const (
	msgStart = "Welcome to SoloSync!\n\n" +
		"Forward me a client message and I will:\n" +
		"- find or create the client\n" +
		"- open a project card with a deadline\n" +
		"- draft an invoice for the budget\n\n" +
		"Example: \"Hi, this is John, need a logo by Friday, budget $500\""
	msgHelp = "Send any client message as plain text. " +
		"I look for a capitalized client name, a task keyword (logo, website, app, content, design), " +
		"an amount like $1,250 or 500usd and a deadline (friday, monday, tomorrow, next week)."
	msgFailed = "Sorry, I could not process that message. Please try again."
)

func syncReply(out workflow.SyncOutput) string {
	var b strings.Builder
	b.WriteString(workflow.SyncMessage + "\n\n")
	fmt.Fprintf(&b, "Client: %s", out.Client.Name)
	if out.ClientCreated {
		b.WriteString(" (new)")
	}
	fmt.Fprintf(&b, "\nProject: %s\n", out.Project.TaskTitle)
	fmt.Fprintf(&b, "Deadline: %s\n", out.Project.Deadline.Format("Mon, 02 Jan 2006 15:04"))
	fmt.Fprintf(&b, "Invoice: %.2f (%s)", out.Invoice.Amount, out.Invoice.Status)
	if out.Project.CalendarLink != "" {
		fmt.Fprintf(&b, "\nCalendar: %s", out.Project.CalendarLink)
	}
	return b.String()
}
