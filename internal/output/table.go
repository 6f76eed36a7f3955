package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/sohamkulkarniinsnapsys/HelpDeskTriage/internal/database"
	"github.com/sohamkulkarniinsnapsys/HelpDeskTriage/internal/similarity"
)

// Table writes data as a formatted table to stdout
func Table(data interface{}) error {
	return TableTo(os.Stdout, data)
}

// TableTo writes data as a formatted table to the given writer
func TableTo(w io.Writer, data interface{}) error {
	switch v := data.(type) {
	case []database.Ticket:
		return ticketsTable(w, v)
	case *database.Ticket:
		return ticketDetail(w, v)
	case []similarity.SimilarTicket:
		return similarTable(w, v)
	case *database.Stats:
		return statsTable(w, v)
	case []database.User:
		return usersTable(w, v)
	default:
		return fmt.Errorf("unsupported data type for table output: %T", data)
	}
}

func ticketsTable(w io.Writer, tickets []database.Ticket) error {
	if len(tickets) == 0 {
		fmt.Fprintln(w, "No tickets found.")
		return nil
	}

	table := tablewriter.NewTable(w)
	table.Header("ID", "SUBJECT", "CATEGORY", "SEV", "STATUS", "CREATED")

	for _, t := range tickets {
		assigned := ""
		if t.IsAssigned() {
			assigned = "*"
		}
		if err := table.Append([]string{
			shortID(t.ID),
			truncate(t.Subject, 40),
			string(t.Category),
			fmt.Sprintf("%d", t.Severity),
			string(t.Status) + assigned,
			formatAge(t.AgeDays()),
		}); err != nil {
			return err
		}
	}

	return table.Render()
}

func similarTable(w io.Writer, results []similarity.SimilarTicket) error {
	if len(results) == 0 {
		fmt.Fprintln(w, "No similar tickets found.")
		return nil
	}

	table := tablewriter.NewTable(w)
	table.Header("SCORE", "ID", "SUBJECT", "CATEGORY", "STATUS", "CREATED")

	for _, r := range results {
		if err := table.Append([]string{
			fmt.Sprintf("%.2f", r.RelevanceScore),
			shortID(r.ID),
			truncate(r.Subject, 40),
			r.Category,
			r.Status,
			r.CreatedAt.Format("Jan 02, 2006"),
		}); err != nil {
			return err
		}
	}

	return table.Render()
}

func ticketDetail(w io.Writer, t *database.Ticket) error {
	fmt.Fprintf(w, "ID:          %s\n", t.ID)
	fmt.Fprintf(w, "Subject:     %s\n", t.Subject)
	fmt.Fprintf(w, "Category:    %s\n", t.Category)
	fmt.Fprintf(w, "Severity:    %d\n", t.Severity)
	fmt.Fprintf(w, "Status:      %s (%s)\n", t.Status, formatAge(t.AgeDays()))

	if t.IsAssigned() {
		fmt.Fprintf(w, "Assigned:    %s\n", *t.AssignedTo)
	} else {
		fmt.Fprintln(w, "Assigned:    (unassigned)")
	}

	fmt.Fprintf(w, "Created:     %s\n", t.CreatedAt.Format("Jan 02, 2006 15:04"))
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Description:")
	fmt.Fprintln(w, wordWrap(t.Description, 78))

	return nil
}

func statsTable(w io.Writer, s *database.Stats) error {
	fmt.Fprintln(w, "Helpdesk Statistics")
	fmt.Fprintln(w, strings.Repeat("-", 30))
	fmt.Fprintf(w, "Total tickets:      %d\n", s.Total)
	fmt.Fprintf(w, "Open:               %d\n", s.Open)
	fmt.Fprintf(w, "In progress:        %d\n", s.InProgress)
	fmt.Fprintf(w, "Resolved:           %d\n", s.Resolved)
	fmt.Fprintf(w, "Closed:             %d\n", s.Closed)
	fmt.Fprintf(w, "Unassigned:         %d\n", s.Unassigned)
	return nil
}

func usersTable(w io.Writer, users []database.User) error {
	if len(users) == 0 {
		fmt.Fprintln(w, "No users found.")
		return nil
	}

	table := tablewriter.NewTable(w)
	table.Header("NAME", "EMAIL", "ROLE")
	for _, u := range users {
		if err := table.Append([]string{u.Name, u.Email, string(u.Role)}); err != nil {
			return err
		}
	}
	return table.Render()
}

// shortID trims a uuid to its first segment for display
func shortID(id string) string {
	if i := strings.IndexByte(id, '-'); i > 0 {
		return id[:i]
	}
	return id
}

func formatAge(days int) string {
	switch days {
	case 0:
		return "today"
	case 1:
		return "yesterday"
	default:
		return fmt.Sprintf("%d days ago", days)
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}

// wordWrap wraps text at the specified width
func wordWrap(text string, width int) string {
	var result strings.Builder
	lines := strings.Split(text, "\n")

	for _, line := range lines {
		if len(line) <= width {
			result.WriteString(line)
			result.WriteString("\n")
			continue
		}

		words := strings.Fields(line)
		if len(words) == 0 {
			result.WriteString("\n")
			continue
		}

		currentLine := words[0]
		for _, word := range words[1:] {
			if len(currentLine)+1+len(word) <= width {
				currentLine += " " + word
			} else {
				result.WriteString(currentLine)
				result.WriteString("\n")
				currentLine = word
			}
		}
		result.WriteString(currentLine)
		result.WriteString("\n")
	}

	return strings.TrimSuffix(result.String(), "\n")
}
