package database

import (
	"context"
	"fmt"
)

type seedTicket struct {
	subject     string
	description string
	category    TicketCategory
	severity    int
	status      TicketStatus
	createdBy   int // index into seed employees
	assignedTo  int // index into seed agents, -1 for unassigned
}

var seedAgents = []User{
	{Name: "Sarah Martinez", Email: "sarah.martinez@company.test", Role: RoleAgent},
	{Name: "James Chen", Email: "james.chen@company.test", Role: RoleAgent},
	{Name: "Aisha Patel", Email: "aisha.patel@company.test", Role: RoleAgent},
}

var seedEmployees = []User{
	{Name: "Michael Brown", Email: "michael.brown@company.test", Role: RoleEmployee},
	{Name: "Emily Johnson", Email: "emily.johnson@company.test", Role: RoleEmployee},
	{Name: "David Kim", Email: "david.kim@company.test", Role: RoleEmployee},
	{Name: "Jessica Williams", Email: "jessica.williams@company.test", Role: RoleEmployee},
	{Name: "Robert Garcia", Email: "robert.garcia@company.test", Role: RoleEmployee},
}

var seedTickets = []seedTicket{
	// Open, unassigned
	{
		subject:     "Cannot access shared drive",
		description: `I'm getting an "access denied" error when trying to open files on the S: drive. This started happening after yesterday's system update.`,
		category:    CategoryAccess, severity: 3, status: StatusOpen,
		createdBy: 0, assignedTo: -1,
	},
	{
		subject:     "Keyboard not responding",
		description: "My keyboard suddenly stopped working this morning. I've tried unplugging and reconnecting it but no response. The NumLock light doesn't turn on.",
		category:    CategoryHardware, severity: 4, status: StatusOpen,
		createdBy: 1, assignedTo: -1,
	},
	{
		subject:     "VPN connection dropping frequently",
		description: "VPN disconnects every 10-15 minutes when working from home. Have to manually reconnect each time. Internet connection is stable.",
		category:    CategoryNetwork, severity: 4, status: StatusOpen,
		createdBy: 2, assignedTo: -1,
	},
	{
		subject:     "Need admin rights for software installation",
		description: "I need temporary admin rights to install development tools for our new project. Specific tools: VS Code, Node.js, Docker.",
		category:    CategoryAccess, severity: 3, status: StatusOpen,
		createdBy: 3, assignedTo: -1,
	},
	{
		subject:     "Webcam not detected in Teams",
		description: "Microsoft Teams can't detect my webcam even though it works in other apps. Already tried reinstalling Teams.",
		category:    CategoryHardware, severity: 3, status: StatusOpen,
		createdBy: 4, assignedTo: -1,
	},
	// In progress, assigned
	{
		subject:     "Password reset not working",
		description: "The password reset link I received expires before I can use it. I've requested 3 resets in the last hour and all expired within seconds.",
		category:    CategoryAccess, severity: 5, status: StatusInProgress,
		createdBy: 3, assignedTo: 0,
	},
	{
		subject:     "Monitor flickering intermittently",
		description: "My second monitor has been flickering on and off throughout the day. Sometimes it works fine for hours, then starts flickering again.",
		category:    CategoryHardware, severity: 2, status: StatusInProgress,
		createdBy: 4, assignedTo: 1,
	},
	{
		subject:     "Email attachments not downloading",
		description: `When I click to download attachments in Outlook, I get an error message "The operation failed." This happens with all attachment types.`,
		category:    CategoryBug, severity: 3, status: StatusInProgress,
		createdBy: 0, assignedTo: 2,
	},
	{
		subject:     "Dashboard showing incorrect data",
		description: "The sales dashboard is displaying last month's numbers instead of current month. Refreshing doesn't help.",
		category:    CategoryBug, severity: 4, status: StatusInProgress,
		createdBy: 2, assignedTo: 0,
	},
	// Resolved
	{
		subject:     "Need access to HR portal",
		description: "I just transferred to the HR department and need access to the employee portal to process new hire paperwork.",
		category:    CategoryAccess, severity: 3, status: StatusResolved,
		createdBy: 1, assignedTo: 0,
	},
	{
		subject:     "Printer jamming constantly",
		description: "The printer on the 3rd floor keeps jamming. I've cleared it multiple times but papers keep getting stuck in the same spot.",
		category:    CategoryHardware, severity: 2, status: StatusResolved,
		createdBy: 2, assignedTo: 1,
	},
	{
		subject:     "Slow WiFi in conference room B",
		description: "WiFi connection in conference room B is extremely slow. Speed test shows 2 Mbps when other areas get 100+ Mbps.",
		category:    CategoryNetwork, severity: 3, status: StatusResolved,
		createdBy: 3, assignedTo: 2,
	},
	// Closed
	{
		subject:     "Calendar sync issues between devices",
		description: "Appointments created on my phone don't show up on my computer and vice versa. Using Outlook on both devices.",
		category:    CategoryBug, severity: 2, status: StatusClosed,
		createdBy: 4, assignedTo: 0,
	},
	{
		subject:     "Request new software license",
		description: "I need a license for Adobe Creative Cloud for my design work. Current trial expires in 3 days.",
		category:    CategoryOther, severity: 3, status: StatusClosed,
		createdBy: 0, assignedTo: 1,
	},
	{
		subject:     "Mobile hotspot not connecting",
		description: "Company-issued mobile hotspot won't connect to my laptop. Light is on but no network appears in available connections.",
		category:    CategoryNetwork, severity: 4, status: StatusClosed,
		createdBy: 1, assignedTo: 2,
	},
}

// Seed populates the database with sample users and tickets for demos
// and local development. Running it against a non-empty database is an
// error rather than a duplicate insert.
func (db *DB) Seed(ctx context.Context) error {
	var count int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM tickets`).Scan(&count); err != nil {
		return fmt.Errorf("check existing tickets: %w", err)
	}
	if count > 0 {
		return fmt.Errorf("database already contains %d tickets; seed requires an empty database", count)
	}

	agents := make([]User, len(seedAgents))
	for i, u := range seedAgents {
		agents[i] = u
		if err := db.CreateUser(ctx, &agents[i]); err != nil {
			return fmt.Errorf("seed agent %s: %w", u.Email, err)
		}
	}

	employees := make([]User, len(seedEmployees))
	for i, u := range seedEmployees {
		employees[i] = u
		if err := db.CreateUser(ctx, &employees[i]); err != nil {
			return fmt.Errorf("seed employee %s: %w", u.Email, err)
		}
	}

	for _, st := range seedTickets {
		ticket := &Ticket{
			Subject:     st.subject,
			Description: st.description,
			Category:    st.category,
			Severity:    st.severity,
			Status:      st.status,
			CreatedBy:   employees[st.createdBy].ID,
		}
		if st.assignedTo >= 0 {
			ticket.AssignedTo = &agents[st.assignedTo].ID
		}
		if err := db.CreateTicket(ctx, ticket); err != nil {
			return fmt.Errorf("seed ticket %q: %w", st.subject, err)
		}
	}

	return nil
}
