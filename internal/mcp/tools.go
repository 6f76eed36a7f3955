package mcp

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// ToolDefinitions contains all available MCP tools
var ToolDefinitions = []Tool{
	{
		Name: "find_similar_tickets",
		Description: "Find existing tickets similar to a draft being written. " +
			"Returns up to 5 recent active tickets ranked by relevance score, " +
			"useful for spotting duplicates before filing.",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"subject": map[string]interface{}{
					"type":        "string",
					"description": "Draft ticket subject (3-255 characters)",
				},
				"description": map[string]interface{}{
					"type":        "string",
					"description": "Draft ticket description (10-10000 characters)",
				},
				"category": map[string]interface{}{
					"type":        "string",
					"enum":        []string{"access", "hardware", "network", "bug", "other"},
					"description": "Optional category of the draft ticket",
				},
			},
			"required": []string{"subject", "description"},
		},
	},
	{
		Name:        "list_tickets",
		Description: "List helpdesk tickets with optional filters, most recent first.",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"status": map[string]interface{}{
					"type":        "string",
					"enum":        []string{"open", "in_progress", "resolved", "closed", "all"},
					"description": "Filter by ticket status. Use 'all' or omit for no filter.",
				},
				"category": map[string]interface{}{
					"type":        "string",
					"enum":        []string{"access", "hardware", "network", "bug", "other"},
					"description": "Filter by ticket category",
				},
				"search": map[string]interface{}{
					"type":        "string",
					"description": "Text search over subject and description",
				},
				"unassigned": map[string]interface{}{
					"type":        "boolean",
					"description": "Only show tickets with no assignee",
				},
				"limit": map[string]interface{}{
					"type":        "integer",
					"description": "Maximum number of results to return (default: 20)",
				},
			},
		},
	},
	{
		Name:        "get_ticket",
		Description: "Get full details of a specific ticket by ID.",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"id": map[string]interface{}{
					"type":        "string",
					"description": "Ticket ID",
				},
			},
			"required": []string{"id"},
		},
	},
	{
		Name:        "create_ticket",
		Description: "File a new helpdesk ticket. The ticket opens with status 'open'.",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"subject": map[string]interface{}{
					"type":        "string",
					"description": "Ticket subject",
				},
				"description": map[string]interface{}{
					"type":        "string",
					"description": "Ticket description",
				},
				"category": map[string]interface{}{
					"type":        "string",
					"enum":        []string{"access", "hardware", "network", "bug", "other"},
					"description": "Ticket category",
				},
				"severity": map[string]interface{}{
					"type":        "integer",
					"description": "Severity from 1 (low) to 5 (critical)",
				},
				"created_by": map[string]interface{}{
					"type":        "string",
					"description": "Email of the reporting user",
				},
			},
			"required": []string{"subject", "description", "category", "severity", "created_by"},
		},
	},
	{
		Name:        "get_stats",
		Description: "Get aggregate ticket statistics: counts by status and unassigned backlog.",
		InputSchema: map[string]interface{}{
			"type":       "object",
			"properties": map[string]interface{}{},
		},
	},
}
