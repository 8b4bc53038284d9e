package models

type ChecklistItem struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// Checklist is a static catalog entry. The service never mutates checklists;
// progress and assignment records reference them by ID only.
type Checklist struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Items       []ChecklistItem `json:"items"`
}

// Catalog returns the built-in business checklists.
func Catalog() []Checklist {
	return []Checklist{
		{
			ID:          "1",
			Title:       "New project kickoff",
			Description: "Essential steps for a successful project start",
			Category:    "Project management",
			Items: []ChecklistItem{
				{ID: "1-1", Text: "Define project goals and objectives"},
				{ID: "1-2", Text: "Draft the project budget"},
				{ID: "1-3", Text: "Assemble the team"},
				{ID: "1-4", Text: "Create the project plan"},
				{ID: "1-5", Text: "Identify risks"},
			},
		},
		{
			ID:          "2",
			Title:       "Presentation preparation",
			Description: "Checklist for an effective presentation",
			Category:    "Sales",
			Items: []ChecklistItem{
				{ID: "2-1", Text: "Research the target audience"},
				{ID: "2-2", Text: "Outline the presentation structure"},
				{ID: "2-3", Text: "Prepare visual materials"},
				{ID: "2-4", Text: "Rehearse the delivery"},
				{ID: "2-5", Text: "Prepare answers to likely questions"},
			},
		},
		{
			ID:          "3",
			Title:       "New employee onboarding",
			Description: "Getting a new hire settled in their first days",
			Category:    "HR",
			Items: []ChecklistItem{
				{ID: "3-1", Text: "Prepare the workstation"},
				{ID: "3-2", Text: "Introduce the team"},
				{ID: "3-3", Text: "Set up system access"},
				{ID: "3-4", Text: "Run the introductory training"},
				{ID: "3-5", Text: "Assign a mentor"},
			},
		},
		{
			ID:          "4",
			Title:       "Financial reporting",
			Description: "Monthly financial reporting routine",
			Category:    "Finance",
			Items: []ChecklistItem{
				{ID: "4-1", Text: "Collect all documents"},
				{ID: "4-2", Text: "Verify balances"},
				{ID: "4-3", Text: "Prepare the profit and loss statement"},
				{ID: "4-4", Text: "Prepare the expense analysis"},
				{ID: "4-5", Text: "Get reports signed off by management"},
			},
		},
	}
}

// CatalogByID returns the catalog entry with the given id, if present.
func CatalogByID(id string) (Checklist, bool) {
	for _, c := range Catalog() {
		if c.ID == id {
			return c, true
		}
	}
	return Checklist{}, false
}
