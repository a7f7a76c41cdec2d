package tui

import "github.com/charmbracelet/bubbles/key"

// GlobalKeys are always active outside of text entry.
type GlobalKeys struct {
	Quit    key.Binding
	Help    key.Binding
	Refresh key.Binding
}

var globalKeys = GlobalKeys{
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Refresh: key.NewBinding(
		key.WithKeys("R"),
		key.WithHelp("R", "refresh now"),
	),
}

// TabKeys switch the active tab.
type TabKeys struct {
	Overview  key.Binding
	Calls     key.Binding
	Leads     key.Binding
	Analytics key.Binding
}

var tabKeys = TabKeys{
	Overview: key.NewBinding(
		key.WithKeys("1"),
		key.WithHelp("1", "Overview"),
	),
	Calls: key.NewBinding(
		key.WithKeys("2"),
		key.WithHelp("2", "Calls"),
	),
	Leads: key.NewBinding(
		key.WithKeys("3"),
		key.WithHelp("3", "Leads"),
	),
	Analytics: key.NewBinding(
		key.WithKeys("4"),
		key.WithHelp("4", "Analytics"),
	),
}

// TableKeys are active when a record table is focused.
type TableKeys struct {
	Up         key.Binding
	Down       key.Binding
	Search     key.Binding
	Filter     key.Binding
	SortTime   key.Binding
	SortPhone  key.Binding
	SortStatus key.Binding
	SortExtra  key.Binding
	ExportCSV  key.Binding
	ExportJSON key.Binding
}

var tableKeys = TableKeys{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("j/k", "navigate"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("j/k", "navigate"),
	),
	Search: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "search"),
	),
	Filter: key.NewBinding(
		key.WithKeys("f"),
		key.WithHelp("f", "cycle status filter"),
	),
	SortTime: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "sort by time"),
	),
	SortPhone: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "sort by phone"),
	),
	SortStatus: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "sort by status"),
	),
	// duration on the calls tab, retry count on the leads tab
	SortExtra: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "sort by duration/retries"),
	),
	ExportCSV: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "export CSV"),
	),
	ExportJSON: key.NewBinding(
		key.WithKeys("E"),
		key.WithHelp("E", "export JSON"),
	),
}

// CampaignKeys control the campaign from the overview tab.
type CampaignKeys struct {
	Toggle key.Binding
}

var campaignKeys = CampaignKeys{
	Toggle: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "start/stop campaign"),
	),
}

// LeadKeys are lead-tab extras.
type LeadKeys struct {
	Upload   key.Binding
	SortName key.Binding
}

var leadKeys = LeadKeys{
	Upload: key.NewBinding(
		key.WithKeys("u"),
		key.WithHelp("u", "upload leads CSV"),
	),
	SortName: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "sort by name"),
	),
}

// ConfirmKeys for inline confirmation prompts.
type ConfirmKeys struct {
	Yes    key.Binding
	No     key.Binding
	Cancel key.Binding
}

var confirmKeys = ConfirmKeys{
	Yes: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "confirm"),
	),
	No: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "cancel"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("Esc", "cancel"),
	),
}
