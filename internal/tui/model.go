package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/eugenc/dialer-dashboard/internal/api"
	"github.com/eugenc/dialer-dashboard/internal/config"
	"github.com/eugenc/dialer-dashboard/internal/models"
	"github.com/eugenc/dialer-dashboard/internal/poller"
	"github.com/eugenc/dialer-dashboard/internal/view"
)

// Tabs.
const (
	tabOverview  = 0
	tabCalls     = 1
	tabLeads     = 2
	tabAnalytics = 3
)

// Model is the root Bubbletea model for the dashboard.
type Model struct {
	cfg    *config.Config
	client *api.Client
	logger zerolog.Logger

	// Polled resources
	stats *poller.Entry[*models.MonitorSnapshot]
	logs  *poller.Entry[[]models.CallLog]
	leads *poller.Entry[[]models.Lead]

	// UI state
	activeTab     int
	activeOverlay int
	width         int
	height        int

	// Derived view state
	callQuery view.Query
	leadQuery view.Query
	callTable *CallTable
	leadTable *LeadTable

	// Text entry modes
	searching   bool
	searchInput textinput.Model
	uploading   bool
	uploadInput textinput.Model

	// Confirm mode
	confirmMode int

	// Status display
	err    error
	notice string
}

// NewModel creates the initial dashboard model.
func NewModel(cfg *config.Config, client *api.Client, logger zerolog.Logger) *Model {
	search := textinput.New()
	search.Placeholder = "phone, name, answered by"
	search.CharLimit = 64

	upload := textinput.New()
	upload.Placeholder = "path/to/leads.csv"
	upload.CharLimit = 256

	return &Model{
		cfg:         cfg,
		client:      client,
		logger:      logger,
		stats:       poller.NewEntry[*models.MonitorSnapshot](keyStats),
		logs:        poller.NewEntry[[]models.CallLog](keyLogs),
		leads:       poller.NewEntry[[]models.Lead](keyLeads),
		callQuery:   view.NewQuery(view.FieldTimestamp),
		leadQuery:   view.NewQuery(view.FieldCreatedAt),
		callTable:   NewCallTable(),
		leadTable:   NewLeadTable(),
		searchInput: search,
		uploadInput: upload,
	}
}

// Init kicks off the first fetch cycle and the poll timer.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		m.refreshStatsCmd(),
		m.refreshLogsCmd(),
		m.refreshLeadsCmd(),
		pollTick(m.cfg.PollInterval),
	)
}

// Update processes messages and returns an updated model and commands.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateDimensions()
		return m, nil

	case TickMsg:
		return m, tea.Batch(
			m.refreshStatsCmd(),
			m.refreshLogsCmd(),
			m.refreshLeadsCmd(),
			pollTick(m.cfg.PollInterval),
		)

	case RefreshedMsg:
		if msg.Applied {
			switch msg.Key {
			case keyLogs:
				m.applyCallQuery()
			case keyLeads:
				m.applyLeadQuery()
			}
		}
		return m, nil

	case CampaignToggledMsg:
		if msg.Started {
			m.notice = "Campaign started"
		} else {
			m.notice = "Campaign stopped"
		}
		m.stats.Invalidate()
		return m, tea.Batch(m.refreshStatsCmd(), clearNoticeAfter(noticeTimeout))

	case UploadDoneMsg:
		m.notice = fmt.Sprintf("Upload complete: %d imported, %d skipped", msg.Imported, msg.Skipped)
		m.leads.Invalidate()
		return m, tea.Batch(m.refreshLeadsCmd(), clearNoticeAfter(noticeTimeout))

	case ExportDoneMsg:
		m.notice = "Exported to " + msg.Path
		return m, clearNoticeAfter(noticeTimeout)

	case ErrorMsg:
		m.err = msg.Err
		m.logger.Error().Err(msg.Err).Msg("dashboard action failed")
		return m, clearErrorAfter(errorTimeout)

	case ClearErrorMsg:
		m.err = nil
		return m, nil

	case ClearNoticeMsg:
		m.notice = ""
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Text entry modes swallow everything except enter/esc.
	if m.searching {
		return m.handleSearchKey(msg)
	}
	if m.uploading {
		return m.handleUploadKey(msg)
	}

	if m.confirmMode != confirmNone {
		return m.handleConfirmKey(msg)
	}

	if m.activeOverlay == overlayHelp {
		if key.Matches(msg, globalKeys.Help) || msg.String() == "esc" || key.Matches(msg, globalKeys.Quit) {
			m.activeOverlay = overlayNone
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, globalKeys.Quit):
		return m, tea.Quit

	case key.Matches(msg, globalKeys.Help):
		m.activeOverlay = overlayHelp
		return m, nil

	case key.Matches(msg, globalKeys.Refresh):
		m.stats.Invalidate()
		m.logs.Invalidate()
		m.leads.Invalidate()
		return m, tea.Batch(m.refreshStatsCmd(), m.refreshLogsCmd(), m.refreshLeadsCmd())

	case key.Matches(msg, tabKeys.Overview):
		m.activeTab = tabOverview
		return m, nil
	case key.Matches(msg, tabKeys.Calls):
		m.activeTab = tabCalls
		return m, nil
	case key.Matches(msg, tabKeys.Leads):
		m.activeTab = tabLeads
		return m, nil
	case key.Matches(msg, tabKeys.Analytics):
		m.activeTab = tabAnalytics
		return m, nil
	}

	switch m.activeTab {
	case tabOverview:
		return m.handleOverviewKey(msg)
	case tabCalls:
		return m.handleCallsKey(msg)
	case tabLeads:
		return m.handleLeadsKey(msg)
	}
	return m, nil
}

func (m *Model) handleOverviewKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, campaignKeys.Toggle) {
		snapshot, _, _ := m.stats.Get()
		if snapshot != nil && snapshot.Campaign.Active {
			m.confirmMode = confirmStop
		} else {
			m.confirmMode = confirmStart
		}
	}
	return m, nil
}

func (m *Model) handleCallsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, tableKeys.Up):
		m.callTable.MoveUp()
	case key.Matches(msg, tableKeys.Down):
		m.callTable.MoveDown()
	case key.Matches(msg, tableKeys.Search):
		m.searching = true
		m.searchInput.SetValue(m.callQuery.Search)
		m.searchInput.Focus()
		return m, textinput.Blink
	case key.Matches(msg, tableKeys.Filter):
		m.callQuery.Status = nextCallStatus(m.callQuery.Status)
		m.applyCallQuery()
	case key.Matches(msg, tableKeys.SortTime):
		m.callQuery = m.callQuery.Toggle(view.FieldTimestamp)
		m.applyCallQuery()
	case key.Matches(msg, tableKeys.SortPhone):
		m.callQuery = m.callQuery.Toggle(view.FieldPhone)
		m.applyCallQuery()
	case key.Matches(msg, tableKeys.SortStatus):
		m.callQuery = m.callQuery.Toggle(view.FieldStatus)
		m.applyCallQuery()
	case key.Matches(msg, tableKeys.SortExtra):
		m.callQuery = m.callQuery.Toggle(view.FieldDuration)
		m.applyCallQuery()
	case key.Matches(msg, tableKeys.ExportCSV):
		return m, m.exportCmd(false)
	case key.Matches(msg, tableKeys.ExportJSON):
		return m, m.exportCmd(true)
	}
	return m, nil
}

func (m *Model) handleLeadsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, tableKeys.Up):
		m.leadTable.MoveUp()
	case key.Matches(msg, tableKeys.Down):
		m.leadTable.MoveDown()
	case key.Matches(msg, tableKeys.Search):
		m.searching = true
		m.searchInput.SetValue(m.leadQuery.Search)
		m.searchInput.Focus()
		return m, textinput.Blink
	case key.Matches(msg, tableKeys.Filter):
		m.leadQuery.Status = nextLeadStatus(m.leadQuery.Status)
		m.applyLeadQuery()
	case key.Matches(msg, leadKeys.SortName):
		m.leadQuery = m.leadQuery.Toggle(view.FieldName)
		m.applyLeadQuery()
	case key.Matches(msg, tableKeys.SortTime):
		m.leadQuery = m.leadQuery.Toggle(view.FieldLastAttempt)
		m.applyLeadQuery()
	case key.Matches(msg, tableKeys.SortPhone):
		m.leadQuery = m.leadQuery.Toggle(view.FieldPhone)
		m.applyLeadQuery()
	case key.Matches(msg, tableKeys.SortStatus):
		m.leadQuery = m.leadQuery.Toggle(view.FieldStatus)
		m.applyLeadQuery()
	case key.Matches(msg, tableKeys.SortExtra):
		m.leadQuery = m.leadQuery.Toggle(view.FieldRetryCount)
		m.applyLeadQuery()
	case key.Matches(msg, leadKeys.Upload):
		m.uploading = true
		m.uploadInput.SetValue("")
		m.uploadInput.Focus()
		return m, textinput.Blink
	case key.Matches(msg, tableKeys.ExportCSV):
		return m, m.exportCmd(false)
	case key.Matches(msg, tableKeys.ExportJSON):
		return m, m.exportCmd(true)
	}
	return m, nil
}

// handleSearchKey edits the search text. The filter applies live on
// every keystroke; Esc clears it, Enter keeps it.
func (m *Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.searching = false
		m.searchInput.Blur()
		return m, nil
	case "esc":
		m.searching = false
		m.searchInput.Blur()
		m.setSearch("")
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	m.setSearch(m.searchInput.Value())
	return m, cmd
}

func (m *Model) handleUploadKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.uploading = false
		m.uploadInput.Blur()
		path := m.uploadInput.Value()
		if path == "" {
			return m, nil
		}
		return m, m.uploadLeadsCmd(path)
	case "esc":
		m.uploading = false
		m.uploadInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.uploadInput, cmd = m.uploadInput.Update(msg)
	return m, cmd
}

func (m *Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, confirmKeys.Yes):
		start := m.confirmMode == confirmStart
		m.confirmMode = confirmNone
		return m, m.toggleCampaignCmd(start)
	case key.Matches(msg, confirmKeys.No), key.Matches(msg, confirmKeys.Cancel):
		m.confirmMode = confirmNone
	}
	return m, nil
}

func (m *Model) setSearch(term string) {
	switch m.activeTab {
	case tabLeads:
		m.leadQuery.Search = term
		m.applyLeadQuery()
	default:
		m.callQuery.Search = term
		m.applyCallQuery()
	}
}

// applyCallQuery recomputes the derived call collection from the cached
// source records.
func (m *Model) applyCallQuery() {
	calls, _, _ := m.logs.Get()
	m.callTable.SetRows(view.ApplyCalls(calls, m.callQuery))
}

func (m *Model) applyLeadQuery() {
	leads, _, _ := m.leads.Get()
	m.leadTable.SetRows(view.ApplyLeads(leads, m.leadQuery))
}

func (m *Model) updateDimensions() {
	layout := computeLayout(m.width, m.height)
	// Border rows, table header, and the query line sit above the rows.
	tableHeight := layout.contentHeight - 5
	if tableHeight < 1 {
		tableHeight = 1
	}
	m.callTable.SetHeight(tableHeight)
	m.leadTable.SetHeight(tableHeight)
}

// nextCallStatus cycles the exact-match status filter through "all" and
// every known call status.
func nextCallStatus(current string) string {
	cycle := []string{models.StatusAll}
	for _, s := range models.KnownCallStatuses {
		cycle = append(cycle, string(s))
	}
	return nextInCycle(cycle, current)
}

func nextLeadStatus(current string) string {
	cycle := []string{models.StatusAll}
	for _, s := range models.KnownLeadStatuses {
		cycle = append(cycle, string(s))
	}
	return nextInCycle(cycle, current)
}

func nextInCycle(cycle []string, current string) string {
	for i, s := range cycle {
		if s == current {
			return cycle[(i+1)%len(cycle)]
		}
	}
	return cycle[0]
}
