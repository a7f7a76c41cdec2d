package tui

// RefreshedMsg signals that a cache entry settled a fetch cycle. The
// model re-reads the entry; the message carries only the key.
type RefreshedMsg struct {
	Key     string
	Applied bool
}

// CampaignToggledMsg signals a start/stop request completed.
type CampaignToggledMsg struct {
	Started bool
}

// UploadDoneMsg carries the result of a lead CSV upload.
type UploadDoneMsg struct {
	Imported int
	Skipped  int
}

// ExportDoneMsg carries the path of a written export file.
type ExportDoneMsg struct {
	Path string
}

// ErrorMsg carries an error to display.
type ErrorMsg struct {
	Err error
}

// TickMsg is the periodic poll tick.
type TickMsg struct{}

// ClearErrorMsg clears the error display.
type ClearErrorMsg struct{}

// ClearNoticeMsg clears the transient notice display.
type ClearNoticeMsg struct{}
