package output

// LintSummary aggregates diagnostic counts for a lint run.
type LintSummary struct {
	FilesAnalyzed   int `json:"files_analyzed"`
	FilesWithIssues int `json:"files_with_issues"`
	TotalIssues     int `json:"total_issues"`
	Errors          int `json:"errors"`
	Warnings        int `json:"warnings"`
	Info            int `json:"info"`
	Hints           int `json:"hints"`
}

// LintOutput is the JSON document printed by `pandalint lint --output json`.
type LintOutput struct {
	Summary LintSummary      `json:"summary"`
	Files   []LintFileResult `json:"files"`
	Failed  []LintFailure    `json:"failed,omitempty"`
}

// LintFileResult holds the diagnostics of one file.
type LintFileResult struct {
	Path        string           `json:"path"`
	Diagnostics []LintDiagnostic `json:"diagnostics"`
}

// LintDiagnostic is the JSON view of one diagnostic.
type LintDiagnostic struct {
	RuleID      string            `json:"rule_id"`
	Severity    string            `json:"severity"`
	MessageID   string            `json:"message_id,omitempty"`
	Message     string            `json:"message"`
	Data        map[string]string `json:"data,omitempty"`
	Line        int               `json:"line"`
	Column      int               `json:"column"`
	EndLine     int               `json:"end_line"`
	EndColumn   int               `json:"end_column"`
	Suggestions []string          `json:"suggestions,omitempty"`
	DocURL      string            `json:"doc_url,omitempty"`
}

// LintFailure records a file that could not be analyzed.
type LintFailure struct {
	Path  string `json:"path"`
	Error string `json:"error"`
}
