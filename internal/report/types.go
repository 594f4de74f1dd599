package report

// GenerateInput asks for the result report of a finished run.
type GenerateInput struct {
	RunID string
}

// GenerateOutput describes the stored report file.
type GenerateOutput struct {
	RunID      string `json:"run_id"`
	ObjectName string `json:"object_name"`
	FileFormat string `json:"file_format"`
	Rows       int    `json:"rows"`
}

// DownloadInput fetches a download link for a generated report.
type DownloadInput struct {
	RunID string
}

// DownloadOutput carries a time-limited download link.
type DownloadOutput struct {
	DownloadURL string `json:"download_url"`
	ExpiresAt   string `json:"expires_at"`
	FileName    string `json:"file_name"`
}
