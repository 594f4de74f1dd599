package http

import "usernotes-srv/internal/report"

// =====================================================
// Response DTOs
// =====================================================

type generateResp struct {
	RunID      string `json:"run_id"`
	ObjectName string `json:"object_name"`
	FileFormat string `json:"file_format"`
	Rows       int    `json:"rows"`
}

type downloadResp struct {
	DownloadURL string `json:"download_url"`
	ExpiresAt   string `json:"expires_at"`
	FileName    string `json:"file_name"`
}

func newGenerateResp(output report.GenerateOutput) generateResp {
	return generateResp{
		RunID:      output.RunID,
		ObjectName: output.ObjectName,
		FileFormat: output.FileFormat,
		Rows:       output.Rows,
	}
}

func newDownloadResp(output report.DownloadOutput) downloadResp {
	return downloadResp{
		DownloadURL: output.DownloadURL,
		ExpiresAt:   output.ExpiresAt,
		FileName:    output.FileName,
	}
}
