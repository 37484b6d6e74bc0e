package model

import "time"

// Dataset origins
const (
	OriginDefault = "default"
	OriginUpload  = "upload"
)

// Dataset load outcomes
const (
	LoadAccepted = "accepted"
	LoadRejected = "rejected"
)

// DatasetInfo describes the table currently shown by the dashboard
type DatasetInfo struct {
	ID       string    `json:"id" yaml:"id"`
	Origin   string    `json:"origin" yaml:"origin"`
	Name     string    `json:"name" yaml:"name"`
	Records  int       `json:"records" yaml:"records"`
	Default  bool      `json:"default" yaml:"default"`
	LoadedAt time.Time `json:"loaded_at" yaml:"loaded_at"`
}

// DatasetLoad is one entry of the dataset history, accepted or rejected
type DatasetLoad struct {
	ID          string    `json:"id"`
	Origin      string    `json:"origin"`
	Name        string    `json:"name"`
	Status      string    `json:"status"`
	Records     int       `json:"records"`
	SizeBytes   int64     `json:"size_bytes"`
	Error       string    `json:"error,omitempty"`
	ArchivePath string    `json:"archive_path,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Analysis is a stored result of the ad-hoc text analyzer
type Analysis struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Label     string    `json:"label"`
	Summary   string    `json:"summary"`
	CreatedAt time.Time `json:"created_at"`
}

// InsightImage is an externally generated chart the dashboard can show
type InsightImage struct {
	Name      string `json:"name" yaml:"name"`
	Title     string `json:"title" yaml:"title"`
	Caption   string `json:"caption" yaml:"caption"`
	Available bool   `json:"available" yaml:"available"`
	URL       string `json:"url,omitempty" yaml:"url,omitempty"`
	Warning   string `json:"warning,omitempty" yaml:"warning,omitempty"`
}
