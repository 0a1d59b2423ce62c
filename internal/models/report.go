package models

import "time"

// ReportResult is the structured output of one lookup.
// Timestamp is the launch time of the first matched instance and is
// omitted when no instance matched.
type ReportResult struct {
	SearchQuery   string           `json:"search_query"`
	Region        string           `json:"region"`
	Timestamp     *time.Time       `json:"timestamp,omitempty"`
	InstanceCount int              `json:"instance_count"`
	Instances     []InstanceRecord `json:"instances"`
}
