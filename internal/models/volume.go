package models

import "time"

// VolumeRecord represents EBS volume metadata.
// Iops, Throughput and SnapshotID are nil when the volume type does not
// carry them; they marshal as null rather than disappearing from the JSON.
type VolumeRecord struct {
	Size             int32     `json:"Size"`
	VolumeType       string    `json:"VolumeType"`
	State            string    `json:"State"`
	Encrypted        bool      `json:"Encrypted"`
	Iops             *int32    `json:"Iops"`
	Throughput       *int32    `json:"Throughput"`
	SnapshotID       *string   `json:"SnapshotId"`
	AvailabilityZone string    `json:"AvailabilityZone"`
	CreateTime       time.Time `json:"CreateTime"`
}
