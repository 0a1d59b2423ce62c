package models

import "time"

// AttachmentStatus classifies a storage attachment after enrichment.
type AttachmentStatus string

const (
	// AttachmentResolved means full volume metadata was fetched.
	AttachmentResolved AttachmentStatus = "resolved"
	// AttachmentEphemeral marks instance-store (non-EBS) attachments.
	AttachmentEphemeral AttachmentStatus = "ephemeral"
	// AttachmentUnresolved means the volume fetch failed or was skipped.
	AttachmentUnresolved AttachmentStatus = "unresolved"
)

// StorageAttachment is one entry of an instance's block device mapping.
// VolumeID is empty for instance-store devices. Status is set by the
// enrichment merge, not by the resolver.
type StorageAttachment struct {
	DeviceName string           `json:"DeviceName"`
	VolumeID   string           `json:"VolumeId,omitempty"`
	Status     AttachmentStatus `json:"Status,omitempty"`
}

// SecurityGroup identifies a security group attached to an instance.
type SecurityGroup struct {
	GroupID   string `json:"GroupId"`
	GroupName string `json:"GroupName"`
}

// InstanceRecord represents one EC2 instance matched by the name lookup.
// VolumeDetails holds metadata keyed by volume ID for the attachments
// whose volumes were successfully described; attachments without an entry
// render as "details unavailable".
type InstanceRecord struct {
	InstanceID       string                  `json:"InstanceId"`
	InstanceType     string                  `json:"InstanceType"`
	State            string                  `json:"State"`
	LaunchTime       time.Time               `json:"LaunchTime"`
	Architecture     string                  `json:"Architecture"`
	Platform         string                  `json:"Platform"`
	VpcID            string                  `json:"VpcId"`
	SubnetID         string                  `json:"SubnetId"`
	PrivateIPAddress string                  `json:"PrivateIpAddress"`
	PublicIPAddress  string                  `json:"PublicIpAddress,omitempty"`
	PrivateDNSName   string                  `json:"PrivateDnsName"`
	PublicDNSName    string                  `json:"PublicDnsName,omitempty"`
	SecurityGroups   []SecurityGroup         `json:"SecurityGroups"`
	Tags             map[string]string       `json:"Tags"`
	Attachments      []StorageAttachment     `json:"BlockDeviceMappings"`
	VolumeDetails    map[string]VolumeRecord `json:"VolumeDetails"`
	AvailabilityZone string                  `json:"AvailabilityZone"`
	KeyName          string                  `json:"KeyName,omitempty"`
}
