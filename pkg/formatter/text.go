package formatter

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/mkim-ops/ec2detail/internal/models"
)

// FormatInstancesText writes the human-readable report. Instances keep
// their lookup order; when more than one matched, each gets a numbered
// section header.
func FormatInstancesText(writer io.Writer, instances []models.InstanceRecord) {
	for i, instance := range instances {
		if len(instances) > 1 {
			fmt.Fprintf(writer, "\n%s\n", strings.Repeat("=", 50))
			fmt.Fprintf(writer, "INSTANCE %d of %d\n", i+1, len(instances))
			fmt.Fprintf(writer, "%s\n", strings.Repeat("=", 50))
		}
		formatInstance(writer, instance)
	}
}

func formatInstance(writer io.Writer, instance models.InstanceRecord) {
	fmt.Fprintf(writer, "Instance ID: %s\n", instance.InstanceID)
	fmt.Fprintf(writer, "Instance Type: %s\n", instance.InstanceType)
	fmt.Fprintf(writer, "State: %s\n", instance.State)
	fmt.Fprintf(writer, "Launch Time: %s (%s)\n",
		instance.LaunchTime.Format(time.RFC3339), humanize.Time(instance.LaunchTime))
	fmt.Fprintf(writer, "Architecture: %s\n", instance.Architecture)
	fmt.Fprintf(writer, "Platform: %s\n", instance.Platform)

	fmt.Fprintf(writer, "\nNetwork Details:\n")
	fmt.Fprintf(writer, "  VPC ID: %s\n", instance.VpcID)
	fmt.Fprintf(writer, "  Subnet ID: %s\n", instance.SubnetID)
	fmt.Fprintf(writer, "  Private IP: %s\n", instance.PrivateIPAddress)
	if instance.PublicIPAddress != "" {
		fmt.Fprintf(writer, "  Public IP: %s\n", instance.PublicIPAddress)
	}
	fmt.Fprintf(writer, "  Private DNS: %s\n", instance.PrivateDNSName)
	if instance.PublicDNSName != "" {
		fmt.Fprintf(writer, "  Public DNS: %s\n", instance.PublicDNSName)
	}

	fmt.Fprintf(writer, "\nSecurity Groups:\n")
	for _, group := range instance.SecurityGroups {
		fmt.Fprintf(writer, "  - %s (%s)\n", group.GroupName, group.GroupID)
	}

	fmt.Fprintf(writer, "\nTags:\n")
	if len(instance.Tags) > 0 {
		keys := make([]string, 0, len(instance.Tags))
		for key := range instance.Tags {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			fmt.Fprintf(writer, "  %s: %s\n", key, instance.Tags[key])
		}
	} else {
		fmt.Fprintln(writer, "  No tags found")
	}

	fmt.Fprintf(writer, "\nStorage:\n")
	for _, attachment := range instance.Attachments {
		formatAttachment(writer, attachment, instance.VolumeDetails)
	}

	fmt.Fprintf(writer, "\nAvailability Zone: %s\n", instance.AvailabilityZone)
	if instance.KeyName != "" {
		fmt.Fprintf(writer, "Key Pair: %s\n", instance.KeyName)
	}
}

func formatAttachment(writer io.Writer, attachment models.StorageAttachment, volumes map[string]models.VolumeRecord) {
	if attachment.Status == models.AttachmentEphemeral {
		fmt.Fprintf(writer, "  %s: Instance store volume\n", attachment.DeviceName)
		return
	}

	volume, ok := volumes[attachment.VolumeID]
	if !ok {
		fmt.Fprintf(writer, "  %s: %s (details unavailable)\n", attachment.DeviceName, attachment.VolumeID)
		return
	}

	fmt.Fprintf(writer, "  %s: %s\n", attachment.DeviceName, attachment.VolumeID)
	fmt.Fprintf(writer, "    Size: %d GB\n", volume.Size)
	fmt.Fprintf(writer, "    Type: %s\n", volume.VolumeType)
	fmt.Fprintf(writer, "    State: %s\n", volume.State)
	fmt.Fprintf(writer, "    Encrypted: %t\n", volume.Encrypted)
	if volume.Iops != nil {
		fmt.Fprintf(writer, "    IOPS: %d\n", *volume.Iops)
	}
	if volume.Throughput != nil {
		fmt.Fprintf(writer, "    Throughput: %d MB/s\n", *volume.Throughput)
	}
}
