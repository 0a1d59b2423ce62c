// Package enrich joins fetched volume metadata back onto the instances
// that reference it.
package enrich

import "github.com/mkim-ops/ec2detail/internal/models"

// CollectVolumeIDs returns every EBS-backed volume ID referenced by the
// given instances, deduplicated in first-seen order. Instances sharing a
// volume contribute its ID once, so each volume is described at most once
// per run.
func CollectVolumeIDs(instances []models.InstanceRecord) []string {
	seen := map[string]bool{}
	ids := []string{}

	for _, instance := range instances {
		for _, attachment := range instance.Attachments {
			if attachment.VolumeID == "" || seen[attachment.VolumeID] {
				continue
			}
			seen[attachment.VolumeID] = true
			ids = append(ids, attachment.VolumeID)
		}
	}

	return ids
}

// Merge attaches volume metadata onto each instance and classifies every
// attachment as resolved, ephemeral or unresolved. Pure function: inputs
// are never mutated, the result is a new slice with the same order.
// Volumes missing from the map simply get no VolumeDetails entry; that is
// the downstream signal for "details unavailable", not an error.
func Merge(instances []models.InstanceRecord, volumes map[string]models.VolumeRecord) []models.InstanceRecord {
	merged := make([]models.InstanceRecord, 0, len(instances))

	for _, instance := range instances {
		record := instance
		record.Attachments = make([]models.StorageAttachment, 0, len(instance.Attachments))
		record.VolumeDetails = map[string]models.VolumeRecord{}

		for _, attachment := range instance.Attachments {
			if attachment.VolumeID == "" {
				attachment.Status = models.AttachmentEphemeral
			} else if volume, ok := volumes[attachment.VolumeID]; ok {
				attachment.Status = models.AttachmentResolved
				record.VolumeDetails[attachment.VolumeID] = volume
			} else {
				attachment.Status = models.AttachmentUnresolved
			}
			record.Attachments = append(record.Attachments, attachment)
		}

		merged = append(merged, record)
	}

	return merged
}
