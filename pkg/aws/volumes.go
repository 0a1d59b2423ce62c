package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/mkim-ops/ec2detail/internal/models"
)

// GetVolumeDetails fetches metadata for the given volume IDs in one
// batched DescribeVolumes call. Volume enrichment is best-effort: a failed
// call degrades to an empty map with a printed warning instead of aborting
// the lookup. An empty ID list returns immediately without calling the API.
func (c *EC2Client) GetVolumeDetails(ctx context.Context, volumeIDs []string) map[string]models.VolumeRecord {
	details := map[string]models.VolumeRecord{}

	if len(volumeIDs) == 0 {
		return details
	}

	input := &ec2.DescribeVolumesInput{
		VolumeIds: volumeIDs,
	}

	paginator := ec2.NewDescribeVolumesPaginator(c.api, input)
	for paginator.HasMorePages() {
		output, err := paginator.NextPage(ctx)
		if err != nil {
			fmt.Printf("Warning: Could not retrieve volume details in %s: %v\n", c.region, err)
			return map[string]models.VolumeRecord{}
		}

		for _, volume := range output.Volumes {
			details[aws.ToString(volume.VolumeId)] = newVolumeRecord(volume)
		}
	}

	return details
}

// newVolumeRecord converts an SDK volume into the report model
func newVolumeRecord(volume types.Volume) models.VolumeRecord {
	record := models.VolumeRecord{
		Size:             aws.ToInt32(volume.Size),
		VolumeType:       string(volume.VolumeType),
		State:            string(volume.State),
		Encrypted:        aws.ToBool(volume.Encrypted),
		Iops:             volume.Iops,
		Throughput:       volume.Throughput,
		AvailabilityZone: aws.ToString(volume.AvailabilityZone),
		CreateTime:       aws.ToTime(volume.CreateTime),
	}

	// The API reports an empty snapshot ID for volumes created from
	// scratch; normalize that to the not-applicable marker.
	if aws.ToString(volume.SnapshotId) != "" {
		record.SnapshotID = volume.SnapshotId
	}

	return record
}
