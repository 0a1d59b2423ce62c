package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/mkim-ops/ec2detail/internal/models"
	"github.com/mkim-ops/ec2detail/pkg/utils"
)

// EC2API is the slice of the EC2 SDK surface this tool consumes. Both
// embedded interfaces are satisfied by *ec2.Client and by test doubles,
// and keep the SDK paginators usable against either.
type EC2API interface {
	ec2.DescribeInstancesAPIClient
	ec2.DescribeVolumesAPIClient
}

// EC2Client struct for EC2 lookups
type EC2Client struct {
	api    EC2API
	region string
}

// Lifecycle states worth reporting on. Terminated instances are gone for
// all practical purposes and are excluded from the lookup.
var searchableStates = []string{"running", "stopped", "stopping", "pending", "shutting-down"}

// NewEC2Client creates a new EC2Client for the given region
func NewEC2Client(region string) (*EC2Client, error) {
	cfg, err := config.LoadDefaultConfig(context.TODO(), config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("error loading AWS config: %w", err)
	}

	return &EC2Client{
		api:    ec2.NewFromConfig(cfg),
		region: region,
	}, nil
}

// NewEC2ClientFromAPI wraps an existing API implementation
func NewEC2ClientFromAPI(api EC2API, region string) *EC2Client {
	return &EC2Client{
		api:    api,
		region: region,
	}
}

// FindInstancesByName returns every non-terminated instance whose Name tag
// equals name, flattened across reservations in API order. An empty result
// with a nil error means nothing matched.
func (c *EC2Client) FindInstancesByName(ctx context.Context, name string) ([]models.InstanceRecord, error) {
	input := &ec2.DescribeInstancesInput{
		Filters: []types.Filter{
			{
				Name:   aws.String("tag:Name"),
				Values: []string{name},
			},
			{
				Name:   aws.String("instance-state-name"),
				Values: searchableStates,
			},
		},
	}

	records := []models.InstanceRecord{}

	paginator := ec2.NewDescribeInstancesPaginator(c.api, input)
	for paginator.HasMorePages() {
		output, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("error querying EC2 instances in %s: %w", c.region, err)
		}

		for _, reservation := range output.Reservations {
			for _, instance := range reservation.Instances {
				records = append(records, newInstanceRecord(instance))
			}
		}
	}

	return records, nil
}

// newInstanceRecord converts an SDK instance into the report model
func newInstanceRecord(instance types.Instance) models.InstanceRecord {
	record := models.InstanceRecord{
		InstanceID:       aws.ToString(instance.InstanceId),
		InstanceType:     string(instance.InstanceType),
		LaunchTime:       aws.ToTime(instance.LaunchTime),
		Architecture:     string(instance.Architecture),
		Platform:         platformName(instance.Platform),
		VpcID:            aws.ToString(instance.VpcId),
		SubnetID:         aws.ToString(instance.SubnetId),
		PrivateIPAddress: aws.ToString(instance.PrivateIpAddress),
		PublicIPAddress:  aws.ToString(instance.PublicIpAddress),
		PrivateDNSName:   aws.ToString(instance.PrivateDnsName),
		PublicDNSName:    aws.ToString(instance.PublicDnsName),
		Tags:             utils.GetTagsMap(instance.Tags),
		KeyName:          aws.ToString(instance.KeyName),
	}

	if instance.State != nil {
		record.State = string(instance.State.Name)
	}
	if instance.Placement != nil {
		record.AvailabilityZone = aws.ToString(instance.Placement.AvailabilityZone)
	}

	record.SecurityGroups = make([]models.SecurityGroup, 0, len(instance.SecurityGroups))
	for _, group := range instance.SecurityGroups {
		record.SecurityGroups = append(record.SecurityGroups, models.SecurityGroup{
			GroupID:   aws.ToString(group.GroupId),
			GroupName: aws.ToString(group.GroupName),
		})
	}

	record.Attachments = make([]models.StorageAttachment, 0, len(instance.BlockDeviceMappings))
	for _, bdm := range instance.BlockDeviceMappings {
		attachment := models.StorageAttachment{
			DeviceName: aws.ToString(bdm.DeviceName),
		}
		if bdm.Ebs != nil {
			attachment.VolumeID = aws.ToString(bdm.Ebs.VolumeId)
		}
		record.Attachments = append(record.Attachments, attachment)
	}

	return record
}

// platformName returns the platform reported by the API, defaulting to
// Linux/Unix which the API leaves blank
func platformName(platform types.PlatformValues) string {
	if platform == "" {
		return "Linux/Unix"
	}
	return string(platform)
}
