package utils

import (
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/stretchr/testify/assert"
)

func TestGetTagValue(t *testing.T) {
	tags := []types.Tag{
		{Key: aws.String("Name"), Value: aws.String("web-01")},
		{Key: aws.String("Empty"), Value: nil},
	}

	assert.Equal(t, "web-01", GetTagValue(tags, "Name"))
	assert.Equal(t, "", GetTagValue(tags, "Empty"))
	assert.Equal(t, "", GetTagValue(tags, "Missing"))
}

func TestGetName(t *testing.T) {
	tags := []types.Tag{
		{Key: aws.String("Name"), Value: aws.String("web-01")},
	}
	assert.Equal(t, "web-01", GetName(tags))
	assert.Equal(t, "", GetName(nil))
}

func TestGetTagsMap(t *testing.T) {
	tags := []types.Tag{
		{Key: aws.String("Name"), Value: aws.String("web-01")},
		{Key: aws.String("Env"), Value: aws.String("prod")},
		{Key: aws.String("Broken"), Value: nil},
	}

	assert.Equal(t, map[string]string{"Name": "web-01", "Env": "prod"}, GetTagsMap(tags))
}

func TestDefaultRegion(t *testing.T) {
	assert.Equal(t, "ap-southeast-2", GetDefaultRegion())
	assert.True(t, IsValidRegion(GetDefaultRegion()))
	assert.False(t, IsValidRegion("mars-north-1"))
}
