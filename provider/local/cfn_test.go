package local

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const testTemplate = `
---
Resources:
  Bucket:
    Type: AWS::S3::Bucket
Outputs:
  BucketName:
    Description: Name of the bucket
    Value:
      Ref: Bucket
  BucketArn:
    Value:
      Fn::GetAtt:
        - Bucket
        - Arn
  Literal:
    Value: some-value
`

func TestCreateStack(t *testing.T) {
	assert := assert.New(t)

	engine := newStackProvisioner()
	stack, err := engine.CreateStack("123456789012", "us-east-1", "widget-1", testTemplate)

	assert.Nil(err)
	assert.NotNil(stack)
	assert.Equal("widget-1", stack.Name)
	assert.True(strings.HasPrefix(stack.ID, "arn:aws:cloudformation:us-east-1:123456789012:stack/widget-1/"))

	assert.Equal(3, len(stack.Outputs))
	assert.Equal("BucketArn", stack.Outputs[0].Key)
	assert.Equal("Bucket.Arn", stack.Outputs[0].Value)
	assert.Equal("BucketName", stack.Outputs[1].Key)
	assert.Equal("Bucket", stack.Outputs[1].Value)
	assert.Equal("Name of the bucket", stack.Outputs[1].Description)
	assert.Equal("Literal", stack.Outputs[2].Key)
	assert.Equal("some-value", stack.Outputs[2].Value)
}

func TestCreateStack_emptyTemplate(t *testing.T) {
	assert := assert.New(t)

	engine := newStackProvisioner()
	stack, err := engine.CreateStack("123456789012", "us-east-1", "widget-1", "   ")

	assert.NotNil(err)
	assert.Nil(stack)
}

func TestCreateStack_invalidTemplate(t *testing.T) {
	assert := assert.New(t)

	engine := newStackProvisioner()
	stack, err := engine.CreateStack("123456789012", "us-east-1", "widget-1", "Resources: [oops")

	assert.NotNil(err)
	assert.Nil(stack)
}

func TestCreateStack_uniqueStackIDs(t *testing.T) {
	assert := assert.New(t)

	engine := newStackProvisioner()
	first, err := engine.CreateStack("123456789012", "us-east-1", "widget-1", testTemplate)
	assert.Nil(err)
	second, err := engine.CreateStack("123456789012", "us-east-1", "widget-1", testTemplate)
	assert.Nil(err)

	assert.NotEqual(first.ID, second.ID)
}
