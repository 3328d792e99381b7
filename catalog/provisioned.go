package catalog

import (
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/servicecatalog"

	"scmock/common"
)

// ProvisionedProduct is a launched instance of a product artifact, backed by
// a synthesized stack. Its status is AVAILABLE for its entire lifetime,
// termination only appends a record.
type ProvisionedProduct struct {
	ID                     string
	ARN                    string
	Region                 string
	Name                   string
	Type                   string
	Status                 string
	StackID                string
	Outputs                []common.StackOutput
	ProductID              string
	ProvisioningArtifactID string
	PathID                 string
	LaunchRoleARN          string
	IdempotencyToken       string

	LastRecordID                       string
	LastProvisioningRecordID           string
	LastSuccessfulProvisioningRecordID string

	CreatedTime time.Time
	UpdatedTime time.Time
}

func newProvisionedProduct(partition string, region string, accountID string, name string, stack *common.Stack, productID string, artifactID string, pathID string, launchRoleARN string, token string) *ProvisionedProduct {
	id := newResourceID(provisionedIDPrefix)
	now := time.Now().UTC()
	return &ProvisionedProduct{
		ID:                     id,
		ARN:                    resourceARN(partition, region, accountID, "provisioned-product", id),
		Region:                 region,
		Name:                   name,
		Type:                   common.ProvisionedProductTypeCfnStack,
		Status:                 common.StatusAvailable,
		StackID:                stack.ID,
		Outputs:                stack.Outputs,
		ProductID:              productID,
		ProvisioningArtifactID: artifactID,
		PathID:                 pathID,
		LaunchRoleARN:          launchRoleARN,
		IdempotencyToken:       token,
		CreatedTime:            now,
		UpdatedTime:            now,
	}
}

// setLastRecord moves all record pointers to the given record
func (pp *ProvisionedProduct) setLastRecord(recordID string) {
	pp.LastRecordID = recordID
	pp.LastProvisioningRecordID = recordID
	pp.LastSuccessfulProvisioningRecordID = recordID
	pp.UpdatedTime = time.Now().UTC()
}

// Detail projects the provisioned product onto its wire detail shape
func (pp *ProvisionedProduct) Detail() *servicecatalog.ProvisionedProductDetail {
	detail := &servicecatalog.ProvisionedProductDetail{
		Arn:                                aws.String(pp.ARN),
		CreatedTime:                        aws.Time(pp.CreatedTime),
		Id:                                 aws.String(pp.ID),
		IdempotencyToken:                   aws.String(pp.IdempotencyToken),
		LastProvisioningRecordId:           aws.String(pp.LastProvisioningRecordID),
		LastRecordId:                       aws.String(pp.LastRecordID),
		LastSuccessfulProvisioningRecordId: aws.String(pp.LastSuccessfulProvisioningRecordID),
		Name:                               aws.String(pp.Name),
		ProductId:                          aws.String(pp.ProductID),
		ProvisioningArtifactId:             aws.String(pp.ProvisioningArtifactID),
		Status:                             aws.String(pp.Status),
		Type:                               aws.String(pp.Type),
	}
	if pp.LaunchRoleARN != "" {
		detail.LaunchRoleArn = aws.String(pp.LaunchRoleARN)
	}
	return detail
}

// Attribute projects the provisioned product onto the shape returned by
// SearchProvisionedProducts, including its tags
func (pp *ProvisionedProduct) Attribute(tags []*servicecatalog.Tag) *servicecatalog.ProvisionedProductAttribute {
	return &servicecatalog.ProvisionedProductAttribute{
		Arn:                                aws.String(pp.ARN),
		CreatedTime:                        aws.Time(pp.CreatedTime),
		Id:                                 aws.String(pp.ID),
		IdempotencyToken:                   aws.String(pp.IdempotencyToken),
		LastProvisioningRecordId:           aws.String(pp.LastProvisioningRecordID),
		LastRecordId:                       aws.String(pp.LastRecordID),
		LastSuccessfulProvisioningRecordId: aws.String(pp.LastSuccessfulProvisioningRecordID),
		Name:                               aws.String(pp.Name),
		PhysicalId:                         aws.String(pp.StackID),
		ProductId:                          aws.String(pp.ProductID),
		ProvisioningArtifactId:             aws.String(pp.ProvisioningArtifactID),
		Status:                             aws.String(pp.Status),
		Tags:                               tags,
		Type:                               aws.String(pp.Type),
	}
}

// RecordOutputs projects the stored stack outputs, prefixed with an output
// carrying the backing stack ARN under the key SDK consumers look for
func (pp *ProvisionedProduct) RecordOutputs() []*servicecatalog.RecordOutput {
	outputs := []*servicecatalog.RecordOutput{
		{
			Description: aws.String("Arn of the provisioned stack"),
			OutputKey:   aws.String("CloudformationStackARN"),
			OutputValue: aws.String(pp.StackID),
		},
	}
	for _, output := range pp.Outputs {
		outputs = append(outputs, &servicecatalog.RecordOutput{
			Description: aws.String(output.Description),
			OutputKey:   aws.String(output.Key),
			OutputValue: aws.String(output.Value),
		})
	}
	return outputs
}

// FilterKeys lists the attribute names provisioned products can be searched on
func (pp *ProvisionedProduct) FilterKeys() []string {
	return []string{"name", "id", "arn", "productId", "provisioningArtifactId", "physicalId", "status", "lastRecordId"}
}

// FilterValue returns the provisioned product attribute for a filter field
func (pp *ProvisionedProduct) FilterValue(key string) (string, error) {
	switch key {
	case "name":
		return pp.Name, nil
	case "id":
		return pp.ID, nil
	case "arn":
		return pp.ARN, nil
	case "productId":
		return pp.ProductID, nil
	case "provisioningArtifactId":
		return pp.ProvisioningArtifactID, nil
	case "physicalId":
		return pp.StackID, nil
	case "status":
		return pp.Status, nil
	case "lastRecordId":
		return pp.LastRecordID, nil
	default:
		return common.Empty, &FilterNotImplementedError{Field: key}
	}
}
