package catalog

import (
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/servicecatalog"
)

// Record is the audit entry for a provisioning action. Records are append
// only and never transition out of their initial status.
type Record struct {
	ID                      string
	ARN                     string
	Region                  string
	Type                    string
	Status                  string
	ProductID               string
	ProvisionedProductID    string
	ProvisionedProductName  string
	ProvisionedProductType  string
	ProvisioningArtifactID  string
	PathID                  string
	LaunchRoleARN           string
	Errors                  []*servicecatalog.RecordError
	Tags                    []*servicecatalog.RecordTag
	CreatedTime             time.Time
	UpdatedTime             time.Time
}

func newRecord(partition string, region string, accountID string, recordType string, status string, provisioned *ProvisionedProduct) *Record {
	id := newResourceID(recordIDPrefix)
	now := time.Now().UTC()
	return &Record{
		ID:                     id,
		ARN:                    resourceARN(partition, region, accountID, "record", id),
		Region:                 region,
		Type:                   recordType,
		Status:                 status,
		ProductID:              provisioned.ProductID,
		ProvisionedProductID:   provisioned.ID,
		ProvisionedProductName: provisioned.Name,
		ProvisionedProductType: provisioned.Type,
		ProvisioningArtifactID: provisioned.ProvisioningArtifactID,
		PathID:                 provisioned.PathID,
		LaunchRoleARN:          provisioned.LaunchRoleARN,
		Errors:                 []*servicecatalog.RecordError{},
		Tags:                   []*servicecatalog.RecordTag{},
		CreatedTime:            now,
		UpdatedTime:            now,
	}
}

// Detail projects the record onto its wire detail shape
func (r *Record) Detail() *servicecatalog.RecordDetail {
	detail := &servicecatalog.RecordDetail{
		CreatedTime:            aws.Time(r.CreatedTime),
		PathId:                 aws.String(r.PathID),
		ProductId:              aws.String(r.ProductID),
		ProvisionedProductId:   aws.String(r.ProvisionedProductID),
		ProvisionedProductName: aws.String(r.ProvisionedProductName),
		ProvisionedProductType: aws.String(r.ProvisionedProductType),
		ProvisioningArtifactId: aws.String(r.ProvisioningArtifactID),
		RecordErrors:           r.Errors,
		RecordId:               aws.String(r.ID),
		RecordTags:             r.Tags,
		RecordType:             aws.String(r.Type),
		Status:                 aws.String(r.Status),
		UpdatedTime:            aws.Time(r.UpdatedTime),
	}
	if r.LaunchRoleARN != "" {
		detail.LaunchRoleArn = aws.String(r.LaunchRoleARN)
	}
	return detail
}
