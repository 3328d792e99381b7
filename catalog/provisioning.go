package catalog

import (
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/servicecatalog"

	"scmock/common"
)

// ProvisionProduct launches a stack for a product artifact and records the
// action. The stack is created before any registry state is mutated, so a
// provisioner failure leaves no partial entities behind.
func (r *Registry) ProvisionProduct(input *servicecatalog.ProvisionProductInput) (*servicecatalog.ProvisionProductOutput, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	product, err := r.resolveProduct(aws.StringValue(input.ProductId), aws.StringValue(input.ProductName))
	if err != nil {
		return nil, err
	}
	artifact, err := product.FindArtifact(aws.StringValue(input.ProvisioningArtifactId), aws.StringValue(input.ProvisioningArtifactName))
	if err != nil {
		return nil, err
	}

	name := aws.StringValue(input.ProvisionedProductName)
	for _, id := range r.provisionedIDs {
		if r.provisioned[id].Name == name {
			return nil, &InvalidParametersError{Message: "Provisioned product with this name already exists"}
		}
	}

	pathID, launchRoleARN := r.resolveLaunchContext(product.ID, aws.StringValue(input.PathId))

	stack, err := r.provisioner.CreateStack(r.accountID, r.region, name, artifact.Template)
	if err != nil {
		return nil, err
	}

	provisioned := newProvisionedProduct(r.partition, r.region, r.accountID, name, stack, product.ID, artifact.ID, pathID, launchRoleARN, aws.StringValue(input.ProvisionToken))
	record := newRecord(r.partition, r.region, r.accountID, common.RecordTypeProvisionProduct, common.StatusCreated, provisioned)
	provisioned.setLastRecord(record.ID)

	r.provisioned[provisioned.ID] = provisioned
	r.provisionedIDs = append(r.provisionedIDs, provisioned.ID)
	r.records[record.ID] = record
	r.recordIDs = append(r.recordIDs, record.ID)
	r.tagger.TagResource(provisioned.ARN, tagMap(input.Tags))
	log.Debugf("provisioned '%s' (%s) from product %s, stack %s", name, provisioned.ID, product.ID, stack.ID)

	return &servicecatalog.ProvisionProductOutput{
		RecordDetail: record.Detail(),
	}, nil
}

// TerminateProvisionedProduct appends a termination record for a provisioned
// product. The entity itself stays resident and AVAILABLE, the record is the
// only evidence of the termination.
func (r *Registry) TerminateProvisionedProduct(input *servicecatalog.TerminateProvisionedProductInput) (*servicecatalog.TerminateProvisionedProductOutput, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	provisioned, err := r.resolveProvisionedProduct(aws.StringValue(input.ProvisionedProductId), aws.StringValue(input.ProvisionedProductName))
	if err != nil {
		return nil, err
	}

	record := newRecord(r.partition, r.region, r.accountID, common.RecordTypeTerminateProvisionedProduct, common.StatusCreated, provisioned)
	provisioned.setLastRecord(record.ID)
	r.records[record.ID] = record
	r.recordIDs = append(r.recordIDs, record.ID)
	log.Debugf("terminated '%s' (%s), record %s", provisioned.Name, provisioned.ID, record.ID)

	return &servicecatalog.TerminateProvisionedProductOutput{
		RecordDetail: record.Detail(),
	}, nil
}

// resolveLaunchContext determines the launch path and launch role for a
// provisioning request. When the request names no path, the launch path of
// the first portfolio the product is linked to is used. The launch role is
// read from a LAUNCH constraint on the (product, portfolio) pair.
func (r *Registry) resolveLaunchContext(productID string, requestedPathID string) (string, string) {
	var portfolio *Portfolio
	pathID := requestedPathID
	if pathID == common.Empty {
		portfolio = r.firstPortfolioWithProduct(productID)
		if portfolio != nil {
			pathID = portfolio.LaunchPath.ID
		}
	} else {
		portfolio = r.portfolioByPathID(pathID)
	}
	if portfolio == nil {
		return pathID, common.Empty
	}
	for _, constraint := range r.constraintsFor(productID, portfolio.ID) {
		if roleARN := constraint.LaunchRoleARN(); roleARN != common.Empty {
			return pathID, roleARN
		}
	}
	return pathID, common.Empty
}

// lastRecordFor returns the most recently appended record for a provisioned
// product
func (r *Registry) lastRecordFor(provisionedID string) (*Record, error) {
	for i := len(r.recordIDs) - 1; i >= 0; i-- {
		record := r.records[r.recordIDs[i]]
		if record.ProvisionedProductID == provisionedID {
			return record, nil
		}
	}
	return nil, newNotFoundError(common.ResourceTypeRecord, "Record not found", "ProvisionedProductId", provisionedID)
}
