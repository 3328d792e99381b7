package catalog

import (
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/servicecatalog"
	"github.com/stretchr/testify/assert"
	tassert "github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// provisionedSetup wires a portfolio, a product with a launch constraint and
// the provisioner stub most provisioning tests start from
func provisionedSetup(t *testing.T) (*Registry, *mockedProvisioner, string, string) {
	fetcher := new(mockedFetcher)
	provisioner := new(mockedProvisioner)
	r := newTestRegistry(provisioner, fetcher)

	portfolioID := aws.StringValue(createTestPortfolio(r, "P1").PortfolioDetail.Id)
	productID := aws.StringValue(createTestProduct(r, fetcher, "Widget").ProductViewDetail.ProductViewSummary.ProductId)

	_, err := r.AssociateProductWithPortfolio(&servicecatalog.AssociateProductWithPortfolioInput{
		PortfolioId: aws.String(portfolioID),
		ProductId:   aws.String(productID),
	})
	assert.Nil(t, err)

	_, err = r.CreateConstraint(&servicecatalog.CreateConstraintInput{
		PortfolioId: aws.String(portfolioID),
		ProductId:   aws.String(productID),
		Type:        aws.String("LAUNCH"),
		Parameters:  aws.String(`{"RoleArn": "arn:aws:iam::123456789012:role/LaunchRole"}`),
	})
	assert.Nil(t, err)

	return r, provisioner, portfolioID, productID
}

func TestProvisionProduct(t *testing.T) {
	assert := assert.New(t)

	r, provisioner, _, productID := provisionedSetup(t)
	provisioner.On("CreateStack", "123456789012", "us-east-1", "widget-1", "Resources: {}").
		Return(stubStack("widget-1"), nil)

	out, err := r.ProvisionProduct(&servicecatalog.ProvisionProductInput{
		ProductId:                aws.String(productID),
		ProvisioningArtifactName: aws.String("v1.0"),
		ProvisionedProductName:   aws.String("widget-1"),
	})

	assert.Nil(err)
	provisioner.AssertExpectations(t)

	record := out.RecordDetail
	assert.True(strings.HasPrefix(aws.StringValue(record.RecordId), "rec-"))
	assert.Equal("PROVISION_PRODUCT", aws.StringValue(record.RecordType))
	assert.Equal("CREATED", aws.StringValue(record.Status))
	assert.Equal(productID, aws.StringValue(record.ProductId))
	assert.Equal("widget-1", aws.StringValue(record.ProvisionedProductName))
	assert.Equal("CFN_STACK", aws.StringValue(record.ProvisionedProductType))
	assert.True(strings.HasPrefix(aws.StringValue(record.ProvisionedProductId), "pp-"))
	assert.True(strings.HasPrefix(aws.StringValue(record.PathId), "lpv3-"))
	assert.Equal("arn:aws:iam::123456789012:role/LaunchRole", aws.StringValue(record.LaunchRoleArn))
	assert.Empty(record.RecordErrors)

	// the launch path belongs to the linked portfolio
	paths, err := r.ListLaunchPaths(&servicecatalog.ListLaunchPathsInput{ProductId: aws.String(productID)})
	assert.Nil(err)
	assert.Equal(aws.StringValue(paths.LaunchPathSummaries[0].Id), aws.StringValue(record.PathId))
}

func TestProvisionProduct_byProductName(t *testing.T) {
	assert := assert.New(t)

	r, provisioner, _, productID := provisionedSetup(t)
	provisioner.On("CreateStack", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(stubStack("widget-1"), nil)

	out, err := r.ProvisionProduct(&servicecatalog.ProvisionProductInput{
		ProductName:              aws.String("Widget"),
		ProvisioningArtifactName: aws.String("v1.0"),
		ProvisionedProductName:   aws.String("widget-1"),
	})

	assert.Nil(err)
	assert.Equal(productID, aws.StringValue(out.RecordDetail.ProductId))
}

func TestProvisionProduct_unknownProduct(t *testing.T) {
	assert := assert.New(t)

	r := newTestRegistry(new(mockedProvisioner), new(mockedFetcher))
	_, err := r.ProvisionProduct(&servicecatalog.ProvisionProductInput{
		ProductId:              aws.String("prod-missingmiss"),
		ProvisionedProductName: aws.String("widget-1"),
	})

	notFound, ok := err.(*ResourceNotFoundError)
	assert.True(ok)
	assert.Equal("AWS::ServiceCatalog::Product", notFound.ResourceType)
}

func TestProvisionProduct_unknownArtifact(t *testing.T) {
	assert := assert.New(t)

	r, _, _, productID := provisionedSetup(t)
	_, err := r.ProvisionProduct(&servicecatalog.ProvisionProductInput{
		ProductId:                aws.String(productID),
		ProvisioningArtifactName: aws.String("v9.9"),
		ProvisionedProductName:   aws.String("widget-1"),
	})

	notFound, ok := err.(*ResourceNotFoundError)
	assert.True(ok)
	assert.Equal("AWS::ServiceCatalog::ProvisioningArtifact", notFound.ResourceType)
}

func TestProvisionProduct_duplicateName(t *testing.T) {
	assert := assert.New(t)

	r, provisioner, _, productID := provisionedSetup(t)
	provisioner.On("CreateStack", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(stubStack("widget-1"), nil).Once()

	_, err := r.ProvisionProduct(&servicecatalog.ProvisionProductInput{
		ProductId:              aws.String(productID),
		ProvisionedProductName: aws.String("widget-1"),
	})
	assert.Nil(err)

	_, err = r.ProvisionProduct(&servicecatalog.ProvisionProductInput{
		ProductId:              aws.String(productID),
		ProvisionedProductName: aws.String("widget-1"),
	})
	_, ok := err.(*InvalidParametersError)
	assert.True(ok)
}

func TestProvisionProduct_stackFailure(t *testing.T) {
	assert := assert.New(t)

	r, provisioner, _, productID := provisionedSetup(t)
	provisioner.On("CreateStack", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, tassert.AnError)

	_, err := r.ProvisionProduct(&servicecatalog.ProvisionProductInput{
		ProductId:              aws.String(productID),
		ProvisionedProductName: aws.String("widget-1"),
	})
	assert.NotNil(err)

	// a failed provision leaves neither a provisioned product nor a record
	out, err := r.SearchProvisionedProducts(&servicecatalog.SearchProvisionedProductsInput{})
	assert.Nil(err)
	assert.Equal(int64(0), aws.Int64Value(out.TotalResultsCount))
}

func TestTerminateProvisionedProduct(t *testing.T) {
	assert := assert.New(t)

	r, provisioner, _, productID := provisionedSetup(t)
	provisioner.On("CreateStack", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(stubStack("widget-1"), nil)

	provisioned, err := r.ProvisionProduct(&servicecatalog.ProvisionProductInput{
		ProductId:              aws.String(productID),
		ProvisionedProductName: aws.String("widget-1"),
	})
	assert.Nil(err)
	provisionedID := aws.StringValue(provisioned.RecordDetail.ProvisionedProductId)

	out, err := r.TerminateProvisionedProduct(&servicecatalog.TerminateProvisionedProductInput{
		ProvisionedProductName: aws.String("widget-1"),
	})

	assert.Nil(err)
	record := out.RecordDetail
	assert.Equal("TERMINATE_PROVISIONED_PRODUCT", aws.StringValue(record.RecordType))
	assert.Equal("CREATED", aws.StringValue(record.Status))
	assert.Equal(provisionedID, aws.StringValue(record.ProvisionedProductId))
	assert.NotEqual(aws.StringValue(provisioned.RecordDetail.RecordId), aws.StringValue(record.RecordId))

	// the provisioned product stays resident and AVAILABLE, pointing at the
	// termination record
	descr, err := r.DescribeProvisionedProduct(&servicecatalog.DescribeProvisionedProductInput{
		Id: aws.String(provisionedID),
	})
	assert.Nil(err)
	assert.Equal("AVAILABLE", aws.StringValue(descr.ProvisionedProductDetail.Status))
	assert.Equal(aws.StringValue(record.RecordId), aws.StringValue(descr.ProvisionedProductDetail.LastRecordId))
}

func TestLastRecordFor_multipleCycles(t *testing.T) {
	assert := assert.New(t)

	r, provisioner, _, productID := provisionedSetup(t)
	provisioner.On("CreateStack", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(stubStack("widget-1"), nil)

	provisioned, err := r.ProvisionProduct(&servicecatalog.ProvisionProductInput{
		ProductId:              aws.String(productID),
		ProvisionedProductName: aws.String("widget-1"),
	})
	assert.Nil(err)
	provisionedID := aws.StringValue(provisioned.RecordDetail.ProvisionedProductId)

	// terminating repeatedly keeps appending records; the latest one wins
	_, err = r.TerminateProvisionedProduct(&servicecatalog.TerminateProvisionedProductInput{
		ProvisionedProductId: aws.String(provisionedID),
	})
	assert.Nil(err)
	second, err := r.TerminateProvisionedProduct(&servicecatalog.TerminateProvisionedProductInput{
		ProvisionedProductId: aws.String(provisionedID),
	})
	assert.Nil(err)

	last, err := r.lastRecordFor(provisionedID)
	assert.Nil(err)
	assert.Equal(aws.StringValue(second.RecordDetail.RecordId), last.ID)

	_, err = r.lastRecordFor("pp-neverexisted")
	notFound, ok := err.(*ResourceNotFoundError)
	assert.True(ok)
	assert.Equal("AWS::ServiceCatalog::Record", notFound.ResourceType)
}

func TestTerminateProvisionedProduct_unknown(t *testing.T) {
	assert := assert.New(t)

	r := newTestRegistry(new(mockedProvisioner), new(mockedFetcher))
	_, err := r.TerminateProvisionedProduct(&servicecatalog.TerminateProvisionedProductInput{
		ProvisionedProductId: aws.String("pp-missingmissi"),
	})

	notFound, ok := err.(*ResourceNotFoundError)
	assert.True(ok)
	assert.Equal("AWS::ServiceCatalog::ProvisionedProduct", notFound.ResourceType)
}

func TestProvisionProduct_withoutPortfolioLink(t *testing.T) {
	assert := assert.New(t)

	fetcher := new(mockedFetcher)
	provisioner := new(mockedProvisioner)
	r := newTestRegistry(provisioner, fetcher)
	productID := aws.StringValue(createTestProduct(r, fetcher, "Widget").ProductViewDetail.ProductViewSummary.ProductId)
	provisioner.On("CreateStack", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(stubStack("widget-1"), nil)

	// no portfolio association: no path and no launch role to resolve
	out, err := r.ProvisionProduct(&servicecatalog.ProvisionProductInput{
		ProductId:              aws.String(productID),
		ProvisionedProductName: aws.String("widget-1"),
	})

	assert.Nil(err)
	assert.Equal("", aws.StringValue(out.RecordDetail.PathId))
	assert.Nil(out.RecordDetail.LaunchRoleArn)
}
