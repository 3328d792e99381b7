package catalog

import (
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/servicecatalog"

	"scmock/common"
)

// Pagination inputs are accepted and ignored on every query; the page token
// in responses is always nil.

// ListPortfolios returns all portfolios in creation order
func (r *Registry) ListPortfolios(input *servicecatalog.ListPortfoliosInput) (*servicecatalog.ListPortfoliosOutput, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	details := []*servicecatalog.PortfolioDetail{}
	for _, id := range r.portfolioIDs {
		details = append(details, r.portfolios[id].Detail())
	}
	return &servicecatalog.ListPortfoliosOutput{
		PortfolioDetails: details,
	}, nil
}

// ListPortfoliosForProduct returns the portfolios a product is linked to
func (r *Registry) ListPortfoliosForProduct(input *servicecatalog.ListPortfoliosForProductInput) (*servicecatalog.ListPortfoliosForProductOutput, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	product, err := r.resolveProduct(aws.StringValue(input.ProductId), common.Empty)
	if err != nil {
		return nil, err
	}
	details := []*servicecatalog.PortfolioDetail{}
	for _, id := range r.portfolioIDs {
		if r.portfolios[id].HasProduct(product.ID) {
			details = append(details, r.portfolios[id].Detail())
		}
	}
	return &servicecatalog.ListPortfoliosForProductOutput{
		PortfolioDetails: details,
	}, nil
}

// ListLaunchPaths returns one launch path summary per portfolio containing
// the product, with the constraints registered on the pair
func (r *Registry) ListLaunchPaths(input *servicecatalog.ListLaunchPathsInput) (*servicecatalog.ListLaunchPathsOutput, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	product, err := r.resolveProduct(aws.StringValue(input.ProductId), common.Empty)
	if err != nil {
		return nil, err
	}
	summaries := []*servicecatalog.LaunchPathSummary{}
	for _, id := range r.portfolioIDs {
		portfolio := r.portfolios[id]
		if !portfolio.HasProduct(product.ID) {
			continue
		}
		constraints := []*servicecatalog.ConstraintSummary{}
		for _, constraint := range r.constraintsFor(product.ID, portfolio.ID) {
			constraints = append(constraints, constraint.Summary())
		}
		summaries = append(summaries, portfolio.LaunchPath.Summary(portfolio.DisplayName, constraints, sdkTags(r.tagger.GetTags(portfolio.ARN))))
	}
	return &servicecatalog.ListLaunchPathsOutput{
		LaunchPathSummaries: summaries,
	}, nil
}

// ListProvisioningArtifacts returns a product's artifacts in creation order
func (r *Registry) ListProvisioningArtifacts(input *servicecatalog.ListProvisioningArtifactsInput) (*servicecatalog.ListProvisioningArtifactsOutput, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	product, err := r.resolveProduct(aws.StringValue(input.ProductId), common.Empty)
	if err != nil {
		return nil, err
	}
	details := []*servicecatalog.ProvisioningArtifactDetail{}
	for _, artifact := range product.Artifacts() {
		details = append(details, artifact.Detail())
	}
	return &servicecatalog.ListProvisioningArtifactsOutput{
		ProvisioningArtifactDetails: details,
	}, nil
}

// SearchProducts returns the product summaries matching the given filters
func (r *Registry) SearchProducts(input *servicecatalog.SearchProductsInput) (*servicecatalog.SearchProductsOutput, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	summaries := []*servicecatalog.ProductViewSummary{}
	for _, id := range r.productIDs {
		matched, err := matchesFilters(r.products[id], input.Filters)
		if err != nil {
			return nil, err
		}
		if matched {
			summaries = append(summaries, r.products[id].ViewSummary())
		}
	}
	return &servicecatalog.SearchProductsOutput{
		ProductViewSummaries: summaries,
	}, nil
}

// SearchProvisionedProducts returns the provisioned products matching the
// given filters, with their tags and a total count
func (r *Registry) SearchProvisionedProducts(input *servicecatalog.SearchProvisionedProductsInput) (*servicecatalog.SearchProvisionedProductsOutput, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	attributes := []*servicecatalog.ProvisionedProductAttribute{}
	for _, id := range r.provisionedIDs {
		provisioned := r.provisioned[id]
		matched, err := matchesFilters(provisioned, input.Filters)
		if err != nil {
			return nil, err
		}
		if matched {
			attributes = append(attributes, provisioned.Attribute(sdkTags(r.tagger.GetTags(provisioned.ARN))))
		}
	}
	return &servicecatalog.SearchProvisionedProductsOutput{
		ProvisionedProducts: attributes,
		TotalResultsCount:   aws.Int64(int64(len(attributes))),
	}, nil
}

// DescribePortfolio returns a portfolio by id, with its tags
func (r *Registry) DescribePortfolio(input *servicecatalog.DescribePortfolioInput) (*servicecatalog.DescribePortfolioOutput, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	portfolio, err := r.resolvePortfolio(aws.StringValue(input.Id), common.Empty)
	if err != nil {
		return nil, err
	}
	return &servicecatalog.DescribePortfolioOutput{
		PortfolioDetail: portfolio.Detail(),
		Tags:            sdkTags(r.tagger.GetTags(portfolio.ARN)),
	}, nil
}

// DescribeProduct returns a product by id or name, with its artifacts and
// the launch paths it can be provisioned through
func (r *Registry) DescribeProduct(input *servicecatalog.DescribeProductInput) (*servicecatalog.DescribeProductOutput, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	product, err := r.resolveProduct(aws.StringValue(input.Id), aws.StringValue(input.Name))
	if err != nil {
		return nil, err
	}
	artifacts := []*servicecatalog.ProvisioningArtifact{}
	for _, artifact := range product.Artifacts() {
		artifacts = append(artifacts, artifact.View())
	}
	paths := []*servicecatalog.LaunchPath{}
	for _, id := range r.portfolioIDs {
		portfolio := r.portfolios[id]
		if portfolio.HasProduct(product.ID) {
			paths = append(paths, portfolio.LaunchPath.View(portfolio.DisplayName))
		}
	}
	return &servicecatalog.DescribeProductOutput{
		LaunchPaths:           paths,
		ProductViewSummary:    product.ViewSummary(),
		ProvisioningArtifacts: artifacts,
	}, nil
}

// DescribeProductAsAdmin returns the admin view of a product by id or name
func (r *Registry) DescribeProductAsAdmin(input *servicecatalog.DescribeProductAsAdminInput) (*servicecatalog.DescribeProductAsAdminOutput, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	product, err := r.resolveProduct(aws.StringValue(input.Id), aws.StringValue(input.Name))
	if err != nil {
		return nil, err
	}
	summaries := []*servicecatalog.ProvisioningArtifactSummary{}
	for _, artifact := range product.Artifacts() {
		summaries = append(summaries, artifact.Summary())
	}
	return &servicecatalog.DescribeProductAsAdminOutput{
		ProductViewDetail:             product.ViewDetail(),
		ProvisioningArtifactSummaries: summaries,
		Tags:                          sdkTags(r.tagger.GetTags(product.ARN)),
	}, nil
}

// DescribeProvisionedProduct returns a provisioned product by id or name
func (r *Registry) DescribeProvisionedProduct(input *servicecatalog.DescribeProvisionedProductInput) (*servicecatalog.DescribeProvisionedProductOutput, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	provisioned, err := r.resolveProvisionedProduct(aws.StringValue(input.Id), aws.StringValue(input.Name))
	if err != nil {
		return nil, err
	}
	record, err := r.lastRecordFor(provisioned.ID)
	if err != nil {
		return nil, err
	}
	detail := provisioned.Detail()
	detail.LastRecordId = aws.String(record.ID)
	return &servicecatalog.DescribeProvisionedProductOutput{
		ProvisionedProductDetail: detail,
	}, nil
}

// DescribeRecord returns a record by id with the outputs of the provisioned
// product it belongs to
func (r *Registry) DescribeRecord(input *servicecatalog.DescribeRecordInput) (*servicecatalog.DescribeRecordOutput, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	record, ok := r.records[aws.StringValue(input.Id)]
	if !ok {
		return nil, newNotFoundError(common.ResourceTypeRecord, "Record not found", "Id", aws.StringValue(input.Id))
	}
	outputs := []*servicecatalog.RecordOutput{}
	if provisioned, ok := r.provisioned[record.ProvisionedProductID]; ok {
		outputs = provisioned.RecordOutputs()
	}
	return &servicecatalog.DescribeRecordOutput{
		RecordDetail:  record.Detail(),
		RecordOutputs: outputs,
	}, nil
}

// GetProvisionedProductOutputs returns the stack outputs of a provisioned
// product, optionally restricted to the requested output keys
func (r *Registry) GetProvisionedProductOutputs(input *servicecatalog.GetProvisionedProductOutputsInput) (*servicecatalog.GetProvisionedProductOutputsOutput, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	provisioned, err := r.resolveProvisionedProduct(aws.StringValue(input.ProvisionedProductId), aws.StringValue(input.ProvisionedProductName))
	if err != nil {
		return nil, err
	}
	outputs := provisioned.RecordOutputs()
	if len(input.OutputKeys) > 0 {
		requested := map[string]bool{}
		for _, key := range input.OutputKeys {
			requested[aws.StringValue(key)] = true
		}
		filtered := []*servicecatalog.RecordOutput{}
		for _, output := range outputs {
			if requested[aws.StringValue(output.OutputKey)] {
				filtered = append(filtered, output)
			}
		}
		outputs = filtered
	}
	return &servicecatalog.GetProvisionedProductOutputsOutput{
		Outputs: outputs,
	}, nil
}
