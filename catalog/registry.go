package catalog

import (
	"sync"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/servicecatalog"
	"github.com/op/go-logging"

	"scmock/common"
)

var log = logging.MustGetLogger("catalog")

// Registry owns the catalog state for a single (account, region) pair. All
// operations take the registry mutex, so each registry serializes its
// requests; distinct registries never contend.
type Registry struct {
	accountID string
	region    string
	partition string

	provisioner common.StackProvisioner
	fetcher     common.TemplateFetcher
	tagger      common.TagManager

	mutex sync.Mutex

	portfolios     map[string]*Portfolio
	portfolioIDs   []string
	products       map[string]*Product
	productIDs     []string
	provisioned    map[string]*ProvisionedProduct
	provisionedIDs []string
	records        map[string]*Record
	recordIDs      []string
	constraints    map[string]*Constraint
	constraintIDs  []string
}

func newRegistry(accountID string, region string, partition string, provisioner common.StackProvisioner, fetcher common.TemplateFetcher, tagger common.TagManager) *Registry {
	return &Registry{
		accountID:   accountID,
		region:      region,
		partition:   partition,
		provisioner: provisioner,
		fetcher:     fetcher,
		tagger:      tagger,
		portfolios:  map[string]*Portfolio{},
		products:    map[string]*Product{},
		provisioned: map[string]*ProvisionedProduct{},
		records:     map[string]*Record{},
		constraints: map[string]*Constraint{},
	}
}

// CreatePortfolio stores a new portfolio, rejecting duplicate display names
func (r *Registry) CreatePortfolio(input *servicecatalog.CreatePortfolioInput) (*servicecatalog.CreatePortfolioOutput, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	displayName := aws.StringValue(input.DisplayName)
	for _, id := range r.portfolioIDs {
		if r.portfolios[id].DisplayName == displayName {
			return nil, &InvalidParametersError{Message: "Portfolio with this name already exists"}
		}
	}

	portfolio := newPortfolio(r.partition, r.region, r.accountID, input)
	r.portfolios[portfolio.ID] = portfolio
	r.portfolioIDs = append(r.portfolioIDs, portfolio.ID)
	r.tagger.TagResource(portfolio.ARN, tagMap(input.Tags))
	log.Debugf("created portfolio '%s' (%s)", portfolio.DisplayName, portfolio.ID)

	return &servicecatalog.CreatePortfolioOutput{
		PortfolioDetail: portfolio.Detail(),
		Tags:            sdkTags(r.tagger.GetTags(portfolio.ARN)),
	}, nil
}

// CreateProduct stores a new product with its initial provisioning artifact,
// rejecting duplicate product names. The artifact template is fetched before
// any state is mutated, so a failed fetch leaves the registry unchanged.
func (r *Registry) CreateProduct(input *servicecatalog.CreateProductInput) (*servicecatalog.CreateProductOutput, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	name := aws.StringValue(input.Name)
	for _, id := range r.productIDs {
		if r.products[id].Name == name {
			return nil, &InvalidParametersError{Message: "Product with this name already exists"}
		}
	}

	params := input.ProvisioningArtifactParameters
	if params == nil {
		return nil, &InvalidParametersError{Message: "Provisioning artifact parameters are required"}
	}
	template, err := r.loadArtifactTemplate(name, params)
	if err != nil {
		return nil, err
	}

	product := newProduct(r.partition, r.region, r.accountID, input)
	artifact := newProvisioningArtifact(r.region, params, template)
	product.AddArtifact(artifact)
	r.products[product.ID] = product
	r.productIDs = append(r.productIDs, product.ID)
	r.tagger.TagResource(product.ARN, tagMap(input.Tags))
	log.Debugf("created product '%s' (%s) with artifact %s", product.Name, product.ID, artifact.ID)

	return &servicecatalog.CreateProductOutput{
		ProductViewDetail:          product.ViewDetail(),
		ProvisioningArtifactDetail: artifact.Detail(),
		Tags:                       sdkTags(r.tagger.GetTags(product.ARN)),
	}, nil
}

// loadArtifactTemplate resolves the template body for a new provisioning
// artifact. Only the LoadTemplateFromURL source is supported; any other
// source leaves the template empty with a warning rather than failing.
func (r *Registry) loadArtifactTemplate(productName string, params *servicecatalog.ProvisioningArtifactProperties) (string, error) {
	if templateURL, ok := params.Info["LoadTemplateFromURL"]; ok {
		return r.fetcher.FetchTemplate(aws.StringValue(templateURL))
	}
	log.Warningf("Unsupported provisioning artifact source for product '%s', template left empty", productName)
	return common.Empty, nil
}

// CreateConstraint stores a new constraint. The referenced product and
// portfolio ids are recorded without being validated.
func (r *Registry) CreateConstraint(input *servicecatalog.CreateConstraintInput) (*servicecatalog.CreateConstraintOutput, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	constraint := newConstraint(r.accountID, input)
	r.constraints[constraint.ID] = constraint
	r.constraintIDs = append(r.constraintIDs, constraint.ID)
	log.Debugf("created %s constraint %s on product %s / portfolio %s", constraint.Type, constraint.ID, constraint.ProductID, constraint.PortfolioID)

	return &servicecatalog.CreateConstraintOutput{
		ConstraintDetail:     constraint.Detail(),
		ConstraintParameters: aws.String(constraint.Parameters),
		Status:               aws.String(common.StatusAvailable),
	}, nil
}

// AssociateProductWithPortfolio links a product into a portfolio. Linking an
// already linked product is a no-op.
func (r *Registry) AssociateProductWithPortfolio(input *servicecatalog.AssociateProductWithPortfolioInput) (*servicecatalog.AssociateProductWithPortfolioOutput, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	portfolio, err := r.resolvePortfolio(aws.StringValue(input.PortfolioId), common.Empty)
	if err != nil {
		return nil, err
	}
	product, err := r.resolveProduct(aws.StringValue(input.ProductId), common.Empty)
	if err != nil {
		return nil, err
	}
	portfolio.LinkProduct(product.ID)

	return &servicecatalog.AssociateProductWithPortfolioOutput{}, nil
}

// UpdatePortfolio applies the given attributes and tag changes to a portfolio
func (r *Registry) UpdatePortfolio(input *servicecatalog.UpdatePortfolioInput) (*servicecatalog.UpdatePortfolioOutput, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	portfolio, err := r.resolvePortfolio(aws.StringValue(input.Id), common.Empty)
	if err != nil {
		return nil, err
	}
	if input.DisplayName != nil {
		portfolio.DisplayName = aws.StringValue(input.DisplayName)
	}
	if input.Description != nil {
		portfolio.Description = aws.StringValue(input.Description)
	}
	if input.ProviderName != nil {
		portfolio.ProviderName = aws.StringValue(input.ProviderName)
	}
	r.applyTagChanges(portfolio.ARN, input.AddTags, input.RemoveTags)

	return &servicecatalog.UpdatePortfolioOutput{
		PortfolioDetail: portfolio.Detail(),
		Tags:            sdkTags(r.tagger.GetTags(portfolio.ARN)),
	}, nil
}

// UpdateProduct applies the given attributes and tag changes to a product
func (r *Registry) UpdateProduct(input *servicecatalog.UpdateProductInput) (*servicecatalog.UpdateProductOutput, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	product, err := r.resolveProduct(aws.StringValue(input.Id), common.Empty)
	if err != nil {
		return nil, err
	}
	if input.Name != nil {
		product.Name = aws.StringValue(input.Name)
	}
	if input.Owner != nil {
		product.Owner = aws.StringValue(input.Owner)
	}
	if input.Description != nil {
		product.Description = aws.StringValue(input.Description)
	}
	if input.Distributor != nil {
		product.Distributor = aws.StringValue(input.Distributor)
	}
	if input.SupportDescription != nil {
		product.SupportDescription = aws.StringValue(input.SupportDescription)
	}
	if input.SupportEmail != nil {
		product.SupportEmail = aws.StringValue(input.SupportEmail)
	}
	if input.SupportUrl != nil {
		product.SupportURL = aws.StringValue(input.SupportUrl)
	}
	r.applyTagChanges(product.ARN, input.AddTags, input.RemoveTags)

	return &servicecatalog.UpdateProductOutput{
		ProductViewDetail: product.ViewDetail(),
		Tags:              sdkTags(r.tagger.GetTags(product.ARN)),
	}, nil
}

func (r *Registry) applyTagChanges(arn string, addTags []*servicecatalog.Tag, removeTags []*string) {
	if len(addTags) > 0 {
		r.tagger.TagResource(arn, tagMap(addTags))
	}
	if len(removeTags) > 0 {
		r.tagger.UntagResource(arn, aws.StringValueSlice(removeTags))
	}
}

// resolvePortfolio looks a portfolio up by id, falling back to display name
func (r *Registry) resolvePortfolio(identifier string, name string) (*Portfolio, error) {
	if identifier != common.Empty {
		if portfolio, ok := r.portfolios[identifier]; ok {
			return portfolio, nil
		}
	}
	if name != common.Empty {
		for _, id := range r.portfolioIDs {
			if r.portfolios[id].DisplayName == name {
				return r.portfolios[id], nil
			}
		}
	}
	if identifier != common.Empty {
		return nil, newNotFoundError(common.ResourceTypePortfolio, "Portfolio not found", "Id", identifier)
	}
	return nil, newNotFoundError(common.ResourceTypePortfolio, "Portfolio not found", "Name", name)
}

// resolveProduct looks a product up by id, falling back to name
func (r *Registry) resolveProduct(identifier string, name string) (*Product, error) {
	if identifier != common.Empty {
		if product, ok := r.products[identifier]; ok {
			return product, nil
		}
	}
	if name != common.Empty {
		for _, id := range r.productIDs {
			if r.products[id].Name == name {
				return r.products[id], nil
			}
		}
	}
	if identifier != common.Empty {
		return nil, newNotFoundError(common.ResourceTypeProduct, "Product not found", "Id", identifier)
	}
	return nil, newNotFoundError(common.ResourceTypeProduct, "Product not found", "Name", name)
}

// resolveProvisionedProduct looks a provisioned product up by id, falling
// back to name
func (r *Registry) resolveProvisionedProduct(identifier string, name string) (*ProvisionedProduct, error) {
	if identifier != common.Empty {
		if provisioned, ok := r.provisioned[identifier]; ok {
			return provisioned, nil
		}
	}
	if name != common.Empty {
		for _, id := range r.provisionedIDs {
			if r.provisioned[id].Name == name {
				return r.provisioned[id], nil
			}
		}
	}
	if identifier != common.Empty {
		return nil, newNotFoundError(common.ResourceTypeProvisionedProduct, "Provisioned product not found", "Id", identifier)
	}
	return nil, newNotFoundError(common.ResourceTypeProvisionedProduct, "Provisioned product not found", "Name", name)
}

// firstPortfolioWithProduct returns the earliest created portfolio the
// product is linked to, or nil
func (r *Registry) firstPortfolioWithProduct(productID string) *Portfolio {
	for _, id := range r.portfolioIDs {
		if r.portfolios[id].HasProduct(productID) {
			return r.portfolios[id]
		}
	}
	return nil
}

// portfolioByPathID returns the portfolio owning the given launch path, or nil
func (r *Registry) portfolioByPathID(pathID string) *Portfolio {
	for _, id := range r.portfolioIDs {
		if r.portfolios[id].LaunchPath.ID == pathID {
			return r.portfolios[id]
		}
	}
	return nil
}

// constraintsFor returns the constraints registered on a (product, portfolio)
// pair, in insertion order
func (r *Registry) constraintsFor(productID string, portfolioID string) []*Constraint {
	result := []*Constraint{}
	for _, id := range r.constraintIDs {
		constraint := r.constraints[id]
		if constraint.ProductID == productID && constraint.PortfolioID == portfolioID {
			result = append(result, constraint)
		}
	}
	return result
}
