package catalog

import (
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/servicecatalog"

	"scmock/common"
)

// Portfolio is a named grouping of products. Each portfolio owns a single
// launch path that is created with it.
type Portfolio struct {
	ID               string
	ARN              string
	Region           string
	DisplayName      string
	Description      string
	ProviderName     string
	AcceptLanguage   string
	IdempotencyToken string
	CreatedTime      time.Time
	ProductIDs       []string
	LaunchPath       *LaunchPath
}

func newPortfolio(partition string, region string, accountID string, input *servicecatalog.CreatePortfolioInput) *Portfolio {
	id := newResourceID(portfolioIDPrefix)
	return &Portfolio{
		ID:               id,
		ARN:              resourceARN(partition, region, accountID, "portfolio", id),
		Region:           region,
		DisplayName:      aws.StringValue(input.DisplayName),
		Description:      aws.StringValue(input.Description),
		ProviderName:     aws.StringValue(input.ProviderName),
		AcceptLanguage:   aws.StringValue(input.AcceptLanguage),
		IdempotencyToken: aws.StringValue(input.IdempotencyToken),
		CreatedTime:      time.Now().UTC(),
		LaunchPath:       newLaunchPath(aws.StringValue(input.DisplayName)),
	}
}

// HasProduct reports whether the product is linked to the portfolio
func (p *Portfolio) HasProduct(productID string) bool {
	for _, id := range p.ProductIDs {
		if id == productID {
			return true
		}
	}
	return false
}

// LinkProduct associates the product with the portfolio, idempotently
func (p *Portfolio) LinkProduct(productID string) {
	if !p.HasProduct(productID) {
		p.ProductIDs = append(p.ProductIDs, productID)
	}
}

// Detail projects the portfolio onto its wire shape
func (p *Portfolio) Detail() *servicecatalog.PortfolioDetail {
	return &servicecatalog.PortfolioDetail{
		ARN:          aws.String(p.ARN),
		CreatedTime:  aws.Time(p.CreatedTime),
		Description:  aws.String(p.Description),
		DisplayName:  aws.String(p.DisplayName),
		Id:           aws.String(p.ID),
		ProviderName: aws.String(p.ProviderName),
	}
}

// LaunchPath is the path through which a product in a portfolio is provisioned
type LaunchPath struct {
	ID          string
	Name        string
	CreatedTime time.Time
	UpdatedTime time.Time
}

func newLaunchPath(name string) *LaunchPath {
	now := time.Now().UTC()
	return &LaunchPath{
		ID:          newResourceID(launchPathIDPrefix),
		Name:        name,
		CreatedTime: now,
		UpdatedTime: now,
	}
}

// Summary projects the launch path with the portfolio's constraints and tags
func (lp *LaunchPath) Summary(name string, constraints []*servicecatalog.ConstraintSummary, tags []*servicecatalog.Tag) *servicecatalog.LaunchPathSummary {
	return &servicecatalog.LaunchPathSummary{
		Id:                  aws.String(lp.ID),
		Name:                aws.String(name),
		ConstraintSummaries: constraints,
		Tags:                tags,
	}
}

// View projects the launch path onto the shape used by DescribeProduct
func (lp *LaunchPath) View(name string) *servicecatalog.LaunchPath {
	return &servicecatalog.LaunchPath{
		Id:   aws.String(lp.ID),
		Name: aws.String(name),
	}
}

func sdkTags(tags []common.Tag) []*servicecatalog.Tag {
	result := []*servicecatalog.Tag{}
	for _, tag := range tags {
		result = append(result, &servicecatalog.Tag{
			Key:   aws.String(tag.Key),
			Value: aws.String(tag.Value),
		})
	}
	return result
}

func tagMap(tags []*servicecatalog.Tag) map[string]string {
	result := map[string]string{}
	for _, tag := range tags {
		result[aws.StringValue(tag.Key)] = aws.StringValue(tag.Value)
	}
	return result
}
