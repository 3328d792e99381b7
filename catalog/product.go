package catalog

import (
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/servicecatalog"

	"scmock/common"
)

// Product is a catalog entry holding one or more provisioning artifacts
type Product struct {
	ID                 string
	ViewSummaryID      string
	ARN                string
	Region             string
	Name               string
	Owner              string
	Description        string
	Distributor        string
	SupportDescription string
	SupportEmail       string
	SupportURL         string
	Type               string
	Status             string
	AcceptLanguage     string
	CreatedTime        time.Time

	artifacts     map[string]*ProvisioningArtifact
	artifactOrder []string
}

func newProduct(partition string, region string, accountID string, input *servicecatalog.CreateProductInput) *Product {
	id := newResourceID(productIDPrefix)
	return &Product{
		ID:                 id,
		ViewSummaryID:      newResourceID(productViewIDPrefix),
		ARN:                resourceARN(partition, region, accountID, "product", id),
		Region:             region,
		Name:               aws.StringValue(input.Name),
		Owner:              aws.StringValue(input.Owner),
		Description:        aws.StringValue(input.Description),
		Distributor:        aws.StringValue(input.Distributor),
		SupportDescription: aws.StringValue(input.SupportDescription),
		SupportEmail:       aws.StringValue(input.SupportEmail),
		SupportURL:         aws.StringValue(input.SupportUrl),
		Type:               aws.StringValue(input.ProductType),
		Status:             common.StatusAvailable,
		AcceptLanguage:     aws.StringValue(input.AcceptLanguage),
		CreatedTime:        time.Now().UTC(),
		artifacts:          map[string]*ProvisioningArtifact{},
	}
}

// AddArtifact stores a provisioning artifact on the product
func (p *Product) AddArtifact(artifact *ProvisioningArtifact) {
	p.artifacts[artifact.ID] = artifact
	p.artifactOrder = append(p.artifactOrder, artifact.ID)
}

// Artifacts returns the provisioning artifacts in insertion order
func (p *Product) Artifacts() []*ProvisioningArtifact {
	result := []*ProvisioningArtifact{}
	for _, id := range p.artifactOrder {
		result = append(result, p.artifacts[id])
	}
	return result
}

// FindArtifact resolves an artifact by id, falling back to name
func (p *Product) FindArtifact(identifier string, name string) (*ProvisioningArtifact, error) {
	if identifier != common.Empty {
		if artifact, ok := p.artifacts[identifier]; ok {
			return artifact, nil
		}
	}
	if name != common.Empty {
		for _, id := range p.artifactOrder {
			if p.artifacts[id].Name == name {
				return p.artifacts[id], nil
			}
		}
	}
	if identifier != common.Empty {
		return nil, newNotFoundError(common.ResourceTypeProvisioningArtifact, "Provisioning artifact not found", "Id", identifier)
	}
	return nil, newNotFoundError(common.ResourceTypeProvisioningArtifact, "Provisioning artifact not found", "Name", name)
}

// ViewSummary projects the product onto its wire summary shape
func (p *Product) ViewSummary() *servicecatalog.ProductViewSummary {
	return &servicecatalog.ProductViewSummary{
		Id:                 aws.String(p.ViewSummaryID),
		ProductId:          aws.String(p.ID),
		Name:               aws.String(p.Name),
		Owner:              aws.String(p.Owner),
		ShortDescription:   aws.String(p.Description),
		Type:               aws.String(p.Type),
		Distributor:        aws.String(p.Distributor),
		SupportDescription: aws.String(p.SupportDescription),
		SupportEmail:       aws.String(p.SupportEmail),
		SupportUrl:         aws.String(p.SupportURL),
		HasDefaultPath:     aws.Bool(false),
	}
}

// ViewDetail wraps the view summary with the product ARN and status
func (p *Product) ViewDetail() *servicecatalog.ProductViewDetail {
	return &servicecatalog.ProductViewDetail{
		ProductARN:         aws.String(p.ARN),
		CreatedTime:        aws.Time(p.CreatedTime),
		ProductViewSummary: p.ViewSummary(),
		Status:             aws.String(p.Status),
	}
}

// FilterKeys lists the attribute names the product can be searched on
func (p *Product) FilterKeys() []string {
	return []string{"Name", "Owner", "ProductType"}
}

// FilterValue returns the product attribute for a search filter field
func (p *Product) FilterValue(key string) (string, error) {
	switch key {
	case "Name":
		return p.Name, nil
	case "Owner":
		return p.Owner, nil
	case "ProductType":
		return p.Type, nil
	default:
		return common.Empty, &FilterNotImplementedError{Field: key}
	}
}

// ProvisioningArtifact is a versioned template belonging to a product
type ProvisioningArtifact struct {
	ID          string
	Region      string
	Active      bool
	Name        string
	Description string
	Type        string
	Guidance    string
	CreatedTime time.Time
	Template    string
}

func newProvisioningArtifact(region string, params *servicecatalog.ProvisioningArtifactProperties, template string) *ProvisioningArtifact {
	artifactType := aws.StringValue(params.Type)
	if artifactType == common.Empty {
		artifactType = common.ArtifactTypeCloudFormation
	}
	return &ProvisioningArtifact{
		ID:          newResourceID(artifactIDPrefix),
		Region:      region,
		Active:      true,
		Name:        aws.StringValue(params.Name),
		Description: aws.StringValue(params.Description),
		Type:        artifactType,
		Guidance:    common.ArtifactGuidanceDefault,
		CreatedTime: time.Now().UTC(),
		Template:    template,
	}
}

// Detail projects the artifact onto its wire detail shape
func (a *ProvisioningArtifact) Detail() *servicecatalog.ProvisioningArtifactDetail {
	return &servicecatalog.ProvisioningArtifactDetail{
		Active:      aws.Bool(a.Active),
		CreatedTime: aws.Time(a.CreatedTime),
		Description: aws.String(a.Description),
		Id:          aws.String(a.ID),
		Name:        aws.String(a.Name),
		Type:        aws.String(a.Type),
	}
}

// Summary projects the artifact onto the shape used by DescribeProductAsAdmin
func (a *ProvisioningArtifact) Summary() *servicecatalog.ProvisioningArtifactSummary {
	return &servicecatalog.ProvisioningArtifactSummary{
		CreatedTime: aws.Time(a.CreatedTime),
		Description: aws.String(a.Description),
		Id:          aws.String(a.ID),
		Name:        aws.String(a.Name),
	}
}

// View projects the artifact onto the shape used by DescribeProduct
func (a *ProvisioningArtifact) View() *servicecatalog.ProvisioningArtifact {
	return &servicecatalog.ProvisioningArtifact{
		CreatedTime: aws.Time(a.CreatedTime),
		Description: aws.String(a.Description),
		Guidance:    aws.String(a.Guidance),
		Id:          aws.String(a.ID),
		Name:        aws.String(a.Name),
	}
}
