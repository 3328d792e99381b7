package catalog

import (
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/servicecatalog"
	"github.com/stretchr/testify/mock"

	"scmock/common"
	"scmock/tagging"
)

type mockedProvisioner struct {
	mock.Mock
}

func (m *mockedProvisioner) CreateStack(accountID string, region string, stackName string, templateBody string) (*common.Stack, error) {
	args := m.Called(accountID, region, stackName, templateBody)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*common.Stack), args.Error(1)
}

type mockedFetcher struct {
	mock.Mock
}

func (m *mockedFetcher) FetchTemplate(templateURL string) (string, error) {
	args := m.Called(templateURL)
	return args.String(0), args.Error(1)
}

func newTestRegistry(provisioner common.StackProvisioner, fetcher common.TemplateFetcher) *Registry {
	return newRegistry("123456789012", "us-east-1", "aws", provisioner, fetcher, tagging.NewService())
}

func stubStack(name string) *common.Stack {
	return &common.Stack{
		ID:   "arn:aws:cloudformation:us-east-1:123456789012:stack/" + name + "/11111111-2222-3333-4444-555555555555",
		Name: name,
		Outputs: []common.StackOutput{
			{Key: "BucketName", Value: "my-bucket", Description: "Name of the bucket"},
		},
	}
}

func createTestProduct(r *Registry, fetcher *mockedFetcher, name string) *servicecatalog.CreateProductOutput {
	fetcher.On("FetchTemplate", "https://example.com/"+name+".yml").Return("Resources: {}", nil)
	out, err := r.CreateProduct(&servicecatalog.CreateProductInput{
		Name:        aws.String(name),
		Owner:       aws.String("team-platform"),
		ProductType: aws.String("CLOUD_FORMATION_TEMPLATE"),
		ProvisioningArtifactParameters: &servicecatalog.ProvisioningArtifactProperties{
			Name:        aws.String("v1.0"),
			Description: aws.String("initial version"),
			Type:        aws.String("CLOUD_FORMATION_TEMPLATE"),
			Info: map[string]*string{
				"LoadTemplateFromURL": aws.String("https://example.com/" + name + ".yml"),
			},
		},
	})
	if err != nil {
		panic(err)
	}
	return out
}

func createTestPortfolio(r *Registry, name string) *servicecatalog.CreatePortfolioOutput {
	out, err := r.CreatePortfolio(&servicecatalog.CreatePortfolioInput{
		DisplayName:  aws.String(name),
		Description:  aws.String("test portfolio"),
		ProviderName: aws.String("platform"),
	})
	if err != nil {
		panic(err)
	}
	return out
}
