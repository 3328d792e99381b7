package server

import (
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/private/protocol/json/jsonutil"
	"github.com/aws/aws-sdk-go/service/servicecatalog"

	"scmock/catalog"
)

type actionFunc func(registry *catalog.Registry, body io.Reader) (interface{}, error)

var actions = map[string]actionFunc{
	"AssociateProductWithPortfolio": associateProductWithPortfolio,
	"CreateConstraint":              createConstraint,
	"CreatePortfolio":               createPortfolio,
	"CreateProduct":                 createProduct,
	"DescribePortfolio":             describePortfolio,
	"DescribeProduct":               describeProduct,
	"DescribeProductAsAdmin":        describeProductAsAdmin,
	"DescribeProvisionedProduct":    describeProvisionedProduct,
	"DescribeRecord":                describeRecord,
	"GetProvisionedProductOutputs":  getProvisionedProductOutputs,
	"ListLaunchPaths":               listLaunchPaths,
	"ListPortfolios":                listPortfolios,
	"ListPortfoliosForProduct":      listPortfoliosForProduct,
	"ListProvisioningArtifacts":     listProvisioningArtifacts,
	"ProvisionProduct":              provisionProduct,
	"SearchProducts":                searchProducts,
	"SearchProvisionedProducts":     searchProvisionedProducts,
	"TerminateProvisionedProduct":   terminateProvisionedProduct,
	"UpdatePortfolio":               updatePortfolio,
	"UpdateProduct":                 updateProduct,
}

func decode(input interface{}, body io.Reader) error {
	if err := jsonutil.UnmarshalJSON(input, body); err != nil {
		return &catalog.InvalidParametersError{Message: fmt.Sprintf("Unable to parse request: %v", err)}
	}
	return nil
}

func createPortfolio(registry *catalog.Registry, body io.Reader) (interface{}, error) {
	input := &servicecatalog.CreatePortfolioInput{}
	if err := decode(input, body); err != nil {
		return nil, err
	}
	return registry.CreatePortfolio(input)
}

func createProduct(registry *catalog.Registry, body io.Reader) (interface{}, error) {
	input := &servicecatalog.CreateProductInput{}
	if err := decode(input, body); err != nil {
		return nil, err
	}
	return registry.CreateProduct(input)
}

func createConstraint(registry *catalog.Registry, body io.Reader) (interface{}, error) {
	input := &servicecatalog.CreateConstraintInput{}
	if err := decode(input, body); err != nil {
		return nil, err
	}
	return registry.CreateConstraint(input)
}

func associateProductWithPortfolio(registry *catalog.Registry, body io.Reader) (interface{}, error) {
	input := &servicecatalog.AssociateProductWithPortfolioInput{}
	if err := decode(input, body); err != nil {
		return nil, err
	}
	return registry.AssociateProductWithPortfolio(input)
}

func updatePortfolio(registry *catalog.Registry, body io.Reader) (interface{}, error) {
	input := &servicecatalog.UpdatePortfolioInput{}
	if err := decode(input, body); err != nil {
		return nil, err
	}
	return registry.UpdatePortfolio(input)
}

func updateProduct(registry *catalog.Registry, body io.Reader) (interface{}, error) {
	input := &servicecatalog.UpdateProductInput{}
	if err := decode(input, body); err != nil {
		return nil, err
	}
	return registry.UpdateProduct(input)
}

func provisionProduct(registry *catalog.Registry, body io.Reader) (interface{}, error) {
	input := &servicecatalog.ProvisionProductInput{}
	if err := decode(input, body); err != nil {
		return nil, err
	}
	return registry.ProvisionProduct(input)
}

func terminateProvisionedProduct(registry *catalog.Registry, body io.Reader) (interface{}, error) {
	input := &servicecatalog.TerminateProvisionedProductInput{}
	if err := decode(input, body); err != nil {
		return nil, err
	}
	return registry.TerminateProvisionedProduct(input)
}

func listPortfolios(registry *catalog.Registry, body io.Reader) (interface{}, error) {
	input := &servicecatalog.ListPortfoliosInput{}
	if err := decode(input, body); err != nil {
		return nil, err
	}
	return registry.ListPortfolios(input)
}

func listPortfoliosForProduct(registry *catalog.Registry, body io.Reader) (interface{}, error) {
	input := &servicecatalog.ListPortfoliosForProductInput{}
	if err := decode(input, body); err != nil {
		return nil, err
	}
	return registry.ListPortfoliosForProduct(input)
}

func listLaunchPaths(registry *catalog.Registry, body io.Reader) (interface{}, error) {
	input := &servicecatalog.ListLaunchPathsInput{}
	if err := decode(input, body); err != nil {
		return nil, err
	}
	return registry.ListLaunchPaths(input)
}

func listProvisioningArtifacts(registry *catalog.Registry, body io.Reader) (interface{}, error) {
	input := &servicecatalog.ListProvisioningArtifactsInput{}
	if err := decode(input, body); err != nil {
		return nil, err
	}
	return registry.ListProvisioningArtifacts(input)
}

func searchProducts(registry *catalog.Registry, body io.Reader) (interface{}, error) {
	input := &servicecatalog.SearchProductsInput{}
	if err := decode(input, body); err != nil {
		return nil, err
	}
	return registry.SearchProducts(input)
}

func searchProvisionedProducts(registry *catalog.Registry, body io.Reader) (interface{}, error) {
	input := &servicecatalog.SearchProvisionedProductsInput{}
	if err := decode(input, body); err != nil {
		return nil, err
	}
	input.Filters = convertSearchQuery(input.Filters)
	return registry.SearchProvisionedProducts(input)
}

func describePortfolio(registry *catalog.Registry, body io.Reader) (interface{}, error) {
	input := &servicecatalog.DescribePortfolioInput{}
	if err := decode(input, body); err != nil {
		return nil, err
	}
	return registry.DescribePortfolio(input)
}

func describeProduct(registry *catalog.Registry, body io.Reader) (interface{}, error) {
	input := &servicecatalog.DescribeProductInput{}
	if err := decode(input, body); err != nil {
		return nil, err
	}
	return registry.DescribeProduct(input)
}

func describeProductAsAdmin(registry *catalog.Registry, body io.Reader) (interface{}, error) {
	input := &servicecatalog.DescribeProductAsAdminInput{}
	if err := decode(input, body); err != nil {
		return nil, err
	}
	return registry.DescribeProductAsAdmin(input)
}

func describeProvisionedProduct(registry *catalog.Registry, body io.Reader) (interface{}, error) {
	input := &servicecatalog.DescribeProvisionedProductInput{}
	if err := decode(input, body); err != nil {
		return nil, err
	}
	return registry.DescribeProvisionedProduct(input)
}

func describeRecord(registry *catalog.Registry, body io.Reader) (interface{}, error) {
	input := &servicecatalog.DescribeRecordInput{}
	if err := decode(input, body); err != nil {
		return nil, err
	}
	return registry.DescribeRecord(input)
}

func getProvisionedProductOutputs(registry *catalog.Registry, body io.Reader) (interface{}, error) {
	input := &servicecatalog.GetProvisionedProductOutputsInput{}
	if err := decode(input, body); err != nil {
		return nil, err
	}
	return registry.GetProvisionedProductOutputs(input)
}

// convertSearchQuery rewrites the SearchQuery filter syntax into attribute
// predicates. Each value is "<field>:<value>" or "<field>=<value>"; a value
// without a separator searches every recognized field.
func convertSearchQuery(filters map[string][]*string) map[string][]*string {
	query, ok := filters["SearchQuery"]
	if !ok {
		return filters
	}
	converted := map[string][]*string{}
	for field, values := range filters {
		if field != "SearchQuery" {
			converted[field] = values
		}
	}
	for _, value := range query {
		raw := aws.StringValue(value)
		field := "*"
		match := raw
		if idx := strings.IndexAny(raw, ":="); idx >= 0 {
			field = raw[:idx]
			match = raw[idx+1:]
		}
		converted[field] = append(converted[field], aws.String(match))
	}
	return converted
}
