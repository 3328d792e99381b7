package common

import (
	"io"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
)

// Bold is the specifier for bold formatted text values
var Bold = color.New(color.Bold).SprintFunc()

// Empty string
const Empty = ""

// Resource statuses
const (
	StatusAvailable = "AVAILABLE"
	StatusCreated   = "CREATED"
)

// Record types
const (
	RecordTypeProvisionProduct            = "PROVISION_PRODUCT"
	RecordTypeTerminateProvisionedProduct = "TERMINATE_PROVISIONED_PRODUCT"
)

// Provisioning artifact attributes
const (
	ArtifactTypeCloudFormation = "CLOUD_FORMATION_TEMPLATE"
	ArtifactGuidanceDefault    = "DEFAULT"
)

// ConstraintTypeLaunch identifies constraints that carry a launch role
const ConstraintTypeLaunch = "LAUNCH"

// ProvisionedProductTypeCfnStack is the type reported for stack backed provisioned products
const ProvisionedProductTypeCfnStack = "CFN_STACK"

// Resource type names used in error responses
const (
	ResourceTypePortfolio            = "AWS::ServiceCatalog::Portfolio"
	ResourceTypeProduct              = "AWS::ServiceCatalog::Product"
	ResourceTypeProvisioningArtifact = "AWS::ServiceCatalog::ProvisioningArtifact"
	ResourceTypeProvisionedProduct   = "AWS::ServiceCatalog::ProvisionedProduct"
	ResourceTypeRecord               = "AWS::ServiceCatalog::Record"
)

// OperationsHeader is the header for the operations table
var OperationsHeader = []string{"Operation", "Access"}

var version = "0.0.0-local"

// GetVersion returns the current version of the app
func GetVersion() string {
	return version
}

// SetVersion sets the current version of the app
func SetVersion(v string) {
	version = v
}

// CreateTableSection creates the standard output table used
func CreateTableSection(writer io.Writer, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(writer)
	table.SetHeader(header)
	table.SetBorder(true)
	table.SetAutoWrapText(false)
	return table
}
