package catalog

import (
	"encoding/json"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/servicecatalog"

	"scmock/common"
)

// Constraint governs how a product in a portfolio may be provisioned. The
// parameters payload is kept as the opaque JSON string the caller supplied.
type Constraint struct {
	ID          string
	Type        string
	Description string
	Owner       string
	ProductID   string
	PortfolioID string
	Parameters  string
	CreatedTime time.Time
	UpdatedTime time.Time
}

func newConstraint(accountID string, input *servicecatalog.CreateConstraintInput) *Constraint {
	now := time.Now().UTC()
	return &Constraint{
		ID:          newResourceID(constraintIDPrefix),
		Type:        aws.StringValue(input.Type),
		Description: aws.StringValue(input.Description),
		Owner:       accountID,
		ProductID:   aws.StringValue(input.ProductId),
		PortfolioID: aws.StringValue(input.PortfolioId),
		Parameters:  aws.StringValue(input.Parameters),
		CreatedTime: now,
		UpdatedTime: now,
	}
}

// LaunchRoleARN extracts the RoleArn parameter of a LAUNCH constraint.
// Returns the empty string for other constraint types or malformed payloads.
func (c *Constraint) LaunchRoleARN() string {
	if c.Type != common.ConstraintTypeLaunch {
		return common.Empty
	}
	params := struct {
		RoleArn string `json:"RoleArn"`
	}{}
	if err := json.Unmarshal([]byte(c.Parameters), &params); err != nil {
		return common.Empty
	}
	return params.RoleArn
}

// Detail projects the constraint onto its wire detail shape
func (c *Constraint) Detail() *servicecatalog.ConstraintDetail {
	return &servicecatalog.ConstraintDetail{
		ConstraintId: aws.String(c.ID),
		Description:  aws.String(c.Description),
		Owner:        aws.String(c.Owner),
		PortfolioId:  aws.String(c.PortfolioID),
		ProductId:    aws.String(c.ProductID),
		Type:         aws.String(c.Type),
	}
}

// Summary projects the constraint onto the shape used in launch path listings
func (c *Constraint) Summary() *servicecatalog.ConstraintSummary {
	return &servicecatalog.ConstraintSummary{
		Description: aws.String(c.Description),
		Type:        aws.String(c.Type),
	}
}
