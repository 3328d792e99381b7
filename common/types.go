package common

// StackOutput is a single key/value output declared by a provisioned stack
type StackOutput struct {
	Key         string
	Value       string
	Description string
}

// Stack summarizes a provisioned stack
type Stack struct {
	ID      string
	Name    string
	Outputs []StackOutput
}

// Tag is a single key/value pair attached to a resource
type Tag struct {
	Key   string
	Value string
}

// StackProvisioner for creating stacks from a template body
type StackProvisioner interface {
	CreateStack(accountID string, region string, stackName string, templateBody string) (*Stack, error)
}

// TemplateFetcher for loading a template body from a URL
type TemplateFetcher interface {
	FetchTemplate(templateURL string) (string, error)
}

// TagManager for attaching and reading tags on a resource ARN
type TagManager interface {
	TagResource(arn string, tags map[string]string)
	UntagResource(arn string, keys []string)
	GetTags(arn string) []Tag
}
