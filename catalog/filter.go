package catalog

import (
	"github.com/aws/aws-sdk-go/aws"
)

// searchable entities expose their filterable attributes by name
type searchable interface {
	FilterKeys() []string
	FilterValue(key string) (string, error)
}

// matchesFilters applies field predicates to an entity. Values within a
// field are OR'd, fields are AND'd. The "*" field matches any recognized
// attribute. An unrecognized field fails the whole request, independent of
// the other fields.
func matchesFilters(entity searchable, filters map[string][]*string) (bool, error) {
	for field := range filters {
		if field == "*" {
			continue
		}
		if _, err := entity.FilterValue(field); err != nil {
			return false, err
		}
	}
	for field, values := range filters {
		if !matchesField(entity, field, values) {
			return false, nil
		}
	}
	return true, nil
}

func matchesField(entity searchable, field string, values []*string) bool {
	if field == "*" {
		for _, key := range entity.FilterKeys() {
			attribute, _ := entity.FilterValue(key)
			if containsValue(values, attribute) {
				return true
			}
		}
		return false
	}
	attribute, err := entity.FilterValue(field)
	if err != nil {
		return false
	}
	return containsValue(values, attribute)
}

func containsValue(values []*string, attribute string) bool {
	for _, value := range values {
		if aws.StringValue(value) == attribute {
			return true
		}
	}
	return false
}
