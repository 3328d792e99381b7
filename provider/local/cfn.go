package local

import (
	"crypto/rand"
	"fmt"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	"scmock/common"
)

type stackEngine struct {
}

func newStackProvisioner() common.StackProvisioner {
	return &stackEngine{}
}

type stackTemplate struct {
	Resources map[string]interface{}         `yaml:"Resources"`
	Outputs   map[string]stackTemplateOutput `yaml:"Outputs"`
}

type stackTemplateOutput struct {
	Value       interface{} `yaml:"Value"`
	Description string      `yaml:"Description"`
}

// CreateStack synthesizes a stack from the template body. The template is
// parsed for its declared outputs; nothing is provisioned anywhere.
func (engine *stackEngine) CreateStack(accountID string, region string, stackName string, templateBody string) (*common.Stack, error) {
	if strings.TrimSpace(templateBody) == common.Empty {
		return nil, errors.Errorf("no template body for stack '%s'", stackName)
	}
	template := &stackTemplate{}
	if err := yaml.Unmarshal([]byte(templateBody), template); err != nil {
		return nil, errors.Wrapf(err, "unable to parse template for stack '%s'", stackName)
	}

	stack := &common.Stack{
		ID:   fmt.Sprintf("arn:aws:cloudformation:%s:%s:stack/%s/%s", region, accountID, stackName, stackToken()),
		Name: stackName,
	}

	outputKeys := make([]string, 0, len(template.Outputs))
	for key := range template.Outputs {
		outputKeys = append(outputKeys, key)
	}
	sort.Strings(outputKeys)
	for _, key := range outputKeys {
		output := template.Outputs[key]
		stack.Outputs = append(stack.Outputs, common.StackOutput{
			Key:         key,
			Value:       outputValue(output.Value),
			Description: output.Description,
		})
	}

	log.Debugf("  Created stack '%s' with %d output(s)", stackName, len(stack.Outputs))
	return stack, nil
}

// outputValue renders an output's declared value. Literal scalars pass
// through; Ref and Fn::GetAtt resolve to the referenced name, since there is
// no real resource to read an attribute from.
func outputValue(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return common.Empty
	case string:
		return v
	case map[interface{}]interface{}:
		if ref, ok := v["Ref"].(string); ok {
			return ref
		}
		return getAttValue(v["Fn::GetAtt"])
	default:
		return fmt.Sprintf("%v", v)
	}
}

func getAttValue(att interface{}) string {
	switch v := att.(type) {
	case string:
		return v
	case []interface{}:
		parts := make([]string, 0, len(v))
		for _, part := range v {
			parts = append(parts, fmt.Sprintf("%v", part))
		}
		return strings.Join(parts, ".")
	default:
		return common.Empty
	}
}

const stackTokenAlphabet = "0123456789abcdef"

// stackToken produces the uuid-shaped suffix of a stack id
func stackToken() string {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		panic(err)
	}
	for i, b := range buf {
		buf[i] = stackTokenAlphabet[int(b)%len(stackTokenAlphabet)]
	}
	token := string(buf)
	return fmt.Sprintf("%s-%s-%s-%s-%s", token[0:8], token[8:12], token[12:16], token[16:20], token[20:32])
}
