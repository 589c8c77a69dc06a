package yamlspec

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// names accepts either a single handler name or a list of them.
type names []string

func (n *names) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		var single string
		if err := value.Decode(&single); err != nil {
			return err
		}
		*n = names{single}
		return nil
	}
	var list []string
	if err := value.Decode(&list); err != nil {
		return fmt.Errorf("line %d: expected a handler name or a list of them: %w", value.Line, err)
	}
	*n = list
	return nil
}

// node is one entry of a spec document: the document root, a group or an
// example. Which one is decided by the key carrying its description.
type node struct {
	Spec     *string `yaml:"spec"`
	Describe *string `yaml:"describe"`
	Context  *string `yaml:"context"`
	It       *string `yaml:"it"`

	Focus  bool `yaml:"focus"`
	Ignore bool `yaml:"ignore"`

	BeforeAll  names `yaml:"before_all"`
	BeforeEach names `yaml:"before_each"`
	AfterEach  names `yaml:"after_each"`
	AfterAll   names `yaml:"after_all"`

	Run         string `yaml:"run"`
	ExpectError string `yaml:"expect_error"`
	Timeout     string `yaml:"timeout"`

	Children []*node `yaml:"children"`

	line int
}

func (n *node) UnmarshalYAML(value *yaml.Node) error {
	type plain node
	if err := value.Decode((*plain)(n)); err != nil {
		return err
	}
	n.line = value.Line
	return nil
}

// kind returns which description key is set and its value.
func (n *node) kind() (string, string, error) {
	var (
		found []string
		desc  string
	)
	for _, k := range []struct {
		key   string
		value *string
	}{
		{"spec", n.Spec},
		{"describe", n.Describe},
		{"context", n.Context},
		{"it", n.It},
	} {
		if k.value != nil {
			found = append(found, k.key)
			desc = *k.value
		}
	}
	switch len(found) {
	case 0:
		return "", "", fmt.Errorf("line %d: entry needs one of 'spec', 'describe', 'context' or 'it'", n.line)
	case 1:
		return found[0], desc, nil
	default:
		return "", "", fmt.Errorf("line %d: entry sets more than one of %v", n.line, found)
	}
}
