package hcl

import "github.com/hashicorp/hcl/v2"

const (
	attrFocus       = "focus"
	attrIgnore      = "ignore"
	attrBeforeAll   = "before_all"
	attrBeforeEach  = "before_each"
	attrAfterEach   = "after_each"
	attrAfterAll    = "after_all"
	attrRun         = "run"
	attrExpectError = "expect_error"
	attrTimeout     = "timeout"

	blockSpec     = "spec"
	blockDescribe = "describe"
	blockContext  = "context"
	blockIt       = "it"
)

var labels = []string{"description"}

var fileSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{
		{Type: blockSpec, LabelNames: labels},
	},
}

var groupSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: attrFocus},
		{Name: attrIgnore},
		{Name: attrBeforeAll},
		{Name: attrBeforeEach},
		{Name: attrAfterEach},
		{Name: attrAfterAll},
	},
	Blocks: []hcl.BlockHeaderSchema{
		{Type: blockDescribe, LabelNames: labels},
		{Type: blockContext, LabelNames: labels},
		{Type: blockIt, LabelNames: labels},
	},
}

var exampleSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: attrFocus},
		{Name: attrIgnore},
		{Name: attrRun},
		{Name: attrExpectError},
		{Name: attrTimeout},
	},
}
