package hcl

import (
	"fmt"
	"time"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// attributeValue evaluates an attribute. Spec files have no variables, so
// expressions are evaluated without an evaluation context.
func attributeValue(attr *hcl.Attribute) (cty.Value, error) {
	val, diags := attr.Expr.Value(nil)
	if diags.HasErrors() {
		return cty.NilVal, diags
	}
	return val, nil
}

func decodeBool(attrs hcl.Attributes, name string) (bool, error) {
	attr, ok := attrs[name]
	if !ok {
		return false, nil
	}
	val, err := attributeValue(attr)
	if err != nil {
		return false, err
	}
	val, err = convert.Convert(val, cty.Bool)
	if err != nil {
		return false, attrError(attr, "must be a bool", err)
	}
	if val.IsNull() {
		return false, nil
	}
	var out bool
	if err := gocty.FromCtyValue(val, &out); err != nil {
		return false, attrError(attr, "must be a bool", err)
	}
	return out, nil
}

func decodeString(attrs hcl.Attributes, name string) (string, error) {
	attr, ok := attrs[name]
	if !ok {
		return "", nil
	}
	val, err := attributeValue(attr)
	if err != nil {
		return "", err
	}
	val, err = convert.Convert(val, cty.String)
	if err != nil {
		return "", attrError(attr, "must be a string", err)
	}
	if val.IsNull() {
		return "", nil
	}
	var out string
	if err := gocty.FromCtyValue(val, &out); err != nil {
		return "", attrError(attr, "must be a string", err)
	}
	return out, nil
}

// decodeNames reads a list of handler names. A single string is accepted as
// a list of one.
func decodeNames(attrs hcl.Attributes, name string) ([]string, error) {
	attr, ok := attrs[name]
	if !ok {
		return nil, nil
	}
	val, err := attributeValue(attr)
	if err != nil {
		return nil, err
	}
	if val.IsNull() {
		return nil, nil
	}
	if val.Type() == cty.String {
		val = cty.TupleVal([]cty.Value{val})
	}
	val, err = convert.Convert(val, cty.List(cty.String))
	if err != nil {
		return nil, attrError(attr, "must be a list of handler names", err)
	}
	var out []string
	if err := gocty.FromCtyValue(val, &out); err != nil {
		return nil, attrError(attr, "must be a list of handler names", err)
	}
	return out, nil
}

func decodeDuration(attrs hcl.Attributes, name string) (time.Duration, error) {
	raw, err := decodeString(attrs, name)
	if err != nil || raw == "" {
		return 0, err
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, attrError(attrs[name], "must be a duration", err)
	}
	if d < 0 {
		return 0, attrError(attrs[name], "must not be negative", nil)
	}
	return d, nil
}

func attrError(attr *hcl.Attribute, msg string, err error) error {
	if err == nil {
		return fmt.Errorf("%s: attribute '%s' %s", attr.Range.String(), attr.Name, msg)
	}
	return fmt.Errorf("%s: attribute '%s' %s: %w", attr.Range.String(), attr.Name, msg, err)
}

func location(r hcl.Range) string {
	return fmt.Sprintf("%s:%d", r.Filename, r.Start.Line)
}
