package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/gospec/internal/config"
	"github.com/specialistvlad/gospec/internal/ctxlog"
	"github.com/specialistvlad/gospec/internal/fsutil"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL spec file loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Extensions implements config.Loader.
func (l *Loader) Extensions() []string {
	return []string{".hcl"}
}

// Load parses every .hcl file found in paths and translates its spec blocks
// into the model, in file order.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	files, err := fsutil.CollectFiles(paths, l.Extensions()...)
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered HCL files.", "count", len(files))

	parser := hclparse.NewParser()
	model := &config.Model{}
	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}
		specs, err := l.translateFile(hclFile.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, err)
		}
		model.Specs = append(model.Specs, specs...)
	}

	logger.Debug("HCL loading complete.", "files", len(files), "specs", len(model.Specs))
	return model, nil
}

// LoadBytes parses a single in-memory file.
func (l *Loader) LoadBytes(ctx context.Context, src []byte, filename string) (*config.Model, error) {
	hclFile, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", filename, diags)
	}
	specs, err := l.translateFile(hclFile.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", filename, err)
	}
	ctxlog.FromContext(ctx).Debug("HCL source loaded.", "file", filename, "specs", len(specs))
	return &config.Model{Specs: specs}, nil
}

func (l *Loader) translateFile(body hcl.Body) ([]*config.Group, error) {
	content, diags := body.Content(fileSchema)
	if diags.HasErrors() {
		return nil, diags
	}
	specs := make([]*config.Group, 0, len(content.Blocks))
	for _, block := range content.Blocks {
		g, err := l.translateGroup(block, config.KindSpec)
		if err != nil {
			return nil, err
		}
		specs = append(specs, g)
	}
	return specs, nil
}

func (l *Loader) translateGroup(block *hcl.Block, kind config.GroupKind) (*config.Group, error) {
	content, diags := block.Body.Content(groupSchema)
	if diags.HasErrors() {
		return nil, diags
	}

	g := &config.Group{
		Kind:        kind,
		Description: block.Labels[0],
		Source:      location(block.DefRange),
	}
	var err error
	if g.Focus, err = decodeBool(content.Attributes, attrFocus); err != nil {
		return nil, err
	}
	if g.Ignore, err = decodeBool(content.Attributes, attrIgnore); err != nil {
		return nil, err
	}
	if g.BeforeAll, err = decodeNames(content.Attributes, attrBeforeAll); err != nil {
		return nil, err
	}
	if g.BeforeEach, err = decodeNames(content.Attributes, attrBeforeEach); err != nil {
		return nil, err
	}
	if g.AfterEach, err = decodeNames(content.Attributes, attrAfterEach); err != nil {
		return nil, err
	}
	if g.AfterAll, err = decodeNames(content.Attributes, attrAfterAll); err != nil {
		return nil, err
	}

	for _, child := range content.Blocks {
		var node config.Node
		switch child.Type {
		case blockDescribe:
			node, err = l.translateGroup(child, config.KindDescribe)
		case blockContext:
			node, err = l.translateGroup(child, config.KindContext)
		case blockIt:
			node, err = l.translateExample(child)
		}
		if err != nil {
			return nil, err
		}
		g.Children = append(g.Children, node)
	}
	return g, nil
}

func (l *Loader) translateExample(block *hcl.Block) (*config.Example, error) {
	content, diags := block.Body.Content(exampleSchema)
	if diags.HasErrors() {
		return nil, diags
	}

	e := &config.Example{
		Description: block.Labels[0],
		Source:      location(block.DefRange),
	}
	var err error
	if e.Focus, err = decodeBool(content.Attributes, attrFocus); err != nil {
		return nil, err
	}
	if e.Ignore, err = decodeBool(content.Attributes, attrIgnore); err != nil {
		return nil, err
	}
	if e.Run, err = decodeString(content.Attributes, attrRun); err != nil {
		return nil, err
	}
	if e.ExpectError, err = decodeString(content.Attributes, attrExpectError); err != nil {
		return nil, err
	}
	if e.Timeout, err = decodeDuration(content.Attributes, attrTimeout); err != nil {
		return nil, err
	}
	return e, nil
}
