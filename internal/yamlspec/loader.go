package yamlspec

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/specialistvlad/gospec/internal/config"
	"github.com/specialistvlad/gospec/internal/ctxlog"
	"github.com/specialistvlad/gospec/internal/fsutil"
	"gopkg.in/yaml.v3"
)

// Loader is the YAML implementation of config.Loader.
type Loader struct{}

// NewLoader creates a new YAML spec file loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Extensions implements config.Loader.
func (l *Loader) Extensions() []string {
	return []string{".yaml", ".yml"}
}

// Load reads every YAML file found in paths.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("YAML loader started.", "path_count", len(paths))

	files, err := fsutil.CollectFiles(paths, l.Extensions()...)
	if err != nil {
		return nil, err
	}

	model := &config.Model{}
	for _, file := range files {
		src, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("failed to read YAML file %s: %w", file, err)
		}
		m, err := l.LoadBytes(ctx, src, file)
		if err != nil {
			return nil, err
		}
		model.Merge(m)
	}

	logger.Debug("YAML loading complete.", "files", len(files), "specs", len(model.Specs))
	return model, nil
}

// LoadBytes decodes every document of src.
func (l *Loader) LoadBytes(ctx context.Context, src []byte, filename string) (*config.Model, error) {
	dec := yaml.NewDecoder(bytes.NewReader(src))
	model := &config.Model{}
	for {
		var doc node
		err := dec.Decode(&doc)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse YAML file %s: %w", filename, err)
		}

		kind, _, err := doc.kind()
		if err != nil {
			return nil, fmt.Errorf("failed to decode YAML file %s: %w", filename, err)
		}
		if kind != "spec" {
			return nil, fmt.Errorf("failed to decode YAML file %s: line %d: document must start with 'spec'", filename, doc.line)
		}
		g, err := translateGroup(&doc, config.KindSpec, filename)
		if err != nil {
			return nil, fmt.Errorf("failed to decode YAML file %s: %w", filename, err)
		}
		model.Specs = append(model.Specs, g)
	}
	ctxlog.FromContext(ctx).Debug("YAML source loaded.", "file", filename, "specs", len(model.Specs))
	return model, nil
}

func translateGroup(n *node, kind config.GroupKind, filename string) (*config.Group, error) {
	_, desc, err := n.kind()
	if err != nil {
		return nil, err
	}
	if n.Run != "" || n.ExpectError != "" || n.Timeout != "" {
		return nil, fmt.Errorf("line %d: group '%s' cannot set run, expect_error or timeout", n.line, desc)
	}

	g := &config.Group{
		Kind:        kind,
		Description: desc,
		Focus:       n.Focus,
		Ignore:      n.Ignore,
		BeforeAll:   n.BeforeAll,
		BeforeEach:  n.BeforeEach,
		AfterEach:   n.AfterEach,
		AfterAll:    n.AfterAll,
		Source:      fmt.Sprintf("%s:%d", filename, n.line),
	}
	for i, child := range n.Children {
		if child == nil {
			return nil, fmt.Errorf("line %d: entry %d of '%s' children is empty", n.line, i+1, desc)
		}
		k, _, err := child.kind()
		if err != nil {
			return nil, err
		}
		var decl config.Node
		switch k {
		case "describe":
			decl, err = translateGroup(child, config.KindDescribe, filename)
		case "context":
			decl, err = translateGroup(child, config.KindContext, filename)
		case "it":
			decl, err = translateExample(child, filename)
		default:
			err = fmt.Errorf("line %d: 'spec' is only allowed at the top of a document", child.line)
		}
		if err != nil {
			return nil, err
		}
		g.Children = append(g.Children, decl)
	}
	return g, nil
}

func translateExample(n *node, filename string) (*config.Example, error) {
	if len(n.Children) > 0 || len(n.BeforeAll)+len(n.BeforeEach)+len(n.AfterEach)+len(n.AfterAll) > 0 {
		return nil, fmt.Errorf("line %d: example '%s' cannot have children or hooks", n.line, *n.It)
	}

	e := &config.Example{
		Description: *n.It,
		Focus:       n.Focus,
		Ignore:      n.Ignore,
		Run:         n.Run,
		ExpectError: n.ExpectError,
		Source:      fmt.Sprintf("%s:%d", filename, n.line),
	}
	if n.Timeout != "" {
		d, err := time.ParseDuration(n.Timeout)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid timeout: %w", n.line, err)
		}
		if d < 0 {
			return nil, fmt.Errorf("line %d: timeout must not be negative", n.line)
		}
		e.Timeout = d
	}
	return e, nil
}
