package spec

import (
	"strings"
	"testing"

	"github.com/specialistvlad/gospec/internal/runner"
)

// Run compiles script and runs each example as a subtest of t, in plan
// order. Ignored examples are skipped. A script that fails to compile fails t
// immediately.
func Run(t *testing.T, name string, script Script, opts ...Option) {
	t.Helper()

	ctx := t.Context()
	plan, err := Compile(ctx, name, script, opts...)
	if err != nil {
		t.Fatalf("compiling %s: %v", name, err)
	}

	r := runner.New()
	for _, e := range plan.Examples() {
		t.Run(subtestName(e), func(t *testing.T) {
			if e.ShouldBeIgnored() {
				t.Skip("ignored")
			}
			res := r.RunExample(ctx, e)
			if !res.Status.Successful() {
				t.Errorf("%s: %v", res.Status, res.Err)
			}
		})
	}
}

func subtestName(e *Example) string {
	return strings.Join(e.Path(), "/")
}
