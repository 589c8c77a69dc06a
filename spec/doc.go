/*
Package spec is a behavior-specification DSL for Go.

A declaration script describes nested groups, hooks and examples. Compile
runs the script once and returns a Plan: the examples in execution order,
each carrying exactly the hooks that apply to it.

	plan, err := spec.Compile(ctx, "Calculator", func(ctx context.Context) {
		spec.BeforeEach(ctx, func(ctx context.Context) error {
			calc.Reset()
			return nil
		})
		spec.Describe(ctx, "add", func(ctx context.Context) {
			spec.It(ctx, "sums", func(ctx context.Context) error {
				if calc.Add(1, 2) != 3 {
					return errors.New("wrong sum")
				}
				return nil
			})
		})
	})

The script runs inside a root group named after the spec, so the example
above has the path Calculator, add, sums.

Declaration calls find the compilation through the ctx they are given, so
they must be made with the context passed to the script (or one derived
from it). Calling them anywhere else panics with an *IllegalContextError.

FDescribe, FContext and FIt focus: once anything is focused, only focused
examples and examples inside focused groups run. XDescribe, XContext and XIt
ignore examples when nothing is focused.

Run bridges a script into go test, running every example as a subtest.
*/
package spec
