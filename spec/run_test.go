package spec

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRun_RunsExamplesAsSubtests(t *testing.T) {
	var calls []string
	track := func(name string) Block {
		return func(context.Context) error {
			calls = append(calls, name)
			return nil
		}
	}

	Run(t, "Bridge", func(ctx context.Context) {
		BeforeAll(ctx, track("before all"))
		AfterAll(ctx, track("after all"))
		It(ctx, "first", track("first"))
		It(ctx, "second", track("second"))
		XIt(ctx, "skipped", track("skipped"))
	})

	assert.Equal(t, []string{"before all", "first", "second", "after all"}, calls)
}
