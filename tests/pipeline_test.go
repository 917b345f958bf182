package tests

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ib-77/orelse/pkg/rop"
	"github.com/ib-77/orelse/pkg/rop/core"
	"github.com/ib-77/orelse/pkg/rop/diag"
	"github.com/ib-77/orelse/pkg/rop/unwrap"
)

// TestParsePipeline feeds raw strings through a channel, parses them and
// keeps only the valid numbers, the way a "continue on error" loop would.
func TestParsePipeline(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	buf := &diag.Buffer{}
	ctx = core.WithSink(ctx, buf)

	inputs := []string{"1", "2", "bad", "", "5"}
	pairs := make([]core.Pair[int], 0, len(inputs))
	for _, in := range inputs {
		n, err := strconv.Atoi(in)
		pairs = append(pairs, core.Pair[int]{Value: n, Err: err})
	}

	var doubled []int
	n := unwrap.Drain(ctx, core.ToChanResults(ctx, pairs), func(v int) {
		doubled = append(doubled, v*2)
	})

	assert.Equal(t, 3, n)
	assert.Equal(t, []int{2, 4, 10}, doubled)
	assert.Len(t, buf.Lines(), 2)
	for _, line := range buf.Lines() {
		assert.Contains(t, line, "invalid syntax")
		assert.NotContains(t, line, "\n")
	}
}

// TestLookupWithMessage resolves hosts from a table, reporting misses.
func TestLookupWithMessage(t *testing.T) {
	buf := &diag.Buffer{}
	prev := diag.SetDefault(buf)
	defer diag.SetDefault(prev)

	table := map[string]string{"api": "10.0.0.1", "db": "10.0.0.2"}
	lookup := func(name string) rop.Option[string] {
		addr, ok := table[name]
		return rop.FromOk(addr, ok)
	}

	var resolved []string
	unwrap.Each([]string{"api", "cache", "db"}, func(_ int, name string) {
		addr := unwrap.OptionMsg(lookup(name), fmt.Sprintf("no address for %s", name), unwrap.Continue[string])
		resolved = append(resolved, name+"="+addr)
	})

	assert.Equal(t, "api=10.0.0.1,db=10.0.0.2", strings.Join(resolved, ","))
	assert.Equal(t, []string{"no address for cache"}, buf.Lines())
}

// TestFirstFailureAborts stops at the first bad record, like an early return.
func TestFirstFailureAborts(t *testing.T) {
	buf := &diag.Buffer{}
	prev := diag.SetDefault(buf)
	defer diag.SetDefault(prev)

	sum := func(records []string) (total int, ok bool) {
		aborted := unwrap.Scope(func() {
			for _, r := range records {
				total += unwrap.Result(rop.From(strconv.Atoi(r)), unwrap.Return[int])
			}
		})
		return total, !aborted
	}

	total, ok := sum([]string{"1", "2", "3"})
	assert.True(t, ok)
	assert.Equal(t, 6, total)
	assert.Empty(t, buf.Lines())

	total, ok = sum([]string{"1", "x", "3"})
	assert.False(t, ok)
	assert.Equal(t, 1, total)
	assert.Equal(t, []string{`strconv.Atoi: parsing "x": invalid syntax`}, buf.Lines())
}
