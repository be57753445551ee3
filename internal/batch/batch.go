// Package batch runs one operation over a list of items and collects every
// outcome, successes and failures alike, in input order.
package batch

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// Item is one unit of work with the label it is reported under.
type Item[In any] struct {
	Label string
	Value In
}

// Result is the outcome for the item at the same index. Error is empty on
// success.
type Result[T any] struct {
	Label string `json:"label"`
	Value T      `json:"value,omitempty"`
	Error string `json:"error,omitempty"`
}

func (r Result[T]) Failed() bool {
	return r.Error != ""
}

// Progress receives the number of finished items and the batch size.
type Progress func(completed, total int)

// Func processes a single item.
type Func[In, T any] func(ctx context.Context, in In) (T, error)

type options struct {
	limit    int
	progress Progress
	limiter  *rate.Limiter
}

type Option func(*options)

// WithLimit caps how many items Concurrent runs at once. Zero or less means
// no cap.
func WithLimit(n int) Option {
	return func(o *options) { o.limit = n }
}

func WithProgress(fn Progress) Option {
	return func(o *options) { o.progress = fn }
}

// WithLimiter paces Sequential: each item waits for a token before it starts.
func WithLimiter(l *rate.Limiter) Option {
	return func(o *options) { o.limiter = l }
}

func collect(opts []Option) options {
	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// Concurrent starts every item immediately and waits for all of them. A
// failing item never cancels its siblings.
func Concurrent[In, T any](ctx context.Context, items []Item[In], fn Func[In, T], opts ...Option) []Result[T] {
	o := collect(opts)
	results := make([]Result[T], len(items))
	total := len(items)

	var (
		mu        sync.Mutex
		completed int
	)
	report := func() {
		if o.progress == nil {
			return
		}
		mu.Lock()
		defer mu.Unlock()
		completed++
		o.progress(completed, total)
	}

	var g errgroup.Group
	if o.limit > 0 {
		g.SetLimit(o.limit)
	}
	for i, item := range items {
		g.Go(func() error {
			results[i] = run(ctx, item, fn)
			report()
			return nil
		})
	}
	_ = g.Wait()
	return results
}

// Sequential processes items one at a time in input order. Progress is
// reported after each item, so callers see 1, 2, ... N.
func Sequential[In, T any](ctx context.Context, items []Item[In], fn Func[In, T], opts ...Option) []Result[T] {
	o := collect(opts)
	results := make([]Result[T], len(items))
	for i, item := range items {
		if o.limiter != nil {
			if err := o.limiter.Wait(ctx); err != nil {
				results[i] = Result[T]{Label: item.Label, Error: err.Error()}
				if o.progress != nil {
					o.progress(i+1, len(items))
				}
				continue
			}
		}
		results[i] = run(ctx, item, fn)
		if o.progress != nil {
			o.progress(i+1, len(items))
		}
	}
	return results
}

func run[In, T any](ctx context.Context, item Item[In], fn Func[In, T]) (res Result[T]) {
	res.Label = item.Label
	defer func() {
		if rec := recover(); rec != nil {
			res = Result[T]{Label: item.Label, Error: fmt.Sprintf("panic: %v", rec)}
		}
	}()
	if err := ctx.Err(); err != nil {
		res.Error = err.Error()
		return res
	}
	value, err := fn(ctx, item.Value)
	if err != nil {
		res.Error = err.Error()
		if res.Error == "" {
			res.Error = "unknown error"
		}
		return res
	}
	res.Value = value
	return res
}

// Lines splits newline separated text into trimmed, non-empty entries.
func Lines(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}

// FromValues labels values with label(i, v).
func FromValues[In any](values []In, label func(int, In) string) []Item[In] {
	items := make([]Item[In], len(values))
	for i, v := range values {
		items[i] = Item[In]{Label: label(i, v), Value: v}
	}
	return items
}
