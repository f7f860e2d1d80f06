package binding

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/hupe1980/bitset"
)

// Registry dispatches named operations on bitsets for a scripting host.
// A Registry is immutable after New and safe for concurrent use; the
// bitsets passed through it are not.
type Registry struct {
	profile   Profile
	ops       map[string]operation
	operators map[string]string
	logger    *Logger
	metrics   MetricsCollector
}

// New creates a Registry. The default profile is ProfileFull.
func New(optFns ...Option) *Registry {
	o := applyOptions(optFns)

	r := &Registry{
		profile:   o.profile,
		ops:       make(map[string]operation, len(operations)),
		operators: make(map[string]string, len(operators)),
		logger:    o.logger.WithProfile(o.profile),
		metrics:   o.metricsCollector,
	}

	for name, op := range operations {
		if r.profile == ProfileFull || op.basic {
			r.ops[name] = op
		}
	}
	if r.profile == ProfileFull {
		for hook, name := range operators {
			r.operators[hook] = name
		}
	}

	r.logger.LogRegistry(context.Background(), len(r.ops), len(r.operators))
	return r
}

// Profile returns the registry's profile.
func (r *Registry) Profile() Profile {
	return r.profile
}

// Names returns the exposed operation names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.ops))
	for name := range r.ops {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Operators returns the registered operator hooks in sorted order.
func (r *Registry) Operators() []string {
	hooks := make([]string, 0, len(r.operators))
	for hook := range r.operators {
		hooks = append(hooks, hook)
	}
	slices.Sort(hooks)
	return hooks
}

// Has reports whether the named operation is exposed.
func (r *Registry) Has(name string) bool {
	_, ok := r.ops[name]
	return ok
}

// Call invokes the named operation.
//
// Arguments are positional. Bitset arguments are *bitset.Bitset, integer
// arguments may be int, int64, int32 or uint32, and the optional fill flag
// of "new" is a bool. Results are *bitset.Bitset, bool, []bool or int64;
// mutators return their receiver so calls can be chained.
//
// Rejected arguments yield an *ArgError. A bitset that would grow past the
// addressable size yields an error wrapping bitset.ErrOutOfMemory and the
// bitset is left unchanged.
func (r *Registry) Call(ctx context.Context, name string, args ...any) (result any, err error) {
	op, ok := r.ops[name]
	if !ok {
		err = fmt.Errorf("%w: %q (profile %s)", ErrUnknownOperation, name, r.profile)
		r.logger.LogCall(ctx, name, len(args), err)
		return nil, err
	}

	start := time.Now()
	defer func() {
		if rec := recover(); rec != nil {
			ae, ok := rec.(*bitset.AllocationError)
			if !ok {
				panic(rec)
			}
			result, err = nil, fmt.Errorf("%s: could not allocate bitset: %w", name, ae)
		}
		r.metrics.RecordCall(name, op.mutating, time.Since(start), err)
		r.logger.LogCall(ctx, name, len(args), err)
	}()

	return op.fn(&call{name: name, args: args})
}

// Operator invokes the operation bound to a host operator hook such as
// "__add" or "__le". Only ProfileFull registers operator hooks.
func (r *Registry) Operator(ctx context.Context, hook string, args ...any) (any, error) {
	name, ok := r.operators[hook]
	if !ok {
		return nil, fmt.Errorf("%w: operator %q (profile %s)", ErrUnknownOperation, hook, r.profile)
	}
	return r.Call(ctx, name, args...)
}
