// Package binding exposes the bitset engine to a scripting host as a table
// of named operations.
//
// A Registry marshals positional, dynamically typed arguments, checks
// them, dispatches to the engine and reports rejected arguments the way
// an embedded interpreter does:
//
//	reg := binding.New(binding.WithProfile(binding.ProfileFull))
//	b, _ := reg.Call(ctx, "new")
//	_, _ = reg.Call(ctx, "set", b, 5)
//	n, _ := reg.Call(ctx, "count", b) // int64(1)
//	_, err := reg.Call(ctx, "set", b, -1)
//	// bad argument #2 to 'set' (expected positive index)
//
// # Profiles
//
// ProfileBasic exposes new, set, set_range, clear, clear_range, get,
// get_range, count, intersection, union, dump_raw and dump_len.
// ProfileFull adds difference, symmetric_diff, the *_mut in-place variants,
// equals, subset and strict_subset, and the operator hooks
// (__add, __mul, __sub, __len, __eq, __lt, __le).
//
// # Observability
//
// Every call is timed and reported to the configured MetricsCollector and
// logged through the configured *Logger (log/slog).
package binding
