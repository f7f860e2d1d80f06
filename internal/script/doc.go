// Package script evaluates line-oriented bitset scripts against a
// binding.Registry.
//
// Each line is one statement:
//
//	# comment
//	a = new 64          bind the result of an operation
//	set a 3             evaluate and print the result
//	u = + a b           operator aliases: + * - # == < <=
//	print u
//	drop a
//
// Arguments are decimal integers, true, false, nil or variable names.
// A line whose first token is "#" is a comment, so the "#" (length) alias
// is only usable on the right-hand side of an assignment.
package script
