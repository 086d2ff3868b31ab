package godeco

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Root is the path key addressing the decoded value itself.
const Root = "$"

// DecodeError maps a structural path to a human-readable message. Paths use
// "$" for the root, ".name" for object property traversal and "[i]" for
// array or tuple element traversal, composed by concatenation: a failure at
// index 2 of the array held by property "bar" is keyed "bar[2]".
//
// DecodeError is always returned as data from Decode, never panicked, and
// its shape is suitable for direct field-level display.
type DecodeError map[string]string

// ErrorAt builds a single-entry error.
func ErrorAt(path, message string) DecodeError {
	return DecodeError{path: message}
}

// RootError builds a single-entry error at the root path.
func RootError(message string) DecodeError {
	return ErrorAt(Root, message)
}

// Merge combines two errors by key union without mutating either side.
// Entries already present in e win over incoming ones; structural decoders
// give every child its own prefix, so in practice each side owns distinct
// keys.
func (e DecodeError) Merge(other DecodeError) DecodeError {
	out := make(DecodeError, len(e)+len(other))
	for k, v := range other {
		out[k] = v
	}
	for k, v := range e {
		out[k] = v
	}
	return out
}

// Prefix rebases every path in e under the given parent path using
// JoinPath. Structural primitives use this to keep positional context when
// propagating child failures.
func (e DecodeError) Prefix(prefix string) DecodeError {
	out := make(DecodeError, len(e))
	for k, v := range e {
		out[JoinPath(prefix, k)] = v
	}
	return out
}

// Error summarizes the first few entries in deterministic path order.
func (e DecodeError) Error() string {
	if len(e) == 0 {
		return ""
	}
	const maxShown = 3
	paths := make([]string, 0, len(e))
	for p := range e {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	lim := len(paths)
	if lim > maxShown {
		lim = maxShown
	}
	b := &strings.Builder{}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		fmt.Fprintf(b, "%s at %s", e[paths[i]], paths[i])
	}
	if n := len(paths); n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// JoinPath composes a parent path with a child path. A "$" child collapses
// into the prefix, a "[i]" child appends directly, and a named child joins
// with a dot. This yields composite paths like "items[2].name".
func JoinPath(prefix, child string) string {
	switch {
	case child == Root:
		return prefix
	case strings.HasPrefix(child, "["):
		return prefix + child
	default:
		return prefix + "." + child
	}
}

// IndexPath renders an array or tuple element path segment.
func IndexPath(i int) string {
	return "[" + strconv.Itoa(i) + "]"
}

// ErrorList is the list-shaped Validation failure. Merge concatenates
// without deduplicating; callers that need unique entries sort and filter
// on their side.
type ErrorList []string

// Merge appends the other list, preserving order and duplicates.
func (l ErrorList) Merge(other ErrorList) ErrorList {
	out := make(ErrorList, 0, len(l)+len(other))
	out = append(out, l...)
	out = append(out, other...)
	return out
}

// Error joins the entries for display.
func (l ErrorList) Error() string {
	return strings.Join(l, "; ")
}
