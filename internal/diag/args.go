package diag

import (
	"fmt"
	"strconv"
	"strings"
)

// ArgKind discriminates the value forms an argument may carry.
type ArgKind uint8

const (
	ArgStr ArgKind = iota
	ArgBool
	ArgCount
	ArgStrList
)

// ArgValue is one structured argument value: a string, a boolean, a
// count, or an ordered string list rendered with "and" joining.
type ArgValue struct {
	kind ArgKind
	str  string
	flag bool
	num  int
	list []string
}

// Str wraps a plain string argument.
func Str(s string) ArgValue { return ArgValue{kind: ArgStr, str: s} }

// Bool wraps a boolean argument.
func Bool(b bool) ArgValue { return ArgValue{kind: ArgBool, flag: b} }

// Count wraps a non-negative count argument.
func Count(n int) ArgValue { return ArgValue{kind: ArgCount, num: n} }

// StrList wraps an ordered list argument, rendered and-joined.
func StrList(items []string) ArgValue {
	copied := make([]string, len(items))
	copy(copied, items)
	return ArgValue{kind: ArgStrList, list: copied}
}

// Kind returns the discriminator of the value.
func (v ArgValue) Kind() ArgKind { return v.kind }

// AsBool returns the boolean payload; false for non-bool values.
func (v ArgValue) AsBool() bool { return v.kind == ArgBool && v.flag }

// AsCount returns the count payload; 0 for non-count values.
func (v ArgValue) AsCount() int {
	if v.kind != ArgCount {
		return 0
	}
	return v.num
}

// Render produces the display form of the value. Lists are joined in
// prose form: "a", "a and b", "a, b and c".
func (v ArgValue) Render() string {
	switch v.kind {
	case ArgStr:
		return v.str
	case ArgBool:
		return strconv.FormatBool(v.flag)
	case ArgCount:
		return strconv.Itoa(v.num)
	case ArgStrList:
		switch len(v.list) {
		case 0:
			return ""
		case 1:
			return v.list[0]
		case 2:
			return v.list[0] + " and " + v.list[1]
		default:
			return strings.Join(v.list[:len(v.list)-1], ", ") + " and " + v.list[len(v.list)-1]
		}
	}
	return ""
}

// Args is an insertion-ordered mapping from argument name to value.
// Names are unique: setting a name twice is a producer bug and panics.
type Args struct {
	names  []string
	values map[string]ArgValue
}

// Set adds an argument, preserving insertion order.
func (a *Args) Set(name string, v ArgValue) {
	if a.values == nil {
		a.values = make(map[string]ArgValue)
	}
	if _, dup := a.values[name]; dup {
		panic(fmt.Sprintf("diag: duplicate argument %q", name))
	}
	a.names = append(a.names, name)
	a.values[name] = v
}

// clone returns an independent copy. Value-copied diagnostics would
// otherwise share the backing map and corrupt each other on Set.
func (a Args) clone() Args {
	if a.values == nil {
		return Args{}
	}
	out := Args{
		names:  append([]string(nil), a.names...),
		values: make(map[string]ArgValue, len(a.values)),
	}
	for name, v := range a.values {
		out.values[name] = v
	}
	return out
}

// Get looks up an argument by name.
func (a *Args) Get(name string) (ArgValue, bool) {
	v, ok := a.values[name]
	return v, ok
}

// Names returns the argument names in insertion order. The returned
// slice is shared; callers must not modify it.
func (a *Args) Names() []string {
	return a.names
}

// Len reports the number of arguments.
func (a *Args) Len() int {
	return len(a.names)
}
