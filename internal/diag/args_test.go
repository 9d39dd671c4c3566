package diag

import "testing"

func TestArgValueRender(t *testing.T) {
	tests := []struct {
		name string
		v    ArgValue
		want string
	}{
		{"string", Str("avx2"), "avx2"},
		{"bool true", Bool(true), "true"},
		{"bool false", Bool(false), "false"},
		{"count", Count(3), "3"},
		{"empty list", StrList(nil), ""},
		{"one item", StrList([]string{"avx2"}), "avx2"},
		{"two items", StrList([]string{"avx2", "sse4.2"}), "avx2 and sse4.2"},
		{"three items", StrList([]string{"a", "b", "c"}), "a, b and c"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.Render(); got != tt.want {
				t.Errorf("Render() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestArgsOrderAndCollision(t *testing.T) {
	var args Args
	args.Set("details", Str("call to unsafe function"))
	args.Set("op_in_unsafe_fn_allowed", Bool(false))

	names := args.Names()
	if len(names) != 2 || names[0] != "details" || names[1] != "op_in_unsafe_fn_allowed" {
		t.Errorf("Names() = %v, want insertion order", names)
	}
	if v, ok := args.Get("details"); !ok || v.Render() != "call to unsafe function" {
		t.Errorf("Get(details) = %v, %v", v, ok)
	}

	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate argument name")
		}
	}()
	args.Set("details", Str("again"))
}

func TestStrListIsCopied(t *testing.T) {
	items := []string{"a", "b"}
	v := StrList(items)
	items[0] = "mutated"
	if got := v.Render(); got != "a and b" {
		t.Errorf("Render() = %q, want %q", got, "a and b")
	}
}
