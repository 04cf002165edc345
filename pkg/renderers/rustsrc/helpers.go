package rustsrc

import "fmt"

// rustOptionInt formats an optional integer as a Rust Option<u32> literal.
func rustOptionInt(v *int) string {
	if v == nil {
		return "None"
	}
	return fmt.Sprintf("Some(%d)", *v)
}

// rustOptionString formats an optional string as Option<String>. Empty means
// absent; none of the emitted fields distinguish empty from missing.
func rustOptionString(v string) string {
	if v == "" {
		return "None"
	}
	return fmt.Sprintf("Some(%q.to_string())", v)
}

func rustBool(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
