package chain

// Emptiness selects which values the optional modifier treats as "not
// provided". The policies escalate: each one also skips everything the
// previous one skips.
type Emptiness int

const (
	// EmptyStrict skips only paths absent from the document.
	EmptyStrict Emptiness = iota
	// EmptyNullable also skips explicit nulls. This is the Optional default.
	EmptyNullable
	// EmptyFalsy also skips "", 0, false, and empty arrays/objects.
	EmptyFalsy
)

func isEmpty(value any, missing bool, policy Emptiness) bool {
	if missing {
		return true
	}
	if policy == EmptyStrict {
		return false
	}
	if value == nil {
		return true
	}
	if policy == EmptyNullable {
		return false
	}
	switch v := value.(type) {
	case string:
		return v == ""
	case bool:
		return !v
	case int:
		return v == 0
	case int64:
		return v == 0
	case float64:
		return v == 0
	case []any:
		return len(v) == 0
	case map[string]any:
		return len(v) == 0
	default:
		return false
	}
}
