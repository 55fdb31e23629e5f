package parse

import (
	"strings"
)

// Tier groups machine numbers into bands that never interleave.
type Tier int

const (
	TierNumeric     Tier = iota // plain numbers, ascending by value
	TierReserved                // numbers carrying ReservedPrefix
	TierPlaceholder             // the Placeholder dash, always last
)

const (
	// ReservedPrefix marks spare/reserve presses such as "R-5".
	ReservedPrefix = "R-"
	// Placeholder is entered when a press has no number yet.
	Placeholder = "-"
)

// legacyNumbers are historical ids that must sort by an explicit value
// instead of whatever the fallback parse would give them.
var legacyNumbers = map[string]int64{
	"514": 514,
}

// SortKey is the position of a machine number in display order.
type SortKey struct {
	Tier  Tier
	Value int64
	Raw   string
}

// MachineNumberKey classifies a raw machine number. Anything that is not a
// special case falls back to its leading integer, 0 when it has none, the same
// way the legacy SQLite CAST ordered it.
func MachineNumberKey(raw string) SortKey {
	s := strings.TrimSpace(raw)
	switch {
	case s == Placeholder:
		return SortKey{Tier: TierPlaceholder, Raw: s}
	case hasReservedPrefix(s):
		return SortKey{Tier: TierReserved, Value: leadingInt(s[len(ReservedPrefix):]), Raw: s}
	}
	if v, ok := legacyNumbers[s]; ok {
		return SortKey{Tier: TierNumeric, Value: v, Raw: s}
	}
	return SortKey{Tier: TierNumeric, Value: leadingInt(s), Raw: s}
}

// hasReservedPrefix matches ReservedPrefix ignoring ASCII case, as the
// legacy LIKE 'R-%' ordering did.
func hasReservedPrefix(s string) bool {
	return len(s) >= len(ReservedPrefix) && strings.EqualFold(s[:len(ReservedPrefix)], ReservedPrefix)
}

// leadingInt parses an optional sign followed by digits at the start of s.
func leadingInt(s string) int64 {
	s = strings.TrimLeft(s, " \t")
	neg := false
	if s != "" && (s[0] == '-' || s[0] == '+') {
		neg = s[0] == '-'
		s = s[1:]
	}
	var n int64
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			break
		}
		n = n*10 + int64(c-'0')
		if n > 1<<53 {
			break
		}
	}
	if neg {
		return -n
	}
	return n
}

// Compare orders two sort keys: tier first, then value, then the raw text.
func (k SortKey) Compare(o SortKey) int {
	switch {
	case k.Tier != o.Tier:
		return cmpInt(int64(k.Tier), int64(o.Tier))
	case k.Value != o.Value:
		return cmpInt(k.Value, o.Value)
	}
	return strings.Compare(k.Raw, o.Raw)
}

// CompareMachineNumbers returns -1, 0 or 1 comparing a and b in display order.
func CompareMachineNumbers(a, b string) int {
	return MachineNumberKey(a).Compare(MachineNumberKey(b))
}

func cmpInt(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
