package normalize

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// StripCodeFences removes a Markdown code-fence wrapper (with optional
// language tag) from model output. Idempotent: unfenced text passes through.
func StripCodeFences(text string) string {
	s := strings.TrimSpace(text)
	if !strings.HasPrefix(s, "```") {
		return s
	}

	s = strings.TrimPrefix(s, "```")
	// Drop the language tag on the opening fence line, if any.
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		first := strings.TrimSpace(s[:idx])
		if first == "" || isFenceTag(first) {
			s = s[idx+1:]
		}
	} else {
		s = strings.TrimPrefix(s, "json")
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

func isFenceTag(s string) bool {
	for _, r := range s {
		if !(r >= 'a' && r <= 'z') && !(r >= '0' && r <= '9') {
			return false
		}
	}
	return true
}

// listOptions controls how non-list shapes are flattened into a string list.
type listOptions struct {
	// keyedFormat renders mapping entries as "key: value" instead of bare values.
	keyedFormat bool
	// primary, when set, extracts this single key from object list items.
	primary string
	// pair, when set, renders object list items as "<pair[0] value>: <pair[1] value>".
	pair [2]string
}

// repairStringList coerces a field into an ordered string list.
// Absent/null values normalize to an empty list; already-list string values
// pass through unchanged, making the repair idempotent.
func repairStringList(raw json.RawMessage, opts listOptions) []string {
	if len(raw) == 0 || string(raw) == "null" {
		return []string{}
	}

	// Already a list.
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err == nil {
		out := make([]string, 0, len(items))
		for _, item := range items {
			var s string
			if err := json.Unmarshal(item, &s); err == nil {
				out = append(out, s)
				continue
			}
			if entries, err := decodeOrderedEntries(item); err == nil {
				out = append(out, lineFromObject(entries, opts))
				continue
			}
			out = append(out, stringifyScalar(item))
		}
		return out
	}

	// Keyed mapping: flatten to the ordered sequence of its values.
	if entries, err := decodeOrderedEntries(raw); err == nil {
		out := make([]string, 0, len(entries))
		for _, e := range entries {
			if opts.keyedFormat {
				out = append(out, fmt.Sprintf("%s: %s", e.key, e.value))
			} else {
				out = append(out, e.value)
			}
		}
		return out
	}

	// Scalar.
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if s == "" {
			return []string{}
		}
		return []string{s}
	}
	if v := stringifyScalar(raw); v != "" && v != "false" {
		return []string{v}
	}
	return []string{}
}

// mapEntry is one key/value pair of a JSON object in document order.
type mapEntry struct {
	key   string
	value string
}

// decodeOrderedEntries decodes a JSON object preserving key order, which a
// plain map unmarshal would lose.
func decodeOrderedEntries(raw json.RawMessage) ([]mapEntry, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("not a JSON object")
	}

	var entries []mapEntry
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected object key token")
		}

		var val json.RawMessage
		if err := dec.Decode(&val); err != nil {
			return nil, err
		}
		entries = append(entries, mapEntry{key: key, value: stringifyScalar(val)})
	}
	return entries, nil
}

func lineFromObject(entries []mapEntry, opts listOptions) string {
	byKey := make(map[string]string, len(entries))
	for _, e := range entries {
		byKey[e.key] = e.value
	}

	if opts.pair[0] != "" {
		first, ok1 := byKey[opts.pair[0]]
		second, ok2 := byKey[opts.pair[1]]
		if ok1 && ok2 {
			return fmt.Sprintf("%s: %s", first, second)
		}
	}
	if opts.primary != "" {
		if v, ok := byKey[opts.primary]; ok {
			return v
		}
	}

	values := make([]string, 0, len(entries))
	for _, e := range entries {
		values = append(values, e.value)
	}
	return strings.Join(values, ": ")
}

// stringifyScalar renders a raw JSON value as a plain string.
func stringifyScalar(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String()
	}
	var b bool
	if err := json.Unmarshal(raw, &b); err == nil {
		return strconv.FormatBool(b)
	}
	return strings.TrimSpace(string(raw))
}

// repairConfidence coerces a confidence value into [0, 1], defaulting
// missing, non-numeric, or out-of-range values to the documented default.
func repairConfidence(raw json.RawMessage, def float64) (float64, bool) {
	if len(raw) == 0 || string(raw) == "null" {
		return def, true
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err != nil {
		return def, true
	}
	if f < 0 || f > 1 {
		return def, true
	}
	return f, false
}

// repairEnum validates a value against a closed set, coercing out-of-set
// values to def. The second return reports whether a coercion happened.
func repairEnum(value string, valid []string, def string) (string, bool) {
	for _, v := range valid {
		if value == v {
			return value, false
		}
	}
	return def, true
}

// repairHandoff flattens a handoff field that arrived as an object into a
// descriptive string.
func repairHandoff(raw json.RawMessage) string {
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}

	entries, err := decodeOrderedEntries(raw)
	if err != nil {
		return stringifyScalar(raw)
	}
	byKey := make(map[string]string, len(entries))
	for _, e := range entries {
		byKey[e.key] = e.value
	}
	if target, ok := byKey["target"]; ok {
		if reason, ok := byKey["reason"]; ok {
			return fmt.Sprintf("Target: %s. Reason: %s", target, reason)
		}
		return target
	}
	return stringifyScalar(raw)
}

// repairBool coerces a boolean field that may arrive as a string.
func repairBool(raw json.RawMessage) (bool, error) {
	var b bool
	if err := json.Unmarshal(raw, &b); err == nil {
		return b, nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return strconv.ParseBool(strings.TrimSpace(s))
	}
	return false, fmt.Errorf("not a boolean")
}

// repairString extracts a plain string field, stringifying scalars.
func repairString(raw json.RawMessage) string {
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}
	return stringifyScalar(raw)
}
