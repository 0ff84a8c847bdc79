package intel

import "strings"

// appendUnique appends v if the list does not already hold it,
// preserving insertion order.
func appendUnique(list []string, v string) []string {
	if v == "" {
		return list
	}
	for _, existing := range list {
		if existing == v {
			return list
		}
	}
	return append(list, v)
}

// normalizePhone reduces a raw match to the +91 country-coded form.
// Anything that does not boil down to ten digits starting 6-9 is
// rejected.
func normalizePhone(raw string) (string, bool) {
	digits := digitsOnly(raw)
	if len(digits) == 12 && strings.HasPrefix(digits, "91") {
		digits = digits[2:]
	}
	if len(digits) != 10 || digits[0] < '6' || digits[0] > '9' {
		return "", false
	}
	return "+91" + digits, true
}

// normalizeHandle lowercases a UPI id or email and validates its shape.
func normalizeHandle(raw string) (string, bool) {
	cand := strings.ToLower(strings.TrimSpace(raw))
	if strings.Count(cand, "@") != 1 {
		return "", false
	}
	parts := strings.SplitN(cand, "@", 2)
	user, handle := parts[0], strings.Trim(parts[1], ".")
	if len(user) < 2 || handle == "" {
		return "", false
	}
	return user + "@" + handle, true
}

// normalizeAccount keeps only well-formed 10-18 digit runs so merge
// never accumulates fragments.
func normalizeAccount(raw string) (string, bool) {
	digits := digitsOnly(raw)
	if len(digits) < 10 || len(digits) > 18 || digits != raw {
		return "", false
	}
	return digits, true
}

// knownKeyword reports whether kw belongs to the master vocabulary.
func knownKeyword(kw string) bool {
	kw = strings.ToLower(strings.TrimSpace(kw))
	for _, k := range scamKeywords {
		if k == kw {
			return true
		}
	}
	return false
}
