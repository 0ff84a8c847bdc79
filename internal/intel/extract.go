package intel

import (
	"regexp"
	"strings"
)

// contextWindow is how many characters around a digit run are scanned
// for disambiguating keywords.
const contextWindow = 40

var (
	reUPICandidate  = regexp.MustCompile(`[a-z0-9][a-z0-9._-]*@[a-z0-9][a-z0-9.-]*`)
	reDigitRun      = regexp.MustCompile(`\b\d{10,18}\b`)
	rePrefixedPhone = regexp.MustCompile(`\+91[\s-]?[6-9]\d{9}`)
	reIFSC          = regexp.MustCompile(`\b[A-Z]{4}0[A-Z0-9]{6}\b`)
	rePAN           = regexp.MustCompile(`\b[A-Z]{5}\d{4}[A-Z]\b`)
	reAadhaarGroup  = regexp.MustCompile(`\b[2-9]\d{3}[\s-]\d{4}[\s-]\d{4}\b`)
	reURL           = regexp.MustCompile(`https?://[^\s<>"{}|\\^` + "`" + `\[\]]+`)
	reShortLink     = regexp.MustCompile(`\b(?:bit\.ly|tinyurl\.com|wa\.me)/[^\s]+`)
	reEmployeeID    = regexp.MustCompile(`(?:employee|emp|badge|officer)\s*(?:id|code|no\.?|number)?\s*(?:is|:|-|#)?\s*([a-z]{0,4}-?\d{3,10})`)
)

type span struct{ start, end int }

func overlapsAny(spans []span, start, end int) bool {
	for _, s := range spans {
		if start < s.end && end > s.start {
			return true
		}
	}
	return false
}

func hasContext(lower string, start, end int, words []string) bool {
	from := start - contextWindow
	if from < 0 {
		from = 0
	}
	to := end + contextWindow
	if to > len(lower) {
		to = len(lower)
	}
	window := lower[from:to]
	for _, w := range words {
		if strings.Contains(window, w) {
			return true
		}
	}
	return false
}

// containsWord reports whether kw occurs in lower. Single tokens must
// sit on word boundaries so "now" does not fire inside "snow"; phrases
// match as plain substrings.
func containsWord(lower, kw string) bool {
	if strings.ContainsAny(kw, " /") {
		return strings.Contains(lower, kw)
	}
	for from := 0; ; {
		idx := strings.Index(lower[from:], kw)
		if idx < 0 {
			return false
		}
		idx += from
		end := idx + len(kw)
		beforeOK := idx == 0 || !isWordChar(lower[idx-1])
		afterOK := end == len(lower) || !isWordChar(lower[end])
		if beforeOK && afterOK {
			return true
		}
		from = idx + 1
	}
}

func isWordChar(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '_'
}

// ExtractAll runs every category matcher over one message. It is a
// pure function: same text, same result, no session state.
func ExtractAll(text string) Intelligence {
	var out Intelligence
	lower := strings.ToLower(text)
	upper := strings.ToUpper(text)

	var consumed []span

	// Aadhaar first so a 12-digit run is not mistaken for an account.
	// Both grouped (4-4-4) and continuous forms need an Aadhaar keyword
	// nearby, otherwise the run is treated as a false positive.
	for _, loc := range reAadhaarGroup.FindAllStringIndex(lower, -1) {
		if !hasContext(lower, loc[0], loc[1], aadhaarContextWords) {
			continue
		}
		digits := digitsOnly(lower[loc[0]:loc[1]])
		out.AadhaarNumbers = appendUnique(out.AadhaarNumbers, digits)
		consumed = append(consumed, span{loc[0], loc[1]})
	}

	// Explicit +91 prefix always means phone.
	for _, loc := range rePrefixedPhone.FindAllStringIndex(lower, -1) {
		if p, ok := normalizePhone(lower[loc[0]:loc[1]]); ok {
			out.PhoneNumbers = appendUnique(out.PhoneNumbers, p)
		}
		consumed = append(consumed, span{loc[0], loc[1]})
	}

	for _, loc := range reDigitRun.FindAllStringIndex(lower, -1) {
		if overlapsAny(consumed, loc[0], loc[1]) {
			continue
		}
		run := lower[loc[0]:loc[1]]
		if len(run) == 12 && run[0] >= '2' && hasContext(lower, loc[0], loc[1], aadhaarContextWords) {
			out.AadhaarNumbers = appendUnique(out.AadhaarNumbers, run)
			continue
		}
		phoneShaped := len(run) == 10 && run[0] >= '6' && run[0] <= '9'
		accCtx := hasContext(lower, loc[0], loc[1], accountContextWords)
		phCtx := phoneShaped && hasContext(lower, loc[0], loc[1], phoneContextWords)
		switch {
		case accCtx && !phCtx:
			out.BankAccounts = appendUnique(out.BankAccounts, run)
		case phCtx && !accCtx:
			if p, ok := normalizePhone(run); ok {
				out.PhoneNumbers = appendUnique(out.PhoneNumbers, p)
			}
		case len(run) > 10:
			out.BankAccounts = appendUnique(out.BankAccounts, run)
		default:
			if p, ok := normalizePhone(run); ok {
				out.PhoneNumbers = appendUnique(out.PhoneNumbers, p)
			}
		}
	}

	for _, code := range reIFSC.FindAllString(upper, -1) {
		out.IFSCCodes = appendUnique(out.IFSCCodes, code)
		if bank, ok := ifscBankPrefixes[code[:4]]; ok {
			out.MentionedBanks = appendUnique(out.MentionedBanks, bank)
		}
	}

	// PAN is matched against the raw text: the format is defined in
	// uppercase and lowercasing everything would make any 5+4+1 token
	// a candidate.
	for _, pan := range rePAN.FindAllString(text, -1) {
		out.PANNumbers = appendUnique(out.PANNumbers, pan)
	}

	for _, cand := range reUPICandidate.FindAllString(lower, -1) {
		id, kind, ok := classifyHandle(cand)
		if !ok {
			continue
		}
		if kind == handleUPI {
			out.UPIIDs = appendUnique(out.UPIIDs, id)
		} else {
			out.Emails = appendUnique(out.Emails, id)
		}
	}

	for _, loc := range reURL.FindAllStringIndex(lower, -1) {
		out.PhishingLinks = appendUnique(out.PhishingLinks, trimLink(text[loc[0]:loc[1]]))
	}
	for _, loc := range reShortLink.FindAllStringIndex(lower, -1) {
		if overlapsAny(urlSpans(lower), loc[0], loc[1]) {
			continue
		}
		out.PhishingLinks = appendUnique(out.PhishingLinks, trimLink(text[loc[0]:loc[1]]))
	}

	for _, m := range reEmployeeID.FindAllStringSubmatch(lower, -1) {
		out.EmployeeIDs = appendUnique(out.EmployeeIDs, m[1])
	}

	for _, kw := range scamKeywords {
		if containsWord(lower, kw) {
			out.SuspiciousKeywords = appendUnique(out.SuspiciousKeywords, kw)
		}
	}

	for _, a := range bankAliases {
		if containsWord(lower, a.alias) {
			out.MentionedBanks = appendUnique(out.MentionedBanks, a.bank)
		}
	}

	return out
}

func urlSpans(lower string) []span {
	var spans []span
	for _, loc := range reURL.FindAllStringIndex(lower, -1) {
		spans = append(spans, span{loc[0], loc[1]})
	}
	return spans
}

type handleKind int

const (
	handleUPI handleKind = iota
	handleEmail
)

// classifyHandle decides whether name@token is a UPI id or an email.
// A token in the known payment-handle set wins as UPI; anything else,
// email-shaped or not, is reported as an email.
func classifyHandle(cand string) (string, handleKind, bool) {
	if strings.Count(cand, "@") != 1 {
		return "", 0, false
	}
	parts := strings.SplitN(cand, "@", 2)
	user, handle := parts[0], strings.Trim(parts[1], ".")
	if len(user) < 2 || handle == "" {
		return "", 0, false
	}
	if _, ok := upiHandles[handle]; ok {
		return user + "@" + handle, handleUPI, true
	}
	return user + "@" + handle, handleEmail, true
}

func trimLink(link string) string {
	return strings.TrimRight(link, ".,;)")
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
