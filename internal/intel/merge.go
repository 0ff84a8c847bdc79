package intel

import "strings"

// Merge unions two intelligence sets per category. Values are
// re-normalized on the way in so the union is order-insensitive:
// merging A into B surfaces the same set as merging B into A.
func Merge(existing, incoming Intelligence) Intelligence {
	out := existing.Clone()

	for _, v := range incoming.UPIIDs {
		if id, ok := normalizeHandle(v); ok {
			out.UPIIDs = appendUnique(out.UPIIDs, id)
		}
	}
	for _, v := range incoming.BankAccounts {
		if acc, ok := normalizeAccount(v); ok {
			out.BankAccounts = appendUnique(out.BankAccounts, acc)
		}
	}
	for _, v := range incoming.IFSCCodes {
		out.IFSCCodes = appendUnique(out.IFSCCodes, strings.ToUpper(strings.TrimSpace(v)))
	}
	for _, v := range incoming.PhoneNumbers {
		if p, ok := normalizePhone(v); ok {
			out.PhoneNumbers = appendUnique(out.PhoneNumbers, p)
		}
	}
	for _, v := range incoming.Emails {
		if id, ok := normalizeHandle(v); ok {
			out.Emails = appendUnique(out.Emails, id)
		}
	}
	for _, v := range incoming.PhishingLinks {
		out.PhishingLinks = appendUnique(out.PhishingLinks, strings.TrimSpace(v))
	}
	for _, v := range incoming.AadhaarNumbers {
		out.AadhaarNumbers = appendUnique(out.AadhaarNumbers, digitsOnly(v))
	}
	for _, v := range incoming.PANNumbers {
		out.PANNumbers = appendUnique(out.PANNumbers, strings.ToUpper(strings.TrimSpace(v)))
	}
	for _, v := range incoming.EmployeeIDs {
		out.EmployeeIDs = appendUnique(out.EmployeeIDs, strings.ToLower(strings.TrimSpace(v)))
	}
	for _, v := range incoming.MentionedBanks {
		out.MentionedBanks = appendUnique(out.MentionedBanks, strings.ToLower(strings.TrimSpace(v)))
	}
	// Keywords are filtered against the vocabulary so arbitrary
	// substrings from upstream callers never leak into reports.
	for _, v := range incoming.SuspiciousKeywords {
		if knownKeyword(v) {
			out.SuspiciousKeywords = appendUnique(out.SuspiciousKeywords, strings.ToLower(strings.TrimSpace(v)))
		}
	}

	return out
}
