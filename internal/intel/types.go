package intel

// Intelligence holds every artifact pulled out of scammer messages,
// grouped by category. Lists are deduplicated and keep insertion order.
type Intelligence struct {
	UPIIDs             []string `json:"upiIds"`
	BankAccounts       []string `json:"bankAccounts"`
	IFSCCodes          []string `json:"ifscCodes"`
	PhoneNumbers       []string `json:"phoneNumbers"`
	Emails             []string `json:"emails"`
	PhishingLinks      []string `json:"phishingLinks"`
	AadhaarNumbers     []string `json:"aadhaarNumbers"`
	PANNumbers         []string `json:"panNumbers"`
	EmployeeIDs        []string `json:"fakeCredentials"`
	MentionedBanks     []string `json:"mentionedBanks"`
	SuspiciousKeywords []string `json:"suspiciousKeywords"`
}

// HasActionable reports whether the intelligence contains anything
// worth reporting: payment identifiers, contact channels, links or
// identity documents. Keywords and bank mentions alone do not count.
func (in Intelligence) HasActionable() bool {
	return len(in.UPIIDs) > 0 ||
		len(in.BankAccounts) > 0 ||
		len(in.IFSCCodes) > 0 ||
		len(in.PhishingLinks) > 0 ||
		len(in.PhoneNumbers) > 0 ||
		len(in.AadhaarNumbers) > 0 ||
		len(in.PANNumbers) > 0
}

// IsEmpty reports whether no category holds any entry.
func (in Intelligence) IsEmpty() bool {
	return !in.HasActionable() &&
		len(in.Emails) == 0 &&
		len(in.EmployeeIDs) == 0 &&
		len(in.MentionedBanks) == 0 &&
		len(in.SuspiciousKeywords) == 0
}

// Categories returns the names of every non-empty category, used to
// decide whether a turn surfaced anything new.
func (in Intelligence) Categories() []string {
	var cats []string
	add := func(name string, list []string) {
		if len(list) > 0 {
			cats = append(cats, name)
		}
	}
	add("upiIds", in.UPIIDs)
	add("bankAccounts", in.BankAccounts)
	add("ifscCodes", in.IFSCCodes)
	add("phoneNumbers", in.PhoneNumbers)
	add("emails", in.Emails)
	add("phishingLinks", in.PhishingLinks)
	add("aadhaarNumbers", in.AadhaarNumbers)
	add("panNumbers", in.PANNumbers)
	add("fakeCredentials", in.EmployeeIDs)
	add("mentionedBanks", in.MentionedBanks)
	add("suspiciousKeywords", in.SuspiciousKeywords)
	return cats
}

// Clone returns a deep copy so callers can mutate session state
// without aliasing the stored slices.
func (in Intelligence) Clone() Intelligence {
	out := in
	out.UPIIDs = append([]string(nil), in.UPIIDs...)
	out.BankAccounts = append([]string(nil), in.BankAccounts...)
	out.IFSCCodes = append([]string(nil), in.IFSCCodes...)
	out.PhoneNumbers = append([]string(nil), in.PhoneNumbers...)
	out.Emails = append([]string(nil), in.Emails...)
	out.PhishingLinks = append([]string(nil), in.PhishingLinks...)
	out.AadhaarNumbers = append([]string(nil), in.AadhaarNumbers...)
	out.PANNumbers = append([]string(nil), in.PANNumbers...)
	out.EmployeeIDs = append([]string(nil), in.EmployeeIDs...)
	out.MentionedBanks = append([]string(nil), in.MentionedBanks...)
	out.SuspiciousKeywords = append([]string(nil), in.SuspiciousKeywords...)
	return out
}
