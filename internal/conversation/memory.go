package conversation

import (
	"regexp"
	"strings"

	"github.com/Swelo-ui/guvi-project-1/internal/intel"
)

// Free-text self-claim patterns, run against the lowercased message.
var (
	reClaimName = regexp.MustCompile(
		`(?:my name is|i am|this is)\s+(?:officer|inspector|constable|mr\.?|mrs\.?|shri)?\s*([a-z]+(?:\s[a-z]+)?)`)
	reClaimDesignation = regexp.MustCompile(
		`(?:i am|this is)(?:\s+\w+){0,2}?\s+(officer|inspector|constable|manager|executive|agent)`)
	reClaimBranch = regexp.MustCompile(
		`(?:from|at)\s+([a-z]+(?:\s[a-z]+)?)\s+branch`)
)

// correctionSignals mark an explicit correction: the only case where
// an already-set claim field may be overwritten.
var correctionSignals = []string{
	"actually", "sorry, it is", "sorry it is", "i mean", "correct number is",
	"correct one is", "not that, ", "my mistake",
}

// appNames are remote-access and messaging apps worth remembering when
// the scammer pushes them.
var appNames = []string{"anydesk", "teamviewer", "quick support", "whatsapp", "telegram"}

// threatTypes maps fear vocabulary to a coarse threat label.
var threatTypes = []struct {
	marker string
	label  string
}{
	{"police", "police"},
	{"cbi", "police"},
	{"arrest", "police"},
	{"warrant", "police"},
	{"customs", "customs"},
	{"parcel", "customs"},
	{"blocked", "account_block"},
	{"suspended", "account_block"},
	{"kyc", "account_block"},
	{"income tax", "tax"},
}

// UpdateMemory folds one message's extractor output and free-text
// self-claims into the session memory. Claim fields follow
// first-claim-wins; a correction signal in the same message unlocks an
// overwrite. Counters never decrease.
func UpdateMemory(mem *ScammerMemory, message string, extracted intel.Intelligence, intents []Intent) {
	lower := strings.ToLower(message)
	corrected := hasCorrectionSignal(lower)

	if m := reClaimName.FindStringSubmatch(lower); m != nil {
		setClaim(&mem.ClaimedName, strings.TrimSpace(m[1]), corrected)
	}
	if m := reClaimDesignation.FindStringSubmatch(lower); m != nil {
		setClaim(&mem.ClaimedDesignation, m[1], corrected)
	}
	if m := reClaimBranch.FindStringSubmatch(lower); m != nil {
		setClaim(&mem.ClaimedBranch, strings.TrimSpace(m[1]), corrected)
	}

	setClaim(&mem.ClaimedBank, first(extracted.MentionedBanks), corrected)
	setClaim(&mem.ClaimedUPI, first(extracted.UPIIDs), corrected)
	setClaim(&mem.ClaimedPhone, first(extracted.PhoneNumbers), corrected)
	setClaim(&mem.ClaimedAccount, first(extracted.BankAccounts), corrected)
	setClaim(&mem.ClaimedEmail, first(extracted.Emails), corrected)
	setClaim(&mem.ClaimedIFSC, first(extracted.IFSCCodes), corrected)
	setClaim(&mem.ClaimedEmployeeID, first(extracted.EmployeeIDs), corrected)

	if mem.ThreatType == "" {
		for _, t := range threatTypes {
			if strings.Contains(lower, t.marker) {
				mem.ThreatType = t.label
				break
			}
		}
	}

	for _, in := range intents {
		mem.IntentCounts[in]++
	}
	if hasIntent(intents, IntentUrgency) || hasIntent(intents, IntentFearTactic) {
		mem.UrgencyLevel++
	}

	for _, link := range extracted.PhishingLinks {
		mem.SharedLinks = appendUniqueString(mem.SharedLinks, link)
	}
	for _, app := range appNames {
		if strings.Contains(lower, app) {
			mem.MentionedApps = appendUniqueString(mem.MentionedApps, app)
		}
	}
}

// setClaim applies first-claim-wins with the correction override.
func setClaim(field *string, value string, corrected bool) {
	if value == "" {
		return
	}
	if *field == "" || corrected {
		*field = value
	}
}

func hasCorrectionSignal(lower string) bool {
	for _, sig := range correctionSignals {
		if strings.Contains(lower, sig) {
			return true
		}
	}
	return false
}

func first(list []string) string {
	if len(list) == 0 {
		return ""
	}
	return list[0]
}

func appendUniqueString(list []string, v string) []string {
	for _, existing := range list {
		if existing == v {
			return list
		}
	}
	return append(list, v)
}

// knownTarget reports whether memory already holds the given
// extraction target, keeping the selector from asking again.
func (m ScammerMemory) knownTarget(target string) bool {
	switch target {
	case "name":
		return m.ClaimedName != ""
	case "employee_id":
		return m.ClaimedEmployeeID != ""
	case "bank":
		return m.ClaimedBank != ""
	case "upi":
		return m.ClaimedUPI != ""
	case "ifsc":
		return m.ClaimedIFSC != ""
	case "phone":
		return m.ClaimedPhone != ""
	case "email":
		return m.ClaimedEmail != ""
	case "branch":
		return m.ClaimedBranch != ""
	case "account":
		return m.ClaimedAccount != ""
	default:
		return false
	}
}
