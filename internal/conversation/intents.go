package conversation

import "regexp"

// intentPatterns drive classification. Each intent fires on its first
// matching pattern; intents are checked in fixed order so output is
// deterministic.
var intentPatterns = []struct {
	intent   Intent
	patterns []*regexp.Regexp
}{
	{IntentAskOTP, compileAll(
		`\botp\b`, `\bone.?time.?password\b`, `\bverification.?code\b`,
		`\bcode.?sent\b`, `\bsms.?code\b`, `\b\d{4,6}\b.*share`, `share.*\b\d{4,6}\b`,
	)},
	{IntentAskAccount, compileAll(
		`\baccount\s*(number|no\.?|#)?\b`, `\bbank\s*account\b`,
		`\baccount\s*details\b`, `\bsavings\s*account\b`,
	)},
	{IntentAskUPI, compileAll(
		`\bupi\b`, `\b\w+@\w+\b`, `\bpay\s*tm\b`, `\bgoogle\s*pay\b`,
		`\bphone\s*pe\b`, `\bbhim\b`,
	)},
	{IntentAskMoney, compileAll(
		`\btransfer\b`, `\bsend\s*(money|amount|rs|₹)\b`, `\bpay\s*(rs|₹|amount)\b`,
		`\bdeposit\b`, `\bprocessing\s*fee\b`,
	)},
	{IntentClickLink, compileAll(
		`\bclick\b`, `\blink\b`, `\burl\b`, `https?://`, `\bbit\.ly\b`,
		`\btinyurl\b`, `\bopen\b.*\bwebsite\b`,
	)},
	{IntentInstallApp, compileAll(
		`\binstall\b`, `\bdownload\b`, `\bapp\b`, `\banydesk\b`,
		`\bteamviewer\b`, `\bquickshare\b`, `\bapk\b`,
	)},
	{IntentAskPersonalInfo, compileAll(
		`\baadhaar\b`, `\baadhar\b`, `\bpan\b`, `\baddress\b`, `\bdate\s*of\s*birth\b`,
		`\bdob\b`, `\bfather.?s?\s*name\b`, `\bmother.?s?\s*name\b`,
	)},
	{IntentAskCard, compileAll(
		`\bcard\s*(number|no\.?)\b`, `\bcvv\b`, `\bexpiry\b`,
		`\bdebit\s*card\b`, `\bcredit\s*card\b`, `\batm\s*pin\b`,
	)},
	{IntentFearTactic, compileAll(
		`\barrested?\b`, `\bblocked?\b`, `\bsuspended?\b`, `\bpolice\b`,
		`\bcbi\b`, `\bcourt\b`, `\bjail\b`, `\bwarrant\b`, `\billegal\b`,
		`\bfraud\b`, `\bfir\b`,
	)},
	{IntentUrgency, compileAll(
		`\burgent\b`, `\bimmediately\b`, `\bnow\b`, `\btoday\b`,
		`\b\d+\s*(hour|minute|min)s?\b`, `\bexpire\b`, `\blast\s*chance\b`,
	)},
	{IntentGreeting, compileAll(
		`^(hello|hi|namaste|dear|sir|madam|customer)\b`,
	)},
}

func compileAll(patterns ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		out = append(out, regexp.MustCompile(`(?i)`+p))
	}
	return out
}

// extractionIntents are the intents where the scammer is actively
// pulling for credentials or money.
var extractionIntents = map[Intent]bool{
	IntentAskOTP:     true,
	IntentAskAccount: true,
	IntentAskUPI:     true,
	IntentAskCard:    true,
	IntentAskMoney:   true,
}

// ClassifyIntents returns every intent present in the message, in
// pattern-table order. A message with no matches yields [unknown].
func ClassifyIntents(message string) []Intent {
	var detected []Intent
	for _, entry := range intentPatterns {
		for _, re := range entry.patterns {
			if re.MatchString(message) {
				detected = append(detected, entry.intent)
				break
			}
		}
	}
	if len(detected) == 0 {
		detected = append(detected, IntentUnknown)
	}
	return detected
}

func hasIntent(intents []Intent, want Intent) bool {
	for _, in := range intents {
		if in == want {
			return true
		}
	}
	return false
}

func hasExtractionIntent(intents []Intent) bool {
	for _, in := range intents {
		if extractionIntents[in] {
			return true
		}
	}
	return false
}

// primaryIntent is the highest-priority detected intent, used to key
// the template pools.
func primaryIntent(intents []Intent) Intent {
	if len(intents) == 0 {
		return IntentUnknown
	}
	return intents[0]
}
