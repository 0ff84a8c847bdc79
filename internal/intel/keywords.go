package intel

// upiHandles is the set of payment-app handles that mark a name@token
// as a UPI id rather than an email address.
var upiHandles = map[string]struct{}{
	"ybl":        {},
	"oksbi":      {},
	"okicici":    {},
	"okhdfcbank": {},
	"okaxis":     {},
	"paytm":      {},
	"axl":        {},
	"ibl":        {},
	"upi":        {},
	"sbi":        {},
	"icici":      {},
	"hdfcbank":   {},
	"axis":       {},
	"pnb":        {},
	"kotak":      {},
	"yesbank":    {},
	"barodampay": {},
	"idfcbank":   {},
}

// scamKeywords is the master vocabulary for suspicious-keyword
// extraction. Merge filters against this list so arbitrary substrings
// never leak into reports.
var scamKeywords = []string{
	// urgency
	"urgent", "immediately", "now", "today only", "expires", "last chance", "limited time",
	// fear
	"blocked", "suspended", "arrested", "police", "cbi", "fraud", "illegal", "warrant",
	"cyber crime", "seized", "compromised", "fir", "court", "jail",
	// action
	"verify", "confirm", "update", "kyc", "otp", "pin", "password", "verification code",
	"screen share", "biometric", "video kyc", "kyc update",
	// money
	"transfer", "pay", "send money", "refund", "chargeback", "cashback", "prize",
	"lottery", "won", "fine", "penalty", "processing fee", "emi", "loan",
	// authority
	"bank manager", "customer care", "support", "helpline", "toll free", "rbi",
	"government", "income tax", "gst", "army", "officer", "sim swap",
	// technical
	"link", "click", "download", "install", "app", "apk", "remote access",
	"anydesk", "teamviewer", "quick support",
	// channels
	"whatsapp", "telegram", "sms", "email",
	// identity
	"aadhaar", "pan", "cvv", "debit card", "credit card",
	// payment tactics
	"qr", "scan", "upi collect", "payment request", "request money",
	// delivery
	"courier", "parcel", "customs", "delivery charge", "fedex", "dhl",
	// investment
	"crypto", "bitcoin", "investment", "trading", "profit",
}

// bankAliases maps spellings seen in messages to the canonical bank
// name reported under mentionedBanks. Ordered so extraction output is
// stable across runs.
var bankAliases = []struct {
	alias string
	bank  string
}{
	{"sbi", "sbi"},
	{"state bank", "sbi"},
	{"hdfc", "hdfc"},
	{"icici", "icici"},
	{"axis", "axis"},
	{"pnb", "pnb"},
	{"punjab national", "pnb"},
	{"kotak", "kotak"},
	{"yes bank", "yes bank"},
	{"canara", "canara"},
	{"bank of baroda", "bank of baroda"},
	{"union bank", "union bank"},
	{"idfc", "idfc"},
	{"indusind", "indusind"},
	{"paytm bank", "paytm bank"},
}

// ifscBankPrefixes maps the four-letter IFSC prefix back to the bank,
// so an IFSC code also counts as a bank mention.
var ifscBankPrefixes = map[string]string{
	"SBIN": "sbi",
	"HDFC": "hdfc",
	"ICIC": "icici",
	"UTIB": "axis",
	"PUNB": "pnb",
	"KKBK": "kotak",
	"YESB": "yes bank",
	"CNRB": "canara",
	"BARB": "bank of baroda",
	"UBIN": "union bank",
	"IDFB": "idfc",
	"INDB": "indusind",
}

// Context windows for digit-run disambiguation.
var (
	accountContextWords = []string{"account", "a/c", "acct", "acc no", "account no"}
	phoneContextWords   = []string{"call", "phone", "mobile", "whatsapp", "contact", "number to reach", "ring"}
	aadhaarContextWords = []string{"aadhaar", "aadhar", "uidai"}
)
