package persona

// Static reference data for persona generation. Everything here is
// fabricated decoy material: names, cities and bank formats follow
// real Indian conventions so the persona survives casual scrutiny,
// but no value maps to a real person or account.

var femaleFirstNames = []string{
	"Kamala", "Savitri", "Shanti", "Lakshmi", "Saraswati", "Parvati",
	"Sushila", "Radha", "Meena", "Geeta", "Sita", "Usha", "Pushpa",
	"Kalpana", "Sunita",
}

var maleFirstNames = []string{
	"Ramesh", "Suresh", "Mahesh", "Rajesh", "Dinesh", "Prakash",
	"Ashok", "Vinod", "Anil", "Sunil", "Mohan", "Gopal",
}

var surnames = []string{
	"Sharma", "Verma", "Gupta", "Iyer", "Nair", "Reddy", "Patel",
	"Mehta", "Joshi", "Desai", "Kulkarni", "Chatterjee", "Mukherjee",
	"Rao", "Pillai",
}

type city struct {
	Name  string
	State string
}

var cities = []city{
	{"Lucknow", "Uttar Pradesh"},
	{"Jaipur", "Rajasthan"},
	{"Pune", "Maharashtra"},
	{"Nagpur", "Maharashtra"},
	{"Indore", "Madhya Pradesh"},
	{"Coimbatore", "Tamil Nadu"},
	{"Mysore", "Karnataka"},
	{"Kochi", "Kerala"},
	{"Bhopal", "Madhya Pradesh"},
	{"Patna", "Bihar"},
	{"Varanasi", "Uttar Pradesh"},
	{"Vadodara", "Gujarat"},
}

var colonies = []string{
	"Gandhi Nagar", "Nehru Colony", "Shastri Nagar", "Ram Nagar", "Civil Lines",
}

var professions = []string{
	"retired school teacher", "retired government clerk", "homemaker",
	"retired bank cashier", "retired postmistress", "retired nurse",
}

var speechPatterns = []string{
	"mixes Hindi words into English sentences",
	"repeats words when anxious",
	"calls everyone beta or ji",
	"asks questions back instead of answering",
}

var techLevels = []string{
	"barely uses smartphone, grandson set it up",
	"knows WhatsApp only, nothing else",
	"can make calls, everything else is confusing",
}

type family struct {
	Son      string
	Daughter string
}

var familyPatterns = []family{
	{"Rajesh (works in Bangalore, IT company)", "Priya (married, lives in Delhi)"},
	{"Amit (software engineer in Pune)", "Kavita (doctor in Mumbai)"},
	{"Sanjay (bank employee in Chennai)", "Anita (teacher, lives nearby)"},
	{"Vikram (works abroad in Dubai)", "Sneha (housewife in Jaipur)"},
}

type bankFormat struct {
	Name            string
	Short           string
	IFSCPrefix      string
	UPIHandle       string
	AccountLength   int
	AccountPrefixes []string
}

var banks = []bankFormat{
	{"State Bank of India", "SBI", "SBIN0", "@oksbi", 11, []string{"2", "3"}},
	{"HDFC Bank", "HDFC", "HDFC0", "@okhdfcbank", 14, []string{"50100", "501"}},
	{"ICICI Bank", "ICICI", "ICIC0", "@okicici", 12, []string{"0001", "6"}},
	{"Punjab National Bank", "PNB", "PUNB0", "@pnb", 16, []string{"0158", "44"}},
	{"Bank of Baroda", "BoB", "BARB0", "@barodampay", 14, []string{"2936", "0"}},
	{"Axis Bank", "Axis", "UTIB0", "@axl", 15, []string{"917", "911"}},
}

type cardFormat struct {
	Type     string
	Prefixes []string
}

var cardTypes = []cardFormat{
	{"RuPay", []string{"6521", "6522", "8172"}},
	{"Visa", []string{"4"}},
	{"Mastercard", []string{"51", "52", "53"}},
}

var commonUPIHandles = []string{"@ybl", "@okicici", "@oksbi", "@paytm", "@axl"}

var pensionAmounts = []int{12000, 15000, 18000, 21000, 25000}
