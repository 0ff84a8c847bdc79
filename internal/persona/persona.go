// Package persona builds the decoy identity a honeypot session
// presents to the scammer: an elderly Indian woman with a fully
// consistent fabricated financial identity. Generation is seeded from
// the session id so every turn of a session sees the same person.
package persona

import (
	"fmt"
	"hash/fnv"
	"math/rand"
	"strconv"
	"strings"
)

// Bank is the persona's fabricated bank relationship.
type Bank struct {
	Name          string `json:"name"`
	Short         string `json:"short"`
	AccountNumber string `json:"accountNumber"`
	IFSC          string `json:"ifsc"`
	Branch        string `json:"branch"`
}

// Card is the persona's fabricated debit card. The number passes the
// Luhn check so it survives a casual validity probe.
type Card struct {
	Type     string `json:"type"`
	Number   string `json:"number"`
	LastFour string `json:"lastFour"`
	Expiry   string `json:"expiry"`
}

// Persona is the complete decoy identity for one session.
type Persona struct {
	Name       string `json:"name"`
	FirstName  string `json:"firstName"`
	Age        int    `json:"age"`
	City       string `json:"city"`
	State      string `json:"state"`
	Address    string `json:"address"`
	Profession string `json:"profession"`
	Pension    int    `json:"pension"`

	Husband  string `json:"husband"`
	Son      string `json:"son"`
	Daughter string `json:"daughter"`

	Bank  Bank   `json:"bank"`
	UPI   string `json:"upi"`
	Card  Card   `json:"card"`
	Phone string `json:"phone"`

	SpeechPattern string `json:"speechPattern"`
	TechLevel     string `json:"techLevel"`
}

// Generate builds the persona for a session. The same session id
// always yields the same persona.
func Generate(sessionID string) *Persona {
	h := fnv.New64a()
	h.Write([]byte(sessionID))
	rng := rand.New(rand.NewSource(int64(h.Sum64())))

	firstName := femaleFirstNames[rng.Intn(len(femaleFirstNames))]
	surname := surnames[rng.Intn(len(surnames))]
	c := cities[rng.Intn(len(cities))]
	fam := familyPatterns[rng.Intn(len(familyPatterns))]
	bank := banks[rng.Intn(len(banks))]

	p := &Persona{
		Name:       firstName + " " + surname,
		FirstName:  firstName,
		Age:        58 + rng.Intn(21),
		City:       c.Name,
		State:      c.State,
		Address:    fmt.Sprintf("%d, %s, %s", 10+rng.Intn(491), colonies[rng.Intn(len(colonies))], c.Name),
		Profession: professions[rng.Intn(len(professions))],
		Pension:    pensionAmounts[rng.Intn(len(pensionAmounts))],

		Husband:  husbandStatus(rng, surname),
		Son:      fam.Son,
		Daughter: fam.Daughter,

		SpeechPattern: speechPatterns[rng.Intn(len(speechPatterns))],
		TechLevel:     techLevels[rng.Intn(len(techLevels))],
	}

	p.Bank = Bank{
		Name:          bank.Name,
		Short:         bank.Short,
		AccountNumber: accountNumber(rng, bank),
		IFSC:          ifscCode(rng, bank),
		Branch:        cities[rng.Intn(len(cities))].Name + " Main Branch",
	}
	p.UPI = upiID(rng, firstName, bank)
	p.Card = debitCard(rng)
	p.Phone = phoneNumber(rng)

	return p
}

func husbandStatus(rng *rand.Rand, surname string) string {
	male := maleFirstNames[rng.Intn(len(maleFirstNames))]
	switch rng.Intn(3) {
	case 0:
		return fmt.Sprintf("Late Shri %s %s (passed in %d)", male, surname, 2015+rng.Intn(9))
	case 1:
		return fmt.Sprintf("Shri %s %s (retired, has health issues)", male, surname)
	default:
		return fmt.Sprintf("Shri %s %s (retired Railway employee)", male, surname)
	}
}

func accountNumber(rng *rand.Rand, bank bankFormat) string {
	prefix := bank.AccountPrefixes[rng.Intn(len(bank.AccountPrefixes))]
	var b strings.Builder
	b.WriteString(prefix)
	for b.Len() < bank.AccountLength {
		b.WriteString(strconv.Itoa(rng.Intn(10)))
	}
	return b.String()
}

func ifscCode(rng *rand.Rand, bank bankFormat) string {
	var b strings.Builder
	b.WriteString(bank.IFSCPrefix)
	for i := 0; i < 6; i++ {
		b.WriteString(strconv.Itoa(rng.Intn(10)))
	}
	return b.String()
}

func upiID(rng *rand.Rand, firstName string, bank bankFormat) string {
	name := strings.ToLower(strings.ReplaceAll(firstName, " ", ""))
	suffix := 10 + rng.Intn(90)
	handle := bank.UPIHandle
	if rng.Float64() > 0.3 {
		handle = commonUPIHandles[rng.Intn(len(commonUPIHandles))]
	}
	return fmt.Sprintf("%s%d%s", name, suffix, handle)
}

func debitCard(rng *rand.Rand) Card {
	// RuPay dominates the target demographic.
	var scheme cardFormat
	switch r := rng.Float64(); {
	case r < 0.7:
		scheme = cardTypes[0]
	case r < 0.9:
		scheme = cardTypes[1]
	default:
		scheme = cardTypes[2]
	}
	prefix := scheme.Prefixes[rng.Intn(len(scheme.Prefixes))]
	number := cardNumber(rng, prefix, 16)
	return Card{
		Type:     scheme.Type,
		Number:   number,
		LastFour: number[len(number)-4:],
		Expiry:   fmt.Sprintf("%02d/%d", 1+rng.Intn(12), 27+rng.Intn(4)),
	}
}

func phoneNumber(rng *rand.Rand) string {
	digits := []byte{'6' + byte(rng.Intn(4))}
	for i := 0; i < 9; i++ {
		digits = append(digits, '0'+byte(rng.Intn(10)))
	}
	return "+91 " + string(digits[:5]) + " " + string(digits[5:])
}
