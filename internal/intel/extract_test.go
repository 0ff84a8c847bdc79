package intel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractAccountVsPhone(t *testing.T) {
	tests := []struct {
		name         string
		text         string
		wantAccounts []string
		wantPhones   []string
	}{
		{
			name:         "account context wins",
			text:         "my account number is 9876543210",
			wantAccounts: []string{"9876543210"},
			wantPhones:   nil,
		},
		{
			name:         "phone context wins",
			text:         "call me at 9876543210",
			wantAccounts: nil,
			wantPhones:   []string{"+919876543210"},
		},
		{
			name:         "long run defaults to account",
			text:         "use 123456789012345 for the transfer",
			wantAccounts: []string{"123456789012345"},
			wantPhones:   nil,
		},
		{
			name:         "bare ten digits defaults to phone",
			text:         "9876543210",
			wantAccounts: nil,
			wantPhones:   []string{"+919876543210"},
		},
		{
			name:         "country code always phone",
			text:         "whatsapp +91 9876543210 anytime",
			wantAccounts: nil,
			wantPhones:   []string{"+919876543210"},
		},
		{
			name:         "short fragments ignored",
			text:         "last 4 digits are 3456",
			wantAccounts: nil,
			wantPhones:   nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractAll(tt.text)
			assert.Equal(t, tt.wantAccounts, got.BankAccounts)
			assert.Equal(t, tt.wantPhones, got.PhoneNumbers)
		})
	}
}

func TestExtractUPIVsEmail(t *testing.T) {
	got := ExtractAll("send to raj@ybl or mail raj@gmail.com")
	assert.Equal(t, []string{"raj@ybl"}, got.UPIIDs)
	assert.Equal(t, []string{"raj@gmail.com"}, got.Emails)

	got = ExtractAll("pay victim123@paytm today")
	assert.Equal(t, []string{"victim123@paytm"}, got.UPIIDs)
	assert.Empty(t, got.Emails)
}

func TestExtractIFSC(t *testing.T) {
	got := ExtractAll("IFSC is SBIN0001234, branch Delhi")
	require.Equal(t, []string{"SBIN0001234"}, got.IFSCCodes)
	assert.Contains(t, got.MentionedBanks, "sbi")

	// fifth character must be the literal zero
	got = ExtractAll("IFSC is SBIN1001234")
	assert.Empty(t, got.IFSCCodes)
}

func TestExtractAadhaarNeedsContext(t *testing.T) {
	got := ExtractAll("my aadhaar is 2345 6789 0123")
	assert.Equal(t, []string{"234567890123"}, got.AadhaarNumbers)

	got = ExtractAll("my aadhaar number is 234567890123")
	assert.Equal(t, []string{"234567890123"}, got.AadhaarNumbers)
	assert.Empty(t, got.BankAccounts)

	// without the keyword a 12-digit run is an account candidate
	got = ExtractAll("send it to 234567890123")
	assert.Empty(t, got.AadhaarNumbers)
	assert.Equal(t, []string{"234567890123"}, got.BankAccounts)
}

func TestExtractPAN(t *testing.T) {
	got := ExtractAll("PAN card ABCDE1234F is needed")
	assert.Equal(t, []string{"ABCDE1234F"}, got.PANNumbers)

	got = ExtractAll("pan card abcde1234f is needed")
	assert.Empty(t, got.PANNumbers)
}

func TestExtractLinks(t *testing.T) {
	got := ExtractAll("click https://secure-sbi.info/verify or bit.ly/3xYz now")
	assert.Contains(t, got.PhishingLinks, "https://secure-sbi.info/verify")
	assert.Contains(t, got.PhishingLinks, "bit.ly/3xYz")
	assert.Contains(t, got.SuspiciousKeywords, "click")
}

func TestExtractKeywordsWordBoundary(t *testing.T) {
	got := ExtractAll("the snow is falling")
	assert.NotContains(t, got.SuspiciousKeywords, "now")

	got = ExtractAll("do it now, your account is blocked")
	assert.Contains(t, got.SuspiciousKeywords, "now")
	assert.Contains(t, got.SuspiciousKeywords, "blocked")
}

func TestExtractEmployeeID(t *testing.T) {
	got := ExtractAll("I am officer Sharma, my employee ID is SBI-4521")
	assert.Contains(t, got.EmployeeIDs, "sbi-4521")
}

func TestExtractScamArchetypes(t *testing.T) {
	tests := []struct {
		name string
		text string
		want func(t *testing.T, in Intelligence)
	}{
		{
			name: "blocked account with otp demand",
			text: "Your SBI account is blocked, send OTP now",
			want: func(t *testing.T, in Intelligence) {
				assert.Contains(t, in.SuspiciousKeywords, "blocked")
				assert.Contains(t, in.SuspiciousKeywords, "otp")
				assert.Contains(t, in.MentionedBanks, "sbi")
			},
		},
		{
			name: "digital arrest",
			text: "This is CBI, a warrant is issued, you will be arrested",
			want: func(t *testing.T, in Intelligence) {
				assert.Contains(t, in.SuspiciousKeywords, "cbi")
				assert.Contains(t, in.SuspiciousKeywords, "warrant")
				assert.Contains(t, in.SuspiciousKeywords, "arrested")
			},
		},
		{
			name: "upi collect",
			text: "Accept the payment request on PhonePe, pay to fraudster@ybl",
			want: func(t *testing.T, in Intelligence) {
				assert.Equal(t, []string{"fraudster@ybl"}, in.UPIIDs)
				assert.Contains(t, in.SuspiciousKeywords, "payment request")
				assert.True(t, in.HasActionable())
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.want(t, ExtractAll(tt.text))
		})
	}
}

func TestExtractAllDeterministic(t *testing.T) {
	const text = "Officer from SBI, a/c 12345678901, IFSC SBIN0001234, call +91 9876543210, pay raj@ybl, click bit.ly/x now"
	first := ExtractAll(text)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, ExtractAll(text))
	}
}

func TestHasActionable(t *testing.T) {
	assert.False(t, Intelligence{SuspiciousKeywords: []string{"otp", "blocked"}}.HasActionable())
	assert.False(t, Intelligence{MentionedBanks: []string{"sbi"}}.HasActionable())
	assert.True(t, Intelligence{UPIIDs: []string{"raj@ybl"}}.HasActionable())
	assert.True(t, Intelligence{PhoneNumbers: []string{"+919876543210"}}.HasActionable())
}
