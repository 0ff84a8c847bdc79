package conversation

import "fmt"

// Template is one canned reply candidate. IDs are stable across
// restarts so used-template tracking survives snapshot restores.
type Template struct {
	ID   string
	Text string
}

// responsePools is the immutable (type, intent) lookup table, built
// once at package init. A missing intent falls back to the type's
// unknown pool.
var responsePools = buildPools()

// rawPools is authored in the elderly-victim voice. Keep replies short
// and concrete; the sanitizer caps anything the generator produces,
// but these go out verbatim.
var rawPools = map[ResponseType]map[Intent][]string{
	ResponsePureStall: {
		IntentAskOTP: {
			"OTP? Let me check my phone... one minute beta.",
			"Wait wait, phone was on silent. Let me check now.",
			"It came! Wait... it says 6 numbers, which one to give?",
			"Acha, OTP... my eyes are weak. Let me get glasses first.",
		},
		IntentAskAccount: {
			"Let me find my passbook. Where did I keep it...",
			"Acha acha, let me see... my son handles all this. He is coming in 10 minutes.",
			"Savings or current? I have both. One minute, let me think.",
		},
		IntentAskMoney: {
			"Wait, let me call my son. He handles all money matters.",
			"Rs.5000? I don't have so much. Only Rs.500 in account.",
		},
		IntentAskCard: {
			"Card number is very long. Let me get the card from locker.",
			"ATM card? I don't use ATM. Only passbook. Wait, let me search.",
		},
		IntentUrgency: {
			"Please give me more time. I have to find my documents.",
			"I am doing as fast as I can! Phone is slow.",
			"Wait, doorbell is ringing. Someone is at door. 5 minutes please.",
		},
		IntentUnknown: {
			"Acha acha, but what should I do exactly?",
			"Haan ji, I am listening. But speak loudly please.",
			"One minute beta, let me sit down first. Knees are paining.",
		},
	},
	ResponseFamilyTangent: {
		IntentAskOTP: {
			"Beta, it's showing some number. But my son said never share OTP?",
			"My grandson told me OTP is like house key, never give. But you are from bank na?",
		},
		IntentAskAccount: {
			"Account number is there in passbook. But my daughter keeps all papers at her house.",
			"My son opened this account for me. He is in Bangalore, should I call him first?",
		},
		IntentInstallApp: {
			"Wait, I need to ask my daughter. She told me not to install anything.",
			"What is the app name? My grandson will do it tomorrow when he comes.",
		},
		IntentAskMoney: {
			"Money matters my son handles. He is in office now, call after 6?",
		},
		IntentUnknown: {
			"You know my daughter Priya says I talk too much on phone. What were you saying?",
			"My son handles all technical things. I am confused, beta.",
		},
	},
	ResponseTechnicalIssue: {
		IntentClickLink: {
			"Link is not opening. Internet is slow in my area.",
			"It's showing 'Page not found'. Is the link correct?",
			"Beta, I clicked but phone is hanging now. What to do?",
			"Website is not loading. Network problem. Try calling me instead?",
		},
		IntentInstallApp: {
			"It's saying 'Unknown source'. Phone is not allowing.",
			"Install? My phone storage is full. I don't know how to delete apps.",
			"Phone is very slow after installing. Something is wrong.",
		},
		IntentAskUPI: {
			"PhonePe is not working. It shows error. What to do now?",
			"App is asking for PIN. I forgot it. What should I do?",
		},
		IntentAskMoney: {
			"Transaction is failing. It says 'Insufficient balance'. What to do?",
			"I tried but it's showing error. Bank server problem maybe?",
		},
		IntentAskOTP: {
			"Message is not coming. Network has one bar only in my room.",
			"Phone says inbox full. How to delete messages, beta?",
		},
		IntentUnknown: {
			"What did you say? Network is breaking up.",
			"Hello? Hello? Voice is cutting. Say again?",
		},
	},
	ResponseEmotional: {
		IntentFearTactic: {
			"Oh god! I am very scared! Please don't arrest me, I am old person!",
			"Police?! What have I done wrong? Please help me sir!",
			"I am having chest pain. Please don't threaten me. I am senior citizen.",
			"Blocked? But I need money for medicines! Please help!",
			"Oh no! My heart is pounding. Let me drink water first...",
		},
		IntentUrgency: {
			"Don't hurry me beta, I am old. Hands are shaking.",
			"I am trying I am trying! But app is not working!",
			"Within 30 minutes? But I need to go to bank. It's far from my house.",
		},
		IntentUnknown: {
			"I am getting tension. Let me take my BP medicine first.",
			"Beta, my heart is weak. Please speak softly.",
		},
	},
	ResponseTopicConfusion: {
		IntentAskUPI: {
			"UPI? What is UPI? I use bank only.",
			"My grandson made some GPay. But I don't remember the password.",
			"UPI ID... it was something like my phone number? Let me check.",
		},
		IntentAskCard: {
			"CVV? What is CVV? Where is it written?",
			"Expiry date... the card looks old. Is it still working?",
		},
		IntentAskOTP: {
			"OTP means what? The message with numbers? I get so many messages.",
		},
		IntentAskPersonalInfo: {
			"Date of birth? I was born in village. Don't know exact date.",
			"Aadhaar? Let me search. Where did I keep the card...",
		},
		IntentUnknown: {
			"Beta I am not following you at all. What is all this about?",
			"Can you explain in simple words? I am not educated much.",
			"Kya bola? Samajh nahi aaya. Again please?",
		},
	},
	ResponseReverseExtraction: {
		IntentAskOTP: {
			"OTP... yes I got something. But first tell me your employee ID for verification?",
			"OTP I will share, but first give me YOUR UPI ID for my diary.",
		},
		IntentAskAccount: {
			"Wait, I am confused. You give me YOUR account number first, then I verify.",
			"Account number... okay wait. But sir, what is YOUR official bank account? I should cross-check.",
		},
		IntentAskUPI: {
			"Beta, I don't know UPI. Can you give YOUR UPI? I'll ask my son to send.",
			"Wait, first give me your UPI so I can verify you are from bank only.",
		},
		IntentAskMoney: {
			"Money I can send, but first I need your manager's number for verification.",
			"Transfer? Okay, but tell me YOUR account number. I'll send through bank directly.",
		},
		IntentFearTactic: {
			"I will do anything, please don't arrest! But first send me official document on WhatsApp.",
			"Please please, I am innocent! Send me official letter with your badge number first.",
		},
		IntentAskPersonalInfo: {
			"Father's name? Why you need? First tell me YOUR identification.",
			"I will give all details, but first send me official email from your bank ID.",
		},
		IntentUnknown: {
			"But beta, first give ME your official account. I need to verify you are genuine.",
			"What is YOUR employee ID? I will note down for complaint if something goes wrong.",
			"Tell me your helpline number. I will call the bank to verify you.",
			"Can you share your official bank email? I want to confirm.",
		},
	},
}

// genericFallbacks is the per-session rotating list used when a pool
// is exhausted or generation fails outright.
var genericFallbacks = []string{
	"Sorry beta, I didn't understand. Can you repeat slowly?",
	"Haan ji, I am listening. But speak in Hindi please.",
	"Acha acha, but what should I do exactly? Tell me step by step.",
	"One minute, someone is at the door. Don't go anywhere.",
	"My phone battery is low. If call cuts, you call me back okay?",
	"I am confused. My son handles all technical things. Explain again?",
	"Wait, I am writing this down in my diary. Slowly please.",
	"Network is very bad today. Can you say that once more?",
}

// phaseWeights drives the weighted response-type draw. Early phases
// stall and wander; later phases flip to pulling the scammer's own
// details.
var phaseWeights = map[Phase]map[ResponseType]int{
	PhaseInitialContact: {
		ResponsePureStall: 30, ResponseTopicConfusion: 30, ResponseFamilyTangent: 20,
		ResponseTechnicalIssue: 10, ResponseEmotional: 5, ResponseReverseExtraction: 5,
	},
	PhaseBuildingTrust: {
		ResponsePureStall: 25, ResponseFamilyTangent: 30, ResponseTopicConfusion: 20,
		ResponseTechnicalIssue: 10, ResponseEmotional: 5, ResponseReverseExtraction: 10,
	},
	PhaseCreatingUrgency: {
		ResponseEmotional: 35, ResponsePureStall: 20, ResponseTechnicalIssue: 15,
		ResponseFamilyTangent: 10, ResponseTopicConfusion: 10, ResponseReverseExtraction: 10,
	},
	PhaseExtractionAttempt: {
		ResponseReverseExtraction: 30, ResponseTechnicalIssue: 25, ResponseTopicConfusion: 15,
		ResponsePureStall: 15, ResponseFamilyTangent: 10, ResponseEmotional: 5,
	},
	PhasePersistence: {
		ResponseReverseExtraction: 35, ResponseTechnicalIssue: 20, ResponseEmotional: 15,
		ResponsePureStall: 15, ResponseFamilyTangent: 10, ResponseTopicConfusion: 5,
	},
	PhaseFinalPush: {
		ResponseReverseExtraction: 45, ResponseEmotional: 20, ResponseTechnicalIssue: 15,
		ResponsePureStall: 10, ResponseFamilyTangent: 5, ResponseTopicConfusion: 5,
	},
}

// extractionTargets is the priority order for next_extraction_target.
var extractionTargets = []string{
	"name", "employee_id", "bank", "upi", "ifsc", "phone",
	"email", "branch", "account", "document", "aadhaar", "pan",
}

// NoExtractionTarget is the sentinel returned when every target is
// known or over-asked.
const NoExtractionTarget = "none"

func buildPools() map[ResponseType]map[Intent][]Template {
	pools := make(map[ResponseType]map[Intent][]Template, len(rawPools))
	for rtype, byIntent := range rawPools {
		pools[rtype] = make(map[Intent][]Template, len(byIntent))
		for intent, texts := range byIntent {
			templates := make([]Template, 0, len(texts))
			for i, text := range texts {
				templates = append(templates, Template{
					ID:   fmt.Sprintf("%s/%s/%d", rtype, intent, i),
					Text: text,
				})
			}
			pools[rtype][intent] = templates
		}
	}
	return pools
}

// poolFor returns the template pool for (type, intent), falling back
// to the type's unknown pool when the intent has no dedicated one.
func poolFor(rtype ResponseType, intent Intent) []Template {
	byIntent, ok := responsePools[rtype]
	if !ok {
		return nil
	}
	if pool, ok := byIntent[intent]; ok {
		return pool
	}
	return byIntent[IntentUnknown]
}
