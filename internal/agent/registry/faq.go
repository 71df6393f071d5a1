package registry

import "strings"

// faqEntry is one built-in question/answer pair. Keywords are matched
// case-insensitively against the user message before any model call.
type faqEntry struct {
	question string
	keywords []string
	answer   string
}

var builtinFAQ = []faqEntry{
	{
		question: "How to clean collar",
		keywords: []string{"clean", "wash", "清洗", "清洁"},
		answer:   "Use clean water or neutral detergent for gentle cleaning, avoid prolonged soaking and high-temperature drying; keep sensor areas dry.",
	},
	{
		question: "How to pair device",
		keywords: []string{"pair", "pairing", "connect", "配对", "连接"},
		answer:   "Open the app, tap add device, and follow the prompts to complete Bluetooth pairing and network configuration.",
	},
	{
		question: "Data sync issues",
		keywords: []string{"sync", "syncing", "同步"},
		answer:   "Ensure the device has sufficient battery and a normal network connection, then restart the app or re-pair the device.",
	},
	{
		question: "Charging method",
		keywords: []string{"charge", "charging", "battery", "充电", "电量"},
		answer:   "Use the included charging cable to connect the charger; the device shows a charging indicator while charging.",
	},
	{
		question: "Waterproof rating",
		keywords: []string{"waterproof", "water", "swim", "防水", "游泳"},
		answer:   "The device has an IP67 waterproof rating and can be briefly submerged, but prolonged underwater use is not recommended.",
	},
}

// LookupFAQ checks the built-in FAQ table for a keyword match, returning
// the matched canonical question and its canned answer before any model
// round trip.
func (r *Registry) LookupFAQ(userMessage string) (question, answer string, ok bool) {
	msg := strings.ToLower(strings.TrimSpace(userMessage))
	if msg == "" {
		return "", "", false
	}
	for _, entry := range builtinFAQ {
		for _, kw := range entry.keywords {
			if strings.Contains(msg, kw) {
				return entry.question, entry.answer, true
			}
		}
	}
	return "", "", false
}
