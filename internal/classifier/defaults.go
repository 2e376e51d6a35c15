package classifier

// Tables holds the fixed keyword sets driving classification. Matching is
// case-insensitive substring search in a fixed precedence order:
// decision > loop > end-phase > process.
type Tables struct {
	DecisionKeywords    []string
	LoopKeywords        []string
	EndPhaseKeywords    []string
	SubjectPrefixes     []string
	ConversationPhrases []string
}

// DefaultTables returns the production keyword tables.
func DefaultTables() Tables {
	return Tables{
		DecisionKeywords: []string{
			"if ", "whether", "check if", "verify if", "determine if",
			"validate if", "confirm if", "eligible", "meets criteria",
			"qualifies", "is valid", "is active", "is inactive",
			"has been", "found", "not found", "exists", "does not exist",
			"successful", "failed", "pass", "fail", "approved", "rejected",
			"matches", "does not match", "compliant", "non-compliant",
		},
		LoopKeywords: []string{
			"each", "every", "all ", "iterate", "repeat", "loop",
			"next record", "next item", "next entry", "next user",
			"next account", "next server", "next group",
			"remaining", "batch", "one by one", "for all",
			"processes each", "validates each", "checks each",
			"reviews each", "handles each",
		},
		EndPhaseKeywords: []string{
			"final report", "final status", "execution status",
			"completion", "summary report", "audit log",
			"logs out", "closes", "terminates", "ends",
			"overall status", "execution outcome",
		},
		SubjectPrefixes: []string{
			"the system", "the automation", "the bot", "the solution", "it",
		},
		ConversationPhrases: []string{
			"coordinate with", "talk to", "discuss with", "meet with",
			"call ", "email to", "notify person", "inform team",
			"schedule meeting", "follow up with", "follow-up with",
			"check with person", "ask team", "agreed to", "decided to",
			"team will", "we will", "stakeholder meeting", "agenda",
			"let me know", "get back to", "circle back", "touch base",
			"set up a call", "send invite", "book a meeting",
		},
	}
}
