package similarity

// Tables holds the fixed vocabularies driving the scorer. Injected at
// construction so tests can swap them without process-wide mutation.
type Tables struct {
	// Synonyms maps a word to the related words it may stand in for.
	// A word in text A matches when any of its synonyms appears in text B.
	Synonyms map[string][]string
	// Stopwords are removed during tokenization.
	Stopwords map[string]struct{}
	// CommonWords carry low weight: they appear in almost every process
	// description and say little about which frame belongs to which step.
	CommonWords map[string]struct{}
}

// DefaultTables returns the production vocabularies, tuned for automation
// process descriptions matched against OCR and transcript text.
func DefaultTables() Tables {
	return Tables{
		Synonyms: map[string][]string{
			"connect":     {"login", "log", "sign", "authenticate", "access", "open", "launch"},
			"login":       {"connect", "sign", "log", "authenticate", "credentials", "password", "username"},
			"navigate":    {"go", "open", "click", "select", "menu", "tab", "page", "home", "dashboard"},
			"extract":     {"download", "export", "get", "pull", "fetch", "retrieve", "save"},
			"download":    {"extract", "export", "save", "get", "fetch"},
			"export":      {"download", "extract", "save", "csv", "excel", "file"},
			"validate":    {"check", "verify", "confirm", "ensure", "review", "inspect", "compare"},
			"filter":      {"sort", "search", "find", "select", "criteria", "column", "remove"},
			"process":     {"handle", "execute", "perform", "run", "action", "apply"},
			"generate":    {"create", "produce", "build", "make", "report", "output"},
			"report":      {"generate", "summary", "output", "results", "details", "log"},
			"update":      {"modify", "change", "edit", "set", "status", "save"},
			"credentials": {"login", "password", "username", "user", "authentication"},
			"application": {"portal", "system", "app", "tool", "platform", "software", "website"},
			"portal":      {"application", "website", "system", "dashboard", "console", "platform"},
			"user":        {"account", "member", "person", "employee", "staff", "admin"},
			"remove":      {"delete", "revoke", "deactivate", "disable", "clear", "unassign"},
			"license":     {"licence", "subscription", "seat", "entitlement", "assignment"},
			"server":      {"machine", "host", "instance", "node", "system"},
			"patch":       {"update", "fix", "install", "deploy", "security"},
			"schedule":    {"template", "cron", "trigger", "timer", "recurring"},
			"scan":        {"check", "detect", "analyze", "inspect", "audit", "assess"},
			"status":      {"state", "result", "outcome", "condition", "progress"},
			"record":      {"entry", "row", "item", "data", "line", "record"},
			"click":       {"press", "select", "tap", "choose", "button", "hit"},
			"search":      {"find", "look", "query", "filter", "locate"},
			"email":       {"mail", "notification", "send", "message", "alert"},
			"active":      {"enabled", "running", "online", "live", "operational"},
			"inactive":    {"disabled", "offline", "dormant", "idle", "unused"},
		},
		Stopwords: wordSet(
			"the", "and", "for", "that", "this", "with", "from", "are",
			"was", "were", "been", "have", "has", "had", "not", "but",
			"all", "can", "will", "would", "should", "could", "may",
			"its", "than", "then", "them", "they", "their", "there",
			"each", "which", "when", "where", "how", "who", "whom",
			"into", "through", "during", "before", "after", "above",
			"below", "between", "under", "over", "some", "any", "also",
			"shall", "must", "using", "based", "upon",
		),
		CommonWords: wordSet(
			"click", "open", "navigate", "select", "enter", "system",
			"page", "button", "field", "data", "process", "step",
			"application", "portal", "user", "file", "report",
			"status", "update", "check", "verify", "login", "log",
			"the", "for", "and", "with", "from", "into", "using",
		),
	}
}

func wordSet(words ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}
