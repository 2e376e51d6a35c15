package similarity

import "testing"

func TestScoreBounds(t *testing.T) {
	s := New(DefaultTables())

	tests := []struct {
		name string
		a    string
		b    string
	}{
		{"identical", "download the report", "download the report"},
		{"disjoint", "download report", "weather forecast"},
		{"synonyms", "connect to portal", "login to website"},
		{"noise", "||| ___ ~~~ 123", "abc def ghi"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.Score(tt.a, tt.b)
			if got < 0.0 || got > 1.0 {
				t.Errorf("Score(%q, %q) = %v, want in [0,1]", tt.a, tt.b, got)
			}
		})
	}
}

func TestScoreEmpty(t *testing.T) {
	s := New(DefaultTables())

	for _, x := range []string{"", "download report", "the and for"} {
		if got := s.Score("", x); got != 0.0 {
			t.Errorf("Score(\"\", %q) = %v, want 0", x, got)
		}
		if got := s.Score(x, ""); got != 0.0 {
			t.Errorf("Score(%q, \"\") = %v, want 0", x, got)
		}
	}
}

func TestScoreStopwordsOnly(t *testing.T) {
	s := New(DefaultTables())

	if got := s.Score("the and for with", "download report"); got != 0.0 {
		t.Errorf("stopword-only text scored %v, want 0", got)
	}
}

func TestScoreIdentity(t *testing.T) {
	s := New(DefaultTables())

	texts := []string{
		"download the monthly report",
		"Validates each record",
		"Login Portal",
	}

	for _, text := range texts {
		if got := s.Score(text, text); got <= 0.0 {
			t.Errorf("Score(%q, %q) = %v, want > 0", text, text, got)
		}
	}

	// Full self-overlap means every union word matches exactly.
	if got := s.Score("monthly report", "monthly report"); got != 1.0 {
		t.Errorf("exact self score = %v, want 1.0", got)
	}
}

func TestScoreSignals(t *testing.T) {
	s := New(DefaultTables())

	// Exact overlap beats synonym overlap on comparable texts.
	exact := s.Score("download report", "download report")
	synonym := s.Score("extract report", "download report")
	if synonym <= 0 {
		t.Fatalf("synonym score = %v, want > 0", synonym)
	}
	if exact <= synonym {
		t.Errorf("exact %v should exceed synonym %v", exact, synonym)
	}

	// Substring signal: shared 5-char prefix on long words.
	substr := s.Score("management console", "manage console")
	if substr <= 0 {
		t.Errorf("substring score = %v, want > 0", substr)
	}
}

func TestScoreWeighting(t *testing.T) {
	s := New(DefaultTables())

	// Long specific words carry more weight than common filler.
	specific := s.Score("ivanti patching dashboard", "ivanti patching dashboard screen")
	filler := s.Score("click open page", "click open page screen")
	if specific <= filler {
		t.Errorf("specific-word score %v should exceed common-word score %v", specific, filler)
	}
}

func TestScoreCustomTables(t *testing.T) {
	tables := Tables{
		Synonyms: map[string][]string{
			"alpha": {"beta"},
		},
		Stopwords:   map[string]struct{}{},
		CommonWords: map[string]struct{}{},
	}
	s := New(tables)

	if got := s.Score("alpha", "beta"); got <= 0 {
		t.Errorf("injected synonym score = %v, want > 0", got)
	}
	// No default synonyms when tables are swapped.
	if got := s.Score("connect", "login"); got != 0 {
		t.Errorf("default synonym leaked through custom tables: %v", got)
	}
}
