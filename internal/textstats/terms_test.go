package textstats

import "testing"

const termSource = "Der Graf wollte alle täuschen und seinen Besitz verstecken. " +
	"Die Bauern sollten den Plan niemals verstehen."

func TestSuggestTargetTermsFiltersStopwords(t *testing.T) {
	terms := SuggestTargetTerms(termSource, "", 8)
	if len(terms) == 0 {
		t.Fatal("expected suggestions")
	}
	for _, w := range terms {
		if IsStopword(w) {
			t.Errorf("stopword %q suggested", w)
		}
		if len([]rune(w)) < 5 {
			t.Errorf("short word %q suggested", w)
		}
	}
}

func TestSuggestTargetTermsSpokenPenalty(t *testing.T) {
	// A word already said in the retell scores half; with identical frequency
	// the unsaid word must rank ahead of the said one.
	src := "täuschen verstecken"
	terms := SuggestTargetTerms(src, "verstecken", 2)
	if len(terms) != 2 {
		t.Fatalf("got %d terms, want 2", len(terms))
	}
	if terms[0] != "täuschen" {
		t.Errorf("first term = %q, want täuschen (missing from retell)", terms[0])
	}
}

func TestSuggestTargetTermsK(t *testing.T) {
	if got := SuggestTargetTerms(termSource, "", 0); got != nil {
		t.Errorf("k=0 should yield nil, got %v", got)
	}
	if got := SuggestTargetTerms(termSource, "", 2); len(got) > 2 {
		t.Errorf("k=2 yielded %d terms", len(got))
	}
}

func TestSuggestBonusTermsConnectorsFirst(t *testing.T) {
	terms := SuggestBonusTerms(termSource, 5)
	if len(terms) != 5 {
		t.Fatalf("got %d terms, want 5", len(terms))
	}
	if terms[0] != "weil" || terms[1] != "deshalb" {
		t.Errorf("connectors not first: %v", terms)
	}
	// Keyed content words from the source should appear.
	found := false
	for _, w := range terms {
		if w == "täuschen" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected täuschen in %v", terms)
	}
}

func TestSuggestBonusTermsDeterministic(t *testing.T) {
	a := SuggestBonusTerms(termSource, 5)
	b := SuggestBonusTerms(termSource, 5)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("non-deterministic: %v vs %v", a, b)
		}
	}
}

func TestCheckTermsUsed(t *testing.T) {
	check := CheckTermsUsed([]string{"weil", "deshalb"}, "ich gehe weil es regnet")
	if len(check.Used) != 1 || check.Used[0] != "weil" {
		t.Errorf("used = %v, want [weil]", check.Used)
	}
	if len(check.Missing) != 1 || check.Missing[0] != "deshalb" {
		t.Errorf("missing = %v, want [deshalb]", check.Missing)
	}
	if check.Rate != 0.5 {
		t.Errorf("rate = %f, want 0.5", check.Rate)
	}
}

func TestCheckTermsUsedEmpty(t *testing.T) {
	if check := CheckTermsUsed(nil, "irgendwas"); check.Rate != 0 || check.Used != nil {
		t.Errorf("empty terms: got %+v, want zero value", check)
	}
}
