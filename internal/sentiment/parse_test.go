package sentiment

import "testing"

func TestParseWellFormedBlock(t *testing.T) {
	raw := "Text: I really enjoyed the demo today\n\nSENTIMENT ANALYSIS: Positive"

	transcript, label := Parse(raw)
	if transcript != "I really enjoyed the demo today" {
		t.Fatalf("wrong transcript: %q", transcript)
	}
	if label != SentimentPositive {
		t.Fatalf("wrong label: %q", label)
	}
}

func TestParseNegative(t *testing.T) {
	raw := "Text: this is broken again\n\nSENTIMENT ANALYSIS: Negative"

	_, label := Parse(raw)
	if label != SentimentNegative {
		t.Fatalf("wrong label: %q", label)
	}
}

func TestParseNeutralWithTrailingText(t *testing.T) {
	raw := "Text: okay\n\nSENTIMENT ANALYSIS: Neutral\n"

	_, label := Parse(raw)
	if label != SentimentNeutral {
		t.Fatalf("wrong label: %q", label)
	}
}

func TestParseMalformedBlock(t *testing.T) {
	raw := "the model decided to freestyle here"

	transcript, label := Parse(raw)
	if transcript != raw {
		t.Fatalf("malformed block must pass through raw, got %q", transcript)
	}
	if label != SentimentUnknown {
		t.Fatalf("expected Unknown, got %q", label)
	}
}

func TestParseUnknownLabel(t *testing.T) {
	raw := "Text: hmm\n\nSENTIMENT ANALYSIS: Confused"

	_, label := Parse(raw)
	if label != SentimentUnknown {
		t.Fatalf("expected Unknown for off-template label, got %q", label)
	}
}
