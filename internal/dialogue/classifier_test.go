package dialogue

import "testing"

func TestClassify(t *testing.T) {
	cases := []struct {
		prompt string
		want   Intent
	}{
		{"Give me a forecast for next quarter", IntentForecast},
		{"What will happen to customer satisfaction?", IntentForecast},
		{"predict the market trajectory", IntentForecast},
		{"Where is this heading?", IntentForecast},
		{"Why did competition spike?", IntentExplain},
		{"analyze the current state", IntentExplain},
		{"What is driving churn?", IntentExplain},
		{"root cause of the slowdown", IntentExplain},
		{"hello there", IntentUnknown},
		{"", IntentUnknown},
		{"   ", IntentUnknown},
	}
	for _, c := range cases {
		if got := Classify(c.prompt); got != c.want {
			t.Fatalf("Classify(%q) = %s, want %s", c.prompt, got, c.want)
		}
	}
}

func TestClassifyExplainWinsOnOverlap(t *testing.T) {
	// A causal question about a forecast is still a causal question.
	if got := Classify("why does the forecast look bad?"); got != IntentExplain {
		t.Fatalf("expected explain, got %s", got)
	}
}

func TestClassifyIsCaseInsensitive(t *testing.T) {
	if got := Classify("FORECAST the next year"); got != IntentForecast {
		t.Fatalf("expected forecast, got %s", got)
	}
	if got := Classify("WHY is this happening"); got != IntentExplain {
		t.Fatalf("expected explain, got %s", got)
	}
}
