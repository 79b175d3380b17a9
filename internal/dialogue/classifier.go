package dialogue

// #region imports
import "strings"

// #endregion imports

// #region keywords

var forecastKeywords = []string{
	"predict", "prediction", "forecast", "projection",
	"what will", "what happens next", "next quarter", "next year",
	"trajectory", "outlook", "where is this heading",
}

var explainKeywords = []string{
	"why", "analyze", "analysis", "explain", "because",
	"what is driving", "root cause", "cause of", "reason for",
	"what factor", "which factor",
}

// #endregion keywords

// #region classify

// Classify maps a free-text prompt to an intent via keyword heuristics.
// No model call; explain wins when both keyword sets match, since "why"
// questions about a forecast are still causal questions.
func Classify(prompt string) Intent {
	lower := strings.ToLower(strings.TrimSpace(prompt))
	if lower == "" {
		return IntentUnknown
	}

	for _, kw := range explainKeywords {
		if strings.Contains(lower, kw) {
			return IntentExplain
		}
	}
	for _, kw := range forecastKeywords {
		if strings.Contains(lower, kw) {
			return IntentForecast
		}
	}
	return IntentUnknown
}

// #endregion classify
