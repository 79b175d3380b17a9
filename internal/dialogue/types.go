package dialogue

// #region intent

// Intent is the closed set of user intents the front end understands. The
// classifier is an external collaborator of the agent core: it maps free text
// to an intent and never reaches into the cycle itself.
type Intent string

const (
	IntentForecast Intent = "forecast"
	IntentExplain  Intent = "explain"
	IntentUnknown  Intent = "unknown"
)

// #endregion intent
