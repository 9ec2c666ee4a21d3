package gemini

// SafetySetting is one harm-category threshold in a generateContent call.
type SafetySetting struct {
	Category  string `json:"category"`
	Threshold string `json:"threshold"`
}

const (
	CategoryHarassment       = "HARM_CATEGORY_HARASSMENT"
	CategoryHateSpeech       = "HARM_CATEGORY_HATE_SPEECH"
	CategorySexuallyExplicit = "HARM_CATEGORY_SEXUALLY_EXPLICIT"
	CategoryDangerousContent = "HARM_CATEGORY_DANGEROUS_CONTENT"

	ThresholdBlockNone = "BLOCK_NONE"
)

// SafetySettings disables blocking for the four harm categories. The
// default thresholds sometimes refuse harmless study feedback.
func SafetySettings() []SafetySetting {
	return []SafetySetting{
		{Category: CategoryHarassment, Threshold: ThresholdBlockNone},
		{Category: CategoryHateSpeech, Threshold: ThresholdBlockNone},
		{Category: CategorySexuallyExplicit, Threshold: ThresholdBlockNone},
		{Category: CategoryDangerousContent, Threshold: ThresholdBlockNone},
	}
}
