package preprocess

// Output is the normalized/raw text pair handed to the router.
type Output struct {
	// RawText is the utterance as the user meant it. The router classifies and
	// extracts from this field only.
	RawText string `json:"raw_text"`
	// WorkingText is a folded, accent-free form for lookups.
	WorkingText  string `json:"working_text"`
	LanguageHint string `json:"language_hint"`
}
