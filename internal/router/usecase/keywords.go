package usecase

var stopPhrases = map[string]struct{}{
	"stop": {}, "cancel": {}, "cancel that": {}, "never mind": {}, "nevermind": {},
	"forget it": {}, "abort": {}, "quit": {},
}

// correctionLeads are matched longest first where they share a prefix.
var correctionLeads = []string{
	"no, i meant ", "no i meant ", "no, make it ", "no make it ",
	"actually ", "i meant ", "i mean ", "make it ", "change it to ",
}

var (
	// Any "remind..." word counts; negation turns "don't send me reminders" into a cancellation.
	creationPrefixes = []string{"remind", "schedule"}
	creationPhrases  = []string{
		"add task", "add a task", "new task", "create task", "create a task",
		"set a reminder", "set reminder", "add a reminder", "create a reminder", "new reminder",
	}

	updatePrefixes = []string{"update", "reschedule"}

	cancelPrefixes          = []string{"cancel", "delete", "stop", "remove"}
	reminderContextPrefixes = []string{"remind", "task", "alarm", "meeting", "appointment"}

	listingWords = []string{"what", "my", "list", "pending", "completed", "show"}

	recallPrefixes = []string{"remember", "recall"}
	recallPhrases  = []string{"what did i say", "what did i tell you", "last time"}

	searchPrefixes = []string{"search", "google"}
	searchWords    = []string{"news", "weather"}
	searchPhrases  = []string{"look up", "find out", "who is"}

	researchPrefixes = []string{"compar", "research"}
	researchWords    = []string{"vs", "versus", "best"}
	researchPhrases  = []string{"pros and cons", "which is better"}
	purchasePrefixes = []string{"buy", "purchas", "price", "pricing", "cost", "cheap", "deal", "worth", "budget", "afford"}
)

// negationMarkers are matched against the space-padded lower-cased segment.
var negationMarkers = []string{"don't", "dont", "do not", "cancel", "stop", " no "}
