package usecase

// maxMatchSpread is how far apart, beyond the word length, the matched runes of
// one query word may lie inside a description.
const maxMatchSpread = 2

// ignoredWords carry intent or grammar, not task identity, and are dropped
// before fuzzy matching.
var ignoredWords = map[string]struct{}{
	"a": {}, "an": {}, "the": {}, "my": {}, "me": {}, "i": {}, "it": {}, "that": {}, "this": {},
	"to": {}, "for": {}, "about": {}, "of": {}, "on": {}, "at": {}, "in": {}, "by": {}, "with": {},
	"from": {}, "and": {}, "or": {}, "is": {}, "please": {}, "can": {}, "you": {}, "want": {},
	"need": {}, "cancel": {}, "delete": {}, "remove": {}, "stop": {}, "update": {}, "change": {},
	"reschedule": {}, "move": {}, "postpone": {}, "push": {}, "remind": {}, "reminder": {},
	"reminders": {}, "task": {}, "tasks": {}, "todo": {}, "don't": {}, "dont": {}, "do": {}, "not": {},
}
