package usecase

// Keyword tables. Order matters wherever a slice is used: the first match wins.

// clientPunctuation is trimmed from both ends of every word before the client check.
const clientPunctuation = ".,?!"

// clientStoplist holds lowercase words that are never taken as a client name.
var clientStoplist = map[string]struct{}{
	"hi":      {},
	"hello":   {},
	"hey":     {},
	"i":       {},
	"we":      {},
	"need":    {},
	"urgent":  {},
	"budget":  {},
	"usd":     {},
	"dollars": {},
	"please":  {},
}

type taskRule struct {
	keywords []string
	label    string
}

var taskRules = []taskRule{
	{keywords: []string{"logo"}, label: "Logo Design"},
	{keywords: []string{"website", "web"}, label: "Website Development"},
	{keywords: []string{"app"}, label: "Mobile App Development"},
	{keywords: []string{"write", "content"}, label: "Content Writing"},
	{keywords: []string{"design"}, label: "Graphic Design"},
}

// deadlinePhrases are looked up in the lowercased text and resolved with datemath.Parse.
var deadlinePhrases = []string{
	"friday",
	"monday",
	"tomorrow",
	"next week",
}
