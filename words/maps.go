package words

// contractions maps English contractions to their expanded forms.
var contractions = map[string]string{
	"aren't":     "are not",
	"can't":      "cannot",
	"couldn't":   "could not",
	"didn't":     "did not",
	"doesn't":    "does not",
	"don't":      "do not",
	"hadn't":     "had not",
	"hasn't":     "has not",
	"haven't":    "have not",
	"he'd":       "he would",
	"he'll":      "he will",
	"he's":       "he is",
	"i'd":        "i would",
	"i'll":       "i will",
	"i'm":        "i am",
	"i've":       "i have",
	"isn't":      "is not",
	"it's":       "it is",
	"let's":      "let us",
	"mightn't":   "might not",
	"mustn't":    "must not",
	"shan't":     "shall not",
	"she'd":      "she would",
	"she'll":     "she will",
	"she's":      "she is",
	"shouldn't":  "should not",
	"that's":     "that is",
	"there's":    "there is",
	"they'd":     "they would",
	"they'll":    "they will",
	"they're":    "they are",
	"they've":    "they have",
	"we'd":       "we would",
	"we're":      "we are",
	"we've":      "we have",
	"weren't":    "were not",
	"what'll":    "what will",
	"what're":    "what are",
	"what's":     "what is",
	"what've":    "what have",
	"where's":    "where is",
	"who'd":      "who would",
	"who'll":     "who will",
	"who're":     "who are",
	"who's":      "who is",
	"who've":     "who have",
	"won't":      "will not",
	"wouldn't":   "would not",
	"you'd":      "you would",
	"you'll":     "you will",
	"you're":     "you are",
	"you've":     "you have",
	"ain't":      "am not",
	"could've":   "could have",
	"gonna":      "going to",
	"gotta":      "got to",
	"i'ma":       "i am going to",
	"might've":   "might have",
	"must've":    "must have",
	"should've":  "should have",
	"that'd":     "that would",
	"that'll":    "that will",
	"there'd":    "there would",
	"there'll":   "there will",
	"they'd've":  "they would have",
	"we'd've":    "we would have",
	"would've":   "would have",
	"y'all":      "you all",
	"y'all'd":    "you all would",
	"y'all'd've": "you all would have",
}

// abbreviations maps common abbreviations and acronyms to their
// expanded forms. Period-terminated keys also match without the period.
var abbreviations = map[string]string{
	// titles
	"dr.":   "doctor",
	"mr.":   "mister",
	"mrs.":  "missus",
	"ms.":   "miss",
	"prof.": "professor",
	"rev.":  "reverend",
	"col.":  "colonel",
	"gen.":  "general",
	"lt.":   "lieutenant",
	"sgt.":  "sergeant",
	"capt.": "captain",
	"cmdr.": "commander",
	// organizations
	"govt.": "government",
	"dept.": "department",
	"univ.": "university",
	"corp.": "corporation",
	"inc.":  "incorporated",
	"co.":   "company",
	"ltd.":  "limited",
	// common abbreviations
	"approx.": "approximately",
	"appt.":   "appointment",
	"apt.":    "apartment",
	"assn.":   "association",
	"asst.":   "assistant",
	"avg.":    "average",
	"bldg.":   "building",
	"blvd.":   "boulevard",
	"est.":    "established",
	"etc.":    "etcetera",
	"exec.":   "executive",
	"fig.":    "figure",
	"hrs.":    "hours",
	"info.":   "information",
	"intl.":   "international",
	"jr.":     "junior",
	"min.":    "minutes",
	"misc.":   "miscellaneous",
	"mtg.":    "meeting",
	"natl.":   "national",
	"orig.":   "original",
	"pres.":   "president",
	"ref.":    "reference",
	"sec.":    "second",
	"sr.":     "senior",
	"yr.":     "year",
	// acronyms with periods
	"u.s.a.": "united states of america",
	"u.k.":   "united kingdom",
	"e.g.":   "for example",
	"i.e.":   "that is",
	// acronyms without periods
	"nasa": "national aeronautics and space administration",
	"nato": "north atlantic treaty organization",
	"un":   "united nations",
	"eu":   "european union",
	"fbi":  "federal bureau of investigation",
	"cia":  "central intelligence agency",
	"ceo":  "chief executive officer",
	"cfo":  "chief financial officer",
	"cto":  "chief technology officer",
	"hr":   "human resources",
	"id":   "identification",
	"it":   "information technology",
	"tv":   "television",
	"pc":   "personal computer",
	"asap": "as soon as possible",
}

// slang maps informal expressions and nonstandard spellings to their
// standard forms.
var slang = map[string]string{
	// internet slang
	"lol":  "laugh out loud",
	"brb":  "be right back",
	"btw":  "by the way",
	"fyi":  "for your information",
	"idk":  "i do not know",
	"tbh":  "to be honest",
	"imo":  "in my opinion",
	"imho": "in my honest opinion",
	"thx":  "thanks",
	"ty":   "thank you",
	"pls":  "please",
	"plz":  "please",
	"rn":   "right now",
	"yep":  "yes",
	"nope": "no",
	"omg":  "oh my goodness",
	"rofl": "rolling on floor laughing",
	"fomo": "fear of missing out",
	// informal contractions
	"lemme":   "let me",
	"gimme":   "give me",
	"wanna":   "want to",
	"dunno":   "do not know",
	"kinda":   "kind of",
	"sorta":   "sort of",
	"outta":   "out of",
	"hafta":   "have to",
	"tryna":   "trying to",
	"shoulda": "should have",
	"coulda":  "could have",
	"woulda":  "would have",
	"ya":      "you",
	"goin":    "going",
	"cuz":     "because",
	"cause":   "because",
	"bout":    "about",
	"ima":     "i am going to",
	// nonstandard spellings
	"tonite": "tonight",
	"lite":   "light",
	"thru":   "through",
	"nite":   "night",
	"tho":    "though",
	"luv":    "love",
	"em":     "them",
	"bro":    "brother",
	"ur":     "your",
	"u":      "you",
	"r":      "are",
	"n":      "and",
	"gr8":    "great",
	"l8":     "late",
	"l8r":    "later",
	"b4":     "before",
	"m8":     "mate",
	"str8":   "straight",
}
