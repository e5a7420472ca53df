package fix

// ptbUpos maps Penn Treebank tags to Universal Dependencies UPOS, following
// https://universaldependencies.org/tagset-conversion/en-penn-uposf.html
var ptbUpos = map[string]string{
	"#":     "SYM",
	"$":     "SYM",
	"''":    "PUNCT",
	",":     "PUNCT",
	"-LRB-": "PUNCT",
	"-RRB-": "PUNCT",
	".":     "PUNCT",
	":":     "PUNCT",
	"AFX":   "ADJ",
	"CC":    "CCONJ",
	"CD":    "NUM",
	"DT":    "DET",
	"EX":    "PRON",
	"FW":    "X",
	"HYPH":  "PUNCT",
	"IN":    "ADP",
	"JJ":    "ADJ",
	"JJR":   "ADJ",
	"JJS":   "ADJ",
	"LS":    "X",
	"MD":    "VERB",
	"NIL":   "X",
	"NN":    "NOUN",
	"NNP":   "PROPN",
	"NNPS":  "PROPN",
	"NNS":   "NOUN",
	"PDT":   "DET",
	"POS":   "PART",
	"PRP":   "PRON",
	"PRP$":  "DET",
	"RB":    "ADV",
	"RBR":   "ADV",
	"RBS":   "ADV",
	"RP":    "ADP",
	"SYM":   "SYM",
	"TO":    "PART",
	"UH":    "INTJ",
	"VB":    "VERB",
	"VBD":   "VERB",
	"VBG":   "VERB",
	"VBN":   "VERB",
	"VBP":   "VERB",
	"VBZ":   "VERB",
	"WDT":   "DET",
	"WP":    "PRON",
	"WP$":   "DET",
	"WRB":   "ADV",
	"``":    "PUNCT",
}

// Upos returns the UD tag for the Penn tag. Tags not in the table are
// returned unchanged.
func Upos(tag string) string {
	if u, ok := ptbUpos[tag]; ok {
		return u
	}
	return tag
}

// PTBTags returns the Penn tags known to Upos, in no particular order.
func PTBTags() []string {
	tags := make([]string, 0, len(ptbUpos))
	for k := range ptbUpos {
		tags = append(tags, k)
	}
	return tags
}
