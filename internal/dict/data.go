package dict

import sliceutil "github.com/projectdiscovery/utils/slice"

// rawKeywords is the baked-in keyword list for the Dictionary generator
// before dedup. The real build pulls a multi-thousand-entry list from
// dictionaries/keywords.txt at build time (spec §1, §4.2); that file is
// not part of this repository's inputs, so this is a representative,
// hand-curated subset covering the categories the upstream list documents
// itself as drawing from: banking, cloud/SaaS platforms, and generic
// brand-abuse bait words. "secure" appears twice on purpose, to exercise
// the same startup dedup alterx runs its own payload tables through.
var rawKeywords = []string{
	"login", "signin", "secure", "account", "verify", "update", "support",
	"billing", "payment", "wallet", "bank", "banking", "vpn", "portal",
	"admin", "mail", "webmail", "online", "mobile", "app", "api", "cloud",
	"cdn", "cpanel", "dev", "staging", "test", "beta", "internal",
	"corp", "auth", "sso", "helpdesk", "service", "services", "customer",
	"client", "partner", "store", "shop", "checkout", "invoice", "docs",
	"status", "monitor", "gateway", "proxy", "backup", "secure2", "secure",
}

// Keywords is rawKeywords with duplicates removed, the same startup step
// alterx's mutator runs its own payload lists through before use.
var Keywords = sliceutil.Dedupe(rawKeywords)

// Vowels is the ASCII vowel set used by VowelSwap, VowelShuffle and
// DoubleVowelInsertion.
var Vowels = []byte("aeiou")

// IsVowel reports whether b is one of the ASCII vowels.
func IsVowel(b byte) bool {
	switch b {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	default:
		return false
	}
}

// Homoglyphs maps a single ASCII letter to the set of visually similar
// Unicode characters or digits an attacker might substitute it with.
// Sourced from the same per-letter confusable sets the upstream project
// bakes in from its own constants table.
var Homoglyphs = map[byte][]string{
	'a': {"а", "ɑ", "@", "4"},
	'b': {"Ь", "b̔", "ß", "8"},
	'c': {"ϲ", "с", "(", "{"},
	'd': {"ԃ", "ⅾ", "cl"},
	'e': {"е", "3", "ë"},
	'g': {"ɢ", "9", "q"},
	'h': {"һ", "lh"},
	'i': {"і", "1", "l", "!"},
	'k': {"κ", "lc"},
	'l': {"1", "i", "ⅼ"},
	'm': {"rn", "nn"},
	'n': {"ո", "r̃"},
	'o': {"о", "0", "ο"},
	'p': {"р", "ρ"},
	'q': {"ԛ", "g"},
	'r': {"г", "ʳ"},
	's': {"ѕ", "$", "5"},
	't': {"τ", "7"},
	'u': {"υ", "ս"},
	'v': {"ѵ", "u"},
	'w': {"vv", "ѡ"},
	'x': {"х", "×"},
	'y': {"у", "ý"},
	'z': {"2", "ʐ"},
}

// HomoglyphBigrams maps a two-character fragment to the set of visually
// similar fragments it can be swapped with. This covers the multi-character
// confusables a single-character table cannot express (e.g. "rn" for "m").
var HomoglyphBigrams = map[string][]string{
	"rn": {"m"},
	"vv": {"w"},
	"nn": {"m"},
	"ii": {"u"},
	"cl": {"d"},
	"lo": {"b"},
}

// MappedFragments is the character-mapping table for the Mapped generator:
// fragment -> set of easy-to-miss substitutions.
var MappedFragments = map[string][]string{
	"d":  {"cl"},
	"ck": {"kk"},
	"m":  {"rn"},
	"w":  {"vv"},
	"oo": {"00"},
	"l":  {"1"},
	"g":  {"q"},
	"s":  {"z"},
	"ph": {"f"},
}

// QWERTYNeighbors maps each lowercase letter or digit to the set of keys
// adjacent to it on a QWERTY keyboard layout. Used by Insertion and
// Replacement.
var QWERTYNeighbors = map[byte]string{
	'1': "2q", '2': "13qw", '3': "24we", '4': "35er", '5': "46rt",
	'6': "57ty", '7': "68yu", '8': "79ui", '9': "80io", '0': "9op",
	'q': "12wa", 'w': "23qeas", 'e': "34wrsd", 'r': "45etdf",
	't': "56rygf", 'y': "67tuhg", 'u': "78yijh", 'i': "89uokj",
	'o': "90iplk", 'p': "0ol",
	'a': "qwsz", 's': "aweqdxz", 'd': "serfcx", 'f': "drtgvc",
	'g': "ftyhbv", 'h': "gyujnb", 'j': "huikmn", 'k': "jiolm",
	'l': "kop",
	'z': "asx", 'x': "zsdc", 'c': "xdfv", 'v': "cfgb",
	'b': "vghn", 'n': "bhjm", 'm': "njk",
}
