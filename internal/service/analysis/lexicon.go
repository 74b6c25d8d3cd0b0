package analysis

import (
	"sort"

	"github.com/reiver/go-porterstemmer"
)

// afinn is the word-polarity table, weights in [-5,5]. Inflected forms
// are collapsed onto these entries by stemming, so only one form per
// root is listed.
var afinn = map[string]int{
	"abandon":      -2,
	"abuse":        -3,
	"admire":       3,
	"adorable":     3,
	"afraid":       -2,
	"aggressive":   -2,
	"alarm":        -2,
	"alone":        -2,
	"amazing":      4,
	"anger":        -3,
	"angry":        -3,
	"annoy":        -2,
	"anxious":      -2,
	"apology":      -1,
	"appreciate":   2,
	"attack":       -1,
	"avoid":        -1,
	"award":        3,
	"awesome":      4,
	"awful":        -3,
	"awkward":      -2,
	"bad":          -3,
	"beautiful":    3,
	"benefit":      2,
	"best":         3,
	"betray":       -3,
	"better":       2,
	"blame":        -2,
	"bless":        2,
	"block":        -1,
	"bore":         -2,
	"brave":        2,
	"breathtaking": 5,
	"bright":       1,
	"brilliant":    4,
	"broken":       -1,
	"calm":         2,
	"cancel":       -1,
	"care":         2,
	"catastrophic": -4,
	"champion":     2,
	"chaos":        -2,
	"charm":        3,
	"cheap":        -1,
	"cheer":        2,
	"clean":        2,
	"clever":       2,
	"comfort":      2,
	"complain":     -2,
	"confident":    2,
	"confuse":      -2,
	"congratulate": 2,
	"crap":         -3,
	"crash":        -2,
	"crisis":       -3,
	"cruel":        -3,
	"cry":          -1,
	"curious":      1,
	"cut":          -1,
	"damage":       -3,
	"damn":         -4,
	"danger":       -2,
	"dead":         -3,
	"defeat":       -2,
	"delay":        -1,
	"delight":      3,
	"deny":         -2,
	"depress":      -2,
	"despair":      -3,
	"destroy":      -3,
	"die":          -3,
	"difficult":    -1,
	"dirty":        -2,
	"disappoint":   -2,
	"disaster":     -2,
	"dislike":      -2,
	"distrust":     -3,
	"doubt":        -1,
	"dream":        1,
	"dull":         -2,
	"dumb":         -3,
	"eager":        2,
	"easy":         1,
	"elegant":      2,
	"embarrass":    -2,
	"encourage":    2,
	"enjoy":        2,
	"error":        -2,
	"evil":         -3,
	"excellent":    3,
	"excite":       3,
	"fail":         -2,
	"fake":         -3,
	"fantastic":    4,
	"fear":         -2,
	"fine":         2,
	"fraud":        -4,
	"free":         1,
	"fresh":        1,
	"frustrate":    -2,
	"fun":          4,
	"funny":        4,
	"generous":     2,
	"glad":         3,
	"gloomy":       -2,
	"good":         3,
	"great":        3,
	"greed":        -3,
	"grief":        -2,
	"happy":        3,
	"hate":         -3,
	"hell":         -4,
	"help":         2,
	"hero":         2,
	"honest":       2,
	"hope":         2,
	"horrible":     -3,
	"hurt":         -2,
	"ignore":       -1,
	"impress":      3,
	"improve":      2,
	"incredible":   4,
	"innovative":   2,
	"inspire":      2,
	"interest":     1,
	"jealous":      -2,
	"joy":          3,
	"kill":         -3,
	"kind":         2,
	"laugh":        1,
	"lazy":         -1,
	"lie":          -2,
	"like":         2,
	"lose":         -3,
	"loss":         -3,
	"love":         3,
	"lucky":        3,
	"mad":          -3,
	"marvel":       3,
	"mess":         -2,
	"miss":         -1,
	"mistake":      -2,
	"nervous":      -2,
	"nice":         3,
	"outstanding":  5,
	"pain":         -2,
	"panic":        -3,
	"peace":        2,
	"perfect":      3,
	"pleasant":     3,
	"please":       1,
	"poor":         -2,
	"popular":      3,
	"positive":     2,
	"pretty":       1,
	"problem":      -2,
	"protect":      1,
	"proud":        2,
	"rage":         -2,
	"recommend":    2,
	"regret":       -2,
	"reject":       -1,
	"relax":        2,
	"relief":       1,
	"rescue":       2,
	"respect":      2,
	"rich":         2,
	"risk":         -2,
	"rotten":       -3,
	"ruin":         -2,
	"sad":          -2,
	"safe":         1,
	"scam":         -2,
	"scare":        -2,
	"sick":         -2,
	"smart":        1,
	"smile":        2,
	"solid":        2,
	"sorry":        -1,
	"strange":      -1,
	"stress":       -1,
	"strong":       2,
	"struggle":     -2,
	"stupid":       -2,
	"succeed":      3,
	"success":      2,
	"suffer":       -2,
	"superb":       5,
	"support":      2,
	"terrible":     -3,
	"terrific":     4,
	"thank":        2,
	"threat":       -2,
	"thrill":       5,
	"tired":        -2,
	"tragedy":      -2,
	"trouble":      -2,
	"trust":        1,
	"ugly":         -3,
	"unhappy":      -2,
	"upset":        -2,
	"useful":       2,
	"useless":      -2,
	"victory":      3,
	"violent":      -3,
	"warm":         1,
	"weak":         -2,
	"welcome":      2,
	"win":          4,
	"wonderful":    4,
	"worry":        -3,
	"worse":        -3,
	"worst":        -3,
	"wow":          4,
	"wrong":        -2,
}

// lexicon maps stemmed roots to polarity weights. Built once at init so
// stemmed tokens hit the same root forms the stemmer emits at scoring
// time. Keys are processed in sorted order and the first stem wins,
// keeping the table deterministic if two entries collapse to one root.
var lexicon = buildLexicon()

func buildLexicon() map[string]float64 {
	words := make([]string, 0, len(afinn))
	for w := range afinn {
		words = append(words, w)
	}
	sort.Strings(words)

	stemmed := make(map[string]float64, len(words))
	for _, w := range words {
		stem := porterstemmer.StemString(w)
		if _, ok := stemmed[stem]; !ok {
			stemmed[stem] = float64(afinn[w])
		}
	}
	return stemmed
}
