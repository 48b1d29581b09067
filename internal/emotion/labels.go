package emotion

// Label is one value of the fixed emotion taxonomy.
type Label string

const (
	Anger    Label = "anger"
	Disgust  Label = "disgust"
	Fear     Label = "fear"
	Joy      Label = "joy"
	Neutral  Label = "neutral"
	Sadness  Label = "sadness"
	Surprise Label = "surprise"

	// None is the sentinel reported as the dominant emotion of an empty run.
	None Label = "none"
)

// Labels is the fixed taxonomy in priority order: when two labels carry the
// same score or count, the one listed earlier wins.
var Labels = []Label{Anger, Disgust, Fear, Joy, Neutral, Sadness, Surprise}

// Distribution maps every label of the fixed taxonomy to a probability.
// Values sum to 1 within floating-point tolerance.
type Distribution map[Label]float64

// Score is a single label with its confidence.
type Score struct {
	Label      Label
	Confidence float64
}

// NeutralScore is the deterministic default used when classification is
// skipped (empty or failed transcript).
func NeutralScore() Score {
	return Score{Label: Neutral, Confidence: 0}
}

// Top selects the highest-probability label from a distribution. Ties resolve
// to the label earliest in the priority order.
func Top(d Distribution) Score {
	top := Score{Label: Neutral}
	first := true
	for _, l := range Labels {
		if first || d[l] > top.Confidence {
			top = Score{Label: l, Confidence: d[l]}
			first = false
		}
	}
	return top
}

// nativeAliases translates label vocabularies of the underlying models onto
// the fixed taxonomy.
var nativeAliases = map[string]Label{
	"anger":     Anger,
	"angry":     Anger,
	"disgust":   Disgust,
	"disgusted": Disgust,
	"fear":      Fear,
	"joy":       Joy,
	"happiness": Joy,
	"happy":     Joy,
	"love":      Joy,
	"neutral":   Neutral,
	"calm":      Neutral,
	"sadness":   Sadness,
	"sad":       Sadness,
	"surprise":  Surprise,
	"surprised": Surprise,
}

// FromNative folds a model's native label scores into the fixed taxonomy and
// normalizes the result so it sums to 1. Scores under labels with no known
// mapping are folded into neutral so the probability mass is preserved.
func FromNative(native map[string]float64) Distribution {
	d := make(Distribution, len(Labels))
	for _, l := range Labels {
		d[l] = 0
	}

	var total float64
	for name, score := range native {
		if score < 0 {
			continue
		}
		label, ok := nativeAliases[normalize(name)]
		if !ok {
			label = Neutral
		}
		d[label] += score
		total += score
	}

	if total == 0 {
		d[Neutral] = 1
		return d
	}
	for l := range d {
		d[l] /= total
	}
	return d
}
