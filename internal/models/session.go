package models

// Context is the open-ended key-value bag of situational settings attached
// to a recommendation request. Known keys are listed below; unknown keys are
// carried through untouched so newer backends can consume them.
type Context map[string]any

// Known context keys.
const (
	ContextKeyIsAlone    = "isAlone"     // bool, solo vs group viewing
	ContextKeyMaxRuntime = "max_runtime" // int, minutes, domain [60,240]
)

// Clone returns an independent copy of the context map.
func (c Context) Clone() Context {
	out := make(Context, len(c))
	for k, v := range c {
		out[k] = v
	}
	return out
}

// Intent labels. At most one is selected per session.
const (
	IntentRelaxation  = "Relaxation"
	IntentInspiration = "Inspiration"
	IntentEscapism    = "Escapism"
	IntentEducational = "Educational"
	IntentGroupWatch  = "Group Watch"
)

// IntentChoices lists the intents in wizard display order.
var IntentChoices = []string{
	IntentRelaxation,
	IntentInspiration,
	IntentEscapism,
	IntentEducational,
	IntentGroupWatch,
}

// ValidIntents enumerates the selectable intent labels.
var ValidIntents = map[string]bool{
	IntentRelaxation:  true,
	IntentInspiration: true,
	IntentEscapism:    true,
	IntentEducational: true,
	IntentGroupWatch:  true,
}

// PresetMoods are the one-tap mood baselines offered by the wizard.
var PresetMoods = []string{"Melancholic", "Euphoric", "Cerebral", "Ethereal", "Chaotic"}

// MaxMoodLength is the input-layer cap on free-text moods. The session store
// itself does not enforce it.
const MaxMoodLength = 300
