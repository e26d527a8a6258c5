package rules

// presence selects how a required key counts as set.
type presence int

const (
	// truthy: the key exists and holds a non-empty, non-zero, non-false value.
	truthy presence = iota
	// defined: the key exists, whatever its value. Used where "0" and null are
	// meaningful values (radii, shadows).
	defined
)

// KeyGroup is a named subsection and the keys it must define.
type KeyGroup struct {
	Name string   `json:"name"`
	Keys []string `json:"keys"`
}

// ContrastPair is a foreground/background color pair and its minimum ratio.
// Paths are relative to the colors section.
type ContrastPair struct {
	Label      string   `json:"label"`
	Foreground []string `json:"foreground"`
	Background []string `json:"background"`
	MinRatio   float64  `json:"min_ratio"`
}

// marginFactor flags ratios that pass but sit within 20% of the minimum.
const marginFactor = 1.2

// brutalistRadius is the literal string value that marks a square-cornered
// radius. A numeric 0 does not count.
const brutalistRadius = "0"

var requiredSections = []string{
	"meta",
	"colors",
	"typography",
	"spacing",
	"borders",
	"shadows",
	"animation",
}

var (
	requiredMeta    = []string{"name"}
	recommendedMeta = []string{"version", "mood", "description"}
)

// minMoodLength is the shortest mood description that is not flagged.
const minMoodLength = 5

var requiredColors = []KeyGroup{
	{Name: "background", Keys: []string{"primary", "secondary", "tertiary"}},
	{Name: "text", Keys: []string{"primary", "secondary", "muted", "inverse"}},
	{Name: "accent", Keys: []string{"primary", "hover", "subtle"}},
	{Name: "border", Keys: []string{"default", "strong"}},
	{Name: "status", Keys: []string{"success", "warning", "error", "info"}},
}

var contrastPairs = []ContrastPair{
	{
		Label:      "text.primary / background.primary",
		Foreground: []string{"text", "primary"},
		Background: []string{"background", "primary"},
		MinRatio:   4.5,
	},
	{
		Label:      "text.secondary / background.primary",
		Foreground: []string{"text", "secondary"},
		Background: []string{"background", "primary"},
		MinRatio:   4.5,
	},
	{
		// Button labels are large/bold text.
		Label:      "text.inverse / accent.primary (buttons)",
		Foreground: []string{"text", "inverse"},
		Background: []string{"accent", "primary"},
		MinRatio:   3.0,
	},
	{
		Label:      "accent.primary / background.primary",
		Foreground: []string{"accent", "primary"},
		Background: []string{"background", "primary"},
		MinRatio:   3.0,
	},
}

var (
	requiredFonts       = []string{"heading", "body"}
	requiredScale       = []string{"xs", "sm", "base", "lg", "xl", "2xl", "3xl", "4xl"}
	requiredLineHeights = []string{"tight", "normal", "relaxed"}
)

var requiredSpacing = []string{
	"unit",
	"section-padding",
	"content-max-width",
	"content-narrow",
}

var (
	requiredRadius = []string{"none", "small", "medium", "large"}
	requiredWidths = []string{"thin", "medium"}
)

var requiredShadows = []string{"none", "small", "medium", "large"}

var (
	requiredDurations = []string{"fast", "default", "slow"}
	requiredEasings   = []string{"default"}
)

const guidelinesSection = "component-guidelines"

var recommendedComponents = []string{
	"buttons",
	"cards",
	"hero",
	"navigation",
	"inputs",
}

// brutalistRadiusKeys are the three smallest radius steps.
var brutalistRadiusKeys = []string{"none", "small", "medium"}

// rawMoodTerms mark a raw/direct aesthetic in meta.mood (matched lowercase).
var rawMoodTerms = []string{"rå", "brutal", "direkte"}

// keyHints adds context to specific missing-key messages.
var keyHints = map[string]string{
	"meta.version": "recommended",
	"meta.mood":    "it tells readers and tools how to interpret the style",
}

// RuleSet is a serializable view of the rule tables.
type RuleSet struct {
	Checks           []string       `json:"checks"`
	RequiredSections []string       `json:"required_sections"`
	RequiredMeta     []string       `json:"required_meta"`
	RecommendedMeta  []string       `json:"recommended_meta"`
	Colors           []KeyGroup     `json:"colors"`
	ContrastPairs    []ContrastPair `json:"contrast_pairs"`
	ContrastMargin   float64        `json:"contrast_margin"`
	Typography       []KeyGroup     `json:"typography"`
	Spacing          []string       `json:"spacing"`
	Borders          []KeyGroup     `json:"borders"`
	Shadows          []string       `json:"shadows"`
	Animation        []KeyGroup     `json:"animation"`
	Components       []string       `json:"components"`
	RawMoodTerms     []string       `json:"raw_mood_terms"`
}

// Rules returns a copy of the rule tables.
func Rules() RuleSet {
	names := make([]string, len(battery))
	for i, c := range battery {
		names[i] = c.name
	}
	return RuleSet{
		Checks:           names,
		RequiredSections: clone(requiredSections),
		RequiredMeta:     clone(requiredMeta),
		RecommendedMeta:  clone(recommendedMeta),
		Colors:           cloneGroups(requiredColors),
		ContrastPairs:    clonePairs(contrastPairs),
		ContrastMargin:   marginFactor,
		Typography: []KeyGroup{
			{Name: "fonts", Keys: clone(requiredFonts)},
			{Name: "scale", Keys: clone(requiredScale)},
			{Name: "line-heights", Keys: clone(requiredLineHeights)},
		},
		Spacing: clone(requiredSpacing),
		Borders: []KeyGroup{
			{Name: "radius", Keys: clone(requiredRadius)},
			{Name: "width", Keys: clone(requiredWidths)},
		},
		Shadows: clone(requiredShadows),
		Animation: []KeyGroup{
			{Name: "duration", Keys: clone(requiredDurations)},
			{Name: "easing", Keys: clone(requiredEasings)},
		},
		Components:   clone(recommendedComponents),
		RawMoodTerms: clone(rawMoodTerms),
	}
}

func clone(s []string) []string {
	out := make([]string, len(s))
	copy(out, s)
	return out
}

func cloneGroups(gs []KeyGroup) []KeyGroup {
	out := make([]KeyGroup, len(gs))
	for i, g := range gs {
		out[i] = KeyGroup{Name: g.Name, Keys: clone(g.Keys)}
	}
	return out
}

func clonePairs(ps []ContrastPair) []ContrastPair {
	out := make([]ContrastPair, len(ps))
	for i, p := range ps {
		out[i] = p
		out[i].Foreground = clone(p.Foreground)
		out[i].Background = clone(p.Background)
	}
	return out
}
