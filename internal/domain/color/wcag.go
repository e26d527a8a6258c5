package color

import "fmt"

// Level is a WCAG 2.x contrast threshold.
type Level struct {
	Name     string  `json:"name"`
	MinRatio float64 `json:"min_ratio"`
}

// Levels lists the WCAG thresholds, weakest first.
var Levels = []Level{
	{"AA large text", 3},
	{"AA UI components", 3},
	{"AA normal text", 4.5},
	{"AAA large text", 4.5},
	{"AAA normal text", 7},
}

// LevelResult is one threshold applied to a ratio.
type LevelResult struct {
	Level
	Pass bool `json:"pass"`
}

// Assessment is a contrast ratio checked against every WCAG level.
type Assessment struct {
	Foreground string        `json:"foreground"`
	Background string        `json:"background"`
	Ratio      float64       `json:"ratio"`
	Levels     []LevelResult `json:"levels"`
}

// Assess computes the contrast between fg and bg, both "#RRGGBB".
func Assess(fg, bg string) (Assessment, error) {
	ratio, ok := ContrastRatio(fg, bg)
	if !ok {
		return Assessment{}, fmt.Errorf("colors must be #RRGGBB, got %q and %q", fg, bg)
	}
	a := Assessment{Foreground: fg, Background: bg, Ratio: ratio}
	for _, l := range Levels {
		a.Levels = append(a.Levels, LevelResult{Level: l, Pass: ratio >= l.MinRatio})
	}
	return a, nil
}
