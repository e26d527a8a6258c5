package rules

import (
	"strings"
	"unicode/utf8"

	"github.com/openkraft/tokenkraft/internal/domain"
	"github.com/openkraft/tokenkraft/internal/domain/color"
)

func (v *Validator) checkSections() {
	for _, name := range requiredSections {
		if !domain.Truthy(v.profile.Section(name)) {
			v.errorf(name, "missing required section '%s'", name)
		}
	}
}

func (v *Validator) checkMeta() {
	meta := v.profile.Section("meta")
	if !domain.Truthy(meta) {
		return
	}

	v.requireKeys(meta, "meta", requiredMeta, domain.SeverityError, truthy)
	v.requireKeys(meta, "meta", recommendedMeta, domain.SeverityWarning, truthy)

	if mood, ok := domain.Lookup(meta, "mood").(string); ok && mood != "" && utf8.RuneCountInString(mood) < minMoodLength {
		v.warnf("meta.mood", "meta.mood is very short (%q); describe the intended feel in more detail", mood)
	}
}

func (v *Validator) checkColors() {
	colors := v.profile.Section("colors")
	if !domain.Truthy(colors) {
		return
	}

	for _, group := range requiredColors {
		groupPath := joinPath("colors", group.Name)
		shades := domain.Lookup(colors, group.Name)
		if !domain.Truthy(shades) {
			v.errorf(groupPath, "missing color group %s", groupPath)
			continue
		}
		for _, key := range group.Keys {
			path := joinPath(groupPath, key)
			val := domain.Lookup(shades, key)
			if !domain.Truthy(val) {
				v.errorf(path, "missing color %s", path)
				continue
			}
			if s, ok := val.(string); !ok || !color.IsHex(s) {
				v.errorf(path, "invalid hex color %s = %q (expected #RRGGBB)", path, domain.DisplayValue(val))
			}
		}
	}
}

func (v *Validator) checkContrast() {
	colors := v.profile.Section("colors")
	if !domain.Truthy(domain.Lookup(colors, "text", "primary")) ||
		!domain.Truthy(domain.Lookup(colors, "background", "primary")) {
		return
	}

	for _, pair := range contrastPairs {
		fg, bg := domain.Lookup(colors, pair.Foreground...), domain.Lookup(colors, pair.Background...)
		if !domain.Truthy(fg) || !domain.Truthy(bg) {
			continue
		}
		fgHex, fgOK := fg.(string)
		bgHex, bgOK := bg.(string)
		if !fgOK || !bgOK {
			continue
		}
		ratio, ok := color.ContrastRatio(fgHex, bgHex)
		if !ok {
			continue
		}

		switch {
		case ratio < pair.MinRatio:
			v.errorf(pair.Label, "poor contrast: %s = %.2f:1 (minimum %s:1)",
				pair.Label, ratio, domain.FormatNumber(pair.MinRatio))
		case ratio < pair.MinRatio*marginFactor:
			v.warnf(pair.Label, "marginal contrast: %s = %.2f:1 (minimum %s:1)",
				pair.Label, ratio, domain.FormatNumber(pair.MinRatio))
		}
	}
}

func (v *Validator) checkTypography() {
	typo := v.profile.Section("typography")
	if !domain.Truthy(typo) {
		return
	}

	v.requireKeys(domain.Lookup(typo, "fonts"), "typography.fonts", requiredFonts, domain.SeverityError, truthy)

	if scale := domain.Lookup(typo, "scale"); domain.Truthy(scale) {
		v.requireKeys(scale, "typography.scale", requiredScale, domain.SeverityWarning, truthy)
	} else {
		v.errorf("typography.scale", "missing typography.scale")
	}

	if weights := domain.Lookup(typo, "weights"); !domain.Truthy(weights) || domain.EntryCount(weights) == 0 {
		v.warnf("typography.weights", "typography.weights is empty; define at least 'regular' and 'bold'")
	}

	if lh := domain.Lookup(typo, "line-heights"); domain.Truthy(lh) {
		v.requireKeys(lh, "typography.line-heights", requiredLineHeights, domain.SeverityWarning, truthy)
	} else {
		v.warnf("typography.line-heights", "missing typography.line-heights")
	}
}

func (v *Validator) checkSpacing() {
	spacing := v.profile.Section("spacing")
	if !domain.Truthy(spacing) {
		return
	}
	v.requireKeys(spacing, "spacing", requiredSpacing, domain.SeverityError, truthy)
}

func (v *Validator) checkBorders() {
	borders := v.profile.Section("borders")
	if !domain.Truthy(borders) {
		return
	}

	if radius := domain.Lookup(borders, "radius"); domain.Truthy(radius) {
		v.requireKeys(radius, "borders.radius", requiredRadius, domain.SeverityError, defined)
	} else {
		v.errorf("borders.radius", "missing borders.radius")
	}

	// An absent width subsection is not reported, unlike radius.
	if width := domain.Lookup(borders, "width"); domain.Truthy(width) {
		v.requireKeys(width, "borders.width", requiredWidths, domain.SeverityWarning, truthy)
	}
}

func (v *Validator) checkShadows() {
	shadows := v.profile.Section("shadows")
	if !domain.Truthy(shadows) {
		return
	}
	v.requireKeys(shadows, "shadows", requiredShadows, domain.SeverityWarning, defined)
}

func (v *Validator) checkAnimation() {
	anim := v.profile.Section("animation")
	if !domain.Truthy(anim) {
		return
	}

	if d := domain.Lookup(anim, "duration"); domain.Truthy(d) {
		v.requireKeys(d, "animation.duration", requiredDurations, domain.SeverityWarning, truthy)
	} else {
		v.warnf("animation.duration", "missing animation.duration")
	}

	if e := domain.Lookup(anim, "easing"); domain.Truthy(e) {
		v.requireKeys(e, "animation.easing", requiredEasings, domain.SeverityWarning, truthy)
	} else {
		v.warnf("animation.easing", "missing animation.easing")
	}
}

func (v *Validator) checkComponentGuidelines() {
	cg := v.profile.Section(guidelinesSection)
	if !domain.Truthy(cg) {
		v.infof(guidelinesSection, "no component-guidelines found; optional but strongly recommended")
		return
	}

	for _, comp := range recommendedComponents {
		path := joinPath(guidelinesSection, comp)
		entry := domain.Lookup(cg, comp)
		switch {
		case !domain.Truthy(entry):
			v.infof(path, "missing %s (recommended)", path)
		case !domain.Truthy(domain.Lookup(entry, "style-notes")):
			v.infof(path, "%s has no style-notes; add them for better results", path)
		}
	}
}

func (v *Validator) checkConsistency() {
	radius := domain.Lookup(v.root(), "borders", "radius")
	square := true
	for _, key := range brutalistRadiusKeys {
		if s, ok := domain.Lookup(radius, key).(string); !ok || s != brutalistRadius {
			square = false
			break
		}
	}
	if square {
		// The hard-shadow expectation for this style is not enforced.
		v.infof("borders.radius", "all radius values are 0; brutalist style detected")
	}

	mood, _ := domain.Lookup(v.root(), "meta", "mood").(string)
	mood = strings.ToLower(mood)
	if !containsAny(mood, rawMoodTerms) {
		return
	}
	if easing, ok := domain.Lookup(v.root(), "animation", "easing", "default").(string); ok && strings.Contains(easing, "cubic-bezier") {
		v.infof("animation.easing.default", "mood is raw/brutal but easing is cubic-bezier; consider 'linear' for a rawer feel")
	}
}

func containsAny(s string, terms []string) bool {
	for _, t := range terms {
		if strings.Contains(s, t) {
			return true
		}
	}
	return false
}
