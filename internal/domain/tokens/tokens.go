// Package tokens turns a design profile into front-end artifacts: CSS custom
// properties, font imports and a Tailwind theme extension.
package tokens

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/openkraft/tokenkraft/internal/domain"
)

// ErrMissingName is returned when the profile has no meta.name.
var ErrMissingName = errors.New("profile is missing meta.name")

// Output file names, by format.
const (
	CSSFile      = "design-tokens.css"
	FontsFile    = "fonts.css"
	TailwindFile = "design-tokens.ts"
)

const styleNotesKey = "style-notes"

// File is one generated artifact.
type File struct {
	Format  string `json:"format"`
	Name    string `json:"name"`
	Content string `json:"content"`
}

// FileName returns the output file name for format, or "" if unknown.
func FileName(format string) string {
	switch format {
	case domain.FormatCSS:
		return CSSFile
	case domain.FormatFonts:
		return FontsFile
	case domain.FormatTailwind:
		return TailwindFile
	default:
		return ""
	}
}

// Generate renders every requested format, in the order given.
func Generate(p *domain.Profile, formats []string) ([]File, error) {
	if p.Name() == "" {
		return nil, ErrMissingName
	}
	files := make([]File, 0, len(formats))
	for _, format := range formats {
		var (
			content string
			err     error
		)
		switch format {
		case domain.FormatCSS:
			content, err = GenerateCSS(p)
		case domain.FormatFonts:
			content, err = GenerateFonts(p)
		case domain.FormatTailwind:
			content, err = GenerateTailwind(p)
		default:
			return nil, fmt.Errorf("unknown token format %q", format)
		}
		if err != nil {
			return nil, err
		}
		files = append(files, File{Format: format, Name: FileName(format), Content: content})
	}
	return files, nil
}

// GenerateCSS renders the :root custom property block.
func GenerateCSS(p *domain.Profile) (string, error) {
	if p.Name() == "" {
		return "", ErrMissingName
	}

	w := &lineWriter{}
	w.line("/* Generated from: %s */", filepath.Base(p.Source))
	w.line("/* Profile: %s */", p.Name())
	if mood, ok := domain.LookupOK(p.Root, "meta", "mood"); ok {
		w.line("/* Mood: %s */", domain.DisplayValue(mood))
	}
	w.blank()
	w.line(":root {")

	if colors := p.Section("colors"); domain.Truthy(colors) {
		w.line("  /* --- Colors --- */")
		flattenColors(colors, "", func(path string, v any) {
			w.line("  --color-%s: %s;", path, domain.DisplayValue(v))
		})
		w.blank()
	}

	fonts := domain.Lookup(p.Root, "typography", "fonts")
	if domain.Truthy(fonts) {
		w.line("  /* --- Fonts --- */")
		eachEntry(fonts, func(role string, font any) {
			if family := domain.Lookup(font, "family"); domain.Truthy(family) {
				w.line("  --font-%s: '%s', sans-serif;", role, domain.DisplayValue(family))
			}
		})
		w.blank()
	}

	if scale := domain.Lookup(p.Root, "typography", "scale"); domain.Truthy(scale) {
		w.line("  /* --- Type scale --- */")
		eachEntry(scale, func(level string, props any) {
			eachEntry(props, func(prop string, v any) {
				if v == nil || v == "" {
					return
				}
				w.line("  --text-%s-%s: %s;", level, kebab(prop), domain.DisplayValue(v))
			})
		})
		w.blank()
	}

	if spacing := p.Section("spacing"); domain.Truthy(spacing) {
		w.line("  /* --- Spacing --- */")
		eachEntry(spacing, func(key string, v any) {
			w.line("  --spacing-%s: %s;", kebab(key), domain.DisplayValue(v))
		})
		w.blank()
	}

	if radius := domain.Lookup(p.Root, "borders", "radius"); domain.Truthy(radius) {
		w.line("  /* --- Border radius --- */")
		eachEntry(radius, func(key string, v any) {
			w.line("  --radius-%s: %s;", key, domain.DisplayValue(v))
		})
		w.blank()
	}

	if shadows := p.Section("shadows"); domain.Truthy(shadows) {
		w.line("  /* --- Shadows --- */")
		eachEntry(shadows, func(key string, v any) {
			if key != styleNotesKey {
				w.line("  --shadow-%s: %s;", key, domain.DisplayValue(v))
			}
		})
		w.blank()
	}

	if anim := p.Section("animation"); domain.Truthy(anim) {
		w.line("  /* --- Animation --- */")
		if d := domain.Lookup(anim, "duration"); domain.Truthy(d) {
			eachEntry(d, func(key string, v any) {
				w.line("  --duration-%s: %s;", key, domain.DisplayValue(v))
			})
		}
		if e := domain.Lookup(anim, "easing"); domain.Truthy(e) {
			eachEntry(e, func(key string, v any) {
				w.line("  --easing-%s: %s;", key, domain.DisplayValue(v))
			})
		}
		w.blank()
	}

	w.line("}")
	return w.String(), nil
}

// GenerateFonts renders one @import per font role that declares an import URL.
func GenerateFonts(p *domain.Profile) (string, error) {
	if p.Name() == "" {
		return "", ErrMissingName
	}

	w := &lineWriter{}
	w.line("/* Font imports generated from: %s */", filepath.Base(p.Source))
	w.blank()
	eachEntry(domain.Lookup(p.Root, "typography", "fonts"), func(role string, font any) {
		if url := domain.Lookup(font, "import"); domain.Truthy(url) {
			w.line("/* %s */", role)
			w.line("@import url('%s');", domain.DisplayValue(url))
			w.blank()
		}
	})
	return w.String(), nil
}

// GenerateTailwind renders a TypeScript module exporting the theme extension.
func GenerateTailwind(p *domain.Profile) (string, error) {
	if p.Name() == "" {
		return "", ErrMissingName
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(TailwindExtend(p)); err != nil {
		return "", fmt.Errorf("encoding tailwind tokens: %w", err)
	}

	w := &lineWriter{}
	w.line("// Generated from: %s", filepath.Base(p.Source))
	w.line("// Profile: %s", p.Name())
	if mood, ok := domain.LookupOK(p.Root, "meta", "mood"); ok {
		w.line("// Mood: %s", domain.DisplayValue(mood))
	}
	w.line("//")
	w.line("// Spread into tailwind.config.ts under theme.extend,")
	w.line("// or import it as a separate module.")
	w.blank()
	w.line("export const designTokens = %s as const;", strings.TrimRight(buf.String(), "\n"))
	w.blank()
	w.line("// Usage in tailwind.config.ts:")
	w.line("// import { designTokens } from './src/styles/design-tokens'")
	w.line("// export default { theme: { extend: designTokens } }")
	return w.String(), nil
}

// TailwindExtend builds the theme.extend object, keys in document order.
func TailwindExtend(p *domain.Profile) *domain.Mapping {
	extend := domain.NewMapping()

	if colors := p.Section("colors"); domain.Truthy(colors) {
		groups := domain.NewMapping()
		eachEntry(colors, func(group string, values any) {
			if !isContainer(values) {
				return
			}
			shades := domain.NewMapping()
			eachEntry(values, shades.Set)
			groups.Set(group, shades)
		})
		extend.Set("colors", groups)
	}

	if fonts := domain.Lookup(p.Root, "typography", "fonts"); domain.Truthy(fonts) {
		families := domain.NewMapping()
		eachEntry(fonts, func(role string, font any) {
			if family := domain.Lookup(font, "family"); domain.Truthy(family) {
				families.Set(role, []any{"'" + domain.DisplayValue(family) + "'", "sans-serif"})
			}
		})
		extend.Set("fontFamily", families)
	}

	if radius := domain.Lookup(p.Root, "borders", "radius"); domain.Truthy(radius) {
		extend.Set("borderRadius", copyEntries(radius, ""))
	}

	if shadows := p.Section("shadows"); domain.Truthy(shadows) {
		extend.Set("boxShadow", copyEntries(shadows, styleNotesKey))
	}

	if spacing := p.Section("spacing"); domain.Truthy(spacing) {
		widths := domain.NewMapping()
		if v := domain.Lookup(spacing, "content-max-width"); domain.Truthy(v) {
			widths.Set("content", v)
		}
		if v := domain.Lookup(spacing, "content-narrow"); domain.Truthy(v) {
			widths.Set("content-narrow", v)
		}
		extend.Set("maxWidth", widths)
	}

	if anim := p.Section("animation"); domain.Truthy(anim) {
		if d := domain.Lookup(anim, "duration"); domain.Truthy(d) {
			extend.Set("transitionDuration", copyEntries(d, ""))
		}
		if e := domain.Lookup(anim, "easing"); domain.Truthy(e) {
			extend.Set("transitionTimingFunction", copyEntries(e, ""))
		}
	}

	return extend
}

// Note is a style note attached to some part of the profile.
type Note struct {
	Source string `json:"source"`
	Text   string `json:"text"`
}

// StyleNotes collects the free-text style notes a designer left in the profile.
func StyleNotes(p *domain.Profile) []Note {
	var notes []Note
	add := func(source string, v any) {
		if domain.Truthy(v) {
			notes = append(notes, Note{Source: source, Text: domain.DisplayValue(v)})
		}
	}
	add("Borders", domain.Lookup(p.Root, "borders", styleNotesKey))
	add("Shadows", domain.Lookup(p.Root, "shadows", styleNotesKey))
	add("Animation", domain.Lookup(p.Root, "animation", styleNotesKey))
	eachEntry(p.Section("component-guidelines"), func(comp string, v any) {
		add("Component: "+comp, domain.Lookup(v, styleNotesKey))
	})
	return notes
}

// eachEntry visits the entries of a mapping in document order, or of a
// sequence by index. Scalars have no entries.
func eachEntry(v any, fn func(key string, val any)) {
	switch t := v.(type) {
	case *domain.Mapping:
		for _, k := range t.Keys() {
			val, _ := t.Get(k)
			fn(k, val)
		}
	case []any:
		for i, val := range t {
			fn(strconv.Itoa(i), val)
		}
	}
}

func isContainer(v any) bool {
	switch v.(type) {
	case *domain.Mapping, []any:
		return true
	default:
		return false
	}
}

func copyEntries(v any, skip string) *domain.Mapping {
	out := domain.NewMapping()
	eachEntry(v, func(k string, val any) {
		if k != skip || skip == "" {
			out.Set(k, val)
		}
	})
	return out
}

// flattenColors walks nested color groups, joining keys with hyphens.
func flattenColors(v any, prefix string, fn func(path string, val any)) {
	eachEntry(v, func(k string, val any) {
		path := k
		if prefix != "" {
			path = prefix + "-" + k
		}
		if isContainer(val) {
			flattenColors(val, path, fn)
			return
		}
		fn(path, val)
	})
}

type lineWriter struct {
	b strings.Builder
}

func (w *lineWriter) line(format string, args ...any) {
	fmt.Fprintf(&w.b, format, args...)
	w.b.WriteByte('\n')
}

func (w *lineWriter) blank() { w.b.WriteByte('\n') }

func (w *lineWriter) String() string { return w.b.String() }
