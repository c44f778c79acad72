package tui

import (
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

// Theme bundles the semantic styles widgets draw with. Applications tweak
// individual fields or load a palette from a YAML file.
type Theme struct {
	Base      tcell.Style // default text
	Focused   tcell.Style // widget holding keyboard focus
	Disabled  tcell.Style // non-interactive widget
	Selection tcell.Style // selected list row / active tab
	Border    tcell.Style
	Title     tcell.Style
	Accent    tcell.Style // spinners, progress fill
	Hint      tcell.Style // keyboard hints, placeholders
	Error     tcell.Style
}

// DefaultTheme returns a dark palette matching the rest of the toolkit.
func DefaultTheme() Theme {
	bg := tcell.NewRGBColor(20, 20, 30)
	fg := tcell.NewRGBColor(200, 200, 200)
	base := tcell.StyleDefault.Foreground(fg).Background(bg)

	return Theme{
		Base:      base,
		Focused:   base.Foreground(tcell.NewRGBColor(255, 255, 255)).Background(tcell.NewRGBColor(60, 80, 120)),
		Disabled:  base.Foreground(Dim(fg, 0.5)),
		Selection: base.Reverse(true),
		Border:    base.Foreground(tcell.NewRGBColor(80, 100, 140)),
		Title:     base.Foreground(tcell.NewRGBColor(255, 255, 255)).Bold(true),
		Accent:    base.Foreground(tcell.NewRGBColor(100, 200, 220)),
		Hint:      base.Foreground(tcell.NewRGBColor(110, 110, 125)),
		Error:     base.Foreground(tcell.NewRGBColor(255, 80, 80)),
	}
}

// Blend mixes two colors in RGB space; t=0 yields a, t=1 yields b.
func Blend(a, b tcell.Color, t float64) tcell.Color {
	ca := toColorful(a)
	cb := toColorful(b)
	return fromColorful(ca.BlendRgb(cb, t))
}

// Dim darkens a color toward black by the given amount (0 = unchanged,
// 1 = black).
func Dim(c tcell.Color, amount float64) tcell.Color {
	return Blend(c, tcell.ColorBlack, amount)
}

func toColorful(c tcell.Color) colorful.Color {
	r, g, b := c.TrueColor().RGB()
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}

func fromColorful(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// themeFile is the YAML palette format: hex colors, all fields optional.
type themeFile struct {
	Fg        string `yaml:"fg"`
	Bg        string `yaml:"bg"`
	FocusFg   string `yaml:"focus_fg"`
	FocusBg   string `yaml:"focus_bg"`
	Border    string `yaml:"border"`
	Accent    string `yaml:"accent"`
	Hint      string `yaml:"hint"`
	Error     string `yaml:"error"`
	Selection string `yaml:"selection"`
}

// LoadTheme reads a palette from a YAML file of hex colors and overlays it
// on the default theme. Unset fields keep their defaults; a malformed hex
// value is an error.
func LoadTheme(path string) (Theme, error) {
	th := DefaultTheme()
	data, err := os.ReadFile(path)
	if err != nil {
		return th, fmt.Errorf("theme: %w", err)
	}
	var tf themeFile
	if err := yaml.Unmarshal(data, &tf); err != nil {
		return th, fmt.Errorf("theme: parse %s: %w", path, err)
	}

	parse := func(hex string) (tcell.Color, error) {
		c, err := colorful.Hex(hex)
		if err != nil {
			return 0, fmt.Errorf("theme: %s: bad color %q", path, hex)
		}
		return fromColorful(c), nil
	}

	var fg, bg tcell.Color
	haveFg, haveBg := false, false
	if tf.Fg != "" {
		if fg, err = parse(tf.Fg); err != nil {
			return th, err
		}
		haveFg = true
	}
	if tf.Bg != "" {
		if bg, err = parse(tf.Bg); err != nil {
			return th, err
		}
		haveBg = true
	}

	apply := func(s tcell.Style) tcell.Style {
		if haveFg {
			s = s.Foreground(fg)
		}
		if haveBg {
			s = s.Background(bg)
		}
		return s
	}
	th.Base = apply(th.Base)
	th.Title = th.Base.Bold(true)
	if haveFg {
		th.Disabled = th.Base.Foreground(Dim(fg, 0.5))
		th.Selection = th.Base.Reverse(true)
	}

	set := func(dst *tcell.Style, hex string, fgColor bool) error {
		if hex == "" {
			return nil
		}
		c, err := parse(hex)
		if err != nil {
			return err
		}
		if fgColor {
			*dst = dst.Foreground(c)
		} else {
			*dst = dst.Background(c)
		}
		return nil
	}

	th.Focused = th.Base
	if err := set(&th.Focused, tf.FocusFg, true); err != nil {
		return th, err
	}
	if err := set(&th.Focused, tf.FocusBg, false); err != nil {
		return th, err
	}
	if err := set(&th.Border, tf.Border, true); err != nil {
		return th, err
	}
	if err := set(&th.Accent, tf.Accent, true); err != nil {
		return th, err
	}
	if err := set(&th.Hint, tf.Hint, true); err != nil {
		return th, err
	}
	if err := set(&th.Error, tf.Error, true); err != nil {
		return th, err
	}
	if err := set(&th.Selection, tf.Selection, false); err != nil {
		return th, err
	}
	return th, nil
}
