package models

// ThemeColor is the closed set of brand colors the panel supports.
type ThemeColor string

const (
	ThemeIndigo  ThemeColor = "indigo"
	ThemeBlue    ThemeColor = "blue"
	ThemeRose    ThemeColor = "rose"
	ThemeEmerald ThemeColor = "emerald"
	ThemeAmber   ThemeColor = "amber"
	ThemeSlate   ThemeColor = "slate"
)

// ThemeColors lists every supported color in display order.
func ThemeColors() []ThemeColor {
	return []ThemeColor{ThemeIndigo, ThemeBlue, ThemeRose, ThemeEmerald, ThemeAmber, ThemeSlate}
}

// Valid reports whether the color is a member of the closed set.
func (t ThemeColor) Valid() bool {
	switch t {
	case ThemeIndigo, ThemeBlue, ThemeRose, ThemeEmerald, ThemeAmber, ThemeSlate:
		return true
	default:
		return false
	}
}

// ThemePalette holds the style tokens a theme resolves to.
type ThemePalette struct {
	Bg     string `json:"bg"`
	Text   string `json:"text"`
	Light  string `json:"light"`
	Ring   string `json:"ring"`
	Border string `json:"border"`
}

// Palette resolves a theme color through an exhaustive match. Every
// member of the closed set resolves; anything else falls back to the
// indigo palette so display code never sees a hole.
func (t ThemeColor) Palette() ThemePalette {
	switch t {
	case ThemeBlue:
		return ThemePalette{Bg: "bg-blue-600", Text: "text-blue-600", Light: "bg-blue-50", Ring: "ring-blue-500", Border: "border-blue-100"}
	case ThemeRose:
		return ThemePalette{Bg: "bg-rose-600", Text: "text-rose-600", Light: "bg-rose-50", Ring: "ring-rose-500", Border: "border-rose-100"}
	case ThemeEmerald:
		return ThemePalette{Bg: "bg-emerald-600", Text: "text-emerald-600", Light: "bg-emerald-50", Ring: "ring-emerald-500", Border: "border-emerald-100"}
	case ThemeAmber:
		return ThemePalette{Bg: "bg-amber-600", Text: "text-amber-600", Light: "bg-amber-50", Ring: "ring-amber-500", Border: "border-amber-100"}
	case ThemeSlate:
		return ThemePalette{Bg: "bg-slate-800", Text: "text-slate-800", Light: "bg-slate-50", Ring: "ring-slate-500", Border: "border-slate-200"}
	case ThemeIndigo:
		fallthrough
	default:
		return ThemePalette{Bg: "bg-indigo-600", Text: "text-indigo-600", Light: "bg-indigo-50", Ring: "ring-indigo-500", Border: "border-indigo-100"}
	}
}
