package theme

// Palette is the set of colors for one effective theme, as hex strings.
type Palette struct {
	Background string
	Surface    string
	Text       string
	Subtitle   string
	Primary    string
	Danger     string
}

var palettes = map[Effective]Palette{
	Light: {
		Background: "#f8fafc",
		Surface:    "#ffffff",
		Text:       "#0f172a",
		Subtitle:   "#475569",
		Primary:    "#22c55e",
		Danger:     "#ef4444",
	},
	Dark: {
		Background: "#0f172a",
		Surface:    "#111827",
		Text:       "#f8fafc",
		Subtitle:   "#cbd5e1",
		Primary:    "#22c55e",
		Danger:     "#fca5a5",
	},
}

// PaletteFor returns the colors of e; unknown values get the light palette.
func PaletteFor(e Effective) Palette {
	if p, ok := palettes[e]; ok {
		return p
	}
	return palettes[Light]
}
