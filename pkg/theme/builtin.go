package theme

// thRegisterBuiltins registers the two built-in palettes.
func thRegisterBuiltins() {
	for _, p := range []Palette{
		thLightPalette(),
		thDarkPalette(),
	} {
		Register(p)
	}
}

// thLightPalette is the paper-white default.
func thLightPalette() Palette {
	return Palette{
		Name: "light",
		Mode: Light,

		Background: "#fdfdfd",
		Foreground: "#24292f",
		Dim:        "#6e7781",
		Accent:     "#0969da",

		Border:      "#d0d7de",
		BorderFocus: "#0969da",
		Heading:     "#1f2328",

		GaugeFilled: "#0969da",
		GaugeEmpty:  "#d0d7de",

		Highlight: "#ddf4ff",
	}
}

// thDarkPalette is the dimmed slate counterpart.
func thDarkPalette() Palette {
	return Palette{
		Name: "dark",
		Mode: Dark,

		Background: "#0d1117",
		Foreground: "#e6edf3",
		Dim:        "#848d97",
		Accent:     "#58a6ff",

		Border:      "#30363d",
		BorderFocus: "#58a6ff",
		Heading:     "#f0f6fc",

		GaugeFilled: "#58a6ff",
		GaugeEmpty:  "#30363d",

		Highlight: "#1f3a5f",
	}
}
