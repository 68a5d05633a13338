package styles

// HighContrastTheme maximizes legibility on washed-out terminals.
var HighContrastTheme = Theme{
	Name: "high-contrast",
	Tokens: ThemeTokens{
		Background: "#000000",
		Panel:      "#000000",
		Text:       "#FFFFFF",
		TextMuted:  "#C0C0C0",
		Border:     "#FFFFFF",
		Accent:     "#00FFFF",
		Focus:      "#FFFF00",
		SpeakerA:   "#00FF00",
		SpeakerB:   "#FFA500",
		Warning:    "#FFFF00",
		Error:      "#FF0000",
	},
}
