package palette

// Palette is the color scheme of one aquarium. Values are CSS hex colors so
// they embed directly into markup and lipgloss styles.
type Palette struct {
	Name    string `yaml:"name"`
	Fish1   string `yaml:"fish1"`
	Fish2   string `yaml:"fish2"`
	Fish3   string `yaml:"fish3"`
	Bubble  string `yaml:"bubble"`
	Seaweed string `yaml:"seaweed"`
	Coral   string `yaml:"coral"`
	Wave    string `yaml:"wave"`
}

// Available palettes
var (
	Reef = Palette{
		Name:    "reef",
		Fish1:   "#ff7373", // Orange-red
		Fish2:   "#ade6f7", // Light blue
		Fish3:   "#ff799f", // Pink
		Bubble:  "#ade6f7",
		Seaweed: "#c8d665", // Green-yellow
		Coral:   "#d6d1b3", // Beige
		Wave:    "#ade6f7",
	}

	Abyss = Palette{
		Name:    "abyss",
		Fish1:   "#ffb347",
		Fish2:   "#7fdbff",
		Fish3:   "#c39bff",
		Bubble:  "#4f86c6",
		Seaweed: "#2e8b57",
		Coral:   "#8b6b8c",
		Wave:    "#1f3a5f",
	}

	Lagoon = Palette{
		Name:    "lagoon",
		Fish1:   "#ff6b6b",
		Fish2:   "#feca57",
		Fish3:   "#ff9ff3",
		Bubble:  "#e0f0ff",
		Seaweed: "#5fd068",
		Coral:   "#ffc048",
		Wave:    "#00a8cc",
	}

	Mono = Palette{
		Name:    "mono",
		Fish1:   "#ffffff",
		Fish2:   "#cccccc",
		Fish3:   "#aaaaaa",
		Bubble:  "#888888",
		Seaweed: "#999999",
		Coral:   "#666666",
		Wave:    "#444444",
	}

	Default = Reef

	All = []Palette{Reef, Abyss, Lagoon, Mono}
)

// Lookup returns the palette with the given name.
func Lookup(name string) (Palette, bool) {
	for _, p := range All {
		if p.Name == name {
			return p, true
		}
	}
	return Palette{}, false
}

// Get returns a palette by name, falling back to Default.
func Get(name string) Palette {
	if p, ok := Lookup(name); ok {
		return p
	}
	return Default
}

// Names returns the palette names in display order.
func Names() []string {
	names := make([]string, len(All))
	for i, p := range All {
		names[i] = p.Name
	}
	return names
}

// Merge fills every empty field of override from base.
func Merge(base, override Palette) Palette {
	out := base
	if override.Name != "" {
		out.Name = override.Name
	}
	pick := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	pick(&out.Fish1, override.Fish1)
	pick(&out.Fish2, override.Fish2)
	pick(&out.Fish3, override.Fish3)
	pick(&out.Bubble, override.Bubble)
	pick(&out.Seaweed, override.Seaweed)
	pick(&out.Coral, override.Coral)
	pick(&out.Wave, override.Wave)
	return out
}
