package sprite

import "github.com/san-kum/aquarium/internal/palette"

// Definition is an immutable sprite template.
type Definition struct {
	Name  string
	Lines []string
	Color string
	// Weight is the relative selection mass; values <= 0 count as 1.
	Weight float64
	// ForceDirection pins travel to +1 (right) or -1 (left); 0 leaves it free.
	ForceDirection int
	// NoMirror keeps the rightward look when swimming left.
	NoMirror bool
}

// Mass returns the effective selection weight.
func (d Definition) Mass() float64 {
	if d.Weight <= 0 {
		return 1
	}
	return d.Weight
}

// Forced reports whether the sprite has a fixed travel direction.
func (d Definition) Forced() bool { return d.ForceDirection != 0 }

// Shapes returns the rightward and leftward normalized variants.
func (d Definition) Shapes() (right, left Shape) {
	right = Normalize(d.Lines)
	if d.NoMirror {
		return right, right
	}
	return right, right.Mirrored()
}

// Catalog builds the fish catalog colored with p.
func Catalog(p palette.Palette) []Definition {
	return []Definition{
		// Small fish
		{Name: "long-red", Lines: []string{"><(((ยบ>"}, Color: p.Fish1, Weight: 14},
		{Name: "long-blue", Lines: []string{"><(((ยบ>"}, Color: p.Fish2, Weight: 10},
		{Name: "long-pink", Lines: []string{"><(((ยบ>"}, Color: p.Fish3, Weight: 10},
		{Name: "tiny-blue", Lines: []string{"><>"}, Color: p.Fish2, Weight: 16},
		{Name: "tiny-red", Lines: []string{"><>"}, Color: p.Fish1, Weight: 10},
		{Name: "tiny-pink", Lines: []string{"><>"}, Color: p.Fish3, Weight: 10},

		// Multi-line creatures
		{
			Name: "shark",
			Lines: []string{
				"      .",
				"\\_____)\\_____ ",
				"/--v____ __`< ",
				"        )/",
			},
			Color:          p.Fish2,
			Weight:         2,
			ForceDirection: 1,
		},
		{
			Name: "angelfish",
			Lines: []string{
				"   _\\_  ",
				"\\\\/ o \\ .",
				"//\\___= ",
				"   ''   ",
			},
			Color:  p.Fish3,
			Weight: 3,
		},
		{
			Name: "duck-red",
			Lines: []string{
				",,",
				">(')",
				"''",
			},
			Color:  p.Fish1,
			Weight: 3,
		},
		{
			Name: "duck-blue",
			Lines: []string{
				",-,",
				"('_)< ",
				"`-`",
			},
			Color:          p.Fish2,
			Weight:         3,
			NoMirror:       true,
			ForceDirection: 1,
		},
		{
			Name: "minnow",
			Lines: []string{
				", ",
				"<>< ",
				"` ",
			},
			Color:  p.Fish3,
			Weight: 3,
		},
		{
			Name: "squid",
			Lines: []string{
				"/",
				",'`./ ",
				"`.,'\\ ",
				"\\",
			},
			Color:          p.Fish1,
			Weight:         2,
			NoMirror:       true,
			ForceDirection: 1,
		},
		{
			Name: "crab",
			Lines: []string{
				"_\\_\\/",
				"-( / )-",
			},
			Color:          p.Coral,
			Weight:         2,
			NoMirror:       true,
			ForceDirection: 1,
		},
		{
			Name: "school",
			Lines: []string{
				"@ . .@. ",
				". .:@ ..: .:. ",
				":. @:: .:. ",
				"':::.:' ",
				"':': ",
			},
			Color:  p.Seaweed,
			Weight: 1,
		},
	}
}
