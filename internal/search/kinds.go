package search

import "docsearch/internal/domain"

// Label is the rendered tag for an entry kind
type Label struct {
	Text  string
	Color domain.Color
}

var kinds = [...]Label{
	domain.KindModule:      {Text: "Module", Color: domain.ColorPurple},
	domain.KindConstant:    {Text: "Constant", Color: domain.ColorGreen},
	domain.KindType:        {Text: "Type", Color: domain.ColorYellow},
	domain.KindTrait:       {Text: "Trait", Color: domain.ColorYellow},
	domain.KindMethod:      {Text: "Method", Color: domain.ColorBlue},
	domain.KindField:       {Text: "Field", Color: domain.ColorGreen},
	domain.KindConstructor: {Text: "Constructor", Color: domain.ColorBlue},
}

// Unknown is used for kinds outside the table. A well formed index never
// produces one.
var Unknown = Label{Text: "Unknown", Color: domain.ColorNone}

// LabelFor returns the label for a kind
func LabelFor(k domain.Kind) Label {
	if k < 0 || int(k) >= len(kinds) {
		return Unknown
	}
	return kinds[k]
}
