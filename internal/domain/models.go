package domain

// Kind selects the label and colour of an index entry
type Kind int

const (
	KindModule Kind = iota
	KindConstant
	KindType
	KindTrait
	KindMethod
	KindField
	KindConstructor
)

// Color is the presentation colour of a kind label
type Color string

const (
	ColorNone   Color = ""
	ColorPurple Color = "purple"
	ColorGreen  Color = "green"
	ColorYellow Color = "yellow"
	ColorBlue   Color = "blue"
)

// IndexEntry is one searchable documentation item as stored in the search index
type IndexEntry struct {
	Name  string `json:"name"`
	Scope string `json:"scope"` // dotted namespace prefix, may be empty
	Kind  Kind   `json:"kind"`
	Link  string `json:"link"` // relative to the site root
	Desc  string `json:"desc"` // pre-rendered HTML
}

// QualifiedName returns the scope-qualified name shown to the user
func (e IndexEntry) QualifiedName() string {
	if len(e.Scope) > 0 {
		return e.Scope + "." + e.Name
	}
	return e.Name
}
