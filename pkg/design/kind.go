package design

import "strings"

// Kind selects one of the built-in cursor designs, or the custom one.
type Kind int

const (
	KindDefault Kind = iota
	KindPointer
	KindText
	KindCrosshair
	KindWait
	KindGrab
	KindNotAllowed
	KindCustom
)

var kindNames = map[Kind]string{
	KindDefault:    "default",
	KindPointer:    "pointer",
	KindText:       "text",
	KindCrosshair:  "crosshair",
	KindWait:       "wait",
	KindGrab:       "grab",
	KindNotAllowed: "not-allowed",
	KindCustom:     "custom",
}

// kindAliases maps every accepted spelling to its Kind.
var kindAliases = map[string]Kind{
	"default":     KindDefault,
	"arrow":       KindDefault,
	"pointer":     KindPointer,
	"hand":        KindPointer,
	"text":        KindText,
	"ibeam":       KindText,
	"i-beam":      KindText,
	"crosshair":   KindCrosshair,
	"cross":       KindCrosshair,
	"wait":        KindWait,
	"loading":     KindWait,
	"busy":        KindWait,
	"grab":        KindGrab,
	"grabbing":    KindGrab,
	"not-allowed": KindNotAllowed,
	"no":          KindNotAllowed,
	"forbidden":   KindNotAllowed,
	"custom":      KindCustom,
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "default"
}

// ParseKind resolves a cursor type name. Names are case-insensitive and
// surrounding whitespace is ignored; anything unknown is the default arrow.
func ParseKind(name string) Kind {
	k, _ := LookupKind(name)
	return k
}

// LookupKind is ParseKind that also reports whether the name was known.
func LookupKind(name string) (Kind, bool) {
	k, ok := kindAliases[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return KindDefault, false
	}
	return k, true
}

// KindNames lists the canonical names of every kind.
func KindNames() []string {
	names := make([]string, 0, len(kindNames))
	for k := KindDefault; k <= KindCustom; k++ {
		names = append(names, kindNames[k])
	}
	return names
}
