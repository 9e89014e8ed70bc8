package theme

import (
	"strings"

	"github.com/umputun/shade/app/enum"
)

// style custom properties set on the root scope
const (
	VarPrimaryColor     = "--primary-color"
	VarBackgroundColor  = "--background-color"
	VarTextColor        = "--text-color"
	VarTableHeaderColor = "--table-header-color"
	VarLinkColor        = "--link-color"
	VarLinkHoverColor   = "--link--hover-color"
)

// MarkerClass is the class carried by the page body while dark mode is active.
const MarkerClass = "dark-mode"

// ToggleID is the element id of the toggle control.
const ToggleID = "theme-toggle"

// Var is a single style custom property.
type Var struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Styles is one complete row of the palette: everything a sink needs to render a mode.
type Styles struct {
	Mode       enum.ThemeMode
	Dark       bool
	ToggleText string
	Vars       []Var
}

// varNames lists the variables in the order palette rows carry their values.
var varNames = [...]string{VarPrimaryColor, VarBackgroundColor, VarTextColor, VarTableHeaderColor, VarLinkColor, VarLinkHoverColor}

type row struct {
	toggleText string
	values     [len(varNames)]string
}

var palette = map[enum.ThemeMode]row{
	enum.ThemeModeDark:  {toggleText: "Switch to Light Mode", values: [...]string{"#fff", "#333", "#fff", "#333", "#fff", "#eee"}},
	enum.ThemeModeLight: {toggleText: "Switch to Dark Mode", values: [...]string{"#333", "#f9f9f9", "#333", "#f2f2f2", "#660000", "#550000"}},
}

// Palette returns the styles for the given mode. Unknown modes get the light row.
// Every call returns a fresh Vars slice.
func Palette(mode enum.ThemeMode) Styles {
	if mode != enum.ThemeModeDark {
		mode = enum.ThemeModeLight
	}
	r := palette[mode]
	vars := make([]Var, len(varNames))
	for i, name := range varNames {
		vars[i] = Var{Name: name, Value: r.values[i]}
	}
	return Styles{Mode: mode, Dark: mode.Dark(), ToggleText: r.toggleText, Vars: vars}
}

// Get returns the value of the named variable and false if it is not set.
func (s Styles) Get(name string) (string, bool) {
	for _, v := range s.Vars {
		if v.Name == name {
			return v.Value, true
		}
	}
	return "", false
}

// VarMap returns variables keyed by name.
func (s Styles) VarMap() map[string]string {
	res := make(map[string]string, len(s.Vars))
	for _, v := range s.Vars {
		res[v.Name] = v.Value
	}
	return res
}

// Declarations renders variables as inline declarations, e.g. for a style attribute.
func (s Styles) Declarations() string {
	parts := make([]string, 0, len(s.Vars))
	for _, v := range s.Vars {
		parts = append(parts, v.Name+": "+v.Value+";")
	}
	return strings.Join(parts, " ")
}

// CSS renders variables as a :root stylesheet.
func (s Styles) CSS() string {
	var b strings.Builder
	b.WriteString(":root {\n")
	for _, v := range s.Vars {
		b.WriteString("  " + v.Name + ": " + v.Value + ";\n")
	}
	b.WriteString("}\n")
	return b.String()
}
