/*
Package style groups the declarations of a parsed rule into CSS property
groups.

CSS knows a whole lot of properties. Consumers of a stylesheet, e.g. a layout
stage or a debug printer, usually care for a topic at a time (margins,
borders, colors), so we split properties up into organisational groups. The
mapping of properties into groups is documented with GroupNameFromPropertyKey.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package style

import (
	"fmt"
	"sort"
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"github.com/pohl/crow/dom/style/css"
)

// tracer traces with key 'crow.style'.
func tracer() tracing.Trace {
	return tracing.Select("crow.style")
}

// Property is a raw value for a CSS property. For example, with
//
//     color: black
//
// a property value of "black" is set.
type Property string

// NullStyle is an empty property value.
const NullStyle Property = ""

// PropertyOf renders a declaration value as a property.
func PropertyOf(v css.Value) Property {
	if v == nil {
		return NullStyle
	}
	return Property(v.String())
}

func (p Property) String() string {
	return string(p)
}

// IsInitial denotes if a property is of inheritence-type "initial"
func (p Property) IsInitial() bool {
	return p == "initial"
}

// IsInherit denotes if a property is of inheritence-type "inherit"
func (p Property) IsInherit() bool {
	return p == "inherit"
}

// IsEmpty checks wether a property is empty, i.e. the null-string.
func (p Property) IsEmpty() bool {
	return p == ""
}

// KeyValue is a container for a style property.
type KeyValue struct {
	Key   string
	Value Property
}

// --- CSS Property Groups ----------------------------------------------

// PropertyGroup is a collection of propertes sharing a common topic.
type PropertyGroup struct {
	name      string
	propsDict map[string]Property
}

// NewPropertyGroup creates a new empty property group, given its name.
func NewPropertyGroup(groupname string) *PropertyGroup {
	return &PropertyGroup{name: groupname}
}

// Name returns the name of the property group.
func (pg *PropertyGroup) Name() string {
	return pg.name
}

// Stringer for property groups; used for debugging.
func (pg *PropertyGroup) String() string {
	var b strings.Builder
	b.WriteString("[" + pg.name + "] =\n")
	for _, kv := range pg.Properties() {
		b.WriteString(fmt.Sprintf("  %s = %s\n", kv.Key, kv.Value))
	}
	return b.String()
}

// Properties returns all properties of a group, ordered by key.
func (pg *PropertyGroup) Properties() []KeyValue {
	r := make([]KeyValue, 0, len(pg.propsDict))
	for k, v := range pg.propsDict {
		r = append(r, KeyValue{k, v})
	}
	sort.Slice(r, func(i, j int) bool { return r[i].Key < r[j].Key })
	return r
}

// IsSet is a predicated wether a property is set within this group.
func (pg *PropertyGroup) IsSet(key string) bool {
	v, ok := pg.propsDict[key]
	return ok && !v.IsEmpty()
}

// Get a property's value.
func (pg *PropertyGroup) Get(key string) (Property, bool) {
	p, ok := pg.propsDict[key]
	return p, ok
}

// Set a property's value. Overwrites an existing value, if present.
//
// Style property values are always converted to lower case.
func (pg *PropertyGroup) Set(key string, p Property) {
	p = Property(strings.ToLower(string(p)))
	if pg.propsDict == nil {
		pg.propsDict = make(map[string]Property)
	}
	pg.propsDict[key] = p
}

// Add a property's value. Does not overwrite an existing value, i.e., does nothing
// if a value is already set.
func (pg *PropertyGroup) Add(key string, p Property) {
	if _, exists := pg.propsDict[key]; !exists {
		pg.Set(key, p)
	}
}

// GroupNameFromPropertyKey returns the style property group name for a
// style property.
// Example:
//    GroupNameFromPropertyKey("margin-top") => "Margins"
//
// Unknown style property keys will return a group name of "X".
func GroupNameFromPropertyKey(key string) string {
	groupname, found := groupNameFromPropertyKey[key]
	if !found {
		groupname = PGX
	}
	return groupname
}

// Symbolic names for string literals, denoting PropertyGroups.
const (
	PGMargins   = "Margins"
	PGPadding   = "Padding"
	PGBorder    = "Border"
	PGDimension = "Dimension"
	PGDisplay   = "Display"
	PGRegion    = "Region"
	PGColor     = "Color"
	PGText      = "Text"
	PGX         = "X"
)

var groupNameFromPropertyKey = map[string]string{
	"margin":                     PGMargins, // Margins
	"margin-top":                 PGMargins,
	"margin-left":                PGMargins,
	"margin-right":               PGMargins,
	"margin-bottom":              PGMargins,
	"padding":                    PGPadding, // Padding
	"padding-top":                PGPadding,
	"padding-left":               PGPadding,
	"padding-right":              PGPadding,
	"padding-bottom":             PGPadding,
	"border-color":               PGBorder, // Border
	"border-width":               PGBorder,
	"border-style":               PGBorder,
	"border-radius":              PGBorder,
	"border-top-color":           PGBorder,
	"border-left-color":          PGBorder,
	"border-right-color":         PGBorder,
	"border-bottom-color":        PGBorder,
	"border-top-width":           PGBorder,
	"border-left-width":          PGBorder,
	"border-right-width":         PGBorder,
	"border-bottom-width":        PGBorder,
	"border-top-style":           PGBorder,
	"border-left-style":          PGBorder,
	"border-right-style":         PGBorder,
	"border-bottom-style":        PGBorder,
	"border-top-left-radius":     PGBorder,
	"border-top-right-radius":    PGBorder,
	"border-bottom-left-radius":  PGBorder,
	"border-bottom-right-radius": PGBorder,
	"width":                      PGDimension, // Dimension
	"height":                     PGDimension,
	"min-width":                  PGDimension,
	"min-height":                 PGDimension,
	"max-width":                  PGDimension,
	"max-height":                 PGDimension,
	"display":                    PGDisplay, // Display
	"float":                      PGDisplay,
	"visibility":                 PGDisplay,
	"position":                   PGDisplay,
	"flow-into":                  PGRegion,
	"flow-from":                  PGRegion,
	"color":                      PGColor,
	"background":                 PGColor,
	"background-color":           PGColor,
	"direction":                  PGText,
	"white-space":                PGText,
	"word-spacing":               PGText,
	"letter-spacing":             PGText,
	"word-break":                 PGText,
	"word-wrap":                  PGText,
}

// --- Property Map -----------------------------------------------------

// PropertyMap holds CSS properties, segmented into property groups.
// nil is a legal (empty) property map for all read operations.
type PropertyMap struct {
	m map[string]*PropertyGroup
}

// NewPropertyMap returns a new empty property map.
func NewPropertyMap() *PropertyMap {
	return &PropertyMap{m: make(map[string]*PropertyGroup)}
}

// PropertiesOf collects the declarations of a rule into a property map.
// Later declarations of the same property override earlier ones.
func PropertiesOf(rule css.Rule) *PropertyMap {
	pmap := NewPropertyMap()
	for _, d := range rule.Declarations {
		pmap.Add(d.Name, PropertyOf(d.Value))
	}
	tracer().Debugf("%d declaration(s) in %d property group(s)", len(rule.Declarations), pmap.Size())
	return pmap
}

func (pmap *PropertyMap) String() string {
	var b strings.Builder
	b.WriteString("Property Map = {\n")
	for _, name := range pmap.GroupNames() {
		b.WriteString(pmap.m[name].String())
	}
	b.WriteString("}")
	return b.String()
}

// Size returns the number of property groups.
func (pmap *PropertyMap) Size() int {
	if pmap == nil {
		return 0
	}
	return len(pmap.m)
}

// GroupNames returns the names of all groups in the map, sorted.
func (pmap *PropertyMap) GroupNames() []string {
	if pmap == nil {
		return nil
	}
	names := make([]string, 0, len(pmap.m))
	for name := range pmap.m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Group returns the property group for a group name or nil.
func (pmap *PropertyMap) Group(groupname string) *PropertyGroup {
	if pmap == nil {
		return nil
	}
	return pmap.m[groupname]
}

// Property returns a style property value, together with an indicator
// wether it has been found in the properties map.
func (pmap *PropertyMap) Property(key string) (Property, bool) {
	group := pmap.Group(GroupNameFromPropertyKey(key))
	if group == nil {
		return NullStyle, false
	}
	return group.Get(key)
}

// Add adds a property to this property map, overwriting a previous value, e.g.,
//
//    pm.Add("funny-margin", "big")
//
func (pmap *PropertyMap) Add(key string, value Property) {
	if pmap == nil {
		return
	}
	if pmap.m == nil {
		pmap.m = make(map[string]*PropertyGroup)
	}
	groupname := GroupNameFromPropertyKey(key)
	group, found := pmap.m[groupname]
	if !found {
		group = NewPropertyGroup(groupname)
		pmap.m[groupname] = group
	}
	group.Set(key, value)
}
