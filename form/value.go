package form

import (
	"github.com/npillmayer/domquery/dom"
	"github.com/npillmayer/domquery/maybe"
)

// input types for which the value attribute is the value of the control
var valueTypes = map[string]bool{
	"color":          true,
	"date":           true,
	"datetime-local": true,
	"email":          true,
	"hidden":         true,
	"month":          true,
	"number":         true,
	"password":       true,
	"range":          true,
	"":               true,
}

// ControlValue extracts the current value of a control element:
//
//   - <input>: depends on attribute type. For checkboxes and radio buttons
//     it is the value of attribute checked, for textual types the value of
//     attribute value. Other types, or a missing type, carry no value.
//   - <select>, <datalist>: the value attribute of the first child
//     element with attribute selected.
//   - <textarea>: the serialized content.
//
// All other elements carry no value.
func ControlValue(e dom.ElementRef) maybe.Maybe[string] {
	switch e.Name() {
	case "input":
		typ, ok := e.Attr("type")
		switch {
		case !ok:
			return maybe.Nothing[string]()
		case typ == "checkbox" || typ == "radio":
			return maybe.FromOK[string](e.Attr("checked"))
		case valueTypes[typ]:
			return maybe.FromOK[string](e.Attr("value"))
		}
		return maybe.Nothing[string]()
	case "select", "datalist":
		return findSelectedChild(e)
	case "textarea":
		return maybe.Just(e.InnerHTML())
	}
	tracer().Debugf("no value extraction for control %s", e)
	return maybe.Nothing[string]()
}

func findSelectedChild(e dom.ElementRef) maybe.Maybe[string] {
	children := e.ChildElements()
	for c, ok := children.Next(); ok; c, ok = children.Next() {
		if _, selected := c.Attr("selected"); selected {
			return maybe.FromOK[string](c.Attr("value"))
		}
	}
	return maybe.Nothing[string]()
}
