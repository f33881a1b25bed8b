package form

import (
	"net/url"

	"github.com/npillmayer/domquery/dom"
	"github.com/npillmayer/domquery/maybe"
	"github.com/npillmayer/domquery/selector"
)

// ControlTags is the selector for elements which may be controls of a form.
const ControlTags = "button, fieldset, input, keygen, object, output, select, textarea"

var controlSelector = selector.MustParse(ControlTags)
var formSelector = selector.MustParse("form")

// Form is a <form> element together with its controls and their values.
// All operations of dom.ElementRef are available on a Form and apply to
// the form element.
type Form struct {
	dom.ElementRef                  // the form element
	root           dom.ElementRef   // element to search for controls
	controls       []dom.ElementRef // in document order
	values         map[dom.ElementRef]maybe.Maybe[string]
}

// Control is a form control together with its value.
type Control struct {
	Element dom.ElementRef
	Value   maybe.Maybe[string]
}

// New creates a Form for form element formElem. Controls are searched for
// within the subtree of root, which usually is the document element.
func New(root dom.ElementRef, formElem dom.ElementRef) *Form {
	f := &Form{
		ElementRef: formElem,
		root:       root,
		values:     make(map[dom.ElementRef]maybe.Maybe[string]),
	}
	for _, c := range f.Inputs() {
		if _, dup := f.values[c]; dup {
			continue
		}
		f.controls = append(f.controls, c)
		f.values[c] = ControlValue(c)
	}
	tracer().Debugf("form %s has %d controls", formElem, len(f.controls))
	return f
}

// Forms returns all forms of a document, in document order.
func Forms(doc *dom.Document) []*Form {
	root, ok := doc.RootElement()
	if !ok {
		return nil
	}
	var forms []*Form
	s := doc.Select(formSelector)
	for e, ok := s.Next(); ok; e, ok = s.Next() {
		forms = append(forms, New(root, e))
	}
	return forms
}

// Inputs returns the controls of the form, in document order. The
// controls are searched anew on every call.
func (f *Form) Inputs() []dom.ElementRef {
	var inputs []dom.ElementRef
	s := f.root.Select(controlSelector)
	for e, ok := s.Next(); ok; e, ok = s.Next() {
		if IsMember(e, f.ElementRef) {
			inputs = append(inputs, e)
		}
	}
	return inputs
}

// Element returns the form element.
func (f *Form) Element() dom.ElementRef {
	return f.ElementRef
}

// ValueOf returns the value of control e. It returns Nothing if e is not a
// control of f or does not carry a value.
func (f *Form) ValueOf(e dom.ElementRef) maybe.Maybe[string] {
	if v, ok := f.values[e]; ok {
		return v
	}
	return maybe.Nothing[string]()
}

// Values returns the controls of f together with their values, in
// document order.
func (f *Form) Values() []Control {
	cs := make([]Control, len(f.controls))
	for i, c := range f.controls {
		cs[i] = Control{Element: c, Value: f.values[c]}
	}
	return cs
}

// Data returns the values of all named controls which carry a value.
func (f *Form) Data() url.Values {
	data := url.Values{}
	for _, c := range f.controls {
		name, ok := c.Attr("name")
		if !ok || name == "" {
			continue
		}
		if v, ok := f.values[c].Get(); ok {
			data.Add(name, v)
		}
	}
	return data
}

// IsMember is a predicate: is element e associated with form element form?
func IsMember(e dom.ElementRef, form dom.ElementRef) bool {
	return e.IsChildOf(form) || BelongsToForm(e, form)
}

// BelongsToForm is a predicate: does the `form` attribute of e reference
// form by its `id`? If either attribute is missing, it returns false.
func BelongsToForm(e dom.ElementRef, form dom.ElementRef) bool {
	ref, ok := e.Attr("form")
	if !ok {
		return false
	}
	id, ok := form.Attr("id")
	if !ok {
		return false
	}
	return ref == id
}
