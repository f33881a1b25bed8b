/*
Package form derives HTML form semantics from a document: which controls
belong to a form, and which value each of them currently holds.

A control is associated with a form element if it is a descendant of the
form, or if its `form` attribute equals the form's `id` attribute. Values
are extracted once, when a Form is created; documents are immutable, so the
values never go stale.

   doc, _ := dom.ParseString(page)
   for _, f := range form.Forms(doc) {
       fmt.Println(f.Data().Encode())
   }

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package form

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'domquery.form'
func tracer() tracing.Trace {
	return tracing.Select("domquery.form")
}
