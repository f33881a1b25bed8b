/*
Package domquery provides scope-aware queries over HTML documents, and the
semantics of HTML forms.

Status

Early draft, API may change frequently. Please stay patient.

Overview

The functionality lives in sub-packages:

	dom         documents, element references, selections
	selector    CSS selectors with support for :scope
	form        form controls and their values
	tree        the arena tree underlying documents
	maybe       optional values
	dom/domdbg  debugging helpers

This package contains set-up helpers only.

Tracing

All packages trace to a tracer selected with package
github.com/npillmayer/schuko/tracing. The keys are listed in TraceKeys.
Applications set up tracing from their configuration with ConfigureTracing.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package domquery

import (
	"github.com/npillmayer/schuko"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/logrusadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pkg/errors"
)

// TraceKeys are the tracer names used by the packages of this module.
var TraceKeys = []string{
	"domquery.tree",
	"domquery.dom",
	"domquery.selector",
	"domquery.form",
}

// TracePrefix is the configuration key prefix for trace levels, e.g.
//
//    tracing.adapter:         logrus
//    tracelevel.root:         Error
//    tracelevel.domquery.dom: Debug
//
const TracePrefix = "tracelevel"

// ConfigureTracing sets up tracing from an application configuration.
// Tracing adapters for logrus ("logrus") and for the Go standard logger ("go")
// are available; the adapter is selected by configuration key
// "tracing.adapter".
func ConfigureTracing(conf schuko.Configuration) error {
	if conf == nil {
		return errors.New("cannot configure tracing without configuration")
	}
	tracing.RegisterTraceAdapter("logrus", logrusadapter.GetAdapter(), false)
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	if err := trace2go.ConfigureRoot(conf, TracePrefix, trace2go.ReplaceTracers(true)); err != nil {
		return errors.Wrap(err, "configuring root tracer")
	}
	tracing.SetTraceSelector(trace2go.Selector())
	for _, key := range TraceKeys {
		t := tracing.Select(key)
		t.Debugf("tracer %q at level %s", key, t.GetTraceLevel())
	}
	return nil
}
