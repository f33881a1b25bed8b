package dom

import (
	"github.com/npillmayer/schuko"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Configuration keys read by OptionsFromConfig.
const (
	ConfigScripting       = "dom.scripting"
	ConfigFragmentContext = "dom.fragment-context"
)

// Option configures parsing of a document.
type Option func(*parseOptions)

type parseOptions struct {
	scripting bool
	context   string // tag name of the context element for fragments
}

func defaultOptions() parseOptions {
	return parseOptions{scripting: true, context: "body"}
}

// WithScripting sets the scripting flag of the HTML parser. With scripting
// enabled (the default), the content of <noscript> is parsed as raw text.
func WithScripting(enabled bool) Option {
	return func(o *parseOptions) {
		o.scripting = enabled
	}
}

// WithFragmentContext sets the tag name of the context element fragments
// are parsed in. Default is "body".
func WithFragmentContext(tag string) Option {
	return func(o *parseOptions) {
		if tag != "" {
			o.context = tag
		}
	}
}

// OptionsFromConfig creates parsing options from an application
// configuration. Keys not set in conf leave the defaults untouched.
func OptionsFromConfig(conf schuko.Configuration) []Option {
	if conf == nil {
		return nil
	}
	var opts []Option
	if conf.IsSet(ConfigScripting) {
		opts = append(opts, WithScripting(conf.GetBool(ConfigScripting)))
	}
	if conf.IsSet(ConfigFragmentContext) {
		opts = append(opts, WithFragmentContext(conf.GetString(ConfigFragmentContext)))
	}
	return opts
}

func collectOptions(opts []Option) parseOptions {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

func (o parseOptions) parserOptions() []html.ParseOption {
	return []html.ParseOption{html.ParseOptionEnableScripting(o.scripting)}
}

func (o parseOptions) contextNode() *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		Data:     o.context,
		DataAtom: atom.Lookup([]byte(o.context)),
	}
}
