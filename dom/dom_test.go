package dom

import (
	"strings"
	"testing"

	"github.com/npillmayer/domquery/selector"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

const scopeDoc = `<div><b>1</b><span><span><b>2</b></span><b>3</b></span></div>`

func mustParse(t *testing.T, s string) *Document {
	doc, err := ParseString(s)
	require.NoError(t, err)
	return doc
}

func selectOne(t *testing.T, doc *Document, sel string) ElementRef {
	e, ok := doc.Select(selector.MustParse(sel)).Next()
	require.True(t, ok, "no match for %q", sel)
	return e
}

func names(elems []ElementRef) string {
	n := make([]string, len(elems))
	for i, e := range elems {
		n[i] = e.Name()
	}
	return strings.Join(n, " ")
}

func innerHTMLs(elems []ElementRef) []string {
	s := make([]string, len(elems))
	for i, e := range elems {
		s[i] = e.InnerHTML()
	}
	return s
}

func TestParseDocument(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "domquery.dom")
	defer teardown()
	//
	doc := mustParse(t, scopeDoc)
	root, ok := doc.RootElement()
	require.True(t, ok)
	assert.Equal(t, "html", root.Name())
	assert.Equal(t, DocumentNode, doc.Root().Value().Kind())
	_, ok = root.Parent()
	assert.False(t, ok, "document element has no parent element")
	assert.Contains(t, doc.HTML(), scopeDoc)
	t.Logf("document has %d nodes", doc.Len())
}

func TestParseFragment(t *testing.T) {
	doc, err := ParseFragment(strings.NewReader(`<td>a</td><td>b</td>`), WithFragmentContext("tr"))
	require.NoError(t, err)
	root, ok := doc.RootElement()
	require.True(t, ok)
	assert.Equal(t, "td td", names(root.ChildElements().Collect()))
	assert.Equal(t, "<td>a</td><td>b</td>", root.InnerHTML())
	//
	_, err = FromHTML(nil)
	assert.Error(t, err)
}

func TestOptionsFromConfig(t *testing.T) {
	conf := testconfig.Conf{
		ConfigScripting:       "false",
		ConfigFragmentContext: "tr",
	}
	o := collectOptions(OptionsFromConfig(conf))
	assert.False(t, o.scripting)
	assert.Equal(t, "tr", o.context)
	o = collectOptions(OptionsFromConfig(nil))
	assert.Equal(t, defaultOptions(), o)
	//
	doc, err := ParseString(`<div><noscript><p>x</p></noscript></div>`, OptionsFromConfig(conf)...)
	require.NoError(t, err)
	_, ok := doc.Select(selector.MustParse("noscript > p")).Next()
	assert.True(t, ok, "without scripting, <noscript> content is parsed as markup")
}

func TestWrap(t *testing.T) {
	doc := mustParse(t, `<p>text<!-- c --></p>`)
	p := selectOne(t, doc, "p")
	e, ok := Wrap(p.Node())
	assert.True(t, ok)
	assert.Equal(t, p, e)
	it := doc.Tree().Children(p.Node().ID())
	for id, ok := it.Next(); ok; id, ok = it.Next() {
		n, _ := doc.Node(id)
		_, isElem := Wrap(n)
		assert.False(t, isElem, "%s must not wrap", n.Value().Kind())
	}
	_, ok = Wrap(NodeRef{})
	assert.False(t, ok)
}

func TestAttributes(t *testing.T) {
	doc := mustParse(t, `<input id="x" type="text" ID="dup" value="">`)
	in := selectOne(t, doc, "input")
	v, ok := in.Attr("type")
	assert.True(t, ok)
	assert.Equal(t, "text", v)
	v, ok = in.Attr("value")
	assert.True(t, ok)
	assert.Equal(t, "", v)
	_, ok = in.Attr("TYPE")
	assert.False(t, ok, "attribute names match exactly")
	id, _ := in.Attr("id")
	assert.Equal(t, "x", id, "first attribute wins")
	assert.Equal(t, 3, in.Attributes().Length())
	assert.Equal(t, "type", in.Attributes().Item(1).Key())
	assert.Nil(t, in.Attributes().Item(3))
	assert.Nil(t, in.Attributes().GetNamedItem("name"))
	assert.True(t, in.HasAttributes())
	assert.Equal(t, "<input#x>", in.String())
}

func TestScopedSelect(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "domquery.dom", "domquery.selector")
	defer teardown()
	//
	doc := mustParse(t, scopeDoc)
	outer := selectOne(t, doc, "div > span")
	bs := outer.Select(selector.MustParse(":scope > b")).Collect()
	assert.Equal(t, []string{"3"}, innerHTMLs(bs))
}

func TestSelectYieldsStrictDescendants(t *testing.T) {
	doc := mustParse(t, scopeDoc)
	outer := selectOne(t, doc, "div > span")
	spans := outer.Select(selector.MustParse("span")).Collect()
	require.Len(t, spans, 1, "the scope itself is never selected")
	assert.NotEqual(t, outer, spans[0])
	for _, e := range outer.Select(nil).Collect() {
		assert.True(t, e.IsChildOf(outer), "%s is not a descendant of scope", e)
	}
	assert.Equal(t, "span b b", names(outer.Select(nil).Collect()))
}

func TestSelectScopeOfDocument(t *testing.T) {
	doc := mustParse(t, scopeDoc)
	heads := doc.Select(selector.MustParse(":scope > head")).Collect()
	assert.Equal(t, "head", names(heads))
	assert.Equal(t, []string{"1", "2", "3"}, innerHTMLs(doc.Select(selector.MustParse("b")).Collect()))
}

func TestSelectionClone(t *testing.T) {
	doc := mustParse(t, `<ul><li>1</li><li>2</li><li>3</li><li>4</li></ul>`)
	ul := selectOne(t, doc, "ul")
	sel := selector.MustParse(":scope > li:nth-child(odd)")
	s := ul.Select(sel)
	first, ok := s.Next()
	require.True(t, ok)
	assert.Equal(t, "1", first.InnerHTML())
	c := s.Clone()
	assert.Equal(t, []string{"3"}, innerHTMLs(s.Collect()))
	assert.Equal(t, []string{"3"}, innerHTMLs(c.Collect()), "clone must continue independently")
	_, ok = s.Next()
	assert.False(t, ok, "exhausted selection stays exhausted")
}

func TestIsChildOf(t *testing.T) {
	doc := mustParse(t, `<div id="a"><p id="b"><i id="c"></i></p><p id="d"></p></div><div id="e"></div>`)
	byID := map[string]ElementRef{}
	for _, e := range doc.Select(selector.MustParse("[id]")).Collect() {
		id, _ := e.Attr("id")
		byID[id] = e
	}
	for _, c := range []struct {
		child, parent string
		expect        bool
	}{
		{"b", "a", true},
		{"c", "b", true},
		{"c", "a", true}, // transitive
		{"a", "c", false},
		{"d", "b", false}, // sibling
		{"c", "e", false}, // unrelated
		{"a", "a", false},
	} {
		assert.Equal(t, c.expect, byID[c.child].IsChildOf(byID[c.parent]),
			"%s is child of %s", c.child, c.parent)
	}
	other := mustParse(t, `<div id="a"></div>`)
	assert.False(t, byID["b"].IsChildOf(selectOne(t, other, "div")))
}

func TestChildAndDescendentElements(t *testing.T) {
	doc := mustParse(t, `<div>x<p>y<i></i></p><!-- z --><b></b></div>`)
	div := selectOne(t, doc, "div")
	assert.Equal(t, "p b", names(div.ChildElements().Collect()))
	assert.Equal(t, "div p i b", names(div.DescendentElements().Collect()))
	// restartable
	assert.Equal(t, "p b", names(div.ChildElements().Collect()))
}

func TestText(t *testing.T) {
	doc := mustParse(t, `<p>Hello <b>brave</b><!-- no --> world</p>`)
	p := selectOne(t, doc, "p")
	it := p.Text()
	first, ok := it.Next()
	require.True(t, ok)
	assert.Equal(t, "Hello ", first)
	c := it.Clone()
	var rest []string
	for s, ok := it.Next(); ok; s, ok = it.Next() {
		rest = append(rest, s)
	}
	assert.Equal(t, []string{"brave", " world"}, rest)
	s, _ := c.Next()
	assert.Equal(t, "brave", s)
	content, err := p.TextContent()
	assert.NoError(t, err)
	assert.Equal(t, "Hello brave world", content)
}

func TestSerialize(t *testing.T) {
	doc := mustParse(t, `<p class="x">a &amp; <b>b</b></p>`)
	p := selectOne(t, doc, "p")
	assert.Equal(t, `<p class="x">a &amp; <b>b</b></p>`, p.HTML())
	assert.Equal(t, `a &amp; <b>b</b>`, p.InnerHTML())
	br := mustParse(t, `<br>`)
	assert.Equal(t, "", selectOne(t, br, "br").InnerHTML())
}

func TestElementsAsMapKeys(t *testing.T) {
	doc := mustParse(t, `<i></i><i></i>`)
	is := doc.Select(selector.MustParse("i")).Collect()
	require.Len(t, is, 2)
	m := map[ElementRef]int{is[0]: 0, is[1]: 1}
	assert.Len(t, m, 2, "structurally equal elements are distinct keys")
	again := doc.Select(selector.MustParse("i")).Collect()
	assert.Equal(t, 1, m[again[1]])
}

func TestSelectPerRow(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("<table>")
	const rows = 300
	for i := 0; i < rows; i++ {
		sb.WriteString("<tr><td>a</td><td>b</td></tr>")
	}
	sb.WriteString("</table>")
	doc := mustParse(t, sb.String())
	cells := selector.MustParse(":scope > td")
	n := 0
	trs := doc.Select(selector.MustParse("tr"))
	for tr, ok := trs.Next(); ok; tr, ok = trs.Next() {
		tds := tr.Select(cells).Collect()
		require.Equal(t, []string{"a", "b"}, innerHTMLs(tds))
		n++
	}
	assert.Equal(t, rows, n)
}
