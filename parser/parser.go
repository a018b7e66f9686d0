// Copyright © 2024 The ELPS authors

// Package parser reads source text into lang values.
//
//	expr    := '(' <expr>* ')' | '[' <expr>* ']' | '\'' <expr> | <term> | <comment>
//	term    := <number> | <string> | <symbol>
//	number  := /[+-]?[0-9]+/ <fraction>? <exponent>?
//	string  := '"' <strcontent> '"'
//	symbol  := /[^[:space:]()\[\]'";]+/
//	comment := ';' /[^\n]*/
//
// A bracketed list [a b c] reads as (list a b c) and 'x reads as (quote x).  The
// symbols true and false read as booleans.
package parser

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	parsec "github.com/prataprc/goparsec"

	"github.com/luthersystems/lists/lang"
)

// NewReader returns a lang.Reader.
func NewReader() lang.Reader {
	return &parsecReader{}
}

type parsecReader struct{}

func (p *parsecReader) Read(name string, r io.Reader) ([]*lang.Value, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	vals, n, err := Parse(b)
	if err != nil {
		var serr *SyntaxError
		if errors.As(err, &serr) {
			serr.File = name
		}
		return nil, err
	}
	if n != len(b) {
		return nil, io.ErrUnexpectedEOF
	}
	return vals, nil
}

// SyntaxError describes source text that could not be read.
type SyntaxError struct {
	File string
	Line int
	Msg  string
	// Incomplete is true when the text ended inside an open list, so more
	// input could complete it.
	Incomplete bool
}

func (e *SyntaxError) Error() string {
	if e.File == "" {
		return fmt.Sprintf("%d: %s", e.Line, e.Msg)
	}
	return fmt.Sprintf("%s:%d: %s", e.File, e.Line, e.Msg)
}

const (
	nodeInvalid nodeType = iota
	nodeTerm
	nodeSExpr
	nodeSExprUnmatched
	nodeVector
	nodeVectorUnmatched
	nodeQuote
)

var nodeTypeStrings = []string{
	nodeInvalid:         "INVALID",
	nodeTerm:            "TERM",
	nodeSExpr:           "SEXPR",
	nodeSExprUnmatched:  "SEXPRUNMATCHED",
	nodeVector:          "VECTOR",
	nodeVectorUnmatched: "VECTORUNMATCHED",
	nodeQuote:           "QUOTE",
}

type nodeType uint

func (t nodeType) String() string {
	if int(t) >= len(nodeTypeStrings) {
		return "INVALID"
	}
	return nodeTypeStrings[t]
}

// Parse parses values from text.  The number of bytes consumed is returned
// along with any error encountered.
func Parse(text []byte) ([]*lang.Value, int, error) {
	var vals []*lang.Value
	s := parsec.NewScanner(text)
	s = s.TrackLineno()
	parser := newParsecParser()
	root, s := parser(s)
	for root != nil {
		v, ok, err := rootValue(root)
		if err != nil {
			var uerr *unmatchedError
			return vals, s.GetCursor(), &SyntaxError{
				Line:       s.Lineno(),
				Msg:        err.Error(),
				Incomplete: errors.As(err, &uerr),
			}
		}
		if ok {
			vals = append(vals, v)
		}
		root, s = parser(s)
	}
	_, s = s.SkipWS()
	if !s.Endof() {
		b, _ := s.Match(`.{1,16}`)
		if len(b) > 15 {
			b = append(b[:15:15], []byte("...")...)
		}
		return vals, s.GetCursor(), &SyntaxError{
			Line: s.Lineno(),
			Msg:  fmt.Sprintf("unexpected source text starting: %s", b),
		}
	}
	return vals, s.GetCursor(), nil
}

// ParseString is like Parse but requires that all of source is consumed.
func ParseString(source string) ([]*lang.Value, error) {
	vals, _, err := Parse([]byte(source))
	return vals, err
}

func newParsecParser() parsec.Parser {
	openP := parsec.Atom("(", "OPENP")
	closeP := parsec.Atom(")", "CLOSEP")
	openB := parsec.Atom("[", "OPENB")
	closeB := parsec.Atom("]", "CLOSEB")
	q := parsec.Atom("'", "QUOTE")
	comment := parsec.Token(`;[^\n]*`, "COMMENT")
	decimal := parsec.Token(`[+-]?[0-9]+([.][0-9]+)?([eE][+-]?[0-9]+)?`, "DECIMAL")
	symbol := parsec.Token(`[^\s()\[\]'";0-9][^\s()\[\]'";]*`, "SYMBOL")
	term := parsec.OrdChoice(astNode(nodeTerm),
		parsec.String(),
		decimal,
		symbol, // last because it swallows anything
	)
	var expr parsec.Parser
	exprList := parsec.Kleene(nil, &expr)
	sexpr := parsec.And(astNode(nodeSExpr), openP, exprList, closeP)
	sexprUnmatched := parsec.And(astNode(nodeSExprUnmatched), openP, exprList, parsec.End())
	vector := parsec.And(astNode(nodeVector), openB, exprList, closeB)
	vectorUnmatched := parsec.And(astNode(nodeVectorUnmatched), openB, exprList, parsec.End())
	quote := parsec.And(astNode(nodeQuote), q, &expr)
	expr = parsec.OrdChoice(nil,
		comment,
		term,
		sexpr,
		vector,
		quote,
		sexprUnmatched,
		vectorUnmatched,
	)
	return expr
}

func astNode(t nodeType) parsec.Nodify {
	return func(nodes []parsec.ParsecNode) parsec.ParsecNode {
		return newAST(t, nodes)
	}
}

func newAST(typ nodeType, nodes []parsec.ParsecNode) parsec.ParsecNode {
	nodes, ok := cleanParsecNodeList(nodes)
	if !ok {
		return nodes[0]
	}
	switch typ {
	case nodeTerm:
		return termValue(nodes[0])
	case nodeSExpr:
		return lang.SExpr(values(nodes))
	case nodeVector:
		cells := append([]*lang.Value{lang.Symbol("list")}, values(nodes)...)
		return lang.SExpr(cells)
	case nodeQuote:
		v, ok := nodes[len(nodes)-1].(*lang.Value)
		if !ok {
			return fmt.Errorf("quote: missing expression")
		}
		return lang.SExpr([]*lang.Value{lang.Symbol("quote"), v})
	case nodeSExprUnmatched:
		return unmatched("(", nodes)
	case nodeVectorUnmatched:
		return unmatched("[", nodes)
	default:
		panic(fmt.Sprintf("unknown nodeType: %s (%d)", typ, typ))
	}
}

func termValue(node parsec.ParsecNode) parsec.ParsecNode {
	switch term := node.(type) {
	case string:
		return lang.String(unquoteString(term))
	case *parsec.Terminal:
		switch term.Name {
		case "DECIMAL":
			if strings.ContainsAny(term.Value, ".eE") {
				f, err := strconv.ParseFloat(term.Value, 64)
				if err != nil {
					return fmt.Errorf("bad number: %v (%s)", err, term.Value)
				}
				return lang.Float(f)
			}
			x, err := strconv.ParseInt(term.Value, 10, 64)
			if err != nil {
				return fmt.Errorf("bad number: %v (%s)", err, term.Value)
			}
			return lang.Int(x)
		case "SYMBOL":
			switch term.Value {
			case "true":
				return lang.Bool(true)
			case "false":
				return lang.Bool(false)
			}
			return lang.Symbol(term.Value)
		}
	}
	return fmt.Errorf("unexpected token: %v", node)
}

// values collects the lang values among nodes, dropping brackets.
func values(nodes []parsec.ParsecNode) []*lang.Value {
	cells := make([]*lang.Value, 0, len(nodes))
	for _, n := range nodes {
		if v, ok := n.(*lang.Value); ok {
			cells = append(cells, v)
		}
	}
	return cells
}

type unmatchedError struct {
	open string
	rest string
}

func (e *unmatchedError) Error() string {
	return fmt.Sprintf("unmatched %q starting: %v", e.open, e.rest)
}

func unmatched(open string, nodes []parsec.ParsecNode) error {
	rest := open + stringifyNodes(nodes)
	if len(rest) > 10 {
		rest = rest[:10] + "..."
	}
	return &unmatchedError{open: open, rest: rest}
}

func stringifyNodes(nodes []parsec.ParsecNode) string {
	var s []string
	for _, node := range nodes {
		switch node := node.(type) {
		case *parsec.Terminal:
			switch node.GetName() {
			case "OPENP", "CLOSEP", "OPENB", "CLOSEB", "EOF":
				continue
			}
			s = append(s, node.GetValue())
		case *lang.Value:
			s = append(s, node.String())
		}
	}
	return strings.Join(s, " ")
}

// cleanParsecNodeList flattens lis and drops comments.  If lis contains an
// error, the error is returned alone with false.
func cleanParsecNodeList(lis []parsec.ParsecNode) ([]parsec.ParsecNode, bool) {
	var nodes []parsec.ParsecNode
	for _, n := range lis {
		switch node := n.(type) {
		case *parsec.Terminal:
			if node.Name == "COMMENT" {
				continue
			}
			nodes = append(nodes, node)
		case error:
			return []parsec.ParsecNode{node}, false
		case []parsec.ParsecNode:
			clean, ok := cleanParsecNodeList(node)
			if !ok {
				return clean, false
			}
			nodes = append(nodes, clean...)
		case nil:
		default:
			nodes = append(nodes, node)
		}
	}
	return nodes, true
}

// rootValue extracts the value of a top-level node.  Comments yield no value.
func rootValue(root parsec.ParsecNode) (*lang.Value, bool, error) {
	nodes, ok := cleanParsecNodeList([]parsec.ParsecNode{root})
	if !ok {
		return nil, false, nodes[0].(error)
	}
	if len(nodes) == 0 {
		return nil, false, nil
	}
	v, ok := nodes[0].(*lang.Value)
	return v, ok, nil
}

// The goparsec String parser unescapes the source text but leaves the
// surrounding quotes in place.
func unquoteString(s string) string {
	return s[1 : len(s)-1]
}
