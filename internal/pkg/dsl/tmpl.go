// Copyright Elasticsearch B.V. and/or licensed to Elasticsearch B.V. under one
// or more contributor license agreements. Licensed under the Elastic License;
// you may not use this file except in compliance with the Elastic License.

package dsl

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"

	"github.com/gofrs/uuid"
)

const kPrefix = "TMPL."
const kTokenSz = len(kPrefix) + 36 // len of uuid string

var (
	ErrTokenUndefined = errors.New("bound token not defined")
	ErrTokenNotFound  = errors.New("named token not found")
	ErrNotResolved    = errors.New("template not resolved")
)

// Tmpl is a query body marshalled once with placeholder tokens; rendering
// splices JSON values into the placeholders. A resolved Tmpl is read only
// and safe for concurrent Render calls.
type Tmpl struct {
	tokens   map[string]Token
	segments []segment
	fixedSz  int
}

// segment is literal JSON followed by the value bound to name, if any.
type segment struct {
	data []byte
	name string
}

type Token string

func NewTmpl() *Tmpl {
	return &Tmpl{
		tokens: make(map[string]Token),
	}
}

func newToken() Token {
	return Token(kPrefix + uuid.Must(uuid.NewV4()).String())
}

// Bind returns the placeholder to use for name when building the query.
func (t *Tmpl) Bind(name string) Token {
	token := newToken()
	t.tokens[name] = token
	return token
}

// Resolve marshals n and records where each bound token lands.
func (t *Tmpl) Resolve(n *Node) error {
	d, err := json.Marshal(n)
	if err != nil {
		return err
	}

	byToken := make(map[Token]string, len(t.tokens))
	for name, token := range t.tokens {
		byToken[token] = name
	}

	var (
		segments []segment
		fixedSz  int
		seen     = make(map[string]struct{}, len(t.tokens))
		src      = string(d)
		pending  strings.Builder
	)

	for {
		idx := strings.Index(src, `"`+kPrefix)
		if idx == -1 {
			break
		}

		var name string
		ok := len(src) >= idx+kTokenSz+2 && src[idx+kTokenSz+1] == '"'
		if ok {
			name, ok = byToken[Token(src[idx+1:idx+1+kTokenSz])]
		}
		if !ok {
			// Unknown token-like string; keep it verbatim.
			pending.WriteString(src[:idx+1])
			src = src[idx+1:]
			continue
		}

		pending.WriteString(src[:idx])
		segments = append(segments, segment{data: []byte(pending.String()), name: name})
		fixedSz += pending.Len()
		pending.Reset()
		seen[name] = struct{}{}
		src = src[idx+kTokenSz+2:]
	}

	pending.WriteString(src)
	if pending.Len() > 0 {
		segments = append(segments, segment{data: []byte(pending.String())})
		fixedSz += pending.Len()
	}

	if len(seen) != len(t.tokens) {
		return ErrTokenUndefined
	}

	t.segments = segments
	t.fixedSz = fixedSz
	return nil
}

func (t *Tmpl) MustResolve(n *Node) *Tmpl {
	if err := t.Resolve(n); err != nil {
		panic(err)
	}
	return t
}

// RenderOne renders a template that has a single bound name.
func (t *Tmpl) RenderOne(name string, v interface{}) ([]byte, error) {
	d, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return t.render(map[string][]byte{name: d}, len(d))
}

func (t *Tmpl) Render(m map[string]interface{}) ([]byte, error) {
	values := make(map[string][]byte, len(m))
	var sum int
	for name, v := range m {
		d, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		sum += len(d)
		values[name] = d
	}
	return t.render(values, sum)
}

func (t *Tmpl) render(values map[string][]byte, sum int) ([]byte, error) {
	if t.segments == nil {
		return nil, ErrNotResolved
	}

	var buf bytes.Buffer
	buf.Grow(t.fixedSz + sum)

	for _, s := range t.segments {
		buf.Write(s.data)
		if s.name == "" {
			continue
		}
		d, ok := values[s.name]
		if !ok {
			return nil, ErrTokenNotFound
		}
		buf.Write(d)
	}

	return buf.Bytes(), nil
}
