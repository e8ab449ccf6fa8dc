package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"go.llib.dev/seqkit/pkg/seqkit"
)

// printer renders command results in the configured output format.
type printer struct {
	out    io.Writer
	format string
}

func (p printer) items(s seqkit.Sequence[string]) error {
	vs := seqkit.Values(s)
	if vs == nil {
		vs = []string{}
	}
	if p.format != OutputLines {
		return p.encode(vs)
	}
	for _, v := range vs {
		if _, err := fmt.Fprintln(p.out, v); err != nil {
			return err
		}
	}
	return nil
}

func (p printer) chunks(chunks []seqkit.Sequence[string]) error {
	out := make([][]string, 0, len(chunks))
	for _, chunk := range chunks {
		out = append(out, seqkit.Values(chunk))
	}
	if p.format != OutputLines {
		return p.encode(out)
	}
	for _, chunk := range out {
		if _, err := fmt.Fprintln(p.out, strings.Join(chunk, "\t")); err != nil {
			return err
		}
	}
	return nil
}

type group struct {
	Key    string   `json:"key" yaml:"key"`
	Values []string `json:"values" yaml:"values"`
}

func (p printer) groups(groups []seqkit.Group[string, string]) error {
	out := make([]group, 0, len(groups))
	for _, g := range groups {
		out = append(out, group{Key: g.Key, Values: g.Values.ToSlice()})
	}
	if p.format != OutputLines {
		return p.encode(out)
	}
	for _, g := range out {
		if _, err := fmt.Fprintf(p.out, "%s\t%s\n", g.Key, strings.Join(g.Values, "\t")); err != nil {
			return err
		}
	}
	return nil
}

type binding struct {
	Name  string `json:"name" yaml:"name"`
	Value any    `json:"value" yaml:"value"`
	Bound bool   `json:"bound" yaml:"bound"`
}

func (p printer) bindings(names []string, lookup func(string) (any, bool)) error {
	out := make([]binding, 0, len(names))
	for _, name := range names {
		v, ok := lookup(name)
		out = append(out, binding{Name: name, Value: v, Bound: ok})
	}
	if p.format != OutputLines {
		return p.encode(out)
	}
	for _, b := range out {
		var err error
		if b.Bound {
			_, err = fmt.Fprintf(p.out, "%s=%v\n", b.Name, b.Value)
		} else {
			_, err = fmt.Fprintf(p.out, "%s is absent\n", b.Name)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (p printer) value(v any) error {
	if p.format != OutputLines {
		return p.encode(v)
	}
	_, err := fmt.Fprintln(p.out, v)
	return err
}

func (p printer) encode(v any) error {
	switch p.format {
	case OutputJSON:
		return json.NewEncoder(p.out).Encode(v)
	case OutputYAML:
		enc := yaml.NewEncoder(p.out)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return ErrInvalidConfig.F("unknown output format %q", p.format)
	}
}
