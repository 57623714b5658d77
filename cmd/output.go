package cmd

import (
	"encoding/json"
	"io"

	"gopkg.in/yaml.v3"
)

// printer writes values in the selected output format. Consecutive yaml values
// are separated as documents; json values are one per line.
type printer struct {
	json *json.Encoder
	yaml *yaml.Encoder
}

func newPrinter(w io.Writer, format string) *printer {
	if format == "json" {
		return &printer{json: json.NewEncoder(w)}
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	return &printer{yaml: enc}
}

func (p *printer) Print(v any) error {
	if p.json != nil {
		return p.json.Encode(v)
	}
	return p.yaml.Encode(v)
}

func (p *printer) Close() error {
	if p.yaml != nil {
		return p.yaml.Close()
	}
	return nil
}
