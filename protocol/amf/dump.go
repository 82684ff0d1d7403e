package amf

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Dump writes val as indented json to w
func Dump(w io.Writer, label string, val Value) error {
	json, err := json.MarshalIndent(Plain(val), "", "  ")
	if err != nil {
		return fmt.Errorf("Error dumping %s: %s", label, err)
	}

	_, err = fmt.Fprintf(w, "Dumping %s:\n%s\n", label, json)
	return err
}

// DumpYAML writes val as a yaml document to w
func DumpYAML(w io.Writer, val Value) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(Plain(val)); err != nil {
		return err
	}
	return enc.Close()
}
