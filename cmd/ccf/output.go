package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/oskar-dragon/ccflow/internal/ui"
)

var errEpicNotFound = errors.New("epic not found")

// printStructured writes v as JSON or YAML when either flag is set and
// reports whether it did.
func printStructured(w io.Writer, v any) (bool, error) {
	switch {
	case jsonOutput:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return true, enc.Encode(v)
	case yamlOutput:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return true, err
		}
		return true, enc.Close()
	}
	return false, nil
}

// printHeader writes an underlined title followed by a blank line.
func printHeader(w io.Writer, title string) {
	fmt.Fprintln(w, ui.RenderHeader(title))
	fmt.Fprintln(w, ui.Rule(title))
	fmt.Fprintln(w)
}

// printBanner writes a fixed-width underlined title, as used by per-entity
// reports.
func printBanner(w io.Writer, title string) {
	fmt.Fprintln(w, ui.RenderHeader(title))
	fmt.Fprintln(w, "================================")
	fmt.Fprintln(w)
}

func printNone(w io.Writer, indent string) {
	fmt.Fprintln(w, indent+ui.RenderMuted("(none)"))
}

// requireEpic prints the epic-not-found report and returns errEpicNotFound
// when name has no readable epic.md.
func requireEpic(w io.Writer, name string) error {
	if st.EpicExists(name) {
		return nil
	}
	fmt.Fprintf(w, "%s\n\nAvailable epics:\n", ui.RenderFail("❌ Epic not found: "+name))
	for _, n := range st.EpicNames() {
		fmt.Fprintf(w, "  • %s\n", n)
	}
	return fmt.Errorf("%w: %s", errEpicNotFound, name)
}
