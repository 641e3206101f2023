package report

import (
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/matzehuels/freshdeps/pkg/errors"
)

// Supported output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatXML  = "xml"
)

// Formats lists every supported output format.
var Formats = []string{FormatText, FormatJSON, FormatXML}

var extensions = map[string]string{
	FormatText: "txt",
	FormatJSON: "json",
	FormatXML:  "xml",
}

// ParseFormats splits a comma-separated format list, dropping duplicates.
func ParseFormats(s string) ([]string, error) {
	var out []string
	seen := make(map[string]bool)
	for _, f := range strings.Split(s, ",") {
		f = strings.ToLower(strings.TrimSpace(f))
		if f == "" || seen[f] {
			continue
		}
		if _, ok := extensions[f]; !ok {
			return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown format %q (expected text, json or xml)", f)
		}
		seen[f] = true
		out = append(out, f)
	}
	if len(out) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidFormat, "no output format given")
	}
	return out, nil
}

// Write writes r to w in the named format.
func Write(format string, w io.Writer, r *Report) error {
	switch format {
	case FormatText:
		return WriteText(r, w)
	case FormatJSON:
		return WriteJSON(r, w)
	case FormatXML:
		return WriteXML(r, w)
	}
	return errors.New(errors.ErrCodeInvalidFormat, "unknown format %q", format)
}

// Export writes r into dir as report.<ext>, one file per format, creating
// dir if needed. It returns the written paths.
func Export(r *Report, dir string, formats []string) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create %s: %w", dir, err)
	}
	paths := make([]string, 0, len(formats))
	for _, format := range formats {
		ext, ok := extensions[format]
		if !ok {
			return paths, errors.New(errors.ErrCodeInvalidFormat, "unknown format %q", format)
		}
		path := filepath.Join(dir, "report."+ext)
		if err := exportFile(r, format, path); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func exportFile(r *Report, format, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := Write(format, f, r); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

var textHeadings = map[Category]string{
	Current:    "The following dependencies are using the latest %s version:",
	Outdated:   "The following dependencies have later %s versions:",
	Exceeded:   "The following dependencies exceed the version found at the %s revision level:",
	Undeclared: "The following dependencies have no declared version:",
	Unresolved: "Failed to determine the latest version for the following dependencies:",
}

// WriteText writes r as a plain-text listing. Empty categories are omitted.
func WriteText(r *Report, w io.Writer) error {
	var b strings.Builder
	rule := strings.Repeat("-", 60)
	title := r.Project
	if r.Configuration != "" {
		title += " (" + r.Configuration + ")"
	}
	fmt.Fprintf(&b, "%s\n%s dependency updates\n%s\n", rule, title, rule)

	for _, c := range Categories {
		entries := r.Category(c)
		if len(entries) == 0 {
			continue
		}
		heading := textHeadings[c]
		if strings.Contains(heading, "%s") {
			heading = fmt.Sprintf(heading, r.Revision)
		}
		fmt.Fprintf(&b, "\n%s\n", heading)
		for _, e := range entries {
			b.WriteString(textLine(e))
		}
	}
	if len(r.Entries) == 0 {
		b.WriteString("\nNo dependencies found.\n")
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}

func textLine(e Entry) string {
	key := e.Group + ":" + e.Artifact
	var line string
	switch e.Category {
	case Outdated:
		line = fmt.Sprintf(" - %s [%s -> %s]", key, e.Version, e.Available)
	case Exceeded:
		line = fmt.Sprintf(" - %s [%s <- %s]", key, e.Version, e.Available)
	case Undeclared:
		return fmt.Sprintf(" - %s\n", key)
	case Unresolved:
		return fmt.Sprintf(" - %s:%s\n     %s\n", key, e.Version, e.Reason)
	default:
		line = fmt.Sprintf(" - %s:%s", key, e.Version)
	}
	if e.Resolved != "" {
		line += " (resolved " + e.Resolved + ")"
	}
	return line + "\n"
}

type section struct {
	Count        int     `json:"count" xml:"count,attr"`
	Dependencies []Entry `json:"dependencies" xml:"dependency"`
}

type document struct {
	XMLName       xml.Name `json:"-" xml:"report"`
	ID            string   `json:"id" xml:"id,attr"`
	Project       string   `json:"project" xml:"project,attr"`
	Configuration string   `json:"configuration,omitempty" xml:"configuration,attr,omitempty"`
	Revision      string   `json:"revision" xml:"revision,attr"`
	Generated     string   `json:"generated" xml:"generated,attr"`
	Count         int      `json:"count" xml:"count,attr"`
	Current       section  `json:"current" xml:"current"`
	Outdated      section  `json:"outdated" xml:"outdated"`
	Exceeded      section  `json:"exceeded" xml:"exceeded"`
	Undeclared    section  `json:"undeclared" xml:"undeclared"`
	Unresolved    section  `json:"unresolved" xml:"unresolved"`
}

func newDocument(r *Report) document {
	sec := func(c Category) section {
		entries := r.Category(c)
		if entries == nil {
			entries = []Entry{}
		}
		return section{Count: len(entries), Dependencies: entries}
	}
	return document{
		ID:            r.ID,
		Project:       r.Project,
		Configuration: r.Configuration,
		Revision:      string(r.Revision),
		Generated:     r.Generated.Format(time.RFC3339),
		Count:         len(r.Entries),
		Current:       sec(Current),
		Outdated:      sec(Outdated),
		Exceeded:      sec(Exceeded),
		Undeclared:    sec(Undeclared),
		Unresolved:    sec(Unresolved),
	}
}

// WriteJSON encodes r as indented JSON and writes it to w.
func WriteJSON(r *Report, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(newDocument(r)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// WriteXML encodes r as indented XML and writes it to w.
func WriteXML(r *Report, w io.Writer) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(newDocument(r)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}
