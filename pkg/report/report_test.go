package report

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/matzehuels/freshdeps/pkg/deps"
	"github.com/matzehuels/freshdeps/pkg/errors"
)

func testStatuses() []deps.DependencyStatus {
	return []deps.DependencyStatus{
		deps.NewResolvedStatus(deps.NewCoordinate("com.google.guava", "guava", "31.0-jre"), "33.0.0-jre"),
		deps.NewResolvedStatus(deps.NewCoordinate("io.netty", "netty-handler", ""), "4.1.100.Final"),
		deps.NewResolvedStatus(deps.NewCoordinate("junit", "junit", "4.13.2"), "4.13.2"),
		deps.NewResolvedStatus(deps.NewCoordinate("org.slf4j", "slf4j-api", "2.1.0-alpha1"), "2.0.9"),
		deps.NewUnresolvedStatus(deps.NewCoordinate("com.example", "missing", "1.0"), deps.Failure{
			Selector: "com.example:missing:+",
			Reason:   "could not find com.example:missing",
		}),
	}
}

func TestBuild(t *testing.T) {
	r := Build("com.example:app", deps.Release, testStatuses())

	if _, err := uuid.Parse(r.ID); err != nil {
		t.Errorf("ID %q is not a UUID: %v", r.ID, err)
	}
	if r.Generated.IsZero() {
		t.Error("Generated should be set")
	}

	want := map[string]Category{
		"guava":         Outdated,
		"netty-handler": Undeclared,
		"junit":         Current,
		"slf4j-api":     Exceeded,
		"missing":       Unresolved,
	}
	if len(r.Entries) != len(want) {
		t.Fatalf("got %d entries, want %d", len(r.Entries), len(want))
	}
	for _, e := range r.Entries {
		if e.Category != want[e.Artifact] {
			t.Errorf("%s: category = %s, want %s", e.Artifact, e.Category, want[e.Artifact])
		}
	}

	for _, c := range Categories {
		if got := r.Count(c); got != 1 {
			t.Errorf("Count(%s) = %d, want 1", c, got)
		}
	}
	if !r.HasUpdates() {
		t.Error("HasUpdates() = false, want true")
	}
	if got := r.Category(Unresolved)[0].Reason; got != "could not find com.example:missing" {
		t.Errorf("unresolved reason = %q", got)
	}
}

func TestBuildUniqueIDs(t *testing.T) {
	a := Build("p", deps.Release, nil)
	b := Build("p", deps.Release, nil)
	if a.ID == b.ID {
		t.Error("reports should get distinct IDs")
	}
	if a.HasUpdates() {
		t.Error("empty report should have no updates")
	}
}

func TestWriteText(t *testing.T) {
	r := Build("com.example:app", deps.Release, testStatuses())
	r.Configuration = "compile"

	var buf bytes.Buffer
	if err := WriteText(r, &buf); err != nil {
		t.Fatalf("WriteText() error: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"com.example:app (compile) dependency updates",
		"The following dependencies have later release versions:",
		" - com.google.guava:guava [31.0-jre -> 33.0.0-jre]",
		" - org.slf4j:slf4j-api [2.1.0-alpha1 <- 2.0.9]",
		" - junit:junit:4.13.2",
		" - io.netty:netty-handler\n",
		"     could not find com.example:missing",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestSetResolved(t *testing.T) {
	r := Build("com.example:app", deps.Release, testStatuses())
	r.SetResolved(map[deps.Key]deps.Coordinate{
		{Group: "com.google.guava", Artifact: "guava"}:    deps.NewCoordinate("com.google.guava", "guava", "32.1.3-jre"),
		{Group: "io.netty", Artifact: "netty-handler"}:    deps.NewCoordinate("io.netty", "netty-handler", "4.1.90.Final"),
		{Group: "com.example", Artifact: "missing"}:       deps.NewCoordinate("com.example", "missing", "1.1"),
		{Group: "org.example", Artifact: "not-in-report"}: deps.NewCoordinate("org.example", "not-in-report", "1.0"),
	})

	got := make(map[string]string)
	for _, e := range r.Entries {
		got[e.Artifact] = e.Resolved
	}
	want := map[string]string{"guava": "32.1.3-jre", "netty-handler": "", "junit": "", "slf4j-api": "", "missing": ""}
	for artifact, v := range want {
		if got[artifact] != v {
			t.Errorf("%s: Resolved = %q, want %q", artifact, got[artifact], v)
		}
	}
	if r.Count(Outdated) != 1 {
		t.Error("conflict resolution should not change categories")
	}

	var text, js bytes.Buffer
	if err := WriteText(r, &text); err != nil {
		t.Fatal(err)
	}
	if want := " - com.google.guava:guava [31.0-jre -> 33.0.0-jre] (resolved 32.1.3-jre)\n"; !strings.Contains(text.String(), want) {
		t.Errorf("text output missing %q:\n%s", want, text.String())
	}
	if err := WriteJSON(r, &js); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(js.String(), `"resolved": "32.1.3-jre"`) {
		t.Errorf("json output missing resolved version:\n%s", js.String())
	}
}

func TestWriteTextEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteText(Build("p", deps.Release, nil), &buf); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "No dependencies found.") {
		t.Errorf("unexpected output:\n%s", buf.String())
	}
}

func TestWriteJSON(t *testing.T) {
	r := Build("com.example:app", deps.Milestone, testStatuses())

	var buf bytes.Buffer
	if err := WriteJSON(r, &buf); err != nil {
		t.Fatalf("WriteJSON() error: %v", err)
	}

	var doc struct {
		ID       string `json:"id"`
		Revision string `json:"revision"`
		Count    int    `json:"count"`
		Outdated struct {
			Count        int `json:"count"`
			Dependencies []struct {
				Name      string `json:"name"`
				Available string `json:"available"`
			} `json:"dependencies"`
		} `json:"outdated"`
		Exceeded struct {
			Dependencies []any `json:"dependencies"`
		} `json:"exceeded"`
	}
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if doc.ID != r.ID || doc.Revision != "milestone" || doc.Count != 5 {
		t.Errorf("header = %+v", doc)
	}
	if doc.Outdated.Count != 1 || doc.Outdated.Dependencies[0].Available != "33.0.0-jre" {
		t.Errorf("outdated = %+v", doc.Outdated)
	}
}

func TestWriteJSONEmptySections(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(Build("p", deps.Release, nil), &buf); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(buf.String(), "null") {
		t.Errorf("empty sections should encode as []:\n%s", buf.String())
	}
}

func TestWriteXML(t *testing.T) {
	r := Build("com.example:app", deps.Release, testStatuses())

	var buf bytes.Buffer
	if err := WriteXML(r, &buf); err != nil {
		t.Fatalf("WriteXML() error: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "<?xml") {
		t.Error("missing XML header")
	}

	var doc struct {
		Project  string `xml:"project,attr"`
		Outdated struct {
			Count        int `xml:"count,attr"`
			Dependencies []struct {
				Name      string `xml:"name,attr"`
				Available string `xml:"available,attr"`
			} `xml:"dependency"`
		} `xml:"outdated"`
		Unresolved struct {
			Dependencies []struct {
				Reason string `xml:"reason"`
			} `xml:"dependency"`
		} `xml:"unresolved"`
	}
	if err := xml.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("invalid XML: %v", err)
	}
	if doc.Project != "com.example:app" {
		t.Errorf("project = %q", doc.Project)
	}
	if doc.Outdated.Count != 1 || doc.Outdated.Dependencies[0].Name != "guava" {
		t.Errorf("outdated = %+v", doc.Outdated)
	}
	if len(doc.Unresolved.Dependencies) != 1 || doc.Unresolved.Dependencies[0].Reason == "" {
		t.Errorf("unresolved = %+v", doc.Unresolved)
	}
}

func TestParseFormats(t *testing.T) {
	tests := []struct {
		input   string
		want    []string
		wantErr bool
	}{
		{"text", []string{"text"}, false},
		{"json, XML", []string{"json", "xml"}, false},
		{"json,json,text", []string{"json", "text"}, false},
		{"html", nil, true},
		{" , ", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormats(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFormats() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, errors.ErrCodeInvalidFormat) {
					t.Errorf("error code = %s", errors.GetCode(err))
				}
				return
			}
			if strings.Join(got, ",") != strings.Join(tt.want, ",") {
				t.Errorf("ParseFormats() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWriteUnknownFormat(t *testing.T) {
	err := Write("yaml", &bytes.Buffer{}, Build("p", deps.Release, nil))
	if !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("Write() error = %v", err)
	}
}

func TestExport(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "reports")
	r := Build("com.example:app", deps.Release, testStatuses())

	paths, err := Export(r, dir, Formats)
	if err != nil {
		t.Fatalf("Export() error: %v", err)
	}
	if len(paths) != 3 {
		t.Fatalf("got %d paths, want 3", len(paths))
	}
	for _, name := range []string{"report.txt", "report.json", "report.xml"} {
		info, err := os.Stat(filepath.Join(dir, name))
		if err != nil {
			t.Errorf("%s: %v", name, err)
			continue
		}
		if info.Size() == 0 {
			t.Errorf("%s is empty", name)
		}
	}
}
