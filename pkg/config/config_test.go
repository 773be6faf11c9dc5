package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
)

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "robocheck.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefault(t *testing.T) {
	c := Default()
	if c.MaxLineBytes != DefaultMaxLineBytes || c.MaxSentence != 64 || c.Jobs < 1 {
		t.Errorf("Default() = %+v", c)
	}
	if err := c.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
color = true
jobs = 3
max_line_bytes = 80
max_sentence = 10
history = "/tmp/robocheck.db"
`)
	c := Default()
	if err := c.LoadFile(path); err != nil {
		t.Fatalf("LoadFile() = %v", err)
	}
	want := Config{Color: true, Jobs: 3, MaxLineBytes: 80, MaxSentence: 10, History: "/tmp/robocheck.db"}
	if diff := cmp.Diff(want, c); diff != "" {
		t.Errorf("LoadFile() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadFile_UnknownKey(t *testing.T) {
	path := writeConfig(t, "colour = true\n")
	c := Default()
	err := c.LoadFile(path)
	if err == nil || !strings.Contains(err.Error(), "colour") {
		t.Errorf("LoadFile() = %v, want unknown key error", err)
	}
}

func TestLoadFile_Missing(t *testing.T) {
	c := Default()
	if err := c.LoadFile(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Error("LoadFile() on missing file returned no error")
	}
}

func TestApplyEnv(t *testing.T) {
	log, hook := logtest.NewNullLogger()

	c := Config{Jobs: 1, MaxLineBytes: 1024, MaxSentence: 64}
	c.ApplyEnv(envMap(map[string]string{
		"ROBOCHECK_COLOR":          "true",
		"ROBOCHECK_JSON":           "'1'",
		"ROBOCHECK_JOBS":           "4",
		"ROBOCHECK_MAX_LINE_BYTES": "not-a-number",
		"ROBOCHECK_MAX_SENTENCE":   "-3",
		"ROBOCHECK_DEBUG":          "yes please",
		"ROBOCHECK_HISTORY":        " runs.db ",
	}), log)

	want := Config{Color: true, JSON: true, Jobs: 4, MaxLineBytes: 1024, MaxSentence: 64, Debug: true, History: "runs.db"}
	if diff := cmp.Diff(want, c); diff != "" {
		t.Errorf("ApplyEnv() mismatch (-want +got):\n%s", diff)
	}

	warnings := 0
	for _, e := range hook.AllEntries() {
		if e.Level == logrus.WarnLevel {
			warnings++
		}
	}
	if warnings != 2 {
		t.Errorf("got %d warnings, want 2", warnings)
	}
}

func TestApplyEnv_DebugFalse(t *testing.T) {
	log, _ := logtest.NewNullLogger()
	c := Config{Debug: true}
	c.ApplyEnv(envMap(map[string]string{"ROBOCHECK_DEBUG": "0"}), log)
	if c.Debug {
		t.Error("ROBOCHECK_DEBUG=0 left Debug on")
	}
}

func TestValidate(t *testing.T) {
	tests := []Config{
		{Jobs: 0, MaxLineBytes: 1024, MaxSentence: 64},
		{Jobs: 1, MaxLineBytes: 1, MaxSentence: 64},
		{Jobs: 1, MaxLineBytes: 1024, MaxSentence: 0},
	}
	for _, c := range tests {
		if err := c.Validate(); err == nil {
			t.Errorf("Validate(%+v) = nil", c)
		}
	}
}

func TestAsMap(t *testing.T) {
	m := Default().AsMap()
	for k, v := range m {
		if k != v.Name || v.Description == "" {
			t.Errorf("bad entry %q: %+v", k, v)
		}
	}
	if m["ROBOCHECK_MAX_LINE_BYTES"].Value != DefaultMaxLineBytes {
		t.Errorf("ROBOCHECK_MAX_LINE_BYTES = %v", m["ROBOCHECK_MAX_LINE_BYTES"].Value)
	}
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, "jobs = 2\njson = true\n")
	t.Setenv("ROBOCHECK_JOBS", "5")
	t.Setenv("ROBOCHECK_COLOR", "1")

	log, _ := logtest.NewNullLogger()
	c, err := Load(path, log)
	if err != nil {
		t.Fatalf("Load() = %v", err)
	}
	if c.Jobs != 5 || !c.JSON || !c.Color || c.MaxSentence != 64 {
		t.Errorf("Load() = %+v", c)
	}
}
