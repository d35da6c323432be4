package postprocess

import (
	"archive/zip"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/beevik/etree"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"

	"issuedeck/archive"
	"issuedeck/common"
	"issuedeck/config"
)

const slideXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<p:sld xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main">
<p:cSld><p:spTree>
<p:sp>
  <p:nvSpPr><p:cNvPr id="2" name="Title"/><p:cNvSpPr/><p:nvPr><p:ph type="title"/></p:nvPr></p:nvSpPr>
  <p:txBody><a:bodyPr/><a:p><a:r><a:t>帳務</a:t></a:r></a:p></p:txBody>
</p:sp>
<p:sp>
  <p:nvSpPr><p:cNvPr id="3" name="Body"/><p:cNvSpPr/><p:nvPr/></p:nvSpPr>
  <p:txBody><a:bodyPr/>
    <a:p><a:pPr marL="0"><a:buChar char="•"/><a:defRPr/></a:pPr><a:r><a:t>1. 月結報表延遲</a:t></a:r></a:p>
    <a:p><a:r><a:t>系統 : ERP</a:t></a:r></a:p>
  </p:txBody>
</p:sp>
</p:spTree></p:cSld>
</p:sld>`

func makeDeck(t *testing.T) string {
	t.Helper()
	name := filepath.Join(t.TempDir(), "deck.pptx")
	f, err := os.Create(name)
	if err != nil {
		t.Fatal(err)
	}
	zw := zip.NewWriter(f)
	for entry, content := range map[string]string{
		"[Content_Types].xml":   `<Types/>`,
		"ppt/presentation.xml":  `<p:presentation xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main"/>`,
		"ppt/slides/slide1.xml": slideXML,
	} {
		w, err := zw.Create(entry)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := w.Write([]byte(content)); err != nil {
			t.Fatal(err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}
	return name
}

func bulletsOf(t *testing.T, data []byte) []string {
	t.Helper()
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		t.Fatalf("unable to parse slide: %v", err)
	}
	var out []string
	for _, p := range doc.FindElements("//a:p") {
		var kinds []string
		if ppr := p.SelectElement("pPr"); ppr != nil {
			for _, el := range ppr.ChildElements() {
				kinds = append(kinds, el.Tag)
			}
		}
		out = append(out, strings.Join(kinds, ","))
	}
	return out
}

func TestStripBullets(t *testing.T) {
	deck := makeDeck(t)

	if err := (StripBullets{}).Apply(context.Background(), deck); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	data, err := archive.ReadFile(deck, "ppt/slides/slide1.xml")
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	got := bulletsOf(t, data)
	// title untouched, bullet replaced before defRPr, properties created
	want := []string{"", "buNone,defRPr", "buNone"}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Errorf("paragraph properties = %q, want %q", got, want)
	}
	if !strings.Contains(string(data), "月結報表延遲") {
		t.Error("slide text lost")
	}

	other, err := archive.ReadFile(deck, "ppt/presentation.xml")
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !strings.HasPrefix(string(other), "<p:presentation") {
		t.Errorf("non slide part changed: %q", other)
	}

	// second pass keeps single bullet definition
	if err := (StripBullets{}).Apply(context.Background(), deck); err != nil {
		t.Fatalf("second Apply() error = %v", err)
	}
	data, _ = archive.ReadFile(deck, "ppt/slides/slide1.xml")
	if got := bulletsOf(t, data); strings.Join(got, "|") != strings.Join(want, "|") {
		t.Errorf("after second pass = %q, want %q", got, want)
	}
}

func TestStripBullets_LogsChanged(t *testing.T) {
	deck := makeDeck(t)
	core, logs := observer.New(zapcore.DebugLevel)

	if err := (StripBullets{Log: zap.New(core)}).Apply(context.Background(), deck); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	entries := logs.FilterMessage("Bullets removed").All()
	if len(entries) != 1 {
		t.Fatalf("logged %d entries, want 1", len(entries))
	}
	if got := entries[0].ContextMap()["paragraphs"]; got != int64(2) {
		t.Errorf("paragraphs = %v, want 2", got)
	}
}

func TestStripBullets_NotArchive(t *testing.T) {
	deck := filepath.Join(t.TempDir(), "deck.pptx")
	if err := os.WriteFile(deck, []byte("plain"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := (StripBullets{}).Apply(context.Background(), deck); err == nil {
		t.Error("expected error for broken deck")
	}
	if b, _ := os.ReadFile(deck); string(b) != "plain" {
		t.Error("broken deck must be left as is")
	}
}

// TestHelperProcess is not a real test, it plays external theming program.
func TestHelperProcess(t *testing.T) {
	if os.Getenv("ISSUEDECK_HELPER_PROCESS") != "1" {
		return
	}
	args := os.Args
	for len(args) > 0 && args[0] != "--" {
		args = args[1:]
	}
	if len(args) < 3 {
		fmt.Fprintln(os.Stderr, "not enough arguments")
		os.Exit(2)
	}
	if args[2] == "fail" {
		fmt.Fprintln(os.Stderr, "theme is broken")
		os.Exit(3)
	}
	fmt.Println("applying", args[2])
	if err := os.WriteFile(args[1]+".themed", []byte(args[2]), 0644); err != nil {
		os.Exit(4)
	}
	os.Exit(0)
}

func helperCommand(t *testing.T, theme string) *Command {
	t.Helper()
	t.Setenv("ISSUEDECK_HELPER_PROCESS", "1")
	return &Command{
		Program: os.Args[0],
		Args:    []string{"-test.run=TestHelperProcess", "--", "${output}", "${theme}"},
		Theme:   theme,
		Timeout: time.Minute,
		Log:     zaptest.NewLogger(t),
	}
}

func TestCommand(t *testing.T) {
	deck := filepath.Join(t.TempDir(), "deck.pptx")

	if err := helperCommand(t, "corporate").Apply(context.Background(), deck); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	b, err := os.ReadFile(deck + ".themed")
	if err != nil {
		t.Fatalf("command did not run: %v", err)
	}
	if string(b) != "corporate" {
		t.Errorf("theme argument = %q, want corporate", b)
	}
}

func TestCommand_Failure(t *testing.T) {
	deck := filepath.Join(t.TempDir(), "deck.pptx")
	err := helperCommand(t, "fail").Apply(context.Background(), deck)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "theme is broken") {
		t.Errorf("error %q does not carry program diagnostics", err)
	}
	if errors.Is(err, common.ErrThemingUnavailable) {
		t.Error("failed program is not unavailable theming")
	}
}

func TestCommand_Unavailable(t *testing.T) {
	tests := []struct {
		name    string
		program string
	}{
		{"not configured", ""},
		{"missing executable", "issuedeck-no-such-theming-program"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Command{Program: tt.program, Log: zaptest.NewLogger(t)}
			err := c.Apply(context.Background(), "deck.pptx")
			if !errors.Is(err, common.ErrThemingUnavailable) {
				t.Errorf("Apply() error = %v, want ErrThemingUnavailable", err)
			}
		})
	}
}

func TestCommand_ExpandArgs(t *testing.T) {
	c := &Command{Args: []string{"--in=${output}", "${dir}", "$theme", "${unknown}"}, Theme: "blue"}
	deck := filepath.Join("out", "deck.pptx")
	got := c.expandArgs(deck)
	want := []string{"--in=" + deck, "out", "blue", "${unknown}"}
	if strings.Join(got, " ") != strings.Join(want, " ") {
		t.Errorf("expandArgs() = %q, want %q", got, want)
	}
}

type fakeHook struct {
	name  string
	err   error
	calls *[]string
}

func (h fakeHook) Name() string { return h.name }

func (h fakeHook) Apply(_ context.Context, _ string) error {
	*h.calls = append(*h.calls, h.name)
	return h.err
}

func TestRun(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := zap.New(core)

	var calls []string
	hooks := []Hook{
		fakeHook{name: "broken", err: errors.New("boom"), calls: &calls},
		fakeHook{name: "unavailable", err: fmt.Errorf("%w: none", common.ErrThemingUnavailable), calls: &calls},
		fakeHook{name: "fine", calls: &calls},
	}
	Run(context.Background(), "deck.pptx", hooks, log)

	if strings.Join(calls, ",") != "broken,unavailable,fine" {
		t.Errorf("hooks called = %v", calls)
	}
	if n := logs.FilterLevelExact(zapcore.WarnLevel).Len(); n != 2 {
		t.Errorf("warnings logged = %d, want 2", n)
	}
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var calls []string
	Run(ctx, "deck.pptx", []Hook{fakeHook{name: "never", calls: &calls}}, zaptest.NewLogger(t))
	if len(calls) != 0 {
		t.Errorf("hooks called after cancellation: %v", calls)
	}
}

func TestHooks(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.ThemingConfig
		want []string
	}{
		{"none", config.ThemingConfig{}, nil},
		{"bullets", config.ThemingConfig{StripBullets: true}, []string{"strip-bullets"}},
		{"both", config.ThemingConfig{StripBullets: true, Command: "theme"}, []string{"strip-bullets", "command"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []string
			for _, h := range Hooks(&tt.cfg, zaptest.NewLogger(t)) {
				got = append(got, h.Name())
			}
			if strings.Join(got, ",") != strings.Join(tt.want, ",") {
				t.Errorf("Hooks() = %v, want %v", got, tt.want)
			}
		})
	}
}
