package output

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap/zaptest"

	"issuedeck/common"
)

func TestBuildPath(t *testing.T) {
	src := filepath.Join("in", "待討論議題.xlsx")
	out := filepath.Join("out")

	tests := []struct {
		name          string
		dst           string
		tmpl          string
		transliterate bool
		want          string
	}{
		{"next to source", "", "", false, filepath.Join("in", "待討論議題.pptx")},
		{"destination directory", out, "", false, filepath.Join(out, "待討論議題.pptx")},
		{"destination file", filepath.Join(out, "deck.PPTX"), "ignored", false, filepath.Join(out, "deck.PPTX")},
		{"template", out, "議題-2026", false, filepath.Join(out, "議題-2026.pptx")},
		{"template with extension", out, "議題.pptx", false, filepath.Join(out, "議題.pptx")},
		{"template subdirectories", out, "2026/10/議題", false, filepath.Join(out, "2026", "10", "議題.pptx")},
		{"template cannot escape", out, "../../etc/deck", false, filepath.Join(out, "etc", "deck.pptx")},
		{"blank template", out, "  ", false, filepath.Join(out, "待討論議題.pptx")},
		{"transliterated", out, "Café/Déjà vu", true, filepath.Join(out, "cafe", "deja-vu.pptx")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BuildPath(src, tt.dst, tt.tmpl, tt.transliterate); got != tt.want {
				t.Errorf("BuildPath() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCleanFileName(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"deck", "deck"},
		{"a" + string(os.PathSeparator) + "b", "ab"},
		{"", badFileName},
		{"   ", badFileName},
	}
	for _, tt := range tests {
		if got := CleanFileName(tt.in); got != tt.want {
			t.Errorf("CleanFileName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCandidates(t *testing.T) {
	got := Candidates(filepath.Join("out", "deck.pptx"), 2)
	want := []string{
		filepath.Join("out", "deck.pptx"),
		filepath.Join("out", "deck_1.pptx"),
		filepath.Join("out", "deck_2.pptx"),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Candidates() mismatch (-want +got):\n%s", diff)
	}
}

func TestSave(t *testing.T) {
	data := []byte("deck")

	t.Run("new file in new directory", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "sub", "deck.pptx")
		got, err := Save(path, data, SaveOptions{Alternates: 2}, zaptest.NewLogger(t))
		if err != nil {
			t.Fatalf("Save() error = %v", err)
		}
		if got != path {
			t.Errorf("Save() = %q, want %q", got, path)
		}
		if b, _ := os.ReadFile(got); string(b) != "deck" {
			t.Errorf("saved content = %q", b)
		}
	})

	t.Run("existing file without overwrite", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "deck.pptx")
		if err := os.WriteFile(path, []byte("old"), 0644); err != nil {
			t.Fatal(err)
		}
		got, err := Save(path, data, SaveOptions{Alternates: 2}, zaptest.NewLogger(t))
		if err != nil {
			t.Fatalf("Save() error = %v", err)
		}
		if want := filepath.Join(dir, "deck_1.pptx"); got != want {
			t.Errorf("Save() = %q, want %q", got, want)
		}
		if b, _ := os.ReadFile(path); string(b) != "old" {
			t.Errorf("original file was modified: %q", b)
		}
	})

	t.Run("existing file with overwrite", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "deck.pptx")
		if err := os.WriteFile(path, []byte("old"), 0644); err != nil {
			t.Fatal(err)
		}
		got, err := Save(path, data, SaveOptions{Overwrite: true}, zaptest.NewLogger(t))
		if err != nil {
			t.Fatalf("Save() error = %v", err)
		}
		if b, _ := os.ReadFile(got); got != path || string(b) != "deck" {
			t.Errorf("Save() = %q with %q, want overwritten destination", got, b)
		}
	})

	t.Run("directory in the way", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "deck.pptx")
		if err := os.Mkdir(path, 0755); err != nil {
			t.Fatal(err)
		}
		got, err := Save(path, data, SaveOptions{Overwrite: true, Alternates: 1}, zaptest.NewLogger(t))
		if err != nil {
			t.Fatalf("Save() error = %v", err)
		}
		if want := filepath.Join(dir, "deck_1.pptx"); got != want {
			t.Errorf("Save() = %q, want %q", got, want)
		}
	})

	t.Run("alternates exhausted", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "deck.pptx")
		for _, p := range Candidates(path, 2) {
			if err := os.WriteFile(p, []byte("old"), 0644); err != nil {
				t.Fatal(err)
			}
		}
		_, err := Save(path, data, SaveOptions{Alternates: 2}, zaptest.NewLogger(t))
		if !errors.Is(err, common.ErrOutputWriteConflict) {
			t.Errorf("Save() error = %v, want ErrOutputWriteConflict", err)
		}
	})
}
