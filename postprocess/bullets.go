package postprocess

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"

	"github.com/beevik/etree"
	fixzip "github.com/hidez8891/zip"
	"github.com/natefinch/atomic"
	"go.uber.org/zap"
)

const slidePattern = "ppt/slides/slide*.xml"

// StripBullets turns off bullets for every non title paragraph on every slide.
type StripBullets struct {
	Log *zap.Logger
}

func (StripBullets) Name() string {
	return "strip-bullets"
}

func (s StripBullets) Apply(ctx context.Context, deck string) error {
	out, err := os.CreateTemp(filepath.Dir(deck), filepath.Base(deck)+".*.tmp")
	if err != nil {
		return fmt.Errorf("unable to create temporary file: %w", err)
	}
	tmpName := out.Name()
	defer os.Remove(tmpName)

	changed, err := rewriteSlides(ctx, deck, out)
	if err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("unable to finalize temporary file: %w", err)
	}
	if err := atomic.ReplaceFile(tmpName, deck); err != nil {
		return fmt.Errorf("unable to replace deck (%s): %w", deck, err)
	}
	if s.Log != nil {
		s.Log.Debug("Bullets removed", zap.String("deck", deck), zap.Int("paragraphs", changed))
	}
	return nil
}

// rewriteSlides returns number of paragraphs changed.
func rewriteSlides(ctx context.Context, from string, to io.Writer) (int, error) {
	r, err := fixzip.OpenReader(from)
	if err != nil {
		return 0, fmt.Errorf("unable to read deck (%s): %w", from, err)
	}
	defer r.Close()

	var changed int
	w := fixzip.NewWriter(to)
	for _, file := range r.File {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		if ok, _ := path.Match(slidePattern, file.Name); !ok {
			if err := w.CopyFile(file); err != nil {
				return 0, fmt.Errorf("unable to copy %s: %w", file.Name, err)
			}
			continue
		}
		n, err := rewriteSlide(w, file)
		if err != nil {
			return 0, err
		}
		changed += n
	}
	if err := w.Close(); err != nil {
		return 0, fmt.Errorf("unable to finalize deck archive: %w", err)
	}
	return changed, nil
}

func rewriteSlide(w *fixzip.Writer, file *fixzip.File) (int, error) {
	rc, err := file.Open()
	if err != nil {
		return 0, fmt.Errorf("unable to open %s: %w", file.Name, err)
	}
	doc := etree.NewDocument()
	_, err = doc.ReadFrom(rc)
	rc.Close()
	if err != nil {
		return 0, fmt.Errorf("unable to parse %s: %w", file.Name, err)
	}

	changed := noBullets(doc)

	dst, err := w.CreateHeader(&fixzip.FileHeader{Name: file.Name, Method: fixzip.Deflate})
	if err != nil {
		return 0, fmt.Errorf("unable to write %s: %w", file.Name, err)
	}
	if _, err := doc.WriteTo(dst); err != nil {
		return 0, fmt.Errorf("unable to write %s: %w", file.Name, err)
	}
	return changed, nil
}

// noBullets adds <a:buNone/> to paragraph properties of every paragraph
// outside title placeholders, replacing any other bullet definition.
func noBullets(doc *etree.Document) int {
	var changed int
	for _, sp := range doc.FindElements("//p:sp") {
		if isTitle(sp) {
			continue
		}
		for _, p := range sp.FindElements("./p:txBody/a:p") {
			ppr := p.SelectElement("pPr")
			if ppr == nil {
				ppr = etree.NewElement("a:pPr")
				p.InsertChildAt(0, ppr)
			}
			for _, el := range ppr.ChildElements() {
				switch el.Tag {
				case "buNone", "buAutoNum", "buChar", "buBlip":
					ppr.RemoveChild(el)
				}
			}
			// schema order: bullet definition goes before tab stops and
			// default run properties
			idx := len(ppr.Child)
			for i, tok := range ppr.Child {
				if el, ok := tok.(*etree.Element); ok && (el.Tag == "tabLst" || el.Tag == "defRPr" || el.Tag == "extLst") {
					idx = i
					break
				}
			}
			ppr.InsertChildAt(idx, etree.NewElement("a:buNone"))
			changed++
		}
	}
	return changed
}

func isTitle(sp *etree.Element) bool {
	ph := sp.FindElement("./p:nvSpPr/p:nvPr/p:ph")
	if ph == nil {
		return false
	}
	switch ph.SelectAttrValue("type", "") {
	case "title", "ctrTitle":
		return true
	}
	return false
}
