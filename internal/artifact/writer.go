package artifact

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

func (w *implWriter) WriteDocument(ctx context.Context, dir, title, document string) ([]Artifact, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	md := Artifact{Name: MarkdownFileName, MediaType: MarkdownMediaType, Path: filepath.Join(dir, MarkdownFileName)}
	if err := os.WriteFile(md.Path, []byte(document), 0644); err != nil {
		return nil, fmt.Errorf("write %s: %w", md.Name, err)
	}
	out := []Artifact{md}

	if w.opts.Docx {
		a := Artifact{Name: DocxFileName, MediaType: DocxMediaType, Path: filepath.Join(dir, DocxFileName)}
		if err := markdownToDocx(title, document, a.Path); err != nil {
			return nil, fmt.Errorf("write %s: %w", a.Name, err)
		}
		out = append(out, a)
	}

	if w.opts.HTML {
		a := Artifact{Name: HTMLFileName, MediaType: HTMLMediaType, Path: filepath.Join(dir, HTMLFileName)}
		if err := os.WriteFile(a.Path, RenderHTML(title, document), 0644); err != nil {
			return nil, fmt.Errorf("write %s: %w", a.Name, err)
		}
		out = append(out, a)
	}

	for _, a := range out {
		w.logger.Info(ctx, "[DONE] %s -> %s", a.Name, a.Path)
	}
	return out, nil
}

func (w *implWriter) WriteQuestions(ctx context.Context, dir, questions string) (Artifact, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return Artifact{}, fmt.Errorf("create output dir: %w", err)
	}
	a := Artifact{Name: QuestionsFileName, MediaType: MarkdownMediaType, Path: filepath.Join(dir, QuestionsFileName)}
	if err := os.WriteFile(a.Path, []byte(questions+"\n"), 0644); err != nil {
		return Artifact{}, fmt.Errorf("write %s: %w", a.Name, err)
	}
	w.logger.Info(ctx, "[DONE] %s -> %s", a.Name, a.Path)
	return a, nil
}
