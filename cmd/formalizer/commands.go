package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/nguyentantai21042004/transcript-flow/internal/catalog"
	"github.com/nguyentantai21042004/transcript-flow/internal/credential"
	"github.com/nguyentantai21042004/transcript-flow/internal/formalizer"
	"github.com/nguyentantai21042004/transcript-flow/internal/pipeline"
	"github.com/nguyentantai21042004/transcript-flow/internal/processor"
	"github.com/nguyentantai21042004/transcript-flow/internal/watcher"
)

func runFormalize(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("formalize", flag.ExitOnError)
	var common commonFlags
	common.register(fs)
	input := fs.String("i", "-", "transcript file, or - for stdin")
	background := fs.String("background", "", "background information supplied to every chunk")
	backgroundFile := fs.String("background-file", "", "file holding background information")
	outDir := fs.String("o", "", "write artifacts to this directory instead of printing")
	saveKey := fs.Bool("save-key", false, "save -api-key for later runs")
	docx := fs.Bool("docx", false, "also write a .docx artifact (with -o)")
	html := fs.Bool("html", false, "also write an .html artifact (with -o)")
	_ = fs.Parse(args)

	cfg, err := common.load(fs)
	if err != nil {
		return err
	}
	cfg.Output.Docx = cfg.Output.Docx || *docx
	cfg.Output.HTML = cfg.Output.HTML || *html

	a, err := newApp(cfg)
	if err != nil {
		return err
	}
	defer a.log.Sync()

	transcript, err := readInput(*input)
	if err != nil {
		return err
	}
	bg := *background
	if *backgroundFile != "" {
		data, err := os.ReadFile(*backgroundFile)
		if err != nil {
			return fmt.Errorf("read background: %w", err)
		}
		bg = string(data)
	}

	if *saveKey && common.apiKey != "" {
		if err := a.credentials.Persist(ctx, a.provider.Name(), common.apiKey); err != nil {
			return err
		}
	}

	progress := make(chan pipeline.Progress)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for p := range progress {
			fmt.Fprintf(os.Stderr, "\r[%-20s] %s", strings.Repeat("#", int(p.Fraction()*20)), p.Status())
		}
		fmt.Fprintln(os.Stderr)
	}()

	res, err := a.formalizer.Formalize(ctx, formalizer.Input{
		Transcript: transcript,
		Background: bg,
		Model:      common.model,
		APIKey:     common.apiKey,
		Reporter:   pipeline.ChannelReporter(progress),
	})
	close(progress)
	<-done
	if err != nil {
		return err
	}

	a.log.Info(ctx, "Formalized with %s: %d chunks in %s", catalog.Label(res.Model), res.Chunks, res.Duration)

	if *outDir == "" {
		fmt.Fprintln(os.Stdout, res.Text())
		return nil
	}
	title := "Formalized transcript"
	if *input != "-" {
		title = processor.Stem(*input)
	}
	_, err = a.writer.WriteDocument(ctx, *outDir, title, res.Text())
	return err
}

func runQuestions(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("questions", flag.ExitOnError)
	var common commonFlags
	common.register(fs)
	input := fs.String("i", "-", "transcript file, or - for stdin")
	outDir := fs.String("o", "", "write questions.md to this directory instead of printing")
	_ = fs.Parse(args)

	cfg, err := common.load(fs)
	if err != nil {
		return err
	}
	a, err := newApp(cfg)
	if err != nil {
		return err
	}
	defer a.log.Sync()

	transcript, err := readInput(*input)
	if err != nil {
		return err
	}

	questions, err := a.formalizer.GenerateQuestions(ctx, formalizer.Input{
		Transcript: transcript,
		Model:      common.model,
		APIKey:     common.apiKey,
	})
	if err != nil {
		return err
	}

	if *outDir == "" {
		fmt.Fprintln(os.Stdout, questions)
		return nil
	}
	_, err = a.writer.WriteQuestions(ctx, *outDir, questions)
	return err
}

func runWatch(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("watch", flag.ExitOnError)
	var common commonFlags
	common.register(fs)
	_ = fs.Parse(args)

	cfg, err := common.load(fs)
	if err != nil {
		return err
	}
	if common.model != "" {
		cfg.LLM.Model = common.model
	}
	a, err := newApp(cfg)
	if err != nil {
		return err
	}
	defer a.log.Sync()

	if a.provider.RequiresCredential() {
		// fail at startup rather than once per file
		if _, err := a.credentials.Resolve(ctx, a.provider.Name(), common.apiKey); err != nil {
			return err
		}
	}

	for _, dir := range []string{cfg.Paths.Input, cfg.Paths.Output, cfg.Paths.Archived} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	proc := processor.New(cfg, a.formalizer, a.writer, a.log)
	w, err := watcher.New(cfg.Paths.Input, proc.Process, a.log, watcher.Options{
		MaxConcurrent: cfg.Watcher.MaxConcurrent,
		SettleDelay:   cfg.Watcher.SettleDelay,
	})
	if err != nil {
		return err
	}
	defer w.Stop()

	a.log.Info(ctx, "========================================")
	a.log.Info(ctx, "Transcript formalizer is ready!")
	a.log.Info(ctx, "Provider: %s, model: %s", a.provider.Name(), catalog.Label(cfg.LLM.Model))
	a.log.Info(ctx, "Monitoring: %s", cfg.Paths.Input)
	a.log.Info(ctx, "Output: %s", cfg.Paths.Output)
	a.log.Info(ctx, "Press Ctrl+C to stop")
	a.log.Info(ctx, "========================================")

	if err := w.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	a.log.Info(ctx, "Transcript formalizer stopped")
	return nil
}

func runModels(args []string) error {
	fs := flag.NewFlagSet("models", flag.ExitOnError)
	provider := fs.String("provider", "", "only list models of this provider")
	_ = fs.Parse(args)

	models := catalog.All()
	if *provider != "" {
		models = catalog.ForProvider(*provider)
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tPROVIDER\tLABEL\tDESCRIPTION")
	for _, m := range models {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", m.ID, m.Provider, m.Label, m.Description)
	}
	return tw.Flush()
}

func runKey(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("key", flag.ExitOnError)
	var common commonFlags
	common.register(fs)
	_ = fs.Parse(args)

	cfg, err := common.load(fs)
	if err != nil {
		return err
	}
	a, err := newApp(cfg)
	if err != nil {
		return err
	}
	defer a.log.Sync()

	name := a.provider.Name()
	switch fs.Arg(0) {
	case "set":
		value := fs.Arg(1)
		if value == "" {
			value = common.apiKey
		}
		if err := a.credentials.Persist(ctx, name, value); err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "Saved %s key %s\n", name, credential.Mask(value))
	case "clear":
		if err := a.credentials.Forget(ctx, name); err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "Removed saved %s key\n", name)
	case "show":
		value, err := a.credentials.Resolve(ctx, name, common.apiKey)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "%s key: %s\n", name, credential.Mask(value))
	default:
		return fmt.Errorf("usage: formalizer key set <key> | clear | show")
	}
	return nil
}

func readInput(path string) (string, error) {
	if path == "-" || path == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read transcript: %w", err)
	}
	return string(data), nil
}
