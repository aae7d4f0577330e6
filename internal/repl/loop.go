// Package repl implements the interactive question loop.
//
// The loop is a two-state machine: awaiting-input and terminated. Blank lines
// re-prompt, "exit"/"quit" (case-insensitive) terminate with a farewell, and
// end-of-input or an interrupt terminates the same way; both are surfaced as
// a sentinel error from the line-reading operation, never as out-of-band
// control flow. Every other line is treated as a question and answered via
// embed → search → print.
package repl

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"go.uber.org/zap"

	"github.com/fragdoc/fragdoc/internal/logger"
	"github.com/fragdoc/fragdoc/internal/vectordb"
)

const (
	prompt   = "Frage> "
	farewell = "Auf Wiedersehen!"

	noResultsHint = "Keine Ergebnisse gefunden. Prüfen Sie die Collection oder das Embedding-Modell."
)

// errInputClosed signals that the input stream ended or the session was
// interrupted. The state machine maps it to the terminated state.
var errInputClosed = errors.New("input closed")

// Embedder converts one question into its embedding vector.
type Embedder interface {
	Encode(ctx context.Context, text string) ([]float32, error)
}

// LoopOptions configures a Loop.
type LoopOptions struct {
	Store      vectordb.Service
	Embedder   Embedder
	Collection string
	TopK       int
	TextKey    string
	In         io.Reader
	Out        io.Writer
	Log        *logger.Logger
}

// Loop is the interactive read-eval-print loop. It owns no state beyond the
// injected session handles and is used strictly sequentially.
type Loop struct {
	store      vectordb.Service
	embedder   Embedder
	collection string
	topK       int
	textKey    string
	in         io.Reader
	out        io.Writer
	log        *logger.Logger
}

// NewLoop builds a Loop from options.
func NewLoop(opts LoopOptions) *Loop {
	log := opts.Log
	if log == nil {
		log = logger.Nop()
	}
	return &Loop{
		store:      opts.Store,
		embedder:   opts.Embedder,
		collection: opts.Collection,
		topK:       opts.TopK,
		textKey:    opts.TextKey,
		in:         opts.In,
		out:        opts.Out,
		log:        log,
	}
}

// Run drives the loop until the user quits, the input ends, or ctx is
// canceled (interrupt). All termination paths print the farewell and return
// nil; graceful shutdown is not an error.
func (l *Loop) Run(ctx context.Context) error {
	l.printIntro()

	lines := newLineSource(l.in)
	for {
		fmt.Fprint(l.out, color.CyanString(prompt))

		line, err := lines.next(ctx)
		if err != nil {
			fmt.Fprintf(l.out, "\n%s\n", farewell)
			return nil
		}

		question := strings.TrimSpace(line)
		switch {
		case question == "":
			continue
		case isQuitCommand(question):
			fmt.Fprintln(l.out, farewell)
			return nil
		default:
			l.answer(ctx, question)
		}
	}
}

func (l *Loop) printIntro() {
	fmt.Fprintln(l.out, "\nGeben Sie Ihre Frage ein. Mit 'exit' oder 'quit' beenden Sie das Programm.")
	if l.textKey != "" {
		fmt.Fprintf(l.out, "Es wird das Payload-Feld '%s' zur Anzeige genutzt, falls vorhanden.\n", l.textKey)
	} else {
		fmt.Fprintln(l.out, "Es wird die gesamte Payload ausgegeben. Nutzen Sie --text-key, um ein spezifisches Feld zu wählen.")
	}
	fmt.Fprintln(l.out)
}

// answer resolves one question. A failing backend ends the question, not the
// session.
func (l *Loop) answer(ctx context.Context, question string) {
	results, err := l.ask(ctx, question)
	if err != nil {
		l.log.Zap.Error("search failed", zap.String("question", question), zap.Error(err))
		fmt.Fprintf(l.out, "Suche fehlgeschlagen: %v\n\n", err)
		return
	}

	if len(results) == 0 {
		fmt.Fprintf(l.out, "%s\n\n", noResultsHint)
		return
	}

	for i, res := range results {
		fmt.Fprintln(l.out, color.CyanString("#%d: Punkt-ID=%s, Score=%.4f", i+1, res.ID, res.Score))
		fmt.Fprintf(l.out, "    Kontext: %s\n\n", l.displayValue(res.Payload))
	}
}

func isQuitCommand(line string) bool {
	return strings.EqualFold(line, "exit") || strings.EqualFold(line, "quit")
}

// lineSource pumps input lines into a channel so that a blocking read can be
// abandoned when the context is canceled.
type lineSource struct {
	lines chan string
}

func newLineSource(r io.Reader) *lineSource {
	ls := &lineSource{lines: make(chan string)}
	go func() {
		defer close(ls.lines)
		scanner := bufio.NewScanner(r)
		scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
		for scanner.Scan() {
			ls.lines <- scanner.Text()
		}
	}()
	return ls
}

// next returns the following input line, or errInputClosed once the input is
// exhausted or the context is canceled.
func (ls *lineSource) next(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", errInputClosed
	case line, ok := <-ls.lines:
		if !ok {
			return "", errInputClosed
		}
		return line, nil
	}
}
