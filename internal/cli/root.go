// Package cli defines the fragdoc command: flag surface, startup preamble,
// and assembly of the session (Qdrant client + embedder) around the
// interactive loop.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/fx"

	"github.com/fragdoc/fragdoc/internal/config"
	"github.com/fragdoc/fragdoc/internal/embedding"
	"github.com/fragdoc/fragdoc/internal/logger"
	"github.com/fragdoc/fragdoc/internal/qdrant"
	"github.com/fragdoc/fragdoc/internal/repl"
)

// version can be overridden at build time via:
// go build -ldflags "-X github.com/fragdoc/fragdoc/internal/cli.version=1.2.3"
var version = "0.3.0"

var flagValues config.Flags

var rootCmd = &cobra.Command{
	Use:   "fragdoc",
	Short: "Interaktive Fragebeantwortung mit Qdrant",
	Long: "fragdoc verbindet sich mit einer Qdrant-Instanz, vektorisiert Fragen über ein\n" +
		"Embedding-Modell und zeigt die ähnlichsten gespeicherten Einträge samt Payload an.",
	Version:      version,
	SilenceUsage: true,
	RunE:         runRoot,
}

func init() {
	rootCmd.Flags().StringVar(&flagValues.Collection, "collection", "", "Name der Qdrant-Collection")
	rootCmd.Flags().StringVar(&flagValues.URL, "url", "", "Vollständige URL zur Qdrant-Instanz (z. B. https://xyz.qdrant.tech)")
	rootCmd.Flags().StringVar(&flagValues.Host, "host", "", "Hostname der Qdrant-Instanz, wenn keine URL genutzt wird")
	rootCmd.Flags().IntVar(&flagValues.Port, "port", 0, "Port der Qdrant-Instanz (Standard: 6333)")
	rootCmd.Flags().StringVar(&flagValues.APIKey, "api-key", "", "API-Schlüssel für Qdrant, falls erforderlich")
	rootCmd.Flags().IntVar(&flagValues.TopK, "top-k", 0, "Anzahl der Ergebnisse pro Frage (Standard: 5)")
	rootCmd.Flags().StringVar(&flagValues.TextKey, "text-key", "", "Payload-Feld, das als Antworttext angezeigt wird")
	rootCmd.Flags().StringVar(&flagValues.EmbeddingModel, "embedding-model", "",
		"Name des Embedding-Modells für die Frage-Embeddings (Standard: "+config.DefaultEmbeddingModel+")")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func runRoot(cmd *cobra.Command, args []string) error {
	// A .env in the working directory supplements the process environment.
	_ = godotenv.Load()

	settings, err := config.Resolve(flagValues)
	if err != nil {
		return err
	}

	session, app, err := buildSession(settings)
	if err != nil {
		return err
	}

	startCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := app.Start(startCtx); err != nil {
		return err
	}
	defer func() {
		stopCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = app.Stop(stopCtx)
	}()

	// An interrupt during the loop terminates it gracefully.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := preamble(ctx, cmd.OutOrStdout(), settings, session); err != nil {
		return err
	}

	loop := repl.NewLoop(repl.LoopOptions{
		Store:      session.store,
		Embedder:   session.embedder,
		Collection: settings.Collection,
		TopK:       settings.TopK,
		TextKey:    settings.TextKey,
		In:         cmd.InOrStdin(),
		Out:        cmd.OutOrStdout(),
		Log:        session.log,
	})
	return loop.Run(ctx)
}

// session bundles the live handles owned for the duration of one invocation.
type session struct {
	store    *qdrant.Client
	embedder *embedding.Client
	log      *logger.Logger
}

// buildSession assembles the components through Fx. Construction failures
// (unreachable instance, invalid embedding config) surface as the app error.
func buildSession(settings *config.Settings) (*session, *fx.App, error) {
	var s session

	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			func() *qdrant.Config {
				return &qdrant.Config{
					URL:    settings.URL,
					Host:   settings.Host,
					Port:   settings.Port,
					APIKey: settings.APIKey,
				}
			},
			func() (*embedding.Config, error) {
				cfg, err := embedding.NewConfig()
				if err != nil {
					return nil, err
				}
				cfg.Model = settings.EmbeddingModel
				return cfg, nil
			},
		),
		logger.FXModule,
		qdrant.FXModule,
		embedding.FXModule,
		fx.Populate(&s.store, &s.embedder, &s.log),
	)
	if err := app.Err(); err != nil {
		return nil, nil, err
	}
	return &s, app, nil
}

// preamble prints the startup information the user needs before asking:
// collection size, one sample payload (to show the available fields), and
// the embedding model being loaded. Any failure here is fatal.
func preamble(ctx context.Context, out io.Writer, settings *config.Settings, s *session) error {
	info, err := s.store.GetCollection(ctx, settings.Collection)
	if err != nil {
		return fmt.Errorf("Collection '%s' konnte nicht gelesen werden: %w", settings.Collection, err)
	}
	fmt.Fprintf(out, "Verbunden mit Collection '%s'. Anzahl gespeicherter Punkte: %d.\n",
		info.Name, info.PointCount)

	item, err := s.store.PeekOne(ctx, settings.Collection)
	if err != nil {
		return fmt.Errorf("Beispielpunkt konnte nicht gelesen werden: %w", err)
	}
	if item != nil {
		fmt.Fprintln(out, "Beispiel-Payload der Collection:")
		fmt.Fprintln(out, repl.FormatPayload(item.Payload))
	} else {
		fmt.Fprintln(out, "Die Collection enthält aktuell keine Punkte.")
	}

	fmt.Fprintf(out, "Lade Embedding-Modell '%s'...\n", s.embedder.Model())
	if err := s.embedder.Load(ctx); err != nil {
		return err
	}
	return nil
}
