package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/harsh8864/bharat-ai-tutor/internal/bot"
	"github.com/harsh8864/bharat-ai-tutor/internal/config"
	"github.com/harsh8864/bharat-ai-tutor/internal/content"
	"github.com/harsh8864/bharat-ai-tutor/internal/httpapi"
	"github.com/harsh8864/bharat-ai-tutor/internal/llm"
	"github.com/harsh8864/bharat-ai-tutor/internal/logger"
	"github.com/harsh8864/bharat-ai-tutor/internal/remind"
	"github.com/harsh8864/bharat-ai-tutor/internal/speech"
	"github.com/harsh8864/bharat-ai-tutor/internal/store"
)

// localUserID identifies the stdin learner when no messaging bridge is
// attached.
const localUserID = "local@stdin"

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the tutoring service",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
}

func runServe(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if p, _ := cmd.Flags().GetString("data"); p != "" {
		cfg.DataFile = p
	}

	log, err := logger.New(cfg.LogMode)
	if err != nil {
		return err
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer st.Close()
	if err := st.LoadAll(); err != nil {
		return fmt.Errorf("load sessions: %w", err)
	}
	log.Info("sessions loaded", "users", st.Len(), "backend", cfg.StoreBackend)

	llmCfg, err := llm.ConfigFromEnv()
	if err != nil {
		llmCfg, err = llm.DiscoverConfig()
		if err != nil {
			return err
		}
	}
	provider, err := llm.NewProvider(ctx, llmCfg, log)
	if err != nil {
		return err
	}
	log.Info("llm provider ready", "provider", llmCfg.Provider, "model", provider.ModelID())

	reminders, err := remind.NewFileStore(cfg.RemindersFile)
	if err != nil {
		return err
	}

	var transcriber speech.Transcriber
	if os.Getenv("GOOGLE_APPLICATION_CREDENTIALS") != "" {
		transcriber, err = speech.NewGCPTranscriber(ctx, log)
		if err != nil {
			log.Warn("voice transcription disabled", "error", err)
			transcriber = nil
		} else {
			defer transcriber.Close()
		}
	}

	transport := bot.NewStdioTransport(localUserID, os.Stdin, os.Stdout)
	go transport.Start(ctx)

	b := bot.New(bot.Options{
		Store:        st,
		Generator:    content.NewGenerator(provider),
		Provider:     provider,
		Transcriber:  transcriber,
		Reminders:    reminders,
		Transport:    transport,
		Log:          log,
		VoiceReplies: cfg.VoiceReplies,
	})

	go store.AutoSave(ctx, st, store.DefaultSaveInterval, log)

	sched := remind.NewScheduler(reminders, func(ctx context.Context, userID, msg string) error {
		return transport.SendText(ctx, userID, msg)
	}, log)
	go sched.Run(ctx, remind.SweepInterval)

	api := httpapi.NewServer(st, reminders, log)
	go func() {
		if err := api.Serve(ctx, cfg.HTTPAddr); err != nil {
			log.Error("http api stopped", "error", err)
		}
	}()

	log.Info("bharat-tutor running", "http_addr", cfg.HTTPAddr)
	b.Run(ctx)

	if err := st.SaveAll(); err != nil {
		log.Error("final save failed", "error", err)
	}
	return nil
}

func openStore(cfg config.Config) (store.Store, error) {
	if cfg.StoreBackend == "sqlite" {
		return store.NewSQLStore(cfg.SQLitePath)
	}
	return store.NewFileStore(cfg.DataFile)
}
