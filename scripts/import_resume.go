package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gorm.io/datatypes"

	"seekr/backend/internal/config"
	"seekr/backend/internal/logger"
	"seekr/backend/internal/models"
	"seekr/backend/internal/repositories"
	"seekr/backend/internal/services"
)

type importOptions struct {
	file     string
	company  string
	position string
}

func newImportCommand() *cobra.Command {
	opts := &importOptions{}

	cmd := &cobra.Command{
		Use:   "import_resume",
		Short: "Import an existing resume file into the resumes table",
		Long: "Extract text from a .pdf, .docx or .txt resume, turn it into structured resume JSON " +
			"with the configured LLM provider and store it under a company and position.",
		Example:      `  go run ./scripts --file ./resume.pdf --company Acme --position "Backend Engineer"`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := opts.validate(); err != nil {
				return err
			}
			return runImport(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "Path to a .pdf, .docx or .txt resume")
	cmd.Flags().StringVar(&opts.company, "company", "", "Company name to store the resume under")
	cmd.Flags().StringVar(&opts.position, "position", "", "Position name to store the resume under")
	_ = cmd.MarkFlagRequired("file")
	_ = cmd.MarkFlagRequired("company")
	_ = cmd.MarkFlagRequired("position")

	return cmd
}

func (o *importOptions) validate() error {
	o.company = strings.TrimSpace(o.company)
	o.position = strings.TrimSpace(o.position)
	if o.company == "" || o.position == "" {
		return errors.New("--company and --position must not be blank")
	}
	return nil
}

func runImport(ctx context.Context, opts *importOptions) error {
	cfg := config.Load()
	logger.Init(logger.Config{Level: cfg.Log.Level, Format: "pretty"})

	log := logger.Logger.With().Str("file", opts.file).Logger()
	log.Info().Msg("Starting resume import")

	data, err := os.ReadFile(opts.file)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	text, err := services.NewDocumentParser().ExtractText(
		filepath.Base(opts.file),
		mime.TypeByExtension(filepath.Ext(opts.file)),
		data,
	)
	if err != nil {
		return fmt.Errorf("failed to extract text: %w", err)
	}
	log.Info().Int("characters", len(text)).Msg("Text extracted")

	generator, err := services.NewGenerator(ctx, services.GeneratorConfig{
		Provider:        cfg.LLM.Provider,
		Model:           cfg.LLM.Model,
		MaxTokens:       cfg.LLM.MaxTokens,
		Temperature:     cfg.LLM.Temperature,
		AnthropicAPIKey: cfg.LLM.AnthropicAPIKey,
		GeminiAPIKey:    cfg.LLM.GeminiAPIKey,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize generator: %w", err)
	}

	outcome, err := services.NewChatService(generator, cfg.LLM.Timeout).Process(ctx, nil, text)
	if err != nil {
		return fmt.Errorf("failed to generate resume: %w", err)
	}
	if outcome.AdvisoryMessage != nil {
		log.Info().Str("response", *outcome.AdvisoryMessage).Msg("Generator note")
	}

	encoded, err := json.Marshal(outcome.Resume)
	if err != nil {
		return fmt.Errorf("failed to encode resume: %w", err)
	}

	db, err := config.InitDatabase(cfg)
	if err != nil {
		return err
	}

	resume := models.Resume{
		CompanyName:  opts.company,
		PositionName: opts.position,
		ResumeJSON:   datatypes.JSON(encoded),
	}
	if err := repositories.NewResumeRepository(db, cfg.Retention.ResumeTTL).Create(&resume); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return fmt.Errorf("a resume for %s / %s already exists", opts.company, opts.position)
		}
		return err
	}

	log.Info().
		Uint("resume_id", resume.ID).
		Str("name", strings.TrimSpace(outcome.Resume.FirstName+" "+outcome.Resume.LastName)).
		Int("experience", len(outcome.Resume.Experience)).
		Msg("Resume imported")

	return nil
}

func main() {
	if err := newImportCommand().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
