// Package main provides the caselight command line client. The root command
// launches the interactive TUI; subcommands cover one-shot searches, saved
// witness management, issue spotting, and the MCP server.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"caselight-agent/src/api"
	"caselight-agent/src/config"
	"caselight-agent/src/contracts"
	"caselight-agent/src/filter"
	"caselight-agent/src/journal"
	"caselight-agent/src/logger"
	"caselight-agent/src/mcp"
	"caselight-agent/src/store"
	"caselight-agent/src/tui"
)

var (
	appConfig *config.Config

	// Flag overrides for environment configuration.
	flagAPIURL  string
	flagStore   string
	flagTimeout string
	flagJournal string
)

var rootCmd = &cobra.Command{
	Use:   "caselight",
	Short: "Caselight - expert witness search and issue spotting for legal teams",
	Long: `Caselight is a terminal client for a legal-analysis backend.

It searches for expert witness candidates, filters and saves them, spots
issues in legal text, and can expose the same operations as MCP tools.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		appConfig, err = config.LoadFromEnv()
		if err != nil {
			return fmt.Errorf("configuration error: %w", err)
		}
		applyFlagOverrides(appConfig)
		return appConfig.Validate()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI()
	},
}

// applyFlagOverrides lets command line flags win over environment values.
func applyFlagOverrides(cfg *config.Config) {
	if flagAPIURL != "" {
		cfg.APIBaseURL = flagAPIURL
	}
	if flagStore != "" {
		cfg.Store = flagStore
	}
	if flagTimeout != "" {
		if d, err := config.ParseTimeout(flagTimeout); err == nil {
			cfg.Timeout = d
		}
	}
	if flagJournal != "" {
		cfg.Brokers = config.SplitBrokers(flagJournal)
	}
}

// newClient builds the backend API client from the active configuration.
func newClient() *api.Client {
	return api.NewClient(appConfig.APIBaseURL, appConfig.Timeout)
}

// newStore builds the saved-witness store selected by --store.
func newStore() (store.SavedStore, error) {
	switch appConfig.Store {
	case config.StoreFile:
		return store.NewFileStore(appConfig.SavedFile())
	case config.StorePostgres:
		return store.NewPostgresStore(appConfig.PostgresDSN)
	default:
		return store.NewRemoteStore(newClient()), nil
	}
}

// newJournal builds the session journal: a Redpanda broker when brokers are
// configured, an in-process one otherwise. The recorder mirrors the topic to
// a per-session JSONL file. Journal setup failure degrades to no journal.
func newJournal(ctx context.Context, log logger.Logger) (*journal.Publisher, func()) {
	sessionID := journal.NewSessionID()

	var broker journal.Broker
	if len(appConfig.Brokers) > 0 {
		rp, err := journal.NewRedpandaBroker(appConfig.Brokers, log)
		if err != nil {
			log.Error("session journal disabled: %v", err)
			return nil, func() {}
		}
		broker = rp
	} else {
		broker = journal.NewInMemoryBroker()
	}

	recorder := journal.NewRecorder(broker, log, appConfig.JournalFile(sessionID))
	recorderCtx, cancel := context.WithCancel(ctx)
	go func() {
		if err := recorder.Run(recorderCtx); err != nil && recorderCtx.Err() == nil {
			log.Error("session recorder stopped: %v", err)
		}
	}()

	pub := journal.NewPublisher(broker, log, sessionID)
	cleanup := func() {
		cancel()
		broker.Close()
	}
	return pub, cleanup
}

// runTUI starts the interactive client. TUI mode logs to a file so nothing
// corrupts the alternate screen.
func runTUI() error {
	log, err := logger.NewFileLogger(appConfig.LogFile())
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer log.Close()

	savedStore, err := newStore()
	if err != nil {
		return err
	}
	defer savedStore.Close()

	pub, stopJournal := newJournal(context.Background(), log)
	defer stopJournal()

	return tui.Start(tui.Options{
		Client:      newClient(),
		Store:       savedStore,
		Journal:     pub,
		Logger:      log,
		SearchLimit: appConfig.SearchLimit,
	})
}

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal client (the default)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI()
	},
}

var (
	searchIndustry    string
	searchDescription string
	searchName        string
	searchLimit       int
	searchJSON        bool
	minSimilarity     int
	minExperience     int
	filterSector      string
	filterLocation    string
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Run a one-shot witness search and print the results",
	RunE: func(cmd *cobra.Command, args []string) error {
		if searchIndustry == "" || searchDescription == "" {
			return fmt.Errorf("--industry and --description are required")
		}

		client := newClient()
		ctx, cancel := context.WithTimeout(cmd.Context(), appConfig.Timeout)
		defer cancel()

		candidates, err := client.SearchWitnesses(ctx, contracts.SearchRequest{
			Industry:    searchIndustry,
			Description: searchDescription,
			Name:        searchName,
			Limit:       appConfig.ClampLimit(searchLimit),
		})
		if err != nil {
			return fmt.Errorf("search failed: %w", err)
		}

		view := filter.Apply(candidates, filter.Params{
			MinSimilarity: minSimilarity,
			MinExperience: minExperience,
			Sector:        filterSector,
			Location:      filterLocation,
		})

		if searchJSON {
			return printJSON(os.Stdout, view)
		}
		printCandidateTable(os.Stdout, view)
		return nil
	},
}

var savedCmd = &cobra.Command{
	Use:   "saved",
	Short: "Manage saved witness candidates",
}

var savedJSON bool

var savedListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved witness candidates",
	RunE: func(cmd *cobra.Command, args []string) error {
		savedStore, err := newStore()
		if err != nil {
			return err
		}
		defer savedStore.Close()

		ctx, cancel := context.WithTimeout(cmd.Context(), appConfig.Timeout)
		defer cancel()

		candidates, err := savedStore.List(ctx)
		if err != nil {
			return fmt.Errorf("failed to list saved witnesses: %w", err)
		}
		if savedJSON {
			return printJSON(os.Stdout, candidates)
		}
		printCandidateTable(os.Stdout, candidates)
		return nil
	},
}

var savedRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a saved witness candidate by id",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		savedStore, err := newStore()
		if err != nil {
			return err
		}
		defer savedStore.Close()

		ctx, cancel := context.WithTimeout(cmd.Context(), appConfig.Timeout)
		defer cancel()

		status, err := savedStore.Delete(ctx, args[0])
		if err != nil {
			return fmt.Errorf("delete failed: %w", err)
		}
		if status != contracts.StatusOK {
			return fmt.Errorf("delete returned status %q", status)
		}
		fmt.Printf("Deleted %s\n", args[0])
		return nil
	},
}

var (
	analyzeFile         string
	analyzeText         string
	analyzeInstructions string
	analyzeStyle        string
	analyzeJSON         bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Spot issues in legal text or a document",
	RunE: func(cmd *cobra.Command, args []string) error {
		if (analyzeFile == "") == (analyzeText == "") {
			return fmt.Errorf("exactly one of --file or --text is required")
		}

		client := newClient()
		ctx, cancel := context.WithTimeout(cmd.Context(), appConfig.Timeout)
		defer cancel()

		var result *contracts.AnalysisResult
		var err error
		if analyzeFile != "" {
			result, err = client.AnalyzeFile(ctx, analyzeFile, analyzeInstructions, analyzeStyle, true)
		} else {
			result, err = client.AnalyzeText(ctx, contracts.TextAnalysisRequest{
				Text:         analyzeText,
				Instructions: analyzeInstructions,
				Style:        analyzeStyle,
				ReturnJSON:   true,
			})
		}
		if err != nil {
			return fmt.Errorf("analysis failed: %w", err)
		}

		if analyzeJSON {
			return printJSON(os.Stdout, result)
		}
		printAnalysis(os.Stdout, result)
		return nil
	},
}

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve caselight tools over the Model Context Protocol on stdio",
	RunE: func(cmd *cobra.Command, args []string) error {
		savedStore, err := newStore()
		if err != nil {
			return err
		}
		defer savedStore.Close()

		return mcp.NewServer(newClient(), savedStore).Run()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagAPIURL, "api-url", "", "backend base URL (overrides CASELIGHT_API_URL)")
	rootCmd.PersistentFlags().StringVar(&flagStore, "store", "", "saved store: remote, file, or postgres")
	rootCmd.PersistentFlags().StringVar(&flagTimeout, "timeout", "", "request timeout, e.g. 30s")
	rootCmd.PersistentFlags().StringVar(&flagJournal, "journal", "", "comma-separated Redpanda brokers for the session journal")

	searchCmd.Flags().StringVar(&searchIndustry, "industry", "", "industry or sector of the case (required)")
	searchCmd.Flags().StringVar(&searchDescription, "description", "", "case description (required)")
	searchCmd.Flags().StringVar(&searchName, "name", "", "narrow the search to a specific person")
	searchCmd.Flags().IntVar(&searchLimit, "limit", 0, "max candidates to return")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "print results as JSON")
	searchCmd.Flags().IntVar(&minSimilarity, "min-similarity", 0, "hide candidates below this similarity score")
	searchCmd.Flags().IntVar(&minExperience, "min-experience", 0, "hide candidates below this many years of experience")
	searchCmd.Flags().StringVar(&filterSector, "sector", "", "show only candidates whose sector contains this text")
	searchCmd.Flags().StringVar(&filterLocation, "location", "", "show only candidates whose location contains this text")

	savedListCmd.Flags().BoolVar(&savedJSON, "json", false, "print results as JSON")
	savedCmd.AddCommand(savedListCmd, savedRmCmd)

	analyzeCmd.Flags().StringVar(&analyzeFile, "file", "", "document to analyze")
	analyzeCmd.Flags().StringVar(&analyzeText, "text", "", "text to analyze")
	analyzeCmd.Flags().StringVar(&analyzeInstructions, "instructions", "", "extra instructions for the analysis")
	analyzeCmd.Flags().StringVar(&analyzeStyle, "style", "", "analysis style")
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "print the result as JSON")

	rootCmd.AddCommand(tuiCmd, searchCmd, savedCmd, analyzeCmd, mcpCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
