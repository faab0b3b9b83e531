package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"golang-stock-sentiment/internal/dashboard/app"
	"golang-stock-sentiment/internal/dashboard/config"
	"golang-stock-sentiment/internal/dashboard/dto"
	"golang-stock-sentiment/internal/dashboard/service"
	"golang-stock-sentiment/internal/entity"
	"golang-stock-sentiment/pkg/common"
	"golang-stock-sentiment/pkg/logger"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	configPath string

	newsLanguage string
	newsLimit    int
	batchSize    int
	stockPeriod  string
	detailed     bool
	horizon      int
	exportCSV    bool
)

var rootCmd = &cobra.Command{
	Use:   "dashboard-cli",
	Short: "Run stock sentiment dashboard operations from the terminal",
}

var newsCmd = &cobra.Command{
	Use:   "news <keyword>",
	Short: "Fetch headlines and score their sentiment",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd.Context(), func(ctx context.Context, a *app.App) error {
			news, err := a.Services.News.Fetch(ctx, dto.FetchNewsRequest{
				Keyword:     strings.Join(args, " "),
				Language:    newsLanguage,
				MaxArticles: newsLimit,
			})
			if err != nil {
				return err
			}

			results := a.Services.Sentiment.AnalyzeBatch(ctx, news.Headlines, batchSize)
			if exportCSV {
				out, err := a.Services.Sentiment.ExportCSV(results)
				if err != nil {
					return err
				}
				fmt.Print(out)
				return nil
			}

			summary := a.Services.Sentiment.Summarize(results)
			summary.Warnings = append(news.Warnings, summary.Warnings...)
			return printJSON(summary)
		})
	},
}

var stockCmd = &cobra.Command{
	Use:   "stock <symbol>",
	Short: "Fetch daily prices with moving averages",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd.Context(), func(ctx context.Context, a *app.App) error {
			resp, err := a.Services.Stocks.Fetch(ctx, dto.FetchStockRequest{Symbol: args[0], Period: stockPeriod})
			if err != nil {
				return err
			}
			return printJSON(resp)
		})
	},
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze <text>",
	Short: "Score the sentiment of a piece of text",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd.Context(), func(ctx context.Context, a *app.App) error {
			analysis := a.Services.Sentiment.Analyze(ctx, strings.Join(args, " "), detailed)
			return printJSON(dto.AnalyzeSentimentResponse{
				Score:    analysis.Score,
				Label:    analysis.Score.Label(),
				Warnings: analysis.Warnings(),
			})
		})
	},
}

var forecastCmd = &cobra.Command{
	Use:   "forecast <symbol>",
	Short: "Forecast closing prices for the next days",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !service.IsSupportedHorizon(horizon) {
			return fmt.Errorf("days must be one of 7, 14 or 30, got %d", horizon)
		}
		return withApp(cmd.Context(), func(ctx context.Context, a *app.App) error {
			stock, err := a.Services.Stocks.Fetch(ctx, dto.FetchStockRequest{Symbol: args[0], Period: stockPeriod})
			if err != nil {
				return err
			}
			points, err := a.Services.Forecast.Forecast(ctx, stock.Points, horizon)
			if err != nil {
				return err
			}
			if points == nil {
				points = []entity.ForecastPoint{}
			}
			return printJSON(dto.ForecastResponse{
				Days:     horizon,
				Points:   points,
				Summary:  a.Services.Forecast.Summarize(points),
				Warnings: stock.Warnings,
			})
		})
	},
}

var verifyKeyCmd = &cobra.Command{
	Use:   "verify-key",
	Short: "Check the configured chat-completion API key",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd.Context(), func(ctx context.Context, a *app.App) error {
			session := entity.NewSession("cli", entity.Preferences{})
			return printJSON(a.Services.Settings.VerifyAPIKey(ctx, session))
		})
	},
}

func withApp(ctx context.Context, fn func(ctx context.Context, a *app.App) error) error {
	_ = godotenv.Load()

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	// Sessions are not used by the CLI.
	cfg.Session.Store = common.SessionStoreMemory

	appLogger, err := logger.New(cfg.Logger.Level, "console")
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = appLogger.Sync() }()

	a, err := app.New(ctx, cfg, appLogger)
	if err != nil {
		return err
	}
	defer a.Close()

	return fn(ctx, a)
}

func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "configs/config.yaml", "Path to the configuration file")

	newsCmd.Flags().StringVarP(&newsLanguage, "language", "l", "English", "News language")
	newsCmd.Flags().IntVarP(&newsLimit, "max-articles", "n", 50, "Maximum headlines to fetch")
	newsCmd.Flags().IntVarP(&batchSize, "batch", "b", 20, "Headlines to score")
	newsCmd.Flags().BoolVar(&exportCSV, "csv", false, "Print the scored headlines as CSV")
	stockCmd.Flags().StringVarP(&stockPeriod, "period", "p", "1y", "History period")
	forecastCmd.Flags().StringVarP(&stockPeriod, "period", "p", "1y", "History period")
	forecastCmd.Flags().IntVarP(&horizon, "days", "d", 7, "Days to forecast")
	analyzeCmd.Flags().BoolVar(&detailed, "detailed", false, "Use the detailed analysis mode")

	rootCmd.AddCommand(newsCmd, stockCmd, analyzeCmd, forecastCmd, verifyKeyCmd)
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		log.Printf("Error executing dashboard-cli: %s", err)
		os.Exit(1)
	}
}
