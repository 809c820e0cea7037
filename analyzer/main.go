package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/newsmood/newsmood/internal/config"
	"github.com/newsmood/newsmood/internal/logger"
	"github.com/newsmood/newsmood/internal/models"
	"github.com/newsmood/newsmood/internal/newsapi"
	"github.com/newsmood/newsmood/internal/report"
	"github.com/newsmood/newsmood/internal/sentiment"
	"github.com/newsmood/newsmood/internal/topics"
)

type articleFetcher interface {
	Everything(ctx context.Context, query string, pageSize int) ([]models.Article, error)
}

type textScorer interface {
	Score(text string) sentiment.Result
}

func main() {
	godotenv.Load()

	log := logger.New("analyzer")
	cfg, err := config.LoadAnalyzer()
	if err != nil {
		log.Error("load config", slog.Any("err", err))
		os.Exit(1)
	}

	client := newsapi.New(cfg.NewsAPIKey, cfg.NewsAPIBaseURL, cfg.HTTPTimeout)
	scorer := sentiment.NewAnalyzer()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	log.Info("fetching news", slog.String("topic", cfg.Topic), slog.Int("page_size", cfg.PageSize))

	analyses, err := analyze(ctx, client, scorer, topics.Query(cfg.Topic), cfg.PageSize)
	if err != nil {
		log.Error("fetch news", slog.Any("err", err))
		os.Exit(1)
	}

	log.Info("analyzed articles", slog.Int("count", len(analyses)))

	if err := report.Write(os.Stdout, analyses); err != nil {
		log.Error("write report", slog.Any("err", err))
		os.Exit(1)
	}
}

// analyze runs the single fetch and scores each article in response order.
func analyze(ctx context.Context, fetcher articleFetcher, scorer textScorer, query string, pageSize int) ([]models.Analysis, error) {
	articles, err := fetcher.Everything(ctx, query, pageSize)
	if err != nil {
		return nil, err
	}

	analyses := make([]models.Analysis, 0, len(articles))
	for _, a := range articles {
		analyses = append(analyses, models.Analysis{
			Article:   a,
			Sentiment: scorer.Score(a.ScoringText()),
		})
	}
	return analyses, nil
}
