package main

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"github.com/newsmood/newsmood/internal/chat"
	"github.com/newsmood/newsmood/internal/config"
	"github.com/newsmood/newsmood/internal/logger"
	"github.com/newsmood/newsmood/internal/models"
	"github.com/newsmood/newsmood/internal/newsapi"
	"github.com/newsmood/newsmood/internal/sentiment"
	"github.com/newsmood/newsmood/internal/topics"
)

func main() {
	godotenv.Load()

	log := logger.New("api")
	cfg, err := config.LoadAPI()
	if err != nil {
		log.Error("load config", slog.Any("err", err))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	var assistant chatAssistant
	if cfg.GeminiAPIKey != "" {
		a, err := chat.New(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			log.Warn("init chat assistant, /chat disabled", slog.Any("err", err))
		} else {
			assistant = a
		}
	} else {
		log.Warn("GEMINI_API_KEY not set, /chat disabled")
	}

	srv := &server{
		log:       log,
		cfg:       cfg,
		fetcher:   newsapi.New(cfg.NewsAPIKey, cfg.NewsAPIBaseURL, cfg.HTTPTimeout),
		scorer:    sentiment.NewAnalyzer(),
		assistant: assistant,
	}

	httpServer := &http.Server{
		Addr:              cfg.BindAddr,
		Handler:           srv.routes(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      60 * time.Second,
	}

	go func() {
		log.Info("api server starting", slog.String("addr", cfg.BindAddr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server stopped", slog.Any("err", err))
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	log.Info("shutdown signal received")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown", slog.Any("err", err))
	}
}

type articleFetcher interface {
	Everything(ctx context.Context, query string, pageSize int) ([]models.Article, error)
}

type textScorer interface {
	Score(text string) sentiment.Result
}

type chatAssistant interface {
	Reply(ctx context.Context, message string) (string, error)
}

type server struct {
	log       *slog.Logger
	cfg       *config.API
	fetcher   articleFetcher
	scorer    textScorer
	assistant chatAssistant
}

func (s *server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/health", s.handleHealth)
	r.Get("/topics", s.handleTopics)
	r.Get("/news", s.handleNews)
	r.Post("/chat", s.handleChat)

	return r
}

type errorResponse struct {
	Error string `json:"error"`
}

type newsResponse struct {
	Topic    string            `json:"topic"`
	Articles []articleResponse `json:"articles"`
}

type articleResponse struct {
	models.Analysis
	Phrase string `json:"phrase"`
}

func (s *server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *server) handleTopics(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{"topics": topics.Names()})
}

func (s *server) handleNews(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 45*time.Second)
	defer cancel()

	topic := strings.TrimSpace(r.URL.Query().Get("topic"))
	if topic == "" || !topics.Known(topic) {
		topic = "technology"
	}

	articles, err := s.fetcher.Everything(ctx, topics.Query(topic), s.cfg.PageSize)
	if err != nil {
		s.log.Error("fetch news", slog.Any("err", err), slog.String("topic", topic))
		writeJSON(w, http.StatusBadGateway, errorResponse{Error: "failed to fetch news"})
		return
	}

	items := make([]articleResponse, 0, len(articles))
	for _, a := range articles {
		result := s.scorer.Score(a.ScoringText())
		items = append(items, articleResponse{
			Analysis: models.Analysis{Article: a, Sentiment: result},
			Phrase:   result.Label.Phrase(),
		})
	}

	writeJSON(w, http.StatusOK, newsResponse{Topic: topic, Articles: items})
}

func (s *server) handleChat(w http.ResponseWriter, r *http.Request) {
	if s.assistant == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "chat assistant is not configured"})
		return
	}

	var payload struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || strings.TrimSpace(payload.Message) == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "missing message"})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 45*time.Second)
	defer cancel()

	reply, err := s.assistant.Reply(ctx, payload.Message)
	if err != nil {
		s.log.Error("chat reply", slog.Any("err", err))
		writeJSON(w, http.StatusBadGateway, errorResponse{Error: "failed to generate a response"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"response": reply})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		// nothing better to do
	}
}
