package main

import (
	"context"
	"log"
	"os"
	"time"

	"vacancy-stats/internal/config"
	"vacancy-stats/internal/fetcher"
	"vacancy-stats/internal/platform"
	"vacancy-stats/internal/platform/headhunter"
	"vacancy-stats/internal/platform/superjob"
	"vacancy-stats/internal/report"
	"vacancy-stats/internal/reporter"
	"vacancy-stats/internal/stats"
)

type target struct {
	source platform.Source
	cfg    config.Platform
}

func main() {
	log.SetOutput(os.Stderr)

	//load config
	cfg := config.Load()
	log.Printf("🔧 Config loaded. Languages: %v", cfg.Languages)

	//setup context with overall timeout
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	defer cancel()

	httpFetcher := fetcher.New(nil)
	targets := []target{
		{source: headhunter.NewClient(cfg.HeadHunter, httpFetcher), cfg: cfg.HeadHunter},
		{source: superjob.NewClient(cfg.SuperJob, httpFetcher), cfg: cfg.SuperJob},
	}

	//collect sequentially, one platform after another
	var results []report.PlatformResult
	for _, t := range targets {
		log.Printf("▶️ Collecting from %s", t.source.Name())
		rows, err := stats.CollectAll(ctx, t.source, t.cfg.SearchTemplate, cfg.Languages)
		if err != nil {
			fail(cfg, err)
		}
		log.Printf("✅ %s finished (%d languages)", t.source.Name(), len(rows))
		results = append(results, report.PlatformResult{
			Platform: t.source.Name(),
			Title:    t.cfg.Title,
			Stats:    rows,
		})
	}

	//print tables
	renderer := report.NewTableRenderer(cfg.Locale)
	for _, res := range results {
		if err := renderer.Render(res.Title, res.Stats); err != nil {
			log.Fatalf("❌ %v", err)
		}
	}

	//save results
	if path, err := report.SaveResults(cfg.ResultsDir, time.Now(), results); err != nil {
		log.Printf("⚠️ %v", err)
	} else {
		log.Printf("📁 Results saved to %s", path)
	}

	if cfg.TelegramEnabled() {
		sendToTelegram(cfg, results)
	}

	log.Println("🏁 Execution finished.")
}

// fail reports err to Telegram when configured and stops the run.
func fail(cfg *config.Config, err error) {
	if cfg.TelegramEnabled() {
		if tg, tgErr := reporter.NewTelegramReporter(cfg); tgErr == nil {
			if sendErr := tg.SendError(err); sendErr != nil {
				log.Printf("⚠️ Failed to send error to Telegram: %v", sendErr)
			}
		}
	}
	log.Fatalf("❌ %v", err)
}

func sendToTelegram(cfg *config.Config, results []report.PlatformResult) {
	tg, err := reporter.NewTelegramReporter(cfg)
	if err != nil {
		log.Printf("⚠️ %v", err)
		return
	}
	for _, res := range results {
		table, err := report.RenderString(res.Title, res.Stats, cfg.Locale)
		if err != nil {
			log.Printf("⚠️ %v", err)
			continue
		}
		if err := tg.SendTable(table); err != nil {
			log.Printf("⚠️ Failed to send %s table to Telegram: %v", res.Platform, err)
		}
		//1 second delay to avoid 429
		time.Sleep(1 * time.Second)
	}
	log.Println("🤖 Tables sent to Telegram.")
}
