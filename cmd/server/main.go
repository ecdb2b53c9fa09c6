package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"cloud.google.com/go/spanner"

	"github.com/solmarket/price-assistant/internal/app/catalog/queries"
	"github.com/solmarket/price-assistant/internal/app/catalog/queries/list_products"
	"github.com/solmarket/price-assistant/internal/app/catalog/repo"
	"github.com/solmarket/price-assistant/internal/app/catalog/usecases/save_product"
	"github.com/solmarket/price-assistant/internal/app/catalog/usecases/seed_catalog"
	"github.com/solmarket/price-assistant/internal/assistant"
	"github.com/solmarket/price-assistant/internal/config"
	"github.com/solmarket/price-assistant/internal/obs"
	"github.com/solmarket/price-assistant/internal/pkg/clock"
	committer "github.com/solmarket/price-assistant/internal/pkg/committer"
	httpapi "github.com/solmarket/price-assistant/internal/transport/http"
	"github.com/solmarket/price-assistant/internal/voice"
)

func main() {
	obs.InitLogger()
	cfg := config.Load()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle SIGINT/SIGTERM.
	go func() {
		ch := make(chan os.Signal, 1)
		signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
		<-ch
		obs.Logger.Info("shutdown signal received")
		cancel()
	}()

	client, err := spanner.NewClient(ctx, cfg.SpannerDatabase)
	if err != nil {
		log.Fatalf("spanner.NewClient: %v", err)
	}
	defer client.Close()

	clk := clock.RealClock{}
	prodRepo := repo.NewProductRepo()
	outboxRepo := repo.NewOutboxRepo()
	cm := committer.NewAdapter(client)
	readModel := queries.NewSpannerReadModel(client)

	// Voice capability is probed exactly once at process start. The toggle
	// endpoint flips a flag on top of this initial value and never re-probes.
	voiceCap := voice.Probe(cfg.VoiceTTSCmd)
	if voiceCap.Available() {
		obs.Logger.Info("voice_ready", "cmd", cfg.VoiceTTSCmd)
	} else {
		obs.Logger.Warn("voice_unavailable", "reason", voiceCap.Reason())
	}
	voiceState := voice.NewState(voiceCap.Available())

	facade := assistant.New(
		save_product.NewInteractor(prodRepo, outboxRepo, cm, clk),
		seed_catalog.NewInteractor(prodRepo, outboxRepo, cm, readModel, clk),
		list_products.NewHandler(readModel),
		voiceState,
	)

	// Seed the default catalog if the store is empty. Idempotent.
	seeded, err := facade.Initialize(ctx)
	if err != nil {
		log.Fatalf("seed catalog: %v", err)
	}
	if seeded {
		obs.Logger.Info("catalog_seeded", "products", seed_catalog.SeedSize())
	}

	speaker, _ := voiceCap.Speaker()
	app := httpapi.NewApp(facade, speaker)
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: httpapi.NewRouter(app),
	}

	go func() {
		obs.Logger.Info("http server listening", "addr", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			obs.Logger.Error("http serve", "err", err.Error())
			cancel()
		}
	}()

	<-ctx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		obs.Logger.Error("http shutdown", "err", err.Error())
	}

	obs.Logger.Info("server stopped")
}
