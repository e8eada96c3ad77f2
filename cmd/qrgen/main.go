package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/goliatone/go-qrgen/internal/api"
	"github.com/goliatone/go-qrgen/pkg/config"
	"github.com/goliatone/go-qrgen/pkg/history"
	"github.com/goliatone/go-qrgen/pkg/model"
	"github.com/goliatone/go-qrgen/pkg/orchestrator"
	"github.com/goliatone/go-qrgen/pkg/palette"
	"github.com/goliatone/go-qrgen/pkg/render"
	"github.com/goliatone/go-qrgen/pkg/renderers/html"
	"github.com/goliatone/go-qrgen/pkg/renderers/tui"
	"github.com/goliatone/go-qrgen/pkg/session"
)

// fieldFlags collects repeated -field key=value arguments in order.
type fieldFlags struct {
	values model.FieldMap
}

func (f *fieldFlags) String() string {
	pairs := make([]string, 0, f.values.Len())
	for _, key := range f.values.Keys() {
		pairs = append(pairs, key+"="+f.values.Get(key))
	}
	return strings.Join(pairs, ",")
}

func (f *fieldFlags) Set(raw string) error {
	key, value, ok := strings.Cut(raw, "=")
	key = strings.TrimSpace(key)
	if !ok || key == "" {
		return fmt.Errorf("expected key=value, got %q", raw)
	}
	f.values.Set(key, value)
	return nil
}

func main() {
	configPath := flag.String("config", "", "settings file (JSON or YAML)")
	serve := flag.Bool("serve", false, "serve the web form and JSON API")
	addr := flag.String("addr", "", "listen address (overrides the settings file)")
	interactive := flag.Bool("interactive", false, "collect fields through terminal prompts")
	categoryName := flag.String("category", "text", "QR code category slug or name")
	outDir := flag.String("out", ".", "directory for the generated PNG and SVG files")
	paletteName := flag.String("palette", "", "colour theme ("+strings.Join(palette.Builtin().Names(), ", ")+")")
	variant := flag.String("variant", "", "colour theme variant")
	previewOnly := flag.Bool("preview", false, "print the payload without encoding it")
	var fields fieldFlags
	flag.Var(&fields, "field", "field value as key=value (repeatable)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load settings: %v", err)
	}
	if *addr != "" {
		cfg.Server.Addr = *addr
	}
	if *paletteName != "" {
		cfg.Palette = config.Palette{Theme: *paletteName, Variant: *variant}
	}

	logger := cfg.Logging.NewLogger(os.Stderr)
	catalog := palette.Builtin()
	if cfg.Palette.Theme != "" {
		cfg.Render, err = catalog.Apply(cfg.Render, cfg.Palette.Theme, cfg.Palette.Variant)
		if err != nil {
			log.Fatalf("Failed to apply palette: %v", err)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	pipeline, err := newPipeline(logger)
	if err != nil {
		log.Fatalf("Failed to configure pipeline: %v", err)
	}

	switch {
	case *serve:
		if err := runServer(ctx, cfg, pipeline, catalog, logger); err != nil {
			log.Fatalf("Server stopped: %v", err)
		}
	case *interactive:
		if err := runInteractive(ctx, cfg, pipeline, *outDir); err != nil && !errors.Is(err, tui.ErrAborted) {
			log.Fatalf("Interactive session failed: %v", err)
		}
	default:
		category, err := model.ParseCategory(*categoryName)
		if err != nil {
			log.Fatalf("Invalid category: %v", err)
		}
		if *previewOnly {
			if err := pipeline.Validate(category, fields.values); err != nil {
				log.Fatalf("Invalid input: %v", err)
			}
			fmt.Println(pipeline.Preview(category, fields.values))
			return
		}
		result, err := pipeline.Generate(ctx, orchestrator.Request{
			Category: category,
			Fields:   fields.values,
			Config:   cfg.Render,
		})
		if err != nil {
			log.Fatalf("Failed to generate QR code: %v", err)
		}
		if err := writeResult(*outDir, result); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
	}
}

func newPipeline(logger *slog.Logger) (*orchestrator.Pipeline, error) {
	page, err := html.New()
	if err != nil {
		return nil, err
	}
	renderers := render.NewRegistry()
	if err := renderers.Register(page); err != nil {
		return nil, err
	}
	return orchestrator.New(
		orchestrator.WithRenderers(renderers),
		orchestrator.WithLogger(logger),
	), nil
}

func newSession(cfg config.Config) *session.Session {
	store := history.NewStore(history.WithCapacity(cfg.History.Capacity))
	return session.New(session.WithHistory(store), session.WithConfig(cfg.Render))
}

func runServer(ctx context.Context, cfg config.Config, pipeline *orchestrator.Pipeline, catalog *palette.Catalog, logger *slog.Logger) error {
	srv, err := api.New(ctx, pipeline,
		api.WithLogger(logger),
		api.WithSession(newSession(cfg)),
		api.WithPalettes(catalog),
	)
	if err != nil {
		return err
	}

	httpServer := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = httpServer.Shutdown(shutdownCtx)
	}()

	logger.Info("listening", slog.String("addr", cfg.Server.Addr))
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func runInteractive(ctx context.Context, cfg config.Config, pipeline *orchestrator.Pipeline, outDir string) error {
	prompts, err := tui.New(tui.WithValidator(pipeline.Registry()))
	if err != nil {
		return err
	}
	sess := newSession(cfg)

	for {
		category, err := prompts.PromptCategory(ctx, pipeline.Categories(), sess.Category())
		if err != nil {
			return err
		}
		if err := sess.SelectCategory(category); err != nil {
			return err
		}

		form, err := pipeline.Form(category)
		if err != nil {
			return err
		}
		values, err := prompts.Collect(ctx, form, render.RenderOptions{Values: sess.Fields()})
		if err != nil {
			return err
		}
		sess.SetFields(values)

		result, _, err := sess.Generate(ctx, pipeline)
		if err != nil {
			_ = prompts.Info(ctx, err.Error())
		} else {
			if err := writeResult(outDir, result); err != nil {
				return err
			}
			_ = prompts.Info(ctx, "QR Code generated successfully! Payload: "+result.Payload)
		}

		again, err := prompts.Confirm(ctx, "Generate another QR code?", true)
		if err != nil {
			return err
		}
		if !again {
			return nil
		}
	}
}

func writeResult(dir string, result orchestrator.Result) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	pngPath := filepath.Join(dir, result.PNGFilename)
	if err := os.WriteFile(pngPath, result.PNG, 0o644); err != nil {
		return err
	}
	svgPath := filepath.Join(dir, result.SVGFilename)
	if err := os.WriteFile(svgPath, result.SVG, 0o644); err != nil {
		return err
	}
	fmt.Printf("QR code written to %s and %s\n", pngPath, svgPath)
	return nil
}
