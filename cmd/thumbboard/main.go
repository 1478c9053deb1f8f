package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/btmxh/thumbboard/internal/db"
	"github.com/btmxh/thumbboard/internal/media"
	"github.com/btmxh/thumbboard/internal/routes"
	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
	"github.com/urfave/cli/v3"
)

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("(warn) Unable to load .env file:", err)
	}

	cmd := &cli.Command{
		Name:  "thumbboard",
		Usage: "boards of YouTube video thumbnails",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "debug",
				Sources: cli.EnvVars("LOG_LEVEL"),
			},
			&cli.StringFlag{
				Name:    "database-url",
				Usage:   "SQLite file path or postgres:// URL",
				Value:   "thumbnails.db",
				Sources: cli.EnvVars("DATABASE_URL"),
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			setupLogging(cmd.String("log-level"))
			return ctx, nil
		},
		Commands: []*cli.Command{
			{
				Name:   "migrate",
				Usage:  "create the database schema and exit",
				Action: migrate,
			},
		},
		Action: serve,
	}
	cmd.Flags = append(cmd.Flags, serveFlags...)

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("Exiting", "err", err)
		os.Exit(1)
	}
}

var serveFlags = []cli.Flag{
	&cli.StringFlag{
		Name:    "addr",
		Value:   "localhost:5000",
		Sources: cli.EnvVars("THUMBBOARD_ADDR"),
	},
	&cli.StringFlag{
		Name:    "static-dir",
		Value:   "./static",
		Sources: cli.EnvVars("STATIC_DIR"),
	},
	&cli.DurationFlag{
		Name:    "probe-timeout",
		Usage:   "timeout of a single thumbnail probe",
		Value:   media.DefaultProbeTimeout,
		Sources: cli.EnvVars("PROBE_TIMEOUT"),
	},
	&cli.FloatFlag{
		Name:    "probe-rate",
		Usage:   "thumbnail probes per second, 0 for no limit",
		Sources: cli.EnvVars("PROBE_RATE"),
	},
	&cli.DurationFlag{
		Name:    "request-timeout",
		Usage:   "upper bound for adding a thumbnail",
		Value:   routes.DefaultRequestTimeout,
		Sources: cli.EnvVars("REQUEST_TIMEOUT"),
	},
	&cli.StringFlag{
		Name:    "youtube-api-key",
		Usage:   "look up missing video titles through the YouTube Data API",
		Sources: cli.EnvVars("YOUTUBE_API_KEY"),
	},
	&cli.StringFlag{
		Name:    "gzip-mode",
		Value:   "0",
		Sources: cli.EnvVars("GZIP_MODE"),
	},
	&cli.StringFlag{
		Name:    "https-cert-file",
		Sources: cli.EnvVars("HTTPS_CERT_FILE"),
	},
	&cli.StringFlag{
		Name:    "https-key-file",
		Sources: cli.EnvVars("HTTPS_KEY_FILE"),
	},
}

func setupLogging(levelStr string) {
	logLevel := slog.LevelDebug
	if err := logLevel.UnmarshalText([]byte(levelStr)); err != nil {
		fmt.Println("(warn) Invalid value for LOG_LEVEL environment variable")
	}

	logHandler := tint.NewHandler(os.Stderr, &tint.Options{
		Level: logLevel,
	})

	slog.SetDefault(slog.New(logHandler))
}

func openDB(ctx context.Context, cmd *cli.Command) (*db.DB, error) {
	database, err := db.Open(cmd.String("database-url"))
	if err != nil {
		return nil, err
	}

	if err = database.Migrate(ctx); err != nil {
		database.Close()
		return nil, err
	}

	slog.Info("Database connection initialized", "dialect", database.Dialect().Name())
	return database, nil
}

func migrate(ctx context.Context, cmd *cli.Command) error {
	database, err := openDB(ctx, cmd)
	if err != nil {
		return err
	}
	database.Close()
	return nil
}

func serve(ctx context.Context, cmd *cli.Command) error {
	database, err := openDB(ctx, cmd)
	if err != nil {
		return err
	}
	defer database.Close()

	gzipMode, err := strconv.Atoi(cmd.String("gzip-mode"))
	if err != nil {
		slog.Warn("Invalid value for GZIP_MODE environment variable", "err", err)
		gzipMode = 0
	}

	prober := media.NewHTTPProber(media.HTTPProberOptions{
		Timeout: cmd.Duration("probe-timeout"),
		Rate:    cmd.Float("probe-rate"),
	})

	var titles media.TitleSource
	if apiKey := cmd.String("youtube-api-key"); apiKey != "" {
		titles = media.NewYoutubeAPI(apiKey)
	}

	requestTimeout := cmd.Duration("request-timeout")
	router := routes.CreateMainRouter(routes.Options{
		DB:             database,
		Resolver:       media.NewThumbnailResolver(media.DefaultThumbnailBaseURL, prober.Probe),
		Titles:         titles,
		StaticDir:      cmd.String("static-dir"),
		GzipMode:       gzipMode,
		RequestTimeout: requestTimeout,
	})

	addr := cmd.String("addr")
	server := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      requestTimeout + 15*time.Second,
	}

	cert, key := cmd.String("https-cert-file"), cmd.String("https-key-file")
	if cert != "" && key != "" {
		slog.Info("Starting HTTPS server", slog.String("addr", addr), slog.String("cert", cert), slog.String("key", key))
		return server.ListenAndServeTLS(cert, key)
	}

	slog.Info("Starting HTTP server", slog.String("addr", addr))
	return server.ListenAndServe()
}
