package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"

	"shopetl/internal/config"
	"shopetl/internal/export"
	"shopetl/internal/metrics"
	"shopetl/internal/metrics/prompush"
	"shopetl/internal/pipeline"
	"shopetl/internal/source"

	// register all adapters with the source factory.
	// config specifies which to use but we need to build in support for all of them.
	_ "shopetl/internal/source/all"
)

// main is the entry point for the batch analytics binary. It loads the
// environment config, optionally initializes a metrics backend, and runs the
// extract/transform/export pipeline.
func main() {
	var (
		metricsBackendFlg string
		pushGatewayURLFlg string
		validate          bool
	)

	flag.StringVar(&metricsBackendFlg, "metrics-backend", "", "metrics backend to use (pushgateway, none); overrides env METRICS_BACKEND")
	flag.StringVar(&pushGatewayURLFlg, "pushgateway-url", "", "Pushgateway base URL (overrides env PUSHGATEWAY_URL)")
	flag.BoolVar(&validate, "validate", false, "validate the configuration and exit")
	customers := flag.Bool("customers", true, "process the customers subject")
	products := flag.Bool("products", true, "process the products subject")
	sales := flag.Bool("sales", true, "process the sales subject")
	payments := flag.Bool("payments", true, "process the payments subject")
	doExport := flag.Bool("export", true, "write results to object storage")
	verbose := flag.Bool("v", false, "enable verbose logs")

	flag.Parse()

	cfg := config.Load()

	issues := config.Validate(cfg)
	for _, iss := range issues {
		fmt.Fprintf(os.Stderr, "%s\n", iss.Error())
	}
	if config.HasError(issues) {
		log.Printf("configuration is invalid")
		os.Exit(1)
	}

	// If validate flag is set, only validate the configuration and exit
	if validate {
		log.Printf("configuration is valid")
		os.Exit(0)
	}

	// Decide metrics backend: flag → env config → default.
	backendName := metricsBackendFlg
	if backendName == "" {
		backendName = cfg.MetricsBackend
	}
	switch backendName {
	case "pushgateway":
		gwURL := pushGatewayURLFlg
		if gwURL == "" {
			gwURL = cfg.PushgatewayURL
		}

		b, err := prompush.NewBackend("shopetl", gwURL)
		if err != nil {
			log.Printf("metrics: failed to init prom push backend: %v; using nop", err)
		} else {
			log.Printf("metrics: url=%v, backend=%v", gwURL, backendName)
			metrics.SetBackend(b)
			defer func() {
				if err := metrics.Flush(); err != nil {
					log.Printf("metrics: flush error: %v", err)
				}
			}()
		}

	case "", "none":
		// metrics disabled; nop backend remains
		if *verbose {
			log.Printf("metrics: disabled (backend=%q)", backendName)
		}

	default:
		log.Printf("metrics: unknown backend %q; metrics disabled", backendName)
	}

	ctx := context.Background()
	start := time.Now()

	srcCfg := source.Config{Kind: cfg.DBKind}
	switch cfg.DBKind {
	case "postgres":
		srcCfg.DSN = cfg.PostgresDSN()
	default:
		srcCfg.DSN = cfg.MySQLDSN()
	}

	adapter, err := source.New(ctx, srcCfg)
	if err != nil {
		fatalf("source: %v", err)
	}
	defer adapter.Close()

	sess, err := session.NewSession(&aws.Config{Region: aws.String(cfg.Region)})
	if err != nil {
		fatalf("aws session: %v", err)
	}
	sink := export.NewS3Sink(sess, cfg.S3Bucket)

	if *verbose {
		log.Printf("pipeline: db=%s@%s:%d bucket=%s base=%s",
			cfg.DBKind, cfg.DBHost, cfg.DBPort, cfg.S3Bucket, cfg.OutputPath)
	}

	p := &pipeline.Pipeline{
		Source: adapter,
		Sink:   sink,
		Base:   cfg.OutputPath,
	}
	flags := pipeline.Flags{
		Customers: *customers,
		Products:  *products,
		Sales:     *sales,
		Payments:  *payments,
		Export:    *doExport,
	}

	summary := p.Run(ctx, flags, time.Now())
	if summary.State == pipeline.StateFatal {
		log.Fatalf("run failed: %v", summary.FatalErr)
	}

	if *verbose {
		log.Printf("completed in %s", time.Since(start).Truncate(time.Millisecond))
	}
	if summary.State == pipeline.StatePartialFailure {
		os.Exit(1)
	}
}

func fatalf(format string, a ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", a...)
	os.Exit(1)
}
