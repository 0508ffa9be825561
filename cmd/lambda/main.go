// The lambda binary runs the on-demand analytics export as an AWS Lambda
// handler: it executes the analytical query set against MySQL and writes each
// result set to S3 as a timestamped JSON object.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"

	"shopetl/internal/analytics"
	"shopetl/internal/config"
	"shopetl/internal/export"
	"shopetl/internal/source/mysql"
)

// Event selects which subjects to process. Absent fields default to true, so
// an empty invocation payload processes everything.
type Event struct {
	ProcessCustomers *bool `json:"process_customers"`
	ProcessProducts  *bool `json:"process_products"`
	ProcessSales     *bool `json:"process_sales"`
	ProcessPayments  *bool `json:"process_payments"`
	ExportToS3       *bool `json:"export_to_s3"`
}

func flagOr(p *bool, def bool) bool {
	if p == nil {
		return def
	}
	return *p
}

func (e Event) flags() analytics.Flags {
	return analytics.Flags{
		Customers: flagOr(e.ProcessCustomers, true),
		Products:  flagOr(e.ProcessProducts, true),
		Sales:     flagOr(e.ProcessSales, true),
		Payments:  flagOr(e.ProcessPayments, true),
		Export:    flagOr(e.ExportToS3, true),
	}
}

// Response mirrors the API-Gateway-style proxy shape: a status code and a
// JSON-encoded body.
type Response struct {
	StatusCode int    `json:"statusCode"`
	Body       string `json:"body"`
}

func okResponse(summary analytics.Summary) Response {
	body, _ := json.Marshal(map[string]any{
		"message":         "Data processing completed successfully",
		"timestamp":       summary.ProcessingTimestamp,
		"files_processed": len(summary.FilesProcessed),
	})
	return Response{StatusCode: 200, Body: string(body)}
}

func errResponse(err error, ts string) Response {
	body, _ := json.Marshal(map[string]any{
		"error":     err.Error(),
		"timestamp": ts,
	})
	return Response{StatusCode: 500, Body: string(body)}
}

func handler(ctx context.Context, event Event) (Response, error) {
	now := time.Now()
	ts := export.RunTimestamp(now)
	log.Printf("starting data processing at %s", ts)

	cfg := config.Load()
	issues := config.Validate(cfg)
	for _, iss := range issues {
		log.Printf("config: %s", iss.Error())
	}
	if config.HasError(issues) {
		return errResponse(errInvalidConfig, ts), nil
	}

	repo, closeFn, err := mysql.NewRepository(ctx, cfg.MySQLDSN())
	if err != nil {
		return errResponse(err, ts), nil
	}
	defer closeFn()

	if err := repo.Ping(ctx); err != nil {
		return errResponse(err, ts), nil
	}

	sess, err := session.NewSession(&aws.Config{Region: aws.String(cfg.Region)})
	if err != nil {
		return errResponse(err, ts), nil
	}

	p := &analytics.Processor{
		Runner: analytics.NewRunner(repo.DB()),
		Sink:   export.NewS3Sink(sess, cfg.S3Bucket),
		Bucket: cfg.S3Bucket,
		Prefix: cfg.S3Prefix,
	}

	summary := p.Process(ctx, event.flags(), now)
	log.Printf("data processing completed: status=%s files=%d errors=%d",
		summary.Status, len(summary.FilesProcessed), len(summary.Errors))

	return okResponse(summary), nil
}

var errInvalidConfig = errors.New("invalid configuration")

func main() {
	lambda.Start(handler)
}
