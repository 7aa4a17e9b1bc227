package app

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"runtime"
	"time"

	"github.com/project/library/config"
	"github.com/project/library/internal/events"
	"github.com/project/library/internal/usecase/outbox"
	"github.com/project/library/internal/usecase/repository"
	"go.uber.org/zap"
)

const (
	dialerTimeoutSeconds                  = 30
	dialerKeepAliveSeconds                = 180
	transportMaxIdleConns                 = 100
	transportMaxConnsPerHost              = 100
	transportIdleConnTimeoutSeconds       = 90
	transportTLSHandshakeTimeoutSeconds   = 15
	transportExpectContinueTimeoutSeconds = 2
)

const contentType = "application/json"

var errFailRequest = errors.New("not 2xx response")

// runOutbox starts the relay with the configured sink. The returned cleanup
// waits for the workers and releases the sink.
func runOutbox(ctx context.Context, cfg *config.Config, logger *zap.Logger, st *storage) (func(), error) {
	if !cfg.Outbox.Enabled {
		return func() {}, nil
	}

	var (
		globalHandler outbox.GlobalHandler
		release       = func() {}
	)

	switch cfg.Outbox.Sink {
	case config.SinkAMQP:
		publisher, err := events.NewPublisher(cfg.RabbitMQ.URL, cfg.RabbitMQ.Exchange, layerLogger(cfg.Log.LogOutboxWorker, logger))
		if err != nil {
			return nil, err
		}
		globalHandler = publisher.GlobalHandler()
		release = func() {
			if err := publisher.Close(); err != nil {
				logger.Error("can not close rabbitmq publisher", zap.Error(err))
			}
		}
	default:
		globalHandler = globalOutboxHandler(newHTTPClient(), cfg.Outbox.RentalSendURL, cfg.Outbox.BookSendURL)
	}

	outboxService := outbox.New(layerLogger(cfg.Log.LogOutboxWorker, logger), st.outbox, globalHandler, cfg, st.transactor)

	wg := outboxService.Start(
		ctx,
		cfg.Outbox.Workers,
		cfg.Outbox.BatchSize,
		cfg.Outbox.WaitTimeMS,
		cfg.Outbox.InProgressTTLMS,
	)
	logger.Info("outbox started", zap.String("sink", cfg.Outbox.Sink), zap.Int("workers", cfg.Outbox.Workers))

	return func() {
		wg.Wait()
		release()
	}, nil
}

func newHTTPClient() *http.Client {
	dialer := &net.Dialer{
		Timeout:   dialerTimeoutSeconds * time.Second,
		KeepAlive: dialerKeepAliveSeconds * time.Second,
	}

	transport := &http.Transport{
		DialContext:           dialer.DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          transportMaxIdleConns,
		MaxConnsPerHost:       transportMaxConnsPerHost,
		IdleConnTimeout:       transportIdleConnTimeoutSeconds * time.Second,
		TLSHandshakeTimeout:   transportTLSHandshakeTimeoutSeconds * time.Second,
		ExpectContinueTimeout: transportExpectContinueTimeoutSeconds * time.Second,
		MaxIdleConnsPerHost:   runtime.GOMAXPROCS(0) + 1,
	}

	client := new(http.Client)
	client.Transport = transport
	return client
}

func globalOutboxHandler(
	client *http.Client,
	rentalURL,
	bookURL string,
) outbox.GlobalHandler {
	return func(kind repository.OutboxKind) (outbox.KindHandler, error) {
		switch kind {
		case repository.OutboxKindRental:
			return postHandler(client, rentalURL), nil
		case repository.OutboxKindBook:
			return postHandler(client, bookURL), nil
		default:
			return nil, fmt.Errorf("unsupported outbox kind: %d", kind)
		}
	}
}

// postHandler forwards the event payload as is.
func postHandler(client *http.Client, url string) outbox.KindHandler {
	return func(ctx context.Context, data []byte) error {
		request, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
		if err != nil {
			return fmt.Errorf("can not build post request: %w", err)
		}
		request.Header.Set("Content-Type", contentType)

		response, err := client.Do(request)
		if err != nil {
			return fmt.Errorf("can not make post request to given url: %w", err)
		}

		defer response.Body.Close()

		if response.StatusCode < http.StatusOK || response.StatusCode >= http.StatusMultipleChoices {
			return fmt.Errorf("%w: %d", errFailRequest, response.StatusCode)
		}

		return nil
	}
}
