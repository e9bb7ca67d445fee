package post_service

import (
	"context"
	"log/slog"
	"time"

	model "post-sync-client/internal/domain/models"
	ports "post-sync-client/internal/domain/ports/output"
)

// PostClientMetricsDecorator records count and latency of every remote call.
type PostClientMetricsDecorator struct {
	client  ports.PostClient
	log     ports.Logger
	metrics ports.MetricsProvider
}

func NewPostClientMetricsDecorator(
	client ports.PostClient,
	log ports.Logger,
	metrics ports.MetricsProvider,
) ports.PostClient {
	return &PostClientMetricsDecorator{
		client:  client,
		log:     log,
		metrics: metrics,
	}
}

func (d *PostClientMetricsDecorator) ListAll(ctx context.Context) ([]*model.Post, error) {
	start := time.Now()
	posts, err := d.client.ListAll(ctx)
	d.observe("list", start, err)
	if err == nil {
		d.log.Debug("Listed remote posts", slog.Int("count", len(posts)))
	}
	return posts, err
}

func (d *PostClientMetricsDecorator) Create(ctx context.Context, input *model.PostInput) (*model.Post, error) {
	start := time.Now()
	post, err := d.client.Create(ctx, input)
	d.observe("create", start, err)
	return post, err
}

func (d *PostClientMetricsDecorator) Update(ctx context.Context, id int64, input *model.PostInput) (*model.Post, error) {
	start := time.Now()
	post, err := d.client.Update(ctx, id, input)
	d.observe("update", start, err)
	return post, err
}

func (d *PostClientMetricsDecorator) Delete(ctx context.Context, id int64) error {
	start := time.Now()
	err := d.client.Delete(ctx, id)
	d.observe("delete", start, err)
	return err
}

func (d *PostClientMetricsDecorator) observe(operation string, start time.Time, err error) {
	d.metrics.RecordRemoteRequestDuration(operation, time.Since(start))
	d.metrics.IncrementRemoteRequests(operation, err == nil)
}
