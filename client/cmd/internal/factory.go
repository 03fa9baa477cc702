package internal

import (
	"context"

	"github.com/odpf/salt/log"

	"github.com/odpf/shelflife/client/cmd/internal/progressbar"
	"github.com/odpf/shelflife/config"
	"github.com/odpf/shelflife/core/shelflife"
	"github.com/odpf/shelflife/core/shelflife/service"
	"github.com/odpf/shelflife/ext/openshift"
	"github.com/odpf/shelflife/internal/store/postgres"
	"github.com/odpf/shelflife/internal/store/sqlite"
	"github.com/odpf/shelflife/internal/telemetry"
)

// NewRecordRepository connects to the configured store, cleanup closes the connection
func NewRecordRepository(conf config.StoreConfig, logger log.Logger) (repo service.RecordRepository, cleanup func(), err error) {
	if conf.Driver == config.StoreDriverSQLite {
		db, err := sqlite.Connect(conf.ConnectionURL())
		if err != nil {
			return nil, nil, err
		}
		return sqlite.NewRecordRepository(db, logger), func() {
			if err := db.Close(); err != nil {
				logger.Error("error closing sqlite store: %s", err)
			}
		}, nil
	}

	db, err := postgres.Connect(conf.ConnectionURL(), conf.MaxIdleConnection, conf.MaxOpenConnection, logger.Writer())
	if err != nil {
		return nil, nil, err
	}
	return postgres.NewRecordRepository(db, logger), func() {
		if err := postgres.Close(db); err != nil {
			logger.Error("error closing postgres store: %s", err)
		}
	}, nil
}

// NewClusterClient builds the client for the cluster API
func NewClusterClient(conf config.ClusterConfig) *openshift.Client {
	return openshift.NewClient(openshift.NewHTTPClient(conf.Timeout, conf.InsecureSkipVerify))
}

// PushMetrics sends collected metrics when a push gateway is configured, failures are only logged
func PushMetrics(conf config.TelemetryConfig, logger log.Logger) {
	if conf.PushGateway == "" {
		return
	}
	if err := telemetry.Push(conf.PushGateway, conf.Job); err != nil {
		logger.Warn("%s", err)
	}
}

// SpinningAggregator shows a spinner while the cluster is queried
type SpinningAggregator struct {
	aggregator service.Aggregator
}

func NewSpinningAggregator(aggregator service.Aggregator) *SpinningAggregator {
	return &SpinningAggregator{aggregator: aggregator}
}

func (s *SpinningAggregator) Aggregate(ctx context.Context, namespace, token, host string) (*shelflife.NamespaceRecord, error) {
	spinner := progressbar.NewProgressBar()
	spinner.Start("querying cluster...")
	defer spinner.Stop()

	return s.aggregator.Aggregate(ctx, namespace, token, host)
}
