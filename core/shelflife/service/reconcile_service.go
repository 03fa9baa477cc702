package service

import (
	"context"
	"fmt"

	"github.com/odpf/salt/log"

	"github.com/odpf/shelflife/core/shelflife"
	"github.com/odpf/shelflife/internal/errors"
	"github.com/odpf/shelflife/internal/telemetry"
)

const (
	metricReconcileOutcomes = "shelflife_reconcile_outcomes_total"
	metricTrackedNamespaces = "shelflife_tracked_namespaces"
)

type RecordRepository interface {
	GetAll(ctx context.Context, collection shelflife.Collection) ([]*shelflife.NamespaceRecord, error)
	Insert(ctx context.Context, collection shelflife.Collection, record *shelflife.NamespaceRecord) error
	DeleteByName(ctx context.Context, collection shelflife.Collection, name string) error
}

type Aggregator interface {
	Aggregate(ctx context.Context, namespace, token, host string) (*shelflife.NamespaceRecord, error)
}

// Confirmer asks the operator a single yes/no question
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) (shelflife.Answer, error)
}

type Outcome string

const (
	OutcomeAlreadyTracked  Outcome = "already_tracked"
	OutcomeAdded           Outcome = "added"
	OutcomeDeclined        Outcome = "declined"
	OutcomeInvalidResponse Outcome = "invalid_response"
)

type state string

const (
	stateFetching             state = "fetching"
	stateComparing            state = "comparing"
	stateAwaitingConfirmation state = "awaiting_confirmation"
	stateMutating             state = "mutating"
	stateDone                 state = "done"
)

type ReconcileService struct {
	aggregator Aggregator
	repo       RecordRepository
	confirmer  Confirmer

	logger log.Logger
}

// Reconcile offers to add the namespace to the collection when it is not tracked yet.
// Lookup and insert are not atomic, two operators racing on the same namespace can
// both insert it.
func (s *ReconcileService) Reconcile(ctx context.Context, collection shelflife.Collection, namespace, token, host string) (Outcome, error) {
	s.enter(stateFetching, namespace)
	s.logger.Info("Querying API for namespace %s...", namespace)
	record, err := s.aggregator.Aggregate(ctx, namespace, token, host)
	if err != nil {
		return "", err
	}
	s.logger.Info(" > > > API Response > > > %s", record)

	existing, err := s.repo.GetAll(ctx, collection)
	if err != nil {
		return "", err
	}

	s.enter(stateComparing, namespace)
	if shelflife.ContainsName(existing, record.Name) {
		s.logger.Info("The requested namespace is in the database.")
		return s.done(collection, namespace, OutcomeAlreadyTracked), nil
	}

	s.enter(stateAwaitingConfirmation, namespace)
	prompt := fmt.Sprintf("This namespace (%s) is not in the database! Would you like to add it? (y/n):", record.Name)
	answer, err := s.confirmer.Confirm(ctx, prompt)
	if err != nil {
		return "", err
	}

	switch answer {
	case shelflife.AnswerYes:
		s.enter(stateMutating, namespace)
		s.logger.Info("%s", collection.AddedMessage(record.Name))
		if err := s.repo.Insert(ctx, collection, record); err != nil {
			return "", err
		}
		return s.done(collection, namespace, OutcomeAdded), nil
	case shelflife.AnswerNo:
		s.logger.Info("Ok.")
		return s.done(collection, namespace, OutcomeDeclined), nil
	default:
		s.logger.Warn("Invalid response. %s", errors.InvalidInput(shelflife.EntityNamespaceRecord, "expected y or n"))
		return s.done(collection, namespace, OutcomeInvalidResponse), nil
	}
}

// Delete removes the namespace from the collection without looking it up or asking
func (s *ReconcileService) Delete(ctx context.Context, collection shelflife.Collection, name string) error {
	if err := s.repo.DeleteByName(ctx, collection, name); err != nil {
		return err
	}
	s.logger.Info("%s has been removed.", name)
	return nil
}

// List returns every record of the collection and reports how many there are
func (s *ReconcileService) List(ctx context.Context, collection shelflife.Collection) ([]*shelflife.NamespaceRecord, error) {
	records, err := s.repo.GetAll(ctx, collection)
	if err != nil {
		return nil, err
	}
	telemetry.NewGauge(metricTrackedNamespaces, map[string]string{
		"collection": collection.String(),
	}).Set(float64(len(records)))
	return records, nil
}

func (s *ReconcileService) enter(st state, namespace string) {
	s.logger.Debug("reconcile [%s]: %s", namespace, st)
}

func (s *ReconcileService) done(collection shelflife.Collection, namespace string, outcome Outcome) Outcome {
	s.enter(stateDone, namespace)
	telemetry.NewCounter(metricReconcileOutcomes, map[string]string{
		"collection": collection.String(),
		"outcome":    string(outcome),
	}).Inc()
	return outcome
}

func NewReconcileService(aggregator Aggregator, repo RecordRepository, confirmer Confirmer, logger log.Logger) *ReconcileService {
	return &ReconcileService{
		aggregator: aggregator,
		repo:       repo,
		confirmer:  confirmer,
		logger:     logger,
	}
}
