package service

import (
	"context"
	"fmt"

	"github.com/odpf/salt/log"

	"github.com/odpf/shelflife/core/shelflife"
	"github.com/odpf/shelflife/internal/errors"
)

const (
	groupBuild         = "build.openshift.io"
	groupApps          = "apps.openshift.io"
	groupAuthorization = "authorization.openshift.io"

	kindBuilds            = "builds"
	kindDeploymentConfigs = "deploymentconfigs"
	kindRoleBindings      = "rolebindings"
)

// ResourceFetcher performs one authenticated read of a resource collection and
// decodes the body into out
type ResourceFetcher interface {
	Fetch(ctx context.Context, url, token string, out interface{}) error
}

type ActivityAggregator struct {
	fetcher ResourceFetcher
	logger  log.Logger
}

// Aggregate synthesizes a fresh record for the namespace from the cluster
func (a *ActivityAggregator) Aggregate(ctx context.Context, namespace, token, host string) (*shelflife.NamespaceRecord, error) {
	summary, err := a.Summarize(ctx, namespace, token, host)
	if err != nil {
		return nil, err
	}
	return summary.Record, nil
}

// Summarize queries builds, deployment configs and role bindings in that order.
// Any failing query aborts the whole aggregation.
func (a *ActivityAggregator) Summarize(ctx context.Context, namespace, token, host string) (*shelflife.ActivitySummary, error) {
	if namespace == "" {
		return nil, errors.InvalidArgument(shelflife.EntityNamespaceRecord, "namespace name is empty")
	}

	var builds shelflife.BuildList
	if err := a.fetcher.Fetch(ctx, ResourceURL(host, groupBuild, namespace, kindBuilds), token, &builds); err != nil {
		return nil, err
	}
	buildCompletions := make([]string, 0, len(builds.Items))
	for _, build := range builds.Items {
		buildCompletions = append(buildCompletions, build.Status.CompletionTimestamp)
	}

	var deploymentConfigs shelflife.DeploymentConfigList
	if err := a.fetcher.Fetch(ctx, ResourceURL(host, groupApps, namespace, kindDeploymentConfigs), token, &deploymentConfigs); err != nil {
		return nil, err
	}
	var lastDeploys []string
	for _, config := range deploymentConfigs.Items {
		for _, condition := range config.Status.Conditions {
			lastDeploys = append(lastDeploys, condition.LastUpdateTime)
		}
	}

	var roleBindings shelflife.RoleBindingList
	if err := a.fetcher.Fetch(ctx, ResourceURL(host, groupAuthorization, namespace, kindRoleBindings), token, &roleBindings); err != nil {
		return nil, err
	}
	admins := []string{}
	for _, binding := range roleBindings.Items {
		if binding.Metadata.Name != shelflife.AdminRoleBinding {
			continue
		}
		admins = append(admins, binding.UserNames...)
	}

	// first condition in response order, not the most recent one
	lastUpdate := shelflife.NotAvailable
	if len(lastDeploys) > 0 {
		lastUpdate = lastDeploys[0]
	}

	record, err := shelflife.NewNamespaceRecord(namespace, admins, lastUpdate, shelflife.CauseDeployment)
	if err != nil {
		return nil, err
	}
	a.logger.Debug("namespace [%s] has %d builds, %d deployment conditions and %d admins",
		namespace, len(buildCompletions), len(lastDeploys), len(admins))

	return &shelflife.ActivitySummary{
		Record:           record,
		BuildCompletions: buildCompletions,
	}, nil
}

// ResourceURL builds https://{host}/apis/{group}/v1/namespaces/{namespace}/{kind}
func ResourceURL(host, group, namespace, kind string) string {
	return fmt.Sprintf("https://%s/apis/%s/v1/namespaces/%s/%s", shelflife.HostName(host), group, namespace, kind)
}

func NewActivityAggregator(fetcher ResourceFetcher, logger log.Logger) *ActivityAggregator {
	return &ActivityAggregator{
		fetcher: fetcher,
		logger:  logger,
	}
}
