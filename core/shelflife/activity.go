package shelflife

import "strings"

const (
	// AdminRoleBinding is the only role binding whose users are reported as admins
	AdminRoleBinding = "admin"

	EntityCluster = "cluster"
)

// HostName strips the scheme and trailing slashes so a host can be used in any cluster URL
func HostName(host string) string {
	host = strings.TrimPrefix(host, "https://")
	host = strings.TrimPrefix(host, "http://")
	return strings.TrimRight(host, "/")
}

type BuildList struct {
	Items []Build `json:"items"`
}

type Build struct {
	Status BuildStatus `json:"status"`
}

type BuildStatus struct {
	CompletionTimestamp string `json:"completionTimestamp"`
}

type DeploymentConfigList struct {
	Items []DeploymentConfig `json:"items"`
}

type DeploymentConfig struct {
	Status DeploymentConfigStatus `json:"status"`
}

type DeploymentConfigStatus struct {
	Conditions []DeploymentCondition `json:"conditions"`
}

type DeploymentCondition struct {
	LastUpdateTime string `json:"lastUpdateTime"`
}

type RoleBindingList struct {
	Items []RoleBinding `json:"items"`
}

type RoleBinding struct {
	Metadata ObjectMeta `json:"metadata"`
	// UserNames is nil when the binding carries no userNames field
	UserNames []string `json:"userNames"`
}

type ObjectMeta struct {
	Name string `json:"name"`
}

// ActivitySummary is the aggregated record together with the signals that are
// collected but do not yet influence it
type ActivitySummary struct {
	Record *NamespaceRecord

	BuildCompletions []string
}
