package config

import "time"

// Env key constants. All exporter configuration env vars use DEPLOYTIME_ prefix;
// duration values support explicit units (e.g. 5m, 40s, 2h).

// Path to kubeconfig file. If unset, KUBECONFIG is used as fallback.
const envKeyKubeConfig = "DEPLOYTIME_KUBECONFIG"

// Kubernetes API server URL. If unset, KUBERNETES_MASTER is used as fallback.
const envKeyKubeMaster = "DEPLOYTIME_KUBE_MASTER"

// Log level: debug, info, warn, error.
const envKeyLogLevel = "DEPLOYTIME_LOG_LEVEL"

// Log format: json or text.
const envKeyLogFormat = "DEPLOYTIME_LOG_FORMAT"

// Port for health/readiness HTTP server.
const envKeyHTTPPort = "DEPLOYTIME_HTTP_PORT"

// Port for Prometheus metrics (GET /metrics).
const envKeyMetricsPort = "DEPLOYTIME_METRICS_PORT"

// Comma separated namespaces to watch. Empty means discover them.
const envKeyNamespaces = "DEPLOYTIME_NAMESPACES"

// Label key naming the application of a replication controller or replica set.
const envKeyAppLabel = "DEPLOYTIME_APP_LABEL"

// Label key naming the application of a Knative revision.
const envKeyServerlessLabel = "DEPLOYTIME_SERVERLESS_LABEL"

// Optional pod label selector (e.g. env=prod) restricting the pods considered.
const envKeyProdLabel = "DEPLOYTIME_PROD_LABEL"

// Generation pass interval. Units: s, m, h (e.g. 60s, 5m). Ignored when a schedule is set.
const (
	envKeyInterval = "DEPLOYTIME_INTERVAL"
	envMinInterval = 5 * time.Second
)

// Cron expression for generation passes (e.g. */5 * * * *).
const envKeySchedule = "DEPLOYTIME_SCHEDULE"

// Timezone of the cron expression (IANA, e.g. Europe/Berlin).
const envKeyScheduleTZ = "DEPLOYTIME_SCHEDULE_TZ"

// How long a scheduled pass may be overdue before the exporter reports not ready.
const (
	envKeyStaleAfter = "DEPLOYTIME_STALE_AFTER"
	envMinStaleAfter = 10 * time.Second
)

// Pinger check interval. Units: s, m, h (e.g. 10s, 1m).
const (
	envKeyPingerInterval = "DEPLOYTIME_PINGER_INTERVAL"
	envMinPingerInterval = time.Second
)

// Standard k8s env keys used as fallback when DEPLOYTIME_* are unset.
const (
	envKeyKubeConfigFallback = "KUBECONFIG"
	envKeyKubeMasterFallback = "KUBERNETES_MASTER"
)
