package metricskey

import "github.com/effective-security/metrics"

// Stats
var (
	// StatsFactoryClientsCreated is base for counter metric for total clients created by the factory
	StatsFactoryClientsCreated = metrics.Describe{
		Type:         metrics.TypeCounter,
		Name:         "stats_factory_clients_created",
		Help:         "stats_factory_clients_created provides total clients created by the factory",
		RequiredTags: []string{"framework"},
	}

	StatsFactoryClientErrors = metrics.Describe{
		Type:         metrics.TypeCounter,
		Name:         "stats_factory_client_errors",
		Help:         "stats_factory_client_errors provides total client construction failures",
		RequiredTags: []string{"framework"},
	}

	StatsFactoryToolsBound = metrics.Describe{
		Type:         metrics.TypeCounter,
		Name:         "stats_factory_tools_bound",
		Help:         "stats_factory_tools_bound provides total tools bound to clients",
		RequiredTags: []string{"framework"},
	}

	StatsAgentsRegistrations = metrics.Describe{
		Type:         metrics.TypeCounter,
		Name:         "stats_agents_registrations",
		Help:         "stats_agents_registrations provides total default client registrations",
		RequiredTags: []string{"framework"},
	}
)

// Perf
var (
	PerfFactoryCreateClient = metrics.Describe{
		Type:         metrics.TypeSample,
		Name:         "perf_factory_create_client",
		Help:         "perf_factory_create_client provides duration of client construction",
		RequiredTags: []string{"framework"},
	}
)

// Metrics returns slice of metrics from this repo
// keep sorted by name
var Metrics = []*metrics.Describe{
	&PerfFactoryCreateClient,
	&StatsAgentsRegistrations,
	&StatsFactoryClientErrors,
	&StatsFactoryClientsCreated,
	&StatsFactoryToolsBound,
}
