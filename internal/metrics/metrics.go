// Package metrics defines the Prometheus collectors of the node monitor.
package metrics

const (
	namespace = "nxtmonitor"

	statusSuccess = "success"
	statusError   = "error"
)

func statusOf(err error) string {
	if err != nil {
		return statusError
	}
	return statusSuccess
}

func serverLabel(server string) string {
	if server == "" {
		return "unknown"
	}
	return server
}
