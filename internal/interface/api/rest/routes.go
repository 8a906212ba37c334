package rest

const (
	// informational service descriptor
	RouteRoot = "/"

	RouteUsers = "/users"
	RouteUser  = RouteUsers + "/:user_id"

	// ops
	RouteHealth  = "/healthz"
	RouteMetrics = "/metrics"
)
