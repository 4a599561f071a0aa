/*
Package api serves the supervisor's status endpoints on the HTTP gateway
listen address.

# Endpoints

	GET /health   200 while every registered component is healthy, else 503
	GET /ready    200 once the configuration is published, else 503
	GET /live     200 while the process is running
	GET /metrics  Prometheus exposition
	GET /config   the published configuration as JSON, 503 before publish

All endpoints except /metrics reject other methods with 405.

# Usage

	srv := api.NewStatusServer()
	go func() {
		if err := srv.Start(config.Current().HTTPListen()); !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()
	defer srv.Stop(ctx)

The /config handler calls config.Current on every request, so the server
can be created before the configuration is published.

Example /config response:

	{
	  "command": "start",
	  "package": "core/redis",
	  "topology": "leader",
	  "group": "production",
	  "update_strategy": "rolling",
	  "listen_http": "0.0.0.0:9631",
	  "listen_gossip": "0.0.0.0:9638",
	  "peers": ["10.0.0.1:9638"],
	  "permanent_peer": false
	}
*/
package api
