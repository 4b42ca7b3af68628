package commands

import (
	"github.com/tiw/gaap-web-service/internal/cli/client"
	"github.com/tiw/gaap-web-service/internal/cli/config"
)

// newAPIClient builds an API client from the --server flag, falling back
// to the saved CLI configuration.
func newAPIClient() (*client.APIClient, error) {
	server := serverAddr
	if server == "" {
		cfg, err := config.Load()
		if err != nil {
			return nil, err
		}
		server = cfg.Server
	}
	return client.NewAPIClient(server)
}
