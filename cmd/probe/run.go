package probe

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/rs/zerolog/log"
	"github/kontos/connect/internal/config"
)

// runProbe requests the given management endpoint on the locally listening
// server and terminates the process with a non-zero exit code on failure.
func runProbe(ctx context.Context, path string, verbose bool) {
	cfg := config.DefaultServiceConfigFromEnv()

	probeURL := probeURL(cfg, path)

	ctx, cancel := context.WithTimeout(ctx, cfg.Management.LivenessTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, probeURL, nil)
	if err != nil {
		log.Fatal().Err(err).Str("url", probeURL).Msg("Failed to build probe request")
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		log.Fatal().Err(err).Str("url", probeURL).Msg("Probe request failed")
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		log.Fatal().Err(err).Str("url", probeURL).Msg("Failed to read probe response")
	}

	if verbose {
		fmt.Println(string(body))
	}

	if res.StatusCode != http.StatusOK {
		log.Fatal().Int("status", res.StatusCode).Str("url", probeURL).Msg("Probe failed")
	}
}

func probeURL(cfg config.Server, path string) string {
	host := cfg.Echo.ListenAddress
	if strings.HasPrefix(host, ":") {
		host = "127.0.0.1" + host
	}

	u := url.URL{
		Scheme: "http",
		Host:   host,
		Path:   path,
	}

	if cfg.Management.Secret != "" {
		q := url.Values{}
		q.Set("mgmt-secret", cfg.Management.Secret)
		u.RawQuery = q.Encode()
	}

	return u.String()
}
