// Package geocoder implements the Geocoder collaborator against a
// Nominatim-compatible reverse endpoint.
package geocoder

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"geotarget/config"
	"geotarget/internal/domain/service"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultTimeout = 5 * time.Second
	defaultBaseURL = "https://nominatim.openstreetmap.org"
)

// reverseResponse is the subset of the Nominatim reverse payload we consume.
type reverseResponse struct {
	DisplayName string `json:"display_name"`
	Error       string `json:"error,omitempty"`
}

type nominatimGeocoder struct {
	client *resty.Client
	logger *slog.Logger
}

// Params holds dependencies for the geocoder client, injected by Fx
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// New creates the reverse-geocoder client from configuration.
func New(params Params) (service.Geocoder, error) {
	cfg := params.Config.Geocoder
	if cfg == nil {
		cfg = &config.GeocoderConfig{}
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("User-Agent", params.Config.Env.ServiceName)

	return &nominatimGeocoder{
		client: client,
		logger: params.Logger,
	}, nil
}

// Lookup performs a reverse-geocode of the coordinate.
func (g *nominatimGeocoder) Lookup(ctx context.Context, coordinate service.Coordinate) (*service.AddressMetadata, error) {
	var payload reverseResponse
	resp, err := g.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"lat":    formatFloat(coordinate.Latitude),
			"lon":    formatFloat(coordinate.Longitude),
			"format": "jsonv2",
		}).
		SetResult(&payload).
		Get("/reverse")
	if err != nil {
		return nil, &service.GeocodeError{Coordinate: coordinate, Err: err}
	}

	if resp.IsError() {
		return nil, &service.GeocodeError{
			Coordinate: coordinate,
			Err:        errors.Errorf("reverse geocode returned status %d", resp.StatusCode()),
		}
	}
	if payload.Error != "" {
		return nil, &service.GeocodeError{
			Coordinate: coordinate,
			Err:        errors.New(payload.Error),
		}
	}

	return &service.AddressMetadata{FullAddress: payload.DisplayName}, nil
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
