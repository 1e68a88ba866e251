// Package earthengine manages Google Earth Engine service-account
// credentials and composes the satellite layer definitions that back
// the global visualization endpoints. Without valid credentials the
// service runs in demonstration mode: layer definitions are still
// served, flagged so clients can render placeholder imagery.
package earthengine

import (
	"encoding/pem"
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// Environment variables carrying the service-account credentials.
const (
	EnvServiceAccount = "EARTH_ENGINE_SERVICE_ACCOUNT"
	EnvPrivateKey     = "EARTH_ENGINE_PRIVATE_KEY"
)

// DefaultProject is the Earth Engine cloud project the platform runs under.
const DefaultProject = "gaia-455911"

// Modes reported by Status.
const (
	ModeConnected     = "connected"
	ModeDemonstration = "demonstration"
)

// Service holds Earth Engine credentials and exposes the layer catalog.
type Service struct {
	serviceAccount string
	privateKey     string
	project        string
	connected      bool
	reason         string
}

// AuthStatus describes the service's credential state.
type AuthStatus struct {
	Connected      bool   `json:"connected"`
	Mode           string `json:"mode"`
	Project        string `json:"project"`
	ServiceAccount string `json:"serviceAccount,omitempty"`
	Reason         string `json:"reason,omitempty"`
}

// NewServiceFromEnv builds a Service from the standard environment
// variables. Missing or malformed credentials are not fatal; the
// service falls back to demonstration mode.
func NewServiceFromEnv(logger *slog.Logger) *Service {
	return NewService(
		os.Getenv(EnvServiceAccount),
		os.Getenv(EnvPrivateKey),
		DefaultProject,
		logger,
	)
}

// NewService validates the given credentials and returns a Service in
// connected or demonstration mode accordingly.
func NewService(serviceAccount, privateKey, project string, logger *slog.Logger) *Service {
	if project == "" {
		project = DefaultProject
	}
	service := &Service{
		serviceAccount: serviceAccount,
		project:        project,
	}

	if serviceAccount == "" || privateKey == "" {
		service.reason = "credentials not configured"
		if logger != nil {
			logger.Warn("earth engine credentials not configured, running in demonstration mode")
		}
		return service
	}

	key, err := normalizePrivateKey(privateKey)
	if err != nil {
		service.reason = err.Error()
		if logger != nil {
			logger.Warn("earth engine private key rejected, running in demonstration mode",
				slog.String("error", err.Error()))
		}
		return service
	}

	service.privateKey = key
	service.connected = true
	if logger != nil {
		logger.Info("earth engine credentials loaded",
			slog.String("serviceAccount", serviceAccount),
			slog.String("project", project))
	}
	return service
}

// Connected reports whether valid credentials are loaded.
func (s *Service) Connected() bool {
	return s.connected
}

// Status returns the credential state for the auth status endpoint. The
// private key is never exposed.
func (s *Service) Status() AuthStatus {
	status := AuthStatus{
		Connected: s.connected,
		Mode:      ModeDemonstration,
		Project:   s.project,
		Reason:    s.reason,
	}
	if s.connected {
		status.Mode = ModeConnected
		status.ServiceAccount = s.serviceAccount
	}
	return status
}

// normalizePrivateKey repairs keys passed through environment variables
// with literal "\n" sequences and verifies the result is a PEM block.
func normalizePrivateKey(privateKey string) (string, error) {
	key := strings.ReplaceAll(privateKey, `\n`, "\n")

	block, _ := pem.Decode([]byte(key))
	if block == nil {
		return "", fmt.Errorf("private key is not PEM encoded")
	}
	if !strings.Contains(block.Type, "PRIVATE KEY") {
		return "", fmt.Errorf("unexpected PEM block type %q", block.Type)
	}
	return key, nil
}
