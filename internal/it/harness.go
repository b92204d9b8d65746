// Package it holds the end-to-end smoke tests and their in-process
// service harness.
package it

import (
	"context"
	"fmt"
	"time"

	chronopb "chrono/internal/gen/api"
	"chrono/internal/server"
	"chrono/internal/wallclock"
)

// Service wraps a Chrono node started in-process for tests, together
// with a connected client.
type Service struct {
	node      *server.Node
	clientMgr *server.ClientManager
	client    chronopb.ChronoClient
	serveErr  chan error
}

// StartService starts a node on an ephemeral port and waits for it to
// answer Health.
func StartService(ctx context.Context, serviceID string, clock wallclock.Clock) (*Service, error) {
	node := server.NewNode(serviceID, "127.0.0.1:0", clock)

	s := &Service{
		node:      node,
		clientMgr: server.NewClientManager(),
		serveErr:  make(chan error, 1),
	}
	go func() {
		s.serveErr <- node.Start()
	}()

	// Wait for the listener to bind.
	addr := ""
	for deadline := time.Now().Add(5 * time.Second); time.Now().Before(deadline); {
		if addr = node.Addr(); addr != "" {
			break
		}
		select {
		case err := <-s.serveErr:
			return nil, fmt.Errorf("service exited during startup: %w", err)
		case <-time.After(10 * time.Millisecond):
		}
	}
	if addr == "" {
		node.Stop()
		return nil, fmt.Errorf("service did not bind a listener")
	}

	client, err := s.clientMgr.GetClient(addr)
	if err != nil {
		node.Stop()
		return nil, err
	}
	s.client = client

	if err := s.waitForReady(ctx, 10*time.Second); err != nil {
		s.Stop()
		return nil, fmt.Errorf("service failed to become ready: %w", err)
	}
	return s, nil
}

// Client returns the connected Chrono client.
func (s *Service) Client() chronopb.ChronoClient {
	return s.client
}

// Stop shuts the service down and closes the client connection.
func (s *Service) Stop() {
	s.node.Stop()
	s.clientMgr.Close()
}

// waitForReady polls Health until the service answers SERVING.
func (s *Service) waitForReady(ctx context.Context, timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		healthCtx, cancel := context.WithTimeout(ctx, 1*time.Second)
		resp, err := s.client.Health(healthCtx, &chronopb.HealthRequest{ClientId: "it-harness"})
		cancel()
		if err == nil && resp.Status == chronopb.HealthResponse_SERVING {
			return nil
		}
		time.Sleep(100 * time.Millisecond)
	}
	return fmt.Errorf("health check did not succeed within %s", timeout)
}
