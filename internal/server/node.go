package server

import (
	"fmt"
	"log"
	"net"
	"sync"

	"google.golang.org/grpc"
	"google.golang.org/grpc/reflection"

	chronopb "chrono/internal/gen/api"
	"chrono/internal/wallclock"
)

// Node owns a running Chrono service instance: the listener, the gRPC
// server and the clock behind it.
type Node struct {
	serviceID  string
	listenAddr string
	clock      wallclock.Clock

	mu         sync.Mutex
	grpcServer *grpc.Server
	boundAddr  string
}

// NewNode creates a new service instance. The clock decides whether the
// service reports live or pinned time.
func NewNode(serviceID, listenAddr string, clock wallclock.Clock) *Node {
	return &Node{
		serviceID:  serviceID,
		listenAddr: listenAddr,
		clock:      clock,
	}
}

// Start begins listening and serving. It blocks until Stop is called or
// the server fails.
func (n *Node) Start() error {
	lis, err := net.Listen("tcp", n.listenAddr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", n.listenAddr, err)
	}

	srv := grpc.NewServer()
	chronopb.RegisterChronoServer(srv, NewServer(n.clock, n.serviceID))

	// Enable gRPC reflection for grpcurl
	reflection.Register(srv)

	n.mu.Lock()
	n.grpcServer = srv
	n.boundAddr = lis.Addr().String()
	n.mu.Unlock()

	log.Printf("[%s] Starting service on %s", n.serviceID, lis.Addr())

	if err := srv.Serve(lis); err != nil {
		return fmt.Errorf("failed to serve: %w", err)
	}
	return nil
}

// Stop gracefully stops the service.
func (n *Node) Stop() {
	n.mu.Lock()
	srv := n.grpcServer
	n.mu.Unlock()

	if srv != nil {
		log.Printf("[%s] Stopping service", n.serviceID)
		srv.GracefulStop()
	}
}

// Addr returns the bound listen address, or "" before Start has bound
// the listener. Useful when listening on port 0.
func (n *Node) Addr() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.boundAddr
}
