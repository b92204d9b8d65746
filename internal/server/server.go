package server

import (
	"context"
	"log"

	chronopb "chrono/internal/gen/api"
	"chrono/internal/wallclock"
)

// Server implements the Chrono gRPC service.
type Server struct {
	chronopb.UnimplementedChronoServer
	clock     wallclock.Clock
	serviceID string
}

// NewServer creates a new gRPC server instance backed by the given clock.
func NewServer(clock wallclock.Clock, serviceID string) *Server {
	return &Server{
		clock:     clock,
		serviceID: serviceID,
	}
}

// Now handles Now requests.
func (s *Server) Now(ctx context.Context, req *chronopb.NowRequest) (*chronopb.NowResponse, error) {
	log.Printf("[%s] Now request: client_id=%s, request_id=%s",
		s.serviceID, req.ClientId, req.RequestId)

	dt, err := partsToDateTime(wallclock.Decompose(s.clock.Now()))
	if err != nil {
		return &chronopb.NowResponse{
			Status:       chronopb.NowResponse_ERROR,
			ErrorMessage: err.Error(),
		}, nil
	}

	return &chronopb.NowResponse{
		Status:  chronopb.NowResponse_SUCCESS,
		Now:     dateTimeToProto(dt),
		Display: dt.String(),
	}, nil
}

// ShiftDays handles ShiftDays requests.
func (s *Server) ShiftDays(ctx context.Context, req *chronopb.ShiftDaysRequest) (*chronopb.ShiftDaysResponse, error) {
	log.Printf("[%s] ShiftDays request: days=%d, direction=%s, client_id=%s, request_id=%s",
		s.serviceID, req.Days, req.Direction, req.ClientId, req.RequestId)

	dt, err := protoToDateTime(req.Base)
	if err != nil {
		return &chronopb.ShiftDaysResponse{
			Status:       chronopb.ShiftDaysResponse_ERROR,
			ErrorMessage: err.Error(),
		}, nil
	}

	if req.Direction == chronopb.Direction_BACKWARD {
		dt.SubDays(req.Days)
	} else {
		dt.AddDays(req.Days)
	}

	return &chronopb.ShiftDaysResponse{
		Status:  chronopb.ShiftDaysResponse_SUCCESS,
		Result:  dateTimeToProto(dt),
		Display: dt.String(),
	}, nil
}

// ShiftSeconds handles ShiftSeconds requests.
func (s *Server) ShiftSeconds(ctx context.Context, req *chronopb.ShiftSecondsRequest) (*chronopb.ShiftSecondsResponse, error) {
	log.Printf("[%s] ShiftSeconds request: seconds=%d, direction=%s, client_id=%s, request_id=%s",
		s.serviceID, req.Seconds, req.Direction, req.ClientId, req.RequestId)

	dt, err := protoToDateTime(req.Base)
	if err != nil {
		return &chronopb.ShiftSecondsResponse{
			Status:       chronopb.ShiftSecondsResponse_ERROR,
			ErrorMessage: err.Error(),
		}, nil
	}

	if req.Direction == chronopb.Direction_BACKWARD {
		dt.SubSeconds(req.Seconds)
	} else {
		dt.AddSeconds(req.Seconds)
	}

	return &chronopb.ShiftSecondsResponse{
		Status:  chronopb.ShiftSecondsResponse_SUCCESS,
		Result:  dateTimeToProto(dt),
		Display: dt.String(),
	}, nil
}

// Compare handles Compare requests.
func (s *Server) Compare(ctx context.Context, req *chronopb.CompareRequest) (*chronopb.CompareResponse, error) {
	log.Printf("[%s] Compare request: client_id=%s, request_id=%s",
		s.serviceID, req.ClientId, req.RequestId)

	a, err := protoToDateTime(req.A)
	if err != nil {
		return &chronopb.CompareResponse{
			Status:       chronopb.CompareResponse_ERROR,
			ErrorMessage: "a: " + err.Error(),
		}, nil
	}
	b, err := protoToDateTime(req.B)
	if err != nil {
		return &chronopb.CompareResponse{
			Status:       chronopb.CompareResponse_ERROR,
			ErrorMessage: "b: " + err.Error(),
		}, nil
	}

	ordering := chronopb.CompareResponse_EQUAL
	switch a.Cmp(b) {
	case -1:
		ordering = chronopb.CompareResponse_BEFORE
	case 1:
		ordering = chronopb.CompareResponse_AFTER
	}

	return &chronopb.CompareResponse{
		Status:   chronopb.CompareResponse_SUCCESS,
		Ordering: ordering,
	}, nil
}

// Health handles Health requests.
func (s *Server) Health(ctx context.Context, req *chronopb.HealthRequest) (*chronopb.HealthResponse, error) {
	return &chronopb.HealthResponse{
		Status:    chronopb.HealthResponse_SERVING,
		ServiceId: s.serviceID,
	}, nil
}
