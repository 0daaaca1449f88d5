package grpc

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	"tokenline/internal/domain"
	tokenlinev1 "tokenline/internal/gen/proto/tokenline/v1"
	"tokenline/internal/ml/waittime"
	"tokenline/internal/service/queue"
	"tokenline/internal/store"
)

type QueueServer struct {
	tokenlinev1.UnimplementedQueueServiceServer

	svc         queueService
	predictor   waitPredictor
	recommender recommender
	log         *slog.Logger
}

type queueService interface {
	Book(ctx context.Context, in queue.BookInput) (domain.Appointment, error)
	CallNext(ctx context.Context, providerID string) (domain.Appointment, bool, error)
	FinishCurrent(ctx context.Context, providerID string) (domain.Appointment, bool, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, next domain.AppointmentStatus) (domain.Appointment, error)
	Rate(ctx context.Context, id uuid.UUID, rating int16) (domain.Appointment, error)
	Position(ctx context.Context, id uuid.UUID) (queue.PositionResult, error)
	ListForUser(ctx context.Context, userID string) ([]domain.Appointment, error)
	ListForProvider(ctx context.Context, providerID string, day time.Time) ([]domain.Appointment, error)
}

type waitPredictor interface {
	Predict(currentToken, userToken int, at time.Time) float64
	Confidence() waittime.Confidence
}

type recommender interface {
	Recommend(ctx context.Context, userID, profession string, topN int) ([]string, error)
}

func NewQueueServer(svc queueService, predictor waitPredictor, rec recommender, log *slog.Logger) *QueueServer {
	if log == nil {
		log = slog.Default()
	}
	return &QueueServer{
		svc:         svc,
		predictor:   predictor,
		recommender: rec,
		log:         log.With(slog.String("component", "grpc.queue")),
	}
}

func (s *QueueServer) BookAppointment(ctx context.Context, req *tokenlinev1.BookAppointmentRequest) (*tokenlinev1.BookAppointmentResponse, error) {
	log := s.log.With(slog.String("rpc", "BookAppointment"))

	if req == nil {
		log.Warn("invalid request", slog.String("reason", "nil_request"))
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	if req.ScheduledAt == nil {
		log.Warn("invalid request", slog.String("reason", "missing_scheduled_at"), slog.String("user_id", req.UserId))
		return nil, status.Error(codes.InvalidArgument, "scheduled_at is required")
	}

	appt, err := s.svc.Book(ctx, queue.BookInput{
		UserID:      req.UserId,
		ProviderID:  req.ProviderId,
		ServiceName: req.ServiceName,
		ScheduledAt: req.ScheduledAt.AsTime(),
		Price:       req.Price,
	})
	if err != nil {
		var vErr *queue.ValidationError
		if errors.As(err, &vErr) {
			log.Warn("invalid request", slog.Any("err", err), slog.String("user_id", req.UserId))
			return nil, status.Error(codes.InvalidArgument, vErr.Error())
		}
		log.Error("appointment book failed", slog.Any("err", err), slog.String("user_id", req.UserId), slog.String("provider_id", req.ProviderId))
		return nil, status.Error(codes.Internal, "internal error")
	}

	log.Info(
		"appointment booked",
		slog.String("appointment_id", appt.ID.String()),
		slog.String("provider_id", appt.ProviderID),
		slog.Int("token_number", appt.TokenNumber),
	)

	return &tokenlinev1.BookAppointmentResponse{Appointment: toProtoAppointment(appt)}, nil
}

func (s *QueueServer) CallNext(ctx context.Context, req *tokenlinev1.CallNextRequest) (*tokenlinev1.CallNextResponse, error) {
	log := s.log.With(slog.String("rpc", "CallNext"))

	if req == nil {
		log.Warn("invalid request", slog.String("reason", "nil_request"))
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	appt, ok, err := s.svc.CallNext(ctx, req.ProviderId)
	if err != nil {
		var vErr *queue.ValidationError
		if errors.As(err, &vErr) {
			log.Warn("invalid request", slog.Any("err", err), slog.String("provider_id", req.ProviderId))
			return nil, status.Error(codes.InvalidArgument, vErr.Error())
		}
		log.Error("call next failed", slog.Any("err", err), slog.String("provider_id", req.ProviderId))
		return nil, status.Error(codes.Internal, "internal error")
	}
	if !ok {
		log.Info("queue empty", slog.String("provider_id", req.ProviderId))
		return &tokenlinev1.CallNextResponse{}, nil
	}

	log.Info(
		"token called",
		slog.String("appointment_id", appt.ID.String()),
		slog.String("provider_id", appt.ProviderID),
		slog.Int("token_number", appt.TokenNumber),
	)

	return &tokenlinev1.CallNextResponse{Appointment: toProtoAppointment(appt)}, nil
}

func (s *QueueServer) FinishCurrent(ctx context.Context, req *tokenlinev1.FinishCurrentRequest) (*tokenlinev1.FinishCurrentResponse, error) {
	log := s.log.With(slog.String("rpc", "FinishCurrent"))

	if req == nil {
		log.Warn("invalid request", slog.String("reason", "nil_request"))
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	appt, ok, err := s.svc.FinishCurrent(ctx, req.ProviderId)
	if err != nil {
		var vErr *queue.ValidationError
		if errors.As(err, &vErr) {
			log.Warn("invalid request", slog.Any("err", err), slog.String("provider_id", req.ProviderId))
			return nil, status.Error(codes.InvalidArgument, vErr.Error())
		}
		log.Error("finish current failed", slog.Any("err", err), slog.String("provider_id", req.ProviderId))
		return nil, status.Error(codes.Internal, "internal error")
	}
	if !ok {
		log.Info("nothing in progress", slog.String("provider_id", req.ProviderId))
		return &tokenlinev1.FinishCurrentResponse{}, nil
	}

	log.Info(
		"token finished",
		slog.String("appointment_id", appt.ID.String()),
		slog.String("provider_id", appt.ProviderID),
		slog.Int("token_number", appt.TokenNumber),
	)

	return &tokenlinev1.FinishCurrentResponse{Appointment: toProtoAppointment(appt)}, nil
}

func (s *QueueServer) UpdateAppointmentStatus(ctx context.Context, req *tokenlinev1.UpdateAppointmentStatusRequest) (*tokenlinev1.UpdateAppointmentStatusResponse, error) {
	log := s.log.With(slog.String("rpc", "UpdateAppointmentStatus"))

	if req == nil {
		log.Warn("invalid request", slog.String("reason", "nil_request"))
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	id, err := uuid.Parse(req.AppointmentId)
	if err != nil {
		log.Warn("invalid request", slog.String("reason", "invalid_uuid"))
		return nil, status.Error(codes.InvalidArgument, "appointment_id must be a UUID")
	}
	next, ok := fromProtoStatus(req.Status)
	if !ok {
		log.Warn("invalid request", slog.String("reason", "unknown_status"), slog.String("appointment_id", id.String()))
		return nil, status.Error(codes.InvalidArgument, "status is required")
	}

	appt, err := s.svc.UpdateStatus(ctx, id, next)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Info("appointment not found", slog.String("appointment_id", id.String()))
			return nil, status.Error(codes.NotFound, "appointment not found")
		}
		if errors.Is(err, store.ErrInvalidTransition) {
			log.Info(
				"invalid status transition",
				slog.String("appointment_id", id.String()),
				slog.String("status", string(next)),
			)
			return nil, status.Error(codes.FailedPrecondition, "appointment cannot move to that status")
		}
		var vErr *queue.ValidationError
		if errors.As(err, &vErr) {
			log.Warn("invalid request", slog.Any("err", err), slog.String("appointment_id", id.String()))
			return nil, status.Error(codes.InvalidArgument, vErr.Error())
		}
		log.Error("status update failed", slog.Any("err", err), slog.String("appointment_id", id.String()))
		return nil, status.Error(codes.Internal, "internal error")
	}

	log.Info(
		"status updated",
		slog.String("appointment_id", appt.ID.String()),
		slog.String("status", string(appt.Status)),
	)

	return &tokenlinev1.UpdateAppointmentStatusResponse{Appointment: toProtoAppointment(appt)}, nil
}

func (s *QueueServer) RateAppointment(ctx context.Context, req *tokenlinev1.RateAppointmentRequest) (*tokenlinev1.RateAppointmentResponse, error) {
	log := s.log.With(slog.String("rpc", "RateAppointment"))

	if req == nil {
		log.Warn("invalid request", slog.String("reason", "nil_request"))
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	id, err := uuid.Parse(req.AppointmentId)
	if err != nil {
		log.Warn("invalid request", slog.String("reason", "invalid_uuid"))
		return nil, status.Error(codes.InvalidArgument, "appointment_id must be a UUID")
	}

	appt, err := s.svc.Rate(ctx, id, int16(req.Rating))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Info("appointment not found", slog.String("appointment_id", id.String()))
			return nil, status.Error(codes.NotFound, "appointment not found")
		}
		if errors.Is(err, store.ErrInvalidTransition) {
			log.Info("rating before completion", slog.String("appointment_id", id.String()))
			return nil, status.Error(codes.FailedPrecondition, "only completed appointments can be rated")
		}
		var vErr *queue.ValidationError
		if errors.As(err, &vErr) {
			log.Warn("invalid request", slog.Any("err", err), slog.String("appointment_id", id.String()))
			return nil, status.Error(codes.InvalidArgument, vErr.Error())
		}
		log.Error("rate failed", slog.Any("err", err), slog.String("appointment_id", id.String()))
		return nil, status.Error(codes.Internal, "internal error")
	}

	log.Info(
		"appointment rated",
		slog.String("appointment_id", appt.ID.String()),
		slog.Int("rating", int(req.Rating)),
	)

	return &tokenlinev1.RateAppointmentResponse{Appointment: toProtoAppointment(appt)}, nil
}

func (s *QueueServer) GetQueuePosition(ctx context.Context, req *tokenlinev1.GetQueuePositionRequest) (*tokenlinev1.GetQueuePositionResponse, error) {
	log := s.log.With(slog.String("rpc", "GetQueuePosition"))

	if req == nil {
		log.Warn("invalid request", slog.String("reason", "nil_request"))
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	id, err := uuid.Parse(req.AppointmentId)
	if err != nil {
		log.Warn("invalid request", slog.String("reason", "invalid_uuid"))
		return nil, status.Error(codes.InvalidArgument, "appointment_id must be a UUID")
	}

	pos, err := s.svc.Position(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Info("appointment not found", slog.String("appointment_id", id.String()))
			return nil, status.Error(codes.NotFound, "appointment not found")
		}
		var vErr *queue.ValidationError
		if errors.As(err, &vErr) {
			log.Warn("invalid request", slog.Any("err", err), slog.String("appointment_id", id.String()))
			return nil, status.Error(codes.InvalidArgument, vErr.Error())
		}
		log.Error("queue position failed", slog.Any("err", err), slog.String("appointment_id", id.String()))
		return nil, status.Error(codes.Internal, "internal error")
	}

	log.Debug(
		"queue position reported",
		slog.String("appointment_id", id.String()),
		slog.Int("position", pos.Position),
		slog.Int("current_token", pos.CurrentToken),
	)

	return &tokenlinev1.GetQueuePositionResponse{
		Position:             int32(pos.Position),
		EstimatedWaitMinutes: pos.WaitMinutes,
		CurrentToken:         int32(pos.CurrentToken),
		YourToken:            int32(pos.YourToken),
	}, nil
}

func (s *QueueServer) PredictWaitTime(ctx context.Context, req *tokenlinev1.PredictWaitTimeRequest) (*tokenlinev1.PredictWaitTimeResponse, error) {
	log := s.log.With(slog.String("rpc", "PredictWaitTime"))

	if req == nil {
		log.Warn("invalid request", slog.String("reason", "nil_request"))
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	id, err := uuid.Parse(req.AppointmentId)
	if err != nil {
		log.Warn("invalid request", slog.String("reason", "invalid_uuid"))
		return nil, status.Error(codes.InvalidArgument, "appointment_id must be a UUID")
	}

	pos, err := s.svc.Position(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Info("appointment not found", slog.String("appointment_id", id.String()))
			return nil, status.Error(codes.NotFound, "appointment not found")
		}
		var vErr *queue.ValidationError
		if errors.As(err, &vErr) {
			log.Warn("invalid request", slog.Any("err", err), slog.String("appointment_id", id.String()))
			return nil, status.Error(codes.InvalidArgument, vErr.Error())
		}
		log.Error("wait prediction failed", slog.Any("err", err), slog.String("appointment_id", id.String()))
		return nil, status.Error(codes.Internal, "internal error")
	}

	// The prediction counts every token from the one being served up to
	// the user's, one more than the position estimate. Anything no longer
	// waiting predicts zero.
	var (
		predicted   float64
		tokensAhead int
	)
	if pos.Status == domain.StatusScheduled {
		tokensAhead = pos.YourToken - pos.CurrentToken
		if tokensAhead < 0 {
			tokensAhead = 0
		}
		predicted = s.predictor.Predict(pos.CurrentToken, pos.YourToken, time.Now().UTC())
	}
	confidence := s.predictor.Confidence()

	log.Debug(
		"wait time predicted",
		slog.String("appointment_id", id.String()),
		slog.Int("tokens_ahead", tokensAhead),
		slog.Float64("predicted_wait_minutes", predicted),
		slog.String("model_confidence", string(confidence)),
	)

	return &tokenlinev1.PredictWaitTimeResponse{
		PredictedWaitMinutes: predicted,
		TokensAhead:          int32(tokensAhead),
		ModelConfidence:      string(confidence),
	}, nil
}

func (s *QueueServer) RecommendProviders(ctx context.Context, req *tokenlinev1.RecommendProvidersRequest) (*tokenlinev1.RecommendProvidersResponse, error) {
	log := s.log.With(slog.String("rpc", "RecommendProviders"))

	if req == nil {
		log.Warn("invalid request", slog.String("reason", "nil_request"))
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	if req.UserId == "" {
		log.Warn("invalid request", slog.String("reason", "missing_user_id"))
		return nil, status.Error(codes.InvalidArgument, "user_id is required")
	}

	ids, err := s.recommender.Recommend(ctx, req.UserId, req.Profession, int(req.TopN))
	if err != nil {
		log.Error("recommendation failed", slog.Any("err", err), slog.String("user_id", req.UserId))
		return nil, status.Error(codes.Internal, "internal error")
	}

	log.Debug(
		"providers recommended",
		slog.String("user_id", req.UserId),
		slog.String("profession", req.Profession),
		slog.Int("count", len(ids)),
	)

	return &tokenlinev1.RecommendProvidersResponse{ProviderIds: ids}, nil
}

func (s *QueueServer) ListUserAppointments(ctx context.Context, req *tokenlinev1.ListUserAppointmentsRequest) (*tokenlinev1.ListUserAppointmentsResponse, error) {
	log := s.log.With(slog.String("rpc", "ListUserAppointments"))

	if req == nil {
		log.Warn("invalid request", slog.String("reason", "nil_request"))
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	appts, err := s.svc.ListForUser(ctx, req.UserId)
	if err != nil {
		var vErr *queue.ValidationError
		if errors.As(err, &vErr) {
			log.Warn("invalid request", slog.Any("err", err), slog.String("user_id", req.UserId))
			return nil, status.Error(codes.InvalidArgument, vErr.Error())
		}
		log.Error("user appointments list failed", slog.Any("err", err), slog.String("user_id", req.UserId))
		return nil, status.Error(codes.Internal, "internal error")
	}

	out := make([]*tokenlinev1.Appointment, 0, len(appts))
	for _, a := range appts {
		out = append(out, toProtoAppointment(a))
	}

	log.Debug("user appointments listed", slog.String("user_id", req.UserId), slog.Int("count", len(out)))

	return &tokenlinev1.ListUserAppointmentsResponse{Appointments: out}, nil
}

func (s *QueueServer) ListProviderQueue(ctx context.Context, req *tokenlinev1.ListProviderQueueRequest) (*tokenlinev1.ListProviderQueueResponse, error) {
	log := s.log.With(slog.String("rpc", "ListProviderQueue"))

	if req == nil {
		log.Warn("invalid request", slog.String("reason", "nil_request"))
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	var day time.Time
	if req.Day != nil {
		day = req.Day.AsTime()
	}

	appts, err := s.svc.ListForProvider(ctx, req.ProviderId, day)
	if err != nil {
		var vErr *queue.ValidationError
		if errors.As(err, &vErr) {
			log.Warn("invalid request", slog.Any("err", err), slog.String("provider_id", req.ProviderId))
			return nil, status.Error(codes.InvalidArgument, vErr.Error())
		}
		log.Error("provider queue list failed", slog.Any("err", err), slog.String("provider_id", req.ProviderId))
		return nil, status.Error(codes.Internal, "internal error")
	}

	out := make([]*tokenlinev1.Appointment, 0, len(appts))
	for _, a := range appts {
		out = append(out, toProtoAppointment(a))
	}

	log.Debug("provider queue listed", slog.String("provider_id", req.ProviderId), slog.Int("count", len(out)))

	return &tokenlinev1.ListProviderQueueResponse{Appointments: out}, nil
}

func toProtoAppointment(a domain.Appointment) *tokenlinev1.Appointment {
	out := &tokenlinev1.Appointment{
		Id:          a.ID.String(),
		UserId:      a.UserID,
		ProviderId:  a.ProviderID,
		ServiceName: a.ServiceName,
		ScheduledAt: timestamppb.New(a.ScheduledAt),
		TokenNumber: int32(a.TokenNumber),
		Status:      toProtoStatus(a.Status),
		CreatedAt:   timestamppb.New(a.CreatedAt),
		UpdatedAt:   timestamppb.New(a.UpdatedAt),
	}
	if a.Price != nil {
		p := *a.Price
		out.Price = &p
	}
	if a.DurationMinutes != nil {
		d := *a.DurationMinutes
		out.DurationMinutes = &d
	}
	if a.Rating != nil {
		r := int32(*a.Rating)
		out.Rating = &r
	}
	if a.StartedAt != nil {
		out.StartedAt = timestamppb.New(*a.StartedAt)
	}
	if a.CompletedAt != nil {
		out.CompletedAt = timestamppb.New(*a.CompletedAt)
	}
	return out
}

func toProtoStatus(s domain.AppointmentStatus) tokenlinev1.AppointmentStatus {
	switch s {
	case domain.StatusScheduled:
		return tokenlinev1.AppointmentStatus_APPOINTMENT_STATUS_SCHEDULED
	case domain.StatusInProgress:
		return tokenlinev1.AppointmentStatus_APPOINTMENT_STATUS_IN_PROGRESS
	case domain.StatusCompleted:
		return tokenlinev1.AppointmentStatus_APPOINTMENT_STATUS_COMPLETED
	case domain.StatusCancelled:
		return tokenlinev1.AppointmentStatus_APPOINTMENT_STATUS_CANCELLED
	default:
		return tokenlinev1.AppointmentStatus_APPOINTMENT_STATUS_UNSPECIFIED
	}
}

func fromProtoStatus(s tokenlinev1.AppointmentStatus) (domain.AppointmentStatus, bool) {
	switch s {
	case tokenlinev1.AppointmentStatus_APPOINTMENT_STATUS_SCHEDULED:
		return domain.StatusScheduled, true
	case tokenlinev1.AppointmentStatus_APPOINTMENT_STATUS_IN_PROGRESS:
		return domain.StatusInProgress, true
	case tokenlinev1.AppointmentStatus_APPOINTMENT_STATUS_COMPLETED:
		return domain.StatusCompleted, true
	case tokenlinev1.AppointmentStatus_APPOINTMENT_STATUS_CANCELLED:
		return domain.StatusCancelled, true
	default:
		return "", false
	}
}
