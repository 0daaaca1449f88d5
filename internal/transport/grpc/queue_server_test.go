package grpc

import (
	"context"
	"log/slog"
	"testing"
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

type fakeQueueService struct {
	bookFn            func(ctx context.Context, in queue.BookInput) (domain.Appointment, error)
	callNextFn        func(ctx context.Context, providerID string) (domain.Appointment, bool, error)
	finishCurrentFn   func(ctx context.Context, providerID string) (domain.Appointment, bool, error)
	updateStatusFn    func(ctx context.Context, id uuid.UUID, next domain.AppointmentStatus) (domain.Appointment, error)
	rateFn            func(ctx context.Context, id uuid.UUID, rating int16) (domain.Appointment, error)
	positionFn        func(ctx context.Context, id uuid.UUID) (queue.PositionResult, error)
	listForUserFn     func(ctx context.Context, userID string) ([]domain.Appointment, error)
	listForProviderFn func(ctx context.Context, providerID string, day time.Time) ([]domain.Appointment, error)
}

func (f *fakeQueueService) Book(ctx context.Context, in queue.BookInput) (domain.Appointment, error) {
	if f.bookFn == nil {
		panic("Book not configured")
	}
	return f.bookFn(ctx, in)
}

func (f *fakeQueueService) CallNext(ctx context.Context, providerID string) (domain.Appointment, bool, error) {
	if f.callNextFn == nil {
		panic("CallNext not configured")
	}
	return f.callNextFn(ctx, providerID)
}

func (f *fakeQueueService) FinishCurrent(ctx context.Context, providerID string) (domain.Appointment, bool, error) {
	if f.finishCurrentFn == nil {
		panic("FinishCurrent not configured")
	}
	return f.finishCurrentFn(ctx, providerID)
}

func (f *fakeQueueService) UpdateStatus(ctx context.Context, id uuid.UUID, next domain.AppointmentStatus) (domain.Appointment, error) {
	if f.updateStatusFn == nil {
		panic("UpdateStatus not configured")
	}
	return f.updateStatusFn(ctx, id, next)
}

func (f *fakeQueueService) Rate(ctx context.Context, id uuid.UUID, rating int16) (domain.Appointment, error) {
	if f.rateFn == nil {
		panic("Rate not configured")
	}
	return f.rateFn(ctx, id, rating)
}

func (f *fakeQueueService) Position(ctx context.Context, id uuid.UUID) (queue.PositionResult, error) {
	if f.positionFn == nil {
		panic("Position not configured")
	}
	return f.positionFn(ctx, id)
}

func (f *fakeQueueService) ListForUser(ctx context.Context, userID string) ([]domain.Appointment, error) {
	if f.listForUserFn == nil {
		panic("ListForUser not configured")
	}
	return f.listForUserFn(ctx, userID)
}

func (f *fakeQueueService) ListForProvider(ctx context.Context, providerID string, day time.Time) ([]domain.Appointment, error) {
	if f.listForProviderFn == nil {
		panic("ListForProvider not configured")
	}
	return f.listForProviderFn(ctx, providerID, day)
}

type fakePredictor struct {
	predictFn  func(currentToken, userToken int, at time.Time) float64
	confidence waittime.Confidence
}

func (f *fakePredictor) Predict(currentToken, userToken int, at time.Time) float64 {
	if f.predictFn == nil {
		panic("Predict not configured")
	}
	return f.predictFn(currentToken, userToken, at)
}

func (f *fakePredictor) Confidence() waittime.Confidence {
	if f.confidence == "" {
		return waittime.ConfidenceHeuristic
	}
	return f.confidence
}

type fakeRecommender struct {
	recommendFn func(ctx context.Context, userID, profession string, topN int) ([]string, error)
}

func (f *fakeRecommender) Recommend(ctx context.Context, userID, profession string, topN int) ([]string, error) {
	if f.recommendFn == nil {
		panic("Recommend not configured")
	}
	return f.recommendFn(ctx, userID, profession, topN)
}

func newTestServer(svc queueService, predictor waitPredictor, rec recommender) *QueueServer {
	return NewQueueServer(svc, predictor, rec, slog.Default())
}

func TestBookAppointment_RejectsMissingScheduledAt(t *testing.T) {
	srv := newTestServer(&fakeQueueService{
		bookFn: func(ctx context.Context, in queue.BookInput) (domain.Appointment, error) {
			return domain.Appointment{}, nil
		},
	}, nil, nil)

	_, err := srv.BookAppointment(context.Background(), &tokenlinev1.BookAppointmentRequest{
		UserId:     "u1",
		ProviderId: "p1",
	})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("code = %s, want %s", status.Code(err), codes.InvalidArgument)
	}
}

func TestBookAppointment_ReturnsTokenNumber(t *testing.T) {
	scheduled := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	srv := newTestServer(&fakeQueueService{
		bookFn: func(ctx context.Context, in queue.BookInput) (domain.Appointment, error) {
			return domain.Appointment{
				ID:          uuid.MustParse("00000000-0000-0000-0000-000000000010"),
				UserID:      in.UserID,
				ProviderID:  in.ProviderID,
				ServiceName: in.ServiceName,
				ScheduledAt: in.ScheduledAt,
				TokenNumber: 4,
				Status:      domain.StatusScheduled,
			}, nil
		},
	}, nil, nil)

	resp, err := srv.BookAppointment(context.Background(), &tokenlinev1.BookAppointmentRequest{
		UserId:      "u1",
		ProviderId:  "p1",
		ServiceName: "Haircut",
		ScheduledAt: timestamppb.New(scheduled),
	})
	if err != nil {
		t.Fatalf("BookAppointment error: %v", err)
	}
	if resp.Appointment.TokenNumber != 4 {
		t.Fatalf("token_number = %d, want 4", resp.Appointment.TokenNumber)
	}
	if resp.Appointment.Status != tokenlinev1.AppointmentStatus_APPOINTMENT_STATUS_SCHEDULED {
		t.Fatalf("status = %s, want SCHEDULED", resp.Appointment.Status)
	}
}

func TestBookAppointment_MapsValidationError(t *testing.T) {
	srv := newTestServer(&fakeQueueService{
		bookFn: func(ctx context.Context, in queue.BookInput) (domain.Appointment, error) {
			return domain.Appointment{}, &queue.ValidationError{}
		},
	}, nil, nil)

	_, err := srv.BookAppointment(context.Background(), &tokenlinev1.BookAppointmentRequest{
		UserId:      "u1",
		ProviderId:  "p1",
		ScheduledAt: timestamppb.New(time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)),
	})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("code = %s, want %s", status.Code(err), codes.InvalidArgument)
	}
}

func TestCallNext_EmptyQueueReturnsNoAppointment(t *testing.T) {
	srv := newTestServer(&fakeQueueService{
		callNextFn: func(ctx context.Context, providerID string) (domain.Appointment, bool, error) {
			return domain.Appointment{}, false, nil
		},
	}, nil, nil)

	resp, err := srv.CallNext(context.Background(), &tokenlinev1.CallNextRequest{ProviderId: "p1"})
	if err != nil {
		t.Fatalf("CallNext error: %v", err)
	}
	if resp.Appointment != nil {
		t.Fatalf("appointment = %v, want unset", resp.Appointment)
	}
}

func TestCallNext_ReturnsPromotedAppointment(t *testing.T) {
	srv := newTestServer(&fakeQueueService{
		callNextFn: func(ctx context.Context, providerID string) (domain.Appointment, bool, error) {
			return domain.Appointment{
				ID:          uuid.MustParse("00000000-0000-0000-0000-000000000020"),
				ProviderID:  providerID,
				TokenNumber: 2,
				Status:      domain.StatusInProgress,
			}, true, nil
		},
	}, nil, nil)

	resp, err := srv.CallNext(context.Background(), &tokenlinev1.CallNextRequest{ProviderId: "p1"})
	if err != nil {
		t.Fatalf("CallNext error: %v", err)
	}
	if resp.Appointment.Status != tokenlinev1.AppointmentStatus_APPOINTMENT_STATUS_IN_PROGRESS {
		t.Fatalf("status = %s, want IN_PROGRESS", resp.Appointment.Status)
	}
	if resp.Appointment.TokenNumber != 2 {
		t.Fatalf("token_number = %d, want 2", resp.Appointment.TokenNumber)
	}
}

func TestUpdateAppointmentStatus_RejectsInvalidUUID(t *testing.T) {
	srv := newTestServer(&fakeQueueService{}, nil, nil)

	_, err := srv.UpdateAppointmentStatus(context.Background(), &tokenlinev1.UpdateAppointmentStatusRequest{
		AppointmentId: "not-a-uuid",
		Status:        tokenlinev1.AppointmentStatus_APPOINTMENT_STATUS_COMPLETED,
	})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("code = %s, want %s", status.Code(err), codes.InvalidArgument)
	}
}

func TestUpdateAppointmentStatus_RejectsUnspecifiedStatus(t *testing.T) {
	srv := newTestServer(&fakeQueueService{}, nil, nil)

	_, err := srv.UpdateAppointmentStatus(context.Background(), &tokenlinev1.UpdateAppointmentStatusRequest{
		AppointmentId: "00000000-0000-0000-0000-000000000030",
	})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("code = %s, want %s", status.Code(err), codes.InvalidArgument)
	}
}

func TestUpdateAppointmentStatus_MapsInvalidTransition(t *testing.T) {
	srv := newTestServer(&fakeQueueService{
		updateStatusFn: func(ctx context.Context, id uuid.UUID, next domain.AppointmentStatus) (domain.Appointment, error) {
			return domain.Appointment{}, store.ErrInvalidTransition
		},
	}, nil, nil)

	_, err := srv.UpdateAppointmentStatus(context.Background(), &tokenlinev1.UpdateAppointmentStatusRequest{
		AppointmentId: "00000000-0000-0000-0000-000000000030",
		Status:        tokenlinev1.AppointmentStatus_APPOINTMENT_STATUS_SCHEDULED,
	})
	if status.Code(err) != codes.FailedPrecondition {
		t.Fatalf("code = %s, want %s", status.Code(err), codes.FailedPrecondition)
	}
}

func TestUpdateAppointmentStatus_MapsNotFound(t *testing.T) {
	srv := newTestServer(&fakeQueueService{
		updateStatusFn: func(ctx context.Context, id uuid.UUID, next domain.AppointmentStatus) (domain.Appointment, error) {
			return domain.Appointment{}, store.ErrNotFound
		},
	}, nil, nil)

	_, err := srv.UpdateAppointmentStatus(context.Background(), &tokenlinev1.UpdateAppointmentStatusRequest{
		AppointmentId: "00000000-0000-0000-0000-000000000030",
		Status:        tokenlinev1.AppointmentStatus_APPOINTMENT_STATUS_CANCELLED,
	})
	if status.Code(err) != codes.NotFound {
		t.Fatalf("code = %s, want %s", status.Code(err), codes.NotFound)
	}
}

func TestRateAppointment_MapsPrematureRating(t *testing.T) {
	srv := newTestServer(&fakeQueueService{
		rateFn: func(ctx context.Context, id uuid.UUID, rating int16) (domain.Appointment, error) {
			return domain.Appointment{}, store.ErrInvalidTransition
		},
	}, nil, nil)

	_, err := srv.RateAppointment(context.Background(), &tokenlinev1.RateAppointmentRequest{
		AppointmentId: "00000000-0000-0000-0000-000000000040",
		Rating:        5,
	})
	if status.Code(err) != codes.FailedPrecondition {
		t.Fatalf("code = %s, want %s", status.Code(err), codes.FailedPrecondition)
	}
}

func TestGetQueuePosition_ReportsPositionAndWait(t *testing.T) {
	srv := newTestServer(&fakeQueueService{
		positionFn: func(ctx context.Context, id uuid.UUID) (queue.PositionResult, error) {
			return queue.PositionResult{Position: 3, WaitMinutes: 45, CurrentToken: 3, YourToken: 7}, nil
		},
	}, nil, nil)

	resp, err := srv.GetQueuePosition(context.Background(), &tokenlinev1.GetQueuePositionRequest{
		AppointmentId: "00000000-0000-0000-0000-000000000050",
	})
	if err != nil {
		t.Fatalf("GetQueuePosition error: %v", err)
	}
	if resp.Position != 3 || resp.EstimatedWaitMinutes != 45 {
		t.Fatalf("position = %d wait = %v, want 3 and 45", resp.Position, resp.EstimatedWaitMinutes)
	}
	if resp.CurrentToken != 3 || resp.YourToken != 7 {
		t.Fatalf("tokens = %d/%d, want 3/7", resp.CurrentToken, resp.YourToken)
	}
}

func TestGetQueuePosition_MapsNotFound(t *testing.T) {
	srv := newTestServer(&fakeQueueService{
		positionFn: func(ctx context.Context, id uuid.UUID) (queue.PositionResult, error) {
			return queue.PositionResult{}, store.ErrNotFound
		},
	}, nil, nil)

	_, err := srv.GetQueuePosition(context.Background(), &tokenlinev1.GetQueuePositionRequest{
		AppointmentId: "00000000-0000-0000-0000-000000000050",
	})
	if status.Code(err) != codes.NotFound {
		t.Fatalf("code = %s, want %s", status.Code(err), codes.NotFound)
	}
}

func TestPredictWaitTime_CountsFromCurrentToken(t *testing.T) {
	var gotCurrent, gotUser int

	srv := newTestServer(&fakeQueueService{
		positionFn: func(ctx context.Context, id uuid.UUID) (queue.PositionResult, error) {
			return queue.PositionResult{Position: 3, CurrentToken: 3, YourToken: 7, Status: domain.StatusScheduled}, nil
		},
	}, &fakePredictor{
		predictFn: func(currentToken, userToken int, at time.Time) float64 {
			gotCurrent, gotUser = currentToken, userToken
			return 37.5
		},
		confidence: waittime.ConfidenceTrained,
	}, nil)

	resp, err := srv.PredictWaitTime(context.Background(), &tokenlinev1.PredictWaitTimeRequest{
		AppointmentId: "00000000-0000-0000-0000-000000000060",
	})
	if err != nil {
		t.Fatalf("PredictWaitTime error: %v", err)
	}
	if gotCurrent != 3 || gotUser != 7 {
		t.Fatalf("Predict(%d, %d), want Predict(3, 7)", gotCurrent, gotUser)
	}
	if resp.PredictedWaitMinutes != 37.5 {
		t.Fatalf("predicted_wait_minutes = %v, want 37.5", resp.PredictedWaitMinutes)
	}
	// Token 7 waits on 4, 5, 6 and the tail of 3: one more than the
	// position estimate.
	if resp.TokensAhead != 4 {
		t.Fatalf("tokens_ahead = %d, want 4", resp.TokensAhead)
	}
	if resp.ModelConfidence != string(waittime.ConfidenceTrained) {
		t.Fatalf("model_confidence = %q, want %q", resp.ModelConfidence, waittime.ConfidenceTrained)
	}
}

func TestPredictWaitTime_NonScheduledPredictsZero(t *testing.T) {
	srv := newTestServer(&fakeQueueService{
		positionFn: func(ctx context.Context, id uuid.UUID) (queue.PositionResult, error) {
			return queue.PositionResult{YourToken: 5, Status: domain.StatusCompleted}, nil
		},
	}, &fakePredictor{
		// predictFn left unset: reaching the model for a finished
		// appointment is a bug.
		confidence: waittime.ConfidenceTrained,
	}, nil)

	resp, err := srv.PredictWaitTime(context.Background(), &tokenlinev1.PredictWaitTimeRequest{
		AppointmentId: "00000000-0000-0000-0000-000000000061",
	})
	if err != nil {
		t.Fatalf("PredictWaitTime error: %v", err)
	}
	if resp.PredictedWaitMinutes != 0 || resp.TokensAhead != 0 {
		t.Fatalf("prediction = (%v, %d), want zeros", resp.PredictedWaitMinutes, resp.TokensAhead)
	}
}

func TestRecommendProviders_RequiresUserID(t *testing.T) {
	srv := newTestServer(&fakeQueueService{}, nil, &fakeRecommender{})

	_, err := srv.RecommendProviders(context.Background(), &tokenlinev1.RecommendProvidersRequest{})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("code = %s, want %s", status.Code(err), codes.InvalidArgument)
	}
}

func TestRecommendProviders_ReturnsRankedIDs(t *testing.T) {
	srv := newTestServer(&fakeQueueService{}, nil, &fakeRecommender{
		recommendFn: func(ctx context.Context, userID, profession string, topN int) ([]string, error) {
			if userID != "u1" || profession != "Dentist" || topN != 3 {
				t.Fatalf("Recommend(%q, %q, %d), want (u1, Dentist, 3)", userID, profession, topN)
			}
			return []string{"p2", "p1"}, nil
		},
	})

	resp, err := srv.RecommendProviders(context.Background(), &tokenlinev1.RecommendProvidersRequest{
		UserId:     "u1",
		Profession: "Dentist",
		TopN:       3,
	})
	if err != nil {
		t.Fatalf("RecommendProviders error: %v", err)
	}
	if len(resp.ProviderIds) != 2 || resp.ProviderIds[0] != "p2" {
		t.Fatalf("provider_ids = %v, want [p2 p1]", resp.ProviderIds)
	}
}

func TestListProviderQueue_DefaultsDayWhenUnset(t *testing.T) {
	var gotDay time.Time

	srv := newTestServer(&fakeQueueService{
		listForProviderFn: func(ctx context.Context, providerID string, day time.Time) ([]domain.Appointment, error) {
			gotDay = day
			return nil, nil
		},
	}, nil, nil)

	_, err := srv.ListProviderQueue(context.Background(), &tokenlinev1.ListProviderQueueRequest{ProviderId: "p1"})
	if err != nil {
		t.Fatalf("ListProviderQueue error: %v", err)
	}
	if !gotDay.IsZero() {
		t.Fatalf("day = %v, want zero so the service picks today", gotDay)
	}
}
