package jobcontext

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
)

func TestJobBegin_SetsMetadata(t *testing.T) {
	jobID := uuid.New()
	ctx, cancel := JobBegin(context.Background(), jobID, JobTypeAnalysis, 3)
	defer cancel()

	meta := GetJobMetadata(ctx)
	if meta.JobID != jobID {
		t.Fatalf("expected job id %s, got %s", jobID, meta.JobID)
	}
	if meta.JobType != JobTypeAnalysis {
		t.Fatalf("expected job type %s, got %s", JobTypeAnalysis, meta.JobType)
	}
	if meta.WorkerID != 3 {
		t.Fatalf("expected worker id 3, got %d", meta.WorkerID)
	}
	if meta.MaxRetries != 3 {
		t.Fatalf("expected 3 max retries, got %d", meta.MaxRetries)
	}
}

func TestJobEnd_SucceedsFirstAttempt(t *testing.T) {
	ctx, cancel := JobBegin(context.Background(), uuid.New(), JobTypeAnalysis, 0)
	defer cancel()

	calls := 0
	err := JobEnd(ctx, func(ctx context.Context) error {
		calls++
		return nil
	})
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if calls != 1 {
		t.Fatalf("expected 1 call, got %d", calls)
	}
}

func TestJobEnd_NonRetryableFailsImmediately(t *testing.T) {
	ctx, cancel := JobBegin(context.Background(), uuid.New(), JobTypeAnalysis, 0)
	defer cancel()

	calls := 0
	err := JobEnd(ctx, func(ctx context.Context) error {
		calls++
		return errors.New("invalid transcript payload")
	})
	if err == nil {
		t.Fatalf("expected failure")
	}
	if calls != 1 {
		t.Fatalf("expected 1 call for non-retryable error, got %d", calls)
	}
}

func TestJobEnd_RecoversPanic(t *testing.T) {
	ctx, cancel := JobBegin(context.Background(), uuid.New(), JobTypeAnalysis, 0)
	defer cancel()

	err := JobEnd(ctx, func(ctx context.Context) error {
		panic("extractor exploded")
	})
	if err == nil {
		t.Fatalf("expected error after panic")
	}
}

func TestIsRetryableError(t *testing.T) {
	cases := []struct {
		err       error
		retryable bool
	}{
		{nil, false},
		{errors.New("connection refused"), true},
		{errors.New("deadlock detected"), true},
		{fmt.Errorf("payload fetch returned status 503"), true},
		{errors.New("invalid payload"), false},
		{errors.New("context deadline exceeded"), true},
	}

	for _, tc := range cases {
		if got := IsRetryableError(tc.err); got != tc.retryable {
			t.Fatalf("IsRetryableError(%v) = %v, want %v", tc.err, got, tc.retryable)
		}
	}
}
