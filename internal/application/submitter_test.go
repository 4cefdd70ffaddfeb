// internal/application/submitter_test.go
package application

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	stderrors "business-registry/internal/common/errors"
	"business-registry/internal/common/logger"
	"business-registry/internal/models"
	"business-registry/internal/registration"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==========================
// Test Helper Functions
// ==========================

func testUser() models.User {
	return models.User{ID: "jane@example.com", Email: "jane@example.com", Name: "Jane"}
}

func completeDraft() models.RegistrationData {
	return models.RegistrationData{
		BusinessInfo: &models.BusinessInfo{
			BusinessName:     "Savannah Traders",
			BusinessType:     models.BusinessTypeSARL,
			ActivityCategory: "Retail",
			Region:           "littoral",
			City:             "Douala",
			BusinessPhone:    "+237699112233",
			BusinessEmail:    "contact@savannah.cm",
		},
		PrimaryContact: &models.Founder{
			FullName:     "Jane Mbarga",
			NationalID:   "CM1234567",
			Phone:        "+237677001122",
			Email:        "jane@example.com",
			Role:         "CEO",
			Shareholding: 100,
			Nationality:  "Cameroonian",
			DateOfBirth:  "1990-04-12",
		},
		Shareholders: []models.Founder{},
		Documents: &models.DocumentUploads{
			NationalID:                 "id.pdf",
			ProofOfAddress:             "address.pdf",
			AttestationOfNonConviction: "attestation.pdf",
			PhotoOrSelfie:              "photo.jpg",
		},
	}
}

type submitterFixture struct {
	submitter *Submitter
	store     *MemoryStore
	drafts    *registration.MemoryDraftStore
}

func newSubmitterFixture(t *testing.T, gateway Gateway) *submitterFixture {
	t.Helper()

	store := NewMemoryStore()
	drafts := registration.NewMemoryDraftStore()
	_, err := drafts.Update(context.Background(), testUser().ID, completeDraft())
	require.NoError(t, err)

	return &submitterFixture{
		submitter: NewSubmitter(store, drafts, gateway, logger.NewTestLogger(t)),
		store:     store,
		drafts:    drafts,
	}
}

func alwaysSucceed() Gateway {
	return NewSimulatedGateway(0, 0)
}

func alwaysFail() Gateway {
	return NewSimulatedGateway(0, 1, WithRandSource(func() float64 { return 0 }))
}

// ==========================
// Submission Pipeline Tests
// ==========================

func TestSubmitter_Submit_Confirmed(t *testing.T) {
	f := newSubmitterFixture(t, alwaysSucceed())
	ctx := context.Background()

	attempt, err := f.submitter.Submit(ctx, testUser())

	require.NoError(t, err)
	assert.Equal(t, StateConfirmed, attempt.State())
	assert.True(t, strings.HasPrefix(attempt.Optimistic.ID, "temp_"))
	assert.True(t, strings.HasPrefix(attempt.Final.ID, "app_"))
	assert.False(t, attempt.Final.IsOptimistic)
	assert.Equal(t, "Savannah Traders", attempt.Final.BusinessName)
	assert.Equal(t, models.StatusSubmitted, attempt.Final.Status)

	// The confirmed record replaced the optimistic one, nothing else remains.
	apps, err := f.store.List(ctx, testUser().ID, "")
	require.NoError(t, err)
	require.Len(t, apps, 1)
	assert.Equal(t, attempt.Final.ID, apps[0].ID)

	// The draft is cleared on confirmation.
	draft, err := f.drafts.Read(ctx, testUser().ID)
	require.NoError(t, err)
	assert.True(t, draft.IsEmpty())
}

func TestSubmitter_Submit_ConfirmedKeepsPosition(t *testing.T) {
	f := newSubmitterFixture(t, alwaysSucceed())
	ctx := context.Background()

	older := models.Application{ID: "app_existing", UserID: testUser().ID,
		BusinessName: "Old Venture", Status: models.StatusApproved, SubmittedDate: time.Now().UTC()}
	require.NoError(t, f.store.Insert(ctx, older))

	attempt, err := f.submitter.Submit(ctx, testUser())
	require.NoError(t, err)

	apps, err := f.store.List(ctx, testUser().ID, "")
	require.NoError(t, err)
	require.Len(t, apps, 2)
	// The new record was inserted at the head and stayed there after the
	// optimistic→confirmed swap.
	assert.Equal(t, attempt.Final.ID, apps[0].ID)
	assert.Equal(t, "app_existing", apps[1].ID)
}

func TestSubmitter_Submit_RollbackOnGatewayFailure(t *testing.T) {
	f := newSubmitterFixture(t, alwaysFail())
	ctx := context.Background()

	attempt, err := f.submitter.Submit(ctx, testUser())

	require.Error(t, err)
	assert.True(t, stderrors.IsCode(err, stderrors.ErrCodeSubmissionFailed))
	assert.True(t, stderrors.IsRetryable(err))
	assert.Equal(t, StateFailed, attempt.State())

	// The optimistic record was removed again.
	apps, err := f.store.List(ctx, testUser().ID, "")
	require.NoError(t, err)
	assert.Empty(t, apps)

	// The draft survives for a retry.
	draft, err := f.drafts.Read(ctx, testUser().ID)
	require.NoError(t, err)
	assert.Equal(t, "", draft.MissingStep())
}

func TestSubmitter_Submit_RetryAfterFailureSucceeds(t *testing.T) {
	calls := 0
	gateway := NewSimulatedGateway(0, 1, WithRandSource(func() float64 {
		calls++
		if calls == 1 {
			return 0 // below the failure rate: fail
		}
		return 1
	}))
	f := newSubmitterFixture(t, gateway)
	ctx := context.Background()

	_, err := f.submitter.Submit(ctx, testUser())
	require.Error(t, err)

	attempt, err := f.submitter.Submit(ctx, testUser())
	require.NoError(t, err)
	assert.Equal(t, StateConfirmed, attempt.State())
}

func TestSubmitter_Submit_IncompleteDraft(t *testing.T) {
	store := NewMemoryStore()
	drafts := registration.NewMemoryDraftStore()
	partial := completeDraft()
	partial.Documents = nil
	_, err := drafts.Update(context.Background(), testUser().ID, partial)
	require.NoError(t, err)

	submitter := NewSubmitter(store, drafts, alwaysSucceed(), logger.NewTestLogger(t))

	_, err = submitter.Submit(context.Background(), testUser())

	require.Error(t, err)
	assert.True(t, stderrors.IsCode(err, stderrors.ErrCodeDraftIncomplete))
	assert.Contains(t, err.Error(), "Draft is missing required step data")
}

func TestSubmitter_Submit_ShareTotalCheckedAtSubmit(t *testing.T) {
	store := NewMemoryStore()
	drafts := registration.NewMemoryDraftStore()
	draft := completeDraft()
	draft.PrimaryContact.Shareholding = 60
	draft.Shareholders = []models.Founder{{FullName: "Partner One", Shareholding: 20}}
	_, err := drafts.Update(context.Background(), testUser().ID, draft)
	require.NoError(t, err)

	submitter := NewSubmitter(store, drafts, alwaysSucceed(), logger.NewTestLogger(t))

	_, err = submitter.Submit(context.Background(), testUser())

	require.Error(t, err)
	assert.True(t, stderrors.IsCode(err, stderrors.ErrCodeShareTotalInvalid))
}

// ==========================
// Re-entrancy Tests
// ==========================

func TestSubmitter_Submit_RejectsConcurrentAttempt(t *testing.T) {
	release := make(chan struct{})
	gateway := &blockingGateway{release: release}
	f := newSubmitterFixture(t, gateway)
	ctx := context.Background()

	var wg sync.WaitGroup
	wg.Add(1)
	firstErr := make(chan error, 1)
	go func() {
		defer wg.Done()
		_, err := f.submitter.Submit(ctx, testUser())
		firstErr <- err
	}()

	<-gateway.entered()

	_, err := f.submitter.Submit(ctx, testUser())
	require.Error(t, err)
	assert.True(t, stderrors.IsCode(err, stderrors.ErrCodeSubmissionInFlight))

	close(release)
	wg.Wait()
	require.NoError(t, <-firstErr)

	// The guard is released; a fresh submit is rejected only because the
	// draft is now cleared, not because of the in-flight lock.
	_, err = f.submitter.Submit(ctx, testUser())
	require.Error(t, err)
	assert.True(t, stderrors.IsCode(err, stderrors.ErrCodeDraftIncomplete))
}

// blockingGateway parks Submit until released so tests can observe the
// in-flight window.
type blockingGateway struct {
	release   chan struct{}
	enterOnce sync.Once
	enteredCh chan struct{}
}

func (g *blockingGateway) entered() chan struct{} {
	g.enterOnce.Do(func() { g.enteredCh = make(chan struct{}) })
	return g.enteredCh
}

func (g *blockingGateway) Submit(ctx context.Context, _ models.Application) (Result, error) {
	close(g.entered())
	select {
	case <-ctx.Done():
		return Result{}, ctx.Err()
	case <-g.release:
		return Result{ID: "app_blocking"}, nil
	}
}

// ==========================
// Gateway Tests
// ==========================

func TestSimulatedGateway_ContextCancellation(t *testing.T) {
	gateway := NewSimulatedGateway(time.Minute, 0)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := gateway.Submit(ctx, models.Application{})

	assert.ErrorIs(t, err, context.Canceled)
}

func TestSimulatedGateway_FailureDraw(t *testing.T) {
	fail := NewSimulatedGateway(0, 0.5, WithRandSource(func() float64 { return 0.4 }))
	_, err := fail.Submit(context.Background(), models.Application{})
	assert.Error(t, err)

	succeed := NewSimulatedGateway(0, 0.5, WithRandSource(func() float64 { return 0.6 }))
	result, err := succeed.Submit(context.Background(), models.Application{})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(result.ID, "app_"))
}
