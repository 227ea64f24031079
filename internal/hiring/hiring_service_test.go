package hiring_test

import (
	"context"
	"testing"

	"go-hris-backoffice/internal/events"
	"go-hris-backoffice/internal/hiring"
	hiringerrors "go-hris-backoffice/internal/hiring/errors"
	"go-hris-backoffice/internal/shared/apperror"
	"go-hris-backoffice/internal/shared/patch"
	"go-hris-backoffice/internal/tenantstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingPublisher struct {
	sent []events.Envelope
}

func (p *recordingPublisher) Publish(_ context.Context, _ string, env events.Envelope) error {
	p.sent = append(p.sent, env)
	return nil
}

func newStores() hiring.Stores {
	return hiring.Stores{
		Postings:     tenantstore.NewMemoryStore[hiring.Posting](hiring.PostingCollection),
		Candidates:   tenantstore.NewMemoryStore[hiring.Candidate](hiring.CandidateCollection),
		Applications: tenantstore.NewMemoryStore[hiring.Application](hiring.ApplicationCollection),
	}
}

func setupService() (hiring.Service, *recordingPublisher) {
	pub := &recordingPublisher{}
	return hiring.NewService(newStores(), pub), pub
}

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }
func boolPtr(b bool) *bool        { return &b }

type fixture struct {
	candidate hiring.CandidateResponse
	posting   hiring.PostingResponse
}

func seed(t *testing.T, svc hiring.Service, tenantID string) fixture {
	t.Helper()
	ctx := context.Background()

	c, err := svc.CreateCandidate(ctx, tenantID, hiring.CreateCandidateRequest{FirstName: "Rina", LastName: "Wulandari"})
	require.NoError(t, err)
	p, err := svc.CreatePosting(ctx, tenantID, hiring.CreatePostingRequest{Title: "Barista"})
	require.NoError(t, err)
	return fixture{candidate: c, posting: p}
}

func TestService_Postings(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults isActive to true", func(t *testing.T) {
		svc, _ := setupService()

		p, err := svc.CreatePosting(ctx, "t1", hiring.CreatePostingRequest{Title: "Cashier"})
		require.NoError(t, err)
		assert.True(t, p.IsActive)

		p, err = svc.CreatePosting(ctx, "t1", hiring.CreatePostingRequest{Title: "Cook", IsActive: boolPtr(false)})
		require.NoError(t, err)
		assert.False(t, p.IsActive)
	})

	t.Run("partial update", func(t *testing.T) {
		svc, _ := setupService()
		p, err := svc.CreatePosting(ctx, "t1", hiring.CreatePostingRequest{
			Title:       "Cashier",
			Description: strPtr("Front of house"),
			StoreID:     strPtr("store-9"),
		})
		require.NoError(t, err)

		updated, err := svc.UpdatePosting(ctx, "t1", p.ID, hiring.UpdatePostingRequest{
			Description: patch.NullOf[string](),
			IsActive:    patch.Of(false),
		})
		require.NoError(t, err)
		assert.Equal(t, "Cashier", updated.Title)
		assert.Nil(t, updated.Description)
		assert.Equal(t, "store-9", *updated.StoreID)
		assert.False(t, updated.IsActive)
		assert.Equal(t, p.CreatedAt, updated.CreatedAt)
	})

	t.Run("null ignored for title", func(t *testing.T) {
		svc, _ := setupService()
		p, err := svc.CreatePosting(ctx, "t1", hiring.CreatePostingRequest{Title: "Cashier"})
		require.NoError(t, err)

		updated, err := svc.UpdatePosting(ctx, "t1", p.ID, hiring.UpdatePostingRequest{Title: patch.NullOf[string]()})
		require.NoError(t, err)
		assert.Equal(t, "Cashier", updated.Title)
	})

	t.Run("unknown posting", func(t *testing.T) {
		svc, _ := setupService()

		_, err := svc.UpdatePosting(ctx, "t1", "missing", hiring.UpdatePostingRequest{})
		assert.ErrorIs(t, err, hiringerrors.ErrPostingNotFound)
	})
}

func TestService_Candidates(t *testing.T) {
	ctx := context.Background()
	svc, _ := setupService()

	c, err := svc.CreateCandidate(ctx, "t1", hiring.CreateCandidateRequest{FirstName: "Ayu", LastName: "Lestari"})
	require.NoError(t, err)
	assert.NotNil(t, c.Tags)
	assert.Empty(t, c.Tags)

	tagged, err := svc.CreateCandidate(ctx, "t1", hiring.CreateCandidateRequest{
		FirstName: "Budi",
		LastName:  "Santoso",
		Tags:      []string{"barista", "barista", "night"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"barista", "barista", "night"}, tagged.Tags)

	all, err := svc.GetCandidates(ctx, "t1")
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, c.ID, all[0].ID)

	_, err = svc.GetCandidateByID(ctx, "t2", c.ID)
	assert.ErrorIs(t, err, hiringerrors.ErrCandidateNotFound)
}

func TestService_CreateApplication(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults stage", func(t *testing.T) {
		svc, _ := setupService()
		f := seed(t, svc, "t1")

		a, err := svc.CreateApplication(ctx, "t1", hiring.CreateApplicationRequest{
			CandidateID: f.candidate.ID,
			PostingID:   f.posting.ID,
		})
		require.NoError(t, err)
		assert.Equal(t, hiring.DefaultStage, a.Stage)
		assert.Nil(t, a.Score)
	})

	t.Run("explicit stage kept even when empty", func(t *testing.T) {
		svc, _ := setupService()
		f := seed(t, svc, "t1")

		a, err := svc.CreateApplication(ctx, "t1", hiring.CreateApplicationRequest{
			CandidateID: f.candidate.ID,
			PostingID:   f.posting.ID,
			Stage:       strPtr(""),
		})
		require.NoError(t, err)
		assert.Equal(t, "", a.Stage)

		b, err := svc.CreateApplication(ctx, "t1", hiring.CreateApplicationRequest{
			CandidateID: f.candidate.ID,
			PostingID:   f.posting.ID,
			Stage:       strPtr("screening"),
		})
		require.NoError(t, err)
		assert.Equal(t, "screening", b.Stage)
	})

	t.Run("candidate checked before posting", func(t *testing.T) {
		svc, _ := setupService()

		_, err := svc.CreateApplication(ctx, "t1", hiring.CreateApplicationRequest{
			CandidateID: "missing",
			PostingID:   "missing",
		})
		assert.ErrorIs(t, err, hiringerrors.ErrCandidateNotFound)
	})

	t.Run("candidate from another tenant", func(t *testing.T) {
		svc, _ := setupService()
		other := seed(t, svc, "t2")
		own := seed(t, svc, "t1")

		_, err := svc.CreateApplication(ctx, "t1", hiring.CreateApplicationRequest{
			CandidateID: other.candidate.ID,
			PostingID:   own.posting.ID,
		})
		assert.ErrorIs(t, err, hiringerrors.ErrCandidateNotFound)

		_, err = svc.CreateApplication(ctx, "t1", hiring.CreateApplicationRequest{
			CandidateID: own.candidate.ID,
			PostingID:   other.posting.ID,
		})
		assert.ErrorIs(t, err, hiringerrors.ErrPostingNotFound)

		all, _ := svc.GetApplications(ctx, "t1")
		assert.Empty(t, all)
	})

	t.Run("score range checked", func(t *testing.T) {
		svc, _ := setupService()
		f := seed(t, svc, "t1")

		_, err := svc.CreateApplication(ctx, "t1", hiring.CreateApplicationRequest{
			CandidateID: f.candidate.ID,
			PostingID:   f.posting.ID,
			Score:       floatPtr(-1),
		})
		assert.ErrorIs(t, err, hiringerrors.ErrScoreOutOfRange)
	})
}

func TestService_UpdateApplication(t *testing.T) {
	ctx := context.Background()

	create := func(t *testing.T, svc hiring.Service) hiring.ApplicationResponse {
		t.Helper()
		f := seed(t, svc, "t1")
		a, err := svc.CreateApplication(ctx, "t1", hiring.CreateApplicationRequest{
			CandidateID: f.candidate.ID,
			PostingID:   f.posting.ID,
			Score:       floatPtr(70),
			Notes:       strPtr("strong latte art"),
		})
		require.NoError(t, err)
		return a
	}

	t.Run("out of range score keeps prior values", func(t *testing.T) {
		svc, pub := setupService()
		a := create(t, svc)

		_, err := svc.UpdateApplication(ctx, "t1", a.ID, hiring.UpdateApplicationRequest{
			Stage: patch.Of("interview"),
			Score: patch.Of(101.0),
		})
		assert.ErrorIs(t, err, hiringerrors.ErrScoreOutOfRange)
		assert.Equal(t, apperror.CodeInvalidInput, apperror.CodeOf(err))

		found, err := svc.GetApplicationByID(ctx, "t1", a.ID)
		require.NoError(t, err)
		assert.Equal(t, 70.0, *found.Score)
		assert.Equal(t, hiring.DefaultStage, found.Stage)
		assert.Empty(t, pub.sent)
	})

	t.Run("boundaries accepted", func(t *testing.T) {
		svc, _ := setupService()
		a := create(t, svc)

		for _, score := range []float64{0, 100} {
			resp, err := svc.UpdateApplication(ctx, "t1", a.ID, hiring.UpdateApplicationRequest{Score: patch.Of(score)})
			require.NoError(t, err)
			assert.Equal(t, score, *resp.Score)
		}
	})

	t.Run("null clears score and notes", func(t *testing.T) {
		svc, _ := setupService()
		a := create(t, svc)

		resp, err := svc.UpdateApplication(ctx, "t1", a.ID, hiring.UpdateApplicationRequest{
			Score: patch.NullOf[float64](),
			Notes: patch.NullOf[string](),
		})
		require.NoError(t, err)
		assert.Nil(t, resp.Score)
		assert.Nil(t, resp.Notes)
	})

	t.Run("stage change emits event", func(t *testing.T) {
		svc, pub := setupService()
		a := create(t, svc)

		resp, err := svc.UpdateApplication(ctx, "t1", a.ID, hiring.UpdateApplicationRequest{Stage: patch.Of("interview")})
		require.NoError(t, err)
		assert.Equal(t, "interview", resp.Stage)
		assert.Equal(t, "strong latte art", *resp.Notes)

		_, err = svc.UpdateApplication(ctx, "t1", a.ID, hiring.UpdateApplicationRequest{Stage: patch.Of("interview")})
		require.NoError(t, err)

		require.Len(t, pub.sent, 1)
		assert.Equal(t, events.ApplicationStageChanged, pub.sent[0].EventType)
		assert.Equal(t, a.ID, pub.sent[0].AggregateID)
	})

	t.Run("unknown application", func(t *testing.T) {
		svc, _ := setupService()

		_, err := svc.UpdateApplication(ctx, "t1", "missing", hiring.UpdateApplicationRequest{})
		assert.ErrorIs(t, err, hiringerrors.ErrApplicationNotFound)
	})
}
