package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventdesk/internal/domain"
)

func TestSubmissionPipeline_Create_Success(t *testing.T) {
	remote := newFakeRemote()
	sports := remote.addCategory("Sports")
	snapshot := NewCategorySnapshot([]domain.Category{sports})
	inbox := NewInbox()

	draft := NewDraft()
	fillDraft(draft)
	require.NoError(t, draft.AddCategory("Music", snapshot))
	require.NoError(t, draft.AddCategory("sports", snapshot))

	res, err := newTestPipeline(remote, nil).Create(context.Background(), draft, snapshot, inbox)
	require.NoError(t, err)

	assert.Equal(t, domain.NavigateListing, res.Navigate)
	assert.Equal(t, []string{"ListCategories", "CreateCategory", "CreateUser", "CreateEvent"}, remote.callLog())

	require.Len(t, remote.users, 1)
	assert.Equal(t, "Ana", remote.users[0].Name)
	assert.Equal(t, remote.users[0].ID, res.Event.CreatedBy)
	music, ok := snapshot.Lookup("music")
	require.True(t, ok)
	assert.Equal(t, []int64{music.ID, sports.ID}, res.Event.CategoryIDs)
	assert.Equal(t, "Jazz Night", res.Event.Title)

	assert.Equal(t, DraftForm{}.Event, draft.Form().Event)
	assert.Zero(t, draft.Form().Categories.Len())
	assert.Equal(t, []domain.Notification{successNotification("Event created successfully!")}, inbox.Drain())
}

func TestSubmissionPipeline_Create_RequiresCategory(t *testing.T) {
	remote := newFakeRemote()
	draft := NewDraft()
	fillDraft(draft)

	_, err := newTestPipeline(remote, nil).Create(context.Background(), draft, NewCategorySnapshot(nil), nil)

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "categories", verr.Field)
	assert.Equal(t, "category required", verr.Reason)
	assert.Empty(t, remote.callLog())
	assert.Equal(t, "Jazz Night", draft.Form().Event.Title)
}

func TestSubmissionPipeline_Create_Validation(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(d *Draft)
		wantField string
	}{
		{"missing title", func(d *Draft) { d.SetTitle("  ") }, "title"},
		{"missing description", func(d *Draft) { d.SetDescription("") }, "description"},
		{"relative image", func(d *Draft) { d.SetImage("/jazz.png") }, "image"},
		{"ftp image", func(d *Draft) { d.SetImage("ftp://img.example.com/a.png") }, "image"},
		{"missing location", func(d *Draft) { d.SetLocation("") }, "location"},
		{"missing start", func(d *Draft) { d.SetStartTime(domain.Timestamp{}) }, "startTime"},
		{"missing end", func(d *Draft) { d.SetEndTime(domain.Timestamp{}) }, "endTime"},
		{"missing author", func(d *Draft) { d.SetAuthorName("") }, "name"},
		{"bad author image", func(d *Draft) { d.SetAuthorImage("not a url") }, "userImage"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			remote := newFakeRemote()
			draft := NewDraft()
			fillDraft(draft)
			require.NoError(t, draft.AddCategory("Music", nil))
			tt.mutate(draft)

			_, err := newTestPipeline(remote, nil).Create(context.Background(), draft, NewCategorySnapshot(nil), nil)

			var verr *domain.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.wantField, verr.Field)
			assert.Empty(t, remote.callLog())
		})
	}
}

func TestSubmissionPipeline_Create_UserFailure(t *testing.T) {
	remote := newFakeRemote()
	remote.errs["CreateUser"] = errors.New("status 500")
	snapshot := NewCategorySnapshot([]domain.Category{{ID: 7, Name: "Sports"}})
	inbox := NewInbox()
	draft := NewDraft()
	fillDraft(draft)
	require.NoError(t, draft.AddCategory("Sports", snapshot))

	_, err := newTestPipeline(remote, nil).Create(context.Background(), draft, snapshot, inbox)

	var stageErr *domain.StageError
	require.ErrorAs(t, err, &stageErr)
	assert.Equal(t, domain.StageCreateUser, stageErr.Stage)
	assert.Equal(t, 0, remote.count("CreateEvent"))
	assert.Equal(t, "Jazz Night", draft.Form().Event.Title)
	assert.True(t, draft.Form().Categories.Contains("sports"))
	assert.False(t, draft.Form().Submitting)
	assert.Equal(t, []domain.Notification{errorNotification("Failed to create user.")}, inbox.Drain())
}

func TestSubmissionPipeline_Create_CategoryFailureStopsBeforeUser(t *testing.T) {
	remote := newFakeRemote()
	remote.errs["CreateCategory:music"] = errors.New("status 500")
	inbox := NewInbox()
	draft := NewDraft()
	fillDraft(draft)
	require.NoError(t, draft.AddCategory("Music", nil))

	_, err := newTestPipeline(remote, nil).Create(context.Background(), draft, NewCategorySnapshot(nil), inbox)

	stage, ok := domain.StageOf(err)
	require.True(t, ok)
	assert.Equal(t, domain.StageResolveCategories, stage)
	var cf *domain.CategoryCreationFailedError
	assert.ErrorAs(t, err, &cf)
	assert.Equal(t, 0, remote.count("CreateUser"))
	assert.Equal(t, 0, remote.count("CreateEvent"))
	assert.Equal(t, []domain.Notification{errorNotification(`Failed to create category "Music".`)}, inbox.Drain())
}

func TestSubmissionPipeline_Create_EventFailureRecordsOrphan(t *testing.T) {
	remote := newFakeRemote()
	remote.errs["CreateEvent"] = errors.New("status 500")
	orphans := &fakeOrphans{}
	snapshot := NewCategorySnapshot([]domain.Category{{ID: 7, Name: "Sports"}})
	draft := NewDraft()
	fillDraft(draft)
	require.NoError(t, draft.AddCategory("Sports", snapshot))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	_, err := newTestPipeline(remote, orphans).Create(ctx, draft, snapshot, nil)

	stage, ok := domain.StageOf(err)
	require.True(t, ok)
	assert.Equal(t, domain.StageCreateOrUpdateEvent, stage)
	assert.Equal(t, "Jazz Night", draft.Form().Event.Title)

	require.Len(t, orphans.orphans, 1)
	o := orphans.orphans[0]
	assert.Equal(t, remote.users[0].ID, o.UserID)
	assert.Equal(t, "Ana", o.UserName)
	assert.Equal(t, "Jazz Night", o.EventTitle)
	assert.Equal(t, []int64{7}, o.CategoryIDs)
	assert.Equal(t, "status 500", o.Cause)
	assert.NoError(t, orphans.ctxErrs[0])
}

func TestSubmissionPipeline_Create_RejectsConcurrentSubmit(t *testing.T) {
	remote := newFakeRemote()
	draft := NewDraft()
	fillDraft(draft)
	require.NoError(t, draft.AddCategory("Music", nil))
	require.True(t, draft.beginSubmit())

	_, err := newTestPipeline(remote, nil).Create(context.Background(), draft, NewCategorySnapshot(nil), nil)
	assert.ErrorIs(t, err, domain.ErrSubmissionInProgress)
	assert.Empty(t, remote.callLog())
	assert.True(t, draft.Form().Submitting)

	draft.endSubmit()
	_, err = newTestPipeline(remote, nil).Create(context.Background(), draft, NewCategorySnapshot(nil), nil)
	assert.NoError(t, err)
}

func TestSubmissionPipeline_Update_PreservesHiddenFields(t *testing.T) {
	remote := newFakeRemote()
	jazz := remote.addCategory("Jazz")
	loaded := domain.Event{
		ID:          55,
		CreatedBy:   9,
		Title:       "Old",
		Description: "Old description",
		Image:       "https://img.example.com/old.png",
		Location:    "Blue Room",
		StartTime:   mustTime("2026-05-01T20:00"),
		EndTime:     mustTime("2026-05-01T23:00"),
		CategoryIDs: []int64{jazz.ID},
	}
	remote.events = []domain.Event{loaded.Clone()}
	snapshot := NewCategorySnapshot([]domain.Category{jazz})

	edit := newEditDraft(loaded, snapshot)
	edit.SetTitle("New")
	require.NoError(t, edit.AddCategory("Swing", snapshot))
	inbox := NewInbox()

	updated, err := newTestPipeline(remote, nil).Update(context.Background(), loaded, edit, snapshot, inbox)
	require.NoError(t, err)

	swing, ok := snapshot.Lookup("swing")
	require.True(t, ok)
	assert.Equal(t, "New", updated.Title)
	assert.Equal(t, int64(9), updated.CreatedBy)
	assert.Equal(t, "Blue Room", updated.Location)
	assert.Equal(t, []int64{jazz.ID, swing.ID}, updated.CategoryIDs)
	assert.Equal(t, 0, remote.count("CreateUser"))
	assert.Equal(t, []domain.Notification{successNotification("Event updated.")}, inbox.Drain())
	assert.Equal(t, "Old", loaded.Title)
}

func TestSubmissionPipeline_Update_Failure(t *testing.T) {
	remote := newFakeRemote()
	remote.errs["UpdateEvent"] = errors.New("status 502")
	loaded := domain.Event{ID: 1, Title: "T", Description: "D", Image: "https://x.example.com/a.png",
		StartTime: mustTime("2026-05-01T20:00"), EndTime: mustTime("2026-05-01T21:00"), CategoryIDs: []int64{3}}
	snapshot := NewCategorySnapshot([]domain.Category{{ID: 3, Name: "Jazz"}})
	edit := newEditDraft(loaded, snapshot)
	edit.SetTitle("Changed")
	inbox := NewInbox()

	_, err := newTestPipeline(remote, nil).Update(context.Background(), loaded, edit, snapshot, inbox)

	stage, ok := domain.StageOf(err)
	require.True(t, ok)
	assert.Equal(t, domain.StageCreateOrUpdateEvent, stage)
	assert.Equal(t, "Changed", edit.Form().Title)
	assert.Equal(t, []domain.Notification{errorNotification("Failed to update event.")}, inbox.Drain())
}

func TestSubmissionPipeline_Update_ContextEnded(t *testing.T) {
	tests := []struct {
		name      string
		ctx       func() (context.Context, context.CancelFunc)
		wantStage bool
		wantErr   error
	}{
		{
			name: "cancelled by caller",
			ctx: func() (context.Context, context.CancelFunc) {
				ctx, cancel := context.WithCancel(context.Background())
				cancel()
				return ctx, cancel
			},
			wantErr: context.Canceled,
		},
		{
			name: "deadline exceeded",
			ctx: func() (context.Context, context.CancelFunc) {
				return context.WithTimeout(context.Background(), time.Nanosecond)
			},
			wantStage: true,
			wantErr:   context.DeadlineExceeded,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			remote := newFakeRemote()
			remote.block = make(chan struct{})
			loaded := domain.Event{ID: 1, Title: "T", Description: "D", Image: "https://x.example.com/a.png",
				StartTime: mustTime("2026-05-01T20:00"), EndTime: mustTime("2026-05-01T21:00"), CategoryIDs: []int64{3}}
			snapshot := NewCategorySnapshot([]domain.Category{{ID: 3, Name: "Jazz"}})
			edit := newEditDraft(loaded, snapshot)
			inbox := NewInbox()

			ctx, cancel := tt.ctx()
			defer cancel()
			_, err := newTestPipeline(remote, nil).Update(ctx, loaded, edit, snapshot, inbox)

			require.ErrorIs(t, err, tt.wantErr)
			_, isStage := domain.StageOf(err)
			assert.Equal(t, tt.wantStage, isStage)
			if tt.wantStage {
				assert.Len(t, inbox.Drain(), 1)
			} else {
				assert.Empty(t, inbox.Drain())
			}
			assert.False(t, edit.Submitting())
		})
	}
}

func TestSubmissionPipeline_Delete_CancelledByCaller(t *testing.T) {
	remote := newFakeRemote()
	remote.events = []domain.Event{{ID: 4}}
	remote.block = make(chan struct{})
	inbox := NewInbox()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := newTestPipeline(remote, nil).Delete(ctx, 4, inbox)

	require.ErrorIs(t, err, context.Canceled)
	_, isStage := domain.StageOf(err)
	assert.False(t, isStage)
	assert.Empty(t, inbox.Drain())
	assert.Len(t, remote.events, 1)
}

func TestSubmissionPipeline_Delete(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		remote := newFakeRemote()
		remote.events = []domain.Event{{ID: 4}}
		inbox := NewInbox()

		require.NoError(t, newTestPipeline(remote, nil).Delete(context.Background(), 4, inbox))
		assert.Empty(t, remote.events)
		n := inbox.Drain()
		require.Len(t, n, 1)
		assert.Equal(t, "Event deleted.", n[0].Title)
		assert.Equal(t, domain.StatusSuccess, n[0].Status)
		assert.Equal(t, 3000, n[0].DurationMS)
	})

	t.Run("failure", func(t *testing.T) {
		remote := newFakeRemote()
		inbox := NewInbox()

		err := newTestPipeline(remote, nil).Delete(context.Background(), 4, inbox)
		stage, ok := domain.StageOf(err)
		require.True(t, ok)
		assert.Equal(t, domain.StageDeleteEvent, stage)
		assert.ErrorIs(t, err, domain.ErrNotFound)
		n := inbox.Drain()
		require.Len(t, n, 1)
		assert.Equal(t, "Error.", n[0].Title)
		assert.Equal(t, "There was an error deleting the event.", n[0].Description)
	})
}
