package application

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/lendhub/service-lending/internal/domain/apperr"
	commentDomain "github.com/lendhub/service-lending/internal/domain/comment"
)

type mockCommentRepo struct {
	comments []*commentDomain.Comment
}

func (m *mockCommentRepo) FindByItem(ctx context.Context, itemID uuid.UUID) ([]*commentDomain.Comment, error) {
	var out []*commentDomain.Comment
	for _, c := range m.comments {
		if c.ItemID() == itemID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *mockCommentRepo) Save(ctx context.Context, c *commentDomain.Comment) error {
	m.comments = append(m.comments, c)
	return nil
}

func boolPtr(b bool) *bool { return &b }

func TestCreateItem(t *testing.T) {
	owner := testUser(t, "owner")
	svc := NewItemService(newMockItemRepo(), newMockUserRepo(owner), &mockBookingRepo{}, &mockCommentRepo{}, zap.NewNop())

	view, err := svc.CreateItem(context.Background(), owner.ID(), CreateItemRequest{
		Name:        "ladder",
		Description: "3m aluminium ladder",
		Available:   boolPtr(true),
	})
	require.NoError(t, err)
	assert.Equal(t, owner.ID(), view.OwnerID)
	assert.True(t, view.Available)
}

func TestCreateItem_UnknownOwner(t *testing.T) {
	svc := NewItemService(newMockItemRepo(), newMockUserRepo(), &mockBookingRepo{}, &mockCommentRepo{}, zap.NewNop())

	_, err := svc.CreateItem(context.Background(), uuid.New(), CreateItemRequest{
		Name:        "ladder",
		Description: "3m aluminium ladder",
		Available:   boolPtr(true),
	})
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestUpdateItem_OnlyOwner(t *testing.T) {
	owner := testUser(t, "owner")
	intruder := testUser(t, "intruder")
	it := testItem(t, owner.ID(), true)
	svc := NewItemService(newMockItemRepo(it), newMockUserRepo(owner, intruder), &mockBookingRepo{}, &mockCommentRepo{}, zap.NewNop())

	_, err := svc.UpdateItem(context.Background(), intruder.ID(), it.ID(), UpdateItemRequest{Name: "mine now"})
	assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))

	view, err := svc.UpdateItem(context.Background(), owner.ID(), it.ID(), UpdateItemRequest{
		Name:      "cordless drill v2",
		Available: boolPtr(false),
	})
	require.NoError(t, err)
	assert.Equal(t, "cordless drill v2", view.Name)
	assert.False(t, view.Available)
	// Untouched fields survive a partial update.
	assert.Equal(t, it.Description(), view.Description)
}

func TestAddComment_RequiresFinishedBooking(t *testing.T) {
	owner := testUser(t, "owner")
	borrower := testUser(t, "borrower")
	it := testItem(t, owner.ID(), true)

	eligible := false
	bookings := &mockBookingRepo{
		existsFinishedApproved: func(ctx context.Context, itemID, bookerID uuid.UUID, now time.Time) (bool, error) {
			return eligible, nil
		},
	}
	comments := &mockCommentRepo{}
	svc := NewItemService(newMockItemRepo(it), newMockUserRepo(owner, borrower), bookings, comments, zap.NewNop())

	_, err := svc.AddComment(context.Background(), borrower.ID(), it.ID(), CreateCommentRequest{Text: "great drill"})
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	assert.Empty(t, comments.comments)

	eligible = true
	view, err := svc.AddComment(context.Background(), borrower.ID(), it.ID(), CreateCommentRequest{Text: "great drill"})
	require.NoError(t, err)
	assert.Equal(t, "great drill", view.Text)
	assert.Equal(t, borrower.Name(), view.AuthorName)
	require.Len(t, comments.comments, 1)
}

func TestGetItem_WithComments(t *testing.T) {
	owner := testUser(t, "owner")
	borrower := testUser(t, "borrower")
	it := testItem(t, owner.ID(), true)

	c, err := commentDomain.NewComment(it.ID(), borrower.ID(), "held up well")
	require.NoError(t, err)
	comments := &mockCommentRepo{comments: []*commentDomain.Comment{c}}

	svc := NewItemService(newMockItemRepo(it), newMockUserRepo(owner, borrower), &mockBookingRepo{}, comments, zap.NewNop())

	view, err := svc.GetItem(context.Background(), it.ID())
	require.NoError(t, err)
	require.Len(t, view.Comments, 1)
	assert.Equal(t, "held up well", view.Comments[0].Text)
	assert.Equal(t, borrower.Name(), view.Comments[0].AuthorName)
}
