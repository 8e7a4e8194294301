package application

import (
	"time"

	"github.com/google/uuid"

	bookingDomain "github.com/lendhub/service-lending/internal/domain/booking"
	commentDomain "github.com/lendhub/service-lending/internal/domain/comment"
	itemDomain "github.com/lendhub/service-lending/internal/domain/item"
	requestDomain "github.com/lendhub/service-lending/internal/domain/request"
	userDomain "github.com/lendhub/service-lending/internal/domain/user"
)

// ItemSummary is the narrow item projection embedded in booking views.
type ItemSummary struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// BookerSummary is the narrow user projection embedded in booking views.
type BookerSummary struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
}

// BookingView is the read model returned for every booking operation.
type BookingView struct {
	ID        uuid.UUID     `json:"id"`
	StartTime time.Time     `json:"start_time"`
	EndTime   time.Time     `json:"end_time"`
	Status    string        `json:"status"`
	Item      ItemSummary   `json:"item"`
	Booker    BookerSummary `json:"booker"`
	CreatedAt time.Time     `json:"created_at"`
}

// UserView is the read model for a user account.
type UserView struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// CommentView is the read model for item feedback.
type CommentView struct {
	ID         uuid.UUID `json:"id"`
	Text       string    `json:"text"`
	AuthorName string    `json:"author_name"`
	CreatedAt  time.Time `json:"created_at"`
}

// ItemView is the read model for a catalog listing.
type ItemView struct {
	ID          uuid.UUID     `json:"id"`
	OwnerID     uuid.UUID     `json:"owner_id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Available   bool          `json:"available"`
	RequestID   *uuid.UUID    `json:"request_id,omitempty"`
	Comments    []CommentView `json:"comments,omitempty"`
}

// RequestView is the read model for an item request, carrying the listings
// created in answer to it.
type RequestView struct {
	ID          uuid.UUID  `json:"id"`
	Description string     `json:"description"`
	CreatedAt   time.Time  `json:"created_at"`
	Items       []ItemView `json:"items"`
}

// --- Projections ---

func toItemSummary(i *itemDomain.Item) ItemSummary {
	if i == nil {
		return ItemSummary{}
	}
	return ItemSummary{ID: i.ID(), Name: i.Name()}
}

func toBookerSummary(u *userDomain.User) BookerSummary {
	if u == nil {
		return BookerSummary{}
	}
	return BookerSummary{ID: u.ID(), Email: u.Email()}
}

func toBookingView(bk *bookingDomain.Booking, i *itemDomain.Item, booker *userDomain.User) BookingView {
	return BookingView{
		ID:        bk.ID(),
		StartTime: bk.Start(),
		EndTime:   bk.End(),
		Status:    string(bk.Status()),
		Item:      toItemSummary(i),
		Booker:    toBookerSummary(booker),
		CreatedAt: bk.CreatedAt(),
	}
}

func toUserView(u *userDomain.User) UserView {
	return UserView{ID: u.ID(), Name: u.Name(), Email: u.Email(), CreatedAt: u.CreatedAt()}
}

func toCommentView(c *commentDomain.Comment, authorName string) CommentView {
	return CommentView{ID: c.ID(), Text: c.Text(), AuthorName: authorName, CreatedAt: c.CreatedAt()}
}

func toItemView(i *itemDomain.Item, comments []CommentView) ItemView {
	return ItemView{
		ID:          i.ID(),
		OwnerID:     i.OwnerID(),
		Name:        i.Name(),
		Description: i.Description(),
		Available:   i.Available(),
		RequestID:   i.RequestID(),
		Comments:    comments,
	}
}

func toRequestView(r *requestDomain.Request, items []ItemView) RequestView {
	if items == nil {
		items = []ItemView{}
	}
	return RequestView{
		ID:          r.ID(),
		Description: r.Description(),
		CreatedAt:   r.CreatedAt(),
		Items:       items,
	}
}
