package announcement

import (
	"context"
)

// AnnouncementService defines business logic for announcements
type AnnouncementService interface {
	// List retrieves every announcement
	List(ctx context.Context) ([]Announcement, error)

	// Create adds an announcement and notifies the recipients: the
	// target employee for individual announcements, the department
	// lists otherwise
	Create(ctx context.Context, req CreateAnnouncementRequest) (Announcement, error)

	// Delete removes an announcement by id
	Delete(ctx context.Context, id int) error
}
