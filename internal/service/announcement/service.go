package announcement

import (
	"context"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/ems-backend-go/internal/domain/announcement"
	"github.com/cmlabs-hris/ems-backend-go/internal/pkg/email"
	"github.com/cmlabs-hris/ems-backend-go/internal/store"
)

type AnnouncementServiceImpl struct {
	store        *store.Store
	emailService email.Service
	now          func() time.Time
}

func NewAnnouncementService(s *store.Store, emailService email.Service) *AnnouncementServiceImpl {
	return &AnnouncementServiceImpl{
		store:        s,
		emailService: emailService,
		now:          time.Now,
	}
}

// List implements announcement.AnnouncementService.
func (s *AnnouncementServiceImpl) List(ctx context.Context) ([]announcement.Announcement, error) {
	result := []announcement.Announcement{}
	s.store.View(func(d *store.Document) {
		result = append(result, d.Announcements...)
	})
	return result, nil
}

// Create implements announcement.AnnouncementService.
func (s *AnnouncementServiceImpl) Create(ctx context.Context, req announcement.CreateAnnouncementRequest) (announcement.Announcement, error) {
	if err := req.Validate(); err != nil {
		return announcement.Announcement{}, err
	}

	annType := req.Type
	if annType == "" {
		annType = announcement.TypeCompany
	}

	var created announcement.Announcement
	var targetEmail string
	err := s.store.Update(func(d *store.Document) error {
		created = announcement.Announcement{
			ID:        d.NextID(store.CollectionAnnouncements),
			Title:     req.Title,
			Message:   req.Message,
			Type:      annType,
			CreatedAt: s.now(),
		}
		if annType == announcement.TypeIndividual {
			created.TargetEmployeeID = req.TargetEmployeeID
			for _, e := range d.Employees {
				if e.ID == *req.TargetEmployeeID {
					targetEmail = e.Email
					break
				}
			}
		}
		d.Announcements = append(d.Announcements, created)
		return nil
	})
	if err != nil {
		return announcement.Announcement{}, err
	}

	result, err := s.emailService.SendAnnouncementNotification(ctx, email.AnnouncementNotification{
		Title:       created.Title,
		Message:     created.Message,
		Type:        created.Type,
		TargetEmail: targetEmail,
	})
	if err != nil {
		slog.Error("Failed to send announcement email", "announcement_id", created.ID, "error", err)
	} else if result.Sent {
		slog.Info("Announcement email notification sent", "announcement_id", created.ID)
	}

	return created, nil
}

// Delete implements announcement.AnnouncementService.
func (s *AnnouncementServiceImpl) Delete(ctx context.Context, id int) error {
	return s.store.Update(func(d *store.Document) error {
		for i := range d.Announcements {
			if d.Announcements[i].ID == id {
				d.Announcements = append(d.Announcements[:i], d.Announcements[i+1:]...)
				return nil
			}
		}
		return announcement.ErrAnnouncementNotFound
	})
}
