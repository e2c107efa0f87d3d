package jobs

import (
	"context"

	"dawati-backend/internal/domain"
	"dawati-backend/internal/logger"
)

// SendOutreachReminders nudges hosts of approved upcoming events who
// still have guests without a dispatched invitation.
func (jr *JobRunner) SendOutreachReminders() {
	jr.runWithRecovery("SendOutreachReminders", func() {
		ctx := context.Background()

		page := int32(1)
		const pageSize = int32(100)
		for {
			events, total, err := jr.store.EventRepository.ListByApprovalStatus(ctx, domain.ApprovalStatusApproved, page, pageSize)
			if err != nil {
				logger.Error("failed to list approved events", "error", err)
				return
			}

			for i := range events {
				jr.remindEventOwner(ctx, &events[i])
			}

			if page*pageSize >= total {
				return
			}
			page++
		}
	})
}

func (jr *JobRunner) remindEventOwner(ctx context.Context, event *domain.Event) {
	if event.Status != domain.EventStatusUpcoming {
		return
	}

	guests, err := jr.store.GuestRepository.ListByEvent(ctx, event.ID)
	if err != nil {
		logger.Error("failed to list guests for reminder", "event_id", event.ID, "error", err)
		return
	}
	dispatched, err := jr.store.GuestRepository.CountDispatched(ctx, event.ID)
	if err != nil {
		logger.Error("failed to count dispatched guests", "event_id", event.ID, "error", err)
		return
	}

	undispatched := int32(len(guests)) - dispatched
	if undispatched <= 0 {
		return
	}

	owner, err := jr.store.UserRepository.GetByID(ctx, event.OwnerID)
	if err != nil {
		logger.Error("failed to load owner for reminder", "event_id", event.ID, "error", err)
		return
	}

	if err := jr.emailSvc.SendOutreachReminder(ctx, owner.Email, owner.Name, event.Title, undispatched); err != nil {
		logger.Error("failed to send outreach reminder", "event_id", event.ID, "error", err)
	}
}
