package domain

// ModerationStatus is the lifecycle tag controlling public visibility of
// user-generated content. Articles and events share the same lifecycle:
// draft -> pending -> approved|rejected, with rejected -> pending allowed
// on resubmission. Archiving is orthogonal and owner-controlled.
type ModerationStatus string

const (
	ModerationDraft    ModerationStatus = "draft"
	ModerationPending  ModerationStatus = "pending"
	ModerationApproved ModerationStatus = "approved"
	ModerationRejected ModerationStatus = "rejected"
)

func (m ModerationStatus) IsValid() bool {
	switch m {
	case ModerationDraft, ModerationPending, ModerationApproved, ModerationRejected:
		return true
	}
	return false
}

// CanPublish reports whether an owner may submit the content for moderation.
func (m ModerationStatus) CanPublish() bool {
	return m == ModerationDraft || m == ModerationRejected
}
