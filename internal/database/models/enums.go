package models

// UserRole defines the access tiers for users
type UserRole string

const (
	UserRoleIndividualContributor UserRole = "individual_contributor"
	UserRoleSupervisor            UserRole = "supervisor"
	UserRoleLeadership            UserRole = "leadership"
)

// IsValid checks if the UserRole is valid
func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleIndividualContributor, UserRoleSupervisor, UserRoleLeadership:
		return true
	}
	return false
}

// ConfidenceLevel is the tri-state self-assessment attached to goals and check-ins
type ConfidenceLevel string

const (
	ConfidenceOnTrack  ConfidenceLevel = "green"
	ConfidenceAtRisk   ConfidenceLevel = "amber"
	ConfidenceOffTrack ConfidenceLevel = "red"
)

// IsValid checks if the ConfidenceLevel is valid
func (c ConfidenceLevel) IsValid() bool {
	switch c {
	case ConfidenceOnTrack, ConfidenceAtRisk, ConfidenceOffTrack:
		return true
	}
	return false
}

// KeyResultOwnership defines how a team key result is owned
type KeyResultOwnership string

const (
	OwnershipShared   KeyResultOwnership = "shared"
	OwnershipAssigned KeyResultOwnership = "assigned"
)

// IsValid checks if the KeyResultOwnership is valid
func (o KeyResultOwnership) IsValid() bool {
	return o == OwnershipShared || o == OwnershipAssigned
}

// PlanStatus defines the lifecycle states of a development plan
type PlanStatus string

const (
	PlanStatusInProgress PlanStatus = "in_progress"
	PlanStatusCompleted  PlanStatus = "completed"
	PlanStatusOnHold     PlanStatus = "on_hold"
)

// IsValid checks if the PlanStatus is valid
func (s PlanStatus) IsValid() bool {
	switch s {
	case PlanStatusInProgress, PlanStatusCompleted, PlanStatusOnHold:
		return true
	}
	return false
}

// ResourceType defines the kinds of learning resources
type ResourceType string

const (
	ResourceTypeCourse   ResourceType = "course"
	ResourceTypeVideo    ResourceType = "video"
	ResourceTypeArticle  ResourceType = "article"
	ResourceTypeBook     ResourceType = "book"
	ResourceTypeWorkshop ResourceType = "workshop"
)

// IsValid checks if the ResourceType is valid
func (t ResourceType) IsValid() bool {
	switch t {
	case ResourceTypeCourse, ResourceTypeVideo, ResourceTypeArticle, ResourceTypeBook, ResourceTypeWorkshop:
		return true
	}
	return false
}

// MeetingStatus defines the lifecycle states of a one-on-one meeting
type MeetingStatus string

const (
	MeetingStatusScheduled MeetingStatus = "scheduled"
	MeetingStatusCompleted MeetingStatus = "completed"
	MeetingStatusCancelled MeetingStatus = "cancelled"
)

// IsValid checks if the MeetingStatus is valid
func (s MeetingStatus) IsValid() bool {
	switch s {
	case MeetingStatusScheduled, MeetingStatusCompleted, MeetingStatusCancelled:
		return true
	}
	return false
}

// CompanyValue is the closed set of values a recognition can be tagged with
type CompanyValue string

const (
	ValueCustomerFirst CompanyValue = "customer_first"
	ValueOwnership     CompanyValue = "ownership"
	ValueExcellence    CompanyValue = "excellence"
	ValueTeamwork      CompanyValue = "teamwork"
	ValueInnovation    CompanyValue = "innovation"
)

// IsValid checks if the CompanyValue is valid
func (v CompanyValue) IsValid() bool {
	switch v {
	case ValueCustomerFirst, ValueOwnership, ValueExcellence, ValueTeamwork, ValueInnovation:
		return true
	}
	return false
}

// WebhookEventType is the fixed catalog of LMS events a webhook can subscribe to
type WebhookEventType string

const (
	EventEnrollmentCreated WebhookEventType = "enrollment.created"
	EventCourseCompleted   WebhookEventType = "course.completed"
	EventQuizPassed        WebhookEventType = "quiz.passed"
	EventQuizFailed        WebhookEventType = "quiz.failed"
	EventCertificateIssued WebhookEventType = "certificate.issued"
	EventBadgeAwarded      WebhookEventType = "badge.awarded"
	EventTrainingDue       WebhookEventType = "training.due"
	EventTrainingOverdue   WebhookEventType = "training.overdue"
)

// WebhookEventTypes lists every supported event type
var WebhookEventTypes = []WebhookEventType{
	EventEnrollmentCreated,
	EventCourseCompleted,
	EventQuizPassed,
	EventQuizFailed,
	EventCertificateIssued,
	EventBadgeAwarded,
	EventTrainingDue,
	EventTrainingOverdue,
}

// IsValid checks if the WebhookEventType is valid
func (t WebhookEventType) IsValid() bool {
	for _, v := range WebhookEventTypes {
		if t == v {
			return true
		}
	}
	return false
}
