package rental

type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "PENDING"
	ApprovalApproved ApprovalStatus = "APPROVED"
	ApprovalRejected ApprovalStatus = "REJECTED"
)

func (s ApprovalStatus) String() string {
	return string(s)
}

func (s ApprovalStatus) IsValid() bool {
	switch s {
	case ApprovalPending, ApprovalApproved, ApprovalRejected:
		return true
	default:
		return false
	}
}

type BookingStatus string

const (
	BookingRequested BookingStatus = "REQUESTED"
	BookingActive    BookingStatus = "ACTIVE"
	BookingCompleted BookingStatus = "COMPLETED"
	BookingCancelled BookingStatus = "CANCELLED"
)

func (s BookingStatus) String() string {
	return string(s)
}

func (s BookingStatus) IsValid() bool {
	switch s {
	case BookingRequested, BookingActive, BookingCompleted, BookingCancelled:
		return true
	default:
		return false
	}
}

func (s BookingStatus) IsTerminal() bool {
	return len(bookingTransitions[s]) == 0
}

var approvalTransitions = map[ApprovalStatus][]ApprovalStatus{
	ApprovalPending:  {ApprovalApproved, ApprovalRejected},
	ApprovalApproved: nil,
	ApprovalRejected: nil,
}

var bookingTransitions = map[BookingStatus][]BookingStatus{
	BookingRequested: {BookingActive, BookingCancelled},
	BookingActive:    {BookingCompleted, BookingCancelled},
	BookingCompleted: nil,
	BookingCancelled: nil,
}

func (s ApprovalStatus) CanTransitionTo(next ApprovalStatus) bool {
	for _, allowed := range approvalTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	for _, allowed := range bookingTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// blockingApprovals and blockingBookings describe the rentals that hold a
// vehicle's calendar. Everything else is ignored by overlap detection.
var (
	blockingApprovals = []ApprovalStatus{ApprovalPending, ApprovalApproved}
	blockingBookings  = []BookingStatus{BookingRequested, BookingActive}
)

func BlockingApprovals() []ApprovalStatus {
	return append([]ApprovalStatus(nil), blockingApprovals...)
}

func BlockingBookings() []BookingStatus {
	return append([]BookingStatus(nil), blockingBookings...)
}

func IsBlocking(approval ApprovalStatus, booking BookingStatus) bool {
	return (approval == ApprovalPending || approval == ApprovalApproved) &&
		(booking == BookingRequested || booking == BookingActive)
}
