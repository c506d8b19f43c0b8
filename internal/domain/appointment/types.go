package appointment

type Status string

const (
	StatusRequested Status = "requested"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
	StatusNoShow    Status = "no_show"
)

// ActiveStatuses are the statuses that occupy the resource and take part in conflict checks.
var ActiveStatuses = []Status{StatusRequested, StatusConfirmed}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusRequested, StatusConfirmed, StatusCompleted, StatusCancelled, StatusNoShow:
		return true
	default:
		return false
	}
}

func (s Status) IsActive() bool {
	return s == StatusRequested || s == StatusConfirmed
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

type Action string

const (
	ActionConfirm    Action = "confirm"
	ActionComplete   Action = "complete"
	ActionCancel     Action = "cancel"
	ActionMarkNoShow Action = "mark_no_show"
	ActionReschedule Action = "reschedule"
)

func (a Action) String() string {
	return string(a)
}

type Type string

const (
	TypeViewing      Type = "viewing"
	TypeTestDrive    Type = "test_drive"
	TypeConsultation Type = "consultation"
)

func (t Type) String() string {
	return string(t)
}

func (t Type) IsValid() bool {
	switch t {
	case TypeViewing, TypeTestDrive, TypeConsultation:
		return true
	default:
		return false
	}
}

// DefaultDurationMinutes is the length offered when a caller asks for availability by type only.
func (t Type) DefaultDurationMinutes() int {
	switch t {
	case TypeViewing:
		return 30
	case TypeTestDrive, TypeConsultation:
		return 60
	default:
		return MinDurationMinutes
	}
}

func NewType(s string) (Type, error) {
	t := Type(s)
	if !t.IsValid() {
		return "", &ValidationError{Field: "type", Err: ErrInvalidType}
	}
	return t, nil
}

type Location string

const (
	LocationShowroom        Location = "showroom"
	LocationCustomerAddress Location = "customer_address"
	LocationOther           Location = "other"
)

func (l Location) String() string {
	return string(l)
}

func (l Location) IsValid() bool {
	switch l {
	case LocationShowroom, LocationCustomerAddress, LocationOther:
		return true
	default:
		return false
	}
}

func (l Location) RequiresAddress() bool {
	return l != LocationShowroom
}

func NewLocation(s string) (Location, error) {
	l := Location(s)
	if !l.IsValid() {
		return "", &ValidationError{Field: "location", Err: ErrInvalidLocation}
	}
	return l, nil
}
