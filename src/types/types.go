package types

type BookingStatus string

const (
	BOOKING_PENDING     BookingStatus = "pending"
	BOOKING_APPROVED    BookingStatus = "approved"
	BOOKING_IN_PROGRESS BookingStatus = "in-progress"
	BOOKING_COMPLETED   BookingStatus = "completed"
	BOOKING_REJECTED    BookingStatus = "rejected"
)

const (
	ROLE_ADMIN    = "admin"
	ROLE_STAFF    = "staff"
	ROLE_CUSTOMER = "customer"
)

const (
	ATTENDANCE_PRESENT = "present"
	ATTENDANCE_ABSENT  = "absent"
	ATTENDANCE_LEAVE   = "leave"
)

type SimpleRequestParams struct {
	ID string `uri:"id" binding:"required"`
}

// CartLineItem is one client-held package selection plus its chosen date span.
// Date rules (both present, start not after end) are enforced here at binding
// time; the booking service persists without re-validating.
type CartLineItem struct {
	GroupID   string   `json:"groupId,omitempty"`
	PackageID []string `json:"packageId,omitempty"`
	Name      string   `json:"name" binding:"required"`
	Category  string   `json:"category,omitempty"`
	Price     float64  `json:"price" binding:"required,gte=0"`
	StartDate string   `json:"startDate" binding:"required,datestr"`
	EndDate   string   `json:"endDate" binding:"required,datestr,gtedate=StartDate"`
}

type CreateBookingRequestBody struct {
	EventName string         `json:"eventName" binding:"required"`
	EventType string         `json:"eventType,omitempty"`
	Venue     string         `json:"venue,omitempty"`
	Notes     string         `json:"notes,omitempty"`
	Packages  []CartLineItem `json:"packages" binding:"required,min=1,dive"`
}

type UpdateBookingRequestBody struct {
	EventName   *string  `json:"eventName,omitempty"`
	EventType   *string  `json:"eventType,omitempty"`
	Venue       *string  `json:"venue,omitempty"`
	Notes       *string  `json:"notes,omitempty"`
	StartDate   *string  `json:"startDate,omitempty" binding:"omitempty,datestr"`
	EndDate     *string  `json:"endDate,omitempty" binding:"omitempty,datestr"`
	TotalAmount *float64 `json:"totalAmount,omitempty" binding:"omitempty,gte=0"`
	PaidAmount  *float64 `json:"paidAmount,omitempty" binding:"omitempty,gte=0"`
}

type UpdateBookingStatusRequestBody struct {
	Status BookingStatus `json:"status" binding:"required,oneof=pending approved in-progress completed rejected"`
}

type AssignmentRequestBody struct {
	MemberID string `json:"memberId" binding:"required"`
	Category string `json:"category" binding:"required"`
	Comments string `json:"comments,omitempty"`
}

type CreatePackageGroupRequestBody struct {
	Category    string                     `json:"category" binding:"required"`
	Title       string                     `json:"title" binding:"required"`
	Description string                     `json:"description,omitempty"`
	Packages    []PackageLineTemplateEntry `json:"packages,omitempty" binding:"omitempty,dive"`
}

type PackageLineTemplateEntry struct {
	Name        string  `json:"name" binding:"required"`
	Price       float64 `json:"price" binding:"required,gte=0"`
	Description string  `json:"description,omitempty"`
}

type UpdatePackageGroupRequestBody struct {
	Category    *string                    `json:"category,omitempty"`
	Title       *string                    `json:"title,omitempty"`
	Description *string                    `json:"description,omitempty"`
	Packages    []PackageLineTemplateEntry `json:"packages,omitempty" binding:"omitempty,dive"`
}

type CreateAttendanceRequestBody struct {
	MemberID string `json:"memberId,omitempty"`
	Date     string `json:"date" binding:"required,datestr"`
	Status   string `json:"status" binding:"required,oneof=present absent leave"`
	CheckIn  string `json:"checkIn,omitempty"`
	CheckOut string `json:"checkOut,omitempty"`
	Notes    string `json:"notes,omitempty"`
}

type UpdateAttendanceRequestBody struct {
	Status   *string `json:"status,omitempty" binding:"omitempty,oneof=present absent leave"`
	CheckIn  *string `json:"checkIn,omitempty"`
	CheckOut *string `json:"checkOut,omitempty"`
	Notes    *string `json:"notes,omitempty"`
}

type CreatePaymentRequestBody struct {
	BookingID string  `json:"bookingId" binding:"required"`
	Amount    float64 `json:"amount" binding:"required,gt=0"`
	Method    string  `json:"method,omitempty"`
	Reference string  `json:"reference,omitempty"`
	Notes     string  `json:"notes,omitempty"`
}

type CreateGalleryItemRequestBody struct {
	Title     string `json:"title" binding:"required"`
	Category  string `json:"category,omitempty"`
	MediaType string `json:"mediaType,omitempty" binding:"omitempty,oneof=image video"`
	URL       string `json:"url" binding:"required,url"`
	Featured  bool   `json:"featured,omitempty"`
}

type UpdateGalleryItemRequestBody struct {
	Title     *string `json:"title,omitempty"`
	Category  *string `json:"category,omitempty"`
	MediaType *string `json:"mediaType,omitempty" binding:"omitempty,oneof=image video"`
	URL       *string `json:"url,omitempty" binding:"omitempty,url"`
	Featured  *bool   `json:"featured,omitempty"`
}

type CreateContactRequestBody struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone,omitempty"`
	Subject string `json:"subject,omitempty"`
	Message string `json:"message" binding:"required"`
}

type UpsertSettingRequestBody struct {
	SettingKey   string `json:"settingKey" binding:"required"`
	Group        string `json:"group,omitempty"`
	SettingValue any    `json:"settingValue"`
}

type CreateTeamMemberRequestBody struct {
	Name      string `json:"name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone,omitempty"`
	Role      string `json:"role" binding:"required,oneof=admin staff customer"`
	Specialty string `json:"specialty,omitempty"`
	AvatarURL string `json:"avatarUrl,omitempty"`
}

type UpdateTeamMemberRequestBody struct {
	Name      *string `json:"name,omitempty"`
	Email     *string `json:"email,omitempty" binding:"omitempty,email"`
	Phone     *string `json:"phone,omitempty"`
	Role      *string `json:"role,omitempty" binding:"omitempty,oneof=admin staff customer"`
	Specialty *string `json:"specialty,omitempty"`
	AvatarURL *string `json:"avatarUrl,omitempty"`
	Active    *bool   `json:"active,omitempty"`
}
