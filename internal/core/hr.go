package core

type EmployeeStatus string

const (
	EmployeeActive   EmployeeStatus = "active"
	EmployeeInactive EmployeeStatus = "inactive"
)

type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "present"
	AttendanceAbsent  AttendanceStatus = "absent"
	AttendanceLate    AttendanceStatus = "late"
	AttendanceHalfDay AttendanceStatus = "half-day"
)

type ComplaintStatus string

const (
	ComplaintActive     ComplaintStatus = "active"
	ComplaintInProgress ComplaintStatus = "in-progress"
	ComplaintCompleted  ComplaintStatus = "completed"
)

type ReplySender string

const (
	SenderAdmin ReplySender = "admin"
	SenderUser  ReplySender = "user"
)

type ApplicationType string

const (
	ApplicationLeave      ApplicationType = "leave"
	ApplicationShortLeave ApplicationType = "short-leave"
	ApplicationOther      ApplicationType = "other"
)

type ApplicationStatus string

const (
	ApplicationPending    ApplicationStatus = "pending"
	ApplicationInProgress ApplicationStatus = "in-progress"
	ApplicationApproved   ApplicationStatus = "approved"
	ApplicationRejected   ApplicationStatus = "rejected"
)

type CalendarEventType string

const (
	CalendarHoliday CalendarEventType = "holiday"
	CalendarMeeting CalendarEventType = "meeting"
	CalendarEvent   CalendarEventType = "event"
)

// Role 後台帳號角色
type Role string

const (
	RoleAdmin  Role = "Admin"
	RoleEditor Role = "Editor"
	RoleStaff  Role = "Staff"
)

// 庫存狀態標籤（自由文字，以下為系統會自動套用的值）
const (
	InventoryAvailable  = "Available"
	InventoryOutOfStock = "Out of Stock"

	AbandonedReasonMoved       = "Moved from Inventory"
	AbandonedReasonUnspecified = "Not Specified"
)

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

type Layout string

const (
	LayoutCompact  Layout = "compact"
	LayoutStandard Layout = "standard"
	LayoutWide     Layout = "wide"
)

type FontSize string

const (
	FontSmall  FontSize = "small"
	FontMedium FontSize = "medium"
	FontLarge  FontSize = "large"
)

const (
	DefaultAvatarURL = "https://images.unsplash.com/photo-1535713875002-d1d0cf377fde?auto=format&fit=crop&w=100&h=100&q=80"
	DateLayout       = "2006-01-02"
	// 前端舊資料的 M/D/YYYY 格式
	SlashDateLayout = "1/2/2006"
)
