package core

// ─── Storage Drivers ───────────────────────────────────────────────────────────

// StorageDriver 定義 slot 後端類型
type StorageDriver string

const (
	StorageMemory StorageDriver = "memory"
	StorageSQLite StorageDriver = "sqlite"
	StorageRedis  StorageDriver = "redis"
	StorageMongo  StorageDriver = "mongo"
)

// StorageDrivers contains all supported slot backends
var StorageDrivers = []StorageDriver{StorageMemory, StorageSQLite, StorageRedis, StorageMongo}

// Compression 定義 slot 內容的壓縮方式
type Compression string

const (
	CompressionNone   Compression = "none"
	CompressionZstd   Compression = "zstd"
	CompressionBrotli Compression = "brotli"
)

type MongoCollection string
type SQLiteTable string
type RedisKey string
type FluentdSubTag string

// SlotName 是一個 slot 的名稱（每個 slot 存一個序列化後的值）
type SlotName string

// ─── Slots ─────────────────────────────────────────────────────────────────────
const (
	SlotIsAuthenticated     SlotName = "is-authenticated"
	SlotUserEmail           SlotName = "user-email"
	SlotUserAvatar          SlotName = "user-avatar"
	SlotTheme               SlotName = "theme"
	SlotLayout              SlotName = "layout"
	SlotFontSize            SlotName = "font-size"
	SlotEmployees           SlotName = "employees-data"
	SlotEmployeeDocuments   SlotName = "employee-documents"
	SlotAttendance          SlotName = "attendance-data"
	SlotDashboardUsers      SlotName = "dashboard-users"
	SlotAdminDetails        SlotName = "admin-details"
	SlotComplaints          SlotName = "gtech-complaints"
	SlotEvents              SlotName = "gtech-events"
	SlotApplications        SlotName = "gtech-applications"
	SlotCalendarEvents      SlotName = "calendar-events"
	SlotFacilitiesInventory SlotName = "facilities-inventory"
	SlotFacilitiesAbandoned SlotName = "facilities-abandoned"
)

// ─── MongoDB ───────────────────────────────────────────────────────────────────
const (
	MongoCollectionSlots MongoCollection = "slots"
)

// ─── SQLite ────────────────────────────────────────────────────────────────────
const (
	SQLiteTableSlots SQLiteTable = "slots"
)

// ─── Redis Keys ────────────────────────────────────────────────────────────────

const (
	RedisKeyServerName RedisKey = "hrdesk" // 伺服器名稱
)

const (
	FluentdRequest  FluentdSubTag = "request_log"
	FluentdResponse FluentdSubTag = "response_log"
	FluentdAudit    FluentdSubTag = "store_audit_log"
)
