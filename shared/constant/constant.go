package constant

import (
	"time"
)

const (
	ContextGuest = "guest"
)

// Context key types to avoid collisions
type contextKey string

const (
	ContextKeyUserID    contextKey = "user_id"
	ContextKeyUserEmail contextKey = "user_email"
	ContextKeyUserRole  contextKey = "user_role"
	ContextKeyTokenID   contextKey = "token_id"
	ContextKeyUserAgent contextKey = "user_agent"
)

const (
	RoleSuperAdmin = "superadmin"
	RoleManager    = "manager"
	RoleStaff      = "staff"
)

const (
	RequestParamPage    = "page"
	RequestParamLimit   = "limit"
	RequestParamSortBy  = "sort_by"
	RequestParamSortDir = "sort_dir"
)

const (
	RequestParamID        = "id"
	RequestParamDate      = "date"
	RequestParamMonth     = "month"
	RequestParamStatus    = "status"
	RequestParamRoomNo    = "roomNo"
	RequestParamKmcCd     = "kmcCd"
	RequestParamSeqNo     = "seqNo"
	RequestParamReqNo     = "reqNo"
	RequestParamFlag      = "flag"
	RequestParamOccupancy = "occupancy"
	RequestParamEncoding  = "encoding"
	RequestMaxMemory      = 10 << 20 // 10 MB
)

const (
	DefaultValuePage  = 1
	DefaultValueLimit = 10
)

const (
	PqErrorCodeUniqueViolation  = "23505"
	PqErrorCodeFkViolation      = "23503"
	PqErrorCodeLockNotAvailable = "55P03"
)

const (
	DateFormat = time.RFC3339
)

const (
	MinutesToSeconds = 60
)

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelHandlerScopeName    = "handler"

	OtelQueryAttributeKey = "query"
	OtelS3ScopeName       = "s3"
	OtelKafkaScopeName    = "kafka"
	OtelMailScopeName     = "mail"
)

const (
	RequestHeaderAuthorization      = "Authorization"
	RequestHeaderUserAgent          = "User-Agent"
	RequestHeaderContentType        = "Content-Type"
	RequestHeaderRateLimit          = "X-RateLimit-Limit"
	RequestHeaderRateLimitRemaining = "X-RateLimit-Remaining"
	RequestHeaderRateLimitWindow    = "X-RateLimit-Window"
	RequestHeaderAPIKey             = "X-API-Key"
)

const (
	ContentTypeJSON          = "application/json"
	ContentTypeCSV           = "text/csv"
	ContentTypeXLSX          = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	ContentTypeXLS           = "application/vnd.ms-excel"
	FormFile                 = "file"
	FormFileType             = "file_type"
	HeaderContentDisposition = "Content-Disposition"
	HeaderContentLength      = "Content-Length"
)

const (
	ResponseErrorPrepareShutdown      = "SERVER PREPARING TO SHUT DOWN"
	ResponseErrorUnhealthy            = "SERVER UNHEALTHY"
	ResponseErrorRequestLimitExceeded = "REQUEST LIMIT EXCEEDED"
)

const (
	ServerEnvDevelopment = "development"
	ServerEnvProduction  = "production"
)

const (
	CachePrefixRoom        = "room:"
	CachePrefixReservation = "reservation:"
	CachePrefixDashboard   = "dashboard:"
	CachePrefixMeal        = "meal:"
	CachePrefixVacation    = "vacation:"
	CachePrefixMissionary  = "missionary:"
)

const (
	Asterix = "*"
	Empty   = ""
)
