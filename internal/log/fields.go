package log

// Common field names for structured logging
const (
	FieldComponent  = "component"
	FieldRequestID  = "request_id"
	FieldClientIP   = "client_ip"
	FieldMethod     = "method"
	FieldPath       = "path"
	FieldStatusCode = "status_code"
	FieldDuration   = "duration_ms"
	FieldError      = "error"
	FieldOperation  = "operation"
	FieldItemCode   = "item_code"
	FieldItemName   = "item_name"
	FieldCategory   = "category"
	FieldYear       = "year"
	FieldRegion     = "region"
	FieldSource     = "source"
	FieldSeriesLen  = "series_len"
)

// Components defines standard component names
const (
	ComponentApp      = "app"
	ComponentHTTP     = "http"
	ComponentKOSIS    = "kosis"
	ComponentSnapshot = "snapshot"
	ComponentAMQP     = "amqp"
	ComponentWorker   = "worker"
	ComponentCache    = "cache"
)

// Operations defines standard operation names
const (
	OpFetch    = "fetch"
	OpDerive   = "derive"
	OpRefresh  = "refresh"
	OpSave     = "save"
	OpLoad     = "load"
	OpStartup  = "startup"
	OpShutdown = "shutdown"
)
