package logging

type Category string
type SubCategory string
type ExtraKey string

const (
	General         Category = "General"
	IO              Category = "IO"
	Internal        Category = "Internal"
	Redis           Category = "Redis"
	Mongo           Category = "Mongo"
	RabbitMQ        Category = "RabbitMQ"
	Gateway         Category = "Gateway"
	RequestResponse Category = "RequestResponse"
)

const (
	// General
	Startup         SubCategory = "Startup"
	Shutdown        SubCategory = "Shutdown"
	ExternalService SubCategory = "ExternalService"

	// Gateway
	Connect    SubCategory = "Connect"
	Disconnect SubCategory = "Disconnect"
	JoinRoom   SubCategory = "JoinRoom"
	LeaveRoom  SubCategory = "LeaveRoom"
	Message    SubCategory = "Message"
	Refresh    SubCategory = "Refresh"
	Broadcast  SubCategory = "Broadcast"
)

const (
	AppName      ExtraKey = "AppName"
	LoggerName   ExtraKey = "Logger"
	ConnectionID ExtraKey = "ConnectionId"
	UserID       ExtraKey = "UserId"
	RoomID       ExtraKey = "RoomId"
	EventName    ExtraKey = "Event"
	ClientIp     ExtraKey = "ClientIp"
	Method       ExtraKey = "Method"
	StatusCode   ExtraKey = "StatusCode"
	Path         ExtraKey = "Path"
	Latency      ExtraKey = "Latency"
	ErrorMessage ExtraKey = "ErrorMessage"
)
