package constants

// Deployment environments
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Event publisher providers
const (
	PubSubProviderNone   = "none"
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Thumbnail storage providers
const (
	StorageProviderBlob  = "blob"
	StorageProviderMinio = "minio"
)

// Mail providers
const (
	MailProviderLog    = "log"
	MailProviderResend = "resend"
)

// Log outputs
const (
	LogOutputStdout = "stdout"
	LogOutputFile   = "file"
	LogOutputBoth   = "both"
)
