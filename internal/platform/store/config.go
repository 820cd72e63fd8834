package store

// Config aggregates per backend configuration
type Config struct {
	AppName string

	PG PGConfig
	CH CHConfig
}

// PGConfig configures postgres connectivity and tracing
type PGConfig struct {
	Enabled     bool
	URL         string
	MaxConns    int32
	LogSQL      bool
	SlowQueryMs int
}

// CHConfig configures clickhouse connectivity
// ClientName and ClientTag identify the process in server side query logs
type CHConfig struct {
	Enabled    bool
	URL        string
	ClientName string
	ClientTag  string
}
