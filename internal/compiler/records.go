// internal/compiler/records.go
package compiler

// Typed record shapes for the sections that collapse into a single
// composite directive. Records are assembled from flattened child
// directives with mapstructure, so field tags use the document key
// names.

// Listener is one entry of the "listen" directive.
type Listener struct {
	Kind          string      `cfg:"kind"`
	Port          int         `cfg:"port"`
	IPAddress     string      `cfg:"ip_address"`
	Backlog       int         `cfg:"backlog"`
	ProxyProtocol bool        `cfg:"proxy_protocol"`
	Access        string      `cfg:"access"`
	Shaper        string      `cfg:"shaper"`
	MaxStanzaSize int         `cfg:"max_stanza_size"`
	Password      string      `cfg:"password"`
	TLS           *TLSOptions `cfg:"tls"`
}

// TLSOptions carries the union of the two TLS vocabularies; which
// fields may be set is decided at dispatch time by the module tag.
type TLSOptions struct {
	Module              string `cfg:"module"`
	Certfile            string `cfg:"certfile"`
	CACertfile          string `cfg:"cacertfile"`
	DHFile              string `cfg:"dhfile"`
	VerifyPeer          bool   `cfg:"verify_peer"`
	DisconnectOnFailure bool   `cfg:"disconnect_on_failure"`
	VerifyMode          string `cfg:"verify_mode"`
	Ciphers             string `cfg:"ciphers"`
}

// Pool is one outgoing connection pool.
type Pool struct {
	Type       string         `cfg:"type"`
	Name       string         `cfg:"name"`
	Scope      string         `cfg:"scope"`
	Workers    int            `cfg:"workers"`
	Strategy   string         `cfg:"strategy"`
	Connection map[string]any `cfg:"connection"`
}

// Shaper is a named traffic shaper.
type Shaper struct {
	Name    string `cfg:"name"`
	MaxRate int    `cfg:"max_rate"`
}

// S2SOutgoing holds the outgoing server-to-server connection settings.
type S2SOutgoing struct {
	Port              int `cfg:"port"`
	ConnectionTimeout int `cfg:"connection_timeout"`
}
