package experimenter

type ConnectorKind string

const (
	ConnectorKindInvalid ConnectorKind = ""
	ConnectorKindSSH     ConnectorKind = "ssh"
	ConnectorKindHTTP    ConnectorKind = "http"
	ConnectorKindFTP     ConnectorKind = "ftp"
)

// Connector describes one way of moving a parameter's data between the
// client host and the experiment container.
type Connector interface {
	Describe() ConnectorDescription
}

// ConnectorDescription is the wire form of a connector as embedded in a
// job description.
type ConnectorDescription struct {
	Kind     ConnectorKind `json:"kind"`
	Host     string        `json:"host,omitempty"`
	Port     int           `json:"port,omitempty"`
	Path     string        `json:"path,omitempty"`
	URL      string        `json:"url,omitempty"`
	Username string        `json:"username,omitempty"`
	Password string        `json:"password,omitempty"`
}

type SSHConnector struct {
	Host     string
	Port     int
	Path     string
	Username string
	Password string
}

func (c SSHConnector) Describe() ConnectorDescription {
	return ConnectorDescription{
		Kind:     ConnectorKindSSH,
		Host:     c.Host,
		Port:     c.Port,
		Path:     c.Path,
		Username: c.Username,
		Password: c.Password,
	}
}

type HTTPConnector struct {
	URL string
}

func (c HTTPConnector) Describe() ConnectorDescription {
	return ConnectorDescription{
		Kind: ConnectorKindHTTP,
		URL:  c.URL,
	}
}

type FTPConnector struct {
	Host     string
	Port     int
	Path     string
	Username string
	Password string
}

func (c FTPConnector) Describe() ConnectorDescription {
	return ConnectorDescription{
		Kind:     ConnectorKindFTP,
		Host:     c.Host,
		Port:     c.Port,
		Path:     c.Path,
		Username: c.Username,
		Password: c.Password,
	}
}
