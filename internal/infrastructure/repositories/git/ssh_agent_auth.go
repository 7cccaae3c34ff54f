package git

import (
	"errors"
	"fmt"
	"io"
	"net"
	"os"

	"github.com/go-git/go-git/v5/plumbing/transport"
	gitssh "github.com/go-git/go-git/v5/plumbing/transport/ssh"
	"golang.org/x/crypto/ssh/agent"
)

const (
	sshAuthSockEnv = "SSH_AUTH_SOCK"
	defaultSSHUser = "git"
)

// ErrNoSSHAgent is returned when no SSH agent socket is advertised.
var ErrNoSSHAgent = errors.New("ssh-agent not available, " + sshAuthSockEnv + " is not set")

// AuthProvider builds the transport credentials for a remote URL. The
// returned closer releases whatever the credentials hold open.
type AuthProvider interface {
	Auth(remoteURL string) (transport.AuthMethod, io.Closer, error)
}

// SSHAgentAuth authenticates SSH remotes with the keys of the running SSH
// agent. No key file is read and nothing is prompted.
type SSHAgentAuth struct {
	getenv func(string) string
	dial   func(network, address string) (net.Conn, error)
}

// NewSSHAgentAuth creates an SSHAgentAuth reading SSH_AUTH_SOCK from the environment.
func NewSSHAgentAuth() *SSHAgentAuth {
	return &SSHAgentAuth{getenv: os.Getenv, dial: net.Dial}
}

// Auth returns agent-backed credentials for SSH remotes. Other transports
// get no credentials.
func (a *SSHAgentAuth) Auth(remoteURL string) (transport.AuthMethod, io.Closer, error) {
	endpoint, err := transport.NewEndpoint(remoteURL)
	if err != nil {
		return nil, nil, fmt.Errorf("parse remote url: %w", err)
	}
	if endpoint.Protocol != "ssh" {
		return nil, nopCloser{}, nil
	}

	socket := a.getenv(sshAuthSockEnv)
	if socket == "" {
		return nil, nil, ErrNoSSHAgent
	}

	conn, err := a.dial("unix", socket)
	if err != nil {
		return nil, nil, fmt.Errorf("connect to ssh-agent: %w", err)
	}

	user := endpoint.User
	if user == "" {
		user = defaultSSHUser
	}

	//nolint:exhaustruct // host keys are checked against known_hosts by default
	auth := &gitssh.PublicKeysCallback{
		User:     user,
		Callback: agent.NewClient(conn).Signers,
	}
	return auth, conn, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
