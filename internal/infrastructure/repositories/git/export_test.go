package git

import "net"

// NewSSHAgentAuthWith exports an SSHAgentAuth with injected environment and dialer for testing.
func NewSSHAgentAuthWith(
	getenv func(string) string,
	dial func(network, address string) (net.Conn, error),
) *SSHAgentAuth {
	return &SSHAgentAuth{getenv: getenv, dial: dial}
}
