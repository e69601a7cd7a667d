package e2e

import (
	"bytes"
	"context"
	"fmt"
	"group-chat/console"
	"group-chat/domain"
	"group-chat/runtime"
	"group-chat/transport"
	"strings"
	"sync"
	"time"

	"github.com/gookit/color"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/suite"
)

type BasePeerSuite struct {
	suite.Suite
	Config Config
}

// SetupSuite loads the environment configuration before running tests
func (s *BasePeerSuite) SetupSuite() {
	var err error
	s.Config, err = LoadConfig()
	s.Require().NoError(err)
	if !s.Config.Enabled {
		s.T().Skip("set E2E_ENABLED=true to run the multicast scenarios")
	}
}

// Step prints a colorized header before running fn
func (s *BasePeerSuite) Step(name string, fn func()) {
	header := fmt.Sprintf("  ====== %s ======", name)
	if s.Config.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	s.T().Log(header)
	fn()
}

// Screen is what a peer printed so far.
type Screen struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (sc *Screen) Write(p []byte) (int, error) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	return sc.buf.Write(p)
}

func (sc *Screen) String() string {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	return sc.buf.String()
}

// StartPeer brings a real peer online on the configured group.
func (s *BasePeerSuite) StartPeer(ctx context.Context, username string) (*runtime.Peer, *Screen) {
	log := logs.GetLoggerFromString(s.Config.LogLevel)
	identity, err := domain.NewIdentity(username)
	s.Require().NoError(err)

	group, err := transport.NewGroupChannel(log, s.Config.GroupAddress, s.Config.GroupPort, transport.WithLoopback(true))
	s.Require().NoError(err)

	screen := &Screen{}
	peer := runtime.NewPeer(log, identity, group, console.NewPrinter(screen, screen, false))
	s.Require().NoError(peer.Configure())
	s.Require().NoError(peer.Start(ctx), "multicast group %s unreachable", s.Config.GroupAddress)
	s.T().Cleanup(func() { _ = peer.Close() })
	return peer, screen
}

// WaitFor fails the test unless the screen shows text within a few seconds.
func (s *BasePeerSuite) WaitFor(screen *Screen, text string) {
	s.Require().Eventually(func() bool {
		return strings.Contains(screen.String(), text)
	}, 5*time.Second, 20*time.Millisecond, "never printed %q:\n%s", text, screen)
}
