package runtime

import (
	"context"
	goerrors "errors"
	"fmt"
	"group-chat/codec"
	"group-chat/console"
	"group-chat/contract"
	"group-chat/domain"
	"group-chat/errors"
	"group-chat/repositories"
	"group-chat/runtime/workers"
	"group-chat/transport"
	"io"
	"log/slog"
	"net"
	"net/netip"
	"strconv"
	"strings"
	"sync"

	"go.uber.org/multierr"
)

// State is the lifecycle stage of a peer.
type State int

const (
	Offline State = iota
	Configuring
	Online
	Closing
	Closed
)

func (s State) String() string {
	switch s {
	case Offline:
		return "offline"
	case Configuring:
		return "configuring"
	case Online:
		return "online"
	case Closing:
		return "closing"
	case Closed:
		return "closed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

const DefaultUnicastAddress = "0.0.0.0:0"

// Peer is one member of the chat group.
// It owns its unicast endpoint, its ledger and its registry, and drives
// three supervised loops: group receive, unicast receive and user input.
type Peer struct {
	mu       sync.Mutex
	state    State
	done     chan struct{}
	log      *slog.Logger
	identity domain.Identity

	group          contract.GroupChannel
	unicastAddress string
	unicast        net.PacketConn
	input          io.Reader

	printer    *console.Printer
	logSwitch  contract.LogSwitch
	ledger     *repositories.Ledger
	registry   *Registry
	supervisor contract.ISupervisor
}

type Option func(*Peer)

// WithInput makes the peer read commands and messages from r.
// Without it the peer only receives.
func WithInput(r io.Reader) Option {
	return func(p *Peer) { p.input = r }
}

// WithUnicastAddress sets the local address of the unicast endpoint.
func WithUnicastAddress(address string) Option {
	return func(p *Peer) { p.unicastAddress = address }
}

// WithLogSwitch lets the $log command turn diagnostic logging on and off.
func WithLogSwitch(s contract.LogSwitch) Option {
	return func(p *Peer) { p.logSwitch = s }
}

func NewPeer(log *slog.Logger, identity domain.Identity, group contract.GroupChannel, printer *console.Printer, opts ...Option) *Peer {
	p := &Peer{
		state:          Offline,
		done:           make(chan struct{}),
		log:            log.With("peer", identity.Username),
		identity:       identity,
		group:          group,
		unicastAddress: DefaultUnicastAddress,
		printer:        printer,
		ledger:         repositories.NewLedger(log, identity),
		registry:       NewRegistry(identity),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.supervisor = workers.NewSupervisor(p.log, p.onWorkerFailure)
	return p
}

// Configure opens the unicast endpoint. On failure the peer stays offline.
func (p *Peer) Configure() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state != Offline {
		return fmt.Errorf("%w: configure while %s", errors.ErrInvalidState, p.state)
	}

	conn, err := transport.ListenUnicast(p.unicastAddress)
	if err != nil {
		return err
	}
	p.unicast = conn
	p.state = Configuring
	p.log.Debug("Unicast endpoint open", "address", conn.LocalAddr())
	return nil
}

// Start joins the group, launches the loops and announces the peer.
// The loops stop when ctx is canceled or the peer is closed.
func (p *Peer) Start(ctx context.Context) error {
	p.mu.Lock()
	if p.state != Configuring {
		p.mu.Unlock()
		return fmt.Errorf("%w: start while %s", errors.ErrInvalidState, p.state)
	}
	p.state = Online
	p.mu.Unlock()

	if err := p.group.Join(); err != nil {
		_ = p.Close()
		return err
	}
	p.supervisor.Add(
		workers.NewReceiverWorker("group", p.group.Conn(), p, p.log),
		workers.NewReceiverWorker("unicast", p.unicast, p, p.log),
	)
	if p.input != nil {
		p.supervisor.Add(workers.NewInputWorker(p.input, p, p.log))
	}
	go p.supervisor.Run(ctx)

	if err := p.broadcastControl(domain.JoinGroupBody); err != nil {
		_ = p.Close()
		return err
	}
	p.log.Info("Peer online", "id", p.identity.ID, "unicast", p.unicast.LocalAddr())
	return nil
}

// Leave tells the group the peer is going away, then closes it.
func (p *Peer) Leave() error {
	if !p.Online() {
		return nil
	}
	err := p.broadcastControl(domain.LeaveGroupBody)
	if err != nil {
		p.log.Warn("Leave announcement not sent", "error", err)
	}
	return multierr.Append(err, p.Close())
}

// Close releases the sockets and stops the loops. Only the first call on a
// configured or online peer does anything. It never waits for the loops,
// so it is safe to call from within one of them.
func (p *Peer) Close() error {
	p.mu.Lock()
	if p.state != Online && p.state != Configuring {
		p.mu.Unlock()
		return nil
	}
	p.state = Closing
	p.mu.Unlock()

	p.supervisor.Stop()
	groupErr := p.group.Close()
	if groupErr != nil {
		p.log.Warn("Leaving the group failed", "error", groupErr)
	}
	err := multierr.Append(groupErr, p.unicast.Close())

	p.mu.Lock()
	p.state = Closed
	close(p.done)
	p.mu.Unlock()
	p.log.Info("Peer closed")
	return err
}

// Done is closed once the peer is closed.
func (p *Peer) Done() <-chan struct{} {
	return p.done
}

func (p *Peer) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

func (p *Peer) Online() bool {
	return p.State() == Online
}

func (p *Peer) Identity() domain.Identity {
	return p.identity
}

// LocalAddr is the unicast endpoint, nil before Configure.
func (p *Peer) LocalAddr() net.Addr {
	if p.unicast == nil {
		return nil
	}
	return p.unicast.LocalAddr()
}

func (p *Peer) Ledger() *repositories.Ledger {
	return p.ledger
}

func (p *Peer) Registry() *Registry {
	return p.registry
}

func (p *Peer) ReportError(err error) {
	p.printer.Error(err)
}

// onWorkerFailure runs when a loop ends on an error. End of input is a
// regular way out; anything else shuts the peer down.
func (p *Peer) onWorkerFailure(name string, err error) {
	if goerrors.Is(err, errors.ErrInputClosed) {
		p.log.Debug("Input closed, leaving the group")
		if err := p.Leave(); err != nil {
			p.printer.Error(err)
		}
		return
	}
	p.log.Error("Loop stopped", "worker", name, "error", err)
	p.printer.Error(err)
	_ = p.Close()
}

// HandleDatagram processes one datagram received on either socket.
func (p *Peer) HandleDatagram(payload []byte, from net.Addr) error {
	message, err := codec.Decode(payload)
	if err != nil {
		return err
	}
	if err := p.ledger.RecordIncoming(message); err != nil {
		return err
	}
	source, err := addrOf(from)
	if err != nil {
		return err
	}
	p.registry.Upsert(message.Sender, source, message.SenderPort)

	if message.Sender.ID == p.identity.ID {
		return nil
	}
	p.log.Debug("Message received", "kind", message.Kind(), "id", message.ID,
		"from", message.Sender.Username, "protocol", message.Protocol)

	switch message.Kind() {
	case domain.KindAck:
		return p.ledger.ReconcileAck(message)
	case domain.KindLeave:
		alias, err := p.registry.Remove(message.Sender.ID)
		if err != nil {
			return err
		}
		p.printer.Notice(alias + " left the group")
		return nil
	case domain.KindJoin:
		p.printer.Notice(p.aliasOf(message) + " joined the group")
		return p.sendDirect("welcome "+message.Sender.Username+"!", message.Sender.ID.String())
	default:
		if message.IsGroup {
			p.printer.Chat(p.aliasOf(message) + ": " + message.Body)
		} else {
			p.printer.Chat(p.aliasOf(message) + " (private): " + message.Body)
		}
		return p.sendAck(message)
	}
}

func (p *Peer) aliasOf(message domain.Message) string {
	alias, err := p.registry.AliasOf(message.Sender.ID)
	if err != nil {
		return message.Sender.Username
	}
	return alias
}

// HandleLine runs one line typed by the user.
func (p *Peer) HandleLine(line string) error {
	command, err := domain.ParseCommand(line)
	if err != nil {
		return err
	}

	switch c := command.(type) {
	case domain.ExitCommand:
		return p.Leave()
	case domain.ListPeersCommand:
		p.printer.Notice(p.registry.Render())
	case domain.StatsCommand:
		p.printer.Notice(p.ledger.Statistics().Render())
	case domain.HistoryCommand:
		p.printer.Notice(repositories.RenderHistory(p.ledger.Received()))
	case domain.HelpCommand:
		p.printer.Notice(strings.Join(domain.HelpText, "\n"))
	case domain.WhoAmICommand:
		p.printer.Notice(fmt.Sprintf("%s (%s) listening on %s", p.identity.Username, p.identity.ID, p.LocalAddr()))
	case domain.ToggleLogCommand:
		if p.logSwitch == nil {
			return fmt.Errorf("%w: logging cannot be switched", errors.ErrInvalidState)
		}
		if p.logSwitch.Toggle() {
			p.printer.Notice("Logging on")
		} else {
			p.printer.Notice("Logging off")
		}
	case domain.RenameCommand:
		if err := p.registry.Rename(c.Alias, c.NewAlias); err != nil {
			return err
		}
		p.printer.Notice(fmt.Sprintf("%s is now known as %s", c.Alias, c.NewAlias))
	case domain.DirectMessageCommand:
		if err := checkUserText(c.Text); err != nil {
			return err
		}
		return p.sendDirect(c.Text, c.Target)
	case domain.BroadcastCommand:
		if err := checkUserText(c.Text); err != nil {
			return err
		}
		return p.broadcast(c.Text, p.registry.PeerCount())
	}
	return nil
}

// checkUserText keeps users from typing a body other peers would take
// for a membership announcement.
func checkUserText(text string) error {
	if text == domain.JoinGroupBody || text == domain.LeaveGroupBody {
		return fmt.Errorf("%w: %q is reserved", errors.ErrInvalidArgument, text)
	}
	return nil
}

// broadcastControl announces a membership change. Nobody acks those.
func (p *Peer) broadcastControl(body string) error {
	return p.broadcast(body, 0)
}

func (p *Peer) broadcast(body string, ackTarget int) error {
	message := p.newMessage(body, domain.UDPMulticast, ackTarget)
	return p.transmit(message, func(payload []byte) error {
		return p.group.Send(payload)
	})
}

func (p *Peer) sendDirect(body, target string) error {
	endpoint, err := p.registry.Resolve(target)
	if err != nil {
		return err
	}
	return p.unicastTo(p.newMessage(body, domain.UDPUnicast, 1), endpoint)
}

// sendAck acknowledges message to its sender, the body being the acknowledged ID.
func (p *Peer) sendAck(message domain.Message) error {
	endpoint, err := p.registry.Resolve(message.Sender.ID.String())
	if err != nil {
		return err
	}
	ack := p.newMessage(strconv.Itoa(message.ID), domain.UDPUnicast, 0)
	ack.IsAck = true
	return p.unicastTo(ack, endpoint)
}

func (p *Peer) unicastTo(message domain.Message, endpoint netip.AddrPort) error {
	return p.transmit(message, func(payload []byte) error {
		if _, err := p.unicast.WriteTo(payload, net.UDPAddrFromAddrPort(endpoint)); err != nil {
			return fmt.Errorf("%w: sending to %s: %v", errors.ErrIO, endpoint, err)
		}
		return nil
	})
}

func (p *Peer) newMessage(body string, protocol domain.Protocol, ackTarget int) domain.Message {
	return domain.Message{
		ID:         p.ledger.NewID(),
		Sender:     p.identity,
		SenderPort: p.localPort(),
		AckTarget:  ackTarget,
		IsGroup:    protocol == domain.UDPMulticast,
		Protocol:   protocol,
		Body:       body,
	}
}

// transmit encodes message, records it as sent, then hands it to send.
func (p *Peer) transmit(message domain.Message, send func([]byte) error) error {
	payload, err := codec.Encode(message)
	if err != nil {
		return err
	}
	p.ledger.RecordOutgoing(message)
	if err := send(payload); err != nil {
		return err
	}
	p.log.Debug("Message sent", "id", message.ID, "kind", message.Kind(),
		"protocol", message.Protocol, "ack_target", message.AckTarget)
	return nil
}

func (p *Peer) localPort() int {
	if addr, ok := p.LocalAddr().(*net.UDPAddr); ok {
		return addr.Port
	}
	return 0
}

func addrOf(from net.Addr) (netip.Addr, error) {
	if udp, ok := from.(*net.UDPAddr); ok {
		if addr, ok := netip.AddrFromSlice(udp.IP); ok {
			return addr.Unmap(), nil
		}
	}
	if from != nil {
		if addrPort, err := netip.ParseAddrPort(from.String()); err == nil {
			return addrPort.Addr().Unmap(), nil
		}
	}
	return netip.Addr{}, fmt.Errorf("%w: unusable source address %v", errors.ErrInvalidArgument, from)
}
