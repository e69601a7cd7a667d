package runtime

import (
	"group-chat/domain"
	"group-chat/errors"
	"net/netip"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

var localhost = netip.MustParseAddr("127.0.0.1")

func identity(username string) domain.Identity {
	return domain.Identity{ID: uuid.New(), Username: username}
}

func TestRegistry_Upsert_Then_Resolve(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry(identity("Alice"))
	bob := identity("Bob")

	// When a peer is seen for the first time
	registry.Upsert(bob, localhost, 4000)

	// Then it is reachable by alias and by id
	endpoint, err := registry.Resolve("Bob")
	req.NoError(err)
	req.Equal(netip.MustParseAddrPort("127.0.0.1:4000"), endpoint)

	endpoint, err = registry.Resolve(bob.ID.String())
	req.NoError(err)
	req.Equal(uint16(4000), endpoint.Port())
	req.Equal(1, registry.MemberCount())
}

func TestRegistry_Upsert_Refreshes_Endpoint(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry(identity("Alice"))
	bob := identity("Bob")

	registry.Upsert(bob, localhost, 4000)
	req.NoError(registry.Rename("Bob", "bobby"))
	registry.Upsert(bob, netip.MustParseAddr("10.0.0.2"), 4001)

	// Then the alias is kept and the endpoint updated
	endpoint, err := registry.Resolve("bobby")
	req.NoError(err)
	req.Equal(netip.MustParseAddrPort("10.0.0.2:4001"), endpoint)
	req.Equal(1, registry.MemberCount())
}

func TestRegistry_Upsert_Unmaps_IPv4(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry(identity("Alice"))
	registry.Upsert(identity("Bob"), netip.MustParseAddr("::ffff:192.168.1.7"), 4000)

	endpoint, err := registry.Resolve("Bob")
	req.NoError(err)
	req.Equal("192.168.1.7:4000", endpoint.String())
}

func TestRegistry_Same_Username_Gets_Distinct_Aliases(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry(identity("Alice"))
	first, second, third := identity("Matteo"), identity("Matteo"), identity("Matteo")

	registry.Upsert(first, localhost, 1)
	registry.Upsert(second, localhost, 2)
	registry.Upsert(third, localhost, 3)

	for alias, port := range map[string]uint16{"Matteo": 1, "Matteo#2": 2, "Matteo#3": 3} {
		endpoint, err := registry.Resolve(alias)
		req.NoError(err)
		req.Equal(port, endpoint.Port())
	}
}

func TestRegistry_Remove(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry(identity("Alice"))
	bob := identity("Bob")
	registry.Upsert(bob, localhost, 4000)

	alias, err := registry.Remove(bob.ID)
	req.NoError(err)
	req.Equal("Bob", alias)

	_, err = registry.Resolve("Bob")
	req.ErrorIs(err, errors.ErrUnknownUser)
	_, err = registry.Resolve(bob.ID.String())
	req.ErrorIs(err, errors.ErrUnknownUser)

	_, err = registry.Remove(bob.ID)
	req.ErrorIs(err, errors.ErrUnknownUser)
}

func TestRegistry_Rename(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry(identity("Alice"))
	bob := identity("Bob")
	registry.Upsert(bob, localhost, 4000)

	req.NoError(registry.Rename("Bob", "Roberto"))

	_, err := registry.Resolve("Roberto")
	req.NoError(err)
	_, err = registry.Resolve("Bob")
	req.ErrorIs(err, errors.ErrUnknownUser)

	alias, err := registry.AliasOf(bob.ID)
	req.NoError(err)
	req.Equal("Roberto", alias)
}

func TestRegistry_Rename_Unknown_Alias_Leaves_Directory_Unchanged(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry(identity("Alice"))
	registry.Upsert(identity("Bob"), localhost, 4000)
	before := registry.Entries()

	err := registry.Rename("Clara", "Claretta")
	req.ErrorIs(err, errors.ErrUnknownUser)
	req.Equal(before, registry.Entries())
}

func TestRegistry_Rename_To_Taken_Alias(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry(identity("Alice"))
	registry.Upsert(identity("Bob"), localhost, 4000)
	registry.Upsert(identity("Clara"), localhost, 4001)

	req.ErrorIs(registry.Rename("Bob", "Clara"), errors.ErrInvalidArgument)
	req.ErrorIs(registry.Rename("Bob", uuid.NewString()), errors.ErrInvalidArgument)
	req.ErrorIs(registry.Rename("Bob", "two words"), errors.ErrInvalidArgument)

	_, err := registry.Resolve("Bob")
	req.NoError(err)
}

func TestRegistry_Resolve_Unknown_Id(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry(identity("Alice"))
	_, err := registry.Resolve(uuid.NewString())
	req.ErrorIs(err, errors.ErrUnknownUser)
}

func TestRegistry_PeerCount_Excludes_Self(t *testing.T) {
	req := require.New(t)
	alice := identity("Alice")
	registry := NewRegistry(alice)
	registry.Upsert(identity("Bob"), localhost, 4000)
	registry.Upsert(identity("Clara"), localhost, 4001)
	req.Equal(2, registry.PeerCount())

	// When the local peer hears its own broadcast
	registry.Upsert(alice, localhost, 3999)

	req.Equal(3, registry.MemberCount())
	req.Equal(2, registry.PeerCount())
}

func TestRegistry_Render(t *testing.T) {
	req := require.New(t)
	alice := identity("Alice")
	registry := NewRegistry(alice)
	req.Equal("No users known yet", registry.Render())

	bob := identity("Bob")
	registry.Upsert(alice, localhost, 3999)
	registry.Upsert(bob, localhost, 4000)

	rendered := registry.Render()
	req.Contains(rendered, "Alice (you)")
	req.Contains(rendered, bob.ID.String())
	req.Contains(rendered, "127.0.0.1:4000")
}

func TestRegistry_Concurrent_Access(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry(identity("Alice"))
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(port int) {
			defer wg.Done()
			peer := identity("Peer")
			registry.Upsert(peer, localhost, port)
			_, _ = registry.Resolve(peer.ID.String())
			_ = registry.Render()
		}(5000 + i)
	}
	wg.Wait()
	req.Equal(50, registry.MemberCount())
	req.Len(registry.Entries(), 50)
}
