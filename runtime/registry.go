package runtime

import (
	"fmt"
	"group-chat/domain"
	"group-chat/errors"
	"net/netip"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
)

// Entry is what the registry knows about one peer.
type Entry struct {
	Alias    string
	Identity domain.Identity
	Endpoint netip.AddrPort
}

// Registry is the peer directory: it maps aliases and identities to the
// unicast endpoint of every peer seen on the group.
type Registry struct {
	mu      sync.RWMutex
	self    uuid.UUID
	entries map[uuid.UUID]*Entry // identity -> entry
	aliases map[string]uuid.UUID // alias -> identity
}

func NewRegistry(self domain.Identity) *Registry {
	return &Registry{
		self:    self.ID,
		entries: make(map[uuid.UUID]*Entry),
		aliases: make(map[string]uuid.UUID),
	}
}

// Upsert records a sighting of identity at addr:port.
// A new peer gets its username as alias, suffixed with "#n" when that alias
// is already taken. A known peer only has its endpoint refreshed.
func (r *Registry) Upsert(identity domain.Identity, addr netip.Addr, port int) {
	endpoint := netip.AddrPortFrom(addr.Unmap(), uint16(port))

	r.mu.Lock()
	defer r.mu.Unlock()

	if entry, ok := r.entries[identity.ID]; ok {
		entry.Endpoint = endpoint
		return
	}
	alias := r.freeAlias(identity.Username)
	r.entries[identity.ID] = &Entry{Alias: alias, Identity: identity, Endpoint: endpoint}
	r.aliases[alias] = identity.ID
}

func (r *Registry) freeAlias(username string) string {
	if _, taken := r.aliases[username]; !taken {
		return username
	}
	for n := 2; ; n++ {
		candidate := username + "#" + strconv.Itoa(n)
		if _, taken := r.aliases[candidate]; !taken {
			return candidate
		}
	}
}

// Remove forgets a peer and returns the alias it had.
func (r *Registry) Remove(id uuid.UUID) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.entries[id]
	if !ok {
		return "", fmt.Errorf("%w: no user with id %s", errors.ErrUnknownUser, id)
	}
	delete(r.entries, id)
	delete(r.aliases, entry.Alias)
	return entry.Alias, nil
}

// Rename changes an alias. The new alias must be a single word and not in use.
func (r *Registry) Rename(alias, newAlias string) error {
	if newAlias == "" || strings.ContainsFunc(newAlias, func(c rune) bool { return c == ' ' || c == '\t' }) {
		return fmt.Errorf("%w: alias %q must be a single word", errors.ErrInvalidArgument, newAlias)
	}
	if _, err := uuid.Parse(newAlias); err == nil {
		return fmt.Errorf("%w: alias %q would be read as a user id", errors.ErrInvalidArgument, newAlias)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	id, ok := r.aliases[alias]
	if !ok {
		return fmt.Errorf("%w: no user with alias %q", errors.ErrUnknownUser, alias)
	}
	if _, taken := r.aliases[newAlias]; taken {
		return fmt.Errorf("%w: alias %q already in use", errors.ErrInvalidArgument, newAlias)
	}
	delete(r.aliases, alias)
	r.aliases[newAlias] = id
	r.entries[id].Alias = newAlias
	return nil
}

// Resolve returns the unicast endpoint of a peer designated by alias or by identity ID.
// An identity ID is first mapped to its alias, then the alias to the endpoint.
func (r *Registry) Resolve(aliasOrID string) (netip.AddrPort, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	alias := aliasOrID
	if id, err := uuid.Parse(aliasOrID); err == nil {
		entry, ok := r.entries[id]
		if !ok {
			return netip.AddrPort{}, fmt.Errorf("%w: no user with id %s", errors.ErrUnknownUser, id)
		}
		alias = entry.Alias
	}
	id, ok := r.aliases[alias]
	if !ok {
		return netip.AddrPort{}, fmt.Errorf("%w: no user with alias %q", errors.ErrUnknownUser, alias)
	}
	return r.entries[id].Endpoint, nil
}

func (r *Registry) AliasOf(id uuid.UUID) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entry, ok := r.entries[id]
	if !ok {
		return "", fmt.Errorf("%w: no user with id %s", errors.ErrUnknownUser, id)
	}
	return entry.Alias, nil
}

// MemberCount is the number of distinct known peers, the local one included once seen.
func (r *Registry) MemberCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// PeerCount is the number of known peers other than the local one:
// the acknowledgments a multicast message can expect.
func (r *Registry) PeerCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(lo.OmitByKeys(r.entries, []uuid.UUID{r.self}))
}

// Entries returns a snapshot sorted by alias.
func (r *Registry) Entries() []Entry {
	r.mu.RLock()
	entries := lo.MapToSlice(r.entries, func(_ uuid.UUID, e *Entry) Entry { return *e })
	r.mu.RUnlock()

	slices.SortFunc(entries, func(a, b Entry) int { return strings.Compare(a.Alias, b.Alias) })
	return entries
}

// Render lists the known peers as a table.
func (r *Registry) Render() string {
	entries := r.Entries()
	if len(entries) == 0 {
		return "No users known yet"
	}
	var sb strings.Builder
	table := tablewriter.NewWriter(&sb)
	table.SetHeader([]string{"Alias", "Username", "ID", "Endpoint"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	for _, e := range entries {
		alias := e.Alias
		if e.Identity.ID == r.self {
			alias += " (you)"
		}
		table.Append([]string{alias, e.Identity.Username, e.Identity.ID.String(), e.Endpoint.String()})
	}
	table.Render()
	return strings.TrimRight(sb.String(), "\n")
}
