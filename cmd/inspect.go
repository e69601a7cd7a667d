package main

import (
	"fmt"
	"group-chat/domain"
	"group-chat/internal"
	"group-chat/runtime"

	"github.com/samber/lo"
)

// inspectRows lists what the peer sent, then what it received.
func inspectRows(peer *runtime.Peer) internal.RowsProvider {
	return func() []internal.InspectRow {
		sent := lo.Map(peer.Ledger().Sent(), func(m domain.Message, _ int) internal.InspectRow {
			row := toRow("out", m)
			row.Acks = fmt.Sprintf("%d/%d", m.AckCount, m.AckTarget)
			return row
		})
		received := lo.Map(peer.Ledger().Received(), func(m domain.Message, _ int) internal.InspectRow {
			return toRow("in", m)
		})
		return append(sent, received...)
	}
}

func toRow(direction string, m domain.Message) internal.InspectRow {
	return internal.InspectRow{
		Direction: direction,
		ID:        m.ID,
		From:      m.Sender.Username,
		Protocol:  m.Protocol.String(),
		Kind:      m.Kind().String(),
		Body:      m.Body,
	}
}

func inspectStats(peer *runtime.Peer) internal.StatsProvider {
	return func() map[string]any {
		stats := peer.Ledger().Statistics()
		return map[string]any{
			"state":     peer.State().String(),
			"peers":     peer.Registry().PeerCount(),
			"sent":      stats.Total,
			"delivered": stats.Delivered,
			"success":   stats.Percentage,
			"received":  len(peer.Ledger().Received()),
		}
	}
}
