package repositories

import (
	"group-chat/domain"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
)

// RenderHistory lays out received messages as a borderless table.
func RenderHistory(messages []domain.Message) string {
	if len(messages) == 0 {
		return "No messages received yet"
	}
	var sb strings.Builder
	table := tablewriter.NewWriter(&sb)
	table.SetHeader([]string{"ID", "From", "Channel", "Kind", "Body"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	for _, m := range messages {
		table.Append([]string{
			strconv.Itoa(m.ID),
			m.Sender.Username,
			m.Protocol.String(),
			m.Kind().String(),
			m.Body,
		})
	}
	table.Render()
	return strings.TrimRight(sb.String(), "\n")
}
