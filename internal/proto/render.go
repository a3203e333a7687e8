package proto

import (
	"fmt"
	"strings"

	"github.com/linechat/linechat-server/internal/model"
)

// Render serializes a broadcast into the outbound lines every recipient
// receives. The transport fans the same lines out to each recipient.
func Render(b model.Broadcast) []string {
	switch b.Kind {
	case model.BroadcastConnected:
		return []string{fmt.Sprintf("CONNECT %s", b.Nickname)}
	case model.BroadcastDisconnected:
		return []string{fmt.Sprintf("QUIT %s", b.Nickname)}
	case model.BroadcastError:
		return []string{fmt.Sprintf("ERROR %s :%s", b.Code, b.Command.Wire())}
	case model.BroadcastDelivery:
		return []string{b.Command.Wire()}
	case model.BroadcastNames:
		return []string{
			b.Command.Wire(),
			fmt.Sprintf("NAMES %s @%s %s", b.Command.Channel, b.Owner, strings.Join(b.Recipients, " ")),
		}
	}
	return nil
}

// RenderParseError is the reply for a line the parser rejected. It goes back
// to the offending connection only.
func RenderParseError(err error) string {
	return fmt.Sprintf("ERROR MALFORMED :%s", err.Error())
}
