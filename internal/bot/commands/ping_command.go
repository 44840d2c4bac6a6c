package commands

import "fmt"

// PingReply is the message sent back for "ping".
const PingReply = "Pong!"

// PingCommand는 "Pong!"으로 응답하는 간단한 명령어입니다
type PingCommand struct{}

// NewPingCommand는 새로운 ping 명령어를 생성합니다
func NewPingCommand() *PingCommand {
	return &PingCommand{}
}

// Execute는 명령어가 호출된 채널에 응답합니다
func (c *PingCommand) Execute(ctx *Context) error {
	if err := ctx.Reply(PingReply); err != nil {
		return fmt.Errorf("ping 응답 전송 오류: %w", err)
	}
	return nil
}

// NewGeneralGroup returns the "General" group holding ping.
func NewGeneralGroup() Group {
	return Group{
		Name: "General",
		Commands: map[string]HandlerFunc{
			"ping": NewPingCommand().Execute,
		},
	}
}
