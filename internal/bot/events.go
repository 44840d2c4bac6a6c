package bot

import (
	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

// EventHandler reacts to gateway lifecycle events.
type EventHandler interface {
	Ready(s *discordgo.Session, r *discordgo.Ready)
	Resumed(s *discordgo.Session, r *discordgo.Resumed)
}

// NopEventHandler ignores every event. Embed it to implement only some methods.
type NopEventHandler struct{}

func (NopEventHandler) Ready(*discordgo.Session, *discordgo.Ready)     {}
func (NopEventHandler) Resumed(*discordgo.Session, *discordgo.Resumed) {}

// LifecycleLogger logs connection and resume events.
type LifecycleLogger struct {
	log *zap.Logger
}

// NewLifecycleLogger creates a LifecycleLogger
func NewLifecycleLogger(log *zap.Logger) *LifecycleLogger {
	return &LifecycleLogger{log: log}
}

// Ready logs the bot's username and guild count.
func (h *LifecycleLogger) Ready(_ *discordgo.Session, r *discordgo.Ready) {
	username := ""
	if r.User != nil {
		username = r.User.Username
	}
	h.log.Info("봇 로그인 완료",
		zap.String("username", username),
		zap.Int("guilds", len(r.Guilds)))
}

// Resumed logs the resume trace.
func (h *LifecycleLogger) Resumed(_ *discordgo.Session, r *discordgo.Resumed) {
	h.log.Debug("Resumed", zap.Strings("trace", r.Trace))
}

// addEventHandlers registers h on a session.
func addEventHandlers(s *discordgo.Session, h EventHandler) {
	s.AddHandler(h.Ready)
	s.AddHandler(h.Resumed)
}
