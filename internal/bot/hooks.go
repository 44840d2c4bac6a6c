package bot

import (
	"go.uber.org/zap"

	"github.com/bradykim7/pingbot/internal/bot/commands"
)

// beforeHook logs every matched command and always permits it.
func beforeHook(log *zap.Logger) commands.BeforeHook {
	return func(ctx *commands.Context) bool {
		username := ""
		if ctx.Message != nil && ctx.Message.Author != nil {
			username = ctx.Message.Author.Username
		}
		log.Info("Got command",
			zap.String("command", ctx.Name),
			zap.String("user", username))
		return true
	}
}
