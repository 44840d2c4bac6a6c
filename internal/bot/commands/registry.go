package commands

import (
	"fmt"
	"sort"
	"strings"

	"github.com/bradykim7/pingbot/pkg/logger"
	"github.com/bwmarrin/discordgo"
)

// Prefix marks a chat message as a command invocation.
const Prefix = "!"

// Replier sends a message into a channel.
type Replier interface {
	Reply(channelID, content string) error
}

// SessionReplier sends replies through a discordgo session.
type SessionReplier struct {
	Session *discordgo.Session
}

// Reply implements Replier
func (r SessionReplier) Reply(channelID, content string) error {
	_, err := r.Session.ChannelMessageSend(channelID, content)
	return err
}

// Context is a single command invocation. It lives only for the duration of
// one dispatch.
type Context struct {
	Replier Replier
	Message *discordgo.Message
	Name    string
	Args    []string
}

// Reply sends content to the channel the invocation came from.
func (c *Context) Reply(content string) error {
	return c.Replier.Reply(c.Message.ChannelID, content)
}

// HandlerFunc executes a command.
type HandlerFunc func(ctx *Context) error

// BeforeHook runs ahead of every matched command; returning false skips it.
type BeforeHook func(ctx *Context) bool

// Group is a named set of commands.
type Group struct {
	Name     string
	Commands map[string]HandlerFunc
}

// Option configures a Registry
type Option func(*Registry)

// WithOwners sets the user IDs that own the bot.
func WithOwners(ids ...string) Option {
	return func(r *Registry) {
		for _, id := range ids {
			r.owners[id] = struct{}{}
		}
	}
}

// WithBefore installs the pre-dispatch hook.
func WithBefore(hook BeforeHook) Option {
	return func(r *Registry) {
		r.before = hook
	}
}

// Registry manages all bot commands
type Registry struct {
	prefix   string
	owners   map[string]struct{}
	before   BeforeHook
	groups   []string
	commands map[string]HandlerFunc
	log      *logger.Logger
}

// NewRegistry creates a new command registry
func NewRegistry(prefix string, log *logger.Logger, opts ...Option) *Registry {
	r := &Registry{
		prefix:   prefix,
		owners:   make(map[string]struct{}),
		commands: make(map[string]HandlerFunc),
		log:      log,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// AddGroup registers every command of g. Names must be unique across groups.
func (r *Registry) AddGroup(g Group) error {
	for name := range g.Commands {
		if _, exists := r.commands[name]; exists {
			return fmt.Errorf("command %q in group %q is already registered", name, g.Name)
		}
	}
	for name, handler := range g.Commands {
		r.commands[name] = handler
		r.log.Infof("Registered command: %s (group %s)", name, g.Name)
	}
	r.groups = append(r.groups, g.Name)
	return nil
}

// Handle processes a message and executes the appropriate command
func (r *Registry) Handle(rp Replier, m *discordgo.MessageCreate) {
	if m == nil || m.Message == nil || m.Author == nil || m.Author.Bot {
		return
	}

	if !strings.HasPrefix(m.Content, r.prefix) {
		return
	}

	parts := strings.Fields(strings.TrimPrefix(m.Content, r.prefix))
	if len(parts) == 0 {
		return
	}

	cmdName := parts[0]
	cmd, ok := r.commands[cmdName]
	if !ok {
		return
	}

	ctx := &Context{
		Replier: rp,
		Message: m.Message,
		Name:    cmdName,
		Args:    parts[1:],
	}

	if !r.runBefore(ctx) {
		r.log.Debugf("Command %s skipped by before hook", cmdName)
		return
	}

	r.log.Debugf("Executing command: %s", cmdName)
	r.execute(cmd, ctx)
}

// runBefore reports the hook's verdict. A panicking hook permits execution.
func (r *Registry) runBefore(ctx *Context) (permit bool) {
	if r.before == nil {
		return true
	}
	defer func() {
		if rec := recover(); rec != nil {
			r.log.Errorf("Before hook panicked for command %s: %v", ctx.Name, rec)
			permit = true
		}
	}()
	return r.before(ctx)
}

func (r *Registry) execute(cmd HandlerFunc, ctx *Context) {
	defer func() {
		if rec := recover(); rec != nil {
			r.log.Errorf("Command %s panicked: %v", ctx.Name, rec)
		}
	}()
	if err := cmd(ctx); err != nil {
		r.log.Errorw("Command failed",
			"command", ctx.Name,
			"channel_id", ctx.Message.ChannelID,
			"error", err)
	}
}

// Prefix returns the command prefix
func (r *Registry) Prefix() string {
	return r.prefix
}

// Owners returns the owner IDs in sorted order
func (r *Registry) Owners() []string {
	ids := make([]string, 0, len(r.owners))
	for id := range r.owners {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// IsOwner reports whether userID owns the bot.
func (r *Registry) IsOwner(userID string) bool {
	_, ok := r.owners[userID]
	return ok
}

// Groups returns the names of registered groups in registration order
func (r *Registry) Groups() []string {
	return append([]string(nil), r.groups...)
}

// GetCommands returns the names of all registered commands, sorted
func (r *Registry) GetCommands() []string {
	names := make([]string, 0, len(r.commands))
	for name := range r.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
