package bot

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"github.com/bradykim7/pingbot/internal/bot/commands"
	"github.com/bradykim7/pingbot/pkg/config"
	"github.com/bradykim7/pingbot/pkg/logger"
)

// Intents are the gateway subscriptions the bot needs to read commands.
const Intents = discordgo.IntentsGuildMessages |
	discordgo.IntentsDirectMessages |
	discordgo.IntentsMessageContent

// Bot은 Discord 봇을 나타냅니다
type Bot struct {
	config   *config.Config
	log      *zap.Logger
	identity Identity
	commands *commands.Registry
	sessions []*discordgo.Session
	shards   *ShardManager
}

// New는 애플리케이션 정보를 조회한 뒤 새로운 Bot 인스턴스를 생성합니다
func New(cfg *config.Config, log *zap.Logger) (*Bot, error) {
	rest, err := discordgo.New("Bot " + cfg.DiscordToken)
	if err != nil {
		return nil, fmt.Errorf("Discord 세션 생성 오류: %w", err)
	}

	identity, err := ResolveIdentity(SessionApplicationFetcher{Session: rest})
	if err != nil {
		return nil, err
	}

	log.Info("Resolved application",
		zap.String("application_id", identity.ApplicationID),
		zap.Strings("owners", identity.OwnerIDs()))

	return NewWithIdentity(cfg, log, identity)
}

// NewWithIdentity builds the command framework and one session per shard.
// It makes no network calls.
func NewWithIdentity(cfg *config.Config, log *zap.Logger, identity Identity) (*Bot, error) {
	log = log.Named("bot")

	registry := commands.NewRegistry(commands.Prefix,
		logger.Wrap(log.Named("commands")),
		commands.WithOwners(identity.OwnerIDs()...),
		commands.WithBefore(beforeHook(log)))
	if err := registry.AddGroup(commands.NewGeneralGroup()); err != nil {
		return nil, fmt.Errorf("명령어 등록 오류: %w", err)
	}

	b := &Bot{
		config:   cfg,
		log:      log,
		identity: identity,
		commands: registry,
	}

	events := NewLifecycleLogger(log)
	shards := make([]Shard, 0, cfg.ShardCount)
	for i := 0; i < cfg.ShardCount; i++ {
		session, err := discordgo.New("Bot " + cfg.DiscordToken)
		if err != nil {
			return nil, fmt.Errorf("Discord 세션 생성 오류 (shard %d): %w", i, err)
		}
		session.ShardID = i
		session.ShardCount = cfg.ShardCount
		session.Identify.Intents = Intents

		addEventHandlers(session, events)
		session.AddHandler(b.onMessageCreate)

		b.sessions = append(b.sessions, session)
		shards = append(shards, session)
	}
	b.shards = NewShardManager(shards, log.Named("shards"))

	return b, nil
}

// Shards returns the handle used to stop every shard.
func (b *Bot) Shards() *ShardManager {
	return b.shards
}

// Identity returns the resolved application identity
func (b *Bot) Identity() Identity {
	return b.identity
}

// Start는 모든 샤드를 연결하고 종료될 때까지 대기합니다
func (b *Bot) Start(ctx context.Context) error {
	return b.shards.Run(ctx)
}

// onMessageCreate는 메시지가 생성되었을 때의 이벤트 핸들러입니다
func (b *Bot) onMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil {
		return
	}

	b.log.Debug("메시지 수신됨",
		zap.String("guild_id", m.GuildID),
		zap.String("channel_id", m.ChannelID),
		zap.String("user_id", m.Author.ID),
		zap.String("username", m.Author.Username))

	b.commands.Handle(commands.SessionReplier{Session: s}, m)
}
