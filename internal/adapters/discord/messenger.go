package discord

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/bwmarrin/discordgo"
)

// sender is the slice of the discordgo session the messenger uses
type sender interface {
	ChannelMessageSend(channelID, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// Messenger delivers engine text to Discord. Each room is bound to a
// channel; characters are bound to a user and the channel they last
// spoke in. Sends are best effort: a failed delivery is logged, never
// surfaced, so the engine does not care whether Discord is listening.
type Messenger struct {
	mu           sync.RWMutex
	session      sender
	roomChannels map[string]string
	userIDs      map[string]string
	userChannels map[string]string
}

// NewMessenger creates a messenger over a Discord session
func NewMessenger(session sender) *Messenger {
	if session == nil {
		panic("discord.NewMessenger requires a session")
	}
	return &Messenger{
		session:      session,
		roomChannels: make(map[string]string),
		userIDs:      make(map[string]string),
		userChannels: make(map[string]string),
	}
}

// BindRoom maps a room to the channel its broadcasts land in
func (m *Messenger) BindRoom(roomID, channelID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.roomChannels[roomID] = channelID
}

// BindCharacter maps a character to a Discord user and the channel
// their direct messages go to. Called on every inbound command so the
// binding follows the player.
func (m *Messenger) BindCharacter(characterID, userID, channelID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.userIDs[characterID] = userID
	m.userChannels[characterID] = channelID
}

func (m *Messenger) SendToCharacter(_ context.Context, characterID, text string) {
	m.mu.RLock()
	channelID := m.userChannels[characterID]
	userID := m.userIDs[characterID]
	m.mu.RUnlock()

	if channelID == "" {
		log.Printf("No channel bound for character %s, dropping message", characterID)
		return
	}
	if userID != "" {
		text = fmt.Sprintf("<@%s> %s", userID, text)
	}
	if _, err := m.session.ChannelMessageSend(channelID, text); err != nil {
		log.Printf("Failed to send to character %s: %v", characterID, err)
	}
}

// BroadcastToRoom posts to the room's channel. Exclusions are ignored:
// a shared channel cannot hide a line from one member, and the excluded
// caster already received their personal copy.
func (m *Messenger) BroadcastToRoom(_ context.Context, roomID, text string, _ ...string) {
	m.mu.RLock()
	channelID := m.roomChannels[roomID]
	m.mu.RUnlock()

	if channelID == "" {
		log.Printf("No channel bound for room %s, dropping broadcast", roomID)
		return
	}
	if _, err := m.session.ChannelMessageSend(channelID, text); err != nil {
		log.Printf("Failed to broadcast to room %s: %v", roomID, err)
	}
}
